// Package version holds build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/aristath/finwell/internal/version.Version=1.2.0"
package version

// Version is the released version of the binaries
var Version = "dev"
