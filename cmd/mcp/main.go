// Package main serves the finwell planning tools over MCP on stdio.
//
// stdout carries the protocol, so every log line goes to stderr.
package main

import (
	"os"

	"github.com/aristath/finwell/internal/config"
	"github.com/aristath/finwell/internal/di"
	"github.com/aristath/finwell/internal/tools"
	"github.com/aristath/finwell/internal/version"
	"github.com/aristath/finwell/pkg/logger"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Output: os.Stderr})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Output: os.Stderr,
	})
	logger.SetGlobalLogger(log)

	// No scheduler: the HTTP binary owns maintenance and backups
	container, _, err := di.Wire(cfg, log, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	defer container.Close()

	s := server.NewMCPServer("finwell", version.Version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	)
	tools.Register(s, container.ToolServices(), log)

	log.Info().Str("version", version.Version).Str("store", cfg.Store).Msg("Serving MCP on stdio")

	if err := server.ServeStdio(s); err != nil {
		log.Error().Err(err).Msg("MCP server stopped with error")
		container.Close()
		os.Exit(1)
	}
}
