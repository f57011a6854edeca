package profiles

import "time"

// Profiles are stamped in Johannesburg time regardless of the host zone
var johannesburg = time.FixedZone("SAST", 2*60*60)

const createdAtLayout = "2006-01-02T15:04:05-07:00"

// FormatCreatedAt renders t as YYYY-MM-DDTHH:mm:ss+02:00
func FormatCreatedAt(t time.Time) string {
	return t.In(johannesburg).Format(createdAtLayout)
}
