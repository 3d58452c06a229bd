package timezone

import (
	"salon/config"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultTimezone = "Asia/Tokyo"
	civilZoneName   = "JST"
	civilOffset     = 9 * time.Hour
)

var (
	appLocation *time.Location
	civilZone   = time.FixedZone(civilZoneName, int(civilOffset/time.Second))
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Debug().Str("timezone", defaultTimezone).Msg("No timezone configured, using default")
		cfg.App.Timezone = defaultTimezone
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to fixed UTC+9")
		appLocation = civilZone

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		return time.Now().In(civilZone)
	}

	return time.Now().In(appLocation)
}

// NowMillis returns the current time as epoch milliseconds.
func NowMillis() int64 {
	return Now().UnixMilli()
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		return t.In(civilZone)
	}

	return t.In(appLocation)
}

// FromMillis converts epoch milliseconds to a time in the application timezone.
func FromMillis(ms int64) time.Time {
	return ToAppTime(time.UnixMilli(ms))
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return civilZone
	}

	return appLocation
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// FormatMillis formats epoch milliseconds in the application timezone.
func FormatMillis(ms int64, layout string) string {
	return Format(time.UnixMilli(ms), layout)
}
