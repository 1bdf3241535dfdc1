package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the typed configuration of the contract agent. Treat a loaded
// Config as read-only: the loader never hands out shared mutable state, and
// consumers must not modify fields after construction.
type Config struct {
	// Google Drive document source.
	DriveCredentialsFile string `env:"GOOGLE_DRIVE_CREDENTIALS_FILE"`
	DriveTokenFile       string `env:"GOOGLE_DRIVE_TOKEN_FILE"`
	DriveFolderID        string `env:"GOOGLE_DRIVE_FOLDER_ID" validate:"required"`

	// Gemini extraction.
	GoogleAIAPIKey Secret `env:"GOOGLE_AI_API_KEY" validate:"required"`

	// ERPNext integration.
	ERPNextURL       string `env:"ERPNEXT_URL" validate:"required,url"`
	ERPNextAPIKey    Secret `env:"ERPNEXT_API_KEY" validate:"required"`
	ERPNextAPISecret Secret `env:"ERPNEXT_API_SECRET" validate:"required"`

	// Processing cadence, in seconds.
	ProcessingInterval int `env:"PROCESSING_INTERVAL" validate:"gt=0"`

	LogLevel Level `env:"LOG_LEVEL"`

	// Thresholds. Extraction confidence is a ratio, fuzzy match a percentage.
	ExtractionConfidenceThreshold float64 `env:"EXTRACTION_CONFIDENCE_THRESHOLD" validate:"gte=0,lte=1"`
	FuzzyMatchThreshold           float64 `env:"FUZZY_MATCH_THRESHOLD" validate:"gte=0,lte=100"`

	// Alert periods in days before expiration, order preserved from the
	// source (descending urgency tiers).
	AlertPeriods []int `env:"ALERT_PERIODS" validate:"dive,gt=0"`
}

// DriveConfig is the slice of configuration the document-source client needs.
type DriveConfig struct {
	CredentialsFile string
	TokenFile       string
	FolderID        string
}

// GeminiConfig is the slice of configuration the extraction client needs.
type GeminiConfig struct {
	APIKey Secret
}

// ERPNextConfig is the slice of configuration the ERP client needs.
type ERPNextConfig struct {
	URL       string
	APIKey    Secret
	APISecret Secret
}

// Drive returns the document-source view of the configuration.
func (c *Config) Drive() DriveConfig {
	return DriveConfig{
		CredentialsFile: c.DriveCredentialsFile,
		TokenFile:       c.DriveTokenFile,
		FolderID:        c.DriveFolderID,
	}
}

// Gemini returns the extraction view of the configuration.
func (c *Config) Gemini() GeminiConfig {
	return GeminiConfig{APIKey: c.GoogleAIAPIKey}
}

// ERPNext returns the ERP view of the configuration.
func (c *Config) ERPNext() ERPNextConfig {
	return ERPNextConfig{
		URL:       c.ERPNextURL,
		APIKey:    c.ERPNextAPIKey,
		APISecret: c.ERPNextAPISecret,
	}
}

// Interval returns the processing cadence as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.ProcessingInterval) * time.Second
}

// Periods returns a copy of the alert periods so the Config stays immutable.
func (c *Config) Periods() []int {
	out := make([]int, len(c.AlertPeriods))
	copy(out, c.AlertPeriods)
	return out
}

// Encode returns the configuration as the raw key/value pairs it was loaded
// from. Secret values are included in the clear: the result is meant for
// serialization back to an env file, not for display.
func (c *Config) Encode() map[string]string {
	periods := make([]string, len(c.AlertPeriods))
	for i, p := range c.AlertPeriods {
		periods[i] = strconv.Itoa(p)
	}
	return map[string]string{
		KeyDriveCredentialsFile: c.DriveCredentialsFile,
		KeyDriveTokenFile:       c.DriveTokenFile,
		KeyDriveFolderID:        c.DriveFolderID,
		KeyGoogleAIAPIKey:       c.GoogleAIAPIKey.Reveal(),
		KeyERPNextURL:           c.ERPNextURL,
		KeyERPNextAPIKey:        c.ERPNextAPIKey.Reveal(),
		KeyERPNextAPISecret:     c.ERPNextAPISecret.Reveal(),
		KeyProcessingInterval:   strconv.Itoa(c.ProcessingInterval),
		KeyLogLevel:             c.LogLevel.String(),
		KeyExtractionThreshold:  strconv.FormatFloat(c.ExtractionConfidenceThreshold, 'g', -1, 64),
		KeyFuzzyMatchThreshold:  strconv.FormatFloat(c.FuzzyMatchThreshold, 'g', -1, 64),
		KeyAlertPeriods:         strings.Join(periods, ","),
	}
}

// Marshal serializes the configuration to KEY=VALUE text. Loading the
// result yields an equal Config.
func (c *Config) Marshal() (string, error) {
	return godotenv.Marshal(c.Encode())
}
