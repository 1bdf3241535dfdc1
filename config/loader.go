package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// loaderOptions holds the assembled source selection for a Load call.
type loaderOptions struct {
	envFile        string
	environ        map[string]string
	skipProcessEnv bool
}

// Option is a functional option for Load.
type Option func(*loaderOptions)

// WithEnvFile reads KEY=VALUE pairs from the given file before applying the
// process environment. Lines starting with # are comments, trailing comments
// after unquoted values are discarded, blank lines are ignored, and on
// duplicate keys the last occurrence wins.
func WithEnvFile(path string) Option {
	return func(lo *loaderOptions) { lo.envFile = path }
}

// WithEnviron substitutes env for the process environment. Intended for
// tests, which should never depend on the host environment.
func WithEnviron(env map[string]string) Option {
	return func(lo *loaderOptions) { lo.environ = env }
}

// WithoutProcessEnv disables the process-environment overlay, so only the
// env file contributes values.
func WithoutProcessEnv() Option {
	return func(lo *loaderOptions) { lo.skipProcessEnv = true }
}

// Load assembles the raw key/value source and produces a validated Config.
// File values are applied first, then the process environment on top (a
// variable exported in the shell beats the .env file, matching the
// deployment convention the agent has always used). Load never touches the
// network and never stats the credential files the configuration points at;
// their existence is the consuming client's concern.
func Load(opts ...Option) (*Config, error) {
	var lo loaderOptions
	for _, opt := range opts {
		opt(&lo)
	}

	raw := make(map[string]string)
	if lo.envFile != "" {
		fileVars, err := godotenv.Read(lo.envFile)
		if err != nil {
			return nil, fmt.Errorf("read env file %s: %w", lo.envFile, err)
		}
		for k, v := range fileVars {
			raw[k] = v
		}
	}

	switch {
	case lo.environ != nil:
		for k, v := range lo.environ {
			raw[k] = v
		}
	case !lo.skipProcessEnv:
		for _, entry := range os.Environ() {
			if k, v, ok := strings.Cut(entry, "="); ok && Recognized(k) {
				raw[k] = v
			}
		}
	}

	return fromRaw(raw)
}

// Parse reads KEY=VALUE text directly, with no environment overlay.
func Parse(r io.Reader) (*Config, error) {
	raw, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse env source: %w", err)
	}
	return fromRaw(raw)
}

// fromRaw coerces the raw string mapping into a Config, applies defaults
// for absent keys, and validates the result. Unrecognized keys in raw are
// ignored.
func fromRaw(raw map[string]string) (*Config, error) {
	cfg := &Config{
		DriveCredentialsFile:          stringOr(raw, KeyDriveCredentialsFile, DefaultCredentialsFile),
		DriveTokenFile:                stringOr(raw, KeyDriveTokenFile, DefaultTokenFile),
		DriveFolderID:                 strings.TrimSpace(raw[KeyDriveFolderID]),
		GoogleAIAPIKey:                Secret(strings.TrimSpace(raw[KeyGoogleAIAPIKey])),
		ERPNextURL:                    strings.TrimSpace(raw[KeyERPNextURL]),
		ERPNextAPIKey:                 Secret(strings.TrimSpace(raw[KeyERPNextAPIKey])),
		ERPNextAPISecret:              Secret(strings.TrimSpace(raw[KeyERPNextAPISecret])),
		LogLevel:                      DefaultLogLevel,
		ExtractionConfidenceThreshold: DefaultExtractionThreshold,
		FuzzyMatchThreshold:           DefaultFuzzyMatchThreshold,
	}

	var err error
	if cfg.ProcessingInterval, err = intOr(raw, KeyProcessingInterval, DefaultProcessingInterval); err != nil {
		return nil, err
	}
	if v, ok := raw[KeyLogLevel]; ok {
		if cfg.LogLevel, err = ParseLevel(v); err != nil {
			return nil, err
		}
	}
	if cfg.ExtractionConfidenceThreshold, err = floatOr(raw, KeyExtractionThreshold, DefaultExtractionThreshold); err != nil {
		return nil, err
	}
	if cfg.FuzzyMatchThreshold, err = floatOr(raw, KeyFuzzyMatchThreshold, DefaultFuzzyMatchThreshold); err != nil {
		return nil, err
	}
	if v, ok := raw[KeyAlertPeriods]; ok {
		if cfg.AlertPeriods, err = parseAlertPeriods(KeyAlertPeriods, v); err != nil {
			return nil, err
		}
	} else {
		cfg.AlertPeriods = DefaultAlertPeriods()
	}

	if err := checkConstraints(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// --- coercion helpers ---

func stringOr(raw map[string]string, key, def string) string {
	if v, ok := raw[key]; ok {
		return strings.TrimSpace(v)
	}
	return def
}

func intOr(raw map[string]string, key string, def int) (int, error) {
	v, ok := raw[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, coercionFailure(key, v, "an integer", err)
	}
	return n, nil
}

func floatOr(raw map[string]string, key string, def float64) (float64, error) {
	v, ok := raw[key]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, coercionFailure(key, v, "a number", err)
	}
	return f, nil
}

func parseAlertPeriods(key, value string) ([]int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, malformedList(key, value, "list is empty")
	}
	parts := strings.Split(trimmed, ",")
	periods := make([]int, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, malformedList(key, value, fmt.Sprintf("%q is not an integer", token))
		}
		periods = append(periods, n)
	}
	return periods, nil
}
