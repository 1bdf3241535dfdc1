package config

// Environment variable names recognized by the loader. These are the exact
// source names; anything else in the source is ignored.
const (
	KeyDriveCredentialsFile = "GOOGLE_DRIVE_CREDENTIALS_FILE"
	KeyDriveTokenFile       = "GOOGLE_DRIVE_TOKEN_FILE"
	KeyDriveFolderID        = "GOOGLE_DRIVE_FOLDER_ID"
	KeyGoogleAIAPIKey       = "GOOGLE_AI_API_KEY"
	KeyERPNextURL           = "ERPNEXT_URL"
	KeyERPNextAPIKey        = "ERPNEXT_API_KEY"
	KeyERPNextAPISecret     = "ERPNEXT_API_SECRET"
	KeyProcessingInterval   = "PROCESSING_INTERVAL"
	KeyLogLevel             = "LOG_LEVEL"
	KeyExtractionThreshold  = "EXTRACTION_CONFIDENCE_THRESHOLD"
	KeyFuzzyMatchThreshold  = "FUZZY_MATCH_THRESHOLD"
	KeyAlertPeriods         = "ALERT_PERIODS"
)

// Defaults applied when the corresponding key is absent from the source.
// Keys without a default here (folder id, AI key, the ERPNext triple) are
// required and fail the load with MissingRequiredKey.
const (
	DefaultCredentialsFile     = "credentials.json"
	DefaultTokenFile           = "token.json"
	DefaultProcessingInterval  = 300
	DefaultLogLevel            = LevelInfo
	DefaultExtractionThreshold = 0.7
	DefaultFuzzyMatchThreshold = 80.0
)

// DefaultAlertPeriods returns the default alert schedule in days before
// expiration, most distant tier first. A fresh slice is returned each call
// so callers cannot mutate the defaults.
func DefaultAlertPeriods() []int {
	return []int{90, 60, 30, 14, 7}
}

var recognizedKeys = map[string]bool{
	KeyDriveCredentialsFile: true,
	KeyDriveTokenFile:       true,
	KeyDriveFolderID:        true,
	KeyGoogleAIAPIKey:       true,
	KeyERPNextURL:           true,
	KeyERPNextAPIKey:        true,
	KeyERPNextAPISecret:     true,
	KeyProcessingInterval:   true,
	KeyLogLevel:             true,
	KeyExtractionThreshold:  true,
	KeyFuzzyMatchThreshold:  true,
	KeyAlertPeriods:         true,
}

// Recognized reports whether key is part of the configuration contract.
func Recognized(key string) bool {
	return recognizedKeys[key]
}
