package config

import "fmt"

// Template returns a commented env-file template with every recognized key,
// defaults filled in and required credentials left blank. Used to seed a
// new deployment's .env file.
func Template() string {
	defaults := &Config{
		DriveCredentialsFile:          DefaultCredentialsFile,
		DriveTokenFile:                DefaultTokenFile,
		ProcessingInterval:            DefaultProcessingInterval,
		LogLevel:                      DefaultLogLevel,
		ExtractionConfidenceThreshold: DefaultExtractionThreshold,
		FuzzyMatchThreshold:           DefaultFuzzyMatchThreshold,
		AlertPeriods:                  DefaultAlertPeriods(),
	}
	enc := defaults.Encode()

	return fmt.Sprintf(`# Contract agent configuration

# Google Drive access
%s=%s
%s=%s
%s=

# Google Gemini document processing
%s=

# ERPNext integration
%s=
%s=
%s=

# Processing interval in seconds
%s=%s

# Logging (DEBUG, INFO, WARNING, ERROR, CRITICAL)
%s=%s

# Extraction confidence threshold (0.0-1.0)
%s=%s

# Client fuzzy match threshold (0.0-100.0)
%s=%s

# Alert periods in days before expiration, comma separated
%s=%s
`,
		KeyDriveCredentialsFile, enc[KeyDriveCredentialsFile],
		KeyDriveTokenFile, enc[KeyDriveTokenFile],
		KeyDriveFolderID,
		KeyGoogleAIAPIKey,
		KeyERPNextURL,
		KeyERPNextAPIKey,
		KeyERPNextAPISecret,
		KeyProcessingInterval, enc[KeyProcessingInterval],
		KeyLogLevel, enc[KeyLogLevel],
		KeyExtractionThreshold, enc[KeyExtractionThreshold],
		KeyFuzzyMatchThreshold, enc[KeyFuzzyMatchThreshold],
		KeyAlertPeriods, enc[KeyAlertPeriods],
	)
}
