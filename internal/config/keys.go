package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Session configuration
	KeyLastDirectory = "LAST_DIRECTORY" // Working directory of the last successful session

	// Operation behaviour
	KeySearchIgnoreCase = "SEARCH_IGNORE_CASE"
	KeyConfirmDelete    = "CONFIRM_DELETE"

	// Logging
	KeyLogLevel = "LOG_LEVEL"
	KeyLogFile  = "LOG_FILE" // Empty disables logging

	// System configuration
	KeyConfigVersion = "CONFIG_VERSION"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeySearchIgnoreCase: "false",
	KeyConfirmDelete:    "false",
	KeyLogLevel:         "info",
	KeyConfigVersion:    "1",
}
