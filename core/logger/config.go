package logger

const (
	FormatJSON    = "json"
	FormatConsole = "console"
	// FormatAuto selects console output on a terminal and JSON otherwise.
	FormatAuto = "auto"
)

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum enabled level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info" validate:"oneof=debug info warn error"`
	// Format is the output encoding (json, console, auto).
	Format string `mapstructure:"format" default:"auto" validate:"oneof=json console auto"`
}
