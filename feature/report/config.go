package report

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds terminal output settings.
type Config struct {
	// Color is auto, always or never. Auto colors only terminals.
	Color string `mapstructure:"color" default:"auto"`
	// WaitOnExit keeps the console window open until Enter is pressed.
	// It has no effect when stdin is not a terminal.
	WaitOnExit bool `mapstructure:"wait_on_exit" default:"true"`
}
