package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName              = "happyhour"
	Version              = "v0.1.0"
	DefaultConfigDir     = "~/.config/happyhour"
	DefaultConfigFile    = "~/.config/happyhour/config.yaml"
	DefaultDataFile      = "happy_hours_raw.csv"
	DefaultFavoritesFile = "~/.config/happyhour/favorites.json"
	DefaultSQLiteFile    = "~/.config/happyhour/favorites.db"
	DefaultListenAddr    = "127.0.0.1:8080"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DisplayTimeFormat is how window bounds are shown to users
	DisplayTimeFormat = "3:04 PM"

	// DefaultQueryTime is the time-of-day filter used when none is chosen
	DefaultQueryTime = "19:00"

	// AnyOption selects every zone or day
	AnyOption = "Any"

	// MissingValue is shown in place of absent times and prices
	MissingValue = "—"

	// EmptyResultMessage is shown when filters leave nothing to list
	EmptyResultMessage = "No happy hours match your filters. Try adjusting time, zone, budget, or day."

	// Backup constants
	MaxBackups    = 14
	BackupDirName = "backups"
)

// Session States
const (
	StateTable SessionState = iota
	StateFilterForm
)
