package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "newlife"
	DefaultConfigPath = "~/.config/newlife/newlife.json"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "newlife-"

	// ChannelURL is the devotion video channel shown by the video command.
	ChannelURL = "https://youtube.com/channel/UCCIHZQbRrCkZ6dj0_RWBPPQ?si=v5oFsiSDfV7CCUD7"
)

// Session States
const (
	StateChecklist SessionState = iota
	StateJournal
	StateStats
	StateAddReading
	StateAddBible
)
