package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "zenone"
	DefaultConfigPath = "~/.config/zenone/zenone.db"
	Version           = "v0.3.0"

	// DefaultKeyringUser is the keyring account under which the quote
	// provider API key is stored.
	DefaultKeyringUser = "quote-api-key"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// QuoteStaleness is the age after which a cached quote is eligible for refresh
	QuoteStaleness = 7 * 24 * time.Hour

	// QuoteFetchTimeout bounds a single quote provider round-trip
	QuoteFetchTimeout = 15 * time.Second

	// Storage keys (key-value layout)
	UsersIndexKey    = "users-index"
	RecordsKeyPrefix = "records-"
	QuoteCacheKey    = "quote-cache"
	ActiveUserKey    = "active-user"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "zenone-"
	BackupFileSuffix = ".db"
)

// Session States
const (
	StateLogin SessionState = iota
	StateLoginForm
	StateHome
	StateStats
	StateConfirmDeleteUser
)

// FirstDayOfWeek is the weekday the month grid starts on. 0 = Sunday,
// matching time.Weekday numbering.
const FirstDayOfWeek = 0
