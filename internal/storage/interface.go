package storage

import "github.com/julianstephens/zenone/internal/models"

// Provider is the persistence contract. Values live under a flat key-value
// layout: "users-index" holds the known user names in insertion order,
// "records-<username>" holds that user's daily records, and "quote-cache"
// holds the single global cached quote. Values are JSON.
//
// Reads fail soft: a missing or malformed value yields the empty state, never
// an error the caller has to branch on.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Users
	GetUsers() ([]string, error)
	AddUser(name string) error
	// DeleteUser removes the user from the index and drops the user's entire
	// record partition. Irreversible; callers confirm first.
	DeleteUser(name string) error

	// Active user (locally remembered display name)
	GetActiveUser() (string, error)
	SetActiveUser(name string) error

	// Records
	GetRecords(user string) ([]models.DailyRecord, error)
	SaveRecords(user string, records []models.DailyRecord) error

	// Quote cache (global, shared across users)
	GetQuote() (models.QuoteData, bool, error)
	SaveQuote(models.QuoteData) error

	// Utils
	GetConfigPath() string
}
