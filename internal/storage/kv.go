package storage

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/zenone/internal/constants"
	"github.com/julianstephens/zenone/internal/logger"
	"github.com/julianstephens/zenone/internal/models"
)

// rawKV is the minimal surface a backend has to provide; everything above it
// (user index, record partitions, quote cache) is shared.
type rawKV interface {
	getRaw(key string) ([]byte, bool, error)
	setRaw(key string, value []byte) error
	deleteRaw(key string) error
}

func recordsKey(user string) string {
	return constants.RecordsKeyPrefix + user
}

// kvProvider implements the typed Provider methods on top of a rawKV backend.
type kvProvider struct {
	kv rawKV
}

func (p *kvProvider) GetUsers() ([]string, error) {
	data, ok, err := p.kv.getRaw(constants.UsersIndexKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}

	var users []string
	if err := json.Unmarshal(data, &users); err != nil {
		logger.Warn("Malformed users index, treating as empty", "error", err)
		return []string{}, nil
	}
	return users, nil
}

func (p *kvProvider) AddUser(name string) error {
	users, err := p.GetUsers()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u == name {
			return nil
		}
	}
	users = append(users, name)
	return p.setJSON(constants.UsersIndexKey, users)
}

func (p *kvProvider) DeleteUser(name string) error {
	users, err := p.GetUsers()
	if err != nil {
		return err
	}

	kept := users[:0]
	for _, u := range users {
		if u != name {
			kept = append(kept, u)
		}
	}
	if err := p.setJSON(constants.UsersIndexKey, kept); err != nil {
		return err
	}

	if err := p.kv.deleteRaw(recordsKey(name)); err != nil {
		return fmt.Errorf("failed to delete records for %q: %w", name, err)
	}

	active, err := p.GetActiveUser()
	if err == nil && active == name {
		return p.SetActiveUser("")
	}
	return nil
}

func (p *kvProvider) GetActiveUser() (string, error) {
	data, ok, err := p.kv.getRaw(constants.ActiveUserKey)
	if err != nil || !ok {
		return "", err
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		logger.Warn("Malformed active-user value, treating as unset", "error", err)
		return "", nil
	}
	return name, nil
}

func (p *kvProvider) SetActiveUser(name string) error {
	if name == "" {
		return p.kv.deleteRaw(constants.ActiveUserKey)
	}
	return p.setJSON(constants.ActiveUserKey, name)
}

func (p *kvProvider) GetRecords(user string) ([]models.DailyRecord, error) {
	data, ok, err := p.kv.getRaw(recordsKey(user))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.DailyRecord{}, nil
	}

	var records []models.DailyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("Malformed records, treating as empty", "user", user, "error", err)
		return []models.DailyRecord{}, nil
	}
	return records, nil
}

func (p *kvProvider) SaveRecords(user string, records []models.DailyRecord) error {
	return p.setJSON(recordsKey(user), records)
}

func (p *kvProvider) GetQuote() (models.QuoteData, bool, error) {
	data, ok, err := p.kv.getRaw(constants.QuoteCacheKey)
	if err != nil || !ok {
		return models.QuoteData{}, false, err
	}

	var quote models.QuoteData
	if err := json.Unmarshal(data, &quote); err != nil {
		logger.Warn("Malformed quote cache, treating as absent", "error", err)
		return models.QuoteData{}, false, nil
	}
	return quote, true, nil
}

func (p *kvProvider) SaveQuote(quote models.QuoteData) error {
	return p.setJSON(constants.QuoteCacheKey, quote)
}

func (p *kvProvider) setJSON(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	return p.kv.setRaw(key, data)
}
