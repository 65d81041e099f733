// Package storage provides the durable local key/value store backing the
// account registry, the session slot, and the cached CV analysis. Values
// are whole JSON blobs: every write replaces the full value for a key in
// one operation, so readers never observe a partial state.
package storage

import (
	"encoding/json"
	"fmt"
)

// Well-known keys. The names mirror the persisted browser-storage layout
// of the original product so exports stay recognizable.
const (
	KeyAccounts = "qatth_users"
	KeySession  = "qatth_session"
	KeyCVText   = "qatth_cv_text"
	KeyCVSkills = "qatth_cv_skills"
	KeyCVRoles  = "qatth_cv_roles"
)

// Store is a key/value blob store. Get reports found=false for a missing
// key rather than an error; Delete of a missing key is a no-op.
type Store interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// SetJSON marshals v and stores it under key as one blob.
func SetJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %s: %w", key, err)
	}
	return s.Set(key, data)
}

// GetJSON loads and unmarshals the value under key into v. It reports
// whether the key existed.
func GetJSON(s Store, key string, v any) (bool, error) {
	data, found, err := s.Get(key)
	if err != nil || !found {
		return found, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("failed to parse value for %s: %w", key, err)
	}
	return true, nil
}
