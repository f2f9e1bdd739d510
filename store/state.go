package store

import (
	"encoding/json"

	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/state"
)

// StateKey is the key under which the application state blob is stored.
const StateKey = "pomo-storage"

// envelope is the on-disk framing of the state blob.
type envelope struct {
	State   json.RawMessage `json:"state"`
	Version int             `json:"version"`
}

// LoadState reads and decodes the persisted state. A missing blob yields a
// fresh state built from fallback. A malformed blob also yields a fresh
// state, along with an error the caller may log.
func LoadState(db DB, fallback models.Preferences) (state.State, error) {
	fresh := state.New(fallback)

	blob, err := db.Get(StateKey)
	if err != nil {
		return fresh, err
	}

	if len(blob) == 0 {
		return fresh, nil
	}

	raw, err := migrate(blob)
	if err != nil {
		return fresh, err
	}

	var s state.State

	err = json.Unmarshal(raw, &s)
	if err != nil {
		return fresh, errMalformedState.Wrap(err)
	}

	return s.Normalise(fallback), nil
}

// SaveState encodes s in the current envelope and writes it to db.
func SaveState(db DB, s state.State) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	blob, err := json.Marshal(envelope{
		State:   raw,
		Version: currentVersion,
	})
	if err != nil {
		return err
	}

	return db.Put(StateKey, blob)
}
