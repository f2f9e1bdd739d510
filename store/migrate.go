package store

import (
	"encoding/json"
	"slices"
)

// currentVersion is the envelope version written by SaveState.
const currentVersion = 1

// migration upgrades a decoded state object by exactly one version.
type migration func(obj map[string]json.RawMessage) error

// migrations is indexed by the version being upgraded from.
var migrations = map[int]migration{
	0: migrateV0,
}

// migrate unwraps a stored blob and upgrades its state object to
// currentVersion, returning the raw state JSON. Blobs written before the
// envelope existed are treated as version 0.
func migrate(blob []byte) (json.RawMessage, error) {
	var top map[string]json.RawMessage

	err := json.Unmarshal(blob, &top)
	if err != nil {
		return nil, errMalformedState.Wrap(err)
	}

	raw, version := json.RawMessage(blob), 0

	if inner, ok := top["state"]; ok {
		raw = inner

		if v, ok := top["version"]; ok {
			err = json.Unmarshal(v, &version)
			if err != nil {
				return nil, errMalformedState.Wrap(err)
			}
		}
	}

	if version == currentVersion {
		return raw, nil
	}

	if version > currentVersion {
		return nil, errUnsupportedVersion.Fmt(version)
	}

	var obj map[string]json.RawMessage

	err = json.Unmarshal(raw, &obj)
	if err != nil {
		return nil, errMalformedState.Wrap(err)
	}

	for v := version; v < currentVersion; v++ {
		if m, ok := migrations[v]; ok {
			if err := m(obj); err != nil {
				return nil, errMalformedState.Wrap(err)
			}
		}
	}

	return json.Marshal(obj)
}

// migrateV0 fills in the fields that version 0 blobs may lack: a pomodoro
// estimate on every task and a language in the preferences.
func migrateV0(obj map[string]json.RawMessage) error {
	if raw, ok := obj["domains"]; ok {
		var domains []map[string]json.RawMessage

		err := json.Unmarshal(raw, &domains)
		if err != nil {
			return err
		}

		for _, d := range domains {
			err = fillEstimates(d)
			if err != nil {
				return err
			}
		}

		obj["domains"], err = json.Marshal(domains)
		if err != nil {
			return err
		}
	}

	if raw, ok := obj["preferences"]; ok {
		var prefs map[string]json.RawMessage

		err := json.Unmarshal(raw, &prefs)
		if err != nil {
			return err
		}

		// null preferences are left for Normalise to fill from defaults
		if prefs == nil {
			return nil
		}

		if _, ok := prefs["language"]; !ok {
			prefs["language"] = json.RawMessage(`"en"`)
		}

		obj["preferences"], err = json.Marshal(prefs)
		if err != nil {
			return err
		}
	}

	return nil
}

func fillEstimates(domain map[string]json.RawMessage) error {
	raw, ok := domain["sections"]
	if !ok {
		return nil
	}

	var sections []map[string]json.RawMessage

	err := json.Unmarshal(raw, &sections)
	if err != nil {
		return err
	}

	for _, sec := range sections {
		rawTasks, ok := sec["tasks"]
		if !ok {
			continue
		}

		var tasks []map[string]json.RawMessage

		err = json.Unmarshal(rawTasks, &tasks)
		if err != nil {
			return err
		}

		tasks = slices.DeleteFunc(tasks, func(t map[string]json.RawMessage) bool {
			return t == nil
		})

		for _, t := range tasks {
			if _, ok := t["estimatedPomodoros"]; !ok {
				t["estimatedPomodoros"] = json.RawMessage("1")
			}
		}

		sec["tasks"], err = json.Marshal(tasks)
		if err != nil {
			return err
		}
	}

	domain["sections"], err = json.Marshal(sections)

	return err
}
