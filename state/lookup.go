package state

import (
	"strings"

	"github.com/ayoisaiah/focusplan/internal/models"
)

// TaskRef is a task together with the path of its owners.
type TaskRef struct {
	Task        models.Task `json:"task"`
	DomainID    string      `json:"domainId"`
	DomainName  string      `json:"domainName"`
	DomainColor string      `json:"domainColor"`
	SectionID   string      `json:"sectionId"`
	SectionName string      `json:"sectionName"`
}

// Resolution describes the outcome of resolving a weak task reference.
type Resolution int

const (
	// Unassigned means there was no reference to resolve.
	Unassigned Resolution = iota
	// Resolved means the referenced task exists.
	Resolved
	// Dangling means the referenced task no longer exists.
	Dangling
)

var resolutionNames = [...]string{"unassigned", "resolved", "dangling"}

func (r Resolution) String() string {
	if r < 0 || int(r) >= len(resolutionNames) {
		return "unknown"
	}

	return resolutionNames[r]
}

// MarshalText encodes the resolution by name.
func (r Resolution) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// FindTask locates a task anywhere in the tree. The first match in tree
// order wins.
func (s State) FindTask(taskID string) (TaskRef, bool) {
	for _, d := range s.Domains {
		for _, sec := range d.Sections {
			for _, t := range sec.Tasks {
				if t.ID != taskID {
					continue
				}

				return TaskRef{
					Task:        t,
					DomainID:    d.ID,
					DomainName:  d.Name,
					DomainColor: d.Color,
					SectionID:   sec.ID,
					SectionName: sec.Name,
				}, true
			}
		}
	}

	return TaskRef{}, false
}

// FindDomain returns the domain with the given id.
func (s State) FindDomain(id string) (models.Domain, bool) {
	for _, d := range s.Domains {
		if d.ID == id {
			return d, true
		}
	}

	return models.Domain{}, false
}

// FindSection returns a section by its id, searching every domain, along
// with the id of the domain that owns it.
func (s State) FindSection(sectionID string) (models.Section, string, bool) {
	for _, d := range s.Domains {
		for _, sec := range d.Sections {
			if sec.ID == sectionID {
				return sec, d.ID, true
			}
		}
	}

	return models.Section{}, "", false
}

// ResolveTask resolves a weak task reference such as a session log's task
// id or the active task pointer.
func (s State) ResolveTask(taskID *string) (TaskRef, Resolution) {
	if taskID == nil {
		return TaskRef{}, Unassigned
	}

	ref, ok := s.FindTask(*taskID)
	if !ok {
		return TaskRef{}, Dangling
	}

	return ref, Resolved
}

// ActiveTask resolves the active task pointer.
func (s State) ActiveTask() (TaskRef, Resolution) {
	return s.ResolveTask(s.ActiveTaskID)
}

// TaskIDs returns the ids of every task in tree order.
func (s State) TaskIDs() []string {
	var ids []string

	for _, d := range s.Domains {
		for _, sec := range d.Sections {
			for _, t := range sec.Tasks {
				ids = append(ids, t.ID)
			}
		}
	}

	return ids
}

// SectionIDs returns the ids of every section in tree order.
func (s State) SectionIDs() []string {
	var ids []string

	for _, d := range s.Domains {
		for _, sec := range d.Sections {
			ids = append(ids, sec.ID)
		}
	}

	return ids
}

// DomainIDs returns the ids of every domain.
func (s State) DomainIDs() []string {
	ids := make([]string, len(s.Domains))

	for i, d := range s.Domains {
		ids[i] = d.ID
	}

	return ids
}

// SessionLogIDs returns the ids of every history entry.
func (s State) SessionLogIDs() []string {
	ids := make([]string, len(s.History))

	for i, h := range s.History {
		ids[i] = h.ID
	}

	return ids
}

// ExpandID returns the single id in ids that starts with prefix. An exact
// match always wins.
func ExpandID(ids []string, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", errEmptyID
	}

	var matches []string

	for _, id := range ids {
		if id == prefix {
			return id, nil
		}

		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", errIDNotFound.Fmt(prefix)
	case 1:
		return matches[0], nil
	default:
		return "", errAmbiguousID.Fmt(prefix, len(matches))
	}
}
