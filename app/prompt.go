package app

import (
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/focusplan/internal/models"
	"github.com/ayoisaiah/focusplan/state"
)

// selectFunc asks the user to choose one of options. It is replaced in
// tests.
var selectFunc = runSelect

func runSelect(title string, options []huh.Option[string]) (string, error) {
	var choice string

	err := huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(&choice).
		Run()

	return choice, err
}

// pickDomain resolves an id prefix to a domain. Without a prefix the only
// domain is used, or the user picks one.
func pickDomain(s state.State, prefix string) (models.Domain, error) {
	if prefix != "" {
		id, err := state.ExpandID(s.DomainIDs(), prefix)
		if err != nil {
			return models.Domain{}, err
		}

		d, _ := s.FindDomain(id)

		return d, nil
	}

	switch len(s.Domains) {
	case 0:
		return models.Domain{}, errNoDomains
	case 1:
		return s.Domains[0], nil
	}

	options := make([]huh.Option[string], len(s.Domains))
	for i, d := range s.Domains {
		options[i] = huh.NewOption(d.Name, d.ID)
	}

	id, err := selectFunc("Domain", options)
	if err != nil {
		return models.Domain{}, err
	}

	d, _ := s.FindDomain(id)

	return d, nil
}

// pickSection resolves an id prefix to a section of d. Without a prefix
// the only section is used, or the user picks one.
func pickSection(d models.Domain, prefix string) (models.Section, error) {
	if prefix != "" {
		ids := make([]string, len(d.Sections))
		for i, sec := range d.Sections {
			ids[i] = sec.ID
		}

		id, err := state.ExpandID(ids, prefix)
		if err != nil {
			return models.Section{}, err
		}

		return findSection(d, id), nil
	}

	switch len(d.Sections) {
	case 0:
		return models.Section{}, errNoSections.Fmt(d.Name, shortID(d.ID))
	case 1:
		return d.Sections[0], nil
	}

	options := make([]huh.Option[string], len(d.Sections))
	for i, sec := range d.Sections {
		options[i] = huh.NewOption(sec.Name, sec.ID)
	}

	id, err := selectFunc("Section of "+d.Name, options)
	if err != nil {
		return models.Section{}, err
	}

	return findSection(d, id), nil
}

func findSection(d models.Domain, id string) models.Section {
	for _, sec := range d.Sections {
		if sec.ID == id {
			return sec
		}
	}

	return models.Section{}
}
