// Package export writes the complete focusplan state in a portable format
package export

import (
	"encoding/json"
	"io"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/focusplan/internal/apperr"
	"github.com/ayoisaiah/focusplan/state"
)

// Format is an export encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var errUnknownFormat = &apperr.Error{
	Message: "unknown export format %q (expected one of: %s)",
}

// Formats lists the supported formats.
func Formats() []string {
	return []string{string(JSON), string(YAML), string(TOML)}
}

// ParseFormat validates a format name. The empty string selects JSON.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return JSON, nil
	}

	if name == "yml" {
		return YAML, nil
	}

	if !slices.Contains(Formats(), name) {
		return "", errUnknownFormat.Fmt(name, strings.Join(Formats(), ", "))
	}

	return Format(name), nil
}

// Write encodes s to w.
func Write(w io.Writer, s state.State, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(s); err != nil {
			return err
		}

		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(s)
	case JSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(s)
	default:
		return errUnknownFormat.Fmt(format, strings.Join(Formats(), ", "))
	}
}
