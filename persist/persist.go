// Package persist reads and writes the versioned settings document
// shared with the panel layer. Documents carry either a single settings
// object or a pair of them for comparison mode; missing fields are
// filled from computed defaults, and corrupt input degrades to the
// defaults instead of surfacing an error.
package persist

import (
	"encoding/json"
	"io"
	"os"

	"github.com/midbel/barplot"
)

// Version is the document version written by Encode. Version 1
// documents (single settings object only) are still accepted.
const Version = 2

type document struct {
	Version  int               `json:"version"`
	Settings json.RawMessage   `json:"settings,omitempty"`
	Charts   []json.RawMessage `json:"charts,omitempty"`
}

// Decode parses a settings document. The result always holds at least
// one settings value; unknown versions and malformed payloads fall back
// to defaults field by field.
func Decode(r io.Reader) []barplot.Settings {
	data, err := io.ReadAll(r)
	if err != nil {
		return []barplot.Settings{barplot.DefaultSettings()}
	}
	return decode(data)
}

func decode(data []byte) []barplot.Settings {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return []barplot.Settings{barplot.DefaultSettings()}
	}
	if doc.Version > Version {
		return []barplot.Settings{barplot.DefaultSettings()}
	}
	var raws []json.RawMessage
	switch {
	case len(doc.Charts) > 0:
		raws = doc.Charts
	case len(doc.Settings) > 0:
		raws = []json.RawMessage{doc.Settings}
	default:
		return []barplot.Settings{barplot.DefaultSettings()}
	}
	if len(raws) > 2 {
		raws = raws[:2]
	}
	out := make([]barplot.Settings, 0, len(raws))
	for _, raw := range raws {
		out = append(out, merge(raw))
	}
	return out
}

// merge unmarshals raw over a fully populated default value, so absent
// fields keep their defaults.
func merge(raw json.RawMessage) barplot.Settings {
	s := barplot.DefaultSettings()
	if err := json.Unmarshal(raw, &s); err != nil {
		return barplot.DefaultSettings()
	}
	return s
}

// Encode writes the document for one or two settings values.
func Encode(w io.Writer, list ...barplot.Settings) error {
	if len(list) == 0 {
		list = []barplot.Settings{barplot.DefaultSettings()}
	}
	doc := document{Version: Version}
	if len(list) == 1 {
		raw, err := json.Marshal(list[0])
		if err != nil {
			return err
		}
		doc.Settings = raw
	} else {
		for _, s := range list[:2] {
			raw, err := json.Marshal(s)
			if err != nil {
				return err
			}
			doc.Charts = append(doc.Charts, raw)
		}
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(doc)
}

// Load reads a settings file; a missing or unreadable file yields the
// defaults with no error.
func Load(path string) []barplot.Settings {
	f, err := os.Open(path)
	if err != nil {
		return []barplot.Settings{barplot.DefaultSettings()}
	}
	defer f.Close()
	return Decode(f)
}

// Save writes the settings file, creating it when needed.
func Save(path string, list ...barplot.Settings) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Encode(f, list...)
}
