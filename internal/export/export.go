// Package export encodes a parsed outline for machine consumption.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/itsmostafa/foldertree/internal/outline"
)

// Format is an output encoding for the tree command
type Format string

const (
	// FormatText is the box-drawing tree
	FormatText Format = "text"
	// FormatJSON is the forest as indented JSON
	FormatJSON Format = "json"
	// FormatYAML is the forest as YAML
	FormatYAML Format = "yaml"
)

// ParseFormat checks if the given format string is valid and returns the Format
func ParseFormat(format string) (Format, error) {
	switch Format(format) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format: %q (valid options: text, json, yaml)", format)
	}
}

// Write encodes forest to w in the given format. The text format writes the
// rendered tree followed by a newline (nothing for an empty forest).
func Write(w io.Writer, forest outline.Forest, format Format) error {
	switch format {
	case FormatText:
		if len(forest) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, outline.RenderString(forest))
		return err

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(nonNil(forest)); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nonNil(forest)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("unknown format: %q", format)
	}
}

// nonNil makes an empty forest encode as [] rather than null.
func nonNil(forest outline.Forest) outline.Forest {
	if forest == nil {
		return outline.Forest{}
	}
	return forest
}
