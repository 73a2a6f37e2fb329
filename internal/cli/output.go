package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

func writeStructured(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q: use json or yaml", format)
	}
}

// check prints the boolean answer and turns false into ErrCheckFailed.
func check(w io.Writer, ok bool) error {
	fmt.Fprintln(w, ok)
	if !ok {
		return ErrCheckFailed
	}
	return nil
}
