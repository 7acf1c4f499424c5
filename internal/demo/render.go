package demo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Write for formats other than text, yaml and json.
var ErrUnknownFormat = errors.New("demo: unknown output format")

// Write renders r to w. "text" prints one line per case, e.g.
//
//	case 4 (division, a=b^k): MergeSort([5 3 8 1 9 2]) = [1 2 3 5 8 9]
//
// "yaml" and "json" serialize the whole report, run id included.
func Write(w io.Writer, r *Report, format string) error {
	switch format {
	case "text":
		for _, res := range r.Results {
			if _, err := fmt.Fprintf(w, "case %d (%s, %s): %s(%s) = %v\n",
				res.Case, res.Family, res.Condition, res.Name, res.Input, res.Value); err != nil {
				return fmt.Errorf("write case %d: %w", res.Case, err)
			}
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %q: %w", format, ErrUnknownFormat)
	}
}
