package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"flowfinance/logging"
)

const (
	formatJSON    = "json"
	formatYAML    = "yaml"
	formatSummary = "summary"
)

// resolveFormat picks the summary for terminals and JSON for pipes unless flag names one.
func resolveFormat(flag string, out io.Writer) (string, error) {
	switch flag {
	case "":
		if logging.IsTerminal(out) {
			return formatSummary, nil
		}
		return formatJSON, nil
	case formatJSON, formatYAML, formatSummary:
		return flag, nil
	default:
		return "", fmt.Errorf("unknown output format %q", flag)
	}
}

// generic converts v into maps and slices through its JSON form, so every format sees the same
// field names and the irr / payback markers.
func generic(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func render(out io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		g, err := generic(v)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return err
		}
		return enc.Close()
	case formatSummary:
		g, err := generic(v)
		if err != nil {
			return err
		}
		return summarize(out, g)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func summarize(out io.Writer, v any) error {
	fields, ok := v.(map[string]any)
	if !ok {
		_, err := fmt.Fprintln(out, v)
		return err
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, k := range keys {
		switch val := fields[k].(type) {
		case float64:
			fmt.Fprintf(tw, "%s\t%.4f\n", k, val)
		default:
			fmt.Fprintf(tw, "%s\t%v\n", k, val)
		}
	}
	return tw.Flush()
}
