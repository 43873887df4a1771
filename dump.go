package dotenv

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Redacted replaces the value of secret variables in dump output.
const Redacted = "***redacted***"

// ErrNilResult is returned when Dump receives a nil result.
var ErrNilResult = errors.New("dotenv: result is nil")

type dumpFormat int

const (
	formatText dumpFormat = iota
	formatJSON
	formatYAML
	formatTOML
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

// dumpConfig holds options for Dump.
type dumpConfig struct {
	withSources bool     // Include line and written views for each variable
	format      dumpFormat
	indent      string   // Indentation for JSON output (default: "  ")
	secrets     []string // path.Match patterns of names to redact
}

// WithSources includes source attribution for each variable in the output.
func WithSources() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withSources = true
	}
}

// AsJSON outputs variables as a JSON object.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatJSON
	}
}

// AsYAML outputs variables as a YAML mapping.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatYAML
	}
}

// AsTOML outputs variables as a TOML document.
func AsTOML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatTOML
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  "). An empty string produces compact JSON.
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// WithSecrets redacts the values of variables whose names match any of the
// given path.Match patterns (e.g. "*_PASSWORD", "API_KEY").
func WithSecrets(patterns ...string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.secrets = append(cfg.secrets, patterns...)
	}
}

// ParseFormat returns the option selecting a named output format:
// "text" (or ""), "json", "yaml"/"yml" or "toml".
func ParseFormat(name string) (DumpOption, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return func(cfg *dumpConfig) { cfg.format = formatText }, nil
	case "json":
		return AsJSON(), nil
	case "yaml", "yml":
		return AsYAML(), nil
	case "toml":
		return AsTOML(), nil
	default:
		return nil, fmt.Errorf("unsupported dump format: %s (supported: text, json, yaml, toml)", name)
	}
}

// Dump writes the effective variables of a load result, sorted by name.
// Values of names matched by WithSecrets are written as Redacted.
// Returns an error if a secret pattern is malformed or writing fails.
func Dump(w io.Writer, res *Result, opts ...DumpOption) error {
	if res == nil {
		return ErrNilResult
	}

	config := dumpConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(&config)
	}

	for _, pattern := range config.secrets {
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("secret pattern %q: %w", pattern, err)
		}
	}

	entries := collectEntries(res, config)

	switch config.format {
	case formatJSON:
		return dumpAsJSON(w, entries, config)
	case formatYAML:
		return dumpAsYAML(w, entries, config)
	case formatTOML:
		return dumpAsTOML(w, entries, config)
	default:
		return dumpAsText(w, entries, config)
	}
}

// dumpEntry holds the output of a single variable.
type dumpEntry struct {
	Name    string `json:"-" yaml:"-" toml:"-"`
	Value   string `json:"value" yaml:"value" toml:"value"`
	Source  string `json:"source" yaml:"source" toml:"source"`
	Written []View `json:"written,omitempty" yaml:"written,omitempty" toml:"written,omitempty"`
}

func collectEntries(res *Result, config dumpConfig) []dumpEntry {
	vars := res.Vars()

	var entries []dumpEntry
	for _, p := range res.Provenance() {
		value := vars[p.Name]
		if isSecret(p.Name, config.secrets) {
			value = Redacted
		}
		entries = append(entries, dumpEntry{
			Name:    p.Name,
			Value:   value,
			Source:  p.Path + ":" + strconv.Itoa(p.Line),
			Written: p.Written,
		})
	}
	return entries
}

func isSecret(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// structured returns the value marshaled by the JSON, YAML and TOML formats.
func structured(entries []dumpEntry, config dumpConfig) any {
	if config.withSources {
		out := make(map[string]dumpEntry, len(entries))
		for _, e := range entries {
			out[e.Name] = e
		}
		return out
	}

	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Name] = e.Value
	}
	return out
}

// dumpAsText outputs variables in text format (NAME: value).
func dumpAsText(w io.Writer, entries []dumpEntry, config dumpConfig) error {
	for _, e := range entries {
		line := fmt.Sprintf("%s: %s", e.Name, e.Value)
		if config.withSources {
			line += fmt.Sprintf(" (source: %s", e.Source)
			if len(e.Written) > 0 {
				line += ", written: " + joinViews(e.Written)
			}
			line += ")"
		}
		line += "\n"

		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("write error: %w", err)
		}
	}

	return nil
}

// dumpAsJSON outputs variables as JSON.
func dumpAsJSON(w io.Writer, entries []dumpEntry, config dumpConfig) error {
	var data []byte
	var err error
	if config.indent != "" {
		data, err = json.MarshalIndent(structured(entries, config), "", config.indent)
	} else {
		data, err = json.Marshal(structured(entries, config))
	}

	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// dumpAsYAML outputs variables as YAML with two-space indentation.
func dumpAsYAML(w io.Writer, entries []dumpEntry, config dumpConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(structured(entries, config)); err != nil {
		return fmt.Errorf("yaml marshal error: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// dumpAsTOML outputs variables as TOML.
func dumpAsTOML(w io.Writer, entries []dumpEntry, config dumpConfig) error {
	if err := toml.NewEncoder(w).Encode(structured(entries, config)); err != nil {
		return fmt.Errorf("toml marshal error: %w", err)
	}

	return nil
}

func joinViews(views []View) string {
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.String()
	}
	return strings.Join(names, ",")
}
