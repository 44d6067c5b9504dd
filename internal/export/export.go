// Package export writes a list screen's filtered rows, projected onto its
// columns, as CSV, JSON, or YAML.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/restodesk/internal/log"
)

// Format is an export file format.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{CSV, JSON, YAML}

// ParseFormat accepts a format name or file extension, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "", "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unsupported export format %q (want csv, json or yaml)", s)
}

// Table is a header row and string rows of the same width.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Write encodes t to w in format f.
func Write(w io.Writer, f Format, t Table) error {
	switch f {
	case CSV:
		return writeCSV(w, t)
	case JSON:
		return writeJSON(w, t)
	case YAML:
		return writeYAML(w, t)
	}
	return fmt.Errorf("unsupported export format %q", f)
}

func writeCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}

// objects turns rows into maps keyed by header, keeping header order.
func objects(t Table) []yaml.Node {
	out := make([]yaml.Node, 0, len(t.Rows))
	for _, row := range t.Rows {
		obj := yaml.Node{Kind: yaml.MappingNode}
		for i, h := range t.Headers {
			var v string
			if i < len(row) {
				v = row[i]
			}
			obj.Content = append(obj.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: h},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v},
			)
		}
		out = append(out, obj)
	}
	return out
}

func writeYAML(w io.Writer, t Table) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, obj := range objects(t) {
		seq.Content = append(seq.Content, &obj)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return enc.Close()
}

// orderedRow marshals as a JSON object with keys in header order.
type orderedRow struct {
	headers []string
	values  []string
}

func (r orderedRow) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, h := range r.headers {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(h)
		if err != nil {
			return nil, err
		}
		var v string
		if i < len(r.values) {
			v = r.values[i]
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

func writeJSON(w io.Writer, t Table) error {
	rows := make([]orderedRow, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = orderedRow{headers: t.Headers, values: r}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// FileName returns "<screen>-<yyyymmdd-hhmmss>.<ext>".
func FileName(screen string, f Format, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", screen, now.Format("20060102-150405"), f)
}

// ToFile writes t into dir under FileName and returns the path.
func ToFile(dir, screen string, f Format, t Table, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(screen, f, now))
	file, err := os.Create(path) // #nosec G304 -- path is built from config and a generated name
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if err := Write(file, f, t); err != nil {
		_ = file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	log.Info(log.CatExport, "exported", "screen", screen, "format", string(f), "rows", len(t.Rows), "path", path)
	return path, nil
}
