// Package report renders diffs and drift for terminals and pipelines.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/LuciusCaesar/D360-Client/internal/models"
	"github.com/LuciusCaesar/D360-Client/internal/reconcile"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, text, json or yaml)", s)
}

// WriteDiff renders d to w.
func WriteDiff(w io.Writer, d reconcile.Diff, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, d)
	case FormatYAML:
		return writeYAML(w, d)
	case FormatText:
		return diffText(w, d)
	case FormatTable:
		return diffTable(w, d)
	}
	return fmt.Errorf("unknown output format %q", f)
}

// WriteDrift renders drift to w.
func WriteDrift(w io.Writer, drift []reconcile.TypeDrift, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, drift)
	case FormatYAML:
		return writeYAML(w, drift)
	case FormatText:
		return driftText(w, drift)
	case FormatTable:
		return driftTable(w, drift)
	}
	return fmt.Errorf("unknown output format %q", f)
}

// WriteValue renders any catalog listing as json or yaml. Table and text
// fall back to indented JSON.
func WriteValue(w io.Writer, v any, f Format) error {
	if f == FormatYAML {
		return writeYAML(w, v)
	}
	return writeJSON(w, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// writeYAML goes through JSON first so that wire names and custom encoders
// apply to YAML output as well.
func writeYAML(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

type diffRow struct {
	change string
	entity string
	name   string
	uid    string
	detail string
}

func diffRows(d reconcile.Diff) []diffRow {
	var rows []diffRow
	addTypes := func(change string, types []models.AssetType) {
		for _, t := range types {
			rows = append(rows, diffRow{change, "AssetType", t.Name, t.UID, string(t.Class.Value)})
		}
	}
	addAssets := func(change string, assets []models.Asset) {
		for _, a := range assets {
			rows = append(rows, diffRow{change, "Asset", a.Name, a.AssetUID, a.AssetTypeUID})
		}
	}
	addTypes("+", d.AssetTypesToBeAdded)
	addTypes("-", d.AssetTypesToBeDeleted)
	addAssets("+", d.AssetsToBeAdded)
	addAssets("-", d.AssetsToBeDeleted)
	return rows
}

func diffText(w io.Writer, d reconcile.Diff) error {
	if d.IsEmpty() {
		_, err := fmt.Fprintln(w, color.GreenString("No changes needed"))
		return err
	}
	var buf bytes.Buffer
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	cyan.Fprintf(&buf, "@@ %s @@\n", d.Summary())
	for _, r := range diffRows(d) {
		c := green
		if r.change == "-" {
			c = red
		}
		c.Fprintf(&buf, "%s %s %s (%s) %s\n", r.change, r.entity, r.name, r.uid, r.detail)
	}
	_, err := buf.WriteTo(w)
	return err
}

func diffTable(w io.Writer, d reconcile.Diff) error {
	if d.IsEmpty() {
		_, err := fmt.Fprintln(w, "No changes needed")
		return err
	}
	var rows [][]string
	for _, r := range diffRows(d) {
		rows = append(rows, []string{r.change, r.entity, r.name, r.uid, r.detail})
	}
	if err := renderTable(w, []string{"Change", "Entity", "Name", "UID", "Class / Type"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, d.Summary())
	return err
}

func driftText(w io.Writer, drift []reconcile.TypeDrift) error {
	if len(drift) == 0 {
		_, err := fmt.Fprintln(w, color.GreenString("No drift"))
		return err
	}
	var buf bytes.Buffer
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)
	for _, d := range drift {
		cyan.Fprintf(&buf, "@@ %s @@\n", d.Name)
		for _, op := range d.Patch {
			if op.Type != "add" {
				red.Fprintf(&buf, "- %s: %s\n", op.Path, render(op.OldValue))
			}
			if op.Type != "remove" {
				green.Fprintf(&buf, "+ %s: %s\n", op.Path, render(op.Value))
			}
		}
	}
	_, err := buf.WriteTo(w)
	return err
}

func driftTable(w io.Writer, drift []reconcile.TypeDrift) error {
	if len(drift) == 0 {
		_, err := fmt.Fprintln(w, "No drift")
		return err
	}
	var rows [][]string
	for _, d := range drift {
		for _, op := range d.Patch {
			rows = append(rows, []string{d.Name, op.Type, op.Path, render(op.OldValue), render(op.Value)})
		}
	}
	return renderTable(w, []string{"Asset Type", "Op", "Path", "Current", "Target"}, rows)
}

// render prints a patch value compactly.
func render(v any) string {
	if v == nil {
		return ""
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// WriteTable renders rows under header. Used for catalog listings.
func WriteTable(w io.Writer, header []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	return renderTable(w, header, rows)
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	cols := make([]any, len(header))
	for i, h := range header {
		cols[i] = h
	}
	table.Header(cols...)
	for _, r := range rows {
		if err := table.Append(r); err != nil {
			return err
		}
	}
	return table.Render()
}
