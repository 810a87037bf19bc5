// Package output renders invocation results as json, yaml or text.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/nandemo-ya/latticectl/internal/dispatch"
)

// Format is an output format
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatText:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: json, yaml, text)", s)
	}
}

// Render writes payload to w. A nil payload renders nothing.
func Render(w io.Writer, format Format, payload any) error {
	if payload == nil {
		return nil
	}

	value, err := normalize(payload)
	if err != nil {
		return err
	}
	if value == nil {
		return nil
	}

	switch format {
	case FormatJSON, "":
		return writeJSON(w, value)
	case FormatYAML:
		return writeYAML(w, value)
	case FormatText:
		return writeText(w, value)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// normalize converts SDK values into plain JSON values so every format
// shows the same field names. Response metadata is dropped and union
// members are keyed by their variant.
func normalize(payload any) (any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return stripMetadata(nameUnions(reflect.ValueOf(payload), value)), nil
}

// nameUnions walks the Go value alongside its decoded JSON and rewrites
// each union member {"Value": x} to {"<Variant>": x}.
func nameUnions(v reflect.Value, node any) any {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return node
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		m, ok := node.(map[string]any)
		if !ok {
			return node
		}
		if variant, ok := dispatch.UnionVariant(v.Type()); ok {
			if inner, ok := m["Value"]; ok && len(m) == 1 {
				return map[string]any{variant: nameUnions(v.FieldByName("Value"), inner)}
			}
		}
		for i := 0; i < v.NumField(); i++ {
			f := v.Type().Field(i)
			if !f.IsExported() || f.Anonymous {
				continue
			}
			if child, ok := m[f.Name]; ok {
				m[f.Name] = nameUnions(v.Field(i), child)
			}
		}
	case reflect.Slice, reflect.Array:
		items, ok := node.([]any)
		if !ok || len(items) != v.Len() {
			return node
		}
		for i := range items {
			items[i] = nameUnions(v.Index(i), items[i])
		}
	case reflect.Map:
		m, ok := node.(map[string]any)
		if !ok || v.Type().Key().Kind() != reflect.String {
			return node
		}
		iter := v.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			if child, ok := m[key]; ok {
				m[key] = nameUnions(iter.Value(), child)
			}
		}
	}
	return node
}

func stripMetadata(value any) any {
	switch v := value.(type) {
	case map[string]any:
		delete(v, "ResultMetadata")
		for k, item := range v {
			v[k] = stripMetadata(item)
		}
	case []any:
		for i, item := range v {
			v[i] = stripMetadata(item)
		}
	}
	return value
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, value any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

func writeText(w io.Writer, value any) error {
	switch v := value.(type) {
	case []any:
		if len(v) == 0 {
			return nil
		}
		if rows, ok := objectRows(v); ok {
			return writeTable(w, rows)
		}
		for _, item := range v {
			if _, err := fmt.Fprintln(w, scalar(item)); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		keys := sortedKeys(v)
		rows := pterm.TableData{{"KEY", "VALUE"}}
		for _, k := range keys {
			rows = append(rows, []string{k, scalar(v[k])})
		}
		return writeTable(w, rows)
	default:
		_, err := fmt.Fprintln(w, scalar(v))
		return err
	}
}

// objectRows lays out a list of objects as a table of their scalar fields.
func objectRows(items []any) (pterm.TableData, bool) {
	columns := map[string]bool{}
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		for k, val := range obj {
			switch val.(type) {
			case map[string]any, []any:
			default:
				columns[k] = true
			}
		}
	}

	header := sortedKeys(columns)
	if len(header) == 0 {
		return nil, false
	}

	rows := pterm.TableData{upper(header)}
	for _, item := range items {
		obj := item.(map[string]any)
		row := make([]string, len(header))
		for i, k := range header {
			row[i] = scalar(obj[k])
		}
		rows = append(rows, row)
	}
	return rows, true
}

func writeTable(w io.Writer, rows pterm.TableData) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err = fmt.Fprintln(w, table)
	return err
}

// scalar formats a value for a single cell or line.
func scalar(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprint(v)
	case bool:
		return fmt.Sprint(v)
	default:
		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(v); err != nil {
			return fmt.Sprint(v)
		}
		return strings.TrimSpace(buf.String())
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func upper(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToUpper(n)
	}
	return out
}
