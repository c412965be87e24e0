package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
	"github.com/fivetwenty-io/gitlab-mcp/internal/json"
	"github.com/fivetwenty-io/gitlab-mcp/internal/tools"
)

// listColumns are shown, in this order, when a list result is rendered as
// a table.
var listColumns = []string{
	"id", "iid", "name", "title", "path_with_namespace", "full_path", "username",
	"state", "status", "ref", "source_branch", "target_branch", "web_url",
}

// writeOutput renders value in format. table fills the table; when it is nil
// the table format falls back to JSON.
func writeOutput(w io.Writer, format string, value interface{}, table func(*tablewriter.Table)) error {
	switch format {
	case constants.FormatJSON:
		return writeJSON(w, value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(constants.JSONIndentSize)

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	}

	if table == nil {
		return writeJSON(w, value)
	}

	t := tablewriter.NewWriter(w)
	table(t)

	if err := t.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func writeJSON(w io.Writer, value interface{}) error {
	data, err := json.MarshalIndent(value, "", strings.Repeat(" ", constants.JSONIndentSize))
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// writeResult renders a tool result. Text results are printed as is.
func writeResult(w io.Writer, format string, result interface{}) error {
	if text, ok := result.(tools.Text); ok && format != constants.FormatYAML {
		_, err := fmt.Fprintln(w, string(text))

		return err
	}

	if format != constants.FormatTable {
		return writeOutput(w, format, result, nil)
	}

	tree, err := toTree(result)
	if err != nil {
		return err
	}

	return writeOutput(w, format, result, resultTable(tree))
}

// toTree converts a typed result into maps and slices.
func toTree(value interface{}) (interface{}, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	var tree interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}

	return tree, nil
}

// resultTable picks a layout for tree: one row per item for a list result,
// property/value rows for a single object. Anything else prints as JSON.
func resultTable(tree interface{}) func(*tablewriter.Table) {
	object, ok := tree.(map[string]interface{})
	if !ok {
		return nil
	}

	if items, ok := object["items"].([]interface{}); ok {
		if _, hasCount := object["count"]; hasCount && len(object) == 2 {
			return listTable(items)
		}
	}

	return func(t *tablewriter.Table) {
		t.Header("Property", "Value")

		keys := make([]string, 0, len(object))
		for key := range object {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			_ = t.Append(key, cell(object[key]))
		}
	}
}

func listTable(items []interface{}) func(*tablewriter.Table) {
	present := make(map[string]bool)

	for _, item := range items {
		if object, ok := item.(map[string]interface{}); ok {
			for key := range object {
				present[key] = true
			}
		}
	}

	var columns []string

	for _, column := range listColumns {
		if present[column] {
			columns = append(columns, column)
		}
	}

	if len(columns) == 0 {
		return nil
	}

	return func(t *tablewriter.Table) {
		header := make([]interface{}, len(columns))
		for i, column := range columns {
			header[i] = strings.ToUpper(column)
		}

		t.Header(header...)

		for _, item := range items {
			object, _ := item.(map[string]interface{})

			row := make([]interface{}, len(columns))
			for i, column := range columns {
				row[i] = cell(object[column])
			}

			_ = t.Append(row...)
		}
	}
}

// cell renders one table value. Nested values are shown as compact JSON.
func cell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]interface{}, []interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(data)
	default:
		return fmt.Sprint(v)
	}
}
