package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/gitlab-mcp/internal/constants"
	"github.com/fivetwenty-io/gitlab-mcp/internal/tools"
	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

func TestWriteResult_ListTable(t *testing.T) {
	t.Parallel()

	result := &gitlab.ListResponse[gitlab.Label]{
		Count: 2,
		Items: []gitlab.Label{
			{ID: 1, Name: "bug", Color: "#d9534f"},
			{ID: 2, Name: "feature", Color: "#5cb85c"},
		},
	}

	var out bytes.Buffer
	require.NoError(t, writeResult(&out, constants.FormatTable, result))

	assert.Contains(t, out.String(), "ID")
	assert.Contains(t, out.String(), "bug")
	assert.Contains(t, out.String(), "feature")
	assert.NotContains(t, out.String(), "#d9534f")
}

func TestWriteResult_Formats(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, writeResult(&out, constants.FormatTable, tools.Text("Branch 'main' has been deleted.")))
	assert.Equal(t, "Branch 'main' has been deleted.\n", out.String())

	out.Reset()
	require.NoError(t, writeResult(&out, constants.FormatYAML, &gitlab.ListResponse[gitlab.Label]{Items: []gitlab.Label{}}))
	assert.Equal(t, "count: 0\nitems: []\n", out.String())

	out.Reset()
	require.NoError(t, writeResult(&out, constants.FormatJSON, &gitlab.ListResponse[gitlab.Label]{Items: []gitlab.Label{}}))
	assert.Equal(t, "{\n  \"count\": 0,\n  \"items\": []\n}\n", out.String())
}

func TestCell(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cell(nil))
	assert.Equal(t, "main", cell("main"))
	assert.Equal(t, `["a","b"]`, cell([]interface{}{"a", "b"}))
	assert.Equal(t, "true", cell(true))
}
