package tools

import (
	"github.com/spf13/cast"
)

// ID is a project or group reference: a numeric id or a full path. Numbers
// are accepted and turned into their string form.
type ID string

// NormalizeShape turns numeric ids into strings.
func (ID) NormalizeShape(v interface{}) interface{} {
	switch v.(type) {
	case string, nil, bool, map[string]interface{}, []interface{}:
		return v
	}

	if s, err := cast.ToStringE(v); err == nil {
		return s
	}

	return v
}

// ShapeSchema declares both accepted JSON types.
func (ID) ShapeSchema() map[string]interface{} {
	return map[string]interface{}{"type": []string{"string", "number"}}
}

func (id ID) String() string {
	return string(id)
}

// NoArgs is the argument type of tools that take none.
type NoArgs struct{}

// ProjectArgs identifies a project.
type ProjectArgs struct {
	ProjectID ID `json:"project_id" shape:"required" desc:"Project ID or URL-encoded path"`
}

// GroupArgs identifies a group.
type GroupArgs struct {
	GroupID ID `json:"group_id" shape:"required" desc:"Group ID or URL-encoded path"`
}

// IssueArgs identifies an issue of a project.
type IssueArgs struct {
	ProjectArgs

	IssueIID int `json:"issue_iid" shape:"required,min=1" desc:"The internal ID of the project issue"`
}

// MergeRequestArgs identifies a merge request of a project.
type MergeRequestArgs struct {
	ProjectArgs

	MergeRequestIID int `json:"merge_request_iid" shape:"required,min=1" desc:"The internal ID of the merge request"`
}

// PipelineArgs identifies a pipeline of a project.
type PipelineArgs struct {
	ProjectArgs

	PipelineID int `json:"pipeline_id" shape:"required,min=1" desc:"The ID of the pipeline"`
}

// JobArgs identifies a job of a project.
type JobArgs struct {
	ProjectArgs

	JobID int `json:"job_id" shape:"required,min=1" desc:"The ID of the job"`
}
