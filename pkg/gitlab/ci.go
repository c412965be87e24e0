package gitlab

import (
	"strings"

	"github.com/spf13/cast"
)

// DetailedStatus is the UI status block of a pipeline.
type DetailedStatus struct {
	Icon        string `json:"icon"                   yaml:"icon"                   shape:"required"`
	Text        string `json:"text"                   yaml:"text"                   shape:"required"`
	Label       string `json:"label"                  yaml:"label"                  shape:"required"`
	Group       string `json:"group"                  yaml:"group"                  shape:"required"`
	Tooltip     string `json:"tooltip"                yaml:"tooltip"                shape:"required"`
	HasDetails  bool   `json:"has_details"            yaml:"has_details"            shape:"required"`
	DetailsPath string `json:"details_path,omitempty" yaml:"details_path,omitempty"`
	Favicon     string `json:"favicon,omitempty"      yaml:"favicon,omitempty"`
}

// Pipeline is a CI pipeline.
type Pipeline struct {
	ID             int             `json:"id"                        yaml:"id"                        shape:"required"`
	IID            int             `json:"iid,omitempty"             yaml:"iid,omitempty"`
	ProjectID      int             `json:"project_id"                yaml:"project_id"                shape:"required"`
	SHA            string          `json:"sha"                       yaml:"sha"                       shape:"required"`
	Ref            string          `json:"ref"                       yaml:"ref"                       shape:"required"`
	Status         string          `json:"status"                    yaml:"status"                    shape:"required,enum=created|waiting_for_resource|preparing|pending|running|success|failed|canceled|skipped|manual|scheduled"`
	Source         string          `json:"source,omitempty"          yaml:"source,omitempty"`
	CreatedAt      string          `json:"created_at"                yaml:"created_at"                shape:"required"`
	UpdatedAt      string          `json:"updated_at"                yaml:"updated_at"                shape:"required"`
	WebURL         string          `json:"web_url"                   yaml:"web_url"                   shape:"required"`
	BeforeSHA      string          `json:"before_sha,omitempty"      yaml:"before_sha,omitempty"`
	Tag            bool            `json:"tag,omitempty"             yaml:"tag,omitempty"`
	YAMLErrors     *string         `json:"yaml_errors,omitempty"     yaml:"yaml_errors,omitempty"`
	User           *User           `json:"user,omitempty"            yaml:"user,omitempty"`
	StartedAt      *string         `json:"started_at,omitempty"      yaml:"started_at,omitempty"`
	FinishedAt     *string         `json:"finished_at,omitempty"     yaml:"finished_at,omitempty"`
	CommittedAt    *string         `json:"committed_at,omitempty"    yaml:"committed_at,omitempty"`
	Duration       *float64        `json:"duration,omitempty"        yaml:"duration,omitempty"`
	QueuedDuration *float64        `json:"queued_duration,omitempty" yaml:"queued_duration,omitempty"`
	Coverage       *string         `json:"coverage,omitempty"        yaml:"coverage,omitempty"`
	DetailedStatus *DetailedStatus `json:"detailed_status,omitempty" yaml:"detailed_status,omitempty"`
}

// JobCommit is the commit a job ran for.
type JobCommit struct {
	ID          string `json:"id"                yaml:"id"                shape:"required"`
	ShortID     string `json:"short_id"          yaml:"short_id"          shape:"required"`
	Title       string `json:"title"             yaml:"title"             shape:"required"`
	CreatedAt   string `json:"created_at"        yaml:"created_at"        shape:"required"`
	AuthorName  string `json:"author_name"       yaml:"author_name"       shape:"required"`
	AuthorEmail string `json:"author_email"      yaml:"author_email"      shape:"required"`
	Message     string `json:"message,omitempty" yaml:"message,omitempty"`
}

// JobPipeline is the pipeline a job belongs to.
type JobPipeline struct {
	ID        int    `json:"id"         yaml:"id"         shape:"required"`
	ProjectID int    `json:"project_id" yaml:"project_id" shape:"required"`
	SHA       string `json:"sha"        yaml:"sha"        shape:"required"`
	Ref       string `json:"ref"        yaml:"ref"        shape:"required"`
	Status    string `json:"status"     yaml:"status"     shape:"required"`
	CreatedAt string `json:"created_at" yaml:"created_at" shape:"required"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at" shape:"required"`
	WebURL    string `json:"web_url"    yaml:"web_url"    shape:"required"`
}

// Runner is the runner that picked up a job.
type Runner struct {
	ID          int    `json:"id"                  yaml:"id"                  shape:"required"`
	Description string `json:"description"         yaml:"description"         shape:"required"`
	Active      bool   `json:"active"              yaml:"active"              shape:"required"`
	IsShared    bool   `json:"is_shared,omitempty" yaml:"is_shared,omitempty"`
	Name        string `json:"name,omitempty"      yaml:"name,omitempty"`
}

// Job is a CI job.
type Job struct {
	ID                int           `json:"id"                            yaml:"id"                            shape:"required"`
	Status            string        `json:"status"                        yaml:"status"                        shape:"required,enum=created|pending|running|failed|success|canceled|skipped|manual"`
	Stage             string        `json:"stage"                         yaml:"stage"                         shape:"required"`
	Name              string        `json:"name"                          yaml:"name"                          shape:"required"`
	Ref               string        `json:"ref"                           yaml:"ref"                           shape:"required"`
	Tag               bool          `json:"tag"                           yaml:"tag"                           shape:"required"`
	Coverage          *float64      `json:"coverage,omitempty"            yaml:"coverage,omitempty"`
	AllowFailure      bool          `json:"allow_failure,omitempty"       yaml:"allow_failure,omitempty"`
	CreatedAt         string        `json:"created_at"                    yaml:"created_at"                    shape:"required"`
	StartedAt         *string       `json:"started_at,omitempty"          yaml:"started_at,omitempty"`
	FinishedAt        *string       `json:"finished_at,omitempty"         yaml:"finished_at,omitempty"`
	Duration          *float64      `json:"duration,omitempty"            yaml:"duration,omitempty"`
	QueuedDuration    *float64      `json:"queued_duration,omitempty"     yaml:"queued_duration,omitempty"`
	User              *User         `json:"user,omitempty"                yaml:"user,omitempty"`
	Commit            *JobCommit    `json:"commit,omitempty"              yaml:"commit,omitempty"`
	Pipeline          *JobPipeline  `json:"pipeline,omitempty"            yaml:"pipeline,omitempty"`
	WebURL            string        `json:"web_url"                       yaml:"web_url"                       shape:"required"`
	Artifacts         []interface{} `json:"artifacts,omitempty"           yaml:"artifacts,omitempty"`
	Runner            *Runner       `json:"runner,omitempty"              yaml:"runner,omitempty"`
	ArtifactsExpireAt *string       `json:"artifacts_expire_at,omitempty" yaml:"artifacts_expire_at,omitempty"`
	FailureReason     string        `json:"failure_reason,omitempty"      yaml:"failure_reason,omitempty"`
}

// Deployment is the last deployment of an environment.
type Deployment struct {
	ID         int         `json:"id"                   yaml:"id"                   shape:"required"`
	IID        int         `json:"iid"                  yaml:"iid"                  shape:"required"`
	Ref        string      `json:"ref"                  yaml:"ref"                  shape:"required"`
	SHA        string      `json:"sha"                  yaml:"sha"                  shape:"required"`
	CreatedAt  string      `json:"created_at"           yaml:"created_at"           shape:"required"`
	Status     string      `json:"status"               yaml:"status"               shape:"required"`
	User       *User       `json:"user,omitempty"       yaml:"user,omitempty"`
	Deployable interface{} `json:"deployable,omitempty" yaml:"deployable,omitempty"`
}

// Environment is a deployment environment.
type Environment struct {
	ID             int         `json:"id"                        yaml:"id"                        shape:"required"`
	Name           string      `json:"name"                      yaml:"name"                      shape:"required"`
	Slug           string      `json:"slug,omitempty"            yaml:"slug,omitempty"`
	ExternalURL    *string     `json:"external_url,omitempty"    yaml:"external_url,omitempty"`
	State          string      `json:"state,omitempty"           yaml:"state,omitempty"           shape:"enum=available|stopped"`
	CreatedAt      string      `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	UpdatedAt      string      `json:"updated_at,omitempty"      yaml:"updated_at,omitempty"`
	Tier           string      `json:"tier,omitempty"            yaml:"tier,omitempty"`
	LastDeployment *Deployment `json:"last_deployment,omitempty" yaml:"last_deployment,omitempty"`
}

// ListPipelinesOptions are the parameters of GET /projects/:id/pipelines.
type ListPipelinesOptions struct {
	ListOptions

	Status        string `json:"status,omitempty"         url:"status,omitempty"         yaml:"status,omitempty"         shape:"enum=created|waiting_for_resource|preparing|pending|running|success|failed|canceled|skipped|manual|scheduled" desc:"Filter by pipeline status"`
	Ref           string `json:"ref,omitempty"            url:"ref,omitempty"            yaml:"ref,omitempty"                                                                            desc:"Filter by branch or tag name"`
	SHA           string `json:"sha,omitempty"            url:"sha,omitempty"            yaml:"sha,omitempty"                                                                            desc:"Filter by SHA"`
	YAMLErrors    *bool  `json:"yaml_errors,omitempty"    url:"yaml_errors,omitempty"    yaml:"yaml_errors,omitempty"                                                                    desc:"Filter pipelines with YAML errors"`
	Username      string `json:"username,omitempty"       url:"username,omitempty"       yaml:"username,omitempty"                                                                       desc:"Filter by username who triggered"`
	UpdatedAfter  string `json:"updated_after,omitempty"  url:"updated_after,omitempty"  yaml:"updated_after,omitempty"                                                                  desc:"Return pipelines updated after date"`
	UpdatedBefore string `json:"updated_before,omitempty" url:"updated_before,omitempty" yaml:"updated_before,omitempty"                                                                 desc:"Return pipelines updated before date"`
	OrderBy       string `json:"order_by,omitempty"       url:"order_by,omitempty"       yaml:"order_by,omitempty"       shape:"enum=id|status|ref|updated_at|user_id"                   desc:"Order by field"`
	Sort          string `json:"sort,omitempty"           url:"sort,omitempty"           yaml:"sort,omitempty"           shape:"enum=asc|desc"                                          desc:"Sort direction"`
}

// PipelineVariable is one variable passed to a triggered pipeline.
type PipelineVariable struct {
	Key          string `json:"key"                     yaml:"key"                     shape:"required"`
	Value        string `json:"value"                   yaml:"value"                   shape:"required"`
	VariableType string `json:"variable_type,omitempty" yaml:"variable_type,omitempty" shape:"enum=env_var|file"`
}

// TriggerPipelineOptions is the body of POST /projects/:id/pipeline.
type TriggerPipelineOptions struct {
	Ref       string             `json:"ref"                 yaml:"ref"                 shape:"required" desc:"Branch or tag name to run pipeline for"`
	Variables []PipelineVariable `json:"variables,omitempty" yaml:"variables,omitempty"                  desc:"Pipeline variables"`
}

// ListJobsOptions are the parameters of GET .../pipelines/:pipeline_id/jobs.
// Scope is sent as scope[]=a&scope[]=b.
type ListJobsOptions struct {
	ListOptions

	Scope          []string `json:"scope,omitempty"           url:"scope,brackets,omitempty"  yaml:"scope,omitempty"           shape:"enum=created|pending|running|failed|success|canceled|skipped|manual" desc:"Filter by job status"`
	IncludeRetried *bool    `json:"include_retried,omitempty" url:"include_retried,omitempty" yaml:"include_retried,omitempty"                                                                            desc:"Include retried jobs"`
}

// ListEnvironmentsOptions are the parameters of GET /projects/:id/environments.
type ListEnvironmentsOptions struct {
	ListOptions

	Name   string `json:"name,omitempty"   url:"name,omitempty"   yaml:"name,omitempty"                                    desc:"Filter by environment name"`
	Search string `json:"search,omitempty" url:"search,omitempty" yaml:"search,omitempty"                                  desc:"Search environments by name"`
	States string `json:"states,omitempty" url:"states,omitempty" yaml:"states,omitempty" shape:"enum=available|stopped" desc:"Filter by state"`
}

// CILintOptions describes a CI configuration validation. An empty Content
// makes the client read .gitlab-ci.yml from the project's default branch.
type CILintOptions struct {
	Content           string `json:"content,omitempty"             yaml:"content,omitempty"                                 desc:"The .gitlab-ci.yml content to validate. When empty, the file is read from the project's default branch"`
	IncludeMergedYAML *bool  `json:"include_merged_yaml,omitempty" yaml:"include_merged_yaml,omitempty" shape:"default=true" desc:"Include the merged YAML in the response"`
}

// WantsMergedYAML reports whether the merged YAML was requested. It
// defaults to true.
func (o *CILintOptions) WantsMergedYAML() bool {
	if o == nil || o.IncludeMergedYAML == nil {
		return true
	}

	return *o.IncludeMergedYAML
}

// CILintResult is the outcome of a CI configuration validation. Valid is
// false whenever Errors is non-empty. MergedYAML and Includes are nil unless
// the merged YAML was requested; Includes is then set even when empty.
type CILintResult struct {
	Valid      bool      `json:"valid"                 yaml:"valid"`
	Errors     []string  `json:"errors"                yaml:"errors"`
	Warnings   []string  `json:"warnings"              yaml:"warnings"`
	MergedYAML *string   `json:"merged_yaml,omitempty" yaml:"merged_yaml,omitempty"`
	Includes   *[]string `json:"includes,omitempty"    yaml:"includes,omitempty"`
}

// IncludeList returns the includes, or nil when they were not requested.
func (r *CILintResult) IncludeList() []string {
	if r.Includes == nil {
		return nil
	}

	return *r.Includes
}

// CILintResponse is the raw body of POST /projects/:id/ci/lint. Older GitLab
// reports Status ("valid"/"invalid"), newer versions send Valid instead.
type CILintResponse struct {
	Status     interface{} `json:"status,omitempty"      yaml:"status,omitempty"`
	Valid      interface{} `json:"valid,omitempty"       yaml:"valid,omitempty"`
	Errors     []string    `json:"errors"                yaml:"errors"   shape:"default=[]"`
	Warnings   []string    `json:"warnings"              yaml:"warnings" shape:"default=[]"`
	MergedYAML *string     `json:"merged_yaml,omitempty" yaml:"merged_yaml,omitempty"`
	Includes   []CIInclude `json:"includes,omitempty"    yaml:"includes,omitempty"`
}

// LintStatus returns the reported status, preferring the newer valid field.
func (r *CILintResponse) LintStatus() bool {
	if r.Valid != nil {
		return ParseLintStatus(r.Valid)
	}

	return ParseLintStatus(r.Status)
}

// CIInclude is one entry of the lint includes list, reduced to its location.
type CIInclude string

// NormalizeShape reduces an include object to its location.
func (CIInclude) NormalizeShape(v interface{}) interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		if loc, ok := m["location"]; ok {
			return cast.ToString(loc)
		}

		return ""
	}

	return v
}

// ParseLintStatus maps a lint status to a bool. It accepts the string form
// ("valid", "invalid") and the bool form, and is idempotent on its own output.
func ParseLintStatus(status interface{}) bool {
	switch s := status.(type) {
	case bool:
		return s
	case string:
		if strings.EqualFold(strings.TrimSpace(s), "valid") {
			return true
		}

		if b, err := cast.ToBoolE(s); err == nil {
			return b
		}

		return false
	default:
		return false
	}
}
