package gitlab

// DiffRefs are the SHAs a merge request diff is based on.
type DiffRefs struct {
	BaseSHA  string `json:"base_sha"  yaml:"base_sha"  shape:"required"`
	HeadSHA  string `json:"head_sha"  yaml:"head_sha"  shape:"required"`
	StartSHA string `json:"start_sha" yaml:"start_sha" shape:"required"`
}

// MergeRequest is a project merge request.
type MergeRequest struct {
	ID             int       `json:"id"                         yaml:"id"                         shape:"required"`
	IID            int       `json:"iid"                        yaml:"iid"                        shape:"required"`
	ProjectID      int       `json:"project_id"                 yaml:"project_id"                 shape:"required"`
	Title          string    `json:"title"                      yaml:"title"                      shape:"required"`
	Description    *string   `json:"description"                yaml:"description"`
	State          string    `json:"state"                      yaml:"state"                      shape:"required"`
	Merged         bool      `json:"merged,omitempty"           yaml:"merged,omitempty"`
	Draft          bool      `json:"draft,omitempty"            yaml:"draft,omitempty"`
	Author         User      `json:"author"                     yaml:"author"                     shape:"required"`
	Assignees      []User    `json:"assignees"                  yaml:"assignees"                  shape:"default=[]"`
	SourceBranch   string    `json:"source_branch"              yaml:"source_branch"              shape:"required"`
	TargetBranch   string    `json:"target_branch"              yaml:"target_branch"              shape:"required"`
	DiffRefs       *DiffRefs `json:"diff_refs,omitempty"        yaml:"diff_refs,omitempty"`
	WebURL         string    `json:"web_url"                    yaml:"web_url"                    shape:"required"`
	CreatedAt      string    `json:"created_at"                 yaml:"created_at"                 shape:"required"`
	UpdatedAt      string    `json:"updated_at"                 yaml:"updated_at"                 shape:"required"`
	MergedAt       *string   `json:"merged_at,omitempty"        yaml:"merged_at,omitempty"`
	ClosedAt       *string   `json:"closed_at,omitempty"        yaml:"closed_at,omitempty"`
	MergeCommitSHA *string   `json:"merge_commit_sha,omitempty" yaml:"merge_commit_sha,omitempty"`
}

// MergeRequestChanges is a merge request together with its diffs.
type MergeRequestChanges struct {
	MergeRequest

	Changes      []Diff `json:"changes"                 yaml:"changes"                 shape:"required"`
	ChangesCount string `json:"changes_count,omitempty" yaml:"changes_count,omitempty"`
	Overflow     bool   `json:"overflow,omitempty"      yaml:"overflow,omitempty"`
}

// ListMergeRequestsOptions are the parameters of GET /projects/:id/merge_requests.
type ListMergeRequestsOptions struct {
	ListOptions

	State         string `json:"state,omitempty"          url:"state,omitempty"          yaml:"state,omitempty"          shape:"enum=opened|closed|locked|merged|all"  desc:"Return merge requests with a specific state"`
	OrderBy       string `json:"order_by,omitempty"       url:"order_by,omitempty"       yaml:"order_by,omitempty"       shape:"enum=created_at|updated_at"            desc:"Return merge requests ordered by field"`
	Sort          string `json:"sort,omitempty"           url:"sort,omitempty"           yaml:"sort,omitempty"           shape:"enum=asc|desc"                         desc:"Sort direction"`
	Milestone     string `json:"milestone,omitempty"      url:"milestone,omitempty"      yaml:"milestone,omitempty"                                                    desc:"Milestone title"`
	Labels        string `json:"labels,omitempty"         url:"labels,omitempty"         yaml:"labels,omitempty"                                                       desc:"Comma-separated list of label names"`
	CreatedAfter  string `json:"created_after,omitempty"  url:"created_after,omitempty"  yaml:"created_after,omitempty"                                                desc:"Return merge requests created after the given time"`
	CreatedBefore string `json:"created_before,omitempty" url:"created_before,omitempty" yaml:"created_before,omitempty"                                               desc:"Return merge requests created before the given time"`
	UpdatedAfter  string `json:"updated_after,omitempty"  url:"updated_after,omitempty"  yaml:"updated_after,omitempty"                                                desc:"Return merge requests updated after the given time"`
	UpdatedBefore string `json:"updated_before,omitempty" url:"updated_before,omitempty" yaml:"updated_before,omitempty"                                               desc:"Return merge requests updated before the given time"`
	Scope         string `json:"scope,omitempty"          url:"scope,omitempty"          yaml:"scope,omitempty"          shape:"enum=created_by_me|assigned_to_me|all" desc:"Return merge requests from a specific scope"`
	AuthorID      *int   `json:"author_id,omitempty"      url:"author_id,omitempty"      yaml:"author_id,omitempty"                                                    desc:"Return merge requests created by the given user ID"`
	AssigneeID    *int   `json:"assignee_id,omitempty"    url:"assignee_id,omitempty"    yaml:"assignee_id,omitempty"                                                  desc:"Return merge requests assigned to the given user ID"`
	Search        string `json:"search,omitempty"         url:"search,omitempty"         yaml:"search,omitempty"                                                       desc:"Search merge requests against their title and description"`
	SourceBranch  string `json:"source_branch,omitempty"  url:"source_branch,omitempty"  yaml:"source_branch,omitempty"                                                desc:"Return merge requests with the given source branch"`
	TargetBranch  string `json:"target_branch,omitempty"  url:"target_branch,omitempty"  yaml:"target_branch,omitempty"                                                desc:"Return merge requests with the given target branch"`
	WIP           string `json:"wip,omitempty"            url:"wip,omitempty"            yaml:"wip,omitempty"            shape:"enum=yes|no"                           desc:"Filter merge requests against their draft status"`
}

// CreateMergeRequestOptions is the body of POST /projects/:id/merge_requests.
type CreateMergeRequestOptions struct {
	Title              string `json:"title"                         yaml:"title"                         shape:"required" desc:"Merge request title"`
	Description        string `json:"description,omitempty"         yaml:"description,omitempty"                          desc:"Merge request description"`
	SourceBranch       string `json:"source_branch"                 yaml:"source_branch"                 shape:"required" desc:"Branch containing changes"`
	TargetBranch       string `json:"target_branch"                 yaml:"target_branch"                 shape:"required" desc:"Branch to merge into"`
	AllowCollaboration *bool  `json:"allow_collaboration,omitempty" yaml:"allow_collaboration,omitempty"                  desc:"Allow commits from upstream members"`
	Draft              *bool  `json:"draft,omitempty"               yaml:"draft,omitempty"                                desc:"Create as draft merge request"`
}

// UpdateMergeRequestOptions is the body of PUT .../merge_requests/:iid.
type UpdateMergeRequestOptions struct {
	Title              *string       `json:"title,omitempty"                yaml:"title,omitempty"                desc:"New MR title"`
	Description        *string       `json:"description,omitempty"          yaml:"description,omitempty"          desc:"New MR description"`
	TargetBranch       *string       `json:"target_branch,omitempty"        yaml:"target_branch,omitempty"        desc:"New target branch"`
	AssigneeIDs        []int         `json:"assignee_ids,omitempty"         yaml:"assignee_ids,omitempty"         desc:"Assignee user IDs"`
	ReviewerIDs        []int         `json:"reviewer_ids,omitempty"         yaml:"reviewer_ids,omitempty"         desc:"Reviewer user IDs"`
	Labels             Labels        `json:"labels,omitempty"               yaml:"labels,omitempty"               desc:"Label names"`
	MilestoneID        Nullable[int] `json:"milestone_id,omitempty"         yaml:"milestone_id,omitempty"         desc:"Milestone ID"`
	StateEvent         string        `json:"state_event,omitempty"          yaml:"state_event,omitempty"          shape:"enum=close|reopen" desc:"State transition"`
	RemoveSourceBranch *bool         `json:"remove_source_branch,omitempty" yaml:"remove_source_branch,omitempty" desc:"Remove source branch after merge"`
	Squash             *bool         `json:"squash,omitempty"               yaml:"squash,omitempty"               desc:"Squash commits on merge"`
	Draft              *bool         `json:"draft,omitempty"                yaml:"draft,omitempty"                desc:"Mark as draft"`
}

// ApproveMergeRequestOptions is the body of POST .../approve.
type ApproveMergeRequestOptions struct {
	SHA string `json:"sha,omitempty" yaml:"sha,omitempty" desc:"HEAD SHA to ensure MR hasn't changed"`
}

// MergeOptions is the body of PUT .../merge, shared by merge and auto-merge.
type MergeOptions struct {
	MergeCommitMessage       string `json:"merge_commit_message,omitempty"        yaml:"merge_commit_message,omitempty"        desc:"Custom merge commit message"`
	SquashCommitMessage      string `json:"squash_commit_message,omitempty"       yaml:"squash_commit_message,omitempty"       desc:"Custom squash commit message"`
	Squash                   *bool  `json:"squash,omitempty"                      yaml:"squash,omitempty"                      desc:"Squash commits into single commit"`
	ShouldRemoveSourceBranch *bool  `json:"should_remove_source_branch,omitempty" yaml:"should_remove_source_branch,omitempty" desc:"Remove source branch after merge"`
	SHA                      string `json:"sha,omitempty"                         yaml:"sha,omitempty"                         desc:"HEAD SHA to ensure source branch hasn't changed"`
}

// GetChangesOptions are the parameters of GET .../merge_requests/:iid/changes.
type GetChangesOptions struct {
	AccessRawDiffs *bool `json:"access_raw_diffs,omitempty" url:"access_raw_diffs,omitempty" yaml:"access_raw_diffs,omitempty" desc:"Get raw diff data"`
}

// RebaseOptions is the body of PUT .../rebase.
type RebaseOptions struct {
	SkipCI *bool `json:"skip_ci,omitempty" yaml:"skip_ci,omitempty" desc:"Skip CI pipeline after rebase"`
}

// RebaseResult reports whether a rebase was scheduled.
type RebaseResult struct {
	RebaseInProgress bool    `json:"rebase_in_progress"      yaml:"rebase_in_progress"`
	MergeError       *string `json:"merge_error,omitempty"   yaml:"merge_error,omitempty"`
}

// DiffPosition anchors a discussion to a line of a diff.
type DiffPosition struct {
	BaseSHA      string `json:"base_sha"           yaml:"base_sha"           shape:"required"            desc:"Base commit SHA"`
	StartSHA     string `json:"start_sha"          yaml:"start_sha"          shape:"required"            desc:"Start commit SHA"`
	HeadSHA      string `json:"head_sha"           yaml:"head_sha"           shape:"required"            desc:"Head commit SHA"`
	PositionType string `json:"position_type"      yaml:"position_type"      shape:"required,enum=text|image" desc:"Position type"`
	OldPath      string `json:"old_path,omitempty" yaml:"old_path,omitempty"                             desc:"File path before change"`
	NewPath      string `json:"new_path,omitempty" yaml:"new_path,omitempty"                             desc:"File path after change"`
	OldLine      *int   `json:"old_line,omitempty" yaml:"old_line,omitempty"                             desc:"Line number before change"`
	NewLine      *int   `json:"new_line,omitempty" yaml:"new_line,omitempty"                             desc:"Line number after change"`
}

// CreateDiscussionOptions is the body of POST .../discussions.
type CreateDiscussionOptions struct {
	Body     string        `json:"body"               yaml:"body"               shape:"required" desc:"Discussion content"`
	Position *DiffPosition `json:"position,omitempty" yaml:"position,omitempty"                  desc:"Position for diff discussion"`
}
