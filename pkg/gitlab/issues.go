package gitlab

// IssueMilestone is the milestone summary embedded in issues.
type IssueMilestone struct {
	ID          int     `json:"id"          yaml:"id"          shape:"required"`
	IID         int     `json:"iid"         yaml:"iid"         shape:"required"`
	ProjectID   int     `json:"project_id"  yaml:"project_id"`
	Title       string  `json:"title"       yaml:"title"       shape:"required"`
	Description *string `json:"description" yaml:"description"`
	State       string  `json:"state"       yaml:"state"       shape:"required"`
	CreatedAt   string  `json:"created_at"  yaml:"created_at"`
	UpdatedAt   string  `json:"updated_at"  yaml:"updated_at"`
	DueDate     *string `json:"due_date"    yaml:"due_date"`
	StartDate   *string `json:"start_date"  yaml:"start_date"`
	WebURL      string  `json:"web_url"     yaml:"web_url"`
}

// Issue is a project issue.
type Issue struct {
	ID             int             `json:"id"                         yaml:"id"                         shape:"required"`
	IID            int             `json:"iid"                        yaml:"iid"                        shape:"required"`
	ProjectID      int             `json:"project_id"                 yaml:"project_id"                 shape:"required"`
	Title          string          `json:"title"                      yaml:"title"                      shape:"required"`
	Description    *string         `json:"description"                yaml:"description"`
	State          string          `json:"state"                      yaml:"state"                      shape:"required"`
	CreatedAt      string          `json:"created_at"                 yaml:"created_at"                 shape:"required"`
	UpdatedAt      string          `json:"updated_at"                 yaml:"updated_at"                 shape:"required"`
	ClosedAt       *string         `json:"closed_at"                  yaml:"closed_at"`
	ClosedBy       *User           `json:"closed_by,omitempty"        yaml:"closed_by,omitempty"`
	Labels         []LabelName     `json:"labels"                     yaml:"labels"                     shape:"required"`
	Milestone      *IssueMilestone `json:"milestone,omitempty"        yaml:"milestone,omitempty"`
	Assignees      []User          `json:"assignees"                  yaml:"assignees"                  shape:"required"`
	Author         User            `json:"author"                     yaml:"author"                     shape:"required"`
	UserNotesCount int             `json:"user_notes_count,omitempty" yaml:"user_notes_count,omitempty"`
	Upvotes        int             `json:"upvotes,omitempty"          yaml:"upvotes,omitempty"`
	Downvotes      int             `json:"downvotes,omitempty"        yaml:"downvotes,omitempty"`
	DueDate        *string         `json:"due_date,omitempty"         yaml:"due_date,omitempty"`
	Confidential   bool            `json:"confidential,omitempty"     yaml:"confidential,omitempty"`
	WebURL         string          `json:"web_url"                    yaml:"web_url"                    shape:"required"`
}

// Note is a comment on an issue or merge request.
type Note struct {
	ID           int         `json:"id"                      yaml:"id"                      shape:"required"`
	Body         string      `json:"body"                    yaml:"body"                    shape:"required"`
	Attachment   interface{} `json:"attachment"              yaml:"attachment"`
	Author       User        `json:"author"                  yaml:"author"                  shape:"required"`
	CreatedAt    string      `json:"created_at"              yaml:"created_at"              shape:"required"`
	UpdatedAt    string      `json:"updated_at"              yaml:"updated_at"              shape:"required"`
	System       bool        `json:"system"                  yaml:"system"                  shape:"required"`
	NoteableID   int         `json:"noteable_id"             yaml:"noteable_id"             shape:"required"`
	NoteableType string      `json:"noteable_type"           yaml:"noteable_type"           shape:"required"`
	NoteableIID  int         `json:"noteable_iid,omitempty"  yaml:"noteable_iid,omitempty"`
	Resolvable   bool        `json:"resolvable,omitempty"    yaml:"resolvable,omitempty"`
	Confidential bool        `json:"confidential,omitempty"  yaml:"confidential,omitempty"`
	Internal     bool        `json:"internal,omitempty"      yaml:"internal,omitempty"`
	Type         *string     `json:"type,omitempty"          yaml:"type,omitempty"`
	URL          string      `json:"url,omitempty"           yaml:"url,omitempty"`
}

// Discussion is a thread of notes.
type Discussion struct {
	ID             string `json:"id"              yaml:"id"              shape:"required"`
	IndividualNote bool   `json:"individual_note" yaml:"individual_note" shape:"required"`
	Notes          []Note `json:"notes"           yaml:"notes"           shape:"required"`
}

// ListIssuesOptions are the parameters of GET /projects/:id/issues. IID is
// not sent; it narrows the fetched page client-side.
type ListIssuesOptions struct {
	ListOptions

	IID           IIDFilter `json:"iid,omitempty"            url:"-"                        yaml:"iid,omitempty"            desc:"Filter by issue internal ID (applied to the fetched page)"`
	State         string    `json:"state,omitempty"          url:"state,omitempty"          yaml:"state,omitempty"          shape:"enum=opened|closed|all" desc:"Return issues with a specific state"`
	Labels        string    `json:"labels,omitempty"         url:"labels,omitempty"         yaml:"labels,omitempty"         desc:"Comma-separated list of label names"`
	Milestone     string    `json:"milestone,omitempty"      url:"milestone,omitempty"      yaml:"milestone,omitempty"      desc:"Milestone title"`
	Scope         string    `json:"scope,omitempty"          url:"scope,omitempty"          yaml:"scope,omitempty"          shape:"enum=created_by_me|assigned_to_me|all" desc:"Return issues from a specific scope"`
	AuthorID      *int      `json:"author_id,omitempty"      url:"author_id,omitempty"      yaml:"author_id,omitempty"      desc:"Return issues created by the given user ID"`
	AssigneeID    *int      `json:"assignee_id,omitempty"    url:"assignee_id,omitempty"    yaml:"assignee_id,omitempty"    desc:"Return issues assigned to the given user ID"`
	Search        string    `json:"search,omitempty"         url:"search,omitempty"         yaml:"search,omitempty"         desc:"Search issues against their title and description"`
	CreatedAfter  string    `json:"created_after,omitempty"  url:"created_after,omitempty"  yaml:"created_after,omitempty"  desc:"Return issues created after the given time"`
	CreatedBefore string    `json:"created_before,omitempty" url:"created_before,omitempty" yaml:"created_before,omitempty" desc:"Return issues created before the given time"`
	UpdatedAfter  string    `json:"updated_after,omitempty"  url:"updated_after,omitempty"  yaml:"updated_after,omitempty"  desc:"Return issues updated after the given time"`
	UpdatedBefore string    `json:"updated_before,omitempty" url:"updated_before,omitempty" yaml:"updated_before,omitempty" desc:"Return issues updated before the given time"`
	OrderBy       string    `json:"order_by,omitempty"       url:"order_by,omitempty"       yaml:"order_by,omitempty"       desc:"Return issues ordered by field"`
	Sort          string    `json:"sort,omitempty"           url:"sort,omitempty"           yaml:"sort,omitempty"           shape:"enum=asc|desc" desc:"Sort direction"`
}

// CreateIssueOptions is the body of POST /projects/:id/issues.
type CreateIssueOptions struct {
	Title       string `json:"title"                  yaml:"title"                  shape:"required" desc:"Issue title"`
	Description string `json:"description,omitempty"  yaml:"description,omitempty"                  desc:"Issue description"`
	AssigneeIDs []int  `json:"assignee_ids,omitempty" yaml:"assignee_ids,omitempty"                 desc:"Array of user IDs to assign"`
	MilestoneID *int   `json:"milestone_id,omitempty" yaml:"milestone_id,omitempty"                 desc:"Milestone ID to assign"`
	Labels      Labels `json:"labels,omitempty"       yaml:"labels,omitempty"                       desc:"Array of label names"`
}

// UpdateIssueOptions is the body of PUT /projects/:id/issues/:iid. A null
// milestone_id or due_date clears the field.
type UpdateIssueOptions struct {
	Title        *string          `json:"title,omitempty"        yaml:"title,omitempty"        desc:"New issue title"`
	Description  *string          `json:"description,omitempty"  yaml:"description,omitempty"  desc:"New issue description"`
	AssigneeIDs  []int            `json:"assignee_ids,omitempty" yaml:"assignee_ids,omitempty" desc:"Assignee user IDs"`
	MilestoneID  Nullable[int]    `json:"milestone_id,omitempty" yaml:"milestone_id,omitempty" desc:"Milestone ID"`
	Labels       Labels           `json:"labels,omitempty"       yaml:"labels,omitempty"       desc:"Label names"`
	StateEvent   string           `json:"state_event,omitempty"  yaml:"state_event,omitempty"  shape:"enum=close|reopen" desc:"State transition"`
	DueDate      Nullable[string] `json:"due_date,omitempty"     yaml:"due_date,omitempty"     desc:"Due date (YYYY-MM-DD)"`
	Confidential *bool            `json:"confidential,omitempty" yaml:"confidential,omitempty" desc:"Mark as confidential"`
}

// ListNotesOptions are the parameters of the notes list endpoints.
type ListNotesOptions struct {
	ListOptions

	Sort    string `json:"sort,omitempty"     url:"sort,omitempty"     yaml:"sort,omitempty"     shape:"enum=asc|desc"                desc:"Sort order"`
	OrderBy string `json:"order_by,omitempty" url:"order_by,omitempty" yaml:"order_by,omitempty" shape:"enum=created_at|updated_at" desc:"Order by field"`
}

// CreateNoteOptions is the body of the notes create endpoints.
type CreateNoteOptions struct {
	Body     string `json:"body"               yaml:"body"               shape:"required" desc:"Note content"`
	Internal *bool  `json:"internal,omitempty" yaml:"internal,omitempty"                  desc:"Create as internal note"`
}

// UpdateNoteOptions is the body of PUT .../notes/:note_id.
type UpdateNoteOptions struct {
	Body string `json:"body" yaml:"body" shape:"required" desc:"Updated note content"`
}
