package gitlab

// Project is the project record returned by search, create and fork calls.
type Project struct {
	ID                int     `json:"id"                          yaml:"id"                          shape:"required"`
	Name              string  `json:"name"                        yaml:"name"                        shape:"required"`
	Description       *string `json:"description"                 yaml:"description"`
	WebURL            string  `json:"web_url"                     yaml:"web_url"                     shape:"required"`
	DefaultBranch     string  `json:"default_branch,omitempty"    yaml:"default_branch,omitempty"`
	Visibility        string  `json:"visibility,omitempty"        yaml:"visibility,omitempty"        shape:"enum=private|internal|public"`
	SSHURLToRepo      string  `json:"ssh_url_to_repo"             yaml:"ssh_url_to_repo"             shape:"required"`
	HTTPURLToRepo     string  `json:"http_url_to_repo"            yaml:"http_url_to_repo"            shape:"required"`
	ReadmeURL         *string `json:"readme_url,omitempty"        yaml:"readme_url,omitempty"`
	ForksCount        int     `json:"forks_count,omitempty"       yaml:"forks_count,omitempty"`
	StarCount         int     `json:"star_count,omitempty"        yaml:"star_count,omitempty"`
	PathWithNamespace string  `json:"path_with_namespace,omitempty" yaml:"path_with_namespace,omitempty"`
	CreatedAt         string  `json:"created_at"                  yaml:"created_at"                  shape:"required"`
	LastActivityAt    string  `json:"last_activity_at"            yaml:"last_activity_at"            shape:"required"`
}

// Namespace is the owner of a project.
type Namespace struct {
	ID        int     `json:"id"                   yaml:"id"                   shape:"required"`
	Name      string  `json:"name"                 yaml:"name"                 shape:"required"`
	Path      string  `json:"path"                 yaml:"path"                 shape:"required"`
	Kind      string  `json:"kind"                 yaml:"kind"                 shape:"required"`
	FullPath  string  `json:"full_path"            yaml:"full_path"            shape:"required"`
	AvatarURL *string `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty"`
	WebURL    string  `json:"web_url,omitempty"    yaml:"web_url,omitempty"`
}

// AccessLevel is a member access level with its notification level.
type AccessLevel struct {
	AccessLevel       int `json:"access_level"                 yaml:"access_level"                 shape:"required"`
	NotificationLevel int `json:"notification_level,omitempty" yaml:"notification_level,omitempty"`
}

// ProjectPermissions are the caller's effective permissions on a project.
type ProjectPermissions struct {
	ProjectAccess *AccessLevel `json:"project_access,omitempty" yaml:"project_access,omitempty"`
	GroupAccess   *AccessLevel `json:"group_access,omitempty"   yaml:"group_access,omitempty"`
}

// ProjectDetail is the full project record returned by get/update.
type ProjectDetail struct {
	Project

	Path                     string                 `json:"path,omitempty"                       yaml:"path,omitempty"`
	IssuesEnabled            *bool                  `json:"issues_enabled,omitempty"             yaml:"issues_enabled,omitempty"`
	MergeRequestsEnabled     *bool                  `json:"merge_requests_enabled,omitempty"     yaml:"merge_requests_enabled,omitempty"`
	WikiEnabled              *bool                  `json:"wiki_enabled,omitempty"               yaml:"wiki_enabled,omitempty"`
	JobsEnabled              *bool                  `json:"jobs_enabled,omitempty"               yaml:"jobs_enabled,omitempty"`
	SnippetsEnabled          *bool                  `json:"snippets_enabled,omitempty"           yaml:"snippets_enabled,omitempty"`
	ContainerRegistryEnabled *bool                  `json:"container_registry_enabled,omitempty" yaml:"container_registry_enabled,omitempty"`
	CreatorID                int                    `json:"creator_id,omitempty"                 yaml:"creator_id,omitempty"`
	Namespace                *Namespace             `json:"namespace,omitempty"                  yaml:"namespace,omitempty"`
	ImportStatus             string                 `json:"import_status,omitempty"              yaml:"import_status,omitempty"`
	OpenIssuesCount          int                    `json:"open_issues_count,omitempty"          yaml:"open_issues_count,omitempty"`
	CIConfigPath             *string                `json:"ci_config_path,omitempty"             yaml:"ci_config_path,omitempty"`
	SharedRunnersEnabled     *bool                  `json:"shared_runners_enabled,omitempty"     yaml:"shared_runners_enabled,omitempty"`
	Archived                 bool                   `json:"archived,omitempty"                   yaml:"archived,omitempty"`
	Permissions              *ProjectPermissions    `json:"permissions,omitempty"                yaml:"permissions,omitempty"`
	Statistics               map[string]interface{} `json:"statistics,omitempty"                 yaml:"statistics,omitempty"`
}

// Event is an entry of a project's activity feed.
type Event struct {
	ID          int        `json:"id"                     yaml:"id"                     shape:"required"`
	ProjectID   int        `json:"project_id,omitempty"   yaml:"project_id,omitempty"`
	ActionName  string     `json:"action_name"            yaml:"action_name"            shape:"required"`
	TargetID    *int       `json:"target_id,omitempty"    yaml:"target_id,omitempty"`
	TargetType  *string    `json:"target_type,omitempty"  yaml:"target_type,omitempty"`
	TargetTitle *string    `json:"target_title,omitempty" yaml:"target_title,omitempty"`
	Author      User       `json:"author"                 yaml:"author"                 shape:"required"`
	CreatedAt   string     `json:"created_at"             yaml:"created_at"             shape:"required"`
	Note        *Note      `json:"note,omitempty"         yaml:"note,omitempty"`
	PushData    *PushData  `json:"push_data,omitempty"    yaml:"push_data,omitempty"`
}

// PushData describes a push event.
type PushData struct {
	CommitCount int     `json:"commit_count,omitempty" yaml:"commit_count,omitempty"`
	Action      string  `json:"action,omitempty"       yaml:"action,omitempty"`
	Ref         string  `json:"ref,omitempty"          yaml:"ref,omitempty"`
	RefType     string  `json:"ref_type,omitempty"     yaml:"ref_type,omitempty"`
	CommitFrom  *string `json:"commit_from,omitempty"  yaml:"commit_from,omitempty"`
	CommitTo    *string `json:"commit_to,omitempty"    yaml:"commit_to,omitempty"`
	CommitTitle *string `json:"commit_title,omitempty" yaml:"commit_title,omitempty"`
}

// Member is a project or group member, including inherited ones.
type Member struct {
	ID                     int     `json:"id"                                 yaml:"id"                                 shape:"required"`
	Username               string  `json:"username"                           yaml:"username"                           shape:"required"`
	Name                   string  `json:"name"                               yaml:"name"                               shape:"required"`
	State                  string  `json:"state"                              yaml:"state"                              shape:"required"`
	AvatarURL              string  `json:"avatar_url,omitempty"               yaml:"avatar_url,omitempty"`
	WebURL                 string  `json:"web_url"                            yaml:"web_url"                            shape:"required"`
	AccessLevel            int     `json:"access_level"                       yaml:"access_level"                       shape:"required"`
	AccessLevelDescription string  `json:"access_level_description,omitempty" yaml:"access_level_description,omitempty"`
	ExpiresAt              *string `json:"expires_at"                         yaml:"expires_at"`
}

// SearchProjectsOptions are the parameters of GET /projects?search=.
type SearchProjectsOptions struct {
	Search  string `json:"search"             url:"search"             yaml:"search"             shape:"required"                desc:"Search query"`
	Page    int    `json:"page,omitempty"     url:"page,omitempty"     yaml:"page,omitempty"     shape:"default=1,min=1"         desc:"Page number (1-indexed)"`
	PerPage int    `json:"per_page,omitempty" url:"per_page,omitempty" yaml:"per_page,omitempty" shape:"default=20,min=1,max=100" desc:"Results per page (1-100)"`
}

// CreateProjectOptions is the body of POST /projects.
type CreateProjectOptions struct {
	Name                 string `json:"name"                   yaml:"name"                   shape:"required"                             desc:"Repository name"`
	Description          string `json:"description,omitempty"  yaml:"description,omitempty"                                               desc:"Repository description"`
	Visibility           string `json:"visibility"             yaml:"visibility"             shape:"default=private,enum=private|internal|public" desc:"Repository visibility level"`
	InitializeWithReadme bool   `json:"initialize_with_readme" yaml:"initialize_with_readme" shape:"default=true"                         desc:"Initialize with README.md"`
}

// ForkProjectOptions are the parameters of POST /projects/:id/fork.
type ForkProjectOptions struct {
	Namespace string `json:"namespace,omitempty" url:"namespace,omitempty" yaml:"namespace,omitempty" desc:"Namespace to fork to (full path)"`
}

// GetProjectOptions are the parameters of GET /projects/:id.
type GetProjectOptions struct {
	Statistics           *bool `json:"statistics,omitempty"             url:"statistics,omitempty"             yaml:"statistics,omitempty"             desc:"Include project statistics"`
	License              *bool `json:"license,omitempty"                url:"license,omitempty"                yaml:"license,omitempty"                desc:"Include license information"`
	WithCustomAttributes *bool `json:"with_custom_attributes,omitempty" url:"with_custom_attributes,omitempty" yaml:"with_custom_attributes,omitempty" desc:"Include custom attributes"`
}

// UpdateProjectOptions is the body of PUT /projects/:id.
type UpdateProjectOptions struct {
	Name                 *string `json:"name,omitempty"                   yaml:"name,omitempty"                   desc:"New project name"`
	Description          *string `json:"description,omitempty"            yaml:"description,omitempty"            desc:"New project description"`
	DefaultBranch        *string `json:"default_branch,omitempty"         yaml:"default_branch,omitempty"         desc:"New default branch"`
	Visibility           *string `json:"visibility,omitempty"             yaml:"visibility,omitempty"             shape:"enum=private|internal|public" desc:"Visibility level"`
	IssuesEnabled        *bool   `json:"issues_enabled,omitempty"         yaml:"issues_enabled,omitempty"         desc:"Enable issues"`
	MergeRequestsEnabled *bool   `json:"merge_requests_enabled,omitempty" yaml:"merge_requests_enabled,omitempty" desc:"Enable merge requests"`
	WikiEnabled          *bool   `json:"wiki_enabled,omitempty"           yaml:"wiki_enabled,omitempty"           desc:"Enable wiki"`
	JobsEnabled          *bool   `json:"jobs_enabled,omitempty"           yaml:"jobs_enabled,omitempty"           desc:"Enable CI/CD"`
	Archived             *bool   `json:"archived,omitempty"               yaml:"archived,omitempty"               desc:"Archive project"`
}

// ListGroupProjectsOptions are the parameters of GET /groups/:id/projects.
type ListGroupProjectsOptions struct {
	ListOptions

	Archived                 *bool  `json:"archived,omitempty"                    url:"archived,omitempty"                    yaml:"archived,omitempty"                    desc:"Filter for archived projects"`
	Visibility               string `json:"visibility,omitempty"                  url:"visibility,omitempty"                  yaml:"visibility,omitempty"                  shape:"enum=public|internal|private" desc:"Filter by project visibility"`
	OrderBy                  string `json:"order_by,omitempty"                    url:"order_by,omitempty"                    yaml:"order_by,omitempty"                    shape:"enum=id|name|path|created_at|updated_at|last_activity_at" desc:"Return projects ordered by field"`
	Sort                     string `json:"sort,omitempty"                        url:"sort,omitempty"                        yaml:"sort,omitempty"                        shape:"enum=asc|desc" desc:"Sort direction"`
	Search                   string `json:"search,omitempty"                      url:"search,omitempty"                      yaml:"search,omitempty"                      desc:"Search term for projects"`
	Simple                   *bool  `json:"simple,omitempty"                      url:"simple,omitempty"                      yaml:"simple,omitempty"                      desc:"Return only limited fields"`
	IncludeSubgroups         *bool  `json:"include_subgroups,omitempty"           url:"include_subgroups,omitempty"           yaml:"include_subgroups,omitempty"           desc:"Include projects from subgroups"`
	WithIssuesEnabled        *bool  `json:"with_issues_enabled,omitempty"         url:"with_issues_enabled,omitempty"         yaml:"with_issues_enabled,omitempty"         desc:"Limit to projects with issues enabled"`
	WithMergeRequestsEnabled *bool  `json:"with_merge_requests_enabled,omitempty" url:"with_merge_requests_enabled,omitempty" yaml:"with_merge_requests_enabled,omitempty" desc:"Limit to projects with merge requests enabled"`
}

// ListEventsOptions are the parameters of GET /projects/:id/events.
type ListEventsOptions struct {
	ListOptions

	Action     string `json:"action,omitempty"      url:"action,omitempty"      yaml:"action,omitempty"      desc:"Event action type to filter by"`
	TargetType string `json:"target_type,omitempty" url:"target_type,omitempty" yaml:"target_type,omitempty" desc:"Event target type to filter by"`
	Before     string `json:"before,omitempty"      url:"before,omitempty"      yaml:"before,omitempty"      desc:"Only events created before this date (YYYY-MM-DD)"`
	After      string `json:"after,omitempty"       url:"after,omitempty"       yaml:"after,omitempty"       desc:"Only events created after this date (YYYY-MM-DD)"`
	Sort       string `json:"sort,omitempty"        url:"sort,omitempty"        yaml:"sort,omitempty"        shape:"enum=asc|desc" desc:"Sort events by created_at"`
}

// ListMembersOptions are the parameters of the members/all endpoints.
type ListMembersOptions struct {
	ListOptions

	Query string `json:"query,omitempty" url:"query,omitempty" yaml:"query,omitempty" desc:"Filter members by name or username"`
}
