package gitlab

// Label is a project label.
type Label struct {
	ID                     int     `json:"id"                                  yaml:"id"                                  shape:"required"`
	Name                   string  `json:"name"                                yaml:"name"                                shape:"required"`
	Color                  string  `json:"color"                               yaml:"color"                               shape:"required"`
	TextColor              string  `json:"text_color,omitempty"                yaml:"text_color,omitempty"`
	Description            *string `json:"description,omitempty"               yaml:"description,omitempty"`
	DescriptionHTML        string  `json:"description_html,omitempty"          yaml:"description_html,omitempty"`
	OpenIssuesCount        int     `json:"open_issues_count,omitempty"         yaml:"open_issues_count,omitempty"`
	ClosedIssuesCount      int     `json:"closed_issues_count,omitempty"       yaml:"closed_issues_count,omitempty"`
	OpenMergeRequestsCount int     `json:"open_merge_requests_count,omitempty" yaml:"open_merge_requests_count,omitempty"`
	Subscribed             bool    `json:"subscribed,omitempty"                yaml:"subscribed,omitempty"`
	Priority               *int    `json:"priority,omitempty"                  yaml:"priority,omitempty"`
	IsProjectLabel         bool    `json:"is_project_label,omitempty"          yaml:"is_project_label,omitempty"`
}

// ListLabelsOptions are the parameters of GET /projects/:id/labels.
type ListLabelsOptions struct {
	ListOptions

	Search                string `json:"search,omitempty"                  url:"search,omitempty"                  yaml:"search,omitempty"                  desc:"Search labels by name"`
	IncludeAncestorGroups *bool  `json:"include_ancestor_groups,omitempty" url:"include_ancestor_groups,omitempty" yaml:"include_ancestor_groups,omitempty" desc:"Include ancestor group labels"`
}

// CreateLabelOptions is the body of POST /projects/:id/labels.
type CreateLabelOptions struct {
	Name        string `json:"name"                  yaml:"name"                  shape:"required" desc:"Label name"`
	Color       string `json:"color"                 yaml:"color"                 shape:"required" desc:"Label color (hex code like #FF0000)"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"                  desc:"Label description"`
	Priority    *int   `json:"priority,omitempty"    yaml:"priority,omitempty"                     desc:"Label priority"`
}

// UpdateLabelOptions is the body of PUT /projects/:id/labels/:label_id. A
// null priority removes it.
type UpdateLabelOptions struct {
	NewName     string        `json:"new_name,omitempty"    yaml:"new_name,omitempty"    desc:"New label name"`
	Color       string        `json:"color,omitempty"       yaml:"color,omitempty"       desc:"New label color"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty" desc:"New label description"`
	Priority    Nullable[int] `json:"priority,omitempty"    yaml:"priority,omitempty"    desc:"New label priority"`
}

// Milestone is a project or group milestone.
type Milestone struct {
	ID          int     `json:"id"                   yaml:"id"                   shape:"required"`
	IID         int     `json:"iid"                  yaml:"iid"                  shape:"required"`
	ProjectID   int     `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	GroupID     int     `json:"group_id,omitempty"   yaml:"group_id,omitempty"`
	Title       string  `json:"title"                yaml:"title"                shape:"required"`
	Description *string `json:"description"          yaml:"description"`
	State       string  `json:"state"                yaml:"state"                shape:"required,enum=active|closed"`
	CreatedAt   string  `json:"created_at"           yaml:"created_at"           shape:"required"`
	UpdatedAt   string  `json:"updated_at"           yaml:"updated_at"           shape:"required"`
	DueDate     *string `json:"due_date"             yaml:"due_date"`
	StartDate   *string `json:"start_date"           yaml:"start_date"`
	Expired     bool    `json:"expired,omitempty"    yaml:"expired,omitempty"`
	WebURL      string  `json:"web_url"              yaml:"web_url"              shape:"required"`
}

// ListMilestonesOptions are the parameters of GET /projects/:id/milestones.
// IIDs is sent as iids[]=1&iids[]=2.
type ListMilestonesOptions struct {
	ListOptions

	IIDs                    []int  `json:"iids,omitempty"                      url:"iids,brackets,omitempty"             yaml:"iids,omitempty"                                                  desc:"Filter by milestone IIDs"`
	State                   string `json:"state,omitempty"                     url:"state,omitempty"                     yaml:"state,omitempty"                     shape:"enum=active|closed" desc:"Filter by state"`
	Title                   string `json:"title,omitempty"                     url:"title,omitempty"                     yaml:"title,omitempty"                                                 desc:"Filter by title"`
	Search                  string `json:"search,omitempty"                    url:"search,omitempty"                    yaml:"search,omitempty"                                                desc:"Search milestones by title/description"`
	IncludeParentMilestones *bool  `json:"include_parent_milestones,omitempty" url:"include_parent_milestones,omitempty" yaml:"include_parent_milestones,omitempty"                             desc:"Include parent group milestones"`
}

// CreateMilestoneOptions is the body of POST /projects/:id/milestones.
type CreateMilestoneOptions struct {
	Title       string `json:"title"                 yaml:"title"                 shape:"required" desc:"Milestone title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"                  desc:"Milestone description"`
	DueDate     string `json:"due_date,omitempty"    yaml:"due_date,omitempty"                     desc:"Due date (YYYY-MM-DD)"`
	StartDate   string `json:"start_date,omitempty"  yaml:"start_date,omitempty"                   desc:"Start date (YYYY-MM-DD)"`
}

// UpdateMilestoneOptions is the body of PUT /projects/:id/milestones/:milestone_id.
type UpdateMilestoneOptions struct {
	Title       string           `json:"title,omitempty"       yaml:"title,omitempty"                                   desc:"New milestone title"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"                             desc:"New milestone description"`
	DueDate     Nullable[string] `json:"due_date,omitempty"    yaml:"due_date,omitempty"                                desc:"New due date"`
	StartDate   Nullable[string] `json:"start_date,omitempty"  yaml:"start_date,omitempty"                              desc:"New start date"`
	StateEvent  string           `json:"state_event,omitempty" yaml:"state_event,omitempty" shape:"enum=close|activate" desc:"State transition"`
}

// Identity is an external identity linked to a user.
type Identity struct {
	Provider  string `json:"provider"   yaml:"provider"   shape:"required"`
	ExternUID string `json:"extern_uid" yaml:"extern_uid" shape:"required"`
}

// UserDetail is the full user record.
type UserDetail struct {
	User

	Email            string     `json:"email,omitempty"              yaml:"email,omitempty"`
	State            string     `json:"state,omitempty"              yaml:"state,omitempty"`
	IsAdmin          bool       `json:"is_admin,omitempty"           yaml:"is_admin,omitempty"`
	Bio              *string    `json:"bio,omitempty"                yaml:"bio,omitempty"`
	Location         *string    `json:"location,omitempty"           yaml:"location,omitempty"`
	PublicEmail      *string    `json:"public_email,omitempty"       yaml:"public_email,omitempty"`
	WebsiteURL       *string    `json:"website_url,omitempty"        yaml:"website_url,omitempty"`
	Organization     *string    `json:"organization,omitempty"       yaml:"organization,omitempty"`
	JobTitle         *string    `json:"job_title,omitempty"          yaml:"job_title,omitempty"`
	CreatedAt        string     `json:"created_at,omitempty"         yaml:"created_at,omitempty"`
	LastSignInAt     *string    `json:"last_sign_in_at,omitempty"    yaml:"last_sign_in_at,omitempty"`
	ConfirmedAt      *string    `json:"confirmed_at,omitempty"       yaml:"confirmed_at,omitempty"`
	TwoFactorEnabled bool       `json:"two_factor_enabled,omitempty" yaml:"two_factor_enabled,omitempty"`
	Identities       []Identity `json:"identities,omitempty"         yaml:"identities,omitempty"`
}

// ListUsersOptions are the parameters of GET /users.
type ListUsersOptions struct {
	ListOptions

	Username string `json:"username,omitempty" url:"username,omitempty" yaml:"username,omitempty"                                                   desc:"Filter by username"`
	Search   string `json:"search,omitempty"   url:"search,omitempty"   yaml:"search,omitempty"                                                     desc:"Search users"`
	Active   *bool  `json:"active,omitempty"   url:"active,omitempty"   yaml:"active,omitempty"                                                     desc:"Filter by active state"`
	Blocked  *bool  `json:"blocked,omitempty"  url:"blocked,omitempty"  yaml:"blocked,omitempty"                                                    desc:"Filter by blocked state"`
	External *bool  `json:"external,omitempty" url:"external,omitempty" yaml:"external,omitempty"                                                   desc:"Filter by external users"`
	OrderBy  string `json:"order_by,omitempty" url:"order_by,omitempty" yaml:"order_by,omitempty" shape:"enum=id|name|username|created_at|updated_at" desc:"Order by field"`
	Sort     string `json:"sort,omitempty"     url:"sort,omitempty"     yaml:"sort,omitempty"     shape:"enum=asc|desc"                                desc:"Sort direction"`
}

// Group is a GitLab group.
type Group struct {
	ID                             int     `json:"id"                                          yaml:"id"                                          shape:"required"`
	Name                           string  `json:"name"                                        yaml:"name"                                        shape:"required"`
	Path                           string  `json:"path"                                        yaml:"path"                                        shape:"required"`
	Description                    *string `json:"description,omitempty"                       yaml:"description,omitempty"`
	Visibility                     string  `json:"visibility,omitempty"                        yaml:"visibility,omitempty"                        shape:"enum=private|internal|public"`
	ShareWithGroupLock             bool    `json:"share_with_group_lock,omitempty"             yaml:"share_with_group_lock,omitempty"`
	RequireTwoFactorAuthentication bool    `json:"require_two_factor_authentication,omitempty" yaml:"require_two_factor_authentication,omitempty"`
	TwoFactorGracePeriod           int     `json:"two_factor_grace_period,omitempty"           yaml:"two_factor_grace_period,omitempty"`
	ProjectCreationLevel           string  `json:"project_creation_level,omitempty"            yaml:"project_creation_level,omitempty"`
	AutoDevopsEnabled              *bool   `json:"auto_devops_enabled,omitempty"               yaml:"auto_devops_enabled,omitempty"`
	SubgroupCreationLevel          string  `json:"subgroup_creation_level,omitempty"           yaml:"subgroup_creation_level,omitempty"`
	EmailsDisabled                 *bool   `json:"emails_disabled,omitempty"                   yaml:"emails_disabled,omitempty"`
	MentionsDisabled               *bool   `json:"mentions_disabled,omitempty"                 yaml:"mentions_disabled,omitempty"`
	LFSEnabled                     bool    `json:"lfs_enabled,omitempty"                       yaml:"lfs_enabled,omitempty"`
	AvatarURL                      *string `json:"avatar_url,omitempty"                        yaml:"avatar_url,omitempty"`
	WebURL                         string  `json:"web_url"                                     yaml:"web_url"                                     shape:"required"`
	RequestAccessEnabled           bool    `json:"request_access_enabled,omitempty"            yaml:"request_access_enabled,omitempty"`
	FullName                       string  `json:"full_name,omitempty"                         yaml:"full_name,omitempty"`
	FullPath                       string  `json:"full_path,omitempty"                         yaml:"full_path,omitempty"`
	ParentID                       *int    `json:"parent_id,omitempty"                         yaml:"parent_id,omitempty"`
	CreatedAt                      string  `json:"created_at,omitempty"                        yaml:"created_at,omitempty"`
}

// ListGroupsOptions are the parameters of GET /groups and GET /groups/:id/subgroups.
type ListGroupsOptions struct {
	ListOptions

	Search         string `json:"search,omitempty"           url:"search,omitempty"           yaml:"search,omitempty"                                           desc:"Search groups by name"`
	Owned          *bool  `json:"owned,omitempty"            url:"owned,omitempty"            yaml:"owned,omitempty"                                            desc:"Filter to owned groups"`
	MinAccessLevel *int   `json:"min_access_level,omitempty" url:"min_access_level,omitempty" yaml:"min_access_level,omitempty"                                 desc:"Minimum access level"`
	TopLevelOnly   *bool  `json:"top_level_only,omitempty"   url:"top_level_only,omitempty"   yaml:"top_level_only,omitempty"                                   desc:"Only top-level groups"`
	OrderBy        string `json:"order_by,omitempty"         url:"order_by,omitempty"         yaml:"order_by,omitempty"         shape:"enum=name|path|id|similarity" desc:"Order by field"`
	Sort           string `json:"sort,omitempty"             url:"sort,omitempty"             yaml:"sort,omitempty"             shape:"enum=asc|desc"               desc:"Sort direction"`
}

// GetGroupOptions are the parameters of GET /groups/:id.
type GetGroupOptions struct {
	WithCustomAttributes *bool `json:"with_custom_attributes,omitempty" url:"with_custom_attributes,omitempty" yaml:"with_custom_attributes,omitempty" desc:"Include custom attributes"`
	WithProjects         *bool `json:"with_projects,omitempty"          url:"with_projects,omitempty"          yaml:"with_projects,omitempty"          desc:"Include projects"`
}

// CreateGroupOptions is the body of POST /groups.
type CreateGroupOptions struct {
	Name                  string `json:"name"                              yaml:"name"                              shape:"required"                             desc:"Group name"`
	Path                  string `json:"path"                              yaml:"path"                              shape:"required"                             desc:"Group path/URL"`
	Description           string `json:"description,omitempty"             yaml:"description,omitempty"                                                  desc:"Group description"`
	Visibility            string `json:"visibility,omitempty"              yaml:"visibility,omitempty"              shape:"enum=private|internal|public"         desc:"Visibility level"`
	ParentID              *int   `json:"parent_id,omitempty"               yaml:"parent_id,omitempty"                                                    desc:"Parent group ID for subgroup"`
	ProjectCreationLevel  string `json:"project_creation_level,omitempty"  yaml:"project_creation_level,omitempty"  shape:"enum=noone|maintainer|developer"        desc:"Who can create projects"`
	SubgroupCreationLevel string `json:"subgroup_creation_level,omitempty" yaml:"subgroup_creation_level,omitempty" shape:"enum=owner|maintainer"                    desc:"Who can create subgroups"`
}

// UpdateGroupOptions is the body of PUT /groups/:id.
type UpdateGroupOptions struct {
	Name                  string `json:"name,omitempty"                    yaml:"name,omitempty"                                                         desc:"New group name"`
	Path                  string `json:"path,omitempty"                    yaml:"path,omitempty"                                                         desc:"New group path"`
	Description           string `json:"description,omitempty"             yaml:"description,omitempty"                                                  desc:"New group description"`
	Visibility            string `json:"visibility,omitempty"              yaml:"visibility,omitempty"              shape:"enum=private|internal|public"         desc:"Visibility level"`
	ProjectCreationLevel  string `json:"project_creation_level,omitempty"  yaml:"project_creation_level,omitempty"  shape:"enum=noone|maintainer|developer"        desc:"Who can create projects"`
	SubgroupCreationLevel string `json:"subgroup_creation_level,omitempty" yaml:"subgroup_creation_level,omitempty" shape:"enum=owner|maintainer"                    desc:"Who can create subgroups"`
}

// DeleteGroupResult is the message returned after scheduling a group deletion.
type DeleteGroupResult struct {
	Message string `json:"message" yaml:"message"`
}
