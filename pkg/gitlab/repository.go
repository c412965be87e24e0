package gitlab

// Commit is a repository commit.
type Commit struct {
	ID             string       `json:"id"                   yaml:"id"                   shape:"required"`
	ShortID        string       `json:"short_id"             yaml:"short_id"             shape:"required"`
	Title          string       `json:"title"                yaml:"title"                shape:"required"`
	AuthorName     string       `json:"author_name"          yaml:"author_name"          shape:"required"`
	AuthorEmail    string       `json:"author_email"         yaml:"author_email"         shape:"required"`
	AuthoredDate   string       `json:"authored_date"        yaml:"authored_date"        shape:"required"`
	CommitterName  string       `json:"committer_name"       yaml:"committer_name"       shape:"required"`
	CommitterEmail string       `json:"committer_email"      yaml:"committer_email"      shape:"required"`
	CommittedDate  string       `json:"committed_date"       yaml:"committed_date"       shape:"required"`
	CreatedAt      string       `json:"created_at"           yaml:"created_at"           shape:"required"`
	Message        string       `json:"message"              yaml:"message"              shape:"required"`
	ParentIDs      []string     `json:"parent_ids,omitempty" yaml:"parent_ids,omitempty"`
	WebURL         string       `json:"web_url"              yaml:"web_url"              shape:"required"`
	Stats          *CommitStats `json:"stats,omitempty"      yaml:"stats,omitempty"`
}

// CommitStats are the line counts of a commit.
type CommitStats struct {
	Additions int `json:"additions" yaml:"additions" shape:"required"`
	Deletions int `json:"deletions" yaml:"deletions" shape:"required"`
	Total     int `json:"total"     yaml:"total"     shape:"required"`
}

// RefCommit is the commit summary attached to branches and tags.
type RefCommit struct {
	ID             string   `json:"id"                        yaml:"id"                        shape:"required"`
	ShortID        string   `json:"short_id"                  yaml:"short_id"                  shape:"required"`
	Title          string   `json:"title"                     yaml:"title"                     shape:"required"`
	CreatedAt      string   `json:"created_at"                yaml:"created_at"                shape:"required"`
	ParentIDs      []string `json:"parent_ids,omitempty"      yaml:"parent_ids,omitempty"`
	Message        string   `json:"message,omitempty"         yaml:"message,omitempty"`
	AuthorName     string   `json:"author_name,omitempty"     yaml:"author_name,omitempty"`
	AuthorEmail    string   `json:"author_email,omitempty"    yaml:"author_email,omitempty"`
	AuthoredDate   string   `json:"authored_date,omitempty"   yaml:"authored_date,omitempty"`
	CommitterName  string   `json:"committer_name,omitempty"  yaml:"committer_name,omitempty"`
	CommitterEmail string   `json:"committer_email,omitempty" yaml:"committer_email,omitempty"`
	CommittedDate  string   `json:"committed_date,omitempty"  yaml:"committed_date,omitempty"`
	WebURL         string   `json:"web_url,omitempty"         yaml:"web_url,omitempty"`
}

// Branch is a repository branch.
type Branch struct {
	Name               string    `json:"name"                           yaml:"name"                           shape:"required"`
	Commit             RefCommit `json:"commit"                         yaml:"commit"                         shape:"required"`
	Merged             bool      `json:"merged,omitempty"               yaml:"merged,omitempty"`
	Protected          bool      `json:"protected"                      yaml:"protected"                      shape:"required"`
	DevelopersCanPush  bool      `json:"developers_can_push,omitempty"  yaml:"developers_can_push,omitempty"`
	DevelopersCanMerge bool      `json:"developers_can_merge,omitempty" yaml:"developers_can_merge,omitempty"`
	CanPush            bool      `json:"can_push,omitempty"             yaml:"can_push,omitempty"`
	Default            bool      `json:"default,omitempty"              yaml:"default,omitempty"`
	WebURL             string    `json:"web_url,omitempty"              yaml:"web_url,omitempty"`
}

// TagRelease is the release note attached to a tag.
type TagRelease struct {
	TagName     string  `json:"tag_name"    yaml:"tag_name"    shape:"required"`
	Description *string `json:"description" yaml:"description"`
}

// Tag is a repository tag.
type Tag struct {
	Name      string      `json:"name"                yaml:"name"                shape:"required"`
	Message   *string     `json:"message,omitempty"   yaml:"message,omitempty"`
	Target    string      `json:"target,omitempty"    yaml:"target,omitempty"`
	Commit    *RefCommit  `json:"commit,omitempty"    yaml:"commit,omitempty"`
	Release   *TagRelease `json:"release,omitempty"   yaml:"release,omitempty"`
	Protected bool        `json:"protected,omitempty" yaml:"protected,omitempty"`
}

// TreeNode is one entry of a repository tree listing.
type TreeNode struct {
	ID   string `json:"id"   yaml:"id"   shape:"required"`
	Name string `json:"name" yaml:"name" shape:"required"`
	Type string `json:"type" yaml:"type" shape:"required,enum=tree|blob|commit"`
	Path string `json:"path" yaml:"path" shape:"required"`
	Mode string `json:"mode" yaml:"mode" shape:"required"`
}

// Diff is one changed file of a comparison or merge request.
type Diff struct {
	OldPath     string `json:"old_path"         yaml:"old_path"         shape:"required"`
	NewPath     string `json:"new_path"         yaml:"new_path"         shape:"required"`
	AMode       string `json:"a_mode,omitempty" yaml:"a_mode,omitempty"`
	BMode       string `json:"b_mode,omitempty" yaml:"b_mode,omitempty"`
	NewFile     bool   `json:"new_file"         yaml:"new_file"         shape:"required"`
	RenamedFile bool   `json:"renamed_file"     yaml:"renamed_file"     shape:"required"`
	DeletedFile bool   `json:"deleted_file"     yaml:"deleted_file"     shape:"required"`
	Diff        string `json:"diff"             yaml:"diff"             shape:"required"`
}

// Compare is the result of comparing two refs.
type Compare struct {
	Commit         *Commit  `json:"commit,omitempty"           yaml:"commit,omitempty"`
	Commits        []Commit `json:"commits"                    yaml:"commits"                    shape:"required"`
	Diffs          []Diff   `json:"diffs"                      yaml:"diffs"                      shape:"required"`
	CompareTimeout bool     `json:"compare_timeout,omitempty"  yaml:"compare_timeout,omitempty"`
	CompareSameRef bool     `json:"compare_same_ref,omitempty" yaml:"compare_same_ref,omitempty"`
	WebURL         string   `json:"web_url,omitempty"          yaml:"web_url,omitempty"`
}

// ReleaseMilestone is a milestone linked to a release.
type ReleaseMilestone struct {
	ID    int    `json:"id"    yaml:"id"    shape:"required"`
	IID   int    `json:"iid"   yaml:"iid"   shape:"required"`
	Title string `json:"title" yaml:"title" shape:"required"`
	State string `json:"state" yaml:"state" shape:"required"`
}

// ReleaseSource is a generated source archive of a release.
type ReleaseSource struct {
	Format string `json:"format" yaml:"format" shape:"required"`
	URL    string `json:"url"    yaml:"url"    shape:"required"`
}

// ReleaseLink is an asset link of a release.
type ReleaseLink struct {
	ID       int    `json:"id"                  yaml:"id"                  shape:"required"`
	Name     string `json:"name"                yaml:"name"                shape:"required"`
	URL      string `json:"url"                 yaml:"url"                 shape:"required"`
	LinkType string `json:"link_type,omitempty" yaml:"link_type,omitempty"`
}

// ReleaseAssets groups the sources and links of a release.
type ReleaseAssets struct {
	Count   int             `json:"count"             yaml:"count"             shape:"required"`
	Sources []ReleaseSource `json:"sources,omitempty" yaml:"sources,omitempty"`
	Links   []ReleaseLink   `json:"links,omitempty"   yaml:"links,omitempty"`
}

// ReleaseEvidence is a collected release evidence file.
type ReleaseEvidence struct {
	SHA         string `json:"sha"          yaml:"sha"          shape:"required"`
	Filepath    string `json:"filepath"     yaml:"filepath"     shape:"required"`
	CollectedAt string `json:"collected_at" yaml:"collected_at" shape:"required"`
}

// Release is a project release.
type Release struct {
	TagName     string             `json:"tag_name"              yaml:"tag_name"              shape:"required"`
	Description *string            `json:"description"           yaml:"description"`
	Name        *string            `json:"name"                  yaml:"name"`
	CreatedAt   string             `json:"created_at"            yaml:"created_at"            shape:"required"`
	ReleasedAt  string             `json:"released_at,omitempty" yaml:"released_at,omitempty"`
	Author      *User              `json:"author,omitempty"      yaml:"author,omitempty"`
	Commit      *RefCommit         `json:"commit,omitempty"      yaml:"commit,omitempty"`
	Milestones  []ReleaseMilestone `json:"milestones,omitempty"  yaml:"milestones,omitempty"`
	CommitPath  string             `json:"commit_path,omitempty" yaml:"commit_path,omitempty"`
	TagPath     string             `json:"tag_path,omitempty"    yaml:"tag_path,omitempty"`
	Assets      *ReleaseAssets     `json:"assets,omitempty"      yaml:"assets,omitempty"`
	Evidences   []ReleaseEvidence  `json:"evidences,omitempty"   yaml:"evidences,omitempty"`
}

// BranchAccessLevel is one push or merge rule of a protected branch.
type BranchAccessLevel struct {
	AccessLevel            int    `json:"access_level"             yaml:"access_level"             shape:"required"`
	AccessLevelDescription string `json:"access_level_description" yaml:"access_level_description" shape:"required"`
	UserID                 *int   `json:"user_id,omitempty"        yaml:"user_id,omitempty"`
	GroupID                *int   `json:"group_id,omitempty"       yaml:"group_id,omitempty"`
}

// ProtectedBranch is a branch protection rule.
type ProtectedBranch struct {
	ID                        int                 `json:"id"                                     yaml:"id"                                     shape:"required"`
	Name                      string              `json:"name"                                   yaml:"name"                                   shape:"required"`
	PushAccessLevels          []BranchAccessLevel `json:"push_access_levels,omitempty"           yaml:"push_access_levels,omitempty"`
	MergeAccessLevels         []BranchAccessLevel `json:"merge_access_levels,omitempty"          yaml:"merge_access_levels,omitempty"`
	AllowForcePush            bool                `json:"allow_force_push,omitempty"             yaml:"allow_force_push,omitempty"`
	CodeOwnerApprovalRequired bool                `json:"code_owner_approval_required,omitempty" yaml:"code_owner_approval_required,omitempty"`
}

// FileContent is a repository file. Content is already base64-decoded.
type FileContent struct {
	FileName      string `json:"file_name"                yaml:"file_name"                shape:"required"`
	FilePath      string `json:"file_path"                yaml:"file_path"                shape:"required"`
	Size          int    `json:"size"                     yaml:"size"                     shape:"required"`
	Encoding      string `json:"encoding"                 yaml:"encoding"                 shape:"required"`
	Content       string `json:"content"                  yaml:"content"                  shape:"required"`
	ContentSHA256 string `json:"content_sha256,omitempty" yaml:"content_sha256,omitempty"`
	Ref           string `json:"ref"                      yaml:"ref"                      shape:"required"`
	BlobID        string `json:"blob_id"                  yaml:"blob_id"                  shape:"required"`
	CommitID      string `json:"commit_id"                yaml:"commit_id"                shape:"required"`
	LastCommitID  string `json:"last_commit_id,omitempty" yaml:"last_commit_id,omitempty"`
}

// FileResult is what create-or-update reports back.
type FileResult struct {
	FilePath string      `json:"file_path"         yaml:"file_path"`
	Branch   string      `json:"branch"            yaml:"branch"`
	CommitID string      `json:"commit_id"         yaml:"commit_id"`
	Content  interface{} `json:"content,omitempty" yaml:"content,omitempty"`
}

// FileOperation is one file of a multi-file push.
type FileOperation struct {
	Path    string `json:"path"    yaml:"path"    shape:"required" desc:"Path where to create the file"`
	Content string `json:"content" yaml:"content" shape:"required" desc:"Content of the file"`
}

// CreateOrUpdateFileOptions is the body of the repository/files endpoints.
type CreateOrUpdateFileOptions struct {
	Content       string `json:"content"                 yaml:"content"                 shape:"required" desc:"Content of the file"`
	CommitMessage string `json:"commit_message"          yaml:"commit_message"          shape:"required" desc:"Commit message"`
	Branch        string `json:"branch"                  yaml:"branch"                  shape:"required" desc:"Branch to create/update the file in"`
	PreviousPath  string `json:"previous_path,omitempty" yaml:"previous_path,omitempty"                  desc:"Path of the file to move/rename"`
}

// CommitAction is one action of a multi-file commit.
type CommitAction struct {
	Action   string `json:"action"    yaml:"action"`
	FilePath string `json:"file_path" yaml:"file_path"`
	Content  string `json:"content"   yaml:"content"`
}

// CreateCommitOptions is the body of POST /projects/:id/repository/commits.
type CreateCommitOptions struct {
	Branch        string         `json:"branch"         yaml:"branch"`
	CommitMessage string         `json:"commit_message" yaml:"commit_message"`
	Actions       []CommitAction `json:"actions"        yaml:"actions"`
}

// ListCommitsOptions are the parameters of GET /projects/:id/repository/commits.
type ListCommitsOptions struct {
	ListOptions

	RefName     string `json:"sha,omitempty"          url:"ref_name,omitempty"     yaml:"sha,omitempty"          desc:"Branch name, tag, or commit SHA"`
	Since       string `json:"since,omitempty"        url:"since,omitempty"        yaml:"since,omitempty"        desc:"Only commits after or on this date (ISO 8601)"`
	Until       string `json:"until,omitempty"        url:"until,omitempty"        yaml:"until,omitempty"        desc:"Only commits before or on this date (ISO 8601)"`
	Path        string `json:"path,omitempty"         url:"path,omitempty"         yaml:"path,omitempty"         desc:"File path to filter commits by"`
	All         *bool  `json:"all,omitempty"          url:"all,omitempty"          yaml:"all,omitempty"          desc:"Retrieve every commit from the repository"`
	WithStats   *bool  `json:"with_stats,omitempty"   url:"with_stats,omitempty"   yaml:"with_stats,omitempty"   desc:"Include commit stats"`
	FirstParent *bool  `json:"first_parent,omitempty" url:"first_parent,omitempty" yaml:"first_parent,omitempty" desc:"Follow only the first parent commit on merge"`
}

// CreateBranchOptions is the body of POST .../repository/branches.
type CreateBranchOptions struct {
	Branch string `json:"branch"        yaml:"branch"        shape:"required" desc:"Name for the new branch"`
	Ref    string `json:"ref,omitempty" yaml:"ref,omitempty"                  desc:"Source branch for the new branch (default branch when empty)"`
}

// ListBranchesOptions are the parameters of GET .../repository/branches.
type ListBranchesOptions struct {
	ListOptions

	Search string `json:"search,omitempty" url:"search,omitempty" yaml:"search,omitempty" desc:"Search branches by name"`
	Regex  string `json:"regex,omitempty"  url:"regex,omitempty"  yaml:"regex,omitempty"  desc:"Filter branches by regex"`
}

// CompareOptions are the parameters of GET .../repository/compare.
type CompareOptions struct {
	From     string `json:"from"               url:"from"               yaml:"from"               shape:"required" desc:"Base branch/tag/commit SHA"`
	To       string `json:"to"                 url:"to"                 yaml:"to"                 shape:"required" desc:"Target branch/tag/commit SHA"`
	Straight *bool  `json:"straight,omitempty" url:"straight,omitempty" yaml:"straight,omitempty"                  desc:"Use straight comparison"`
}

// ListTagsOptions are the parameters of GET .../repository/tags.
type ListTagsOptions struct {
	ListOptions

	Search  string `json:"search,omitempty"   url:"search,omitempty"   yaml:"search,omitempty"   desc:"Search tags by name"`
	OrderBy string `json:"order_by,omitempty" url:"order_by,omitempty" yaml:"order_by,omitempty" shape:"enum=name|updated|version" desc:"Order by field"`
	Sort    string `json:"sort,omitempty"     url:"sort,omitempty"     yaml:"sort,omitempty"     shape:"enum=asc|desc"               desc:"Sort direction"`
}

// CreateTagOptions is the body of POST .../repository/tags.
type CreateTagOptions struct {
	TagName            string `json:"tag_name"                      yaml:"tag_name"                      shape:"required" desc:"Tag name"`
	Ref                string `json:"ref"                           yaml:"ref"                           shape:"required" desc:"Branch/commit SHA to create tag from"`
	Message            string `json:"message,omitempty"             yaml:"message,omitempty"                              desc:"Annotation message for annotated tag"`
	ReleaseDescription string `json:"release_description,omitempty" yaml:"release_description,omitempty"                  desc:"Release notes"`
}

// ListTreeOptions are the parameters of GET .../repository/tree.
type ListTreeOptions struct {
	ListOptions

	Path      string `json:"path,omitempty"      url:"path,omitempty"      yaml:"path,omitempty"      desc:"Path inside repository"`
	Ref       string `json:"ref,omitempty"       url:"ref,omitempty"       yaml:"ref,omitempty"       desc:"Branch/tag/commit to get tree from"`
	Recursive *bool  `json:"recursive,omitempty" url:"recursive,omitempty" yaml:"recursive,omitempty" desc:"Get tree recursively"`
}

// ListReleasesOptions are the parameters of GET /projects/:id/releases.
type ListReleasesOptions struct {
	ListOptions

	OrderBy                string `json:"order_by,omitempty"                 url:"order_by,omitempty"                 yaml:"order_by,omitempty"                 shape:"enum=released_at|created_at" desc:"Order by field"`
	Sort                   string `json:"sort,omitempty"                     url:"sort,omitempty"                     yaml:"sort,omitempty"                     shape:"enum=asc|desc"               desc:"Sort direction"`
	IncludeHTMLDescription *bool  `json:"include_html_description,omitempty" url:"include_html_description,omitempty" yaml:"include_html_description,omitempty"                                     desc:"Include HTML description"`
}

// CreateReleaseOptions is the body of POST /projects/:id/releases.
type CreateReleaseOptions struct {
	TagName     string   `json:"tag_name"              yaml:"tag_name"              shape:"required" desc:"Tag name for the release"`
	Name        string   `json:"name,omitempty"        yaml:"name,omitempty"                         desc:"Release name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"                  desc:"Release description/notes"`
	Ref         string   `json:"ref,omitempty"         yaml:"ref,omitempty"                          desc:"Branch/commit to create tag from (if tag doesn't exist)"`
	Milestones  []string `json:"milestones,omitempty"  yaml:"milestones,omitempty"                   desc:"Associated milestone titles"`
	ReleasedAt  string   `json:"released_at,omitempty" yaml:"released_at,omitempty"                  desc:"Release date (ISO 8601)"`
}

// ListProtectedBranchesOptions are the parameters of GET .../protected_branches.
type ListProtectedBranchesOptions struct {
	ListOptions

	Search string `json:"search,omitempty" url:"search,omitempty" yaml:"search,omitempty" desc:"Search by branch name"`
}

// ProtectBranchOptions is the body of POST .../protected_branches.
type ProtectBranchOptions struct {
	Name                      string `json:"name"                                   yaml:"name"                                   shape:"required" desc:"Branch name or wildcard"`
	PushAccessLevel           *int   `json:"push_access_level,omitempty"            yaml:"push_access_level,omitempty"                             desc:"Access level for push (0=No one, 30=Developers, 40=Maintainers)"`
	MergeAccessLevel          *int   `json:"merge_access_level,omitempty"           yaml:"merge_access_level,omitempty"                            desc:"Access level for merge"`
	AllowForcePush            *bool  `json:"allow_force_push,omitempty"             yaml:"allow_force_push,omitempty"                              desc:"Allow force push"`
	CodeOwnerApprovalRequired *bool  `json:"code_owner_approval_required,omitempty" yaml:"code_owner_approval_required,omitempty"                  desc:"Require code owner approval"`
}
