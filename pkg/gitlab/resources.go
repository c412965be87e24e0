package gitlab

import "context"

// ProjectsClient manages projects.
type ProjectsClient interface {
	Search(ctx context.Context, opts *SearchProjectsOptions) (*ListResponse[Project], error)
	Create(ctx context.Context, opts *CreateProjectOptions) (*Project, error)
	Fork(ctx context.Context, projectID string, opts *ForkProjectOptions) (*Project, error)
	Get(ctx context.Context, projectID string, opts *GetProjectOptions) (*ProjectDetail, error)
	Update(ctx context.Context, projectID string, opts *UpdateProjectOptions) (*ProjectDetail, error)
	ListForGroup(ctx context.Context, groupID string, opts *ListGroupProjectsOptions) (*ListResponse[Project], error)
	// DefaultBranch returns the project's default branch, or ErrNoDefaultBranch
	// for an empty repository.
	DefaultBranch(ctx context.Context, projectID string) (string, error)
}

// RepositoryClient reads the repository tree and compares refs.
type RepositoryClient interface {
	ListTree(ctx context.Context, projectID string, opts *ListTreeOptions) (*ListResponse[TreeNode], error)
	Compare(ctx context.Context, projectID string, opts *CompareOptions) (*Compare, error)
}

// FilesClient reads and writes repository files.
type FilesClient interface {
	// Get returns the file at ref with its content base64-decoded.
	Get(ctx context.Context, projectID, filePath, ref string) (*FileContent, error)
	// Exists probes for a file on branch. Any failure counts as absent.
	Exists(ctx context.Context, projectID, filePath, branch string) bool
	// CreateOrUpdate creates the file when it does not exist on opts.Branch and
	// updates it otherwise.
	CreateOrUpdate(ctx context.Context, projectID, filePath string, opts *CreateOrUpdateFileOptions) (*FileResult, error)
	// Push writes files one at a time and returns the result of the last one.
	// It stops at the first failure.
	Push(ctx context.Context, projectID, branch, commitMessage string, files []FileOperation) (*FileResult, error)
}

// CommitsClient lists and creates commits.
type CommitsClient interface {
	List(ctx context.Context, projectID string, opts *ListCommitsOptions) (*ListResponse[Commit], error)
	Create(ctx context.Context, projectID string, opts *CreateCommitOptions) (*Commit, error)
}

// BranchesClient manages branches.
type BranchesClient interface {
	Create(ctx context.Context, projectID string, opts *CreateBranchOptions) (*Branch, error)
	List(ctx context.Context, projectID string, opts *ListBranchesOptions) (*ListResponse[Branch], error)
	Delete(ctx context.Context, projectID, branch string) error
}

// TagsClient manages tags.
type TagsClient interface {
	List(ctx context.Context, projectID string, opts *ListTagsOptions) (*ListResponse[Tag], error)
	Create(ctx context.Context, projectID string, opts *CreateTagOptions) (*Tag, error)
}

// ReleasesClient manages releases.
type ReleasesClient interface {
	List(ctx context.Context, projectID string, opts *ListReleasesOptions) (*ListResponse[Release], error)
	Create(ctx context.Context, projectID string, opts *CreateReleaseOptions) (*Release, error)
}

// ProtectedBranchesClient manages branch protection.
type ProtectedBranchesClient interface {
	List(ctx context.Context, projectID string, opts *ListProtectedBranchesOptions) (*ListResponse[ProtectedBranch], error)
	Protect(ctx context.Context, projectID string, opts *ProtectBranchOptions) (*ProtectedBranch, error)
	Unprotect(ctx context.Context, projectID, name string) error
}

// IssuesClient manages issues, their notes and discussions.
type IssuesClient interface {
	// List returns one page of issues. When opts.IID is set the page is
	// narrowed client-side and Count is the number of matches on that page.
	List(ctx context.Context, projectID string, opts *ListIssuesOptions) (*ListResponse[Issue], error)
	Create(ctx context.Context, projectID string, opts *CreateIssueOptions) (*Issue, error)
	Update(ctx context.Context, projectID string, issueIID int, opts *UpdateIssueOptions) (*Issue, error)
	CreateNote(ctx context.Context, projectID string, issueIID int, opts *CreateNoteOptions) (*Note, error)
	ListNotes(ctx context.Context, projectID string, issueIID int, opts *ListNotesOptions) (*ListResponse[Note], error)
	ListDiscussions(ctx context.Context, projectID string, issueIID int, opts *ListOptions) (*ListResponse[Discussion], error)
}

// MergeRequestsClient manages merge requests.
type MergeRequestsClient interface {
	List(ctx context.Context, projectID string, opts *ListMergeRequestsOptions) (*ListResponse[MergeRequest], error)
	Create(ctx context.Context, projectID string, opts *CreateMergeRequestOptions) (*MergeRequest, error)
	Update(ctx context.Context, projectID string, mrIID int, opts *UpdateMergeRequestOptions) (*MergeRequest, error)
	GetChanges(ctx context.Context, projectID string, mrIID int, opts *GetChangesOptions) (*MergeRequestChanges, error)
	ListCommits(ctx context.Context, projectID string, mrIID int, opts *ListOptions) (*ListResponse[Commit], error)
	Approve(ctx context.Context, projectID string, mrIID int, opts *ApproveMergeRequestOptions) (*MergeRequest, error)
	Unapprove(ctx context.Context, projectID string, mrIID int) (*MergeRequest, error)
	Merge(ctx context.Context, projectID string, mrIID int, opts *MergeOptions) (*MergeRequest, error)
	SetAutoMerge(ctx context.Context, projectID string, mrIID int, opts *MergeOptions) (*MergeRequest, error)
	CancelAutoMerge(ctx context.Context, projectID string, mrIID int) (*MergeRequest, error)
	Rebase(ctx context.Context, projectID string, mrIID int, opts *RebaseOptions) (*RebaseResult, error)
	ListNotes(ctx context.Context, projectID string, mrIID int, opts *ListNotesOptions) (*ListResponse[Note], error)
	CreateNote(ctx context.Context, projectID string, mrIID int, opts *CreateNoteOptions) (*Note, error)
	UpdateNote(ctx context.Context, projectID string, mrIID, noteID int, opts *UpdateNoteOptions) (*Note, error)
	ListDiscussions(ctx context.Context, projectID string, mrIID int, opts *ListOptions) (*ListResponse[Discussion], error)
	CreateDiscussion(ctx context.Context, projectID string, mrIID int, opts *CreateDiscussionOptions) (*Discussion, error)
}

// WikiScope selects project or group wikis.
type WikiScope string

// Wiki scopes.
const (
	ProjectWiki WikiScope = "projects"
	GroupWiki   WikiScope = "groups"
)

// WikisClient manages project and group wiki pages. ownerID is a project or
// group ID depending on scope.
type WikisClient interface {
	List(ctx context.Context, scope WikiScope, ownerID string, opts *ListWikiPagesOptions) (*ListResponse[WikiPage], error)
	Get(ctx context.Context, scope WikiScope, ownerID, slug string, opts *GetWikiPageOptions) (*WikiPage, error)
	Create(ctx context.Context, scope WikiScope, ownerID string, opts *CreateWikiPageOptions) (*WikiPage, error)
	Edit(ctx context.Context, scope WikiScope, ownerID, slug string, opts *EditWikiPageOptions) (*WikiPage, error)
	Delete(ctx context.Context, scope WikiScope, ownerID, slug string) error
	UploadAttachment(ctx context.Context, scope WikiScope, ownerID string, opts *UploadWikiAttachmentOptions) (*WikiAttachment, error)
}

// MembersClient lists members including inherited ones.
type MembersClient interface {
	ListForProject(ctx context.Context, projectID string, opts *ListMembersOptions) (*ListResponse[Member], error)
	ListForGroup(ctx context.Context, groupID string, opts *ListMembersOptions) (*ListResponse[Member], error)
}

// EventsClient lists project activity.
type EventsClient interface {
	ListForProject(ctx context.Context, projectID string, opts *ListEventsOptions) (*ListResponse[Event], error)
}

// PipelinesClient manages pipelines.
type PipelinesClient interface {
	List(ctx context.Context, projectID string, opts *ListPipelinesOptions) (*ListResponse[Pipeline], error)
	Get(ctx context.Context, projectID string, pipelineID int) (*Pipeline, error)
	Trigger(ctx context.Context, projectID string, opts *TriggerPipelineOptions) (*Pipeline, error)
	Retry(ctx context.Context, projectID string, pipelineID int) (*Pipeline, error)
	Cancel(ctx context.Context, projectID string, pipelineID int) (*Pipeline, error)
}

// JobsClient manages jobs.
type JobsClient interface {
	ListForPipeline(ctx context.Context, projectID string, pipelineID int, opts *ListJobsOptions) (*ListResponse[Job], error)
	Get(ctx context.Context, projectID string, jobID int) (*Job, error)
	// Log returns the job trace as plain text.
	Log(ctx context.Context, projectID string, jobID int) (string, error)
	Retry(ctx context.Context, projectID string, jobID int) (*Job, error)
	Cancel(ctx context.Context, projectID string, jobID int) (*Job, error)
}

// EnvironmentsClient reads environments.
type EnvironmentsClient interface {
	List(ctx context.Context, projectID string, opts *ListEnvironmentsOptions) (*ListResponse[Environment], error)
	Get(ctx context.Context, projectID string, environmentID int) (*Environment, error)
}

// LabelsClient manages project labels.
type LabelsClient interface {
	List(ctx context.Context, projectID string, opts *ListLabelsOptions) (*ListResponse[Label], error)
	Create(ctx context.Context, projectID string, opts *CreateLabelOptions) (*Label, error)
	Update(ctx context.Context, projectID string, labelID int, opts *UpdateLabelOptions) (*Label, error)
}

// MilestonesClient manages project milestones.
type MilestonesClient interface {
	List(ctx context.Context, projectID string, opts *ListMilestonesOptions) (*ListResponse[Milestone], error)
	Create(ctx context.Context, projectID string, opts *CreateMilestoneOptions) (*Milestone, error)
	Update(ctx context.Context, projectID string, milestoneID int, opts *UpdateMilestoneOptions) (*Milestone, error)
}

// UsersClient reads users.
type UsersClient interface {
	Current(ctx context.Context) (*UserDetail, error)
	List(ctx context.Context, opts *ListUsersOptions) (*ListResponse[UserDetail], error)
	Get(ctx context.Context, userID int) (*UserDetail, error)
}

// GroupsClient manages groups.
type GroupsClient interface {
	List(ctx context.Context, opts *ListGroupsOptions) (*ListResponse[Group], error)
	Get(ctx context.Context, groupID string, opts *GetGroupOptions) (*Group, error)
	ListSubgroups(ctx context.Context, groupID string, opts *ListGroupsOptions) (*ListResponse[Group], error)
	Create(ctx context.Context, opts *CreateGroupOptions) (*Group, error)
	Update(ctx context.Context, groupID string, opts *UpdateGroupOptions) (*Group, error)
	// Delete schedules the group for deletion.
	Delete(ctx context.Context, groupID string) (*DeleteGroupResult, error)
}
