package tools

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/gitlab-mcp/pkg/gitlab"
)

// WikiSlugArgs names a wiki page.
type WikiSlugArgs struct {
	Slug string `json:"slug" shape:"required" desc:"URL-encoded slug of the wiki page"`
}

// ListProjectWikiPagesArgs are the arguments of list_project_wiki_pages.
type ListProjectWikiPagesArgs struct {
	ProjectArgs
	gitlab.ListWikiPagesOptions
}

// GetProjectWikiPageArgs are the arguments of get_project_wiki_page.
type GetProjectWikiPageArgs struct {
	ProjectArgs
	WikiSlugArgs
	gitlab.GetWikiPageOptions
}

// CreateProjectWikiPageArgs are the arguments of create_project_wiki_page.
type CreateProjectWikiPageArgs struct {
	ProjectArgs
	gitlab.CreateWikiPageOptions
}

// EditProjectWikiPageArgs are the arguments of edit_project_wiki_page.
type EditProjectWikiPageArgs struct {
	ProjectArgs
	WikiSlugArgs
	gitlab.EditWikiPageOptions
}

// DeleteProjectWikiPageArgs are the arguments of delete_project_wiki_page.
type DeleteProjectWikiPageArgs struct {
	ProjectArgs
	WikiSlugArgs
}

// UploadProjectWikiAttachmentArgs are the arguments of upload_project_wiki_attachment.
type UploadProjectWikiAttachmentArgs struct {
	ProjectArgs
	gitlab.UploadWikiAttachmentOptions
}

// ListGroupWikiPagesArgs are the arguments of list_group_wiki_pages.
type ListGroupWikiPagesArgs struct {
	GroupArgs
	gitlab.ListWikiPagesOptions
}

// GetGroupWikiPageArgs are the arguments of get_group_wiki_page.
type GetGroupWikiPageArgs struct {
	GroupArgs
	WikiSlugArgs
	gitlab.GetWikiPageOptions
}

// CreateGroupWikiPageArgs are the arguments of create_group_wiki_page.
type CreateGroupWikiPageArgs struct {
	GroupArgs
	gitlab.CreateWikiPageOptions
}

// EditGroupWikiPageArgs are the arguments of edit_group_wiki_page.
type EditGroupWikiPageArgs struct {
	GroupArgs
	WikiSlugArgs
	gitlab.EditWikiPageOptions
}

// DeleteGroupWikiPageArgs are the arguments of delete_group_wiki_page.
type DeleteGroupWikiPageArgs struct {
	GroupArgs
	WikiSlugArgs
}

// UploadGroupWikiAttachmentArgs are the arguments of upload_group_wiki_attachment.
type UploadGroupWikiAttachmentArgs struct {
	GroupArgs
	gitlab.UploadWikiAttachmentOptions
}

func deleteWikiPage(ctx context.Context, c gitlab.Client, scope gitlab.WikiScope, owner ID, slug string) (interface{}, error) {
	if err := c.Wikis().Delete(ctx, scope, owner.String(), slug); err != nil {
		return nil, err
	}

	return Text(fmt.Sprintf("Wiki page '%s' has been deleted.", slug)), nil
}

func wikiTools() []Tool {
	return []Tool{
		newTool("list_project_wiki_pages", "List all wiki pages for a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *ListProjectWikiPagesArgs) (interface{}, error) {
				return c.Wikis().List(ctx, gitlab.ProjectWiki, a.ProjectID.String(), &a.ListWikiPagesOptions)
			}),
		newTool("get_project_wiki_page", "Get a specific wiki page for a GitLab project", true,
			func(ctx context.Context, c gitlab.Client, a *GetProjectWikiPageArgs) (interface{}, error) {
				return c.Wikis().Get(ctx, gitlab.ProjectWiki, a.ProjectID.String(), a.Slug, &a.GetWikiPageOptions)
			}),
		newTool("create_project_wiki_page", "Create a new wiki page for a GitLab project", false,
			func(ctx context.Context, c gitlab.Client, a *CreateProjectWikiPageArgs) (interface{}, error) {
				return c.Wikis().Create(ctx, gitlab.ProjectWiki, a.ProjectID.String(), &a.CreateWikiPageOptions)
			}),
		newTool("edit_project_wiki_page", "Edit an existing wiki page for a GitLab project", false,
			func(ctx context.Context, c gitlab.Client, a *EditProjectWikiPageArgs) (interface{}, error) {
				return c.Wikis().Edit(ctx, gitlab.ProjectWiki, a.ProjectID.String(), a.Slug, &a.EditWikiPageOptions)
			}),
		newTool("delete_project_wiki_page", "Delete a wiki page from a GitLab project", false,
			func(ctx context.Context, c gitlab.Client, a *DeleteProjectWikiPageArgs) (interface{}, error) {
				return deleteWikiPage(ctx, c, gitlab.ProjectWiki, a.ProjectID, a.Slug)
			}),
		newTool("upload_project_wiki_attachment", "Upload an attachment to a GitLab project wiki", false,
			func(ctx context.Context, c gitlab.Client, a *UploadProjectWikiAttachmentArgs) (interface{}, error) {
				return c.Wikis().UploadAttachment(ctx, gitlab.ProjectWiki, a.ProjectID.String(), &a.UploadWikiAttachmentOptions)
			}),
		newTool("list_group_wiki_pages", "List all wiki pages for a GitLab group", true,
			func(ctx context.Context, c gitlab.Client, a *ListGroupWikiPagesArgs) (interface{}, error) {
				return c.Wikis().List(ctx, gitlab.GroupWiki, a.GroupID.String(), &a.ListWikiPagesOptions)
			}),
		newTool("get_group_wiki_page", "Get a specific wiki page for a GitLab group", true,
			func(ctx context.Context, c gitlab.Client, a *GetGroupWikiPageArgs) (interface{}, error) {
				return c.Wikis().Get(ctx, gitlab.GroupWiki, a.GroupID.String(), a.Slug, &a.GetWikiPageOptions)
			}),
		newTool("create_group_wiki_page", "Create a new wiki page for a GitLab group", false,
			func(ctx context.Context, c gitlab.Client, a *CreateGroupWikiPageArgs) (interface{}, error) {
				return c.Wikis().Create(ctx, gitlab.GroupWiki, a.GroupID.String(), &a.CreateWikiPageOptions)
			}),
		newTool("edit_group_wiki_page", "Edit an existing wiki page for a GitLab group", false,
			func(ctx context.Context, c gitlab.Client, a *EditGroupWikiPageArgs) (interface{}, error) {
				return c.Wikis().Edit(ctx, gitlab.GroupWiki, a.GroupID.String(), a.Slug, &a.EditWikiPageOptions)
			}),
		newTool("delete_group_wiki_page", "Delete a wiki page from a GitLab group", false,
			func(ctx context.Context, c gitlab.Client, a *DeleteGroupWikiPageArgs) (interface{}, error) {
				return deleteWikiPage(ctx, c, gitlab.GroupWiki, a.GroupID, a.Slug)
			}),
		newTool("upload_group_wiki_attachment", "Upload an attachment to a GitLab group wiki", false,
			func(ctx context.Context, c gitlab.Client, a *UploadGroupWikiAttachmentArgs) (interface{}, error) {
				return c.Wikis().UploadAttachment(ctx, gitlab.GroupWiki, a.GroupID.String(), &a.UploadWikiAttachmentOptions)
			}),
	}
}
