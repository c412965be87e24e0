package gitlab

// Wiki page formats.
const (
	WikiFormatMarkdown = "markdown"
	WikiFormatRDoc     = "rdoc"
	WikiFormatAsciiDoc = "asciidoc"
	WikiFormatOrg      = "org"
)

// WikiPage is a project or group wiki page.
type WikiPage struct {
	Slug      string `json:"slug"                 yaml:"slug"                 shape:"required"`
	Title     string `json:"title"                yaml:"title"                shape:"required"`
	Format    string `json:"format"               yaml:"format"               shape:"default=markdown,enum=markdown|rdoc|asciidoc|org"`
	Content   string `json:"content,omitempty"    yaml:"content,omitempty"`
	Encoding  string `json:"encoding,omitempty"   yaml:"encoding,omitempty"`
	WebURL    string `json:"web_url,omitempty"    yaml:"web_url,omitempty"`
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// WikiAttachment is an uploaded wiki attachment.
type WikiAttachment struct {
	FileName string `json:"file_name"     yaml:"file_name"     shape:"required"`
	FilePath string `json:"file_path"     yaml:"file_path"     shape:"required"`
	Branch   string `json:"branch"        yaml:"branch"        shape:"required"`
	CommitID string `json:"commit_id"     yaml:"commit_id"     shape:"required"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
}

// ListWikiPagesOptions are the parameters of GET .../wikis.
type ListWikiPagesOptions struct {
	WithContent *bool `json:"with_content,omitempty" url:"with_content,omitempty" yaml:"with_content,omitempty" desc:"Include content of the wiki pages"`
}

// GetWikiPageOptions are the parameters of GET .../wikis/:slug.
type GetWikiPageOptions struct {
	RenderHTML *bool  `json:"render_html,omitempty" url:"render_html,omitempty" yaml:"render_html,omitempty" desc:"Return the rendered HTML of the wiki page"`
	Version    string `json:"version,omitempty"     url:"version,omitempty"     yaml:"version,omitempty"     desc:"Wiki page version SHA"`
}

// CreateWikiPageOptions is the body of POST .../wikis.
type CreateWikiPageOptions struct {
	Title   string `json:"title"   yaml:"title"   shape:"required"                                           desc:"Title of the wiki page"`
	Content string `json:"content" yaml:"content" shape:"required"                                           desc:"Content of the wiki page"`
	Format  string `json:"format"  yaml:"format"  shape:"default=markdown,enum=markdown|rdoc|asciidoc|org" desc:"Content format"`
}

// EditWikiPageOptions is the body of PUT .../wikis/:slug.
type EditWikiPageOptions struct {
	Title   string `json:"title,omitempty"   yaml:"title,omitempty"                                        desc:"New title of the wiki page"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"                                      desc:"New content of the wiki page"`
	Format  string `json:"format,omitempty"  yaml:"format,omitempty"  shape:"enum=markdown|rdoc|asciidoc|org" desc:"Content format"`
}

// UploadWikiAttachmentOptions describes a wiki attachment upload. Content is
// raw text or an existing data URI.
type UploadWikiAttachmentOptions struct {
	FilePath string `json:"file_path"        yaml:"file_path"        shape:"required" desc:"Path to store the attachment"`
	Content  string `json:"content"          yaml:"content"          shape:"required" desc:"Content of the attachment"`
	Branch   string `json:"branch,omitempty" yaml:"branch,omitempty"                  desc:"Branch to upload the attachment to"`
}
