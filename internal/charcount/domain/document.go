package domain

// Document is a markdown file read from the content directory.
//
// Content is the decoded text with line endings normalised to "\n".
// Frontmatter + Body == Content always holds.
type Document struct {
	Path        string         // path as listed, e.g. website/content/services/a.md
	Name        string         // base name of Path
	Content     string         // full decoded text
	Frontmatter string         // leading frontmatter block including both delimiters, or ""
	Body        string         // Content without Frontmatter
	Metadata    map[string]any // parsed frontmatter fields; empty when absent or malformed
	Digest      string         // hex SHA-256 of Content
}

// HasFrontmatter reports whether the document started with a frontmatter block.
func (d Document) HasFrontmatter() bool { return d.Frontmatter != "" }

// Title returns the frontmatter title, if any.
func (d Document) Title() string {
	if t, ok := d.Metadata["title"].(string); ok {
		return t
	}
	return ""
}
