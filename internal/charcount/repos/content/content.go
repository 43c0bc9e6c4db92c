// Package content discovers and reads the markdown documents of a content directory.
// Listing is non-recursive and sorted; reading decodes UTF-8 text and splits off
// the leading frontmatter block.
package content

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/npo-hokage/charcount/internal/charcount/common/log"
	"github.com/npo-hokage/charcount/internal/charcount/domain"
)

// ErrInvalidUTF8 is returned when a file cannot be decoded as UTF-8 text.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Repository reads markdown files from fsys, which is rooted at dir.
type Repository struct {
	fsys    fs.FS
	dir     string
	pattern string
	logger  log.Logger
}

// NewRepository returns a Repository over fsys. dir is the directory fsys is
// rooted at and is used to build the listed paths. An empty pattern means "*.md".
func NewRepository(fsys fs.FS, dir, pattern string, logger log.Logger) *Repository {
	if strings.TrimSpace(pattern) == "" {
		pattern = "*.md"
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Repository{
		fsys:    fsys,
		dir:     filepath.Clean(dir),
		pattern: pattern,
		logger:  logger,
	}
}

// Dir returns the directory the repository lists.
func (r *Repository) Dir() string { return r.dir }

// List returns the paths of all entries in the directory whose name matches
// the pattern, sorted ascending by full path. Names starting with "." are
// skipped unless the pattern itself starts with ".". A missing directory
// yields an empty list.
func (r *Repository) List() ([]string, error) {
	names, err := fs.Glob(r.fsys, r.pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", r.pattern, err)
	}

	paths := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(r.pattern, ".") {
			continue
		}
		paths = append(paths, filepath.Join(r.dir, filepath.FromSlash(name)))
	}
	sort.Strings(paths)

	r.logger.Debug(map[string]any{
		"dir":     r.dir,
		"pattern": r.pattern,
		"matches": len(paths),
	}, "Listed content files")
	return paths, nil
}

// Read loads the file at path (as returned by List) and splits it into
// frontmatter and body. Line endings are normalised to "\n". Frontmatter that
// is not valid YAML is logged and leaves Metadata empty; it never fails the read.
func (r *Repository) Read(path string) (domain.Document, error) {
	rel, err := r.relative(path)
	if err != nil {
		return domain.Document{}, err
	}

	data, err := fs.ReadFile(r.fsys, rel)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return domain.Document{}, fmt.Errorf("failed to decode %s: %w", path, ErrInvalidUTF8)
	}

	text := newlines.Replace(string(data))
	frontmatter, body := StripFrontmatter(text)
	sum := sha256.Sum256([]byte(text))

	doc := domain.Document{
		Path:        path,
		Name:        filepath.Base(path),
		Content:     text,
		Frontmatter: frontmatter,
		Body:        body,
		Digest:      hex.EncodeToString(sum[:]),
	}

	meta, err := ParseMetadata(frontmatter)
	if err != nil {
		r.logger.Warn(map[string]any{"file": path, "error": err}, "Ignoring malformed frontmatter")
		meta = map[string]any{}
	}
	doc.Metadata = meta

	return doc, nil
}

// relative converts a listed path back into a slash-separated name inside fsys.
func (r *Repository) relative(path string) (string, error) {
	rel, err := filepath.Rel(r.dir, filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("path %s is outside %s: %w", path, r.dir, err)
	}
	rel = filepath.ToSlash(rel)
	if !fs.ValidPath(rel) {
		return "", fmt.Errorf("path %s is outside %s: %w", path, r.dir, fs.ErrInvalid)
	}
	return rel, nil
}
