package content

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
)

const delimiter = "---"

// frontmatterPattern matches one leading block: "---" at the start of the
// text, then the shortest run of anything up to and including "---\n".
var frontmatterPattern = regexp.MustCompile(`^---[\s\S]*?---\n`)

// StripFrontmatter splits content into its leading frontmatter block and the
// remaining body. At most one block is removed; when content does not start
// with a block, frontmatter is empty and body is content unchanged.
func StripFrontmatter(content string) (frontmatter, body string) {
	loc := frontmatterPattern.FindStringIndex(content)
	if loc == nil {
		return "", content
	}
	return content[:loc[1]], content[loc[1]:]
}

// frontmatterInner returns the text between the opening and closing delimiters.
func frontmatterInner(frontmatter string) string {
	inner := strings.TrimPrefix(frontmatter, delimiter)
	return strings.TrimSuffix(inner, delimiter+"\n")
}

// ParseMetadata decodes the YAML between the delimiters of a frontmatter block.
// An empty block yields an empty map.
func ParseMetadata(frontmatter string) (map[string]any, error) {
	if frontmatter == "" {
		return map[string]any{}, nil
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(frontmatterInner(frontmatter))), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	return k.Raw(), nil
}
