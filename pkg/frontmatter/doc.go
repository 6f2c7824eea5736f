// Package frontmatter reads and writes the YAML frontmatter block at the top
// of Markdown files, as used by SKILL.md manifests.
//
// Frontmatter is delimited by lines containing only "---". The content
// between the delimiters is YAML.
//
// # Reading
//
// [ParseHeader] decodes only the header and stops at the closing delimiter,
// so listing many skills never reads their bodies:
//
//	var meta struct {
//		Name        string `yaml:"name"`
//		Description string `yaml:"description"`
//	}
//	if err := frontmatter.ParseHeader(f, &meta); err != nil {
//		return err
//	}
//
// A file without frontmatter is not an error; the destination is left
// untouched. An opening delimiter without a closing one is reported as
// [ErrUnterminated].
//
// # Writing
//
// [Format] serializes a value as YAML between delimiters and appends the
// body separated by a blank line.
package frontmatter
