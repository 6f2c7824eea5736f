package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/pkg/fileutil"
	"github.com/thoreinstein/skillset/pkg/frontmatter"
)

// ReadmeFile is the optional companion document written by Scaffold.
const ReadmeFile = "README.md"

// ErrExists is returned by Scaffold when the skill directory already exists
// and force was not set.
var ErrExists = errors.New("skill already exists")

// Manifest is the frontmatter of a SKILL.md file.
type Manifest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

const defaultDescription = "A brief description of what this skill does."

const manifestBody = `# %s

## When to use

Apply this skill when:

- The user asks for help with [specific task/area]
- You need to [perform specific action]
- The context involves [domain or framework]

## Instructions

1. First step or condition
2. Second step
3. Continue as needed

## Paths

| Role   | Path                          |
|--------|-------------------------------|
| Source | [relevant source path if any] |
| Target | [relevant target path if any] |

## Workflow

### 1. Setup

- Initial setup steps here
- Check for required resources

### 2. Execution

- Step-by-step process
- Handle edge cases

### 3. Verification

- How to verify the result
- Common issues and solutions

## Edge cases

- **Case 1:** Description and solution
- **Case 2:** Description and solution
`

const readmeBody = "# %s Skill\n\nA skill for %s.\n\n## Usage\n\nRun `skillset sync` to load this skill to your configured tools.\n"

// Scaffold creates root/name with a template SKILL.md and README.md and
// returns the path of the new skill directory. An existing directory is only
// replaced when force is set.
func Scaffold(root, name string, force bool) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	dir := filepath.Join(root, name)
	exists, err := Exists(dir)
	if err != nil {
		return "", err
	}
	if exists {
		if !force {
			return "", errors.WithHint(
				errors.Wrapf(ErrExists, "%q at %s", name, dir),
				"use --force to overwrite")
		}
		if err := os.RemoveAll(dir); err != nil {
			return "", errors.Wrapf(err, "removing existing skill %s", dir)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating skill directory %s", dir)
	}

	manifest, err := frontmatter.Format(Manifest{
		Name:        name,
		Description: defaultDescription,
	}, fmt.Sprintf(manifestBody, title(name)))
	if err != nil {
		return "", errors.Wrap(err, "generating SKILL.md template")
	}
	if err := fileutil.AtomicWriteFile(filepath.Join(dir, ManifestFile), manifest, 0o644); err != nil {
		return "", errors.Wrap(err, "writing SKILL.md")
	}

	readme := fmt.Sprintf(readmeBody, name, words(name))
	if err := fileutil.AtomicWriteFile(filepath.Join(dir, ReadmeFile), []byte(readme), 0o644); err != nil {
		return "", errors.Wrap(err, "writing README.md")
	}

	return dir, nil
}

// ReadManifest parses the frontmatter of dir/SKILL.md. A manifest without
// frontmatter yields a zero Manifest.
func ReadManifest(dir string) (Manifest, error) {
	var m Manifest
	f, err := os.Open(filepath.Join(dir, ManifestFile))
	if err != nil {
		return m, errors.Wrapf(err, "opening manifest in %s", dir)
	}
	defer f.Close()

	if err := frontmatter.ParseHeader(f, &m); err != nil {
		return m, errors.Wrapf(err, "parsing manifest in %s", dir)
	}
	return m, nil
}

func words(name string) string {
	return strings.NewReplacer("-", " ", "_", " ").Replace(name)
}

func title(name string) string {
	return strings.ToUpper(words(name))
}
