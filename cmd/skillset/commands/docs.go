package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// agentsMDSnippet tells coding agents where skills live and how to publish
// new ones.
const agentsMDSnippet = "## Skills (skillset)\n" +
	"\n" +
	"- **Where to store generated skills:** Put new skills under **`.skillset/skills/<name>/`** (workspace) or **`~/.skillset/skills/<name>/`** (user-level). Each skill is a directory containing at least **`SKILL.md`**.\n" +
	"- **Scaffold a new skill:** Run **`skillset add <name>`** to create `.skillset/skills/<name>/` with a template `SKILL.md` (use **`--user`** for user-level). Then edit `SKILL.md` with the skill content.\n" +
	"- **After adding or updating skills:** Run **`skillset sync`** (workspace) or **`skillset sync --user`** (user-level) to load skills to the configured tools (e.g. Cursor, Claude)."

// docAgentsMD holds the value of the --agents-md flag.
var docAgentsMD bool

func init() {
	docCmd.Flags().BoolVar(&docAgentsMD, "agents-md", false,
		"print the AGENTS.md snippet")
	rootCmd.AddCommand(docCmd)
}

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Print documentation snippets",
	Long: `Print documentation snippets for other tools.

--agents-md prints a section for AGENTS.md that tells coding agents where
to store the skills they write and how to sync them.`,
	Example: `  # Append the snippet to AGENTS.md
  skillset doc --agents-md >> AGENTS.md

  See Also: skillset add`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDocWithIO(cmd.OutOrStdout())
	},
}

func runDocWithIO(w io.Writer) error {
	if !docAgentsMD {
		fmt.Fprintln(w, "Use --agents-md to output the AGENTS.md snippet.")
		return nil
	}
	fmt.Fprintln(w, agentsMDSnippet)
	return nil
}
