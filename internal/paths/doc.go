// Package paths resolves the directories skillset reads and writes.
//
// The package wraps github.com/adrg/xdg for the configuration and cache
// roots so the tool follows XDG conventions on Linux and the platform
// equivalents elsewhere:
//
//	paths.ConfigPath()    // ~/.config/skillset/config.yaml
//	paths.ReposCacheDir() // ~/.cache/skillset/repos
//
// Skill stores come in two scopes. The workspace store lives under the
// current directory (".skillset/skills" by default) and the user store under
// the home directory ("~/.skillset/skills"). [ResolveSource] picks one based
// on the --user flag.
//
// Paths in the configuration file may start with "~/"; [ExpandHome] turns
// them into absolute paths.
package paths
