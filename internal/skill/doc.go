// Package skill discovers and copies skill bundles on disk.
//
// A skill is a directory whose name matches [A-Za-z0-9_-]+ and which
// contains a SKILL.md manifest. Discovery and copying never parse the
// manifest; its presence is the only validity signal. [ReadManifest] reads
// the frontmatter for display only.
//
// [Discover] lists the skills directly under a root in lexicographic order.
// [Copy] replaces a destination skill directory with a full copy of a source
// one. [Scaffold] writes a new skill from a template.
package skill
