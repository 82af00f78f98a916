package models

// BuildInformation is set at build time with -ldflags.
type BuildInformation struct {
	Version string
	Commit  string
	Date    string
}

// VersionString returns the version, with the short commit
// hash appended for latest builds.
func (b BuildInformation) VersionString() string {
	if b.Version != "latest" {
		return b.Version
	}
	const commitShortHashLength = 7
	if len(b.Commit) < commitShortHashLength {
		return "latest"
	}
	return b.Version + "-" + b.Commit[:commitShortHashLength]
}
