package envfile

import (
	"context"
	"slices"
	"strings"

	"github.com/NikitaCOEUR/envcomplete/internal/workspace"
)

// DefaultPrefix is the filename prefix that marks a dotenv file
const DefaultPrefix = ".env"

// LocateOptions controls which root entries count as env files
type LocateOptions struct {
	// Prefix every candidate name must start with; DefaultPrefix when empty
	Prefix string
	// SkipDirectories drops directory entries whose name matches Prefix.
	// They are kept by default: ".env-backup/" is reported like a file.
	SkipDirectories bool
	// Exclude lists exact names never reported, even when they match.
	// config.LocateOptions fills it with envcomplete's own config file
	// names, so ".envcomplete.yml" is not scanned despite its ".env" prefix.
	Exclude []string
}

func (o LocateOptions) prefix() string {
	if o.Prefix == "" {
		return DefaultPrefix
	}
	return o.Prefix
}

// Match reports whether name is a dotenv file name. The test is a
// case-sensitive prefix match: ".env", ".env.local" and ".environment" match.
func Match(name, prefix string) bool {
	return strings.HasPrefix(name, prefix)
}

// Filter returns the names of entries that match, in input order.
// This narrows the plain prefix rule of Match: names listed in
// opts.Exclude are dropped even though they start with the prefix.
func Filter(entries []workspace.Entry, opts LocateOptions) []string {
	prefix := opts.prefix()

	var names []string
	for _, e := range entries {
		if opts.SkipDirectories && e.IsDir {
			continue
		}
		if slices.Contains(opts.Exclude, e.Name) {
			continue
		}
		if Match(e.Name, prefix) {
			names = append(names, e.Name)
		}
	}
	return names
}

// Locate lists ws's root and returns the env file names it contains
func Locate(ctx context.Context, ws workspace.Workspace, opts LocateOptions) ([]string, error) {
	entries, err := ws.ReadDir(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(entries, opts), nil
}
