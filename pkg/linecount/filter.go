package linecount

import (
	"path/filepath"
	"strings"
)

// Filter prunes entries during a directory walk. The zero value excludes
// nothing and skips hidden entries.
type Filter struct {
	exclude     []string
	allowHidden bool
}

// NewFilter builds a Filter from exclusion paths and the hidden-entry policy.
// Exclusions are cleaned; empty entries are dropped
func NewFilter(exclude []string, allowHidden bool) Filter {
	cleaned := make([]string, 0, len(exclude))
	for _, p := range exclude {
		if strings.TrimSpace(p) == "" {
			continue
		}
		cleaned = append(cleaned, filepath.Clean(p))
	}

	return Filter{
		exclude:     cleaned,
		allowHidden: allowHidden,
	}
}

// Exclusions returns the cleaned exclusion paths
func (f Filter) Exclusions() []string {
	return append([]string(nil), f.exclude...)
}

// AllowHidden reports whether dot-entries are kept
func (f Filter) AllowHidden() bool {
	return f.allowHidden
}

// Reason explains why an entry was pruned
type Reason string

const (
	// Kept means the entry survives the filter
	Kept Reason = ""
	// Hidden means the entry name starts with a dot
	Hidden Reason = "hidden"
	// Excluded means an exclusion path covers the entry
	Excluded Reason = "excluded"
)

// Check classifies an entry. path is the root joined with the entry names,
// rel is the same path relative to the root.
func (f Filter) Check(path, rel string) Reason {
	if !f.allowHidden && IsHidden(filepath.Base(path)) {
		return Hidden
	}

	for _, ex := range f.exclude {
		if hasPathPrefix(path, ex) || hasPathPrefix(rel, ex) {
			return Excluded
		}
	}

	return Kept
}

// IsHidden reports whether a file name starts with a dot
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// hasPathPrefix reports whether prefix equals p or is one of its ancestors,
// comparing whole path components
func hasPathPrefix(p, prefix string) bool {
	p = filepath.Clean(p)
	if p == prefix {
		return true
	}
	if strings.HasSuffix(prefix, string(filepath.Separator)) {
		return strings.HasPrefix(p, prefix)
	}
	return strings.HasPrefix(p, prefix+string(filepath.Separator))
}
