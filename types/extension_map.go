package types

import (
	"path/filepath"
	"strings"
)

// ExtensionLookup is a set of file extensions, each including the leading dot
type ExtensionLookup map[string]struct{}

func NewExtensionLookup(extensions ...string) ExtensionLookup {
	lookup := make(ExtensionLookup, len(extensions))
	for _, ext := range extensions {
		lookup[strings.ToLower(ext)] = struct{}{}
	}
	return lookup
}

// Matches reports whether the extension of path is in the set, ignoring case
func (l ExtensionLookup) Matches(path string) bool {
	_, ok := l[strings.ToLower(filepath.Ext(path))]
	return ok
}
