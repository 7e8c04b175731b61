// Package pathutil splits toyfs paths into components without mutating
// the caller's string. The original C sources (original_source/main.c,
// original_source/src/operations.c's fs_mkdir) tokenize paths destructively
// with strtok/strrchr, a pattern spec.md section 4.3 and section 9
// explicitly call out to fix: "the resolver must not mutate its input
// path; the implementation must not rely on destructive tokenization."
// Go strings are immutable, so the fix is free so long as callers split
// with strings.Split/Cut rather than reaching for byte slices in place.
package pathutil

import (
	"fmt"
	"strings"
)

// Split breaks an absolute path ("/a/b/c") into its non-empty components
// ("a", "b", "c"). A leading slash is required; doubled slashes and a
// trailing slash are tolerated and simply contribute no empty component.
// The root path "/" (or "") splits to an empty slice.
func Split(path string) ([]string, error) {
	if path == "" {
		return []string{}, nil
	}
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("%w: %q does not start with '/'", ErrBadPath, path)
	}
	parts := strings.Split(path, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// ErrBadPath is returned by Split when a non-empty path does not start
// with "/".
var ErrBadPath = fmt.Errorf("pathutil: path must be absolute")

// SplitParent splits path into its parent directory's components and its
// final (leaf) component name. "/a/b/c" yields (["a","b"], "c"). A path
// with a single component, "/leaf", yields (nil, "leaf").
func SplitParent(path string) ([]string, string, error) {
	parts, err := Split(path)
	if err != nil {
		return nil, "", err
	}
	if len(parts) == 0 {
		return nil, "", fmt.Errorf("%w: %q has no leaf component", ErrBadPath, path)
	}
	return parts[:len(parts)-1], parts[len(parts)-1], nil
}

// Join renders components back into an absolute path, the inverse of Split.
func Join(components []string) string {
	if len(components) == 0 {
		return "/"
	}
	return "/" + strings.Join(components, "/")
}
