package semver

import (
	"slices"
	"strings"
)

// IsVersion reports whether literal parses as a version.
func IsVersion(literal string) bool {
	_, err := ParseVersion(literal)
	return err == nil
}

// CompareVersions parses both literals and orders them like
// (*Version).Compare: -1 when a sorts before b, 0 when they are the same
// version, 1 when a sorts after b.
func CompareVersions(a, b string) (int, error) {
	va, err := ParseVersion(a)
	if err != nil {
		return 0, err
	}
	vb, err := ParseVersion(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

// SortVersions returns the parseable literals in ascending version order.
// Literals that do not parse are dropped, and equal versions keep their
// input order.
func SortVersions(literals []string) []string {
	type entry struct {
		literal string
		version *Version
	}

	entries := make([]entry, 0, len(literals))
	for _, literal := range literals {
		if v, err := ParseVersion(literal); err == nil {
			entries = append(entries, entry{literal: literal, version: v})
		}
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		return a.version.Compare(b.version)
	})

	sorted := make([]string, len(entries))
	for i, e := range entries {
		sorted[i] = e.literal
	}
	return sorted
}

// ParseStability names the release channel of a version literal: "stable"
// for releases and unparseable input, otherwise "rc", "beta", "alpha" or
// "dev" according to the prerelease modifier.
func ParseStability(literal string) string {
	version, err := ParseVersion(literal)
	if err != nil || !version.IsPrerelease() {
		return "stable"
	}

	switch version.pre[0].text {
	case "beta":
		return "beta"
	case "rc":
		return "rc"
	}
	// Both dev and alpha modifiers normalize to the alpha channel; the raw
	// spelling tells them apart.
	if strings.Contains(strings.ToLower(literal), "dev") {
		return "dev"
	}
	return "alpha"
}
