// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is a single package version: up to four numeric components, an
// optional prerelease modifier and optional build metadata.
//
// A Version doubles as a Constraint allowing exactly itself, which lets
// requirement strings like "==1.2.3" and range bounds share one type.
// Versions are immutable; every operation returns a new value.
//
// The display text is fixed at construction. Parsed versions keep their
// input spelling ("v1.2", "1.2.0"), synthesized versions (range bounds
// produced by ^ and ~ arithmetic) render only the components their
// precision covers, so the upper bound of "^1" prints as "2".
type Version struct {
	major int
	minor int
	patch int
	rest  int

	// precision is how many numeric components were written explicitly
	precision int

	pre   []identifier
	build []identifier

	text string
}

// versionPattern accepts an optional leading "v", one to four dot-separated
// numeric components, an optional prerelease modifier zone and an optional
// build zone introduced by "-" or "+". Trailing dots are tolerated.
var versionPattern = regexp.MustCompile(
	`(?i)^v?(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:\.(\d+))?` +
		`(?:[._-]?(alpha|a|beta|b|c|pre|rc|dev)(?:[-.]?(\d+))?)?` +
		`(?:([-+])([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?` +
		`\.*$`)

// prereleaseAliases maps modifier spellings to their canonical channel.
var prereleaseAliases = map[string]string{
	"a":     "alpha",
	"alpha": "alpha",
	"b":     "beta",
	"beta":  "beta",
	"c":     "rc",
	"pre":   "rc",
	"rc":    "rc",
	"dev":   "alpha",
}

// ParseVersion parses a version literal. The grammar is anchored: trailing
// garbage, a fifth numeric component or an unrecognized prerelease modifier
// all yield a *ParseError rather than a silently truncated version.
func ParseVersion(literal string) (*Version, error) {
	m := versionPattern.FindStringSubmatch(literal)
	if m == nil {
		return nil, newVersionParseError(literal)
	}

	v := &Version{text: strings.TrimRight(literal, ".")}

	components := [4]*int{&v.major, &v.minor, &v.patch, &v.rest}
	for i, target := range components {
		if m[i+1] == "" {
			break
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return nil, newVersionParseError(literal)
		}
		*target = n
		v.precision++
	}

	if m[5] != "" {
		number := 0
		if m[6] != "" {
			n, err := strconv.Atoi(m[6])
			if err != nil {
				return nil, newVersionParseError(literal)
			}
			number = n
		}
		alias := prereleaseAliases[strings.ToLower(m[5])]
		v.pre = []identifier{strIdentifier(alias), numIdentifier(number)}
	}

	if m[8] != "" {
		body := m[8]
		if strings.HasPrefix(body, "post") {
			// A leading post marker is not part of the build metadata.
			body = strings.TrimLeft(body, "post")
		}
		if body != "" {
			v.build = splitParts(body)
		}
	}

	return v, nil
}

// NewVersion builds a release version from explicit major, minor and patch
// components.
func NewVersion(major, minor, patch int) *Version {
	return versionWithPrecision(major, minor, patch, 0, 3)
}

// versionWithPrecision builds a release version whose display text covers
// exactly the components the precision names, plus any non-zero tail.
func versionWithPrecision(major, minor, patch, rest, precision int) *Version {
	return &Version{
		major:     major,
		minor:     minor,
		patch:     patch,
		rest:      rest,
		precision: precision,
		text:      synthesizeText(major, minor, patch, rest, precision),
	}
}

func synthesizeText(major, minor, patch, rest, precision int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(major))
	if precision >= 2 || minor != 0 {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(minor))
		if precision >= 3 || patch != 0 {
			b.WriteByte('.')
			b.WriteString(strconv.Itoa(patch))
			if precision >= 4 || rest != 0 {
				b.WriteByte('.')
				b.WriteString(strconv.Itoa(rest))
			}
		}
	}
	return b.String()
}

// Major returns the first numeric component.
func (v *Version) Major() int { return v.major }

// Minor returns the second numeric component.
func (v *Version) Minor() int { return v.minor }

// Patch returns the third numeric component.
func (v *Version) Patch() int { return v.patch }

// Rest returns the fourth numeric component.
func (v *Version) Rest() int { return v.rest }

// Precision returns how many numeric components were written explicitly.
func (v *Version) Precision() int { return v.precision }

// Prerelease returns the normalized prerelease identifiers joined with
// dots, or "" for a release version.
func (v *Version) Prerelease() string { return joinIdentifiers(v.pre) }

// Build returns the build metadata identifiers joined with dots, or "".
func (v *Version) Build() string { return joinIdentifiers(v.build) }

// IsPrerelease reports whether the version carries a prerelease modifier.
func (v *Version) IsPrerelease() bool { return len(v.pre) > 0 }

// Compare orders v against other.
// Returns:
//
//	-1 if v < other
//	 0 if v == other
//	 1 if v > other
//
// Numeric components compare first. A release sorts above every prerelease
// of the same release, and a version without build metadata sorts below the
// same version with build metadata. Display text never participates, so
// "1.0" and "1.0.0" compare equal.
func (v *Version) Compare(other *Version) int {
	if c := compareInts(v.major, other.major); c != 0 {
		return c
	}
	if c := compareInts(v.minor, other.minor); c != 0 {
		return c
	}
	if c := compareInts(v.patch, other.patch); c != 0 {
		return c
	}
	if c := compareInts(v.rest, other.rest); c != 0 {
		return c
	}
	if c := comparePrerelease(v.pre, other.pre); c != 0 {
		return c
	}
	return compareBuildMetadata(v.build, other.build)
}

// Equals reports whether both versions occupy the same point in the version
// order. Display text and precision are ignored.
func (v *Version) Equals(other *Version) bool {
	return v.Compare(other) == 0
}

// EqualsWithoutPrerelease reports whether both versions share the same
// major, minor and patch components.
func (v *Version) EqualsWithoutPrerelease(other *Version) bool {
	return v.major == other.major && v.minor == other.minor && v.patch == other.patch
}

// LessThan reports whether v sorts strictly before other.
func (v *Version) LessThan(other *Version) bool {
	return v.Compare(other) < 0
}

// GreaterThan reports whether v sorts strictly after other.
func (v *Version) GreaterThan(other *Version) bool {
	return v.Compare(other) > 0
}

// Stable returns the release this version stabilizes to: the version itself
// for a release, the same numeric components without the prerelease
// modifier otherwise.
func (v *Version) Stable() *Version {
	if !v.IsPrerelease() {
		return v
	}
	return v.NextPatch()
}

// NextMajor returns the next major release boundary. A prerelease of a
// major boundary ("2.0.0-rc.1") stabilizes to that boundary instead of
// skipping past it.
func (v *Version) NextMajor() *Version {
	if v.IsPrerelease() && v.minor == 0 && v.patch == 0 {
		return versionWithPrecision(v.major, v.minor, v.patch, 0, 3)
	}
	return versionWithPrecision(v.major+1, 0, 0, 0, v.precision)
}

// NextMinor returns the next minor release boundary. A prerelease of a
// minor boundary stabilizes to that boundary.
func (v *Version) NextMinor() *Version {
	if v.IsPrerelease() && v.patch == 0 {
		return versionWithPrecision(v.major, v.minor, v.patch, 0, 3)
	}
	return versionWithPrecision(v.major, v.minor+1, 0, 0, v.precision)
}

// NextPatch returns the next patch release, or the stabilized release when
// the version is a prerelease.
func (v *Version) NextPatch() *Version {
	if v.IsPrerelease() {
		return versionWithPrecision(v.major, v.minor, v.patch, 0, 3)
	}
	return versionWithPrecision(v.major, v.minor, v.patch+1, 0, v.precision)
}

// NextBreaking returns the first version allowed to break compatibility
// under caret semantics: the next major release, or for 0.x versions the
// next minor (or patch) release depending on which components were written.
func (v *Version) NextBreaking() *Version {
	if v.major != 0 {
		return versionWithPrecision(v.major+1, 0, 0, 0, v.precision)
	}
	if v.minor != 0 {
		return versionWithPrecision(v.major, v.minor+1, 0, 0, v.precision)
	}
	switch v.precision {
	case 1:
		return versionWithPrecision(v.major+1, 0, 0, 0, v.precision)
	case 2:
		return versionWithPrecision(v.major, v.minor+1, 0, 0, v.precision)
	}
	return versionWithPrecision(v.major, v.minor, v.patch+1, 0, v.precision)
}

// FirstPrerelease returns the lowest prerelease of this version's release,
// "major.minor.patch-alpha.0".
func (v *Version) FirstPrerelease() *Version {
	first, err := ParseVersion(fmt.Sprintf("%d.%d.%d-alpha.0", v.major, v.minor, v.patch))
	if err != nil {
		panic(err) // synthesized literal always parses
	}
	return first
}

// IsEmpty implements Constraint; a version always allows itself.
func (v *Version) IsEmpty() bool { return false }

// IsAny implements Constraint.
func (v *Version) IsAny() bool { return false }

// Allows reports whether version is the same point in the version order.
func (v *Version) Allows(version *Version) bool {
	return v.Equals(version)
}

// AllowsAll reports whether other allows no version besides v.
func (v *Version) AllowsAll(other Constraint) bool {
	return v.asRange().AllowsAll(other)
}

// AllowsAny reports whether other allows v.
func (v *Version) AllowsAny(other Constraint) bool {
	return other.Allows(v)
}

// Intersect returns v when other allows it and the empty constraint
// otherwise.
func (v *Version) Intersect(other Constraint) Constraint {
	if other.Allows(v) {
		return v
	}
	return &EmptyConstraint{}
}

// Union returns a constraint allowing v plus everything other allows. When
// v sits exactly on an excluded bound of a range the bound becomes
// inclusive instead of producing a two-member union.
func (v *Version) Union(other Constraint) Constraint {
	if other.Allows(v) {
		return other
	}
	if r, ok := other.(*VersionRange); ok {
		if r.min != nil && r.min.Equals(v) {
			return NewVersionRange(r.min, r.max, true, r.includeMax)
		}
		if r.max != nil && r.max.Equals(v) {
			return NewVersionRange(r.min, r.max, r.includeMin, true)
		}
	}
	return UnionOf(v, other)
}

// Difference returns the empty constraint when other allows v, and v
// itself otherwise.
func (v *Version) Difference(other Constraint) Constraint {
	if other.Allows(v) {
		return &EmptyConstraint{}
	}
	return v
}

// String returns the display text fixed at construction.
func (v *Version) String() string { return v.text }

// asRange views the version as the degenerate range [v, v].
func (v *Version) asRange() *VersionRange {
	return &VersionRange{min: v, max: v, includeMin: true, includeMax: true}
}

// identifier is one dot-separated prerelease or build token. Numeric tokens
// compare by value and sort below alphanumeric tokens.
type identifier struct {
	num     int
	text    string
	numeric bool
}

func numIdentifier(n int) identifier { return identifier{num: n, numeric: true} }

func strIdentifier(s string) identifier { return identifier{text: s} }

func (i identifier) String() string {
	if i.numeric {
		return strconv.Itoa(i.num)
	}
	return i.text
}

func (i identifier) compare(other identifier) int {
	if i.numeric && other.numeric {
		return compareInts(i.num, other.num)
	}
	if i.numeric {
		return -1
	}
	if other.numeric {
		return 1
	}
	return strings.Compare(i.text, other.text)
}

// splitParts splits a dotted token list, keeping digit-only tokens numeric.
func splitParts(s string) []identifier {
	parts := strings.Split(s, ".")
	ids := make([]identifier, 0, len(parts))
	for _, part := range parts {
		if isDigits(part) {
			n, err := strconv.Atoi(part)
			if err == nil {
				ids = append(ids, numIdentifier(n))
				continue
			}
		}
		ids = append(ids, strIdentifier(part))
	}
	return ids
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func joinIdentifiers(ids []identifier) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ".")
}

// comparePrerelease orders prerelease identifier lists. An empty list is a
// release and sorts above any prerelease.
func comparePrerelease(a, b []identifier) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}
	return compareIdentifiers(a, b)
}

// compareBuildMetadata orders build identifier lists. An empty list sorts
// below any build metadata.
func compareBuildMetadata(a, b []identifier) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return -1
	case len(b) == 0:
		return 1
	}
	return compareIdentifiers(a, b)
}

// compareIdentifiers walks two token lists element-wise; a missing token
// sorts before any present one.
func compareIdentifiers(a, b []identifier) int {
	for i := 0; i < len(a) || i < len(b); i++ {
		switch {
		case i >= len(a):
			return -1
		case i >= len(b):
			return 1
		}
		if c := a[i].compare(b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
