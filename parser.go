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
	"regexp"
	"strconv"
	"strings"
)

var (
	// A trailing @stability marker narrows prerelease visibility at the
	// packaging layer; the constraint parser strips it.
	stabilityPattern = regexp.MustCompile(`(?i)^([^,\s]*?)@(stable|rc|beta|alpha|dev)$`)

	orSplitPattern = regexp.MustCompile(`\s*\|\|?\s*`)

	wildcardPattern = regexp.MustCompile(`(?i)^v?[x*](\.[x*])*$`)

	xRangePattern = regexp.MustCompile(`(?i)^(!=|==)?\s*v?(\d+)(?:\.(\d+))?(?:\.[x*])+$`)

	basicPattern = regexp.MustCompile(`^(<>|!=|==?|>=?|<=?)?\s*(.+)$`)
)

// ParseConstraint parses a requirement string into a Constraint.
//
// Supported syntax:
//
//	*                 any version (also "x", "X", "*.*", ...)
//	1.2.3             exactly 1.2.3 (optional ==, =, v prefix)
//	!=1.2.3           anything but 1.2.3 (also <>)
//	>1.2, >=1.2, <2, <=2
//	^1.2              >=1.2,<2.0 (caret: no breaking change)
//	~1.2.3            >=1.2.3,<1.3.0 (tilde: patch-level changes)
//	~=1.2.3           >=1.2.3,<1.3.0 (PEP 440 compatible release)
//	1.2.x, 1.*        x-range standing in for the trailing components
//	foo@beta          stability marker, stripped
//
// Comma- or space-separated terms within a group intersect, and groups
// joined with "||" (or "|") union:
//
//	>=1.0,<2.0 || >=3.0
//
// Failures report the full requirement string via *ParseError.
func ParseConstraint(text string) (Constraint, error) {
	original := text
	text = strings.TrimSpace(text)

	if m := stabilityPattern.FindStringSubmatch(text); m != nil {
		text = m[1]
		if text == "" {
			text = "*"
		}
	}

	if text == "*" {
		return AnyConstraint(), nil
	}

	groups := orSplitPattern.Split(text, -1)
	ors := make([]Constraint, 0, len(groups))
	for _, group := range groups {
		// Trailing commas appear in published metadata; tolerate them.
		group = strings.TrimRight(group, ",")
		group = strings.TrimRight(group, " \t")

		var constraint Constraint
		for i, term := range splitAndTerms(group) {
			c, err := parseSingleConstraint(term, original)
			if err != nil {
				return nil, err
			}
			if i == 0 {
				constraint = c
			} else {
				constraint = constraint.Intersect(c)
			}
		}
		ors = append(ors, constraint)
	}

	if len(ors) == 1 {
		return ors[0], nil
	}
	return UnionOf(ors...), nil
}

// splitAndTerms splits a constraint group into its AND-joined terms. A
// comma or space separates terms unless it trails an operator or touches a
// hyphen, so ">= 1.2, < 2.0" is two terms while ">= 1.2" alone stays one.
func splitAndTerms(s string) []string {
	var terms []string
	start := 0
	i := 0
	for i < len(s) {
		if s[i] != ',' && s[i] != ' ' {
			i++
			continue
		}

		begin := i
		for begin > start && s[begin-1] == ' ' {
			begin--
		}
		end := i + 1
		for end < len(s) && s[end] == ' ' {
			end++
		}

		if begin == start || end == len(s) || s[end] == ',' ||
			strings.ContainsRune("^~=>< ,", rune(s[begin-1])) ||
			s[i-1] == '-' || s[i+1] == '-' {
			i++
			continue
		}

		terms = append(terms, s[start:begin])
		start = end
		i = end
	}
	return append(terms, s[start:])
}

func parseSingleConstraint(text, original string) (Constraint, error) {
	if wildcardPattern.MatchString(text) {
		return AnyConstraint(), nil
	}

	switch {
	case strings.HasPrefix(text, "~="):
		version, err := parseConstraintVersion(text[2:], original)
		if err != nil {
			return nil, err
		}
		// A compatible release clause needs something to hold compatible:
		// at least two explicit components.
		if version.Precision() < 2 {
			return nil, newConstraintParseError(original)
		}
		high := version.Stable().NextMinor()
		if version.Precision() == 2 {
			high = version.Stable().NextMajor()
		}
		return NewVersionRange(version, high, true, false), nil

	case strings.HasPrefix(text, "~"):
		version, err := parseConstraintVersion(text[1:], original)
		if err != nil {
			return nil, err
		}
		high := version.Stable().NextMinor()
		if version.Precision() == 1 {
			high = version.Stable().NextMajor()
		}
		return NewVersionRange(version, high, true, false), nil

	case strings.HasPrefix(text, "^"):
		version, err := parseConstraintVersion(text[1:], original)
		if err != nil {
			return nil, err
		}
		return NewVersionRange(version, version.NextBreaking(), true, false), nil
	}

	if m := xRangePattern.FindStringSubmatch(text); m != nil {
		return parseXRange(m, original)
	}

	if m := basicPattern.FindStringSubmatch(text); m != nil {
		op, err := ParseOperator(m[1])
		if err != nil {
			return nil, newConstraintParseError(original)
		}
		literal := m[2]
		if literal == "dev" {
			literal = "0.0-dev"
		}
		version, err := ParseVersion(literal)
		if err != nil {
			return nil, newConstraintParseError(original)
		}
		return op.Constrain(version), nil
	}

	return nil, newConstraintParseError(original)
}

func parseConstraintVersion(text, original string) (*Version, error) {
	version, err := ParseVersion(strings.TrimSpace(text))
	if err != nil {
		return nil, newConstraintParseError(original)
	}
	return version, nil
}

// parseXRange builds the range an x-ed version stands for: "1.2.x" covers
// the 1.2 minor series and "1.x" the 1 major series, while "0.x" has no
// lower bound. A != operator inverts the range.
func parseXRange(m []string, original string) (Constraint, error) {
	major, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, newConstraintParseError(original)
	}

	var result Constraint
	switch {
	case m[3] != "":
		minor, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, newConstraintParseError(original)
		}
		low := NewVersion(major, minor, 0)
		result = NewVersionRange(low, low.NextMinor(), true, false)
	case major == 0:
		result = NewVersionRange(nil, NewVersion(1, 0, 0), false, false)
	default:
		low := NewVersion(major, 0, 0)
		result = NewVersionRange(low, low.NextMajor(), true, false)
	}

	if m[1] == "!=" {
		return AnyConstraint().Difference(result), nil
	}
	return result, nil
}
