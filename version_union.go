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
	"slices"
	"strings"
)

// VersionUnion is a disjunction of two or more disjoint, non-adjacent
// ranges in ascending order. Construction goes through UnionOf, which
// maintains that shape; unions of fewer pieces collapse to simpler
// constraints.
type VersionUnion struct {
	ranges []rangeConstraint
}

// UnionOf combines constraints into their union. Empty members are
// dropped, nested unions are flattened, and overlapping or adjacent
// members are merged, so the result is the simplest constraint covering
// all members: an EmptyConstraint, a single version or range, or a
// normalized VersionUnion.
func UnionOf(constraints ...Constraint) Constraint {
	var flattened []rangeConstraint
	for _, constraint := range constraints {
		if constraint.IsEmpty() {
			continue
		}
		switch constraint := constraint.(type) {
		case *VersionUnion:
			flattened = append(flattened, constraint.ranges...)
		case rangeConstraint:
			flattened = append(flattened, constraint)
		default:
			panic(&IncompatibleOperandError{Operation: "UnionOf", Operand: constraint})
		}
	}

	if len(flattened) == 0 {
		return &EmptyConstraint{}
	}

	for _, constraint := range flattened {
		if constraint.IsAny() {
			return AnyConstraint()
		}
	}

	slices.SortStableFunc(flattened, compareRanges)

	merged := make([]rangeConstraint, 0, len(flattened))
	for _, constraint := range flattened {
		last := len(merged) - 1
		if len(merged) == 0 || (!merged[last].AllowsAny(constraint) &&
			!merged[last].asRange().IsAdjacentTo(constraint.asRange())) {
			merged = append(merged, constraint)
			continue
		}
		// Touching members merge into one contiguous constraint.
		merged[last] = merged[last].Union(constraint).(rangeConstraint)
	}

	if len(merged) == 1 {
		return merged[0]
	}
	return &VersionUnion{ranges: merged}
}

// Ranges returns the disjoint members of the union in ascending order.
func (u *VersionUnion) Ranges() []Constraint {
	out := make([]Constraint, len(u.ranges))
	for i, c := range u.ranges {
		out[i] = c
	}
	return out
}

// ExcludesSingleVersion reports whether the union is the complement of
// exactly one version, the shape a "!=" requirement produces.
func (u *VersionUnion) ExcludesSingleVersion() bool {
	_, ok := u.excludedVersion()
	return ok
}

func (u *VersionUnion) excludedVersion() (*Version, bool) {
	v, ok := AnyConstraint().Difference(u).(*Version)
	return v, ok
}

// IsEmpty implements Constraint; unions always have members.
func (u *VersionUnion) IsEmpty() bool { return false }

// IsAny implements Constraint; a full union collapses to a range before
// construction.
func (u *VersionUnion) IsAny() bool { return false }

// Allows reports whether any member allows version.
func (u *VersionUnion) Allows(version *Version) bool {
	for _, c := range u.ranges {
		if c.Allows(version) {
			return true
		}
	}
	return false
}

// AllowsAll reports whether the union covers everything other allows.
// Both member lists are ascending, so a single parallel walk suffices.
func (u *VersionUnion) AllowsAll(other Constraint) bool {
	ours := u.ranges
	theirs := rangesFor(other, "AllowsAll")

	i, j := 0, 0
	for i < len(ours) && j < len(theirs) {
		if ours[i].AllowsAll(theirs[j]) {
			j++
		} else {
			i++
		}
	}
	// Every piece of theirs found a covering member.
	return j >= len(theirs)
}

// AllowsAny reports whether the union and other share at least one version.
func (u *VersionUnion) AllowsAny(other Constraint) bool {
	ours := u.ranges
	theirs := rangesFor(other, "AllowsAny")

	i, j := 0, 0
	for i < len(ours) && j < len(theirs) {
		if ours[i].AllowsAny(theirs[j]) {
			return true
		}
		if theirs[j].asRange().AllowsHigher(ours[i].asRange()) {
			i++
		} else {
			j++
		}
	}
	return false
}

// Intersect returns the versions allowed by both the union and other.
func (u *VersionUnion) Intersect(other Constraint) Constraint {
	ours := u.ranges
	theirs := rangesFor(other, "Intersect")

	var pieces []Constraint
	i, j := 0, 0
	for i < len(ours) && j < len(theirs) {
		if piece := ours[i].Intersect(theirs[j]); !piece.IsEmpty() {
			pieces = append(pieces, piece)
		}
		if theirs[j].asRange().AllowsHigher(ours[i].asRange()) {
			i++
		} else {
			j++
		}
	}
	return UnionOf(pieces...)
}

// Union returns the versions allowed by either the union or other.
func (u *VersionUnion) Union(other Constraint) Constraint {
	return UnionOf(u, other)
}

// Difference returns the versions allowed by the union but not by other.
func (u *VersionUnion) Difference(other Constraint) Constraint {
	if other.IsEmpty() {
		return u
	}

	ours := u.ranges
	theirs := rangesFor(other, "Difference")

	var pieces []Constraint
	i, j := 0, 0
	current := ours[0]

	// theirNext advances the subtrahend; once it runs out, current and the
	// rest of our members pass through untouched.
	theirNext := func() bool {
		j++
		if j < len(theirs) {
			return true
		}
		pieces = append(pieces, current)
		for i++; i < len(ours); i++ {
			pieces = append(pieces, ours[i])
		}
		return false
	}

	// ourNext moves on to our next member, optionally keeping what is left
	// of the current one.
	ourNext := func(includeCurrent bool) bool {
		if includeCurrent {
			pieces = append(pieces, current)
		}
		i++
		if i >= len(ours) {
			return false
		}
		current = ours[i]
		return true
	}

walk:
	for {
		switch {
		case theirs[j].asRange().IsStrictlyLower(current.asRange()):
			if !theirNext() {
				break walk
			}
		case theirs[j].asRange().IsStrictlyHigher(current.asRange()):
			if !ourNext(true) {
				break walk
			}
		default:
			switch diff := current.Difference(theirs[j]).(type) {
			case *VersionUnion:
				// The subtrahend split current in half; only the upper half
				// can overlap later subtrahends.
				pieces = append(pieces, diff.ranges[0])
				current = diff.ranges[1]
				if !theirNext() {
					break walk
				}
			case *EmptyConstraint:
				if !ourNext(false) {
					break walk
				}
			default:
				current = diff.(rangeConstraint)
				// Advance whichever side ends lower to keep the walks aligned.
				if current.asRange().AllowsHigher(theirs[j].asRange()) {
					if !theirNext() {
						break walk
					}
				} else if !ourNext(true) {
					break walk
				}
			}
		}
	}

	if len(pieces) == 0 {
		return &EmptyConstraint{}
	}
	return UnionOf(pieces...)
}

// String renders "!=" for a single excluded version and otherwise joins
// the members with " || ".
func (u *VersionUnion) String() string {
	if v, ok := u.excludedVersion(); ok {
		return "!=" + v.String()
	}

	parts := make([]string, len(u.ranges))
	for i, c := range u.ranges {
		parts[i] = c.String()
	}
	return strings.Join(parts, " || ")
}
