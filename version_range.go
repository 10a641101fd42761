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

import "strings"

// VersionRange is a contiguous interval of versions. A nil bound leaves
// that side unbounded, so AnyConstraint() is the range with both bounds
// nil. Inclusion flags on nil bounds are meaningless and kept false.
type VersionRange struct {
	min        *Version
	max        *Version
	includeMin bool
	includeMax bool
}

// NewVersionRange builds the interval between min and max. Either bound
// may be nil to leave that side open. Bounds are not validated; callers
// are expected to pass min <= max.
func NewVersionRange(min, max *Version, includeMin, includeMax bool) *VersionRange {
	return &VersionRange{min: min, max: max, includeMin: includeMin, includeMax: includeMax}
}

// AnyConstraint returns the range allowing every version.
func AnyConstraint() *VersionRange {
	return &VersionRange{}
}

// Min returns the lower bound, or nil when unbounded below.
func (r *VersionRange) Min() *Version { return r.min }

// Max returns the upper bound, or nil when unbounded above.
func (r *VersionRange) Max() *Version { return r.max }

// IncludeMin reports whether the lower bound itself is allowed.
func (r *VersionRange) IncludeMin() bool { return r.includeMin }

// IncludeMax reports whether the upper bound itself is allowed.
func (r *VersionRange) IncludeMax() bool { return r.includeMax }

// IsEmpty implements Constraint; a range always contains versions.
func (r *VersionRange) IsEmpty() bool { return false }

// IsAny reports whether the range is unbounded on both sides.
func (r *VersionRange) IsAny() bool { return r.min == nil && r.max == nil }

// Allows reports whether version falls inside the range.
func (r *VersionRange) Allows(version *Version) bool {
	if r.min != nil {
		cmp := version.Compare(r.min)
		if cmp < 0 || (cmp == 0 && !r.includeMin) {
			return false
		}
	}
	if r.max != nil {
		cmp := version.Compare(r.max)
		if cmp > 0 || (cmp == 0 && !r.includeMax) {
			return false
		}
	}
	return true
}

// AllowsLower reports whether the range allows versions lower than any
// other allows.
func (r *VersionRange) AllowsLower(other *VersionRange) bool {
	if r.min == nil {
		return other.min != nil
	}
	if other.min == nil {
		return false
	}
	if cmp := r.min.Compare(other.min); cmp != 0 {
		return cmp < 0
	}
	return r.includeMin && !other.includeMin
}

// AllowsHigher reports whether the range allows versions higher than any
// other allows.
func (r *VersionRange) AllowsHigher(other *VersionRange) bool {
	if r.max == nil {
		return other.max != nil
	}
	if other.max == nil {
		return false
	}
	if cmp := r.max.Compare(other.max); cmp != 0 {
		return cmp > 0
	}
	return r.includeMax && !other.includeMax
}

// IsStrictlyLower reports whether every version in the range sorts below
// every version other allows.
func (r *VersionRange) IsStrictlyLower(other *VersionRange) bool {
	if r.max == nil || other.min == nil {
		return false
	}
	if cmp := r.max.Compare(other.min); cmp != 0 {
		return cmp < 0
	}
	return !r.includeMax || !other.includeMin
}

// IsStrictlyHigher reports whether every version in the range sorts above
// every version other allows.
func (r *VersionRange) IsStrictlyHigher(other *VersionRange) bool {
	return other.IsStrictlyLower(r)
}

// IsAdjacentTo reports whether other starts exactly where the range ends,
// with exactly one of the two touching bounds inclusive.
func (r *VersionRange) IsAdjacentTo(other *VersionRange) bool {
	if r.max == nil || other.min == nil || !r.max.Equals(other.min) {
		return false
	}
	return r.includeMax != other.includeMin
}

// AllowsAll reports whether the range covers everything other allows.
func (r *VersionRange) AllowsAll(other Constraint) bool {
	switch other := other.(type) {
	case *EmptyConstraint:
		return true
	case *Version:
		return r.Allows(other)
	case *VersionRange:
		return !other.AllowsLower(r) && !other.AllowsHigher(r)
	case *VersionUnion:
		for _, c := range other.ranges {
			if !r.AllowsAll(c) {
				return false
			}
		}
		return true
	default:
		panic(&IncompatibleOperandError{Operation: "AllowsAll", Operand: other})
	}
}

// AllowsAny reports whether the range and other share at least one version.
func (r *VersionRange) AllowsAny(other Constraint) bool {
	switch other := other.(type) {
	case *EmptyConstraint:
		return false
	case *Version:
		return r.Allows(other)
	case *VersionRange:
		return !other.IsStrictlyLower(r) && !other.IsStrictlyHigher(r)
	case *VersionUnion:
		for _, c := range other.ranges {
			if r.AllowsAny(c) {
				return true
			}
		}
		return false
	default:
		panic(&IncompatibleOperandError{Operation: "AllowsAny", Operand: other})
	}
}

// Intersect returns the versions inside both the range and other.
func (r *VersionRange) Intersect(other Constraint) Constraint {
	switch other := other.(type) {
	case *EmptyConstraint:
		return other
	case *VersionUnion:
		return other.Intersect(r)
	case *Version:
		if r.Allows(other) {
			return other
		}
		return &EmptyConstraint{}
	case *VersionRange:
		var (
			min        *Version
			includeMin bool
		)
		if r.AllowsLower(other) {
			if r.IsStrictlyLower(other) {
				return &EmptyConstraint{}
			}
			min, includeMin = other.min, other.includeMin
		} else {
			if other.IsStrictlyLower(r) {
				return &EmptyConstraint{}
			}
			min, includeMin = r.min, r.includeMin
		}

		var (
			max        *Version
			includeMax bool
		)
		if r.AllowsHigher(other) {
			max, includeMax = other.max, other.includeMax
		} else {
			max, includeMax = r.max, r.includeMax
		}

		if min == nil && max == nil {
			return AnyConstraint()
		}
		// The overlap check above guarantees an equal-bounds result is a
		// doubly inclusive single version.
		if min != nil && max != nil && min.Equals(max) {
			return min
		}
		return NewVersionRange(min, max, includeMin, includeMax)
	default:
		panic(&IncompatibleOperandError{Operation: "Intersect", Operand: other})
	}
}

// Union returns the versions inside either the range or other. Overlapping
// and touching ranges merge into one range; disjoint operands produce a
// VersionUnion.
func (r *VersionRange) Union(other Constraint) Constraint {
	switch other := other.(type) {
	case *EmptyConstraint:
		return r
	case *Version:
		if r.Allows(other) {
			return r
		}
		if r.min != nil && r.min.Equals(other) {
			return NewVersionRange(r.min, r.max, true, r.includeMax)
		}
		if r.max != nil && r.max.Equals(other) {
			return NewVersionRange(r.min, r.max, r.includeMin, true)
		}
		return UnionOf(r, other)
	case *VersionRange:
		edgesTouch := (boundsEqual(r.max, other.min) && (r.includeMax || other.includeMin)) ||
			(boundsEqual(r.min, other.max) && (r.includeMin || other.includeMax))
		if !edgesTouch && !r.AllowsAny(other) {
			return UnionOf(r, other)
		}

		min, includeMin := other.min, other.includeMin
		if r.AllowsLower(other) {
			min, includeMin = r.min, r.includeMin
		}
		max, includeMax := other.max, other.includeMax
		if r.AllowsHigher(other) {
			max, includeMax = r.max, r.includeMax
		}
		return NewVersionRange(min, max, includeMin, includeMax)
	default:
		return UnionOf(r, other)
	}
}

// Difference returns the versions inside the range that other does not
// allow. Carving a hole out of the middle yields a VersionUnion of the two
// remaining pieces.
func (r *VersionRange) Difference(other Constraint) Constraint {
	switch other := other.(type) {
	case *EmptyConstraint:
		return r
	case *Version:
		if !r.Allows(other) {
			return r
		}
		// Allows passed, so a bound equal to other must be inclusive.
		if r.min != nil && r.min.Equals(other) {
			return NewVersionRange(r.min, r.max, false, r.includeMax)
		}
		if r.max != nil && r.max.Equals(other) {
			return NewVersionRange(r.min, r.max, r.includeMin, false)
		}
		return UnionOf(
			NewVersionRange(r.min, other, r.includeMin, false),
			NewVersionRange(other, r.max, false, r.includeMax),
		)
	case *VersionRange:
		if !r.AllowsAny(other) {
			return r
		}

		var before, after Constraint
		if r.AllowsLower(other) {
			if boundsEqual(r.min, other.min) {
				before = r.min
			} else {
				before = NewVersionRange(r.min, other.min, r.includeMin, !other.includeMin)
			}
		}
		if r.AllowsHigher(other) {
			if boundsEqual(r.max, other.max) {
				after = r.max
			} else {
				after = NewVersionRange(other.max, r.max, !other.includeMax, r.includeMax)
			}
		}

		switch {
		case before == nil && after == nil:
			return &EmptyConstraint{}
		case before == nil:
			return after
		case after == nil:
			return before
		}
		return UnionOf(before, after)
	case *VersionUnion:
		var pieces []Constraint
		current := rangeConstraint(r)

		for _, member := range other.ranges {
			// Members are sorted, so everything strictly below current is
			// irrelevant and the first member strictly above it ends the walk.
			if member.asRange().IsStrictlyLower(current.asRange()) {
				continue
			}
			if member.asRange().IsStrictlyHigher(current.asRange()) {
				break
			}

			switch diff := current.Difference(member).(type) {
			case *EmptyConstraint:
				return &EmptyConstraint{}
			case *VersionUnion:
				// member split current in half; only the upper half can
				// overlap the remaining members.
				pieces = append(pieces, diff.ranges[0])
				current = diff.ranges[1]
			default:
				current = diff.(rangeConstraint)
			}
		}

		if len(pieces) == 0 {
			return current
		}
		return UnionOf(append(pieces, Constraint(current))...)
	default:
		panic(&IncompatibleOperandError{Operation: "Difference", Operand: other})
	}
}

// String renders the range in requirement notation: "*" when unbounded,
// otherwise the comma-joined bounds, e.g. ">=1.2.0,<2.0.0".
func (r *VersionRange) String() string {
	if r.min == nil && r.max == nil {
		return "*"
	}

	var b strings.Builder
	if r.min != nil {
		if r.includeMin {
			b.WriteString(">=")
		} else {
			b.WriteString(">")
		}
		b.WriteString(r.min.String())
	}
	if r.max != nil {
		if r.min != nil {
			b.WriteString(",")
		}
		if r.includeMax {
			b.WriteString("<=")
		} else {
			b.WriteString("<")
		}
		b.WriteString(r.max.String())
	}
	return b.String()
}

func (r *VersionRange) asRange() *VersionRange { return r }

// boundsEqual compares two optional bounds; two open bounds are equal.
func boundsEqual(a, b *Version) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(b)
}

// compareRanges orders contiguous constraints by lower bound, then upper.
// Open bounds sort outward, and for equal lower bounds the inclusive one
// comes first.
func compareRanges(a, b rangeConstraint) int {
	ra, rb := a.asRange(), b.asRange()
	if c := compareLowerBound(ra, rb); c != 0 {
		return c
	}
	return compareUpperBound(ra, rb)
}

func compareLowerBound(a, b *VersionRange) int {
	switch {
	case a.min == nil && b.min == nil:
		return 0
	case a.min == nil:
		return -1
	case b.min == nil:
		return 1
	}
	if c := a.min.Compare(b.min); c != 0 {
		return c
	}
	switch {
	case a.includeMin == b.includeMin:
		return 0
	case a.includeMin:
		return -1
	default:
		return 1
	}
}

func compareUpperBound(a, b *VersionRange) int {
	switch {
	case a.max == nil && b.max == nil:
		return 0
	case a.max == nil:
		return 1
	case b.max == nil:
		return -1
	}
	if c := a.max.Compare(b.max); c != 0 {
		return c
	}
	switch {
	case a.includeMax == b.includeMax:
		return 0
	case a.includeMax:
		return 1
	default:
		return -1
	}
}
