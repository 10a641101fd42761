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

// Package semver implements the version constraint algebra used when
// resolving package requirements: concrete versions, contiguous ranges,
// unions of disjoint ranges and the empty set, closed under intersection,
// union and difference. ParseVersion and ParseConstraint turn manifest
// notation ("1.2.3", "^1.2", "~1.2.3", "1.2.x", ">=1.0,<2.0 || >=3.0")
// into values of this algebra.
package semver

// Constraint represents a set of package versions.
// Implementations must be immutable; all operations return new instances.
//
// Constraint enables algebraic operations on version requirements,
// supporting:
//   - Union: combining alternative version ranges
//   - Intersect: finding versions common to several requirements
//   - Difference: carving excluded versions out of a requirement
//   - AllowsAll/AllowsAny: subset and overlap testing
//
// The implementations are *Version (exactly one version), *VersionRange
// (a contiguous interval), *VersionUnion (disjoint intervals) and
// EmptyConstraint (no versions). Set operations are closed over these
// four: combining them never produces anything else, and they reject
// foreign Constraint implementations with an IncompatibleOperandError
// panic.
//
// Example usage:
//
//	a, _ := ParseConstraint("^1.2")
//	b, _ := ParseConstraint(">=1.5 <3.0.0")
//
//	both := a.Intersect(b)   // >=1.5,<2.0
//	either := a.Union(b)     // >=1.2,<3.0.0
//	rest := a.Difference(b)  // >=1.2,<1.5
type Constraint interface {
	// IsEmpty returns true if the constraint allows no versions.
	IsEmpty() bool

	// IsAny returns true if the constraint allows all versions.
	IsAny() bool

	// Allows tests if a specific version satisfies the constraint.
	Allows(version *Version) bool

	// AllowsAll returns true if every version other allows is also allowed.
	AllowsAll(other Constraint) bool

	// AllowsAny returns true if at least one version satisfies both
	// constraints.
	AllowsAny(other Constraint) bool

	// Intersect returns the versions allowed by both constraints.
	Intersect(other Constraint) Constraint

	// Union returns the versions allowed by either constraint.
	Union(other Constraint) Constraint

	// Difference returns the versions allowed by this constraint but not
	// by other.
	Difference(other Constraint) Constraint

	// String returns the constraint in requirement notation.
	String() string
}

// rangeConstraint is a contiguous Constraint: a single version or one
// interval. Union members have this shape, and the set algebra
// destructures its operands through it.
type rangeConstraint interface {
	Constraint

	// asRange views the constraint as an interval.
	asRange() *VersionRange
}

// ConstraintsEqual reports whether two constraints allow exactly the same
// versions, regardless of their notation.
func ConstraintsEqual(a, b Constraint) bool {
	return a.AllowsAll(b) && b.AllowsAll(a)
}

// rangesFor destructures a constraint into its contiguous pieces. The
// operation name is reported when the constraint is a foreign
// implementation.
func rangesFor(c Constraint, operation string) []rangeConstraint {
	switch c := c.(type) {
	case *EmptyConstraint:
		return nil
	case *VersionUnion:
		return c.ranges
	case rangeConstraint:
		return []rangeConstraint{c}
	default:
		panic(&IncompatibleOperandError{Operation: operation, Operand: c})
	}
}

// EmptyConstraint allows no versions.
type EmptyConstraint struct{}

// IsEmpty implements Constraint.
func (*EmptyConstraint) IsEmpty() bool { return true }

// IsAny implements Constraint.
func (*EmptyConstraint) IsAny() bool { return false }

// Allows implements Constraint; no version satisfies the empty constraint.
func (*EmptyConstraint) Allows(*Version) bool { return false }

// AllowsAll returns true only when other is empty as well.
func (*EmptyConstraint) AllowsAll(other Constraint) bool {
	return other.IsEmpty()
}

// AllowsAny implements Constraint; the empty constraint overlaps nothing.
func (*EmptyConstraint) AllowsAny(Constraint) bool { return false }

// Intersect implements Constraint.
func (e *EmptyConstraint) Intersect(Constraint) Constraint { return e }

// Union implements Constraint.
func (*EmptyConstraint) Union(other Constraint) Constraint { return other }

// Difference implements Constraint.
func (e *EmptyConstraint) Difference(Constraint) Constraint { return e }

// String implements Constraint.
func (*EmptyConstraint) String() string { return "<empty>" }

// Ensure interface compliance.
var (
	_ Constraint      = (*EmptyConstraint)(nil)
	_ Constraint      = (*Version)(nil)
	_ Constraint      = (*VersionRange)(nil)
	_ Constraint      = (*VersionUnion)(nil)
	_ rangeConstraint = (*Version)(nil)
	_ rangeConstraint = (*VersionRange)(nil)
)
