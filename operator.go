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

// Operator is a version comparison operator as written in requirement
// strings.
type Operator string

// Canonical operators. ParseOperator folds aliases ("", "=", "<>") onto
// these.
const (
	OpEqual            Operator = "=="
	OpNotEqual         Operator = "!="
	OpLessThan         Operator = "<"
	OpLessThanEqual    Operator = "<="
	OpGreaterThan      Operator = ">"
	OpGreaterThanEqual Operator = ">="
)

// operatorOrder fixes the listing order in error messages.
var operatorOrder = []Operator{
	OpEqual,
	OpNotEqual,
	OpLessThan,
	OpLessThanEqual,
	OpGreaterThan,
	OpGreaterThanEqual,
}

var operatorAliases = map[string]Operator{
	"":   OpEqual,
	"=":  OpEqual,
	"==": OpEqual,
	"!=": OpNotEqual,
	"<>": OpNotEqual,
	"<":  OpLessThan,
	"<=": OpLessThanEqual,
	">":  OpGreaterThan,
	">=": OpGreaterThanEqual,
}

// ParseOperator maps an operator literal onto its canonical Operator.
// The empty string and "=" mean equality, "<>" means inequality.
func ParseOperator(s string) (Operator, error) {
	op, ok := operatorAliases[strings.TrimSpace(s)]
	if !ok {
		return "", &InvalidOperatorError{Operator: s}
	}
	return op, nil
}

// Constrain returns the constraint selecting the versions that satisfy
// the operator against required: OpGreaterThan yields ">required", and so
// on. Operators not produced by ParseOperator panic with an
// *InvalidOperatorError.
func (op Operator) Constrain(required *Version) Constraint {
	switch op {
	case OpEqual:
		return required
	case OpNotEqual:
		return &VersionUnion{ranges: []rangeConstraint{
			NewVersionRange(nil, required, false, false),
			NewVersionRange(required, nil, false, false),
		}}
	case OpLessThan:
		return NewVersionRange(nil, required, false, false)
	case OpLessThanEqual:
		return NewVersionRange(nil, required, false, true)
	case OpGreaterThan:
		return NewVersionRange(required, nil, false, false)
	case OpGreaterThanEqual:
		return NewVersionRange(required, nil, true, false)
	}
	panic(&InvalidOperatorError{Operator: string(op)})
}

// Matches reports whether candidate satisfies the operator against
// required, e.g. OpLessThan.Matches(a, b) is "a < b".
func (op Operator) Matches(candidate, required *Version) bool {
	return op.Constrain(required).Allows(candidate)
}
