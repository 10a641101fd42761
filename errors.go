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
	"strings"
)

// ParseError is returned when a version or constraint literal cannot be
// understood. Literal is always the full original input, never a fragment,
// so callers can echo it back to the user verbatim.
type ParseError struct {
	// What names the kind of literal that failed ("version" or "constraint")
	What string
	// Literal is the original input text
	Literal string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s %q", e.What, e.Literal)
}

func newVersionParseError(literal string) *ParseError {
	return &ParseError{What: "version", Literal: literal}
}

func newConstraintParseError(literal string) *ParseError {
	return &ParseError{What: "constraint", Literal: literal}
}

// InvalidOperatorError is returned by ParseOperator for comparator tokens
// outside the supported set.
type InvalidOperatorError struct {
	Operator string
}

// Error implements the error interface
func (e *InvalidOperatorError) Error() string {
	supported := make([]string, 0, len(operatorOrder))
	for _, op := range operatorOrder {
		supported = append(supported, string(op))
	}
	return fmt.Sprintf("invalid operator %q given, expected one of: %s",
		e.Operator, strings.Join(supported, ", "))
}

// IncompatibleOperandError describes an algebra operation invoked with a
// Constraint implementation from outside this package. The algebra is a
// closed sum over Version, VersionRange, VersionUnion and EmptyConstraint;
// anything else is a programmer error, so the operation panics with this
// value rather than returning it.
type IncompatibleOperandError struct {
	// Operation is the method that rejected the operand, e.g. "Intersect"
	Operation string
	// Operand is the foreign value
	Operand any
}

// Error implements the error interface
func (e *IncompatibleOperandError) Error() string {
	return fmt.Sprintf("%s: unsupported constraint type %T", e.Operation, e.Operand)
}

var (
	_ error = (*ParseError)(nil)
	_ error = (*InvalidOperatorError)(nil)
	_ error = (*IncompatibleOperandError)(nil)
)
