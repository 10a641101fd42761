package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Operator
	}{
		{"", OpEqual},
		{"=", OpEqual},
		{"==", OpEqual},
		{"!=", OpNotEqual},
		{"<>", OpNotEqual},
		{"<", OpLessThan},
		{"<=", OpLessThanEqual},
		{">", OpGreaterThan},
		{">=", OpGreaterThanEqual},
		{" >= ", OpGreaterThanEqual},
	}

	for _, tt := range tests {
		op, err := ParseOperator(tt.input)
		require.NoError(t, err, "ParseOperator(%q)", tt.input)
		assert.Equal(t, tt.want, op, "ParseOperator(%q)", tt.input)
	}
}

func TestParseOperatorInvalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"~>", "=>", "==="} {
		_, err := ParseOperator(input)
		require.Error(t, err, "ParseOperator(%q)", input)

		var opErr *InvalidOperatorError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, input, opErr.Operator)
	}

	_, err := ParseOperator("~>")
	assert.EqualError(t, err, `invalid operator "~>" given, expected one of: ==, !=, <, <=, >, >=`)
}

func TestOperatorConstrain(t *testing.T) {
	t.Parallel()

	required := mustParse(t, "1.2.3")

	tests := []struct {
		op   Operator
		want string
	}{
		{OpEqual, "1.2.3"},
		{OpNotEqual, "!=1.2.3"},
		{OpLessThan, "<1.2.3"},
		{OpLessThanEqual, "<=1.2.3"},
		{OpGreaterThan, ">1.2.3"},
		{OpGreaterThanEqual, ">=1.2.3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.Constrain(required).String(), "Constrain for %s", tt.op)
	}
}

func TestOperatorConstrainPanicsOnUnknown(t *testing.T) {
	t.Parallel()

	defer func() {
		recovered := recover()
		if recovered == nil {
			t.Fatal("expected a panic for an operator outside the canonical set")
		}
		if _, ok := recovered.(*InvalidOperatorError); !ok {
			t.Fatalf("panic value = %T, want *InvalidOperatorError", recovered)
		}
	}()

	Operator("~>").Constrain(mustParse(t, "1.2.3"))
}

func TestOperatorMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op        Operator
		candidate string
		required  string
		expect    bool
	}{
		{OpEqual, "1.0.0", "1.0.0", true},
		{OpEqual, "1.0", "1.0.0", true},
		{OpEqual, "1.0.1", "1.0.0", false},
		{OpNotEqual, "1.0.1", "1.0.0", true},
		{OpNotEqual, "1.0.0", "1.0.0", false},
		{OpLessThan, "1.0.0", "2.0.0", true},
		{OpLessThan, "2.0.0", "2.0.0", false},
		{OpLessThan, "1.0.0-alpha", "1.0.0", true},
		{OpLessThanEqual, "2.0.0", "2.0.0", true},
		{OpLessThanEqual, "2.1.0", "2.0.0", false},
		{OpGreaterThan, "2.0.1", "2.0.0", true},
		{OpGreaterThan, "2.0.0", "2.0.0", false},
		{OpGreaterThanEqual, "2.0.0", "2.0.0", true},
		{OpGreaterThanEqual, "1.9.9", "2.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate+" "+string(tt.op)+" "+tt.required, func(t *testing.T) {
			got := tt.op.Matches(mustParse(t, tt.candidate), mustParse(t, tt.required))
			assert.Equal(t, tt.expect, got)
		})
	}
}
