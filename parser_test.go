package semver

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConstraint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		// wildcards
		{"*", "*"},
		{"x", "*"},
		{"x.X.x.*", "*"},

		// a bare or operator-prefixed version
		{"1.2.3", "1.2.3"},
		{"=1.2.3", "1.2.3"},
		{"==1.2.3", "1.2.3"},
		{"v1.2.3", "v1.2.3"},
		{"!=1.2.3", "!=1.2.3"},
		{"<>1.2.3", "!=1.2.3"},
		{">1.2.3", ">1.2.3"},
		{">=1.2.3", ">=1.2.3"},
		{"<2.0", "<2.0"},
		{"<=2.0", "<=2.0"},
		{"> 1.2.3", ">1.2.3"},
		{"dev", "0.0-dev"},
		{">dev", ">0.0-dev"},

		// tilde
		{"~1", ">=1,<2"},
		{"~1.2", ">=1.2,<1.3"},
		{"~1.2.3", ">=1.2.3,<1.3.0"},
		{"~v1", ">=v1,<2"},
		{"~1.2-b2", ">=1.2-b2,<1.3.0"},

		// PEP 440 compatible release
		{"~=3.5", ">=3.5,<4.0"},
		{"~=3.5.3", ">=3.5.3,<3.6.0"},
		{"~=3.5.3rc1", ">=3.5.3rc1,<3.6.0"},

		// caret
		{"^1.2.3", ">=1.2.3,<2.0.0"},
		{"^1.2", ">=1.2,<2.0"},
		{"^1", ">=1,<2"},
		{"^0.1.2", ">=0.1.2,<0.2.0"},
		{"^0.1", ">=0.1,<0.2"},
		{"^0.0.3", ">=0.0.3,<0.0.4"},
		{"^0.0", ">=0.0,<0.1"},
		{"^0", ">=0,<1"},
		{"^1.2.3-alpha.1", ">=1.2.3-alpha.1,<2.0.0"},

		// x-ranges
		{"1.x", ">=1.0.0,<2.0.0"},
		{"1.x.x", ">=1.0.0,<2.0.0"},
		{"1.2.x", ">=1.2.0,<1.3.0"},
		{"2.0.*", ">=2.0.0,<2.1.0"},
		{"2.*.*", ">=2.0.0,<3.0.0"},
		{"0.x", "<1.0.0"},
		{"0.*", "<1.0.0"},
		{"0.0.x", ">=0.0.0,<0.1.0"},
		{"==1.x", ">=1.0.0,<2.0.0"},
		{"!=1.x", "<1.0.0 || >=2.0.0"},
		{"!= 1.x", "<1.0.0 || >=2.0.0"},
		{"!=0.*", ">=1.0.0"},

		// stability markers
		{"1.2.3@beta", "1.2.3"},
		{"^1.2@dev", ">=1.2,<2.0"},
		{"@stable", "*"},

		// intersections
		{">=1.2 <2.0", ">=1.2,<2.0"},
		{">=1.2, <2.0", ">=1.2,<2.0"},
		{">= 1.2, < 2.0", ">=1.2,<2.0"},
		{">2.0,<=3.0", ">2.0,<=3.0"},
		{"> 2.0 , <= 3.0", ">2.0,<=3.0"},
		{"^1.2 !=1.4.5", ">=1.2,<1.4.5 || >1.4.5,<2.0"},
		{">=2.7,!=3.0.*,!=3.1.*", ">=2.7,<3.0.0 || >=3.2.0"},

		// unions
		{">=1.0 || <0.5", "<0.5 || >=1.0"},
		{">=1.0 | <0.5", "<0.5 || >=1.0"},
		{"^1 || ^2", ">=1,<3"},
		{">=1.0,<2.0 || >=3.0", ">=1.0,<2.0 || >=3.0"},

		// trailing commas in published metadata
		{">=1.2.3,", ">=1.2.3"},
		{"1.2.3 ,", "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseConstraint(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestParseConstraintAllows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		constraint string
		version    string
		expect     bool
	}{
		{"^1.2", "1.9.9", true},
		{"^1.2", "1.2.0", true},
		{"^1.2", "2.0.0", false},
		{"^1.2", "2.0.0-rc.1", true},
		{"~1.2.3", "1.2.9", true},
		{"~1.2.3", "1.3.0", false},
		{"!=1.2.3", "1.2.3", false},
		{"!=1.2.3", "1.2.4", true},
		{"1.2.x", "1.2.9", true},
		{"1.2.x", "1.3.0", false},
		{">=1.0 <2.0 || >=3.0", "1.5.0", true},
		{">=1.0 <2.0 || >=3.0", "2.5.0", false},
		{">=1.0 <2.0 || >=3.0", "3.0.1", true},
		{"*", "0.0.1-alpha", true},
	}

	for _, tt := range tests {
		t.Run(tt.constraint+" allows "+tt.version, func(t *testing.T) {
			c := mustConstraint(t, tt.constraint)
			assert.Equal(t, tt.expect, c.Allows(mustParse(t, tt.version)))
		})
	}
}

func TestParseConstraintTypes(t *testing.T) {
	t.Parallel()

	require.IsType(t, &VersionRange{}, mustConstraint(t, "*"))
	assert.True(t, mustConstraint(t, "*").IsAny())
	require.IsType(t, &Version{}, mustConstraint(t, "1.2.3"))
	require.IsType(t, &VersionRange{}, mustConstraint(t, ">=1.0"))
	require.IsType(t, &VersionRange{}, mustConstraint(t, "^1.2"))
	require.IsType(t, &VersionUnion{}, mustConstraint(t, "!=1.2.3"))
	require.IsType(t, &VersionUnion{}, mustConstraint(t, "<1.0 || >=2.0"))
}

func TestParseConstraintRoundTrip(t *testing.T) {
	t.Parallel()

	// Rendering a constraint and parsing it back must not change what it
	// allows, whichever notation it started from.
	inputs := []string{
		"*",
		"1.2.3",
		"v1.2.3",
		"1.2.3+build.7",
		"!=1.2.3",
		">=1.2 <2.0",
		"^1.2.3",
		"^0.0.3",
		"~1.2",
		"~=3.5",
		"1.2.x",
		"!=1.x",
		">dev",
		"~1.2-b2",
		"^1.2 !=1.4.5",
		">=1.0,<2.0 || >=3.0",
		"<0.5 || >=1.0",
		"2.0.0-rc.1",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := mustConstraint(t, input)

			again, err := ParseConstraint(first.String())
			require.NoError(t, err, "rendering %q produced unparseable %q", input, first)
			assert.True(t, ConstraintsEqual(first, again),
				"%q parsed as %q, but reparsing gives %q", input, first, again)
		})
	}
}

func TestParseConstraintErrors(t *testing.T) {
	t.Parallel()

	tests := []string{
		"",
		"not-a-version",
		"^",
		">=",
		"~=3",
		"1.2.3.x",
		"<=3.0.*",
		">=1.2.3, ,",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseConstraint(input)
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "constraint", parseErr.What)
			assert.Equal(t, input, parseErr.Literal)
		})
	}
}

func TestSplitAndTerms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []string
	}{
		{"1.2.3", []string{"1.2.3"}},
		{">=1.0,<2.0", []string{">=1.0", "<2.0"}},
		{">= 1.2, < 2.0", []string{">= 1.2", "< 2.0"}},
		{"1.0 , 2.0", []string{"1.0", "2.0"}},
		{"^1.2 !=1.4.5", []string{"^1.2", "!=1.4.5"}},
		{">= 1.2.3", []string{">= 1.2.3"}},
		{"1.0 - 2.0", []string{"1.0 - 2.0"}},
		{"1.0 -alpha", []string{"1.0 -alpha"}},
		{"1.0  -alpha", []string{"1.0", "-alpha"}},
		{">=1.0,", []string{">=1.0,"}},
		{",1.0", []string{",1.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual := splitAndTerms(tt.input)
			for _, d := range deep.Equal(tt.expected, actual) {
				t.Errorf("difference: %+v", d)
			}
		})
	}
}
