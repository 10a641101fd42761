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

// Package requirements loads TOML requirement manifests and answers
// version queries against them.
//
// A manifest names constraints per package in two groups:
//
//	[dependencies]
//	serde = "^1.0"
//
//	[dev-dependencies]
//	quickcheck = ">=0.9, <2"
package requirements

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
	"github.com/scylladb/go-set/strset"

	semver "github.com/contriboss/semver-go"
	"github.com/contriboss/semver-go/internal/log"
)

// Manifest groups, in loading order.
const (
	GroupDependencies    = "dependencies"
	GroupDevDependencies = "dev-dependencies"
)

type manifest struct {
	Dependencies    map[string]string `toml:"dependencies"`
	DevDependencies map[string]string `toml:"dev-dependencies"`
}

// Requirement is one named constraint from a manifest group.
type Requirement struct {
	Name       string
	Group      string
	Literal    string
	Constraint semver.Constraint
}

// Set is a loaded manifest. A package may carry a requirement in several
// groups; queries combine them.
type Set struct {
	requirements []Requirement
}

// Load reads a TOML manifest. Requirements are collected per group in
// lexical name order, dependencies before dev-dependencies. Constraint
// parse failures do not stop the load; they accumulate into the returned
// error with one entry per offending requirement.
func Load(r io.Reader) (*Set, error) {
	var m manifest
	if err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode requirements manifest: %w", err)
	}

	groups := []struct {
		name    string
		entries map[string]string
	}{
		{GroupDependencies, m.Dependencies},
		{GroupDevDependencies, m.DevDependencies},
	}

	var errs *multierror.Error
	set := &Set{}
	seen := strset.New()

	for _, group := range groups {
		names := make([]string, 0, len(group.entries))
		for name := range group.entries {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			literal := group.entries[name]
			constraint, err := semver.ParseConstraint(literal)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%s %q: %w", name, literal, err))
				continue
			}
			if seen.Has(name) {
				log.Debugf("requirement %q declared in several groups", name)
			}
			seen.Add(name)
			set.requirements = append(set.requirements, Requirement{
				Name:       name,
				Group:      group.name,
				Literal:    literal,
				Constraint: constraint,
			})
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	log.Debugf("loaded %d requirements", len(set.requirements))
	return set, nil
}

// LoadFile reads the manifest at path.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open requirements manifest: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Requirements returns the requirements in loading order.
func (s *Set) Requirements() []Requirement {
	out := make([]Requirement, len(s.requirements))
	copy(out, s.requirements)
	return out
}

// Names returns the distinct requirement names in lexical order.
func (s *Set) Names() []string {
	names := strset.New()
	for _, req := range s.requirements {
		names.Add(req.Name)
	}
	list := names.List()
	sort.Strings(list)
	return list
}

// Constraint returns the combined constraint for name, intersecting the
// requirements of every group naming it. Packages without requirements get
// the empty constraint.
func (s *Set) Constraint(name string) semver.Constraint {
	var combined semver.Constraint
	for _, req := range s.requirements {
		if req.Name != name {
			continue
		}
		if combined == nil {
			combined = req.Constraint
		} else {
			combined = combined.Intersect(req.Constraint)
		}
	}
	if combined == nil {
		return &semver.EmptyConstraint{}
	}
	return combined
}

// Allows reports whether version satisfies every requirement for name.
func (s *Set) Allows(name string, version *semver.Version) bool {
	return s.Constraint(name).Allows(version)
}
