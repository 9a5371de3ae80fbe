// Package patternconfig decodes pattern.Def values from YAML, the format
// the `semgraph match` command reads its pattern files in (grounded in the
// teacher's general use of gopkg.in/yaml.v3 for structured configuration).
package patternconfig

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/semgraph/internal/pattern"
	"github.com/katalvlaran/semgraph/internal/store"
)

// File is the on-disk shape of a pattern definition file: one or more
// named pattern defs, each decoded into a pattern.Def.
type File struct {
	Patterns []patternYAML `yaml:"patterns"`
}

type patternYAML struct {
	ID          string              `yaml:"id"`
	Roles       map[string]roleYAML `yaml:"roles"`
	Constraints []constraintYAML    `yaml:"constraints"`
	Scoring     scoringYAML         `yaml:"scoring"`
}

type roleYAML struct {
	Kind    string `yaml:"kind"`
	OwnedBy string `yaml:"owned_by"`
	File    string `yaml:"file"`
	Parent  string `yaml:"parent"`
}

type constraintYAML struct {
	Type          string   `yaml:"type"` // "edge" or "group"
	Label         string   `yaml:"label"`
	Kind          string   `yaml:"kind"`
	From          string   `yaml:"from"`
	To            []string `yaml:"to"`
	MinConfidence float64  `yaml:"min_confidence"`
	Role          string   `yaml:"role"`
	MinSize       int      `yaml:"min_size"`
	MaxSize       int      `yaml:"max_size"`
	Optional      bool     `yaml:"optional"`
	BindAs        string   `yaml:"bind_as"`
}

type scoringYAML struct {
	Base    float64            `yaml:"base"`
	Weights map[string]float64 `yaml:"weights"`
}

// Load decodes every pattern def in r into a compiled pattern.Table.
func Load(r io.Reader) (*pattern.Table, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("patternconfig: decode: %w", err)
	}

	defs := make([]pattern.Def, 0, len(f.Patterns))
	for _, p := range f.Patterns {
		def, err := toDef(p)
		if err != nil {
			return nil, fmt.Errorf("patternconfig: pattern %q: %w", p.ID, err)
		}
		defs = append(defs, def)
	}
	return pattern.Compile(defs...), nil
}

func toDef(p patternYAML) (pattern.Def, error) {
	roles := make(map[string]pattern.RoleSpec, len(p.Roles))
	for name, r := range p.Roles {
		roles[name] = pattern.RoleSpec{
			Kind:    store.NodeKind(r.Kind),
			OwnedBy: r.OwnedBy,
			Query: store.NodeQuery{
				File:   r.File,
				Parent: r.Parent,
			},
		}
	}

	constraints := make([]pattern.Constraint, 0, len(p.Constraints))
	for _, c := range p.Constraints {
		built, err := toConstraint(c)
		if err != nil {
			return pattern.Def{}, err
		}
		constraints = append(constraints, built)
	}

	return pattern.Def{
		ID:          p.ID,
		Roles:       roles,
		Constraints: constraints,
		Scoring:     pattern.Scoring{Base: p.Scoring.Base, Weights: p.Scoring.Weights},
	}, nil
}

func toConstraint(c constraintYAML) (pattern.Constraint, error) {
	var inner pattern.Constraint
	switch c.Type {
	case "edge":
		inner = pattern.EdgeConstraint{
			Label:         c.Label,
			Kind:          store.EdgeKind(c.Kind),
			From:          c.From,
			To:            c.To,
			MinConfidence: c.MinConfidence,
		}
	case "group":
		inner = pattern.GroupConstraint{
			Label:   c.Label,
			Role:    c.Role,
			MinSize: c.MinSize,
			MaxSize: c.MaxSize,
		}
	default:
		return nil, fmt.Errorf("unknown constraint type %q", c.Type)
	}

	if c.Optional {
		return pattern.OptionalConstraint{Inner: inner, BindAs: c.BindAs}, nil
	}
	return inner, nil
}
