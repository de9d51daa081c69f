package io

import (
	"github.com/matzehuels/framelink/pkg/frame"
	"github.com/matzehuels/framelink/pkg/geom"
)

type modelFile struct {
	ID            string        `json:"id,omitempty" toml:"id,omitempty" yaml:"id,omitempty"`
	Name          string        `json:"name" toml:"name" yaml:"name"`
	BaseElevation float64       `json:"base_elevation" toml:"base_elevation" yaml:"base_elevation"`
	Members       []memberEntry `json:"members" toml:"members" yaml:"members"`
}

type memberEntry struct {
	Kind           string         `json:"kind" toml:"kind" yaml:"kind"`
	ID             int            `json:"id,omitempty" toml:"id,omitempty" yaml:"id,omitempty"`
	Name           string         `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Start          []float64      `json:"start" toml:"start" yaml:"start,flow"`
	End            []float64      `json:"end" toml:"end" yaml:"end,flow"`
	Profile        string         `json:"profile,omitempty" toml:"profile,omitempty" yaml:"profile,omitempty"`
	Orientation    float64        `json:"orientation,omitempty" toml:"orientation,omitempty" yaml:"orientation,omitempty"`
	Releases       *releases      `json:"releases,omitempty" toml:"releases,omitempty" yaml:"releases,omitempty"`
	StartConnected []string       `json:"start_connected,omitempty" toml:"start_connected,omitempty" yaml:"start_connected,omitempty,flow"`
	Connected      []string       `json:"connected,omitempty" toml:"connected,omitempty" yaml:"connected,omitempty,flow"`
	EndConnected   []string       `json:"end_connected,omitempty" toml:"end_connected,omitempty" yaml:"end_connected,omitempty,flow"`
	Meta           map[string]any `json:"meta,omitempty" toml:"meta,omitempty" yaml:"meta,omitempty"`
}

type releases struct {
	Start bool `json:"start" toml:"start" yaml:"start"`
	End   bool `json:"end" toml:"end" yaml:"end"`
}

func toFile(m *frame.Model) modelFile {
	out := modelFile{
		ID:            m.ID,
		Name:          m.Name,
		BaseElevation: m.BaseElevation,
		Members:       make([]memberEntry, 0, m.Len()),
	}
	for _, mem := range m.All() {
		e := memberEntry{
			Kind:           mem.Kind.String(),
			ID:             mem.ID,
			Name:           mem.Name,
			Start:          point(mem.Start),
			End:            point(mem.End),
			Profile:        mem.Profile,
			Orientation:    mem.Orientation,
			StartConnected: mem.StartConnected,
			Connected:      mem.Connected,
			EndConnected:   mem.EndConnected,
		}
		if mem.Releases.Start || mem.Releases.End {
			e.Releases = &releases{Start: mem.Releases.Start, End: mem.Releases.End}
		}
		if len(mem.Meta) > 0 {
			e.Meta = mem.Meta
		}
		out.Members = append(out.Members, e)
	}
	return out
}

func point(p geom.Point) []float64 {
	a := p.Array()
	return a[:]
}
