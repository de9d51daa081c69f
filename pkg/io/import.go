package io

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	ferrors "github.com/matzehuels/framelink/pkg/errors"
	"github.com/matzehuels/framelink/pkg/frame"
	"github.com/matzehuels/framelink/pkg/geom"
	"github.com/matzehuels/framelink/pkg/observability"
)

// ReadModel decodes a model document from r.
//
// Members keep the order they have in the document within each kind. A
// member without id gets the next free ID of its kind; a member without
// name gets its kind prefix followed by the ID.
//
// ReadModel returns INVALID_FORMAT for malformed documents and coordinates,
// INVALID_KIND for unknown kinds and DUPLICATE_NAME or DUPLICATE_ID for
// clashes. ReadModel does not close r.
func ReadModel(r io.Reader, format Format) (*frame.Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidFormat, err, "read model")
	}

	var doc modelFile
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, ferrors.New(ferrors.ErrCodeInvalidFormat, "unknown model format %q", format)
	}
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidFormat, err, "decode %s model", format)
	}
	return fromFile(doc)
}

func fromFile(doc modelFile) (*frame.Model, error) {
	m := frame.New(doc.Name)
	if doc.ID != "" {
		m.ID = doc.ID
	}
	m.BaseElevation = doc.BaseElevation

	for i, e := range doc.Members {
		mem, err := memberFromEntry(m, i, e)
		if err != nil {
			return nil, err
		}
		if err := m.Add(mem); err != nil {
			return nil, addError(err, i, mem.Name)
		}
	}
	return m, nil
}

func memberFromEntry(m *frame.Model, i int, e memberEntry) (*frame.Member, error) {
	kind, err := frame.ParseKind(e.Kind)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidKind, err, "member %d", i)
	}
	start, err := parsePoint(e.Start)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidFormat, err, "member %d start", i)
	}
	end, err := parsePoint(e.End)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidFormat, err, "member %d end", i)
	}

	id, name := e.ID, e.Name
	switch {
	case id == 0 && name == "":
		id, name = m.NextName(kind)
	case id == 0:
		id = m.NextID(kind)
	case name == "":
		name = kind.Prefix() + strconv.Itoa(id)
	}
	if err := ferrors.ValidateMemberName(name); err != nil {
		return nil, err
	}
	if err := ferrors.ValidateCoordinates(name, start.X, start.Y, start.Z, end.X, end.Y, end.Z); err != nil {
		return nil, err
	}

	mem := &frame.Member{
		ID:             id,
		Name:           name,
		Kind:           kind,
		Start:          start,
		End:            end,
		Profile:        e.Profile,
		Orientation:    e.Orientation,
		Meta:           e.Meta,
		StartConnected: frame.NewNames(e.StartConnected...),
		Connected:      frame.NewNames(e.Connected...),
		EndConnected:   frame.NewNames(e.EndConnected...),
	}
	if e.Releases != nil {
		mem.Releases = frame.Releases{Start: e.Releases.Start, End: e.Releases.End}
	}
	return mem, nil
}

func parsePoint(v []float64) (geom.Point, error) {
	if len(v) != 3 {
		return geom.Point{}, errors.New("want [x, y, z], got " + strconv.Itoa(len(v)) + " values")
	}
	return geom.Pt(v[0], v[1], v[2]), nil
}

func addError(err error, i int, name string) error {
	switch {
	case errors.Is(err, frame.ErrDuplicateName):
		return ferrors.Wrap(ferrors.ErrCodeDuplicateName, err, "member %d", i)
	case errors.Is(err, frame.ErrDuplicateID):
		return ferrors.Wrap(ferrors.ErrCodeDuplicateID, err, "member %d", i)
	}
	return ferrors.Wrap(ferrors.ErrCodeInvalidMember, err, "member %d (%s)", i, name)
}

// ImportModel reads the model file at path, picking the format from the
// extension.
func ImportModel(ctx context.Context, path string) (*frame.Model, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	m, err := importModel(path, format)
	members := 0
	if m != nil {
		members = m.Len()
	}
	observability.IO().OnRead(ctx, string(format), members, time.Since(start), err)
	return m, err
}

func importModel(path string, format Format) (*frame.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.Wrap(ferrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadModel(f, format)
}
