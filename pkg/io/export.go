package io

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	ferrors "github.com/matzehuels/framelink/pkg/errors"
	"github.com/matzehuels/framelink/pkg/frame"
	"github.com/matzehuels/framelink/pkg/observability"
)

// WriteModel encodes m in the given format and writes it to w.
// The output can be read back with [ReadModel].
func WriteModel(m *frame.Model, w io.Writer, format Format) error {
	doc := toFile(m)
	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
	default:
		return ferrors.New(ferrors.ErrCodeInvalidFormat, "unknown model format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportModel writes m to the file at path, picking the format from the
// extension.
func ExportModel(ctx context.Context, m *frame.Model, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	start := time.Now()
	err = exportModel(m, path, format)
	observability.IO().OnWrite(ctx, string(format), m.Len(), time.Since(start), err)
	return err
}

func exportModel(m *frame.Model, path string, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteModel(m, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
