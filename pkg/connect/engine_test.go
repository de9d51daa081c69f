package connect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framelink/pkg/config"
	"github.com/matzehuels/framelink/pkg/crossing"
	ferrors "github.com/matzehuels/framelink/pkg/errors"
	"github.com/matzehuels/framelink/pkg/frame"
	"github.com/matzehuels/framelink/pkg/geom"
)

func TestFromConfig(t *testing.T) {
	cfg := config.Config{Precision: 2, IgnoreKinds: []string{"staircase"}}
	e, err := FromConfig(cfg, nil)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if e.Grid != geom.NewGrid(2) {
		t.Errorf("Grid = %+v, want precision 2", e.Grid)
	}
	if !e.Ignores(frame.KindStaircase) {
		t.Error("staircase should be ignored")
	}
	if e.Logger == nil {
		t.Error("nil logger should fall back to the default")
	}

	if _, err := FromConfig(config.Config{Precision: -1}, nil); !ferrors.Is(err, ferrors.ErrCodeInvalidConfig) {
		t.Errorf("FromConfig(bad) error = %v", err)
	}
}

func TestCoarseGridMergesNearbyEnds(t *testing.T) {
	// At one decimal a 4 cm gap still closes.
	e := New(WithGrid(geom.NewGrid(1)))
	m := mustConnect(t, e, frame.New("f"), member(frame.KindColumn, "C1", pt(0, 0, 0), pt(0, 3, 0)), nil)
	m = mustConnect(t, e, m, member(frame.KindBeam, "B1", pt(0.04, 3, 0), pt(5, 3, 0)), nil)
	wantNames(t, "B1.StartConnected", get(t, m, "B1").StartConnected, "C1")

	fine := New()
	m = mustConnect(t, fine, frame.New("f"), member(frame.KindColumn, "C1", pt(0, 0, 0), pt(0, 3, 0)), nil)
	m = mustConnect(t, fine, m, member(frame.KindBeam, "B1", pt(0.04, 3, 0), pt(5, 3, 0)), nil)
	wantNames(t, "B1.StartConnected", get(t, m, "B1").StartConnected)
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	e := New(WithLogger(logger))

	var c crossing.Collector
	portal(t, e, &c)

	out := buf.String()
	for _, want := range []string{"junction", "connected", "beam1"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug log missing %q:\n%s", want, out)
		}
	}
}
