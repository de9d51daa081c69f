package crossing

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestMessage(t *testing.T) {
	got := Message("VB1", "B1", "Frame 1")
	want := `Elements "VB1" and "B1" are crossing in model "Frame 1"`
	if got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
}

func TestCollectorDeduplicates(t *testing.T) {
	var c Collector
	c.Report("VB1", "B1")
	c.Report("VB1", "B1")
	c.Report("B1", "VB1")
	c.Report("VB2", "B1")

	want := []Pair{{"VB1", "B1"}, {"VB2", "B1"}}
	if !reflect.DeepEqual(c.Pairs(), want) {
		t.Errorf("Pairs() = %v, want %v", c.Pairs(), want)
	}
	if got := c.Involves("VB2"); len(got) != 1 || got[0] != want[1] {
		t.Errorf("Involves(VB2) = %v", got)
	}
	if got := c.Involves("B1"); len(got) != 2 {
		t.Errorf("Involves(B1) = %v", got)
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d", c.Len())
	}
	c.Report("VB1", "B1")
	if c.Len() != 1 {
		t.Errorf("Len() after re-report = %d, want 1", c.Len())
	}
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})

	LogReporter(logger, "Frame 1")("VB1", "B1")

	out := buf.String()
	if !strings.Contains(out, `Elements \"VB1\" and \"B1\"`) && !strings.Contains(out, `Elements "VB1" and "B1"`) {
		t.Errorf("log output missing message: %q", out)
	}
	if !strings.Contains(out, "WARN") {
		t.Errorf("log output should be a warning: %q", out)
	}
}

func TestTee(t *testing.T) {
	var a, b Collector
	fn := Tee(a.Report, nil, b.Report, Noop)
	fn("X", "Y")

	if a.Len() != 1 || b.Len() != 1 {
		t.Errorf("Tee delivered to a=%d b=%d, want 1 each", a.Len(), b.Len())
	}
}

func TestPairString(t *testing.T) {
	if got := (Pair{A: "KB1", B: "C2"}).String(); got != "KB1 x C2" {
		t.Errorf("String() = %q", got)
	}
}
