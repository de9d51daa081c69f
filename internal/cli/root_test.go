package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	ferrors "github.com/matzehuels/framelink/pkg/errors"
	"github.com/matzehuels/framelink/pkg/frame"
	"github.com/matzehuels/framelink/pkg/geom"
	pkgio "github.com/matzehuels/framelink/pkg/io"
	"github.com/matzehuels/framelink/pkg/observability"
)

const portalYAML = `name: Portal
base_elevation: 0
members:
  - {kind: column, start: [0, 0, 0], end: [0, 3, 0]}
  - {kind: column, start: [5, 0, 0], end: [5, 3, 0]}
  - {kind: beam, start: [0, 3, 0], end: [5, 3, 0], profile: IPE300}
  - {kind: vertical-bracing, start: [1, 2, 0], end: [4, 4, 0]}
`

// execute runs the root command with args and returns the log output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(observability.Reset)

	var logs bytes.Buffer
	c := New(&logs, log.DebugLevel)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	return logs.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func load(t *testing.T, path string) *frame.Model {
	t.Helper()
	m, err := pkgio.ImportModel(context.Background(), path)
	if err != nil {
		t.Fatalf("ImportModel(%s): %v", path, err)
	}
	return m
}

func lookup(t *testing.T, m *frame.Model, name string) *frame.Member {
	t.Helper()
	mem, ok := m.Lookup(name)
	if !ok {
		t.Fatalf("member %s not in model", name)
	}
	return mem
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	for _, want := range []string{"add", "build", "check", "completion", "components", "crossings", "remove", "render"} {
		if !slices.Contains(got, want) {
			t.Errorf("missing subcommand %q (have %v)", want, got)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}

func TestBuildCheckEditCycle(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "portal.yaml", portalYAML)
	built := filepath.Join(dir, "portal.json")

	logs, err := execute(t, "build", src, "-o", built)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(logs, `Elements "VB1" and "B1" are crossing`) {
		t.Errorf("crossing not logged:\n%s", logs)
	}
	if !strings.Contains(logs, "read model") || !strings.Contains(logs, "wrote model") {
		t.Errorf("IO hooks not logged:\n%s", logs)
	}

	m := load(t, built)
	beam := lookup(t, m, "B1")
	if !beam.StartConnected.Has("C1") || !beam.EndConnected.Has("C2") {
		t.Errorf("B1 links = %v", beam.Links())
	}
	if lookup(t, m, "VB1").LinkCount() != 0 {
		t.Error("crossing bracing should stay unlinked")
	}

	if _, err := execute(t, "check", built); err != nil {
		t.Errorf("check(built): %v", err)
	}
	if _, err := execute(t, "check", src); !ferrors.Is(err, ferrors.ErrCodeInvariant) {
		t.Errorf("check(unbuilt) error = %v, want INVARIANT_VIOLATION", err)
	}

	if _, err := execute(t, "add", built, "--kind", "beam", "--start", "2,3,0", "--end", "2, 6, 0"); err != nil {
		t.Fatalf("add: %v", err)
	}
	m = load(t, built)
	added := lookup(t, m, "B2")
	if added.ID != 2 || !added.StartConnected.Has("B1") || !lookup(t, m, "B1").Connected.Has("B2") {
		t.Errorf("B2 = %+v", added)
	}

	if _, err := execute(t, "remove", built, "C1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	m = load(t, built)
	if m.Has("C1") || lookup(t, m, "B1").StartConnected.Len() != 0 {
		t.Error("C1 not fully removed")
	}
	if _, err := execute(t, "check", built); err != nil {
		t.Errorf("check after edits: %v", err)
	}

	if _, err := execute(t, "remove", built, "C9"); !ferrors.Is(err, ferrors.ErrCodeNotFound) {
		t.Errorf("remove(missing) error = %v", err)
	}
}

func TestInspectCommands(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "portal.yaml", portalYAML)

	for _, args := range [][]string{
		{"crossings", src},
		{"crossings", src, "--member", "C1"},
		{"components", src},
	} {
		if _, err := execute(t, args...); err != nil {
			t.Errorf("%v: %v", args, err)
		}
	}
}

func TestRenderDOT(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "portal.yaml", portalYAML)
	out := filepath.Join(dir, "portal.dot")

	if _, err := execute(t, "render", src, "-o", out, "--detailed"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	if !strings.HasPrefix(dot, "graph G {") || !strings.Contains(dot, `"B1" -- "C1"`) || !strings.Contains(dot, "crossing") {
		t.Errorf("unexpected DOT:\n%s", dot)
	}

	if _, err := execute(t, "render", src, "-o", filepath.Join(dir, "portal.pdf")); !ferrors.Is(err, ferrors.ErrCodeInvalidFormat) {
		t.Errorf("render(.pdf) error = %v", err)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "portal.yaml", portalYAML)

	bad := writeFile(t, dir, "bad.toml", "precision = 42\n")
	if _, err := execute(t, "--config", bad, "build", src); !ferrors.Is(err, ferrors.ErrCodeInvalidConfig) {
		t.Errorf("build with bad config error = %v", err)
	}

	// Ignoring bracing removes the crossing.
	ignore := writeFile(t, dir, "ignore.toml", "ignore_kinds = [\"vertical-bracing\"]\n")
	logs, err := execute(t, "--config", ignore, "build", src, "-o", filepath.Join(dir, "out.toml"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if strings.Contains(logs, "are crossing") {
		t.Errorf("ignored bracing still reported:\n%s", logs)
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    geom.Point
		wantErr bool
	}{
		{"0,3,0", geom.Pt(0, 3, 0), false},
		{" 1.5, -2 ,1e-3 ", geom.Pt(1.5, -2, 0.001), false},
		{"1,2", geom.Point{}, true},
		{"1,2,3,4", geom.Point{}, true},
		{"a,b,c", geom.Point{}, true},
		{"", geom.Point{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePoint(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePoint(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !ferrors.Is(err, ferrors.ErrCodeInvalidInput) {
				t.Errorf("error code = %s", ferrors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("parsePoint(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAddOptsMember(t *testing.T) {
	m := frame.New("f")
	if err := m.Add(&frame.Member{ID: 4, Name: "C4", Kind: frame.KindColumn, End: geom.Pt(0, 3, 0)}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		opts     addOpts
		wantName string
		wantID   int
		wantCode ferrors.Code
	}{
		{"derived", addOpts{kind: "column", start: "1,0,0", end: "1,3,0"}, "C5", 5, ""},
		{"explicit name", addOpts{kind: "COLUMN", start: "1,0,0", end: "1,3,0", name: "C-west"}, "C-west", 5, ""},
		{"explicit id", addOpts{kind: "knee_bracing", start: "0,2,0", end: "1,3,0", id: 7}, "KB1", 7, ""},
		{"bad kind", addOpts{kind: "girder", start: "0,0,0", end: "1,0,0"}, "", 0, ferrors.ErrCodeInvalidKind},
		{"bad start", addOpts{kind: "beam", start: "0,0", end: "1,0,0"}, "", 0, ferrors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem, err := tt.opts.member(m)
			if tt.wantCode != "" {
				if !ferrors.Is(err, tt.wantCode) {
					t.Fatalf("error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if mem.Name != tt.wantName || mem.ID != tt.wantID {
				t.Errorf("member = %s/%d, want %s/%d", mem.Name, mem.ID, tt.wantName, tt.wantID)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for path, ok := range map[string]bool{
		"g.svg": true, "g.PNG": true, "out/g.dot": true, "g.pdf": false, "g": false,
	} {
		if err := validateFormat(path); (err == nil) != ok {
			t.Errorf("validateFormat(%q) = %v", path, err)
		}
	}
}

func TestJoinNames(t *testing.T) {
	if got := joinNames([]string{"a", "b"}); got != "[a b]" {
		t.Errorf("joinNames = %q", got)
	}
	long := make([]string, 20)
	for i := range long {
		long[i] = string(rune('a' + i))
	}
	if got := joinNames(long); !strings.HasSuffix(got, "[s t] (8 more)") {
		t.Errorf("joinNames(long) = %q", got)
	}
}
