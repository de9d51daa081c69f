package connect

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framelink/pkg/config"
	"github.com/matzehuels/framelink/pkg/crossing"
	ferrors "github.com/matzehuels/framelink/pkg/errors"
	"github.com/matzehuels/framelink/pkg/frame"
	"github.com/matzehuels/framelink/pkg/geom"
)

// Engine derives adjacency from member geometry.
//
// An Engine holds no model state and may be shared between goroutines as
// long as each goroutine works on its own model.
type Engine struct {
	Grid   geom.Grid
	Logger *log.Logger

	ignore map[frame.Kind]bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithGrid sets the comparison grid.
func WithGrid(g geom.Grid) Option {
	return func(e *Engine) { e.Grid = g }
}

// WithIgnoreKinds excludes kinds from junction detection. Members of these
// kinds are stored with empty adjacency.
func WithIgnoreKinds(kinds ...frame.Kind) Option {
	return func(e *Engine) {
		for _, k := range kinds {
			e.ignore[k] = true
		}
	}
}

// WithLogger sets the logger used for debug output. Nil keeps log.Default().
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.Logger = l
		}
	}
}

// New returns an engine using geom.DefaultGrid and the default logger.
func New(opts ...Option) *Engine {
	e := &Engine{
		Grid:   geom.DefaultGrid,
		Logger: log.Default(),
		ignore: make(map[frame.Kind]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FromConfig builds an engine from validated settings.
func FromConfig(cfg config.Config, logger *log.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kinds, err := cfg.Kinds()
	if err != nil {
		return nil, err
	}
	return New(WithGrid(cfg.Grid()), WithIgnoreKinds(kinds...), WithLogger(logger)), nil
}

// Ignores reports whether members of kind k are excluded from junctions.
func (e *Engine) Ignores(k frame.Kind) bool { return e.ignore[k] }

// participates reports whether mem takes part in junction detection.
func (e *Engine) participates(mem *frame.Member) bool {
	return !e.ignore[mem.Kind] && !e.Grid.Degenerate(mem.Start, mem.End)
}

var defaultEngine = New()

// Connect inserts mem into model using the default engine.
func Connect(model *frame.Model, mem *frame.Member, onCrossing crossing.Func) (*frame.Model, error) {
	return defaultEngine.Connect(model, mem, onCrossing)
}

// Disconnect removes every reference to mem using the default engine.
func Disconnect(model *frame.Model, mem *frame.Member) (*frame.Model, error) {
	return defaultEngine.Disconnect(model, mem)
}

// =============================================================================
// Validation helpers
// =============================================================================

func checkModel(model *frame.Model) error {
	if model == nil {
		return ferrors.New(ferrors.ErrCodeInvalidInput, "model is nil")
	}
	return nil
}

func checkMember(mem *frame.Member) error {
	if mem == nil {
		return ferrors.New(ferrors.ErrCodeInvalidMember, "member is nil")
	}
	if err := ferrors.ValidateMemberName(mem.Name); err != nil {
		return err
	}
	if !mem.Kind.Valid() {
		return ferrors.Wrap(ferrors.ErrCodeInvalidKind, frame.ErrInvalidKind, "member %s has kind %d", mem.Name, int(mem.Kind))
	}
	return ferrors.ValidateCoordinates(mem.Name,
		mem.Start.X, mem.Start.Y, mem.Start.Z,
		mem.End.X, mem.End.Y, mem.End.Z)
}

// registryError maps frame registry sentinels onto coded errors so callers
// can match on either.
func registryError(err error, format string, args ...any) error {
	code := ferrors.ErrCodeInternal
	switch {
	case errors.Is(err, frame.ErrDuplicateName):
		code = ferrors.ErrCodeDuplicateName
	case errors.Is(err, frame.ErrDuplicateID):
		code = ferrors.ErrCodeDuplicateID
	case errors.Is(err, frame.ErrNotFound):
		code = ferrors.ErrCodeNotFound
	case errors.Is(err, frame.ErrInvalidKind):
		code = ferrors.ErrCodeInvalidKind
	case errors.Is(err, frame.ErrEmptyName):
		code = ferrors.ErrCodeInvalidMember
	}
	return ferrors.Wrap(code, err, format, args...)
}

func notFound(kind frame.Kind, name string) error {
	return ferrors.Wrap(ferrors.ErrCodeNotFound, frame.ErrNotFound, "%s %s", kind, name)
}
