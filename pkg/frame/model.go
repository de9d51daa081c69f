package frame

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/google/uuid"
)

var (
	// ErrEmptyName is returned by [Model.Add] and [Model.Rename] when the
	// member name is empty.
	ErrEmptyName = errors.New("member name must not be empty")

	// ErrInvalidKind is returned when a member carries a kind outside the
	// defined set, or a kind string cannot be parsed.
	ErrInvalidKind = errors.New("invalid member kind")

	// ErrDuplicateName is returned by [Model.Add] and [Model.Rename] when the
	// name is already used. Adjacency sets reference members by bare name, so
	// names are unique across the whole model, not only within a kind.
	ErrDuplicateName = errors.New("duplicate member name")

	// ErrDuplicateID is returned by [Model.Add] when another member of the
	// same kind already has the ID.
	ErrDuplicateID = errors.New("duplicate member id")

	// ErrNotFound is returned when a member does not exist in the model.
	ErrNotFound = errors.New("member not found")
)

// Model is the member registry of one structural unit: one ordered
// collection per kind, plus model-level metadata the engine ignores.
//
// The zero value is not usable - use [New]. A Model is not safe for
// concurrent use; the connect package never mutates a model it is given and
// always returns a fresh snapshot instead.
type Model struct {
	ID            string
	Name          string
	BaseElevation float64

	members map[Kind][]*Member
	byName  map[string]*Member
}

// New creates an empty model with a fresh random ID.
func New(name string) *Model {
	return &Model{
		ID:      uuid.NewString(),
		Name:    name,
		members: make(map[Kind][]*Member),
		byName:  make(map[string]*Member),
	}
}

// Add appends mem to the collection of its kind. The model takes ownership
// of the pointer. Meta is initialized if nil.
func (m *Model) Add(mem *Member) error {
	if mem.Name == "" {
		return ErrEmptyName
	}
	if !mem.Kind.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidKind, int(mem.Kind))
	}
	if _, exists := m.byName[mem.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, mem.Name)
	}
	if _, exists := m.FindByID(mem.Kind, mem.ID); exists {
		return fmt.Errorf("%w: %s %d", ErrDuplicateID, mem.Kind, mem.ID)
	}
	if mem.Meta == nil {
		mem.Meta = Metadata{}
	}
	m.members[mem.Kind] = append(m.members[mem.Kind], mem)
	m.byName[mem.Name] = mem
	return nil
}

// Delete removes the named member of the given kind and reports whether it
// existed. It does not touch other members' adjacency sets; callers that need
// the no-dangling-reference guarantee go through connect.Remove.
func (m *Model) Delete(kind Kind, name string) bool {
	list := m.members[kind]
	for i, mem := range list {
		if mem.Name == name {
			m.members[kind] = append(list[:i:i], list[i+1:]...)
			if len(m.members[kind]) == 0 {
				delete(m.members, kind)
			}
			delete(m.byName, name)
			return true
		}
	}
	return false
}

// Rename changes a member's name and rewrites every adjacency entry that
// referenced the old name. Returns ErrEmptyName, ErrNotFound or
// ErrDuplicateName on failure, leaving the model unchanged.
//
// This is O(N) in the number of members.
func (m *Model) Rename(kind Kind, oldName, newName string) error {
	if newName == "" {
		return ErrEmptyName
	}
	mem, ok := m.Find(kind, oldName)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, oldName)
	}
	if oldName == newName {
		return nil
	}
	if _, exists := m.byName[newName]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, newName)
	}

	mem.Name = newName
	delete(m.byName, oldName)
	m.byName[newName] = mem

	for _, other := range m.All() {
		for _, r := range Roles {
			other.Set(r).Replace(oldName, newName)
		}
	}
	return nil
}

// Members returns the members of one kind in insertion order. The slice is a
// read-only view; the member pointers refer to the registry's members.
func (m *Model) Members(kind Kind) []*Member { return m.members[kind] }

// All returns every member, kinds in canonical order, members in insertion
// order within a kind.
func (m *Model) All() []*Member {
	out := make([]*Member, 0, len(m.byName))
	for _, k := range Kinds() {
		out = append(out, m.members[k]...)
	}
	return out
}

// Len returns the number of members across all kinds.
func (m *Model) Len() int { return len(m.byName) }

// Has reports whether a member with the given name exists.
func (m *Model) Has(name string) bool {
	_, ok := m.byName[name]
	return ok
}

// Lookup returns the member with the given name, whatever its kind.
func (m *Model) Lookup(name string) (*Member, bool) {
	mem, ok := m.byName[name]
	return mem, ok
}

// Find returns the named member if it has the given kind.
func (m *Model) Find(kind Kind, name string) (*Member, bool) {
	mem, ok := m.byName[name]
	if !ok || mem.Kind != kind {
		return nil, false
	}
	return mem, true
}

// FindByID returns the member of the given kind with the given ID.
func (m *Model) FindByID(kind Kind, id int) (*Member, bool) {
	for _, mem := range m.members[kind] {
		if mem.ID == id {
			return mem, true
		}
	}
	return nil, false
}

// NextID returns one more than the highest ID in use for kind (1 for an
// empty collection).
func (m *Model) NextID(kind Kind) int {
	next := 1
	for _, mem := range m.members[kind] {
		if mem.ID >= next {
			next = mem.ID + 1
		}
	}
	return next
}

// NextName returns the derived name for the next ID of kind, e.g. "C12",
// skipping names already taken by members of other kinds.
func (m *Model) NextName(kind Kind) (int, string) {
	id := m.NextID(kind)
	for {
		name := kind.Prefix() + strconv.Itoa(id)
		if !m.Has(name) {
			return id, name
		}
		id++
	}
}

// Clone returns a deep copy. Mutating the clone never affects m.
func (m *Model) Clone() *Model {
	c := &Model{
		ID:            m.ID,
		Name:          m.Name,
		BaseElevation: m.BaseElevation,
		members:       make(map[Kind][]*Member, len(m.members)),
		byName:        make(map[string]*Member, len(m.byName)),
	}
	for kind, list := range m.members {
		if len(list) == 0 {
			continue
		}
		cl := make([]*Member, len(list))
		for i, mem := range list {
			cl[i] = mem.Clone()
			c.byName[mem.Name] = cl[i]
		}
		c.members[kind] = cl
	}
	return c
}

// CloneEmpty returns a model with the same identity and no members.
func (m *Model) CloneEmpty() *Model {
	return &Model{
		ID:            m.ID,
		Name:          m.Name,
		BaseElevation: m.BaseElevation,
		members:       make(map[Kind][]*Member),
		byName:        make(map[string]*Member),
	}
}

// Equal reports whether a and b hold the same members, in the same order,
// with identical geometry, attributes and adjacency. Model IDs and names are
// not compared.
func Equal(a, b *Model) bool {
	am, bm := a.All(), b.All()
	if len(am) != len(bm) {
		return false
	}
	for i := range am {
		if !reflect.DeepEqual(*am[i], *bm[i]) {
			return false
		}
	}
	return true
}
