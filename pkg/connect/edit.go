package connect

import (
	"github.com/matzehuels/framelink/pkg/crossing"
	ferrors "github.com/matzehuels/framelink/pkg/errors"
	"github.com/matzehuels/framelink/pkg/frame"
)

// Remove disconnects the named member and deletes it from the registry.
func (e *Engine) Remove(model *frame.Model, kind frame.Kind, name string) (*frame.Model, error) {
	if err := checkModel(model); err != nil {
		return nil, err
	}
	if _, ok := model.Find(kind, name); !ok {
		return nil, notFound(kind, name)
	}
	out := model.Clone()
	e.detach(out, name)
	out.Delete(kind, name)
	return out, nil
}

// Replace swaps the named member for mem: the old member is removed, then
// mem is connected. mem may carry a different name or kind. Either both
// steps succeed or an error is returned and model is untouched.
func (e *Engine) Replace(model *frame.Model, kind frame.Kind, name string, mem *frame.Member, onCrossing crossing.Func) (*frame.Model, error) {
	if err := checkMember(mem); err != nil {
		return nil, err
	}
	removed, err := e.Remove(model, kind, name)
	if err != nil {
		return nil, err
	}
	if removed.Has(mem.Name) {
		return nil, registryError(frame.ErrDuplicateName, "replace %s with %s", name, mem.Name)
	}
	if err := e.insert(removed, mem.Clone(), onCrossing); err != nil {
		return nil, err
	}
	return removed, nil
}

// Edit applies fn to a copy of the named member and stores the result.
//
// A changed name goes through [frame.Model.Rename], so every reference
// follows. Changed geometry or kind triggers a full disconnect and
// reconnect. Anything else (profile, orientation, releases, metadata, ID)
// is written in place without touching adjacency. Adjacency sets modified
// by fn are ignored.
func (e *Engine) Edit(model *frame.Model, kind frame.Kind, name string, fn func(*frame.Member), onCrossing crossing.Func) (*frame.Model, error) {
	if err := checkModel(model); err != nil {
		return nil, err
	}
	cur, ok := model.Find(kind, name)
	if !ok {
		return nil, notFound(kind, name)
	}

	next := cur.Clone()
	fn(next)
	if err := checkMember(next); err != nil {
		return nil, err
	}

	out := model.Clone()
	if next.Name != name {
		if err := out.Rename(kind, name, next.Name); err != nil {
			return nil, registryError(err, "rename %s", name)
		}
		e.Logger.Debug("renamed", "model", out.Name, "from", name, "to", next.Name)
	}
	stored, _ := out.Find(kind, next.Name)

	if next.Kind != kind || !next.SameGeometry(stored) {
		return e.Replace(out, kind, next.Name, next, onCrossing)
	}

	if next.ID != stored.ID {
		if _, taken := out.FindByID(kind, next.ID); taken {
			return nil, registryError(frame.ErrDuplicateID, "edit %s", name)
		}
	}
	stored.ID = next.ID
	stored.Profile = next.Profile
	stored.Orientation = next.Orientation
	stored.Releases = next.Releases
	stored.Meta = next.Meta
	if stored.Meta == nil {
		stored.Meta = frame.Metadata{}
	}
	return out, nil
}

// Rebuild recomputes all adjacency from geometry by connecting every member,
// in canonical order, into an empty copy of model. Stored adjacency is
// discarded. Crossings are reported once per pair.
func (e *Engine) Rebuild(model *frame.Model, onCrossing crossing.Func) (*frame.Model, error) {
	if err := checkModel(model); err != nil {
		return nil, err
	}
	out := model.CloneEmpty()
	for _, mem := range model.All() {
		if err := checkMember(mem); err != nil {
			return nil, err
		}
		if err := e.insert(out, mem.Clone(), onCrossing); err != nil {
			return nil, err
		}
	}
	e.Logger.Debug("rebuilt", "model", out.Name, "members", out.Len())
	return out, nil
}

// Batch connects several members in order, stopping at the first error.
// On error the input model is untouched and no snapshot is returned.
func (e *Engine) Batch(model *frame.Model, members []*frame.Member, onCrossing crossing.Func) (*frame.Model, error) {
	if err := checkModel(model); err != nil {
		return nil, err
	}
	out := model.Clone()
	for _, mem := range members {
		if err := checkMember(mem); err != nil {
			return nil, err
		}
		if out.Has(mem.Name) {
			return nil, registryError(frame.ErrDuplicateName, "connect %s", mem.Name)
		}
		if err := e.insert(out, mem.Clone(), onCrossing); err != nil {
			return nil, ferrors.Wrap(ferrors.GetCode(err), err, "batch stopped at %s", mem.Name)
		}
	}
	return out, nil
}
