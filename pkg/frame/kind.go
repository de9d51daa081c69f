package frame

import (
	"fmt"
	"strings"
)

// Kind is the closed set of structural member kinds. Every kind shares the
// same geometric shape (a straight segment from Start to End); they differ in
// naming and in the non-geometric fields the surrounding editors fill in.
type Kind int

const (
	KindColumn Kind = iota
	KindBeam
	KindCantilever
	KindVerticalBracing
	KindHorizontalBracing
	KindKneeBracing
	KindStaircase
	KindTrussChord
	KindTrussWeb

	kindCount
)

var kindNames = [kindCount]string{
	KindColumn:            "COLUMN",
	KindBeam:              "BEAM",
	KindCantilever:        "CANTILEVER",
	KindVerticalBracing:   "VERTICAL-BRACING",
	KindHorizontalBracing: "HORIZONTAL-BRACING",
	KindKneeBracing:       "KNEE-BRACING",
	KindStaircase:         "STAIRCASE",
	KindTrussChord:        "TRUSS-CHORD",
	KindTrussWeb:          "TRUSS-WEB",
}

var kindPrefixes = [kindCount]string{
	KindColumn:            "C",
	KindBeam:              "B",
	KindCantilever:        "CB",
	KindVerticalBracing:   "VB",
	KindHorizontalBracing: "HB",
	KindKneeBracing:       "KB",
	KindStaircase:         "ST",
	KindTrussChord:        "TC",
	KindTrussWeb:          "TW",
}

// Kinds returns every kind in canonical order. Registry iteration, rebuilds
// and serialization all follow this order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

// String returns the canonical upper-case name, e.g. "VERTICAL-BRACING".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Prefix returns the name prefix used for derived member names ("C" for
// columns, "B" for beams, ...).
func (k Kind) Prefix() string {
	if !k.Valid() {
		return "M"
	}
	return kindPrefixes[k]
}

// IsBracing reports whether k is one of the bracing kinds.
func (k Kind) IsBracing() bool {
	return k == KindVerticalBracing || k == KindHorizontalBracing || k == KindKneeBracing
}

// ParseKind parses a kind name. Matching is case-insensitive and accepts
// underscores or spaces in place of dashes ("vertical_bracing").
func ParseKind(s string) (Kind, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	for i, name := range kindNames {
		if name == norm {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
