package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateMemberName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid column", "C1", false},
		{"valid bracing", "VB12", false},
		{"valid custom", "B-roof_3", false},

		{"empty", "", true},
		{"too long", strings.Repeat("B", MaxMemberNameLength+1), true},
		{"space", "B 1", true},
		{"tab", "B\t1", true},
		{"null byte", "B\x001", true},
		{"newline", "B1\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMemberName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMemberName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidMember) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidMember)
			}
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	if err := ValidateCoordinates("B1", 0, -3.5, 1e6); err != nil {
		t.Errorf("finite coordinates rejected: %v", err)
	}
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := ValidateCoordinates("B1", 0, bad); !Is(err, ErrCodeInvalidMember) {
			t.Errorf("ValidateCoordinates(%v) error = %v", bad, err)
		}
	}
}

func TestValidateModelPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"json", "frame.json", ""},
		{"toml nested", "models/frame.toml", ""},
		{"yaml upper", "FRAME.YAML", ""},
		{"yml", "frame.yml", ""},

		{"empty", "", ErrCodeInvalidPath},
		{"control char", "fra\x01me.json", ErrCodeInvalidPath},
		{"no extension", "frame", ErrCodeInvalidFormat},
		{"unknown extension", "frame.xml", ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateModelPath(tt.input)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateModelPath(%q) code = %q, want %q (err=%v)", tt.input, got, tt.wantCode, err)
			}
		})
	}
}
