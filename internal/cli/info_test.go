package cli

import (
	"testing"
)

func TestFormatElements(t *testing.T) {
	tests := []struct {
		counts map[string]int
		want   string
	}{
		{map[string]int{"C": 2, "H": 6, "O": 1}, "C×2 H×6 O×1"},
		{map[string]int{"N": 1}, "N×1"},
		{map[string]int{}, ""},
	}

	for _, tt := range tests {
		if got := formatElements(tt.counts); got != tt.want {
			t.Errorf("formatElements(%v) = %q, want %q", tt.counts, got, tt.want)
		}
	}
}

func TestMoleculeSize(t *testing.T) {
	m := inspectMolecule(t, "O=C=O")
	atoms, bonds := moleculeSize(m)
	if atoms != 3 {
		t.Errorf("atoms = %d, want 3", atoms)
	}
	if bonds != 2 {
		t.Errorf("bonds = %d, want 2", bonds)
	}
}
