package decomposition_test

import "github.com/katalvlaran/treedec/labeling"

// intLabel is a minimal labeling.Value used across the package tests.
type intLabel int

func (l intLabel) Clone() labeling.Value { return l }

func (l intLabel) Equal(o labeling.Value) bool {
	other, ok := o.(intLabel)

	return ok && other == l
}
