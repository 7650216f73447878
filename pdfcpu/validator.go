// Package pdfcpu validates uploaded score files using the pdfcpu library.
package pdfcpu

import (
	"context"

	"github.com/fwojciec/scorelib"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Compile-time interface verification.
var _ scorelib.ScoreValidator = (*Validator)(nil)

// Validator implements scorelib.ScoreValidator.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks that the file at path is a readable PDF and returns its
// page count. Anything pdfcpu cannot parse is reported as EINVALID.
func (v *Validator) Validate(ctx context.Context, path string) (int, error) {
	if err := api.ValidateFile(path, nil); err != nil {
		return 0, scorelib.Errorf(scorelib.EINVALID, "%s is not a valid PDF: %v", path, err)
	}

	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, scorelib.Errorf(scorelib.EINVALID, "cannot count pages of %s: %v", path, err)
	}

	return count, nil
}
