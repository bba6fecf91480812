package membership

import (
	"errors"
	"strings"
)

// Package is a named pricing tier; many Members reference one Package.
type Package struct {
	PackageID    int
	PackageName  string
	Price        float64
	DurationDays int // membership days granted per payment
}

// Validate checks if the Package has valid data.
// PRE: Package struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (p *Package) Validate() error {
	if strings.TrimSpace(p.PackageName) == "" {
		return errors.New("package name cannot be empty")
	}
	if p.Price < 0 {
		return errors.New("package price cannot be negative")
	}
	if p.DurationDays <= 0 {
		return errors.New("package duration must be positive")
	}
	return nil
}
