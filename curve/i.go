// Package curve keeps named pump and vendor curves and evaluates them
// through fitted interpolators.
package curve

import (
	"fmt"
	"strings"

	"github.com/sgostarter/libpumpcalc/interp"
)

type Curve struct {
	ID        uint64         `yaml:"id" json:"id"`
	Name      string         `yaml:"name" json:"name"`
	XUnit     string         `yaml:"xUnit,omitempty" json:"xUnit,omitempty"`
	YUnit     string         `yaml:"yUnit,omitempty" json:"yUnit,omitempty"`
	Kind      string         `yaml:"kind,omitempty" json:"kind,omitempty"`
	Points    []interp.Point `yaml:"points" json:"points"`
	UpdatedAt int64          `yaml:"updatedAt" json:"updatedAt"`
}

func (c *Curve) Samples() (*interp.Samples, error) {
	if len(c.Points) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPoints, c.Name)
	}

	return interp.NewSamplesFromPoints(c.Points)
}

// Storage persists curves by name. Missing curves are commerr.ErrNotFound.
type Storage interface {
	Load(name string) (*Curve, error)
	Save(c *Curve) error
	Delete(name string) error
	List() ([]string, error)
}

// CheckName accepts names usable as a file name and a hash field.
func CheckName(name string) error {
	if strings.TrimSpace(name) == "" || name != strings.TrimSpace(name) ||
		strings.ContainsAny(name, `/\:`) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}
