// Package interp evaluates splines over sampled curves: forward lookup,
// inverse lookup on non-monotonic data, and curve intersection.
package interp

import (
	"fmt"
	"strings"
)

type Kind int

const (
	KindLinear Kind = iota
	KindCubic
	KindMonotonic
	KindAkima
)

func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindCubic:
		return "cubic"
	case KindMonotonic:
		return "pchip"
	case KindAkima:
		return "akima"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "lin":
		return KindLinear, nil
	case "", "cubic", "spline":
		return KindCubic, nil
	case "pchip", "monotonic", "mono":
		return KindMonotonic, nil
	case "akima":
		return KindAkima, nil
	}

	return KindLinear, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Mode selects what happens to queries outside the sampled domain.
type Mode int

const (
	ModeReject Mode = iota
	ModeClamp
	ModeExtrapolate
)

func (m Mode) String() string {
	switch m {
	case ModeReject:
		return "reject"
	case ModeClamp:
		return "clamp"
	case ModeExtrapolate:
		return "extrapolate"
	}

	return fmt.Sprintf("mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject", "strict":
		return ModeReject, nil
	case "clamp", "clip":
		return ModeClamp, nil
	case "extrapolate", "extend":
		return ModeExtrapolate, nil
	}

	return ModeReject, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

type Predictor interface {
	At(x float64) (float64, error)
}
