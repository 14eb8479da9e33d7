package hydraulics

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type FittingKind string

const (
	FittingElbow90    FittingKind = "elbow90"
	FittingElbow45    FittingKind = "elbow45"
	FittingReducer    FittingKind = "reducer"
	FittingExpander   FittingKind = "expander"
	FittingTeeRun     FittingKind = "tee_run"
	FittingTeeBranch  FittingKind = "tee_branch"
	FittingGateValve  FittingKind = "gate_valve"
	FittingCheckValve FittingKind = "check_valve"
	FittingEntrance   FittingKind = "entrance"
	FittingExit       FittingKind = "exit"
)

// tabulated loss coefficients; area changes are computed from the bores
var fittingK = map[FittingKind]float64{
	FittingElbow90:    0.9,
	FittingElbow45:    0.4,
	FittingTeeRun:     0.6,
	FittingTeeBranch:  1.8,
	FittingGateValve:  0.15,
	FittingCheckValve: 2.0,
	FittingEntrance:   0.5,
	FittingExit:       1.0,
}

var fittingAliases = map[string]FittingKind{
	"elbow":        FittingElbow90,
	"elbow_90":     FittingElbow90,
	"90_elbow":     FittingElbow90,
	"elbow_45":     FittingElbow45,
	"45_elbow":     FittingElbow45,
	"reduction":    FittingReducer,
	"contraction":  FittingReducer,
	"expansion":    FittingExpander,
	"tee":          FittingTeeRun,
	"valve":        FittingGateValve,
	"gate":         FittingGateValve,
	"check":        FittingCheckValve,
	"non_return":   FittingCheckValve,
	"inlet":        FittingEntrance,
	"outlet":       FittingExit,
	"pipe_exit":    FittingExit,
	"pipe_inlet":   FittingEntrance,
	"pipe_entry":   FittingEntrance,
	"sudden_exit":  FittingExit,
	"sudden_entry": FittingEntrance,
}

func ParseFittingKind(s string) (FittingKind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)

	k := FittingKind(key)
	if _, ok := fittingK[k]; ok || k == FittingReducer || k == FittingExpander {
		return k, nil
	}

	if k, ok := fittingAliases[key]; ok {
		return k, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFitting, s)
}

func FittingKinds() []string {
	kinds := []string{string(FittingReducer), string(FittingExpander)}
	for k := range fittingK {
		kinds = append(kinds, string(k))
	}

	sort.Strings(kinds)

	return kinds
}

// Fitting describes one minor loss. OutletDiameterMM is only read for
// reducers and expanders; a positive K overrides the table.
type Fitting struct {
	Kind             FittingKind `yaml:"kind" json:"kind"`
	FlowM3h          float64     `yaml:"flowM3h" json:"flowM3h"`
	DiameterMM       float64     `yaml:"diameterMM" json:"diameterMM"`
	OutletDiameterMM float64     `yaml:"outletDiameterMM" json:"outletDiameterMM"`
	Density          float64     `yaml:"density" json:"density"`
	K                float64     `yaml:"k" json:"k"`
}

type FittingResult struct {
	K         float64
	Velocity  float64
	DeltaPa   float64
	HeadLossM float64
}

func (f Fitting) coefficient() (k, boreMM float64, err error) {
	boreMM = f.DiameterMM

	switch f.Kind {
	case FittingReducer, FittingExpander:
		if math.IsNaN(f.OutletDiameterMM) || f.OutletDiameterMM <= 0 {
			if f.K > 0 {
				return f.K, boreMM, nil
			}

			err = fmt.Errorf("%w: outlet %g", ErrInvalidDiameter, f.OutletDiameterMM)

			return
		}

		small := math.Min(f.DiameterMM, f.OutletDiameterMM)
		large := math.Max(f.DiameterMM, f.OutletDiameterMM)
		ratio := (small / large) * (small / large)
		boreMM = small

		if f.Kind == FittingReducer {
			if f.OutletDiameterMM > f.DiameterMM {
				err = fmt.Errorf("%w: reducer outlet %g larger than inlet %g", ErrInvalidDiameter,
					f.OutletDiameterMM, f.DiameterMM)

				return
			}

			k = 0.5 * (1 - ratio)
		} else {
			if f.OutletDiameterMM < f.DiameterMM {
				err = fmt.Errorf("%w: expander outlet %g smaller than inlet %g", ErrInvalidDiameter,
					f.OutletDiameterMM, f.DiameterMM)

				return
			}

			k = (1 - ratio) * (1 - ratio)
		}
	default:
		var ok bool

		k, ok = fittingK[f.Kind]
		if !ok {
			err = fmt.Errorf("%w: %q", ErrUnknownFitting, f.Kind)

			return
		}
	}

	if f.K > 0 {
		k = f.K
	}

	return
}

// FittingLoss returns ΔP = K·ρv²/2 for the fitting.
func FittingLoss(f Fitting) (r FittingResult, err error) {
	switch {
	case math.IsNaN(f.FlowM3h) || f.FlowM3h <= 0:
		err = fmt.Errorf("%w: %g", ErrInvalidFlow, f.FlowM3h)

		return
	case math.IsNaN(f.DiameterMM) || f.DiameterMM <= 0:
		err = fmt.Errorf("%w: %g", ErrInvalidDiameter, f.DiameterMM)

		return
	case math.IsNaN(f.Density) || f.Density <= 0:
		err = fmt.Errorf("%w: %g", ErrInvalidDensity, f.Density)

		return
	case math.IsNaN(f.K) || f.K < 0:
		err = fmt.Errorf("%w: %g", ErrInvalidK, f.K)

		return
	}

	k, bore, err := f.coefficient()
	if err != nil {
		return
	}

	r.K = k
	r.Velocity = Velocity(f.FlowM3h, bore)
	r.DeltaPa = k * f.Density * r.Velocity * r.Velocity / 2
	r.HeadLossM = r.DeltaPa / (f.Density * Gravity)

	return
}
