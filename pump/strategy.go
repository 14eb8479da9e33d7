// Package pump holds pump-curve formulas: normalization to a reference
// temperature, affinity scaling, duty point and NPSH.
package pump

import (
	"fmt"
	"sort"
	"strings"
)

// Strategy carries the empirical slopes applied to the viscosity ratio.
// Each vendor chart family is calibrated against one strategy; the slopes
// are not interchangeable.
type Strategy struct {
	Name      string  `yaml:"name" json:"name"`
	FlowSlope float64 `yaml:"flowSlope" json:"flowSlope"`
	HeadSlope float64 `yaml:"headSlope" json:"headSlope"`
}

var (
	StrategyStandard = Strategy{Name: "standard", FlowSlope: 0.15, HeadSlope: 0.10}
	StrategyMild     = Strategy{Name: "mild", FlowSlope: 0.05, HeadSlope: 0.03}
)

var strategies = map[string]Strategy{
	StrategyStandard.Name: StrategyStandard,
	StrategyMild.Name:     StrategyMild,
}

func StrategyByName(name string) (Strategy, error) {
	s, ok := strategies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	return s, nil
}

func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
