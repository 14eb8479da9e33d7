// Package config loads the calculation defaults shared by the function
// registry and the CLI.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libpumpcalc/fluid"
	"github.com/sgostarter/libpumpcalc/hydraulics"
	"github.com/sgostarter/libpumpcalc/interp"
	"github.com/sgostarter/libpumpcalc/pump"
	"github.com/sgostarter/libpumpcalc/rootfind"
	"gopkg.in/yaml.v3"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"

	DefaultIntersectSolver = "brent"
)

type Store struct {
	Backend  string `yaml:"backend"`
	Root     string `yaml:"root"`
	RedisDSN string `yaml:"redisDSN"`
	PreKey   string `yaml:"preKey"`
}

// FluidTable lists property samples against temperature in °C.
type FluidTable struct {
	Name          string         `yaml:"name"`
	Density       []interp.Point `yaml:"density"`
	Viscosity     []interp.Point `yaml:"viscosity"`
	VaporPressure []interp.Point `yaml:"vaporPressure"`
}

type Config struct {
	Fluid     string  `yaml:"fluid"`
	RefTempC  float64 `yaml:"refTempC"`
	AltitudeM float64 `yaml:"altitudeM"`
	Strategy  string  `yaml:"strategy"`

	InterpKind       string  `yaml:"interpKind"`
	InverseTolerance float64 `yaml:"inverseTolerance"`
	IntersectSamples int     `yaml:"intersectSamples"`
	IntersectSolver  string  `yaml:"intersectSolver"`

	SolverTolerance float64 `yaml:"solverTolerance"`
	SolverMaxIter   int     `yaml:"solverMaxIter"`

	CacheTTL time.Duration `yaml:"cacheTTL"`

	Fluids []FluidTable `yaml:"fluids"`

	Store Store `yaml:"store"`
}

func Default() *Config {
	return &Config{
		Fluid:            "water",
		RefTempC:         20,
		Strategy:         pump.StrategyStandard.Name,
		InterpKind:       interp.KindCubic.String(),
		InverseTolerance: interp.DefaultInverseTolerance,
		IntersectSamples: interp.DefaultIntersectSamples,
		IntersectSolver:  DefaultIntersectSolver,
		SolverTolerance:  hydraulics.DefaultTolerance,
		SolverMaxIter:    hydraulics.DefaultMaxIter,
		CacheTTL:         fluid.DefaultCacheTTL,
		Store: Store{
			Backend: BackendFile,
			Root:    "./curves",
			PreKey:  "pumpcalc",
		},
	}
}

// Load reads a yaml file; absent keys keep their defaults.
func Load(file string) (*Config, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	return Parse(d)
}

// Parse decodes over Default so an explicit zero survives; empty strings
// fall back to the defaults.
func Parse(d []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	def := Default()

	for _, f := range []struct {
		v   *string
		def string
	}{
		{&cfg.Fluid, def.Fluid},
		{&cfg.Strategy, def.Strategy},
		{&cfg.InterpKind, def.InterpKind},
		{&cfg.IntersectSolver, def.IntersectSolver},
		{&cfg.Store.Backend, def.Store.Backend},
		{&cfg.Store.Root, def.Store.Root},
		{&cfg.Store.PreKey, def.Store.PreKey},
	} {
		if strings.TrimSpace(*f.v) == "" {
			*f.v = f.def
		}
	}
}

func (cfg *Config) Validate() error {
	if _, err := pump.StrategyByName(cfg.Strategy); err != nil {
		return err
	}

	if _, err := interp.ParseKind(cfg.InterpKind); err != nil {
		return err
	}

	if _, err := rootfind.SolverByName(cfg.IntersectSolver); err != nil {
		return err
	}

	if cfg.InverseTolerance < 0 || cfg.SolverTolerance <= 0 {
		return fmt.Errorf("%w: negative tolerance", ErrInvalidConfig)
	}

	if cfg.IntersectSamples < 2 || cfg.SolverMaxIter < 1 {
		return fmt.Errorf("%w: samples %d, max iter %d", ErrInvalidConfig, cfg.IntersectSamples, cfg.SolverMaxIter)
	}

	if cfg.CacheTTL < 0 {
		return fmt.Errorf("%w: cache ttl %s", ErrInvalidConfig, cfg.CacheTTL)
	}

	for _, ft := range cfg.Fluids {
		if _, err := ft.provider(); err != nil {
			return fmt.Errorf("%w: fluid %q: %s", ErrInvalidConfig, ft.Name, err.Error())
		}
	}

	switch strings.ToLower(cfg.Store.Backend) {
	case BackendFile:
	case BackendRedis:
		if cfg.Store.RedisDSN == "" {
			return fmt.Errorf("%w: redis backend without redisDSN", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Store.Backend)
	}

	return nil
}

func (cfg *Config) Kind() interp.Kind {
	k, _ := interp.ParseKind(cfg.InterpKind)

	return k
}

func (cfg *Config) PumpStrategy() pump.Strategy {
	s, _ := pump.StrategyByName(cfg.Strategy)

	return s
}

// InterpOptions carries the inverse and intersection settings.
func (cfg *Config) InterpOptions() []interp.Option {
	solver, _ := rootfind.SolverByName(cfg.IntersectSolver)

	return []interp.Option{
		interp.WithTolerance(cfg.InverseTolerance),
		interp.WithSamples(cfg.IntersectSamples),
		interp.WithSolver(solver),
	}
}

func (cfg *Config) HydraulicsOptions() []hydraulics.Option {
	return []hydraulics.Option{
		hydraulics.WithTolerance(cfg.SolverTolerance),
		hydraulics.WithMaxIter(cfg.SolverMaxIter),
	}
}

func (ft FluidTable) provider() (fluid.Provider, error) {
	if strings.TrimSpace(ft.Name) == "" || fluid.IsWater(ft.Name) {
		return nil, fmt.Errorf("%w: table fluids need a name other than water", ErrInvalidConfig)
	}

	tables := make(map[fluid.Property]*interp.Samples)

	for p, ps := range map[fluid.Property][]interp.Point{
		fluid.PropDensity:       ft.Density,
		fluid.PropViscosity:     ft.Viscosity,
		fluid.PropVaporPressure: ft.VaporPressure,
	} {
		if len(ps) == 0 {
			continue
		}

		s, err := interp.NewSamplesFromPoints(ps)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}

		tables[p] = s
	}

	return fluid.NewTableProvider(ft.Name, tables)
}

// Provider serves water plus every configured table fluid, memoised for
// CacheTTL.
func (cfg *Config) Provider(logger l.Wrapper) (fluid.Provider, error) {
	providers := fluid.Multi{fluid.NewWaterProvider()}

	for _, ft := range cfg.Fluids {
		p, err := ft.provider()
		if err != nil {
			return nil, err
		}

		providers = append(providers, p)
	}

	return fluid.NewCachedProvider(providers, cfg.CacheTTL, logger), nil
}
