package curve

import (
	"fmt"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libpumpcalc/interp"
)

var modes = []interp.Mode{interp.ModeReject, interp.ModeClamp, interp.ModeExtrapolate}

// Library fronts a Storage and memoises fitted interpolators per curve
// and out-of-range mode.
type Library struct {
	logger  l.Wrapper
	storage Storage
	opts    *Options

	fitted *cache.Cache
}

func NewLibrary(storage Storage, logger l.Wrapper, option ...Option) *Library {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "curveLibrary"))

	if storage == nil {
		logger.Fatal("no curve storage")
	}

	opts := optionNew(option...)

	return &Library{
		logger:  logger,
		storage: storage,
		opts:    opts,
		fitted:  cache.New(opts.cacheTTL, opts.cacheTTL),
	}
}

func (impl *Library) cacheKey(name string, mode interp.Mode) string {
	return fmt.Sprintf("%s:%d", name, mode)
}

func (impl *Library) forget(name string) {
	for _, mode := range modes {
		impl.fitted.Delete(impl.cacheKey(name, mode))
	}
}

// Put validates and stores a curve. A zero ID is replaced by a new one.
func (impl *Library) Put(c *Curve) (*Curve, error) {
	if c == nil {
		return nil, ErrNoPoints
	}

	if err := CheckName(c.Name); err != nil {
		return nil, err
	}

	if c.Kind != "" {
		if _, err := interp.ParseKind(c.Kind); err != nil {
			return nil, err
		}
	}

	s, err := c.Samples()
	if err != nil {
		return nil, err
	}

	nc := *c
	nc.Points = s.Points()
	nc.UpdatedAt = time.Now().Unix()

	if nc.ID == 0 {
		nc.ID = snowflake.ID()
	}

	if err = impl.storage.Save(&nc); err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("name", nc.Name)).Error("save curve failed")

		return nil, err
	}

	impl.forget(nc.Name)

	impl.logger.WithFields(l.StringField("name", nc.Name), l.IntField("points", len(nc.Points))).Debug("curve stored")

	return &nc, nil
}

func (impl *Library) Get(name string) (*Curve, error) {
	return impl.storage.Load(name)
}

func (impl *Library) Remove(name string) error {
	impl.forget(name)

	return impl.storage.Delete(name)
}

func (impl *Library) Names() ([]string, error) {
	return impl.storage.List()
}

func (impl *Library) Interpolator(name string, mode interp.Mode) (*interp.Interpolator, error) {
	key := impl.cacheKey(name, mode)

	if i, ok := impl.fitted.Get(key); ok {
		if ip, ok := i.(*interp.Interpolator); ok {
			return ip, nil
		}
	}

	c, err := impl.storage.Load(name)
	if err != nil {
		return nil, err
	}

	s, err := c.Samples()
	if err != nil {
		return nil, err
	}

	kind := impl.opts.kind
	if c.Kind != "" {
		if kind, err = interp.ParseKind(c.Kind); err != nil {
			return nil, err
		}
	}

	ipOpts := append(append([]interp.Option{}, impl.opts.interpOpts...), interp.WithMode(mode))

	ip, err := interp.NewInterpolator(s, kind, ipOpts...)
	if err != nil {
		return nil, err
	}

	impl.fitted.SetDefault(key, ip)

	return ip, nil
}

func (impl *Library) At(name string, x float64, mode interp.Mode) (float64, error) {
	ip, err := impl.Interpolator(name, mode)
	if err != nil {
		return 0, err
	}

	return ip.At(x)
}

func (impl *Library) Inverse(name string, y float64) ([]float64, error) {
	c, err := impl.storage.Load(name)
	if err != nil {
		return nil, err
	}

	s, err := c.Samples()
	if err != nil {
		return nil, err
	}

	return interp.Inverse(s, y, impl.opts.interpOpts...)
}

// Samples loads a stored curve as interpolation samples.
func (impl *Library) Samples(name string) (*interp.Samples, error) {
	c, err := impl.storage.Load(name)
	if err != nil {
		return nil, err
	}

	return c.Samples()
}
