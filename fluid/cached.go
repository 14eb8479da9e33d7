package fluid

import (
	"fmt"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
)

const DefaultCacheTTL = 10 * time.Minute

type cachedProvider struct {
	logger   l.Wrapper
	provider Provider
	cache    *cache.Cache
}

// NewCachedProvider memoises lookups of provider for ttl.
func NewCachedProvider(provider Provider, ttl time.Duration, logger l.Wrapper) Provider {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "cachedProvider"))

	if provider == nil {
		logger.Fatal("no provider")
	}

	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &cachedProvider{
		logger:   logger,
		provider: provider,
		cache:    cache.New(ttl, ttl*2),
	}
}

func (impl *cachedProvider) key(p Property, tempC, pressurePa float64, fluid string) string {
	return fmt.Sprintf("%d:%s:%s:%s", int(p), normalizeName(fluid),
		strconv.FormatFloat(tempC, 'g', -1, 64), strconv.FormatFloat(pressurePa, 'g', -1, 64))
}

func (impl *cachedProvider) Property(p Property, tempC, pressurePa float64, fluid string) (float64, error) {
	key := impl.key(p, tempC, pressurePa, fluid)

	if i, ok := impl.cache.Get(key); ok {
		if v, ok := i.(float64); ok {
			return v, nil
		}
	}

	v, err := impl.provider.Property(p, tempC, pressurePa, fluid)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Debug("property lookup failed")

		return v, err
	}

	impl.cache.SetDefault(key, v)

	return v, nil
}
