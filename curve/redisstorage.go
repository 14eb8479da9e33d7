package curve

import (
	"context"
	"errors"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"gopkg.in/yaml.v3"
)

// NewRedisStorage keeps every curve as a yaml payload in the hash
// <preKey>:curves.
func NewRedisStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "curveRedisStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type redisStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *redisStorage) curvesKey() string {
	return impl.preKey + ":curves"
}

func (impl *redisStorage) Load(name string) (c *Curve, err error) {
	if err = CheckName(name); err != nil {
		return
	}

	d, err := impl.redisCli.HGet(context.Background(), impl.curvesKey(), name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	c = &Curve{}

	err = yaml.Unmarshal(d, c)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("name", name)).Error("bad curve payload")
	}

	return
}

func (impl *redisStorage) Save(c *Curve) (err error) {
	if err = CheckName(c.Name); err != nil {
		return
	}

	d, err := yaml.Marshal(c)
	if err != nil {
		return
	}

	err = impl.redisCli.HSet(context.Background(), impl.curvesKey(), c.Name, d).Err()

	return
}

func (impl *redisStorage) Delete(name string) error {
	if err := CheckName(name); err != nil {
		return err
	}

	n, err := impl.redisCli.HDel(context.Background(), impl.curvesKey(), name).Result()
	if err != nil {
		return err
	}

	if n == 0 {
		return commerr.ErrNotFound
	}

	return nil
}

func (impl *redisStorage) List() (names []string, err error) {
	names, err = impl.redisCli.HKeys(context.Background(), impl.curvesKey()).Result()
	if err != nil {
		return
	}

	sort.Strings(names)

	return
}
