package curve

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libconfig/ut"
	"github.com/sgostarter/libpumpcalc/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRedis(dsn string) (cli *redis.Client, err error) {
	options, err := redis.ParseURL(dsn)
	if err != nil {
		return
	}

	cli = redis.NewClient(options)

	ctx, cf := context.WithTimeout(context.Background(), 3*time.Second)
	defer cf()

	err = cli.Ping(ctx).Err()

	return
}

func TestRedisStorage(t *testing.T) {
	cfg := ut.SetupUTConfig4Redis(t)

	redisCli, err := initRedis(cfg.RedisDSN)
	if err != nil {
		t.Skipf("redis unavailable: %v", err)
	}

	redisCli.Del(context.Background(), "ut-pumpcalc:curves")

	stg := NewRedisStorage("ut-pumpcalc", redisCli, nil)

	_, err = stg.Load("p1")
	assert.ErrorIs(t, err, commerr.ErrNotFound)

	lib := NewLibrary(stg, nil, WithKind(interp.KindMonotonic))

	c, err := lib.Put(pumpCurve("p1"))
	require.Nil(t, err)

	loaded, err := stg.Load("p1")
	require.Nil(t, err)
	assert.Equal(t, c.ID, loaded.ID)
	assert.Equal(t, c.Points, loaded.Points)

	v, err := lib.At("p1", 25, interp.ModeReject)
	assert.Nil(t, err)
	assert.InDelta(t, 46.875, v, 1e-9)

	names, err := stg.List()
	assert.Nil(t, err)
	assert.Equal(t, []string{"p1"}, names)

	assert.Nil(t, lib.Remove("p1"))
	assert.ErrorIs(t, stg.Delete("p1"), commerr.ErrNotFound)
}
