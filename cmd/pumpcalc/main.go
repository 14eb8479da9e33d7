package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libpumpcalc/config"
	"github.com/sgostarter/libpumpcalc/curve"
	"github.com/sgostarter/libpumpcalc/udf"
	"github.com/spf13/cobra"
)

var (
	configFile string
	verbose    bool

	cfg    *config.Config
	logger l.Wrapper

	redisCli *redis.Client
)

var errCallFailed = errors.New("call failed")

var rootCmd = &cobra.Command{
	Use:          "pumpcalc",
	Short:        "Pump curve, fluid and pipe calculations",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		return setup()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) (err error) {
		return closeStorage()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to the console")

	rootCmd.AddCommand(funcsCmd, callCmd, curveCmd)
}

func setup() (err error) {
	if verbose {
		logger = l.NewConsoleLoggerWrapper()
	} else {
		logger = l.NewNopLoggerWrapper()
	}

	if configFile == "" {
		cfg = config.Default()

		return
	}

	cfg, err = config.Load(configFile)
	if err != nil {
		return fmt.Errorf("load config %s: %w", configFile, err)
	}

	return
}

func openStorage() (curve.Storage, error) {
	if cfg.Store.Backend == config.BackendRedis {
		options, err := redis.ParseURL(cfg.Store.RedisDSN)
		if err != nil {
			return nil, err
		}

		if err = closeStorage(); err != nil {
			logger.WithFields(l.ErrorField(err)).Error("close previous redis client")
		}

		redisCli = redis.NewClient(options)

		return curve.NewRedisStorage(cfg.Store.PreKey, redisCli, logger), nil
	}

	return curve.NewFileStorage(cfg.Store.Root)
}

func closeStorage() (err error) {
	if redisCli == nil {
		return
	}

	err = redisCli.Close()
	redisCli = nil

	return
}

func openLibrary() (*curve.Library, error) {
	storage, err := openStorage()
	if err != nil {
		return nil, err
	}

	return curve.NewLibrary(storage, logger,
		curve.WithCacheTTL(cfg.CacheTTL),
		curve.WithKind(cfg.Kind()),
		curve.WithInterpOptions(cfg.InterpOptions()...)), nil
}

// newCallContext opens the curve library only if one already exists, so
// plain calls never create a store.
func newCallContext() (*udf.Context, error) {
	var lib *curve.Library

	_, statErr := os.Stat(cfg.Store.Root)
	if cfg.Store.Backend == config.BackendRedis || statErr == nil {
		var err error

		lib, err = openLibrary()
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Error("curve library unavailable")
		}
	}

	fluids, err := cfg.Provider(logger)
	if err != nil {
		return nil, err
	}

	return udf.NewContext(cfg, fluids, lib, logger), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCallFailed) {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}
