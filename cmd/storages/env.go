package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/VictoriaMetrics/metrics"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/encoding"

	"storages.dev/storages/config"
	"storages.dev/storages/logging"
	"storages.dev/storages/storage"
	"storages.dev/storages/storage/objstore"
	"storages.dev/storages/storage/photos"
)

// env is everything a command needs, built from the config file and the
// global flags.
type env struct {
	cfg      *config.Config
	dirs     storage.HostDirectories
	svc      *storage.Service
	location storage.StorageConfig
	encoding encoding.Encoding
	s3       *objstore.MeteredS3Service
	saver    *photos.Saver
}

func withEnv(action func(ctx *cli.Context, e *env) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		e, err := newEnv(ctx)
		if err != nil {
			return err
		}
		defer e.report(ctx)
		return action(ctx, e)
	}
}

func newEnv(ctx *cli.Context) (*env, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %v", err)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.SetLevel(level)
	slog.SetDefault(slog.New(logging.NewTextHandler()))

	dirs, err := cfg.Directories()
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, dirs: dirs, location: cfg.StorageConfig()}
	var opts []storage.Option
	if cfg.UsesS3() {
		client, err := cfg.NewS3Client(ctx.Context)
		if err != nil {
			return nil, err
		}
		e.s3 = objstore.NewMeteredS3Service(client)
		opts = append(opts, storage.WithS3Service(e.s3))
	}
	e.svc = storage.NewService(dirs, opts...)

	e.encoding, err = storage.LookupEncoding(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	namer, err := photos.NamerFor(cfg.PhotoNaming)
	if err != nil {
		return nil, err
	}
	e.saver = photos.NewSaver(e.svc, namer)
	return e, nil
}

// loadConfig applies global flags on top of the config file.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	params := config.NewParams()
	for _, p := range ctx.StringSlice("param") {
		name, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("param %q must be name=value", p)
		}
		params.Set(name, value)
	}

	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path, params)
		if err != nil {
			return nil, err
		}
	}

	if ctx.IsSet("internal") {
		cfg.Internal = ctx.Bool("internal")
	}
	if ctx.IsSet("cache") {
		cfg.Cache = ctx.Bool("cache")
	}
	if ctx.IsSet("file") {
		cfg.FileName = ctx.String("file")
	}
	if ctx.IsSet("encoding") {
		cfg.Encoding = ctx.String("encoding")
	}
	return cfg, nil
}

func (e *env) report(ctx *cli.Context) {
	if e.s3 != nil {
		cheap, expensive := e.s3.Usage.Requests()
		slog.Debug("s3 usage", "cheap", cheap, "expensive", expensive, "cost", e.s3.Usage.TotalCost())
	}
	if ctx.Bool("metrics") {
		metrics.WritePrometheus(os.Stderr, false)
	}
}

// check turns a failed result into a non-zero exit.
func check(result storage.OperationResult) error {
	if result.Success {
		return nil
	}
	return cli.Exit(result.ErrorMessage(), 1)
}
