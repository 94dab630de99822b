package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rushteam/mentorkit/config"
	"github.com/rushteam/mentorkit/core"
	"github.com/rushteam/mentorkit/engine"
	"github.com/rushteam/mentorkit/filter"
	"github.com/rushteam/mentorkit/pkg/logger"
	"github.com/rushteam/mentorkit/server"
	"github.com/rushteam/mentorkit/source"
)

func main() {
	cfgPath := flag.String("config", "", "path to config file (optional, defaults apply when unset)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	zl, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zl.Sync()

	src, err := buildSource(cfg)
	if err != nil {
		zl.Fatal("building profile source", zap.Error(err))
	}
	defer src.Close()

	opts, err := buildOptions(cfg)
	if err != nil {
		zl.Fatal("building engine options", zap.Error(err))
	}

	eng := engine.New(src, opts...)

	// 训练失败不退出：保持进程存活，让健康探针带着失败原因报 503，
	// 与请求期的类型化 UNAVAILABLE 一致。
	if err := eng.Train(context.Background()); err != nil {
		zl.Error("training failed, serving unavailable",
			zap.String("source", src.Name()),
			zap.Error(err),
		)
	} else {
		zl.Info("engine trained",
			zap.String("source", src.Name()),
			zap.String("state", string(eng.State())),
		)
	}

	srv := server.New(eng, zl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.Listen(cfg.Server.Addr); err != nil {
			zl.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")
	if err := srv.Shutdown(); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
}

func buildSource(cfg *config.Config) (core.ProfileSource, error) {
	switch cfg.Source.Type {
	case "redis":
		return source.NewRedis(cfg.Source.Redis.Addr, cfg.Source.Redis.DB, cfg.Source.Redis.Key)
	default:
		return source.NewCSV(cfg.Source.CSV.Path), nil
	}
}

func buildOptions(cfg *config.Config) ([]engine.Option, error) {
	if cfg.Filter.Expr == "" {
		return nil, nil
	}
	f, err := filter.NewExpr(cfg.Filter.Expr)
	if err != nil {
		return nil, err
	}
	node := &filter.Node{Filters: []filter.Filter{f}}
	return []engine.Option{engine.WithNodes(node)}, nil
}
