package main

import (
	"context"
	"database/sql"
	"flag"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"biduk_site/internal/adapters/content"
	"biduk_site/internal/adapters/observability"
	redisad "biduk_site/internal/adapters/redis"
	"biduk_site/internal/app"
	"biduk_site/internal/shared"
	mysqlrepo "biduk_site/internal/storage/mysql"
)

func main() {
	report := flag.Bool("report", false, "print the last run and recent misses, then exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required")
	}
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")
	repo := mysqlrepo.New(db)

	if last, ok, err := repo.LastRun(ctx); err != nil {
		log.Warn().Err(err).Msg("read last run failed")
	} else if ok {
		log.Info().
			Time("started", last.StartedAt).
			Dur("took", last.FinishedAt.Sub(last.StartedAt)).
			Int("details", last.Details).
			Int("misses", last.Misses).
			Int("failures", last.Failures).
			Msg("previous warm run")
	}
	if *report {
		ms, err := repo.ListMisses(ctx, "", 50)
		if err != nil {
			log.Fatal().Err(err).Msg("list misses failed")
		}
		for _, m := range ms {
			log.Info().
				Str("resource", m.Resource).
				Int64("id", m.ID).
				Int("status", m.Status).
				Int("hits", m.Hits).
				Time("seen_at", m.SeenAt).
				Msg(m.Reason)
		}
		return
	}

	if cfg.RedisAddr == "" {
		log.Fatal().Msg("REDIS_ADDR is required; there is nothing to warm")
	}
	if cfg.CacheTTL <= 0 {
		log.Fatal().Dur("ttl", cfg.CacheTTL).Msg("CACHE_TTL_SECONDS must be positive to warm the cache")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("redis ping failed")
	}

	client, err := content.New(cfg.ContentBase, cfg.ContentRPS, cfg.ContentTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize content client")
	}

	log.Info().
		Str("base", cfg.ContentBase).
		Int("workers", cfg.WarmWorkers).
		Int("pages", cfg.WarmPages).
		Msg("warmer starting")

	svc := app.NewWarmService(client, cache, repo, cfg.CacheTTL, cfg.WarmWorkers)
	run, err := svc.Run(ctx, cfg.WarmPages)
	if err != nil {
		log.Error().Err(err).Msg("record run failed")
	}
	log.Info().
		Int("lists", run.Lists).
		Int("details", run.Details).
		Int("misses", run.Misses).
		Int("failures", run.Failures).
		Dur("took", run.FinishedAt.Sub(run.StartedAt)).
		Msg("warm completed")
}
