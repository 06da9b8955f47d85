package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"biduk_site/internal/adapters/chatbot"
	"biduk_site/internal/adapters/content"
	server "biduk_site/internal/adapters/http_server"
	"biduk_site/internal/adapters/observability"
	redisad "biduk_site/internal/adapters/redis"
	"biduk_site/internal/app"
	"biduk_site/internal/chat"
	"biduk_site/internal/domain"
	"biduk_site/internal/geo"
	"biduk_site/internal/i18n"
	"biduk_site/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// cache is optional
	var cache domain.Cache = app.NopCache{}
	if cfg.RedisAddr == "" {
		log.Warn().Msg("REDIS_ADDR is empty; content cache disabled")
	} else {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := rc.Ping(pctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed; serving without cache")
			_ = rc.Close()
		} else {
			cache = rc
			defer rc.Close()
		}
		cancel()
	}

	// deps
	api, err := content.New(cfg.ContentBase, cfg.ContentRPS, cfg.ContentTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize content client")
	}
	bot, err := chatbot.New(cfg.ChatbotURL, cfg.ChatbotTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize chatbot client")
	}
	shape, err := geo.LoadShape(cfg.MapGeoJSONPath)
	if err != nil {
		// the map section shows its error copy instead
		log.Warn().Err(err).Str("path", cfg.MapGeoJSONPath).Msg("village outline not loaded")
	}

	cat := i18n.NewCatalog()
	contentSvc := app.NewContentService(api, cache, cfg.CacheTTL)
	chats := chat.NewStore(bot, cat, chat.Options{
		MaxReplies: cfg.ChatMaxReplies,
		LimitDelay: cfg.ChatLimitDelay,
	}, cfg.ChatSessionTTL)
	defer chats.Close()

	h, err := server.NewHandlers(contentSvc, chats, cat, shape, cfg.RecaptchaSiteKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build handlers")
	}

	// http
	srv := server.New(cfg.RequestTimeout)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h)

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(sctx)
	}()

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("content", cfg.ContentBase).
		Bool("cache", cfg.RedisAddr != "").
		Msg("site listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("site stopped")
}
