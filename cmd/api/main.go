package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/barbershop-booking/backend/internal/cache"
	"github.com/barbershop-booking/backend/internal/config"
	dbpkg "github.com/barbershop-booking/backend/internal/db"
	"github.com/barbershop-booking/backend/internal/media"
	"github.com/barbershop-booking/backend/internal/notify"
	"github.com/barbershop-booking/backend/internal/routes"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	store := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := store.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, running without catalog cache")
		store = nil
	}
	cancel()

	var mailer notify.Mailer
	if m := notify.NewHTTPMailer(cfg.MailEndpoint, cfg.MailAPIKey, cfg.MailSenderEmail, cfg.MailSenderName); m != nil {
		mailer = m
	}
	dispatcher := notify.NewDispatcher(mailer)

	avatars := media.NewAvatarStore(cfg)
	if avatars == nil {
		log.Warn().Msg("object storage not configured, avatar uploads disabled")
	}

	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg, store, dispatcher, avatars)

	log.Info().Str("addr", cfg.Addr()).Msg("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
