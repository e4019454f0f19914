package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"
	"timezone-months-service/internal/adapters/cache"
	"timezone-months-service/internal/adapters/timezone"
	"timezone-months-service/internal/api"
	"timezone-months-service/internal/config"
	"timezone-months-service/internal/logger"
	"timezone-months-service/internal/ports"
	"timezone-months-service/internal/services"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile     string `short:"c" long:"config"          env:"CONFIG_FILE"     description:"Path to optional YAML configuration file" default:"config.yaml"`
	Addr           string `short:"a" long:"addr"            env:"LISTEN_ADDRESS"  description:"Address to listen on"                     default:"0.0.0.0"`
	Port           int    `short:"p" long:"port"            env:"PORT"            description:"Port to listen on"                        default:"3000"`
	Resolver       string `short:"r" long:"resolver"        env:"RESOLVER"        description:"Timezone resolver backend" choice:"tzf" choice:"static" default:"tzf"`
	StaticTimezone string `long:"static-timezone"           env:"STATIC_TIMEZONE" description:"Zone returned by the static resolver"     default:"UTC"`
	CacheSize      int    `long:"cache-size"                env:"CACHE_SIZE"      description:"Resolved coordinates kept in memory (0 disables)" default:"4096"`
}

// main is the application composition root.
// It wires the timezone resolver behind its port and starts the HTTP server.
func main() {
	// .env values are visible to go-flags env lookups below.
	envErr := godotenv.Load()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()
	if envErr != nil {
		log.Debug().Msg("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	resolver, err := newResolver(opts, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize timezone resolver")
	}

	svc := services.NewMonthEndsService(resolver)
	router := api.NewRouter(svc, cfg.CORS.AllowedOrigins)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().
			Str("addr", listenAddr).
			Str("resolver", opts.Resolver).
			Str("fallback_timezone", cfg.FallbackTimezone).
			Msg("Web server started")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func newResolver(opts Options, cfg *config.Config) (ports.TimezoneResolver, error) {
	var resolver ports.TimezoneResolver

	switch opts.Resolver {
	case "static":
		if _, err := time.LoadLocation(opts.StaticTimezone); err != nil {
			return nil, fmt.Errorf("static timezone %q: %w", opts.StaticTimezone, err)
		}
		resolver = timezone.NewStaticResolver(opts.StaticTimezone)
	default:
		finder, err := timezone.LoadFinder()
		if err != nil {
			return nil, err
		}
		resolver = timezone.NewFinderResolver(finder, cfg.FallbackTimezone)
	}

	// Static answers are already free.
	if opts.CacheSize > 0 && opts.Resolver != "static" {
		resolver = cache.NewLRUTimezoneCache(resolver, opts.CacheSize)
	}

	return resolver, nil
}
