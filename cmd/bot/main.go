package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/giveaway-bot/internal/common/clock"
	"github.com/KirkDiggler/giveaway-bot/internal/common/logger"
	"github.com/KirkDiggler/giveaway-bot/internal/common/uuid"
	"github.com/KirkDiggler/giveaway-bot/internal/config"
	"github.com/KirkDiggler/giveaway-bot/internal/draw"
	"github.com/KirkDiggler/giveaway-bot/internal/endtime"
	"github.com/KirkDiggler/giveaway-bot/internal/handlers/discord"
	"github.com/KirkDiggler/giveaway-bot/internal/handlers/health"
	"github.com/KirkDiggler/giveaway-bot/internal/platform/database"
	giveawayRepo "github.com/KirkDiggler/giveaway-bot/internal/repositories/giveaway"
	itemRepo "github.com/KirkDiggler/giveaway-bot/internal/repositories/item"
	draftRepo "github.com/KirkDiggler/giveaway-bot/internal/repositories/item_draft"
	lockRepo "github.com/KirkDiggler/giveaway-bot/internal/repositories/lock"
	giveawayService "github.com/KirkDiggler/giveaway-bot/internal/services/giveaway"
	itemService "github.com/KirkDiggler/giveaway-bot/internal/services/item"
	"github.com/KirkDiggler/giveaway-bot/internal/services/sweeper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		logger.Init("giveaway-bot", false)
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init("giveaway-bot", cfg.Debug)
	logger.Info().
		Str("database_driver", cfg.Database.Driver).
		Str("region_offset", cfg.Giveaway.RegionOffset.String()).
		Int("admins", len(cfg.Discord.AdminIDs)).
		Msg("Starting giveaway bot")

	if len(cfg.Discord.AdminIDs) == 0 {
		logger.Warn().Msg("BOT_ADMIN_IDS is empty; nobody can run commands")
	}

	// Initialize database
	db, err := database.Open(&database.Config{
		Driver: cfg.Database.Driver,
		URL:    cfg.Database.URL,
		Debug:  cfg.Debug,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error().Err(err).Msg("Failed to close database")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Initialize repositories
	items, err := itemRepo.NewGorm(&itemRepo.Config{DB: db})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create item repository")
	}

	giveaways, err := giveawayRepo.NewGorm(&giveawayRepo.Config{DB: db})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create giveaway repository")
	}

	drafts, err := draftRepo.NewRedis(&draftRepo.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create item draft repository")
	}

	// A nil locker makes every replica sweep; finalization stays conditional in the store
	var locks lockRepo.Repository
	if cfg.Giveaway.SweepLockEnabled {
		redisLocks, err := lockRepo.NewRedis(&lockRepo.Config{
			RedisClient: redisClient,
			UUID:        uuid.New(),
		})
		if err != nil {
			logger.Warn().Err(err).Msg("Sweep lock unavailable, sweeping without it")
		} else {
			locks = redisLocks
		}
	} else {
		logger.Info().Msg("Sweep lock disabled")
	}

	// Initialize services
	systemClock := clock.New()
	parser := endtime.NewParser(cfg.Giveaway.RegionOffset)

	giveawaySvc, err := giveawayService.New(&giveawayService.Config{
		GiveawayRepo: giveaways,
		ItemRepo:     items,
		Selector:     draw.New(&draw.Config{}),
		Clock:        systemClock,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create giveaway service")
	}

	itemSvc, err := itemService.New(&itemService.Config{
		PromptTTL: cfg.Giveaway.PromptTTL,
		ItemRepo:  items,
		DraftRepo: drafts,
		Clock:     systemClock,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create item service")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:           cfg.Discord.Token,
		CommandPrefix:   cfg.Discord.CommandPrefix,
		AdminIDs:        cfg.Discord.AdminIDs,
		GiveawayService: giveawaySvc,
		ItemService:     itemSvc,
		TimeParser:      parser,
		Clock:           systemClock,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start Discord bot")
	}

	// Initialize expiry sweeper
	sweep, err := sweeper.New(&sweeper.Config{
		GiveawayService: giveawaySvc,
		Publisher:       bot,
		Locker:          locks,
		LockTTL:         cfg.Giveaway.SweepLockTTL,
		Schedule:        cfg.Giveaway.SweepSchedule,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create sweeper")
	}

	if err := sweep.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start sweeper")
	}

	// Initialize liveness server
	healthServer, err := health.New(&health.Config{
		Addr: cfg.ListenAddr(),
		Checks: []health.Check{
			{Name: "database", Func: func(ctx context.Context) error { return database.Ping(ctx, db) }},
			{Name: "redis", Func: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }},
		},
		Clock: systemClock,
		Debug: cfg.Debug,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create health server")
	}
	healthServer.Start()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info().Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := healthServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to stop health server")
	}

	// Let an in-flight sweep finish before the Discord session closes
	sweep.Stop()

	if err := bot.Stop(); err != nil {
		logger.Error().Err(err).Msg("Error stopping bot")
	}

	logger.Info().Msg("Bot has been shut down")
}
