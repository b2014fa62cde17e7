package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"

	"github.com/hoardcraft/bot/hoardcraft"
	"github.com/hoardcraft/bot/hoardcraft/catalog"
	"github.com/hoardcraft/bot/hoardcraft/commands"
	"github.com/hoardcraft/bot/hoardcraft/database"
	"github.com/hoardcraft/bot/hoardcraft/handlers"
	"github.com/hoardcraft/bot/hoardcraft/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting HoardCraft",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	catalogPath := flag.String("seed", "", "path to a card catalog file to seed on startup")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := hoardcraft.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	logger.LogSystem("Configuration loaded successfully")

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()))
		os.Exit(-1)
	}
	slog.Info("Database schema initialized successfully")

	b := hoardcraft.New(*cfg, version, commit)
	b.SetupEconomy(db)

	if *catalogPath != "" {
		file, err := catalog.Load(*catalogPath)
		if err != nil {
			slog.Error("Failed to load card catalog",
				slog.String("path", *catalogPath),
				slog.Any("error", err))
			os.Exit(-1)
		}
		seeder := catalog.NewSeeder(b.CollectionRepository, b.CardRepository)
		if _, err := seeder.Seed(ctx, file); err != nil {
			logger.LogError("Failed to seed card catalog", err)
			os.Exit(-1)
		}
	}

	h := handler.New()

	// Economy commands
	h.Command("/random", handlers.WrapWithLogging("random", commands.RandomHandler(b)))
	h.Component("/draw/{card}/{owner}", handlers.WrapComponentWithLogging("draw-claim", commands.DrawButtonHandler(b)))
	h.Command("/list", handlers.WrapWithLogging("list", commands.ListHandler(b)))
	h.Command("/checkdust", handlers.WrapWithLogging("checkdust", commands.CheckDustHandler(b)))
	h.Command("/declaim", handlers.WrapWithLogging("declaim", commands.DeclaimHandler(b)))
	h.Autocomplete("/declaim", commands.DeclaimAutocomplete(b))

	// Shop commands
	h.Command("/shop", handlers.WrapWithLogging("shop", commands.ShopHandler(b)))
	h.Component("/shop/craft/{card}", handlers.WrapComponentWithLogging("shop-craft", commands.ShopButtonHandler(b)))

	// Admin commands
	h.Command("/resetcooldown", handlers.WrapWithLogging("resetcooldown", commands.ResetCooldownHandler(b)))
	h.Command("/resetshop", handlers.WrapWithLogging("resetshop", commands.ResetShopHandler(b)))

	// System commands
	h.Command("/help", handlers.WrapWithLogging("help", commands.HelpHandler(b)))
	h.Command("/version", commands.VersionHandler(b))

	if err = b.SetupBot(h,
		bot.NewListenerFunc(b.OnReady),
		bot.NewListenerFunc(b.OnGuildReady),
	); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err),
		)
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds),
		)
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err),
			)
		}
	}

	gwCtx, gwCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer gwCancel()
	if err = b.Client.OpenGateway(gwCtx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err),
		)
		os.Exit(-1)
	}

	logger.LogSystem("Bot is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	logger.LogSystem("Shutting down bot...")
}
