package hoardcraft

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"

	"github.com/hoardcraft/bot/hoardcraft/database"
	"github.com/hoardcraft/bot/hoardcraft/database/repositories"
	"github.com/hoardcraft/bot/hoardcraft/economy/cooldown"
	"github.com/hoardcraft/bot/hoardcraft/economy/drop"
	"github.com/hoardcraft/bot/hoardcraft/economy/ownership"
	"github.com/hoardcraft/bot/hoardcraft/economy/shop"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string
	DB        *database.DB

	CardRepository       repositories.CardRepository
	CollectionRepository repositories.CollectionRepository
	UserRepository       repositories.UserRepository
	UserCardRepository   repositories.UserCardRepository
	DustRepository       repositories.DustRepository

	CooldownTracker *cooldown.Tracker
	DropEngine      *drop.Engine
	OwnershipLedger *ownership.Ledger
	ShopEngine      *shop.Engine
}

// SetupEconomy wires repositories and engines on top of an opened database.
func (b *Bot) SetupEconomy(db *database.DB) {
	b.DB = db
	bunDB := db.BunDB()

	b.CardRepository = repositories.NewCardRepository(bunDB)
	b.CollectionRepository = repositories.NewCollectionRepository(bunDB)
	b.UserRepository = repositories.NewUserRepository(bunDB)
	b.UserCardRepository = repositories.NewUserCardRepository(bunDB)
	b.DustRepository = repositories.NewDustRepository(bunDB)
	requestRepo := repositories.NewRequestRepository(bunDB)
	shopRepo := repositories.NewShopRepository(bunDB)

	b.CooldownTracker = cooldown.NewTracker(requestRepo)
	b.DropEngine = drop.NewEngine(b.CooldownTracker, b.CardRepository, b.UserCardRepository, b.DustRepository, b.UserRepository)
	b.OwnershipLedger = ownership.NewLedger(b.UserCardRepository, b.CardRepository, b.UserRepository)
	b.ShopEngine = shop.NewEngine(shopRepo, b.CardRepository, b.UserRepository)
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("HoardCraft is now ready",
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithListeningActivity("/random"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}

// OnGuildReady lazily registers guilds so per-server rows exist before any
// command touches them.
func (b *Bot) OnGuildReady(e *events.GuildReady) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := b.UserRepository.EnsureServer(ctx, e.Guild.ID.String()); err != nil {
		slog.Error("Failed to register guild",
			slog.String("guild_id", e.Guild.ID.String()),
			slog.Any("error", err))
	}
}
