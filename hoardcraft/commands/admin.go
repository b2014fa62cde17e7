package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/json"

	"github.com/hoardcraft/bot/hoardcraft"
	"github.com/hoardcraft/bot/hoardcraft/utils"
)

var ResetCooldown = discord.SlashCommandCreate{
	Name:                     "resetcooldown",
	Description:              "Reset a user's draw cooldown",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionManageGuild),
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "The user whose draw cooldown to reset",
			Required:    true,
		},
	},
}

func ResetCooldownHandler(b *hoardcraft.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		guildID := e.GuildID()
		if guildID == nil {
			return utils.EH.CreateErrorEmbed(e, "This command only works in a server")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		data := e.SlashCommandInteractionData()
		targetUser := data.User("user")
		if targetUser.ID == 0 {
			return utils.EH.CreateErrorEmbed(e, "Invalid user specified")
		}

		if err := b.CooldownTracker.Reset(ctx, targetUser.ID.String(), guildID.String()); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to reset the cooldown")
		}

		slog.Info("Draw cooldown reset",
			slog.String("type", "cmd"),
			slog.String("admin_id", e.User().ID.String()),
			slog.String("target_user_id", targetUser.ID.String()),
			slog.String("guild_id", guildID.String()),
		)

		return utils.EH.CreateSuccessEmbed(e, "Draw cooldown reset for "+targetUser.Mention())
	}
}

var ResetShop = discord.SlashCommandCreate{
	Name:                     "resetshop",
	Description:              "Force the server's shop to rotate now",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionManageGuild),
}

func ResetShopHandler(b *hoardcraft.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		guildID := e.GuildID()
		if guildID == nil {
			return utils.EH.CreateErrorEmbed(e, "This command only works in a server")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cleared, err := b.ShopEngine.Reset(ctx, guildID.String())
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to reset the shop")
		}

		slog.Info("Shop reset",
			slog.String("type", "cmd"),
			slog.String("admin_id", e.User().ID.String()),
			slog.String("guild_id", guildID.String()),
			slog.Bool("had_stock", cleared),
		)

		if !cleared {
			return utils.EH.CreateInfoEmbed(e, "The shop had no stock; a fresh rotation starts on the next `/shop`")
		}
		return utils.EH.CreateSuccessEmbed(e, "Shop cleared — the next `/shop` rolls new stock")
	}
}
