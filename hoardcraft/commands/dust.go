package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/hoardcraft/bot/hoardcraft"
	"github.com/hoardcraft/bot/hoardcraft/utils"
)

var CheckDust = discord.SlashCommandCreate{
	Name:        "checkdust",
	Description: "💰 Check your dust balance on this server",
}

func CheckDustHandler(b *hoardcraft.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		guildID := e.GuildID()
		if guildID == nil {
			return utils.EH.CreateErrorEmbed(e, "This command only works in a server")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		balance, err := b.DustRepository.GetBalance(ctx, e.User().ID.String(), guildID.String())
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to fetch your dust balance")
		}

		return utils.EH.CreateInfoEmbed(e, fmt.Sprintf(
			"💰 You have **%s dust**", utils.FormatNumber(balance)))
	}
}
