package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"

	"github.com/hoardcraft/bot/hoardcraft"
	"github.com/hoardcraft/bot/hoardcraft/config"
	"github.com/hoardcraft/bot/hoardcraft/utils"
)

var List = discord.SlashCommandCreate{
	Name:        "list",
	Description: "View the cards you own on this server",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "collection",
			Description: "Only show cards from this collection",
			Required:    false,
		},
	},
}

func ListHandler(b *hoardcraft.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		guildID := e.GuildID()
		if guildID == nil {
			return utils.EH.CreateErrorEmbed(e, "This command only works in a server")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		data := e.SlashCommandInteractionData()
		collectionFilter := data.String("collection")

		owned, err := b.OwnershipLedger.ListOwned(ctx, e.User().ID.String(), guildID.String(), collectionFilter)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to fetch your cards")
		}

		if len(owned) == 0 {
			if collectionFilter != "" {
				return utils.EH.CreateInfoEmbed(e, fmt.Sprintf(
					"You don't own any cards from `%s` yet. Try `/random`!", collectionFilter))
			}
			return utils.EH.CreateInfoEmbed(e, "You don't own any cards yet. Try `/random`!")
		}

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				startIdx := page * config.CardsPerPage
				endIdx := min(startIdx+config.CardsPerPage, len(owned))
				pageCards := owned[startIdx:endIdx]

				var description strings.Builder
				if collectionFilter != "" {
					description.WriteString(fmt.Sprintf("Filtering by: **%s**\n\n", collectionFilter))
				}

				for _, uc := range pageCards {
					if uc.Card == nil {
						continue
					}
					description.WriteString(utils.FormatCardEntry(uc.Card))
					description.WriteString("\n")
				}

				embed.
					SetTitle(fmt.Sprintf("🗃️ Your Collection (%d cards)", len(owned))).
					SetDescription(description.String()).
					SetColor(config.InfoColor)

				// First card's art fronts the page when the catalog has it.
				for _, uc := range pageCards {
					if uc.Card != nil && uc.Card.ImageURL != "" {
						embed.SetThumbnail(uc.Card.ImageURL)
						break
					}
				}
			},
			Pages:      (len(owned) + config.CardsPerPage - 1) / config.CardsPerPage,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}
