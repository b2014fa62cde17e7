package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/hoardcraft/bot/hoardcraft"
	"github.com/hoardcraft/bot/hoardcraft/database/models"
	"github.com/hoardcraft/bot/hoardcraft/economy/drop"
	"github.com/hoardcraft/bot/hoardcraft/utils"
)

var Random = discord.SlashCommandCreate{
	Name:        "random",
	Description: "🎲 Draw a random card from the catalog!",
}

func RandomHandler(b *hoardcraft.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		guildID := e.GuildID()
		if guildID == nil {
			return utils.EH.CreateErrorEmbed(e, "This command only works in a server")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result, err := b.DropEngine.Draw(ctx, e.User().ID.String(), guildID.String())
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to draw a card")
		}

		switch result.Outcome {
		case drop.OutcomeDenied:
			return utils.EH.CreateCooldownEmbed(e, fmt.Sprintf(
				"You're out of draws. Try again in %s",
				utils.FormatDuration(result.RetryAfter)))

		case drop.OutcomeEmpty:
			return utils.EH.CreateInfoEmbed(e, "The card catalog is empty")

		case drop.OutcomeConverted:
			return e.CreateMessage(discord.MessageCreate{
				Embeds: []discord.Embed{
					discord.NewEmbedBuilder().
						SetTitle(utils.FormatCardName(result.Card.Name)).
						SetDescriptionf("You already own this card.\n✨ Converted to **%s dust** (balance credit)",
							utils.FormatNumber(result.Dust)).
						SetColor(utils.RarityColor(result.Card.Rarity)).
						Build(),
				},
			})

		default: // drop.OutcomeGranted
			return e.CreateMessage(discord.MessageCreate{
				Embeds:     []discord.Embed{createDrawEmbed(result.Card)},
				Components: []discord.ContainerComponent{createDrawComponents(result.Card.ID, e.User().ID.String())},
			})
		}
	}
}

func createDrawEmbed(card *models.Card) discord.Embed {
	colName := ""
	if card.Collection != nil {
		colName = utils.FormatCollectionName(card.Collection.Name)
	}
	return discord.NewEmbedBuilder().
		SetTitle(utils.FormatCardName(card.Name)).
		SetDescription(fmt.Sprintf("```md\n"+
			"# Card Information\n"+
			"* Collection: %s\n"+
			"* Rarity: %s\n"+
			"* ID: #%d\n"+
			"```\n"+
			"> Claim this card to add it to your collection!",
			colName,
			strings.Trim(utils.RarityLabel(card.Rarity), "`"),
			card.ID)).
		SetColor(utils.RarityColor(card.Rarity)).
		Build()
}

func createDrawComponents(cardID int64, userID string) discord.ContainerComponent {
	return discord.NewActionRow(
		discord.NewPrimaryButton("✨ Claim", fmt.Sprintf("/draw/%d/%s", cardID, userID)),
	)
}

// DrawButtonHandler finalizes a draw: only the drawing user may claim, and
// claiming is idempotent against double clicks.
func DrawButtonHandler(b *hoardcraft.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		data, ok := e.Data.(discord.ButtonInteractionData)
		if !ok {
			return fmt.Errorf("invalid interaction type")
		}

		guildID := e.GuildID()
		if guildID == nil {
			return utils.EH.CreateEphemeralError(e, "This only works in a server")
		}

		parts := strings.Split(strings.TrimPrefix(data.CustomID(), "/draw/"), "/")
		if len(parts) != 2 {
			return utils.EH.CreateEphemeralError(e, "Invalid claim button")
		}

		cardID, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return utils.EH.CreateEphemeralError(e, "Invalid card ID")
		}

		if e.User().ID.String() != parts[1] {
			return utils.EH.CreateEphemeralError(e, "This draw belongs to another user")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		claimed, err := b.OwnershipLedger.Claim(ctx, e.User().ID.String(), guildID.String(), cardID)
		if err != nil {
			return utils.EH.CreateEphemeralError(e, "Failed to claim the card")
		}
		if !claimed {
			return utils.EH.CreateEphemeralError(e, "You already own this card")
		}

		return e.UpdateMessage(discord.MessageUpdate{
			Components: &[]discord.ContainerComponent{
				discord.NewActionRow(
					discord.NewPrimaryButton("✅ Claimed", "claimed").WithDisabled(true),
				),
			},
		})
	}
}
