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
	"github.com/hoardcraft/bot/hoardcraft/config"
	"github.com/hoardcraft/bot/hoardcraft/economy/shop"
	"github.com/hoardcraft/bot/hoardcraft/utils"
)

var Shop = discord.SlashCommandCreate{
	Name:        "shop",
	Description: "🛒 Browse this server's rotating card shop",
}

func ShopHandler(b *hoardcraft.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		guildID := e.GuildID()
		if guildID == nil {
			return utils.EH.CreateErrorEmbed(e, "This command only works in a server")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		listings, err := b.ShopEngine.Inventory(ctx, guildID.String())
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load the shop")
		}

		if len(listings) == 0 {
			return utils.EH.CreateInfoEmbed(e, "The shop is empty right now")
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds:     []discord.Embed{createShopEmbed(listings)},
			Components: []discord.ContainerComponent{createShopComponents(listings)},
		})
	}
}

func createShopEmbed(listings []shop.Listing) discord.Embed {
	var description strings.Builder
	description.WriteString("Craft cards with dust from duplicate draws.\nStock rotates every hour.\n\n")

	for i, l := range listings {
		description.WriteString(fmt.Sprintf("`%d.` %s %s — **%s dust**\n",
			i+1,
			utils.RarityLabel(l.Card.Rarity),
			utils.FormatCardName(l.Card.Name),
			utils.FormatNumber(l.Cost)))
	}

	return discord.NewEmbedBuilder().
		SetTitle("🛒 Card Shop").
		SetDescription(description.String()).
		SetColor(config.InfoColor).
		Build()
}

func createShopComponents(listings []shop.Listing) discord.ContainerComponent {
	buttons := make([]discord.InteractiveComponent, 0, len(listings))
	for i, l := range listings {
		buttons = append(buttons, discord.NewPrimaryButton(
			fmt.Sprintf("Craft #%d", i+1),
			fmt.Sprintf("/shop/craft/%d", l.Card.ID)))
	}
	return discord.NewActionRow(buttons...)
}

// ShopButtonHandler crafts a shop card for the clicking user. The card must
// still be in the current rotation; the price comes from the live listing,
// never from the button.
func ShopButtonHandler(b *hoardcraft.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		data, ok := e.Data.(discord.ButtonInteractionData)
		if !ok {
			return fmt.Errorf("invalid interaction type")
		}

		guildID := e.GuildID()
		if guildID == nil {
			return utils.EH.CreateEphemeralError(e, "This only works in a server")
		}

		cardIDStr := strings.TrimPrefix(data.CustomID(), "/shop/craft/")
		cardID, err := strconv.ParseInt(cardIDStr, 10, 64)
		if err != nil {
			return utils.EH.CreateEphemeralError(e, "Invalid shop button")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		listings, err := b.ShopEngine.Inventory(ctx, guildID.String())
		if err != nil {
			return utils.EH.CreateEphemeralError(e, "Failed to load the shop")
		}

		var listing *shop.Listing
		for i := range listings {
			if listings[i].Card.ID == cardID {
				listing = &listings[i]
				break
			}
		}
		if listing == nil {
			return utils.EH.CreateEphemeralError(e, "That card has rotated out of the shop")
		}

		userID := e.User().ID.String()
		crafted, err := b.ShopEngine.Craft(ctx, userID, guildID.String(), listing.Card.ID, listing.Cost)
		if err != nil {
			return utils.EH.CreateEphemeralError(e, "Failed to craft the card")
		}

		if !crafted {
			owns, err := b.OwnershipLedger.Owns(ctx, userID, guildID.String(), listing.Card.ID)
			if err == nil && owns {
				return utils.EH.CreateEphemeralError(e, fmt.Sprintf(
					"You already own %s", utils.FormatCardName(listing.Card.Name)))
			}
			return utils.EH.CreateEphemeralError(e, fmt.Sprintf(
				"Not enough dust: %s costs %s",
				utils.FormatCardName(listing.Card.Name),
				utils.FormatNumber(listing.Cost)))
		}

		return utils.EH.CreateEphemeralSuccess(e, fmt.Sprintf(
			"Crafted %s for %s dust",
			utils.FormatCardName(listing.Card.Name),
			utils.FormatNumber(listing.Cost)))
	}
}
