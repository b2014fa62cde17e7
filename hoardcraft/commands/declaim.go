package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/sahilm/fuzzy"

	"github.com/hoardcraft/bot/hoardcraft"
	"github.com/hoardcraft/bot/hoardcraft/utils"
)

var Declaim = discord.SlashCommandCreate{
	Name:        "declaim",
	Description: "Release a card you own back into the wild",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:         "card",
			Description:  "Name of the card to release",
			Required:     true,
			Autocomplete: true,
		},
	},
}

func DeclaimHandler(b *hoardcraft.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		guildID := e.GuildID()
		if guildID == nil {
			return utils.EH.CreateErrorEmbed(e, "This command only works in a server")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		data := e.SlashCommandInteractionData()
		cardName := strings.TrimSpace(data.String("card"))
		if cardName == "" {
			return utils.EH.CreateErrorEmbed(e, "Please provide a card name")
		}

		released, err := b.OwnershipLedger.Declaim(ctx, e.User().ID.String(), guildID.String(), cardName)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to release the card")
		}
		if !released {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf(
				"You don't own a card named `%s`", cardName))
		}

		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf(
			"Released **%s** — it can be claimed again", utils.FormatCardName(cardName)))
	}
}

// ownedCardNames implements fuzzy.Source over the user's collection.
type ownedCardNames []string

func (n ownedCardNames) Len() int            { return len(n) }
func (n ownedCardNames) String(i int) string { return n[i] }

func DeclaimAutocomplete(b *hoardcraft.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		guildID := e.GuildID()
		if guildID == nil {
			return e.AutocompleteResult(nil)
		}

		focused := e.Data.Focused()
		if focused.Name != "card" {
			return nil
		}

		searchTerm := ""
		if focused.Value != nil {
			var s string
			if err := json.Unmarshal(focused.Value, &s); err == nil {
				searchTerm = strings.TrimSpace(s)
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		owned, err := b.OwnershipLedger.ListOwned(ctx, e.User().ID.String(), guildID.String(), "")
		if err != nil {
			return e.AutocompleteResult(nil)
		}

		names := make(ownedCardNames, 0, len(owned))
		for _, uc := range owned {
			if uc.Card != nil {
				names = append(names, uc.Card.Name)
			}
		}

		var matched []string
		if searchTerm == "" {
			matched = names
		} else {
			for _, m := range fuzzy.FindFrom(searchTerm, names) {
				matched = append(matched, names[m.Index])
			}
		}

		choices := make([]discord.AutocompleteChoice, 0, min(len(matched), 25))
		for _, name := range matched {
			if len(choices) == 25 {
				break
			}
			choices = append(choices, discord.AutocompleteChoiceString{
				Name:  utils.FormatCardName(name),
				Value: name,
			})
		}

		return e.AutocompleteResult(choices)
	}
}
