package commands

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/hoardcraft/bot/hoardcraft"
	"github.com/hoardcraft/bot/hoardcraft/config"
)

var Help = discord.SlashCommandCreate{
	Name:        "help",
	Description: "📖 Display all available commands",
}

type helpCategory struct {
	Name     string
	Emoji    string
	Commands []discord.SlashCommandCreate
}

// helpCategories groups the registered commands for the help embed. Kept
// next to the Commands registry so a new command gets slotted in here too.
func helpCategories() []helpCategory {
	return []helpCategory{
		{Name: "Cards", Emoji: "🎴", Commands: []discord.SlashCommandCreate{Random, List, Declaim}},
		{Name: "Economy", Emoji: "💰", Commands: []discord.SlashCommandCreate{Shop, CheckDust}},
		{Name: "Admin", Emoji: "🛠️", Commands: []discord.SlashCommandCreate{ResetCooldown, ResetShop}},
		{Name: "System", Emoji: "⚙️", Commands: []discord.SlashCommandCreate{Help, Version}},
	}
}

func HelpHandler(b *hoardcraft.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		embed := discord.NewEmbedBuilder().
			SetTitle("📖 HoardCraft - Command Help").
			SetDescription("Draw random cards, claim the ones you like, and craft the rest from dust.").
			SetColor(config.InfoColor)

		total := 0
		for _, cat := range helpCategories() {
			total += len(cat.Commands)

			lines := make([]string, 0, len(cat.Commands))
			for _, cmd := range cat.Commands {
				lines = append(lines, fmt.Sprintf("`/%s` • %s", cmd.Name, cmd.Description))
			}
			embed.AddField(fmt.Sprintf("%s %s", cat.Emoji, cat.Name), strings.Join(lines, "\n"), false)
		}

		embed.SetFooter(fmt.Sprintf("Total: %d commands", total), "")

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed.Build()},
		})
	}
}
