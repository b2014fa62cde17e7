package commands

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	Random,
	List,
	Shop,
	CheckDust,
	Declaim,
	ResetCooldown,
	ResetShop,
	Help,
	Version,
}
