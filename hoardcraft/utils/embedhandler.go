package utils

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/hoardcraft/bot/hoardcraft/config"
)

// ResponseHandler provides standardized response methods for commands and components
type ResponseHandler struct{}

var EH = &ResponseHandler{}

// CreateErrorEmbed creates a standard error embed for command events
func (h *ResponseHandler) CreateErrorEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: "❌ " + message,
			Color:       config.ErrorColor,
		}},
	})
}

// CreateSuccessEmbed creates a standard success embed for command events
func (h *ResponseHandler) CreateSuccessEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: message,
			Color:       config.SuccessColor,
		}},
	})
}

// CreateInfoEmbed creates a standard info embed for command events
func (h *ResponseHandler) CreateInfoEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: message,
			Color:       config.InfoColor,
		}},
	})
}

// CreateCooldownEmbed creates a warning embed for rate-limited actions
func (h *ResponseHandler) CreateCooldownEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: "⏰ " + message,
			Color:       config.WarningColor,
		}},
	})
}

// CreateEphemeralError creates an ephemeral error message for component events
func (h *ResponseHandler) CreateEphemeralError(event *handler.ComponentEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Content: "❌ " + message,
		Flags:   discord.MessageFlagEphemeral,
	})
}

// CreateEphemeralSuccess creates an ephemeral success message for component events
func (h *ResponseHandler) CreateEphemeralSuccess(event *handler.ComponentEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Content: "✅ " + message,
		Flags:   discord.MessageFlagEphemeral,
	})
}

// HandleError provides centralized error handling for different event types
func (h *ResponseHandler) HandleError(event interface{}, message string) error {
	switch e := event.(type) {
	case *handler.CommandEvent:
		return h.CreateErrorEmbed(e, message)
	case *handler.ComponentEvent:
		return h.CreateEphemeralError(e, message)
	default:
		return fmt.Errorf("unsupported event type for error handling")
	}
}
