package handlers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
	"github.com/hoardcraft/bot/hoardcraft/logger"
)

const handlerTimeout = 10 * time.Second

// guildIDString renders an optional guild reference for log output.
// Interactions from direct messages carry no guild.
func guildIDString(id *snowflake.ID) string {
	if id == nil {
		return "dm"
	}
	return id.String()
}

// WrapWithLogging wraps a command handler with start/finish logging and a
// hard timeout so a stuck handler can't hold the interaction forever.
func WrapWithLogging(name string, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()

		slog.Info("Command started",
			slog.String("type", "cmd"),
			slog.String("name", name),
			slog.String("user_id", e.User().ID.String()),
			slog.String("user_name", e.User().Username),
			slog.String("guild_id", guildIDString(e.GuildID())),
			slog.String("channel_id", e.ChannelID().String()),
		)

		done := make(chan error, 1)
		go func() {
			done <- h(e)
		}()

		select {
		case err := <-done:
			logger.LogCommand(name, time.Since(start), err,
				slog.String("user_id", e.User().ID.String()),
				slog.String("user_name", e.User().Username),
			)
			return err

		case <-time.After(handlerTimeout):
			slog.Error("Command timed out",
				slog.String("type", "cmd"),
				slog.String("name", name),
				slog.String("user_id", e.User().ID.String()),
				slog.String("user_name", e.User().Username),
				slog.String("status", "timeout"),
				slog.Duration("timeout", handlerTimeout),
			)
			return fmt.Errorf("command timed out after %s", handlerTimeout)
		}
	}
}

// WrapComponentWithLogging is the component-interaction counterpart of
// WrapWithLogging.
func WrapComponentWithLogging(name string, h handler.ComponentHandler) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		start := time.Now()

		slog.Info("Component interaction started",
			slog.String("type", "cmd"),
			slog.String("name", name),
			slog.String("user_id", e.User().ID.String()),
			slog.String("user_name", e.User().Username),
			slog.String("guild_id", guildIDString(e.GuildID())),
			slog.String("channel_id", e.ChannelID().String()),
		)

		done := make(chan error, 1)
		go func() {
			done <- h(e)
		}()

		select {
		case err := <-done:
			logger.LogCommand(name, time.Since(start), err,
				slog.String("user_id", e.User().ID.String()),
				slog.String("user_name", e.User().Username),
				slog.String("interaction", "component"),
			)
			return err

		case <-time.After(handlerTimeout):
			slog.Error("Component interaction timed out",
				slog.String("type", "cmd"),
				slog.String("name", name),
				slog.String("user_id", e.User().ID.String()),
				slog.String("user_name", e.User().Username),
				slog.String("status", "timeout"),
				slog.Duration("timeout", handlerTimeout),
			)
			return fmt.Errorf("component interaction timed out after %s", handlerTimeout)
		}
	}
}
