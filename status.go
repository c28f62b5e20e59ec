package main

import (
	"context"
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
)

// botStatus builds the status line shown in the bot's presence. A negative
// guild count means the count is unknown and is left out.
func botStatus(prefix string, guilds int) string {
	status := fmt.Sprintf("%vhelp", prefix)
	if guilds >= 0 {
		status += fmt.Sprintf(" | in %v servers", guilds)
	}
	return status
}

func statusLoop(s *state.State, prefix string) {
	time.Sleep(5 * time.Second)
	for {
		count := -1
		if guilds, err := s.Guilds(); err == nil {
			count = len(guilds)
		}

		s.Gateway().Send(context.Background(), &gateway.UpdatePresenceCommand{
			Status: discord.OnlineStatus,
			Activities: []discord.Activity{{
				Name: botStatus(prefix, count),
				Type: discord.GameActivity,
			}},
		})

		time.Sleep(5 * time.Minute)
	}
}
