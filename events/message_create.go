package events

import (
	"github.com/diamondburned/arikawa/v3/gateway"
)

func (bot *Bot) messageCreate(m *gateway.MessageCreateEvent) {
	if !m.GuildID.IsValid() || m.Author.Bot {
		return
	}

	// nothing to snipe in messages without text content
	if m.Content == "" {
		return
	}

	bot.Messages.Set(m.ID.String(), cachedMessage{
		UserID:   m.Author.ID,
		Username: m.Author.Username + "#" + m.Author.Discriminator,
		Content:  m.Content,
	})
}
