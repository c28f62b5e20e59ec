package events

import (
	"time"

	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/eansengchang/fallacy-analyzer/snipe"
)

func (bot *Bot) messageUpdate(m *gateway.MessageUpdateEvent) {
	if !m.GuildID.IsValid() || !m.Author.ID.IsValid() || m.Author.Bot {
		return
	}

	v, err := bot.Messages.Get(m.ID.String())
	if err != nil {
		// we never saw this message; cache the current content so the next
		// edit can be sniped
		if m.Content != "" {
			bot.Messages.Set(m.ID.String(), cachedMessage{
				UserID:   m.Author.ID,
				Username: m.Author.Username + "#" + m.Author.Discriminator,
				Content:  m.Content,
			})
		}
		return
	}

	prev := v.(cachedMessage)

	// embed-only updates (link previews and the like) don't change content
	if m.Content == "" || m.Content == prev.Content {
		return
	}

	bot.Snipes.Record(m.ChannelID, snipe.Edited, snipe.Entry{
		UserID:     prev.UserID,
		Username:   prev.Username,
		Content:    prev.Content,
		CapturedAt: time.Now().UTC(),
	})

	prev.Content = m.Content
	bot.Messages.Set(m.ID.String(), prev)
}
