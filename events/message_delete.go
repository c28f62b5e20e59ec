package events

import (
	"time"

	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/eansengchang/fallacy-analyzer/snipe"
)

func (bot *Bot) messageDelete(m *gateway.MessageDeleteEvent) {
	if !m.GuildID.IsValid() {
		return
	}

	v, err := bot.Messages.Get(m.ID.String())
	if err != nil {
		bot.Sugar.Debugf("deleted message %v was not cached, nothing to snipe", m.ID)
		return
	}

	c := v.(cachedMessage)

	bot.Snipes.Record(m.ChannelID, snipe.Deleted, snipe.Entry{
		UserID:     c.UserID,
		Username:   c.Username,
		Content:    c.Content,
		CapturedAt: time.Now().UTC(),
	})

	bot.Messages.Remove(m.ID.String())
}
