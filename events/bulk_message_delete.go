package events

import (
	"sort"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/eansengchang/fallacy-analyzer/snipe"
)

func (bot *Bot) bulkMessageDelete(m *gateway.MessageDeleteBulkEvent) {
	if !m.GuildID.IsValid() {
		return
	}

	// record oldest first so the most recent message ends up as snipe 1
	ids := make([]discord.MessageID, len(m.IDs))
	copy(ids, m.IDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		v, err := bot.Messages.Get(id.String())
		if err != nil {
			continue
		}

		c := v.(cachedMessage)

		bot.Snipes.Record(m.ChannelID, snipe.Deleted, snipe.Entry{
			UserID:     c.UserID,
			Username:   c.Username,
			Content:    c.Content,
			CapturedAt: time.Now().UTC(),
		})

		bot.Messages.Remove(id.String())
	}
}
