// Package events contains the gateway event handlers that feed the snipe
// store. Delete and update events don't carry the old message content, so
// message create events are cached for a while to have something to snipe.
package events

import (
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/eansengchang/fallacy-analyzer/bot"
)

// messages older than this can no longer be sniped
const messageTTL = 6 * time.Hour

// Bot ...
type Bot struct {
	*bot.Bot

	Messages *ttlcache.Cache
}

// cachedMessage is the most recent known state of a message.
type cachedMessage struct {
	UserID   discord.UserID
	Username string
	Content  string
}

// Init ...
func Init(b *bot.Bot) *Bot {
	ev := &Bot{
		Bot:      b,
		Messages: ttlcache.NewCache(),
	}
	ev.Messages.SetTTL(messageTTL)
	ev.Messages.SetCacheSizeLimit(100_000)

	ev.Router.AddHandler(ev.messageCreate)
	ev.Router.AddHandler(ev.messageUpdate)
	ev.Router.AddHandler(ev.messageDelete)
	ev.Router.AddHandler(ev.bulkMessageDelete)

	return ev
}
