package events

import (
	"fmt"
	"testing"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eansengchang/fallacy-analyzer/bot"
	"github.com/eansengchang/fallacy-analyzer/snipe"
)

const (
	testGuild   = discord.GuildID(1)
	testChannel = discord.ChannelID(2)
)

func testBot() *Bot {
	ev := &Bot{
		Bot: &bot.Bot{
			Snipes: snipe.NewStore(),
			Sugar:  zap.NewNop().Sugar(),
		},
		Messages: ttlcache.NewCache(),
	}
	ev.Messages.SetTTL(messageTTL)
	return ev
}

func createEvent(id discord.MessageID, content string) *gateway.MessageCreateEvent {
	return &gateway.MessageCreateEvent{
		Message: discord.Message{
			ID:        id,
			ChannelID: testChannel,
			GuildID:   testGuild,
			Author:    discord.User{ID: 100, Username: "testuser", Discriminator: "0001"},
			Content:   content,
		},
	}
}

func updateEvent(id discord.MessageID, content string) *gateway.MessageUpdateEvent {
	return &gateway.MessageUpdateEvent{
		Message: discord.Message{
			ID:        id,
			ChannelID: testChannel,
			GuildID:   testGuild,
			Author:    discord.User{ID: 100, Username: "testuser", Discriminator: "0001"},
			Content:   content,
		},
	}
}

func TestDeleteRecordsSnipe(t *testing.T) {
	ev := testBot()

	ev.messageCreate(createEvent(10, "soon to be deleted"))
	ev.messageDelete(&gateway.MessageDeleteEvent{ID: 10, ChannelID: testChannel, GuildID: testGuild})

	e, err := ev.Snipes.Get(testChannel, snipe.Deleted, 0)
	require.NoError(t, err)
	assert.Equal(t, "soon to be deleted", e.Content)
	assert.Equal(t, "testuser#0001", e.Username)

	// deleting removes the message from the cache: a second delete event for
	// the same ID records nothing
	ev.messageDelete(&gateway.MessageDeleteEvent{ID: 10, ChannelID: testChannel, GuildID: testGuild})
	assert.Equal(t, 1, ev.Snipes.Count(testChannel, snipe.Deleted))
}

func TestUncachedDeleteIsIgnored(t *testing.T) {
	ev := testBot()

	ev.messageDelete(&gateway.MessageDeleteEvent{ID: 10, ChannelID: testChannel, GuildID: testGuild})

	assert.Equal(t, 0, ev.Snipes.Count(testChannel, snipe.Deleted))
}

func TestEditRecordsPreEditContent(t *testing.T) {
	ev := testBot()

	ev.messageCreate(createEvent(10, "first draft"))
	ev.messageUpdate(updateEvent(10, "second draft"))

	e, err := ev.Snipes.Get(testChannel, snipe.Edited, 0)
	require.NoError(t, err)
	assert.Equal(t, "first draft", e.Content)

	// each edit records the state before that edit
	ev.messageUpdate(updateEvent(10, "third draft"))

	e, err = ev.Snipes.Get(testChannel, snipe.Edited, 0)
	require.NoError(t, err)
	assert.Equal(t, "second draft", e.Content)
	assert.Equal(t, 2, ev.Snipes.Count(testChannel, snipe.Edited))

	// and a delete after edits snipes the latest content
	ev.messageDelete(&gateway.MessageDeleteEvent{ID: 10, ChannelID: testChannel, GuildID: testGuild})

	e, err = ev.Snipes.Get(testChannel, snipe.Deleted, 0)
	require.NoError(t, err)
	assert.Equal(t, "third draft", e.Content)
}

func TestEmbedOnlyUpdateIsIgnored(t *testing.T) {
	ev := testBot()

	ev.messageCreate(createEvent(10, "https://example.com"))

	// same content again, as for a link preview fetch
	ev.messageUpdate(updateEvent(10, "https://example.com"))
	ev.messageUpdate(updateEvent(10, ""))

	assert.Equal(t, 0, ev.Snipes.Count(testChannel, snipe.Edited))
}

func TestUncachedUpdatePopulatesCache(t *testing.T) {
	ev := testBot()

	// update for a message sent before the bot started
	ev.messageUpdate(updateEvent(10, "now cached"))
	assert.Equal(t, 0, ev.Snipes.Count(testChannel, snipe.Edited))

	// the next edit can be sniped
	ev.messageUpdate(updateEvent(10, "edited again"))

	e, err := ev.Snipes.Get(testChannel, snipe.Edited, 0)
	require.NoError(t, err)
	assert.Equal(t, "now cached", e.Content)
}

func TestBotAndDMMessagesAreIgnored(t *testing.T) {
	ev := testBot()

	botMsg := createEvent(10, "bleep bloop")
	botMsg.Author.Bot = true
	ev.messageCreate(botMsg)

	dmMsg := createEvent(11, "dm")
	dmMsg.GuildID = 0
	ev.messageCreate(dmMsg)

	_, err := ev.Messages.Get("10")
	assert.Equal(t, ttlcache.ErrNotFound, err)
	_, err = ev.Messages.Get("11")
	assert.Equal(t, ttlcache.ErrNotFound, err)
}

func TestBulkDeleteRecordsNewestFirst(t *testing.T) {
	ev := testBot()

	for i := 1; i <= 3; i++ {
		ev.messageCreate(createEvent(discord.MessageID(i), fmt.Sprintf("message %d", i)))
	}

	// IDs arrive in no particular order; 99 was never cached
	ev.bulkMessageDelete(&gateway.MessageDeleteBulkEvent{
		IDs:       []discord.MessageID{2, 99, 3, 1},
		ChannelID: testChannel,
		GuildID:   testGuild,
	})

	require.Equal(t, 3, ev.Snipes.Count(testChannel, snipe.Deleted))

	e, err := ev.Snipes.Get(testChannel, snipe.Deleted, 0)
	require.NoError(t, err)
	assert.Equal(t, "message 3", e.Content)

	e, err = ev.Snipes.Get(testChannel, snipe.Deleted, 2)
	require.NoError(t, err)
	assert.Equal(t, "message 1", e.Content)
}
