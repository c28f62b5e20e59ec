package commands

import (
	"sort"
	"strings"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
)

const defaultConversationLimit = 500

const (
	errNoTarget          = errors.Sentinel("no target text")
	errNoReply           = errors.Sentinel("not a reply")
	errEmptyConversation = errors.Sentinel("conversation has no text")
)

// targetText returns the text a command should operate on: the content of the
// replied-to message if the command is a reply, the command's arguments
// otherwise.
func (bot *Bot) targetText(ctx *bcr.Context) (string, discord.User, error) {
	if ref := ctx.Message.Reference; ref != nil && ref.MessageID.IsValid() {
		msg, err := ctx.State.Message(ctx.Message.ChannelID, ref.MessageID)
		if err != nil {
			return "", discord.User{}, errors.Wrap(err, "fetching replied-to message")
		}
		return msg.Content, msg.Author, nil
	}

	if ctx.RawArgs != "" {
		return ctx.RawArgs, ctx.Author, nil
	}

	return "", discord.User{}, errNoTarget
}

// conversation collects the conversation starting at the replied-to message
// into "username: content" lines, oldest first.
func (bot *Bot) conversation(ctx *bcr.Context, limit uint) (string, *discord.Message, error) {
	ref := ctx.Message.Reference
	if ref == nil || !ref.MessageID.IsValid() {
		return "", nil, errNoReply
	}

	start, err := ctx.State.Message(ctx.Message.ChannelID, ref.MessageID)
	if err != nil {
		return "", nil, errors.Wrap(err, "fetching start message")
	}

	msgs, err := ctx.State.MessagesAfter(ctx.Message.ChannelID, start.ID, limit)
	if err != nil {
		return "", nil, errors.Wrap(err, "fetching channel history")
	}

	convo := joinConversation(append([]discord.Message{*start}, msgs...), ctx.Message.ID)
	if convo == "" {
		return "", nil, errEmptyConversation
	}

	return convo, start, nil
}

// joinConversation renders messages as "username: content" lines in
// chronological order, skipping empty messages and the message with ID skip.
func joinConversation(msgs []discord.Message, skip discord.MessageID) string {
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].ID < msgs[j].ID })

	var lines []string
	for _, m := range msgs {
		if m.ID == skip || m.Content == "" {
			continue
		}
		lines = append(lines, m.Author.Username+": "+m.Content)
	}

	return strings.Join(lines, "\n")
}

// reportTargetError turns the errors from targetText/conversation into
// user-facing messages.
func (bot *Bot) reportTargetError(ctx *bcr.Context, err error) error {
	switch {
	case errors.Is(err, errNoTarget):
		return bot.SendUserError(ctx, "Please reply to a message or provide text directly.")
	case errors.Is(err, errNoReply):
		return bot.SendUserError(ctx, "You must reply to a message to use this command.")
	case errors.Is(err, errEmptyConversation):
		return bot.SendUserError(ctx, "There is no text in this conversation to analyse.")
	default:
		return bot.SendUserError(ctx, "Could not fetch the replied-to message.")
	}
}
