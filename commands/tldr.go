package commands

import (
	"context"
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"

	"github.com/eansengchang/fallacy-analyzer/common"
)

func (bot *Bot) tldr(ctx *bcr.Context) (err error) {
	limit, _ := ctx.Flags.GetUint("limit")

	convo, start, err := bot.conversation(ctx, limit)
	if err != nil {
		return bot.reportTargetError(ctx, err)
	}

	ctx.State.Typing(ctx.Message.ChannelID)

	summary, err := bot.AI.Summary(context.Background(), convo)
	if err != nil {
		bot.Sugar.Errorf("summary failed: %v", err)
		return bot.SendUserError(ctx, "Failed to generate a summary: %v", err)
	}

	_, err = ctx.Send("", discord.Embed{
		Title:       "Conversation Summary (TL;DR)",
		Description: common.Truncate(summary, 4096),
		Color:       common.ColourSummary,
		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("Summary of the conversation since %v's message.", start.Author.Username),
		},
	})
	return
}
