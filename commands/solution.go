package commands

import (
	"context"
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"

	"github.com/eansengchang/fallacy-analyzer/common"
)

func (bot *Bot) solution(ctx *bcr.Context) (err error) {
	limit, _ := ctx.Flags.GetUint("limit")

	convo, start, err := bot.conversation(ctx, limit)
	if err != nil {
		return bot.reportTargetError(ctx, err)
	}

	ctx.State.Typing(ctx.Message.ChannelID)

	solution, err := bot.AI.Solution(context.Background(), convo)
	if err != nil {
		bot.Sugar.Errorf("solution failed: %v", err)
		return bot.SendUserError(ctx, "Failed to come up with a solution: %v", err)
	}

	_, err = ctx.Send("", discord.Embed{
		Title:       "A Potential Solution",
		Description: common.Truncate(solution, 4096),
		Color:       common.ColourSolution,
		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("Solution for the conversation since %v's message.", start.Author.Username),
		},
	})
	return
}
