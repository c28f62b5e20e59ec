package commands

import (
	"context"
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"

	"github.com/eansengchang/fallacy-analyzer/common"
)

func (bot *Bot) analyse(ctx *bcr.Context) (err error) {
	text, author, err := bot.targetText(ctx)
	if err != nil {
		return bot.reportTargetError(ctx, err)
	}

	ctx.State.Typing(ctx.Message.ChannelID)

	fallacies, err := bot.AI.Fallacies(context.Background(), text)
	if err != nil {
		bot.Sugar.Errorf("fallacy analysis failed: %v", err)
		return bot.SendUserError(ctx, "The analysis failed: %v", err)
	}

	if len(fallacies) == 0 {
		_, err = ctx.Send("", discord.Embed{
			Title:       "Analysis Complete",
			Description: "✅ No logical fallacies were detected.",
			Color:       common.ColourSuccess,
		})
		return
	}

	noun := "fallacies"
	if len(fallacies) == 1 {
		noun = "fallacy"
	}

	e := discord.Embed{
		Title:       "Logical Fallacy Analysis",
		Description: fmt.Sprintf("Found %v potential %v:", len(fallacies), noun),
		Color:       common.ColourAnalysis,
		Footer: &discord.EmbedFooter{
			Text: "Analysed for " + author.Username,
		},
	}

	for i, f := range fallacies {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name: fmt.Sprintf("%v. %v", i+1, f.Name),
			Value: common.Truncate(
				fmt.Sprintf("**Explanation:** %v\n**Quote:** *%q*", f.Explanation, f.Quote), 1024),
		})
	}

	_, err = ctx.Send("", e)
	return
}
