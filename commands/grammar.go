package commands

import (
	"context"
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"

	"github.com/eansengchang/fallacy-analyzer/common"
)

func (bot *Bot) grammar(ctx *bcr.Context) (err error) {
	text, author, err := bot.targetText(ctx)
	if err != nil {
		return bot.reportTargetError(ctx, err)
	}

	ctx.State.Typing(ctx.Message.ChannelID)

	grammarErrors, err := bot.AI.GrammarErrors(context.Background(), text)
	if err != nil {
		bot.Sugar.Errorf("grammar check failed: %v", err)
		return bot.SendUserError(ctx, "The grammar check failed: %v", err)
	}

	if len(grammarErrors) == 0 {
		_, err = ctx.Send("", discord.Embed{
			Title:       "Grammar Check Complete",
			Description: "✅ No grammatical errors were detected.",
			Color:       common.ColourSuccess,
		})
		return
	}

	noun := "errors"
	if len(grammarErrors) == 1 {
		noun = "error"
	}

	e := discord.Embed{
		Title:       "Grammar Analysis",
		Description: fmt.Sprintf("Found %v potential %v:", len(grammarErrors), noun),
		Color:       common.ColourGrammar,
		Footer: &discord.EmbedFooter{
			Text: "Checked for " + author.Username,
		},
	}

	for i, g := range grammarErrors {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name: fmt.Sprintf("%v. %v", i+1, g.Type),
			Value: common.Truncate(
				fmt.Sprintf("**Explanation:** %v\n**Correction:** `%v`\n**Original:** *%q*",
					g.Explanation, g.Correction, g.Quote), 1024),
		})
	}

	_, err = ctx.Send("", e)
	return
}
