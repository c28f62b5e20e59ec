package commands

import (
	"fmt"
	"strconv"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"

	"github.com/eansengchang/fallacy-analyzer/common"
	"github.com/eansengchang/fallacy-analyzer/snipe"
)

func (bot *Bot) snipe(ctx *bcr.Context) error {
	return bot.sendSnipe(ctx, snipe.Deleted)
}

func (bot *Bot) editSnipe(ctx *bcr.Context) error {
	return bot.sendSnipe(ctx, snipe.Edited)
}

// parseSnipeIndex turns the user's 1-based argument (default 1) into a
// 0-based store index.
func parseSnipeIndex(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > snipe.Capacity {
		return 0, snipe.ErrInvalidIndex
	}

	return n - 1, nil
}

func (bot *Bot) sendSnipe(ctx *bcr.Context, kind snipe.Kind) (err error) {
	index, err := parseSnipeIndex(ctx.Args)
	if err != nil {
		return bot.SendUserError(ctx, "Give me a number between 1 and %v.", snipe.Capacity)
	}

	entry, err := bot.Snipes.Get(ctx.Message.ChannelID, kind, index)
	if err != nil {
		switch {
		case errors.Is(err, snipe.ErrInvalidIndex):
			return bot.SendUserError(ctx, "Give me a number between 1 and %v.", snipe.Capacity)
		case errors.Is(err, snipe.ErrNotFound):
			_, err = ctx.Send(fmt.Sprintf("There's no %v message on record here.", kind))
			return err
		}
		return bot.ReportError(ctx, err)
	}

	title := "Deleted message"
	colour := common.ColourError
	if kind == snipe.Edited {
		title = "Edited message"
		colour = common.ColourSummary
	}

	_, err = ctx.Send("", discord.Embed{
		Title:       title,
		Description: common.Truncate(entry.Content, 4000),
		Color:       colour,
		Fields: []discord.EmbedField{{
			Name:   "Sent by",
			Value:  fmt.Sprintf("%v\n%v", entry.UserID.Mention(), entry.Username),
			Inline: true,
		}},
		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("%v/%v on record", index+1, bot.Snipes.Count(ctx.Message.ChannelID, kind)),
		},
		Timestamp: discord.NewTimestamp(entry.CapturedAt),
	})
	return
}
