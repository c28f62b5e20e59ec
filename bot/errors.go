package bot

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/starshine-sys/bcr"

	"github.com/eansengchang/fallacy-analyzer/common"
)

// ReportError reports an internal error to the user (and to Sentry, if
// enabled), with an error code they can quote back.
func (bot *Bot) ReportError(ctx *bcr.Context, err error) error {
	bot.Sugar.Errorf("error in command %v: %v", ctx.Command, err)

	var id string
	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub = hub.Clone()
		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetUser(sentry.User{ID: ctx.Author.ID.String()})
			scope.SetTag("command", ctx.Command)
		})

		if eventID := hub.CaptureException(err); eventID != nil {
			id = string(*eventID)
		}
	}
	if id == "" {
		id = uuid.New().String()
	}

	_, sendErr := ctx.Send("", discord.Embed{
		Title:       "An unexpected error occurred",
		Description: "Sorry, something went wrong. The details have been logged for the developer.",
		Color:       common.ColourError,
		Footer: &discord.EmbedFooter{
			Text: "Error code: " + id,
		},
		Timestamp: discord.NowTimestamp(),
	})
	return sendErr
}

// SendUserError tells the user their input was wrong. These are not logged or
// reported, only shown.
func (bot *Bot) SendUserError(ctx *bcr.Context, tmpl string, args ...any) error {
	_, err := ctx.Send("", discord.Embed{
		Title:       "Error",
		Description: "⚠️ " + fmt.Sprintf(tmpl, args...),
		Color:       common.ColourError,
	})
	return err
}
