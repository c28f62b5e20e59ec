package commands

import (
	"fmt"
	"os"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr"
)

func (bot *Bot) help(ctx *bcr.Context) (err error) {
	// help for commands
	if len(ctx.Args) > 0 {
		return ctx.Help(ctx.Args)
	}

	e := discord.Embed{
		Title: "Help",
		Description: fmt.Sprintf(`%v analyses conversations with a language model and keeps track of recently deleted and edited messages.
Most analysis commands work on a replied-to message, or on text given directly.`, ctx.Bot.Username),
		Color: bcr.ColourPurple,

		Fields: []discord.EmbedField{
			{
				Name: "Analysis commands",
				Value: "`analyse`: analyse text for logical fallacies\n" +
					"`grammar`: check text for grammar and spelling errors\n" +
					"`tldr`: summarise the conversation starting at the replied-to message\n" +
					"`solution`: suggest a neutral solution for a conversation",
			},
			{
				Name: "Snipe commands",
				Value: "`snipe [n]`: show the nth most recently deleted message in this channel\n" +
					"`editsnipe [n]`: show the nth most recently edited message, as it was before the edit",
			},
			{
				Name:  "Info commands",
				Value: "`help`: show this help\n`ping`: show the bot's latency\n`invite`: get an invite link for the bot",
			},
		},
	}

	if os.Getenv("SUPPORT_SERVER") != "" {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:  "Support",
			Value: fmt.Sprintf("Use this link to join the support server: %v", os.Getenv("SUPPORT_SERVER")),
		})
	}

	_, err = ctx.Send("", e)
	return
}

func (bot *Bot) invite(ctx *bcr.Context) (err error) {
	perms := discord.PermissionViewChannel |
		discord.PermissionReadMessageHistory |
		discord.PermissionSendMessages |
		discord.PermissionEmbedLinks |
		discord.PermissionAddReactions |
		discord.PermissionUseExternalEmojis

	link := fmt.Sprintf("https://discord.com/api/oauth2/authorize?client_id=%v&permissions=%v&scope=bot", ctx.Bot.ID, perms)

	_, err = ctx.Sendf("Use the following link to invite me to your server: <%v>", link)
	return
}
