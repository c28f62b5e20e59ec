// Package commands registers the bot's prefix commands.
package commands

import (
	"github.com/spf13/pflag"
	"github.com/starshine-sys/bcr"

	"github.com/eansengchang/fallacy-analyzer/bot"
)

// Bot ...
type Bot struct {
	*bot.Bot
}

// Init ...
func Init(b *bot.Bot) {
	cmds := &Bot{Bot: b}

	b.AddCommand(&bcr.Command{
		Name:    "analyse",
		Aliases: []string{"analyze"},
		Summary: "Analyse text for logical fallacies.",
		Usage:   "[text]",

		Command: cmds.analyse,
	})

	b.AddCommand(&bcr.Command{
		Name:    "grammar",
		Summary: "Check text for grammar and spelling errors.",
		Usage:   "[text]",

		Command: cmds.grammar,
	})

	b.AddCommand(&bcr.Command{
		Name:        "tldr",
		Aliases:     []string{"summarise", "summarize"},
		Summary:     "Summarise a conversation.",
		Description: "Summarise the conversation starting at the replied-to message.\nUse `--limit` to cap how many messages are read.",
		Flags: func(fs *pflag.FlagSet) *pflag.FlagSet {
			fs.UintP("limit", "l", defaultConversationLimit, "Maximum number of messages to read.")
			return fs
		},

		Command: cmds.tldr,
	})

	b.AddCommand(&bcr.Command{
		Name:        "solution",
		Summary:     "Suggest a neutral solution for a conversation.",
		Description: "Suggest a neutral solution for the conversation starting at the replied-to message.",
		Flags: func(fs *pflag.FlagSet) *pflag.FlagSet {
			fs.UintP("limit", "l", defaultConversationLimit, "Maximum number of messages to read.")
			return fs
		},

		Command: cmds.solution,
	})

	b.AddCommand(&bcr.Command{
		Name:    "snipe",
		Summary: "Show the most recently deleted message in this channel.",
		Usage:   "[n]",

		Command: cmds.snipe,
	})

	b.AddCommand(&bcr.Command{
		Name:    "editsnipe",
		Summary: "Show the most recently edited message in this channel, as it was before the edit.",
		Usage:   "[n]",

		Command: cmds.editSnipe,
	})

	b.AddCommand(&bcr.Command{
		Name:    "ping",
		Summary: "Show the bot's latency and some statistics.",

		Command: cmds.ping,
	})

	b.AddCommand(&bcr.Command{
		Name:    "help",
		Summary: "Show information about the bot, or a specific command.",
		Usage:   "[command]",

		Command: cmds.help,
	})

	b.AddCommand(&bcr.Command{
		Name:    "invite",
		Summary: "Get an invite link for the bot.",

		Command: cmds.invite,
	})
}
