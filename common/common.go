// Package common contains helpers shared between commands and event handlers.
package common

import (
	"github.com/diamondburned/arikawa/v3/discord"
)

// Embed colours, matching the command each is used for.
const (
	ColourSuccess  discord.Color = 0x2ECC71
	ColourError    discord.Color = 0xE74C3C
	ColourAnalysis discord.Color = 0xE67E22
	ColourGrammar  discord.Color = 0x3498DB
	ColourSummary  discord.Color = 0x9B59B6
	ColourSolution discord.Color = 0x1ABC9C
)

// Truncate cuts s down to at most max runes, ending in "..." if anything was
// cut off.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
