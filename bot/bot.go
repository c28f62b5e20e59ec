// Package bot contains the state shared between commands and event handlers.
package bot

import (
	"time"

	"github.com/starshine-sys/bcr"
	"go.uber.org/zap"

	"github.com/eansengchang/fallacy-analyzer/ai"
	"github.com/eansengchang/fallacy-analyzer/snipe"
)

// Bot ...
type Bot struct {
	*bcr.Router

	AI     *ai.Client
	Snipes *snipe.Store
	Sugar  *zap.SugaredLogger

	Start time.Time
}

// New creates a new Bot. The snipe store is owned here and lives as long as
// the process does.
func New(r *bcr.Router, aiClient *ai.Client, sugar *zap.SugaredLogger) *Bot {
	return &Bot{
		Router: r,
		AI:     aiClient,
		Snipes: snipe.NewStore(),
		Sugar:  sugar.Named("bot"),
		Start:  time.Now().UTC(),
	}
}
