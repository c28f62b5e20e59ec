package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/utils/ws"
	"github.com/getsentry/sentry-go"
	_ "github.com/joho/godotenv/autoload"
	"github.com/starshine-sys/bcr"

	"github.com/eansengchang/fallacy-analyzer/ai"
	"github.com/eansengchang/fallacy-analyzer/bot"
	"github.com/eansengchang/fallacy-analyzer/commands"
	"github.com/eansengchang/fallacy-analyzer/events"
	"github.com/eansengchang/fallacy-analyzer/logsetup"
)

func main() {
	zap, err := logsetup.SetupLogging()
	if err != nil {
		panic(err)
	}
	sugar := zap.Sugar()

	ws.WSDebug = sugar.Named("ws").Debug
	ws.WSError = func(err error) {
		sugar.Named("ws").Error(err)
	}

	// set up logger for this section
	log := sugar.Named("init")

	token := os.Getenv("TOKEN")
	aiKey := os.Getenv("OPENAI_KEY")
	if token == "" || aiKey == "" {
		log.Fatal("TOKEN and OPENAI_KEY must both be set")
	}

	intents := gateway.IntentGuilds | gateway.IntentGuildMessages | gateway.IntentDirectMessages

	prefixes := []string{"e ", "E "}
	if os.Getenv("PREFIXES") != "" {
		prefixes = strings.Split(os.Getenv("PREFIXES"), ",")
	}

	sf, _ := discord.ParseSnowflake(os.Getenv("OWNER"))

	// create a new router
	r, err := bcr.NewWithIntents(token, []discord.UserID{discord.UserID(sf)}, prefixes, intents)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}
	r.EmbedColor = bcr.ColourPurple

	// sentry, if enabled
	if os.Getenv("SENTRY_URL") != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn: os.Getenv("SENTRY_URL"),
		})
		if err != nil {
			log.Fatalf("Error initialising Sentry: %v", err)
		}
	}

	b := bot.New(r, ai.New(aiKey, os.Getenv("OPENAI_BASE_URL"), os.Getenv("OPENAI_MODEL")), sugar)

	// actually load commands + events
	commands.Init(b)
	events.Init(b)

	// connect to discord
	if err := r.ShardManager.Open(context.Background()); err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}

	// Defer this to make sure that things are always cleanly shutdown even in the event of a crash
	defer func() {
		r.ShardManager.Close()
		log.Info("Disconnected from Discord.")
	}()

	log.Info("Connected to Discord. Press Ctrl-C or send an interrupt signal to stop.")

	s, _ := r.StateFromGuildID(0)
	botUser, _ := s.Me()
	log.Infof("User: %v#%v (%v)", botUser.Username, botUser.Discriminator, botUser.ID)
	r.Bot = botUser
	// normally creating a Context would do this, but as we set the user above, that doesn't work
	r.Prefixes = append(r.Prefixes, "<@"+r.Bot.ID.String()+">", "<@!"+r.Bot.ID.String()+">")

	go statusLoop(s, prefixes[0])

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt, os.Kill)
	<-sc

	log.Infof("Interrupt signal received. Shutting down...")
}
