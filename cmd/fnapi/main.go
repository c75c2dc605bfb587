package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/escrow-tf/fortnite"
	"github.com/escrow-tf/fortnite/api/aes"
	"github.com/escrow-tf/fortnite/api/cosmetics"
	"github.com/escrow-tf/fortnite/api/shop"
	"github.com/escrow-tf/fortnite/api/stats"
	"github.com/escrow-tf/fortnite/internal/config"
	"github.com/escrow-tf/fortnite/internal/watch"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const usage = `usage: fnapi <command> [flags]

commands:
  aes             print the current AES keys
  new             summarise the latest cosmetics drop
  shop            list the item shop entries
  cosmetic <id>   show one battle royale cosmetic
  stats <name>    show a player's overall stats
  map             list the points of interest
  news            list the battle royale news
  overview        fetch keys, shop and new cosmetics together
  watch           poll new cosmetics on FNAPI_WATCH_SCHEDULE
`

var errUsage = errors.New("invalid usage")

type command func(ctx context.Context, client *fortnite.Client, cfg *config.Config, args []string) error

var commands = map[string]command{
	"aes":      runAes,
	"new":      runNew,
	"shop":     runShop,
	"cosmetic": runCosmetic,
	"stats":    runStats,
	"map":      runMap,
	"news":     runNews,
	"overview": runOverview,
	"watch":    runWatch,
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup happens before exit.
func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		return 1
	}
	level, err := cfg.CLI.Level()
	if err != nil {
		log.Error().Err(err).Msg("failed to configure logging")
		return 1
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	responseCache, closer, err := cfg.Cache.Open(ctx)
	if err != nil {
		log.Error().Err(err).Str("cache", cfg.Cache.Type).Msg("failed to open response cache")
		return 1
	}
	if closer != nil {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Warn().Err(err).Msg("couldn't close response cache")
			}
		}()
	}

	client := fortnite.NewClient(cfg.TransportOptions(responseCache))

	err = cmd(ctx, client, cfg, args[1:])
	if errors.Is(err, errUsage) {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}
	if err != nil {
		log.Error().Err(err).Str("command", name).Msg("command failed")
		return 1
	}
	return 0
}

func runAes(ctx context.Context, client *fortnite.Client, _ *config.Config, args []string) error {
	flags := flag.NewFlagSet("aes", flag.ContinueOnError)
	format := flags.String("format", string(aes.HexKeyFormat), "key format (hex or base64)")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}

	keys, err := client.Aes.Fetch(ctx, aes.KeyFormat(*format))
	if err != nil {
		return err
	}
	if keys == nil {
		log.Warn().Msg("no aes keys available")
		return nil
	}

	event := log.Info().Str("build", keys.Build).Str("main_key", keys.MainKey).Int("dynamic_keys", len(keys.DynamicKeys))
	if keys.Version != nil {
		event = event.Str("version", *keys.Version)
	}
	event.Msg("aes")
	for _, key := range keys.DynamicKeys {
		log.Info().Str("pak", key.PakFilename).Str("guid", key.PakGuid).Str("key", key.Key).Msg("dynamic key")
	}
	return nil
}

func runNew(ctx context.Context, client *fortnite.Client, cfg *config.Config, _ []string) error {
	newCosmetics, err := client.Cosmetics.FetchNew(ctx, cfg.Api.Language)
	if err != nil {
		return err
	}
	if newCosmetics == nil {
		log.Warn().Msg("no new cosmetics available")
		return nil
	}

	log.Info().
		Str("build", newCosmetics.Build).
		Str("previous_build", newCosmetics.PreviousBuild).
		Str("hash", newCosmetics.GlobalHash).
		Time("last_addition", newCosmetics.GlobalLastAddition).
		Msg("new cosmetics")
	for _, category := range newCosmetics.Categories() {
		event := log.Info().Stringer("kind", category.Kind).Int("items", len(category.Items))
		if category.Hash != nil {
			event = event.Str("hash", *category.Hash)
		}
		if category.LastAddition != nil {
			event = event.Time("last_addition", *category.LastAddition)
		}
		event.Msg("category")
	}
	return nil
}

func runShop(ctx context.Context, client *fortnite.Client, cfg *config.Config, _ []string) error {
	itemShop, err := client.Shop.Fetch(ctx, cfg.Api.Language)
	if err != nil {
		return err
	}
	if itemShop == nil {
		log.Warn().Msg("item shop unavailable")
		return nil
	}

	log.Info().Str("hash", itemShop.Hash).Time("date", itemShop.Date).Int("entries", len(itemShop.Entries)).Msg("shop")
	for _, entry := range itemShop.Entries {
		event := log.Info().
			Str("offer_id", entry.OfferID).
			Int("final_price", entry.FinalPrice).
			Int("regular_price", entry.RegularPrice).
			Int("cosmetics", len(entry.Cosmetics()))
		if entry.Bundle != nil {
			event = event.Str("bundle", entry.Bundle.Name)
		}
		event.Msg("entry")
	}
	return nil
}

func runCosmetic(ctx context.Context, client *fortnite.Client, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return errUsage
	}

	br, err := client.Cosmetics.FetchBrByID(ctx, args[0], cfg.Api.Language)
	if err != nil {
		return err
	}
	if br == nil {
		log.Warn().Str("id", args[0]).Msg("cosmetic not found")
		return nil
	}

	event := log.Info().Str("id", br.ID).Str("name", br.Name).Str("description", br.Description).Time("added", br.Added)
	if br.Type != nil {
		event = event.Str("type", br.Type.DisplayValue)
	}
	if br.Rarity != nil {
		event = event.Str("rarity", br.Rarity.DisplayValue)
	}
	if video := br.ShowcaseVideoURL(); video != nil {
		event = event.Str("showcase_video", *video)
	}
	event.Int("shop_appearances", len(br.ShopHistory)).Msg("cosmetic")
	return nil
}

func runStats(ctx context.Context, client *fortnite.Client, _ *config.Config, args []string) error {
	flags := flag.NewFlagSet("stats", flag.ContinueOnError)
	window := flags.String("window", string(stats.LifetimeTimeWindow), "time window (lifetime or season)")
	if err := flags.Parse(args); err != nil || flags.NArg() != 1 {
		return errUsage
	}

	playerStats, err := client.Stats.FetchByName(ctx, flags.Arg(0), stats.Options{TimeWindow: stats.TimeWindow(*window)})
	if err != nil {
		return err
	}
	if playerStats == nil {
		log.Warn().Str("name", flags.Arg(0)).Msg("no stats for player")
		return nil
	}

	event := log.Info().Str("account_id", playerStats.Account.ID).Str("name", playerStats.Account.Name)
	if playerStats.BattlePass != nil {
		event = event.Int("battle_pass_level", playerStats.BattlePass.Level)
	}
	if playerStats.Stats != nil && playerStats.Stats.All != nil && playerStats.Stats.All.Overall != nil {
		overall := playerStats.Stats.All.Overall
		event = event.Int("wins", overall.Wins).Int("kills", overall.Kills).Int("matches", overall.Matches).Float64("kd", overall.KD)
	}
	event.Msg("stats")
	return nil
}

func runMap(ctx context.Context, client *fortnite.Client, cfg *config.Config, _ []string) error {
	gameMap, err := client.Map.Fetch(ctx, cfg.Api.Language)
	if err != nil {
		return err
	}
	if gameMap == nil {
		log.Warn().Msg("map unavailable")
		return nil
	}

	log.Info().Str("blank", gameMap.Images.Blank.URL).Str("pois", gameMap.Images.POIs.URL).Msg("map")
	for _, poi := range gameMap.POIs {
		log.Info().Str("id", poi.ID).Str("name", poi.Name).
			Float64("x", poi.Location.X).Float64("y", poi.Location.Y).Float64("z", poi.Location.Z).
			Msg("poi")
	}
	return nil
}

func runNews(ctx context.Context, client *fortnite.Client, cfg *config.Config, _ []string) error {
	allNews, err := client.News.Fetch(ctx, cfg.Api.Language)
	if err != nil {
		return err
	}
	if allNews == nil || allNews.Br == nil {
		log.Warn().Msg("no battle royale news")
		return nil
	}

	log.Info().Str("hash", allNews.Br.Hash).Time("date", allNews.Br.Date).Msg("news")
	for _, motd := range allNews.Br.Motds {
		log.Info().Str("id", motd.ID).Str("title", motd.Title).Bool("hidden", motd.Hidden).Msg("motd")
	}
	for _, message := range allNews.Br.Messages {
		log.Info().Str("title", message.Title).Msg("message")
	}
	return nil
}

func runOverview(ctx context.Context, client *fortnite.Client, cfg *config.Config, _ []string) error {
	var (
		keys         *aes.Aes
		itemShop     *shop.Shop
		newCosmetics *cosmetics.NewCosmetics
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		keys, err = client.Aes.Fetch(groupCtx, aes.HexKeyFormat)
		return err
	})
	group.Go(func() (err error) {
		itemShop, err = client.Shop.Fetch(groupCtx, cfg.Api.Language)
		return err
	})
	group.Go(func() (err error) {
		newCosmetics, err = client.Cosmetics.FetchNew(groupCtx, cfg.Api.Language)
		return err
	})
	if err := group.Wait(); err != nil {
		return err
	}

	event := log.Info()
	if keys != nil {
		event = event.Str("build", keys.Build)
	}
	if itemShop != nil {
		event = event.Int("shop_entries", len(itemShop.Entries))
	}
	if newCosmetics != nil {
		count := 0
		for _, category := range newCosmetics.Categories() {
			count += len(category.Items)
		}
		event = event.Str("new_hash", newCosmetics.GlobalHash).Int("new_cosmetics", count)
	}
	event.Msg("overview")
	return nil
}

func runWatch(ctx context.Context, client *fortnite.Client, cfg *config.Config, _ []string) error {
	watcher := watch.New(client.Cosmetics, cfg.Api.Language, cfg.CLI.WatchSchedule)
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	<-ctx.Done()
	log.Info().Msg("shutting down watcher")
	return nil
}
