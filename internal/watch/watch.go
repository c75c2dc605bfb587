// Package watch polls /v2/cosmetics/new on a cron schedule and reports when
// the global hash moves.
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/cosmetics"
	"github.com/robfig/cron/v3"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

const checkTimeout = 2 * time.Minute

type Watcher struct {
	cosmetics cosmetics.Api
	language  api.Language
	schedule  string
	cron      *cron.Cron

	ctx     context.Context
	initial sync.WaitGroup

	mu       sync.Mutex
	lastHash string
	onChange func(*cosmetics.NewCosmetics)
}

func New(client cosmetics.Api, language api.Language, schedule string) *Watcher {
	return &Watcher{
		cosmetics: client,
		language:  language,
		schedule:  schedule,
		cron:      cron.New(),
		ctx:       context.Background(),
	}
}

// OnChange registers fn to run after every check that sees a new hash.
func (w *Watcher) OnChange(fn func(*cosmetics.NewCosmetics)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start schedules the check and runs one immediately. Checks run under ctx,
// so cancelling it aborts an in-flight fetch.
func (w *Watcher) Start(ctx context.Context) error {
	w.ctx = ctx
	_, err := w.cron.AddFunc(w.schedule, w.run)
	if err != nil {
		return eris.Wrapf(err, "invalid watch schedule %q", w.schedule)
	}

	w.cron.Start()
	log.Info().Str("schedule", w.schedule).Msg("cosmetics watcher started")

	w.initial.Add(1)
	go func() {
		defer w.initial.Done()
		w.run()
	}()
	return nil
}

// Stop waits for running checks, the initial one included, to finish.
func (w *Watcher) Stop() {
	cronCtx := w.cron.Stop()
	<-cronCtx.Done()
	w.initial.Wait()
	log.Info().Msg("cosmetics watcher stopped")
}

func (w *Watcher) run() {
	ctx, cancel := context.WithTimeout(w.ctx, checkTimeout)
	defer cancel()

	if _, err := w.Check(ctx); err != nil {
		log.Error().Err(err).Msg("new cosmetics check failed")
	}
}

// Check fetches the new cosmetics and reports whether the global hash differs
// from the one seen by the previous check. The first successful check always
// counts as a change.
func (w *Watcher) Check(ctx context.Context) (bool, error) {
	newCosmetics, err := w.cosmetics.FetchNew(ctx, w.language)
	if err != nil {
		return false, err
	}
	if newCosmetics == nil {
		log.Debug().Msg("no new cosmetics available")
		return false, nil
	}

	w.mu.Lock()
	if newCosmetics.GlobalHash == w.lastHash {
		w.mu.Unlock()
		log.Debug().Str("hash", w.lastHash).Msg("new cosmetics unchanged")
		return false, nil
	}
	w.lastHash = newCosmetics.GlobalHash
	onChange := w.onChange
	w.mu.Unlock()

	event := log.Info().
		Str("build", newCosmetics.Build).
		Str("hash", newCosmetics.GlobalHash).
		Time("last_addition", newCosmetics.GlobalLastAddition)
	for _, category := range newCosmetics.Categories() {
		event = event.Int(category.Kind.String(), len(category.Items))
	}
	event.Msg("new cosmetics")

	if onChange != nil {
		onChange(newCosmetics)
	}
	return true, nil
}
