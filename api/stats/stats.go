package stats

import (
	"encoding/json"
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// PlayerStats is a player's Battle Royale record. Stats is nil when the
// account has no matches in the requested time window.
type PlayerStats struct {
	Account    Account
	BattlePass *BattlePass
	Image      *api.Asset
	Stats      *InputStats
	RawData    json.RawMessage
}

type Account struct {
	ID   string
	Name string
}

type BattlePass struct {
	Level    int
	Progress int
}

// InputStats splits stats by input device. Any device may be nil.
type InputStats struct {
	All           *ModeStats
	KeyboardMouse *ModeStats
	Gamepad       *ModeStats
	Touch         *ModeStats
}

type ModeStats struct {
	Overall *GameModeStats
	Solo    *GameModeStats
	Duo     *GameModeStats
	Trio    *GameModeStats
	Squad   *GameModeStats
	Ltm     *GameModeStats
}

// GameModeStats holds the counters for one mode. Top placements only exist
// for the modes that track them, so they are nil rather than zero elsewhere.
type GameModeStats struct {
	Score         int
	ScorePerMin   float64
	ScorePerMatch float64
	Wins          int

	Top3  *int
	Top5  *int
	Top6  *int
	Top10 *int
	Top12 *int
	Top25 *int

	Kills           int
	KillsPerMin     float64
	KillsPerMatch   float64
	Deaths          int
	KD              float64
	Matches         int
	WinRate         float64
	MinutesPlayed   int
	PlayersOutlived int
	LastModified    time.Time
}

func Parse(raw json.RawMessage, assets api.AssetFetcher) (*PlayerStats, error) {
	return payload.Decode(raw, func(object payload.Object) (*PlayerStats, error) {
		s := &PlayerStats{RawData: object.Raw()}
		var err error

		if s.Account, err = payload.Required(object, "account", parseAccount); err != nil {
			return nil, err
		}
		if s.BattlePass, err = payload.Optional(object, "battlePass", parseBattlePass); err != nil {
			return nil, err
		}

		image, err := object.OptionalString("image")
		if err != nil {
			return nil, err
		}
		s.Image = api.OptionalAsset(assets, image)

		if s.Stats, err = payload.Optional(object, "stats", parseInputStats); err != nil {
			return nil, err
		}
		return s, nil
	})
}

func parseAccount(object payload.Object) (Account, error) {
	var account Account
	var err error

	if account.ID, err = object.String("id"); err != nil {
		return Account{}, err
	}
	if account.Name, err = object.String("name"); err != nil {
		return Account{}, err
	}
	return account, nil
}

func parseBattlePass(object payload.Object) (BattlePass, error) {
	var pass BattlePass
	var err error

	if pass.Level, err = object.Int("level"); err != nil {
		return BattlePass{}, err
	}
	if pass.Progress, err = object.Int("progress"); err != nil {
		return BattlePass{}, err
	}
	return pass, nil
}

func parseInputStats(object payload.Object) (InputStats, error) {
	var stats InputStats
	for key, field := range map[string]**ModeStats{
		"all":           &stats.All,
		"keyboardMouse": &stats.KeyboardMouse,
		"gamepad":       &stats.Gamepad,
		"touch":         &stats.Touch,
	} {
		value, err := payload.Optional(object, key, parseModeStats)
		if err != nil {
			return InputStats{}, err
		}
		*field = value
	}
	return stats, nil
}

func parseModeStats(object payload.Object) (ModeStats, error) {
	var stats ModeStats
	for key, field := range map[string]**GameModeStats{
		"overall": &stats.Overall,
		"solo":    &stats.Solo,
		"duo":     &stats.Duo,
		"trio":    &stats.Trio,
		"squad":   &stats.Squad,
		"ltm":     &stats.Ltm,
	} {
		value, err := payload.Optional(object, key, parseGameModeStats)
		if err != nil {
			return ModeStats{}, err
		}
		*field = value
	}
	return stats, nil
}

func parseGameModeStats(object payload.Object) (GameModeStats, error) {
	var stats GameModeStats

	for key, field := range map[string]*int{
		"score":           &stats.Score,
		"wins":            &stats.Wins,
		"kills":           &stats.Kills,
		"deaths":          &stats.Deaths,
		"matches":         &stats.Matches,
		"minutesPlayed":   &stats.MinutesPlayed,
		"playersOutlived": &stats.PlayersOutlived,
	} {
		value, err := object.Int(key)
		if err != nil {
			return GameModeStats{}, err
		}
		*field = value
	}

	for key, field := range map[string]*float64{
		"scorePerMin":   &stats.ScorePerMin,
		"scorePerMatch": &stats.ScorePerMatch,
		"killsPerMin":   &stats.KillsPerMin,
		"killsPerMatch": &stats.KillsPerMatch,
		"kd":            &stats.KD,
		"winRate":       &stats.WinRate,
	} {
		value, err := object.Float(key)
		if err != nil {
			return GameModeStats{}, err
		}
		*field = value
	}

	for key, field := range map[string]**int{
		"top3":  &stats.Top3,
		"top5":  &stats.Top5,
		"top6":  &stats.Top6,
		"top10": &stats.Top10,
		"top12": &stats.Top12,
		"top25": &stats.Top25,
	} {
		value, err := object.OptionalInt(key)
		if err != nil {
			return GameModeStats{}, err
		}
		*field = value
	}

	lastModified, err := object.Time("lastModified")
	if err != nil {
		return GameModeStats{}, err
	}
	stats.LastModified = lastModified
	return stats, nil
}
