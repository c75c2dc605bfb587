package playlists

import (
	"encoding/json"
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// Playlist is a game mode as the matchmaker lists it. Playlists are compared by id.
type Playlist struct {
	ID          string
	Name        *string
	SubName     *string
	Description *string
	GameType    *string
	RatingType  *string

	MinPlayers   int
	MaxPlayers   int
	MaxTeams     int
	MaxTeamSize  int
	MaxSquads    int
	MaxSquadSize int

	IsDefault                bool
	IsTournament             bool
	IsLimitedTimeMode        bool
	IsLargeTeamGame          bool
	AccumulateToProfileStats bool

	Images       *Images
	GameplayTags []string
	Path         string
	Added        time.Time
	RawData      json.RawMessage
}

type Images struct {
	Showcase    *api.Asset
	MissionIcon *api.Asset
}

func (p *Playlist) Equal(other *Playlist) bool {
	return p != nil && other != nil && p.ID == other.ID
}

func Parse(raw json.RawMessage, assets api.AssetFetcher) (*Playlist, error) {
	return payload.Decode(raw, playlistParser(assets))
}

func ParseList(raw json.RawMessage, assets api.AssetFetcher) ([]*Playlist, error) {
	return payload.DecodeList(raw, playlistParser(assets))
}

func playlistParser(assets api.AssetFetcher) func(payload.Object) (*Playlist, error) {
	return func(object payload.Object) (*Playlist, error) {
		p := &Playlist{RawData: object.Raw()}
		var err error

		if p.ID, err = object.String("id"); err != nil {
			return nil, err
		}

		for key, field := range map[string]**string{
			"name":        &p.Name,
			"subName":     &p.SubName,
			"description": &p.Description,
			"gameType":    &p.GameType,
			"ratingType":  &p.RatingType,
		} {
			if *field, err = object.OptionalString(key); err != nil {
				return nil, err
			}
		}

		for key, field := range map[string]*int{
			"minPlayers":   &p.MinPlayers,
			"maxPlayers":   &p.MaxPlayers,
			"maxTeams":     &p.MaxTeams,
			"maxTeamSize":  &p.MaxTeamSize,
			"maxSquads":    &p.MaxSquads,
			"maxSquadSize": &p.MaxSquadSize,
		} {
			if *field, err = object.Int(key); err != nil {
				return nil, err
			}
		}

		for key, field := range map[string]*bool{
			"isDefault":                &p.IsDefault,
			"isTournament":             &p.IsTournament,
			"isLimitedTimeMode":        &p.IsLimitedTimeMode,
			"isLargeTeamGame":          &p.IsLargeTeamGame,
			"accumulateToProfileStats": &p.AccumulateToProfileStats,
		} {
			if *field, err = object.OptionalBool(key); err != nil {
				return nil, err
			}
		}

		if p.Images, err = payload.Optional(object, "images", imagesParser(assets)); err != nil {
			return nil, err
		}
		if p.GameplayTags, err = object.Strings("gameplayTags"); err != nil {
			return nil, err
		}
		if p.Path, err = object.String("path"); err != nil {
			return nil, err
		}
		if p.Added, err = object.Time("added"); err != nil {
			return nil, err
		}
		return p, nil
	}
}

func imagesParser(assets api.AssetFetcher) func(payload.Object) (Images, error) {
	return func(object payload.Object) (Images, error) {
		showcase, err := object.OptionalString("showcase")
		if err != nil {
			return Images{}, err
		}
		missionIcon, err := object.OptionalString("missionIcon")
		if err != nil {
			return Images{}, err
		}
		return Images{
			Showcase:    api.OptionalAsset(assets, showcase),
			MissionIcon: api.OptionalAsset(assets, missionIcon),
		}, nil
	}
}
