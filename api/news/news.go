package news

import (
	"encoding/json"
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// News is the combined response of /v2/news. A game mode without news is nil.
type News struct {
	Br       *GameModeNews
	Stw      *GameModeNews
	Creative *GameModeNews
	RawData  json.RawMessage
}

type GameModeNews struct {
	Hash     string
	Date     time.Time
	Image    *api.Asset
	Motds    []Motd
	Messages []Message
	RawData  json.RawMessage
}

// Motd is a "message of the day" tile. Two motds are the same when their ids match.
type Motd struct {
	ID              string
	Title           string
	TabTitle        *string
	Body            string
	Image           api.Asset
	TileImage       api.Asset
	SortingPriority int
	Hidden          bool
}

func (m Motd) Equal(other Motd) bool {
	return m.ID == other.ID
}

type Message struct {
	Title   string
	Body    string
	Image   *api.Asset
	Adspace *string
}

func Parse(raw json.RawMessage, assets api.AssetFetcher) (*News, error) {
	return payload.Decode(raw, func(object payload.Object) (*News, error) {
		n := &News{RawData: object.Raw()}
		for key, field := range map[string]**GameModeNews{
			"br":       &n.Br,
			"stw":      &n.Stw,
			"creative": &n.Creative,
		} {
			value, err := payload.Optional(object, key, gameModeParser(assets))
			if err != nil {
				return nil, err
			}
			*field = value
		}
		return n, nil
	})
}

func ParseGameMode(raw json.RawMessage, assets api.AssetFetcher) (*GameModeNews, error) {
	news, err := payload.Decode(raw, gameModeParser(assets))
	if err != nil {
		return nil, err
	}
	return &news, nil
}

func gameModeParser(assets api.AssetFetcher) func(payload.Object) (GameModeNews, error) {
	return func(object payload.Object) (GameModeNews, error) {
		news := GameModeNews{RawData: object.Raw()}
		var err error

		if news.Hash, err = object.String("hash"); err != nil {
			return GameModeNews{}, err
		}
		if news.Date, err = object.Time("date"); err != nil {
			return GameModeNews{}, err
		}

		image, err := object.OptionalString("image")
		if err != nil {
			return GameModeNews{}, err
		}
		news.Image = api.OptionalAsset(assets, image)

		if news.Motds, err = payload.List(object, "motds", motdParser(assets)); err != nil {
			return GameModeNews{}, err
		}
		if news.Messages, err = payload.List(object, "messages", messageParser(assets)); err != nil {
			return GameModeNews{}, err
		}
		return news, nil
	}
}

func motdParser(assets api.AssetFetcher) func(payload.Object) (Motd, error) {
	return func(object payload.Object) (Motd, error) {
		var motd Motd
		var err error

		for key, field := range map[string]*string{
			"id":    &motd.ID,
			"title": &motd.Title,
			"body":  &motd.Body,
		} {
			if *field, err = object.String(key); err != nil {
				return Motd{}, err
			}
		}
		if motd.TabTitle, err = object.OptionalString("tabTitle"); err != nil {
			return Motd{}, err
		}

		for key, field := range map[string]*api.Asset{
			"image":     &motd.Image,
			"tileImage": &motd.TileImage,
		} {
			url, err := object.String(key)
			if err != nil {
				return Motd{}, err
			}
			*field = api.NewAsset(assets, url)
		}

		if motd.SortingPriority, err = object.Int("sortingPriority"); err != nil {
			return Motd{}, err
		}
		if motd.Hidden, err = object.OptionalBool("hidden"); err != nil {
			return Motd{}, err
		}
		return motd, nil
	}
}

func messageParser(assets api.AssetFetcher) func(payload.Object) (Message, error) {
	return func(object payload.Object) (Message, error) {
		var message Message
		var err error

		if message.Title, err = object.String("title"); err != nil {
			return Message{}, err
		}
		if message.Body, err = object.String("body"); err != nil {
			return Message{}, err
		}

		image, err := object.OptionalString("image")
		if err != nil {
			return Message{}, err
		}
		message.Image = api.OptionalAsset(assets, image)

		if message.Adspace, err = object.OptionalString("adspace"); err != nil {
			return Message{}, err
		}
		return message, nil
	}
}
