package cosmetics

import (
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// Track is a Festival jam track.
type Track struct {
	Base

	DevName     string
	Title       string
	Artist      string
	Album       *string
	ReleaseYear int
	BPM         int
	// Duration is the track length in seconds.
	Duration   int
	Difficulty TrackDifficulty
	AlbumArt   api.Asset

	Genres       []string
	GameplayTags []string
	ShopHistory  []time.Time
}

// TrackDifficulty rates each part of a track, 0 through 6.
type TrackDifficulty struct {
	Vocals       int
	Guitar       int
	Bass         int
	PlasticBass  int
	Drums        int
	PlasticDrums int
}

func (*Track) Kind() Kind {
	return TrackKind
}

func (*Track) sealed() {}

func ParseTrack(object payload.Object, assets api.AssetFetcher) (*Track, error) {
	return construct(object, assets, buildTrack)
}

func buildTrack(base Base, object payload.Object, assets api.AssetFetcher) (*Track, error) {
	c := &Track{Base: base}
	var err error

	for key, field := range map[string]*string{
		"devName": &c.DevName,
		"title":   &c.Title,
		"artist":  &c.Artist,
	} {
		if *field, err = object.String(key); err != nil {
			return nil, err
		}
	}
	if c.Album, err = object.OptionalString("album"); err != nil {
		return nil, err
	}

	for key, field := range map[string]*int{
		"releaseYear": &c.ReleaseYear,
		"bpm":         &c.BPM,
		"duration":    &c.Duration,
	} {
		if *field, err = object.Int(key); err != nil {
			return nil, err
		}
	}

	if c.Difficulty, err = payload.Required(object, "difficulty", parseTrackDifficulty); err != nil {
		return nil, err
	}

	albumArt, err := object.String("albumArt")
	if err != nil {
		return nil, err
	}
	c.AlbumArt = api.NewAsset(assets, albumArt)

	if c.Genres, err = object.Strings("genres"); err != nil {
		return nil, err
	}
	if c.GameplayTags, err = object.Strings("gameplayTags"); err != nil {
		return nil, err
	}
	if c.ShopHistory, err = object.Times("shopHistory"); err != nil {
		return nil, err
	}
	return c, nil
}

func parseTrackDifficulty(object payload.Object) (TrackDifficulty, error) {
	var d TrackDifficulty
	for key, field := range map[string]*int{
		"vocals":       &d.Vocals,
		"guitar":       &d.Guitar,
		"bass":         &d.Bass,
		"plasticBass":  &d.PlasticBass,
		"drums":        &d.Drums,
		"plasticDrums": &d.PlasticDrums,
	} {
		value, err := object.Int(key)
		if err != nil {
			return TrackDifficulty{}, err
		}
		*field = value
	}
	return d, nil
}
