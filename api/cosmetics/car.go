package cosmetics

import (
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// Car is a Rocket Racing cosmetic: bodies, wheels, boosts and trails.
type Car struct {
	Base

	VehicleID   string
	Name        string
	Description string

	Type   *TypeInfo
	Rarity *RarityInfo
	Images *Images
	Series *SeriesInfo
	Path   *string
	// ShowcaseVideo holds the bare video id. Upstream used to deliver a full
	// URL here; ShowcaseVideoURL rebuilds it.
	ShowcaseVideo *string

	GameplayTags []string
	ShopHistory  []time.Time
}

func (*Car) Kind() Kind {
	return CarKind
}

func (*Car) sealed() {}

func (c *Car) ShowcaseVideoURL() *string {
	return showcaseVideoURL(c.ShowcaseVideo)
}

func ParseCar(object payload.Object, assets api.AssetFetcher) (*Car, error) {
	return construct(object, assets, buildCar)
}

func buildCar(base Base, object payload.Object, assets api.AssetFetcher) (*Car, error) {
	c := &Car{Base: base}
	var err error

	if c.VehicleID, err = object.String("vehicleId"); err != nil {
		return nil, err
	}

	fields, err := parseRacingFields(object, assets)
	if err != nil {
		return nil, err
	}

	c.Name = fields.name
	c.Description = fields.description
	c.Type = fields.typ
	c.Rarity = fields.rarity
	c.Images = fields.images
	c.Series = fields.series
	c.Path = fields.path
	c.ShowcaseVideo = fields.showcaseVideo
	c.GameplayTags = fields.gameplayTags
	c.ShopHistory = fields.shopHistory
	return c, nil
}

// racingFields is the payload shape cars and instruments share.
type racingFields struct {
	name          string
	description   string
	typ           *TypeInfo
	rarity        *RarityInfo
	images        *Images
	series        *SeriesInfo
	path          *string
	showcaseVideo *string
	gameplayTags  []string
	shopHistory   []time.Time
}

func parseRacingFields(object payload.Object, assets api.AssetFetcher) (racingFields, error) {
	var f racingFields
	var err error

	if f.name, err = object.String("name"); err != nil {
		return racingFields{}, err
	}
	if f.description, err = object.String("description"); err != nil {
		return racingFields{}, err
	}
	if f.typ, err = payload.Optional(object, "type", parseTypeInfo); err != nil {
		return racingFields{}, err
	}
	if f.rarity, err = payload.Optional(object, "rarity", parseRarityInfo); err != nil {
		return racingFields{}, err
	}
	if f.images, err = payload.Optional(object, "images", imagesParser(assets)); err != nil {
		return racingFields{}, err
	}
	if f.series, err = payload.Optional(object, "series", seriesParser(assets)); err != nil {
		return racingFields{}, err
	}
	if f.path, err = object.OptionalString("path"); err != nil {
		return racingFields{}, err
	}
	if f.showcaseVideo, err = object.OptionalString("showcaseVideo"); err != nil {
		return racingFields{}, err
	}
	if f.gameplayTags, err = object.Strings("gameplayTags"); err != nil {
		return racingFields{}, err
	}
	if f.shopHistory, err = object.Times("shopHistory"); err != nil {
		return racingFields{}, err
	}
	return f, nil
}
