package cosmetics

import (
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// Instrument is a Festival instrument cosmetic.
type Instrument struct {
	Base

	Name        string
	Description string

	Type          *TypeInfo
	Rarity        *RarityInfo
	Images        *Images
	Series        *SeriesInfo
	Path          *string
	ShowcaseVideo *string

	GameplayTags []string
	ShopHistory  []time.Time
}

func (*Instrument) Kind() Kind {
	return InstrumentKind
}

func (*Instrument) sealed() {}

func (c *Instrument) ShowcaseVideoURL() *string {
	return showcaseVideoURL(c.ShowcaseVideo)
}

func ParseInstrument(object payload.Object, assets api.AssetFetcher) (*Instrument, error) {
	return construct(object, assets, buildInstrument)
}

func buildInstrument(base Base, object payload.Object, assets api.AssetFetcher) (*Instrument, error) {
	fields, err := parseRacingFields(object, assets)
	if err != nil {
		return nil, err
	}

	return &Instrument{
		Base:          base,
		Name:          fields.name,
		Description:   fields.description,
		Type:          fields.typ,
		Rarity:        fields.rarity,
		Images:        fields.images,
		Series:        fields.series,
		Path:          fields.path,
		ShowcaseVideo: fields.showcaseVideo,
		GameplayTags:  fields.gameplayTags,
		ShopHistory:   fields.shopHistory,
	}, nil
}
