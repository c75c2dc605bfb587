package cosmetics

import (
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// Lego is the LEGO style of a br cosmetic. CosmeticID names that cosmetic.
type Lego struct {
	Base

	CosmeticID       string
	SoundLibraryTags []string
	Images           *SimpleImages
	Path             *string
}

func (*Lego) Kind() Kind {
	return LegoKind
}

func (*Lego) sealed() {}

func ParseLego(object payload.Object, assets api.AssetFetcher) (*Lego, error) {
	return construct(object, assets, buildLego)
}

func buildLego(base Base, object payload.Object, assets api.AssetFetcher) (*Lego, error) {
	c := &Lego{Base: base}
	var err error

	if c.CosmeticID, err = object.String("cosmeticId"); err != nil {
		return nil, err
	}
	if c.SoundLibraryTags, err = object.Strings("soundLibraryTags"); err != nil {
		return nil, err
	}
	if c.Images, err = payload.Optional(object, "images", simpleImagesParser(assets)); err != nil {
		return nil, err
	}
	if c.Path, err = object.OptionalString("path"); err != nil {
		return nil, err
	}
	return c, nil
}

// LegoKit is a LEGO build kit.
type LegoKit struct {
	Base

	Name   string
	Type   *TypeInfo
	Series *SeriesInfo
	Images *SimpleImages
	Path   *string

	GameplayTags []string
	ShopHistory  []time.Time
}

func (*LegoKit) Kind() Kind {
	return LegoKitKind
}

func (*LegoKit) sealed() {}

func ParseLegoKit(object payload.Object, assets api.AssetFetcher) (*LegoKit, error) {
	return construct(object, assets, buildLegoKit)
}

func buildLegoKit(base Base, object payload.Object, assets api.AssetFetcher) (*LegoKit, error) {
	c := &LegoKit{Base: base}
	var err error

	if c.Name, err = object.String("name"); err != nil {
		return nil, err
	}
	if c.Type, err = payload.Optional(object, "type", parseTypeInfo); err != nil {
		return nil, err
	}
	if c.Series, err = payload.Optional(object, "series", seriesParser(assets)); err != nil {
		return nil, err
	}
	if c.Images, err = payload.Optional(object, "images", simpleImagesParser(assets)); err != nil {
		return nil, err
	}
	if c.Path, err = object.OptionalString("path"); err != nil {
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
