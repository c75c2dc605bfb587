package cosmetics

import (
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// Br is a Battle Royale cosmetic: outfits, pickaxes, emotes and the like.
type Br struct {
	Base

	Name                   string
	Description            string
	ExclusiveDescription   *string
	UnlockRequirements     *string
	CustomExclusiveCallout *string

	Type         *TypeInfo
	Rarity       *RarityInfo
	Series       *SeriesInfo
	Set          *SetInfo
	Introduction *Introduction
	Images       *Images
	Variants     []Variant

	BuiltInEmoteIDs []string
	SearchTags      []string
	GameplayTags    []string
	MetaTags        []string

	// ShowcaseVideo is the bare video id; see ShowcaseVideoURL.
	ShowcaseVideo       *string
	DynamicPakID        *string
	ItemPreviewHeroPath *string
	DisplayAssetPath    *string
	DefinitionPath      *string
	Path                *string

	ShopHistory []time.Time
}

func (*Br) Kind() Kind {
	return BrKind
}

func (*Br) sealed() {}

func (c *Br) ShowcaseVideoURL() *string {
	return showcaseVideoURL(c.ShowcaseVideo)
}

// ParseBr builds a Br from a single cosmetic payload.
func ParseBr(object payload.Object, assets api.AssetFetcher) (*Br, error) {
	return construct(object, assets, buildBr)
}

func buildBr(base Base, object payload.Object, assets api.AssetFetcher) (*Br, error) {
	c := &Br{Base: base}
	var err error

	if c.Name, err = object.String("name"); err != nil {
		return nil, err
	}
	if c.Description, err = object.String("description"); err != nil {
		return nil, err
	}

	for key, field := range map[string]**string{
		"exclusiveDescription":   &c.ExclusiveDescription,
		"unlockRequirements":     &c.UnlockRequirements,
		"customExclusiveCallout": &c.CustomExclusiveCallout,
		"showcaseVideo":          &c.ShowcaseVideo,
		"dynamicPakId":           &c.DynamicPakID,
		"itemPreviewHeroPath":    &c.ItemPreviewHeroPath,
		"displayAssetPath":       &c.DisplayAssetPath,
		"definitionPath":         &c.DefinitionPath,
		"path":                   &c.Path,
	} {
		if *field, err = object.OptionalString(key); err != nil {
			return nil, err
		}
	}

	if c.Type, err = payload.Optional(object, "type", parseTypeInfo); err != nil {
		return nil, err
	}
	if c.Rarity, err = payload.Optional(object, "rarity", parseRarityInfo); err != nil {
		return nil, err
	}
	if c.Series, err = payload.Optional(object, "series", seriesParser(assets)); err != nil {
		return nil, err
	}
	if c.Set, err = payload.Optional(object, "set", parseSetInfo); err != nil {
		return nil, err
	}
	if c.Introduction, err = payload.Optional(object, "introduction", parseIntroduction); err != nil {
		return nil, err
	}
	if c.Images, err = payload.Optional(object, "images", imagesParser(assets)); err != nil {
		return nil, err
	}
	if c.Variants, err = payload.List(object, "variants", variantParser(assets)); err != nil {
		return nil, err
	}

	for key, field := range map[string]*[]string{
		"builtInEmoteIds": &c.BuiltInEmoteIDs,
		"searchTags":      &c.SearchTags,
		"gameplayTags":    &c.GameplayTags,
		"metaTags":        &c.MetaTags,
	} {
		if *field, err = object.Strings(key); err != nil {
			return nil, err
		}
	}

	if c.ShopHistory, err = object.Times("shopHistory"); err != nil {
		return nil, err
	}
	return c, nil
}
