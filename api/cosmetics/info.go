package cosmetics

import (
	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// TypeInfo describes a cosmetic's type, e.g. outfit or emote.
type TypeInfo struct {
	Value        string
	DisplayValue string
	BackendValue string
}

// RarityInfo describes a cosmetic's rarity.
type RarityInfo struct {
	Value        string
	DisplayValue string
	BackendValue string
}

// SeriesInfo describes the series a cosmetic belongs to, e.g. Marvel or Icon.
type SeriesInfo struct {
	Value        string
	BackendValue string
	Image        *api.Asset
	Colors       []string
}

// SetInfo describes the set a cosmetic belongs to. Text reads "Part of the <value> set."
type SetInfo struct {
	Value        string
	Text         string
	BackendValue string
}

// Introduction says when a cosmetic first appeared. Season may be "OG" or a
// number rendered as a string; BackendValue is the absolute season number.
type Introduction struct {
	Chapter      int
	Season       string
	Text         string
	BackendValue int
}

type Variant struct {
	Channel string
	Type    string
	Options []VariantOption
}

type VariantOption struct {
	Tag                string
	Name               string
	Image              api.Asset
	UnlockRequirements *string
}

func parseTypeInfo(object payload.Object) (TypeInfo, error) {
	var info TypeInfo
	var err error

	if info.Value, err = object.String("value"); err != nil {
		return TypeInfo{}, err
	}
	if info.DisplayValue, err = object.String("displayValue"); err != nil {
		return TypeInfo{}, err
	}
	if info.BackendValue, err = object.String("backendValue"); err != nil {
		return TypeInfo{}, err
	}
	return info, nil
}

func parseRarityInfo(object payload.Object) (RarityInfo, error) {
	info, err := parseTypeInfo(object)
	if err != nil {
		return RarityInfo{}, err
	}
	return RarityInfo(info), nil
}

func seriesParser(assets api.AssetFetcher) func(payload.Object) (SeriesInfo, error) {
	return func(object payload.Object) (SeriesInfo, error) {
		var info SeriesInfo
		var err error

		if info.Value, err = object.String("value"); err != nil {
			return SeriesInfo{}, err
		}
		if info.BackendValue, err = object.String("backendValue"); err != nil {
			return SeriesInfo{}, err
		}

		image, err := object.OptionalString("image")
		if err != nil {
			return SeriesInfo{}, err
		}
		info.Image = api.OptionalAsset(assets, image)

		if info.Colors, err = object.Strings("colors"); err != nil {
			return SeriesInfo{}, err
		}
		return info, nil
	}
}

func parseSetInfo(object payload.Object) (SetInfo, error) {
	var info SetInfo
	var err error

	if info.Value, err = object.String("value"); err != nil {
		return SetInfo{}, err
	}
	if info.Text, err = object.String("text"); err != nil {
		return SetInfo{}, err
	}
	if info.BackendValue, err = object.String("backendValue"); err != nil {
		return SetInfo{}, err
	}
	return info, nil
}

func parseIntroduction(object payload.Object) (Introduction, error) {
	var info Introduction
	var err error

	if info.Chapter, err = object.Int("chapter"); err != nil {
		return Introduction{}, err
	}
	if info.Season, err = object.String("season"); err != nil {
		return Introduction{}, err
	}
	if info.Text, err = object.String("text"); err != nil {
		return Introduction{}, err
	}
	if info.BackendValue, err = object.Int("backendValue"); err != nil {
		return Introduction{}, err
	}
	return info, nil
}

func variantParser(assets api.AssetFetcher) func(payload.Object) (Variant, error) {
	optionParser := func(object payload.Object) (VariantOption, error) {
		var option VariantOption
		var err error

		if option.Tag, err = object.String("tag"); err != nil {
			return VariantOption{}, err
		}
		if option.Name, err = object.String("name"); err != nil {
			return VariantOption{}, err
		}

		image, err := object.String("image")
		if err != nil {
			return VariantOption{}, err
		}
		option.Image = api.NewAsset(assets, image)

		if option.UnlockRequirements, err = object.OptionalString("unlockRequirements"); err != nil {
			return VariantOption{}, err
		}
		return option, nil
	}

	return func(object payload.Object) (Variant, error) {
		var variant Variant
		var err error

		if variant.Channel, err = object.String("channel"); err != nil {
			return Variant{}, err
		}
		if variant.Type, err = object.String("type"); err != nil {
			return Variant{}, err
		}
		if variant.Options, err = payload.List(object, "options", optionParser); err != nil {
			return Variant{}, err
		}
		return variant, nil
	}
}
