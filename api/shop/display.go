package shop

import (
	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

type Bundle struct {
	Name  string
	Info  string
	Image api.Asset
}

// Banner is the corner badge of an entry, e.g. "New!".
type Banner struct {
	Value        string
	Intensity    string
	BackendValue string
}

// Layout is the shop section an entry is shown in.
type Layout struct {
	ID                   string
	Name                 string
	Category             *string
	Index                int
	Rank                 int
	ShowIneligibleOffers *string
	Background           *api.Asset
	UseWidePreview       bool
	DisplayType          *string
}

// Colors are hex RGBA strings.
type Colors struct {
	Color1              *string
	Color2              *string
	Color3              *string
	TextBackgroundColor *string
}

type NewDisplayAsset struct {
	ID                string
	CosmeticID        *string
	MaterialInstances []MaterialInstance
	RenderImages      []RenderImage
}

type MaterialInstance struct {
	ID          string
	PrimaryMode string
	ProductTag  string
	// Images maps a material parameter name to its texture.
	Images map[string]api.Asset
	Colors map[string]string
}

type RenderImage struct {
	ProductTag string
	FileName   string
	Image      api.Asset
}

func bundleParser(assets api.AssetFetcher) func(payload.Object) (Bundle, error) {
	return func(object payload.Object) (Bundle, error) {
		var bundle Bundle
		var err error

		if bundle.Name, err = object.String("name"); err != nil {
			return Bundle{}, err
		}
		if bundle.Info, err = object.String("info"); err != nil {
			return Bundle{}, err
		}

		image, err := object.String("image")
		if err != nil {
			return Bundle{}, err
		}
		bundle.Image = api.NewAsset(assets, image)
		return bundle, nil
	}
}

func parseBanner(object payload.Object) (Banner, error) {
	var banner Banner
	var err error

	if banner.Value, err = object.String("value"); err != nil {
		return Banner{}, err
	}
	if banner.Intensity, err = object.String("intensity"); err != nil {
		return Banner{}, err
	}
	if banner.BackendValue, err = object.String("backendValue"); err != nil {
		return Banner{}, err
	}
	return banner, nil
}

func layoutParser(assets api.AssetFetcher) func(payload.Object) (Layout, error) {
	return func(object payload.Object) (Layout, error) {
		var layout Layout
		var err error

		if layout.ID, err = object.String("id"); err != nil {
			return Layout{}, err
		}
		if layout.Name, err = object.String("name"); err != nil {
			return Layout{}, err
		}
		if layout.Index, err = object.Int("index"); err != nil {
			return Layout{}, err
		}
		if layout.Rank, err = object.Int("rank"); err != nil {
			return Layout{}, err
		}

		for key, field := range map[string]**string{
			"category":             &layout.Category,
			"showIneligibleOffers": &layout.ShowIneligibleOffers,
			"displayType":          &layout.DisplayType,
		} {
			if *field, err = object.OptionalString(key); err != nil {
				return Layout{}, err
			}
		}

		background, err := object.OptionalString("background")
		if err != nil {
			return Layout{}, err
		}
		layout.Background = api.OptionalAsset(assets, background)

		if layout.UseWidePreview, err = object.OptionalBool("useWidePreview"); err != nil {
			return Layout{}, err
		}
		return layout, nil
	}
}

func parseColors(object payload.Object) (Colors, error) {
	var colors Colors
	for key, field := range map[string]**string{
		"color1":              &colors.Color1,
		"color2":              &colors.Color2,
		"color3":              &colors.Color3,
		"textBackgroundColor": &colors.TextBackgroundColor,
	} {
		value, err := object.OptionalString(key)
		if err != nil {
			return Colors{}, err
		}
		*field = value
	}
	return colors, nil
}

func newDisplayAssetParser(assets api.AssetFetcher) func(payload.Object) (NewDisplayAsset, error) {
	materialParser := func(object payload.Object) (MaterialInstance, error) {
		var material MaterialInstance
		var err error

		for key, field := range map[string]*string{
			"id":          &material.ID,
			"primaryMode": &material.PrimaryMode,
			"productTag":  &material.ProductTag,
		} {
			if *field, err = object.String(key); err != nil {
				return MaterialInstance{}, err
			}
		}

		images, err := object.StringMap("images")
		if err != nil {
			return MaterialInstance{}, err
		}
		material.Images = make(map[string]api.Asset, len(images))
		for name, url := range images {
			material.Images[name] = api.NewAsset(assets, url)
		}

		if material.Colors, err = object.StringMap("colors"); err != nil {
			return MaterialInstance{}, err
		}
		return material, nil
	}

	renderParser := func(object payload.Object) (RenderImage, error) {
		var render RenderImage
		var err error

		if render.ProductTag, err = object.String("productTag"); err != nil {
			return RenderImage{}, err
		}
		if render.FileName, err = object.String("fileName"); err != nil {
			return RenderImage{}, err
		}

		image, err := object.String("image")
		if err != nil {
			return RenderImage{}, err
		}
		render.Image = api.NewAsset(assets, image)
		return render, nil
	}

	return func(object payload.Object) (NewDisplayAsset, error) {
		var display NewDisplayAsset
		var err error

		if display.ID, err = object.String("id"); err != nil {
			return NewDisplayAsset{}, err
		}
		if display.CosmeticID, err = object.OptionalString("cosmeticId"); err != nil {
			return NewDisplayAsset{}, err
		}
		if display.MaterialInstances, err = payload.List(object, "materialInstances", materialParser); err != nil {
			return NewDisplayAsset{}, err
		}
		if display.RenderImages, err = payload.List(object, "renderImages", renderParser); err != nil {
			return NewDisplayAsset{}, err
		}
		return display, nil
	}
}
