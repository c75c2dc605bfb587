package cosmetics

import (
	"encoding/json"
	"maps"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// Images is the image bundle of br, car and instrument cosmetics. Well-known
// slots are parsed up front; everything under "other" stays a name→url map and
// is exposed through views.
type Images struct {
	SmallIcon *api.Asset
	Icon      *api.Asset
	Featured  *api.Asset
	Lego      *SimpleImages
	Bean      *SimpleImages

	other  map[string]string
	assets api.AssetFetcher
}

// SimpleImages is the small/large/wide bundle used by lego, lego kits and
// the lego/bean slots of Images.
type SimpleImages struct {
	Small *api.Asset
	Large *api.Asset
	Wide  *api.Asset
}

// Background is a view over other["background"].
func (i Images) Background() *api.Asset {
	return i.lookup("background")
}

// CoverArt is a view over other["coverart"].
func (i Images) CoverArt() *api.Asset {
	return i.lookup("coverart")
}

// Decal is a view over other["decal"].
func (i Images) Decal() *api.Asset {
	return i.lookup("decal")
}

// Other returns a copy of every image under "other", keyed by name.
func (i Images) Other() map[string]api.Asset {
	other := make(map[string]api.Asset, len(i.other))
	for name, url := range i.other {
		other[name] = api.NewAsset(i.assets, url)
	}
	return other
}

// OtherNames returns the raw name→url map.
func (i Images) OtherNames() map[string]string {
	return maps.Clone(i.other)
}

func (i Images) lookup(name string) *api.Asset {
	url, ok := i.other[name]
	if !ok {
		return nil
	}
	return api.OptionalAsset(i.assets, &url)
}

func imagesParser(assets api.AssetFetcher) func(payload.Object) (Images, error) {
	return func(object payload.Object) (Images, error) {
		images := Images{assets: assets}

		// br cosmetics use smallIcon/icon; cars and instruments use small/large.
		smallIcon, err := firstString(object, "smallIcon", "small")
		if err != nil {
			return Images{}, err
		}
		images.SmallIcon = api.OptionalAsset(assets, smallIcon)

		icon, err := firstString(object, "icon", "large")
		if err != nil {
			return Images{}, err
		}
		images.Icon = api.OptionalAsset(assets, icon)

		featured, err := object.OptionalString("featured")
		if err != nil {
			return Images{}, err
		}
		images.Featured = api.OptionalAsset(assets, featured)

		if images.Lego, err = themedImages(object, "lego", assets); err != nil {
			return Images{}, err
		}
		if images.Bean, err = themedImages(object, "bean", assets); err != nil {
			return Images{}, err
		}

		if images.other, err = object.StringMap("other"); err != nil {
			return Images{}, err
		}
		return images, nil
	}
}

func simpleImagesParser(assets api.AssetFetcher) func(payload.Object) (SimpleImages, error) {
	return func(object payload.Object) (SimpleImages, error) {
		var images SimpleImages
		for key, slot := range map[string]**api.Asset{
			"small": &images.Small,
			"large": &images.Large,
			"wide":  &images.Wide,
		} {
			url, err := object.OptionalString(key)
			if err != nil {
				return SimpleImages{}, err
			}
			*slot = api.OptionalAsset(assets, url)
		}
		return images, nil
	}
}

// themedImages reads the lego or bean slot. Upstream sends it either as a
// single url, which fills Large, or as a small/large/wide object.
func themedImages(object payload.Object, key string, assets api.AssetFetcher) (*SimpleImages, error) {
	raw := object.OptionalField(key)
	if raw == nil {
		return nil, nil
	}

	var url string
	if err := json.Unmarshal(raw, &url); err == nil {
		large := api.OptionalAsset(assets, &url)
		if large == nil {
			return nil, nil
		}
		return &SimpleImages{Large: large}, nil
	}
	return payload.Optional(object, key, simpleImagesParser(assets))
}

func firstString(object payload.Object, keys ...string) (*string, error) {
	for _, key := range keys {
		value, err := object.OptionalString(key)
		if err != nil {
			return nil, err
		}
		if value != nil && *value != "" {
			return value, nil
		}
	}
	return nil, nil
}
