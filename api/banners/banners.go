package banners

import (
	"encoding/json"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// Banner is a player banner. Banners are compared by id.
type Banner struct {
	ID              string
	DevName         string
	Name            *string
	Category        *string
	Description     *string
	FullUsageRights bool
	Images          Images
	RawData         json.RawMessage
}

type Images struct {
	SmallIcon *api.Asset
	Icon      *api.Asset
}

// Color is a banner background color.
type Color struct {
	ID               string
	Color            string
	Category         string
	SubCategoryGroup int
	RawData          json.RawMessage
}

func (b *Banner) Equal(other *Banner) bool {
	return b != nil && other != nil && b.ID == other.ID
}

func (c *Color) Equal(other *Color) bool {
	return c != nil && other != nil && c.ID == other.ID
}

// ParseList parses the data member of /v2/banners.
func ParseList(raw json.RawMessage, assets api.AssetFetcher) ([]*Banner, error) {
	return payload.DecodeList(raw, func(object payload.Object) (*Banner, error) {
		b := &Banner{RawData: object.Raw()}
		var err error

		if b.ID, err = object.String("id"); err != nil {
			return nil, err
		}
		if b.DevName, err = object.String("devName"); err != nil {
			return nil, err
		}
		for key, field := range map[string]**string{
			"name":        &b.Name,
			"category":    &b.Category,
			"description": &b.Description,
		} {
			if *field, err = object.OptionalString(key); err != nil {
				return nil, err
			}
		}
		if b.FullUsageRights, err = object.OptionalBool("fullUsageRights"); err != nil {
			return nil, err
		}

		images, err := payload.Optional(object, "images", imagesParser(assets))
		if err != nil {
			return nil, err
		}
		if images != nil {
			b.Images = *images
		}
		return b, nil
	})
}

// ParseColors parses the data member of /v2/banners/colors.
func ParseColors(raw json.RawMessage) ([]*Color, error) {
	return payload.DecodeList(raw, func(object payload.Object) (*Color, error) {
		c := &Color{RawData: object.Raw()}
		var err error

		if c.ID, err = object.String("id"); err != nil {
			return nil, err
		}
		if c.Color, err = object.String("color"); err != nil {
			return nil, err
		}
		if c.Category, err = object.String("category"); err != nil {
			return nil, err
		}
		if c.SubCategoryGroup, err = object.Int("subCategoryGroup"); err != nil {
			return nil, err
		}
		return c, nil
	})
}

func imagesParser(assets api.AssetFetcher) func(payload.Object) (Images, error) {
	return func(object payload.Object) (Images, error) {
		var images Images
		for key, slot := range map[string]**api.Asset{
			"smallIcon": &images.SmallIcon,
			"icon":      &images.Icon,
		} {
			url, err := object.OptionalString(key)
			if err != nil {
				return Images{}, err
			}
			*slot = api.OptionalAsset(assets, url)
		}
		return images, nil
	}
}
