package gamemap

import (
	"encoding/json"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// Map is the current Battle Royale island.
type Map struct {
	Images  Images
	POIs    []POI
	RawData json.RawMessage
}

type Images struct {
	Blank api.Asset
	// POIs is the map with point-of-interest names drawn on.
	POIs api.Asset
}

// POI is a named location. Coordinates are world units.
type POI struct {
	ID       string
	Name     string
	Location Location
}

type Location struct {
	X float64
	Y float64
	Z float64
}

// POI returns the point of interest with id, or nil.
func (m *Map) POI(id string) *POI {
	for i := range m.POIs {
		if m.POIs[i].ID == id {
			return &m.POIs[i]
		}
	}
	return nil
}

func Parse(raw json.RawMessage, assets api.AssetFetcher) (*Map, error) {
	return payload.Decode(raw, func(object payload.Object) (*Map, error) {
		m := &Map{RawData: object.Raw()}
		var err error

		if m.Images, err = payload.Required(object, "images", imagesParser(assets)); err != nil {
			return nil, err
		}
		if m.POIs, err = payload.List(object, "pois", parsePOI); err != nil {
			return nil, err
		}
		return m, nil
	})
}

func imagesParser(assets api.AssetFetcher) func(payload.Object) (Images, error) {
	return func(object payload.Object) (Images, error) {
		blank, err := object.String("blank")
		if err != nil {
			return Images{}, err
		}
		pois, err := object.String("pois")
		if err != nil {
			return Images{}, err
		}
		return Images{Blank: api.NewAsset(assets, blank), POIs: api.NewAsset(assets, pois)}, nil
	}
}

func parsePOI(object payload.Object) (POI, error) {
	var poi POI
	var err error

	if poi.ID, err = object.String("id"); err != nil {
		return POI{}, err
	}
	if poi.Name, err = object.String("name"); err != nil {
		return POI{}, err
	}
	if poi.Location, err = payload.Required(object, "location", parseLocation); err != nil {
		return POI{}, err
	}
	return poi, nil
}

func parseLocation(object payload.Object) (Location, error) {
	var location Location
	for key, field := range map[string]*float64{
		"x": &location.X,
		"y": &location.Y,
		"z": &location.Z,
	} {
		value, err := object.Float(key)
		if err != nil {
			return Location{}, err
		}
		*field = value
	}
	return location, nil
}
