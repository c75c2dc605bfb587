package shop

import (
	"encoding/json"
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/cosmetics"
	"github.com/escrow-tf/fortnite/api/payload"
	"github.com/rotisserie/eris"
)

// Entry is one offer in the shop. An offer may bundle cosmetics of several
// kinds; each kind keeps its own list.
type Entry struct {
	OfferID      string
	InDate       time.Time
	OutDate      time.Time
	RegularPrice int
	FinalPrice   int
	DevName      *string

	Bundle       *Bundle
	Banner       *Banner
	Giftable     bool
	Refundable   bool
	SortPriority int
	LayoutID     *string
	Layout       *Layout
	Colors       *Colors
	TileSize     *string

	DisplayAssetPath    *string
	NewDisplayAssetPath *string
	NewDisplayAsset     *NewDisplayAsset

	BrItems     []*cosmetics.Br
	Tracks      []*cosmetics.Track
	Instruments []*cosmetics.Instrument
	Cars        []*cosmetics.Car
	LegoKits    []*cosmetics.LegoKit

	RawData json.RawMessage
}

func (e *Entry) Equal(other *Entry) bool {
	return e != nil && other != nil && e.OfferID == other.OfferID
}

// Discount is the difference between the regular and final price.
func (e *Entry) Discount() int {
	return e.RegularPrice - e.FinalPrice
}

// Cosmetics returns every cosmetic of the entry: br items, tracks,
// instruments, cars, then lego kits.
func (e *Entry) Cosmetics() []cosmetics.Cosmetic {
	all := make([]cosmetics.Cosmetic, 0, len(e.BrItems)+len(e.Tracks)+len(e.Instruments)+len(e.Cars)+len(e.LegoKits))
	for _, c := range e.BrItems {
		all = append(all, c)
	}
	for _, c := range e.Tracks {
		all = append(all, c)
	}
	for _, c := range e.Instruments {
		all = append(all, c)
	}
	for _, c := range e.Cars {
		all = append(all, c)
	}
	for _, c := range e.LegoKits {
		all = append(all, c)
	}
	return all
}

func entryParser(assets api.AssetFetcher) func(payload.Object) (*Entry, error) {
	return func(object payload.Object) (*Entry, error) {
		offerID, err := object.String("offerId")
		if err != nil {
			return nil, err
		}

		entry, err := buildEntry(offerID, object, assets)
		if err != nil {
			return nil, eris.Wrapf(err, "offer %q", offerID)
		}
		return entry, nil
	}
}

func buildEntry(offerID string, object payload.Object, assets api.AssetFetcher) (*Entry, error) {
	e := &Entry{OfferID: offerID, RawData: object.Raw()}
	var err error

	if e.InDate, err = object.Time("inDate"); err != nil {
		return nil, err
	}
	if e.OutDate, err = object.Time("outDate"); err != nil {
		return nil, err
	}
	if e.RegularPrice, err = object.Int("regularPrice"); err != nil {
		return nil, err
	}
	if e.FinalPrice, err = object.Int("finalPrice"); err != nil {
		return nil, err
	}

	for key, field := range map[string]**string{
		"devName":             &e.DevName,
		"layoutId":            &e.LayoutID,
		"tileSize":            &e.TileSize,
		"displayAssetPath":    &e.DisplayAssetPath,
		"newDisplayAssetPath": &e.NewDisplayAssetPath,
	} {
		if *field, err = object.OptionalString(key); err != nil {
			return nil, err
		}
	}

	for key, field := range map[string]*bool{
		"giftable":   &e.Giftable,
		"refundable": &e.Refundable,
	} {
		if *field, err = object.OptionalBool(key); err != nil {
			return nil, err
		}
	}

	sortPriority, err := object.OptionalInt("sortPriority")
	if err != nil {
		return nil, err
	}
	if sortPriority != nil {
		e.SortPriority = *sortPriority
	}

	if e.Bundle, err = payload.Optional(object, "bundle", bundleParser(assets)); err != nil {
		return nil, err
	}
	if e.Banner, err = payload.Optional(object, "banner", parseBanner); err != nil {
		return nil, err
	}
	if e.Layout, err = payload.Optional(object, "layout", layoutParser(assets)); err != nil {
		return nil, err
	}
	if e.Colors, err = payload.Optional(object, "colors", parseColors); err != nil {
		return nil, err
	}
	if e.NewDisplayAsset, err = payload.Optional(object, "newDisplayAsset", newDisplayAssetParser(assets)); err != nil {
		return nil, err
	}

	if e.BrItems, err = payload.List(object, "brItems", cosmetics.BrParser(assets)); err != nil {
		return nil, err
	}
	if e.Tracks, err = payload.List(object, "tracks", cosmetics.TrackParser(assets)); err != nil {
		return nil, err
	}
	if e.Instruments, err = payload.List(object, "instruments", cosmetics.InstrumentParser(assets)); err != nil {
		return nil, err
	}
	if e.Cars, err = payload.List(object, "cars", cosmetics.CarParser(assets)); err != nil {
		return nil, err
	}
	if e.LegoKits, err = payload.List(object, "legoKits", cosmetics.LegoKitParser(assets)); err != nil {
		return nil, err
	}
	return e, nil
}
