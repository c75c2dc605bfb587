package cosmetics

import (
	"encoding/json"
	"iter"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// AllCosmetics is the response of /v2/cosmetics: every cosmetic of every
// category.
type AllCosmetics struct {
	Br          []*Br
	Tracks      []*Track
	Instruments []*Instrument
	Cars        []*Car
	Lego        []*Lego
	LegoKits    []*LegoKit
	RawData     json.RawMessage
}

// All yields every cosmetic in Kinds order: br, tracks, instruments, cars,
// lego, lego kits.
func (a *AllCosmetics) All() iter.Seq[Cosmetic] {
	return func(yield func(Cosmetic) bool) {
		_ = yieldEach(a.Br, yield) &&
			yieldEach(a.Tracks, yield) &&
			yieldEach(a.Instruments, yield) &&
			yieldEach(a.Cars, yield) &&
			yieldEach(a.Lego, yield) &&
			yieldEach(a.LegoKits, yield)
	}
}

func (a *AllCosmetics) Len() int {
	return len(a.Br) + len(a.Tracks) + len(a.Instruments) + len(a.Cars) + len(a.Lego) + len(a.LegoKits)
}

// Slice collects All into a new slice.
func (a *AllCosmetics) Slice() []Cosmetic {
	all := make([]Cosmetic, 0, a.Len())
	for c := range a.All() {
		all = append(all, c)
	}
	return all
}

// Find returns the cosmetic with id, or nil.
func (a *AllCosmetics) Find(id string) Cosmetic {
	for c := range a.All() {
		if c.Common().ID == id {
			return c
		}
	}
	return nil
}

func ParseAllCosmetics(raw json.RawMessage, assets api.AssetFetcher) (*AllCosmetics, error) {
	return payload.Decode(raw, func(object payload.Object) (*AllCosmetics, error) {
		a := &AllCosmetics{RawData: object.Raw()}
		var err error

		if a.Br, err = payload.List(object, categories[BrKind].key, parser(assets, buildBr)); err != nil {
			return nil, err
		}
		if a.Tracks, err = payload.List(object, categories[TrackKind].key, parser(assets, buildTrack)); err != nil {
			return nil, err
		}
		if a.Instruments, err = payload.List(object, categories[InstrumentKind].key, parser(assets, buildInstrument)); err != nil {
			return nil, err
		}
		if a.Cars, err = payload.List(object, categories[CarKind].key, parser(assets, buildCar)); err != nil {
			return nil, err
		}
		if a.Lego, err = payload.List(object, categories[LegoKind].key, parser(assets, buildLego)); err != nil {
			return nil, err
		}
		if a.LegoKits, err = payload.List(object, categories[LegoKitKind].key, parser(assets, buildLegoKit)); err != nil {
			return nil, err
		}
		return a, nil
	})
}

func yieldEach[T Cosmetic](items []T, yield func(Cosmetic) bool) bool {
	for _, item := range items {
		if !yield(item) {
			return false
		}
	}
	return true
}

// parseList parses the array a per-category endpoint returns. nil raw yields
// an empty slice.
func parseList[T Cosmetic](raw json.RawMessage, assets api.AssetFetcher, build func(Base, payload.Object, api.AssetFetcher) (T, error)) ([]T, error) {
	return payload.DecodeList(raw, parser(assets, build))
}
