package cosmetics

import (
	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// Builders for payload.List and payload.Each, for packages that embed
// cosmetics in their own payloads.

func BrParser(assets api.AssetFetcher) func(payload.Object) (*Br, error) {
	return parser(assets, buildBr)
}

func TrackParser(assets api.AssetFetcher) func(payload.Object) (*Track, error) {
	return parser(assets, buildTrack)
}

func InstrumentParser(assets api.AssetFetcher) func(payload.Object) (*Instrument, error) {
	return parser(assets, buildInstrument)
}

func CarParser(assets api.AssetFetcher) func(payload.Object) (*Car, error) {
	return parser(assets, buildCar)
}

func LegoParser(assets api.AssetFetcher) func(payload.Object) (*Lego, error) {
	return parser(assets, buildLego)
}

func LegoKitParser(assets api.AssetFetcher) func(payload.Object) (*LegoKit, error) {
	return parser(assets, buildLegoKit)
}
