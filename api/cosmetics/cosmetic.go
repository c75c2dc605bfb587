package cosmetics

import (
	"encoding/json"
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
	"github.com/rotisserie/eris"
)

// Kind identifies which variant a Cosmetic is. It is derived from the Go type,
// never read from the payload.
type Kind int

//goland:noinspection GoUnusedConst
const (
	BrKind Kind = iota
	TrackKind
	InstrumentKind
	CarKind
	LegoKind
	LegoKitKind
)

// Kinds lists every kind in the fixed iteration order used by aggregates.
var Kinds = [...]Kind{BrKind, TrackKind, InstrumentKind, CarKind, LegoKind, LegoKitKind}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool {
	return k >= BrKind && k <= LegoKitKind
}

func (k Kind) String() string {
	switch k {
	case BrKind:
		return "br"
	case TrackKind:
		return "tracks"
	case InstrumentKind:
		return "instruments"
	case CarKind:
		return "cars"
	case LegoKind:
		return "lego"
	case LegoKitKind:
		return "lego-kits"
	}
	return "unknown"
}

// Base holds the fields every cosmetic carries.
type Base struct {
	ID    string
	Added time.Time
	// RawData is the payload the cosmetic was parsed from, byte for byte.
	RawData json.RawMessage
}

// Cosmetic is implemented only by the variant types of this package:
// *Br, *Track, *Instrument, *Car, *Lego and *LegoKit.
type Cosmetic interface {
	Kind() Kind
	Common() Base
	sealed()
}

func (b Base) Common() Base {
	return b
}

// Equal compares identity only; other fields may drift between fetches.
func (b Base) Equal(other Base) bool {
	return b.ID == other.ID
}

// Equal reports whether a and b are the same cosmetic by id.
func Equal(a, b Cosmetic) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Common().Equal(b.Common())
}

func parseBase(object payload.Object) (Base, error) {
	id, err := object.String("id")
	if err != nil {
		return Base{}, err
	}

	base := Base{ID: id, RawData: object.Raw()}

	added, err := object.Time("added")
	if err != nil {
		return base, eris.Wrapf(err, "cosmetic %q", id)
	}
	base.Added = added

	return base, nil
}

// construct runs the base step before the variant step so errors can always
// name the cosmetic id.
func construct[T any](
	object payload.Object,
	assets api.AssetFetcher,
	build func(Base, payload.Object, api.AssetFetcher) (T, error),
) (T, error) {
	var zero T

	base, err := parseBase(object)
	if err != nil {
		return zero, err
	}

	cosmetic, err := build(base, object, assets)
	if err != nil {
		return zero, eris.Wrapf(err, "cosmetic %q", base.ID)
	}
	return cosmetic, nil
}

// Parse builds the variant for kind from raw.
func Parse(kind Kind, raw json.RawMessage, assets api.AssetFetcher) (Cosmetic, error) {
	object, err := payload.ParseObject(raw)
	if err != nil {
		return nil, err
	}
	return parseKind(kind, object, assets)
}

func parseKind(kind Kind, object payload.Object, assets api.AssetFetcher) (Cosmetic, error) {
	var cosmetic Cosmetic
	var err error

	switch kind {
	case BrKind:
		cosmetic, err = construct(object, assets, buildBr)
	case TrackKind:
		cosmetic, err = construct(object, assets, buildTrack)
	case InstrumentKind:
		cosmetic, err = construct(object, assets, buildInstrument)
	case CarKind:
		cosmetic, err = construct(object, assets, buildCar)
	case LegoKind:
		cosmetic, err = construct(object, assets, buildLego)
	case LegoKitKind:
		cosmetic, err = construct(object, assets, buildLegoKit)
	default:
		return nil, eris.Errorf("unknown cosmetic kind %d", kind)
	}

	// a typed nil must not escape as a non-nil interface
	if err != nil {
		return nil, err
	}
	return cosmetic, nil
}

// parser adapts a variant builder to payload.List / payload.Each.
func parser[T any](
	assets api.AssetFetcher,
	build func(Base, payload.Object, api.AssetFetcher) (T, error),
) func(payload.Object) (T, error) {
	return func(object payload.Object) (T, error) {
		return construct(object, assets, build)
	}
}

// kindParser is parser for a kind known only at runtime.
func kindParser(kind Kind, assets api.AssetFetcher) func(payload.Object) (Cosmetic, error) {
	return func(object payload.Object) (Cosmetic, error) {
		return parseKind(kind, object, assets)
	}
}

// ShowcaseVideoPrefix is prepended to the bare video id upstream delivers.
const ShowcaseVideoPrefix = "https://youtube.com/watch?v="

func showcaseVideoURL(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	url := ShowcaseVideoPrefix + *id
	return &url
}
