package cosmetics

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
	"github.com/rotisserie/eris"
)

// category ties a kind to the key upstream indexes it by in hashes,
// lastAdditions and items.
type category struct {
	kind Kind
	key  string
}

var categories = [len(Kinds)]category{
	{BrKind, "br"},
	{TrackKind, "tracks"},
	{InstrumentKind, "instruments"},
	{CarKind, "cars"},
	{LegoKind, "lego"},
	{LegoKitKind, "legoKits"},
}

// NewCategory is one category of the new cosmetics response. Hash and
// LastAddition are nil when nothing new was added for the category.
type NewCategory struct {
	Kind         Kind
	Hash         *string
	LastAddition *time.Time
	Items        []Cosmetic
}

// NewCosmetics is the response of /v2/cosmetics/new.
type NewCosmetics struct {
	Build              string
	PreviousBuild      string
	Date               time.Time
	GlobalHash         string
	GlobalLastAddition time.Time
	RawData            json.RawMessage

	categories [len(Kinds)]NewCategory
}

// Category returns the entry for kind. A kind outside Kinds yields an empty
// category with no hash or last addition.
func (n *NewCosmetics) Category(kind Kind) NewCategory {
	if !kind.Valid() {
		return NewCategory{Kind: kind, Items: []Cosmetic{}}
	}
	return n.categories[kind]
}

// Categories returns every category in Kinds order.
func (n *NewCosmetics) Categories() []NewCategory {
	return slices.Clone(n.categories[:])
}

func (n *NewCosmetics) Br() []*Br {
	return itemsOf[*Br](n.categories[BrKind].Items)
}

func (n *NewCosmetics) Tracks() []*Track {
	return itemsOf[*Track](n.categories[TrackKind].Items)
}

func (n *NewCosmetics) Instruments() []*Instrument {
	return itemsOf[*Instrument](n.categories[InstrumentKind].Items)
}

func (n *NewCosmetics) Cars() []*Car {
	return itemsOf[*Car](n.categories[CarKind].Items)
}

func (n *NewCosmetics) Lego() []*Lego {
	return itemsOf[*Lego](n.categories[LegoKind].Items)
}

func (n *NewCosmetics) LegoKits() []*LegoKit {
	return itemsOf[*LegoKit](n.categories[LegoKitKind].Items)
}

func ParseNewCosmetics(raw json.RawMessage, assets api.AssetFetcher) (*NewCosmetics, error) {
	return payload.Decode(raw, func(object payload.Object) (*NewCosmetics, error) {
		return buildNewCosmetics(object, assets)
	})
}

func buildNewCosmetics(object payload.Object, assets api.AssetFetcher) (*NewCosmetics, error) {
	n := &NewCosmetics{RawData: object.Raw()}
	var err error

	if n.Build, err = object.String("build"); err != nil {
		return nil, err
	}
	if n.PreviousBuild, err = object.String("previousBuild"); err != nil {
		return nil, err
	}
	if n.Date, err = object.Time("date"); err != nil {
		return nil, err
	}

	hashes, err := object.Object("hashes")
	if err != nil {
		return nil, err
	}
	lastAdditions, err := object.Object("lastAdditions")
	if err != nil {
		return nil, err
	}
	items, err := object.Object("items")
	if err != nil {
		return nil, err
	}

	if n.GlobalHash, err = hashes.String("all"); err != nil {
		return nil, eris.Wrap(err, "hashes")
	}
	if n.GlobalLastAddition, err = lastAdditions.Time("all"); err != nil {
		return nil, eris.Wrap(err, "lastAdditions")
	}

	for _, c := range categories {
		entry, err := newCategory(c, hashes, lastAdditions, items, assets)
		if err != nil {
			return nil, eris.Wrapf(err, "category %s", c.kind)
		}
		n.categories[c.kind] = entry
	}
	return n, nil
}

// newCategory resolves all three parts of a category from the same key.
func newCategory(c category, hashes, lastAdditions, items payload.Object, assets api.AssetFetcher) (NewCategory, error) {
	for name, parent := range map[string]payload.Object{
		"hashes":        hashes,
		"lastAdditions": lastAdditions,
		"items":         items,
	} {
		if !parent.Contains(c.key) {
			return NewCategory{}, eris.Wrapf(payload.ErrMalformedPayload, "%s has no key %q", name, c.key)
		}
	}

	entry := NewCategory{Kind: c.kind}
	var err error

	if entry.Hash, err = hashes.OptionalString(c.key); err != nil {
		return NewCategory{}, err
	}
	if entry.LastAddition, err = lastAdditions.OptionalTime(c.key); err != nil {
		return NewCategory{}, err
	}
	if entry.Items, err = payload.List(items, c.key, kindParser(c.kind, assets)); err != nil {
		return NewCategory{}, err
	}
	return entry, nil
}

// NewBrCosmetics is the response of /v2/cosmetics/br/new.
type NewBrCosmetics struct {
	Build         string
	PreviousBuild string
	Date          time.Time
	Hash          string
	LastAddition  time.Time
	Items         []*Br
	RawData       json.RawMessage
}

func ParseNewBrCosmetics(raw json.RawMessage, assets api.AssetFetcher) (*NewBrCosmetics, error) {
	return payload.Decode(raw, func(object payload.Object) (*NewBrCosmetics, error) {
		n := &NewBrCosmetics{RawData: object.Raw()}
		var err error

		if n.Build, err = object.String("build"); err != nil {
			return nil, err
		}
		if n.PreviousBuild, err = object.String("previousBuild"); err != nil {
			return nil, err
		}
		if n.Date, err = object.Time("date"); err != nil {
			return nil, err
		}
		if n.Hash, err = object.String("hash"); err != nil {
			return nil, err
		}
		if n.LastAddition, err = object.Time("lastAddition"); err != nil {
			return nil, err
		}
		if n.Items, err = payload.List(object, "items", parser(assets, buildBr)); err != nil {
			return nil, err
		}
		return n, nil
	})
}

// itemsOf narrows a category's items to their concrete type.
func itemsOf[T Cosmetic](items []Cosmetic) []T {
	typed := make([]T, 0, len(items))
	for _, item := range items {
		if t, ok := item.(T); ok {
			typed = append(typed, t)
		}
	}
	return typed
}
