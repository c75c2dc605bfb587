package shop

import (
	"encoding/json"
	"time"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/api/payload"
)

// Shop is the current item shop.
type Shop struct {
	Hash      string
	Date      time.Time
	VbuckIcon *api.Asset
	Entries   []*Entry
	RawData   json.RawMessage
}

// Entry returns the entry with offerID, or nil.
func (s *Shop) Entry(offerID string) *Entry {
	for _, entry := range s.Entries {
		if entry.OfferID == offerID {
			return entry
		}
	}
	return nil
}

func Parse(raw json.RawMessage, assets api.AssetFetcher) (*Shop, error) {
	return payload.Decode(raw, func(object payload.Object) (*Shop, error) {
		s := &Shop{RawData: object.Raw()}
		var err error

		if s.Hash, err = object.String("hash"); err != nil {
			return nil, err
		}
		if s.Date, err = object.Time("date"); err != nil {
			return nil, err
		}

		vbuckIcon, err := object.OptionalString("vbuckIcon")
		if err != nil {
			return nil, err
		}
		s.VbuckIcon = api.OptionalAsset(assets, vbuckIcon)

		if s.Entries, err = payload.List(object, "entries", entryParser(assets)); err != nil {
			return nil, err
		}
		return s, nil
	})
}
