package creatorcode

import (
	"encoding/json"
	"strings"

	"github.com/escrow-tf/fortnite/api/payload"
)

// CreatorCode is a Support-a-Creator code and the account behind it.
type CreatorCode struct {
	Code     string
	Account  Account
	Status   string
	Verified bool
	RawData  json.RawMessage
}

type Account struct {
	ID   string
	Name string
}

func (c *CreatorCode) Disabled() bool {
	return strings.EqualFold(c.Status, "disabled")
}

func Parse(raw json.RawMessage) (*CreatorCode, error) {
	return payload.Decode(raw, func(object payload.Object) (*CreatorCode, error) {
		c := &CreatorCode{RawData: object.Raw()}
		var err error

		if c.Code, err = object.String("code"); err != nil {
			return nil, err
		}
		if c.Account, err = payload.Required(object, "account", parseAccount); err != nil {
			return nil, err
		}
		if c.Status, err = object.String("status"); err != nil {
			return nil, err
		}
		if c.Verified, err = object.OptionalBool("verified"); err != nil {
			return nil, err
		}
		return c, nil
	})
}

func parseAccount(object payload.Object) (Account, error) {
	id, err := object.String("id")
	if err != nil {
		return Account{}, err
	}
	name, err := object.String("name")
	if err != nil {
		return Account{}, err
	}
	return Account{ID: id, Name: name}, nil
}
