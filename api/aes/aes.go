package aes

import (
	"encoding/json"
	"regexp"
	"time"

	"github.com/escrow-tf/fortnite/api/payload"
)

// KeyFormat is the encoding upstream renders keys in.
type KeyFormat string

//goland:noinspection GoUnusedConst
const (
	HexKeyFormat    KeyFormat = "hex"
	Base64KeyFormat KeyFormat = "base64"
)

var versionPattern = regexp.MustCompile(`\d\d\.\d\d`)

// Aes is the current set of pak decryption keys. Two records are the same
// when their main keys match.
type Aes struct {
	MainKey string
	Build   string
	// Version is the "28.10" part of Build, nil when Build carries none.
	Version     *string
	Updated     time.Time
	DynamicKeys []DynamicKey
	RawData     json.RawMessage
}

type DynamicKey struct {
	PakFilename string
	PakGuid     string
	Key         string
}

func (a *Aes) String() string {
	return a.MainKey
}

func (a *Aes) Equal(other *Aes) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.MainKey == other.MainKey
}

// Parse builds an Aes from the data member of /v2/aes.
func Parse(raw json.RawMessage) (*Aes, error) {
	return payload.Decode(raw, func(object payload.Object) (*Aes, error) {
		a := &Aes{RawData: object.Raw()}
		var err error

		if a.MainKey, err = object.String("mainKey"); err != nil {
			return nil, err
		}
		if a.Build, err = object.String("build"); err != nil {
			return nil, err
		}
		if version := versionPattern.FindString(a.Build); version != "" {
			a.Version = &version
		}
		if a.Updated, err = object.Time("updated"); err != nil {
			return nil, err
		}
		if a.DynamicKeys, err = payload.List(object, "dynamicKeys", parseDynamicKey); err != nil {
			return nil, err
		}
		return a, nil
	})
}

func parseDynamicKey(object payload.Object) (DynamicKey, error) {
	var key DynamicKey
	var err error

	if key.PakFilename, err = object.String("pakFilename"); err != nil {
		return DynamicKey{}, err
	}
	if key.PakGuid, err = object.String("pakGuid"); err != nil {
		return DynamicKey{}, err
	}
	if key.Key, err = object.String("key"); err != nil {
		return DynamicKey{}, err
	}
	return key, nil
}
