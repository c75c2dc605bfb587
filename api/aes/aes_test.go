package aes

import (
	"context"
	"testing"
	"time"

	"github.com/escrow-tf/fortnite/api/payload"
	"github.com/escrow-tf/fortnite/internal/apitest"
	"github.com/rotisserie/eris"
)

func TestParse(t *testing.T) {
	raw := `{"mainKey": "0xABC", "build": "++Fortnite+Release-24.10-CL-24850983-Windows", "updated": "2023-11-01T00:00:00+00:00", "dynamicKeys": []}`

	a, err := Parse([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}

	if a.MainKey != "0xABC" {
		t.Errorf("MainKey=%q", a.MainKey)
	}
	if a.Version == nil || *a.Version != "24.10" {
		t.Errorf("Version=%v, expected 24.10", a.Version)
	}
	if !a.Updated.Equal(time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Updated=%v", a.Updated)
	}
	if a.DynamicKeys == nil || len(a.DynamicKeys) != 0 {
		t.Errorf("DynamicKeys=%v, expected empty", a.DynamicKeys)
	}
	if string(a.RawData) != raw {
		t.Error("RawData should be the original payload")
	}
}

func TestParseDynamicKeys(t *testing.T) {
	raw := `{"mainKey": "0x1", "build": "dev build", "updated": "2023-11-01T00:00:00Z", "dynamicKeys": [
		{"pakFilename": "pakchunk1001-WindowsClient.pak", "pakGuid": "A1", "key": "0x2"},
		{"pakFilename": "pakchunk1002-WindowsClient.pak", "pakGuid": "A2", "key": "0x3"}
	]}`

	a, err := Parse([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	if a.Version != nil {
		t.Errorf("Version=%q, expected nil for a build without one", *a.Version)
	}
	if len(a.DynamicKeys) != 2 || a.DynamicKeys[1].PakGuid != "A2" {
		t.Errorf("DynamicKeys=%+v", a.DynamicKeys)
	}

	_, err = Parse([]byte(`{"mainKey": "0x1", "build": "b", "updated": "2023-11-01T00:00:00Z", "dynamicKeys": [{"pakGuid": "A1", "key": "0x2"}]}`))
	if !eris.Is(err, payload.ErrMalformedPayload) {
		t.Errorf("dynamic key without pakFilename: err=%v", err)
	}
}

func TestEqualByMainKey(t *testing.T) {
	a := &Aes{MainKey: "0x1", Build: "one"}
	b := &Aes{MainKey: "0x1", Build: "two"}
	c := &Aes{MainKey: "0x2", Build: "one"}

	if !a.Equal(b) || a.Equal(c) {
		t.Error("Aes equality should follow the main key")
	}
}

func TestClientFetch(t *testing.T) {
	server := apitest.New(t)
	server.Data("/v2/aes", `{"mainKey": "0xABC", "build": "++Fortnite+Release-28.10-CL-1", "updated": "2023-12-12T00:00:00Z", "dynamicKeys": null}`)
	client := &Client{Transport: server.Transport("")}

	a, err := client.Fetch(context.Background(), Base64KeyFormat)
	if err != nil {
		t.Fatal(err)
	}
	if a == nil || *a.Version != "28.10" {
		t.Fatalf("a=%+v", a)
	}
	if format := server.Hits()[0].Query["keyFormat"]; len(format) != 1 || format[0] != "base64" {
		t.Errorf("keyFormat=%v", format)
	}
}
