package gamemap

import (
	"context"
	"testing"

	"github.com/escrow-tf/fortnite/api"
	"github.com/escrow-tf/fortnite/internal/apitest"
)

const mapData = `{
	"images": {"blank": "https://fortnite-api.com/images/map.png", "pois": "https://fortnite-api.com/images/map_en.png"},
	"pois": [
		{"id": "Athena.Location.POI.Lazy", "name": "LAZY LAGOON", "location": {"x": -41472, "y": 65280, "z": 1024.5}},
		{"id": "Athena.Location.POI.Frenzy", "name": "FRENZY FIELDS", "location": {"x": 0, "y": 0, "z": 0}}
	]
}`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(mapData), nil)
	if err != nil {
		t.Fatal(err)
	}

	if m.Images.POIs.URL != "https://fortnite-api.com/images/map_en.png" {
		t.Errorf("Images=%+v", m.Images)
	}

	lazy := m.POI("Athena.Location.POI.Lazy")
	if lazy == nil || lazy.Location.Z != 1024.5 || lazy.Location.X != -41472 {
		t.Errorf("POI=%+v", lazy)
	}
	if m.POI("Athena.Location.POI.Nowhere") != nil {
		t.Error("unknown POI should be nil")
	}
}

func TestParseWithoutPOIs(t *testing.T) {
	m, err := Parse([]byte(`{"images": {"blank": "a", "pois": "b"}}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.POIs == nil || len(m.POIs) != 0 {
		t.Errorf("POIs=%v, expected empty", m.POIs)
	}
}

func TestClientFetch(t *testing.T) {
	server := apitest.New(t)
	server.Data("/v2/map", mapData)
	client := &Client{Transport: server.Transport("")}

	m, err := client.Fetch(context.Background(), api.EnglishLanguage)
	if err != nil {
		t.Fatal(err)
	}
	if m == nil || len(m.POIs) != 2 {
		t.Fatalf("m=%+v", m)
	}
}
