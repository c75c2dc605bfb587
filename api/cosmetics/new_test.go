package cosmetics

import (
	"strings"
	"testing"
	"time"

	"github.com/escrow-tf/fortnite/api/payload"
	"github.com/rotisserie/eris"
)

func newCosmeticsPayload(hashes, lastAdditions, items string) string {
	return `{
		"build": "++Fortnite+Release-28.10-CL-30000000",
		"previousBuild": "++Fortnite+Release-28.01-CL-29000000",
		"date": "2023-12-12T08:00:00Z",
		"hashes": ` + hashes + `,
		"lastAdditions": ` + lastAdditions + `,
		"items": ` + items + `
	}`
}

const newItems = `{
	"br": [` + brMinimal + `],
	"tracks": [` + trackMinimal + `],
	"instruments": [],
	"cars": [` + carMinimal + `],
	"lego": null,
	"legoKits": [` + legoKitMinimal + `]
}`

func TestNewCosmeticsCategories(t *testing.T) {
	raw := newCosmeticsPayload(
		`{"all":"h-all","br":"h-br","tracks":"h-tracks","instruments":null,"cars":"h-cars","lego":null,"legoKits":"h-kits"}`,
		`{"all":"2023-12-12T08:00:00Z","br":"2023-12-01T00:00:00Z","tracks":"2023-12-02T00:00:00Z","instruments":null,"cars":"2023-12-04T00:00:00Z","lego":null,"legoKits":"2023-12-06T00:00:00Z"}`,
		newItems,
	)

	n, err := ParseNewCosmetics([]byte(raw), nil)
	if err != nil {
		t.Fatal(err)
	}

	if n.GlobalHash != "h-all" || n.Build != "++Fortnite+Release-28.10-CL-30000000" {
		t.Errorf("GlobalHash=%q Build=%q", n.GlobalHash, n.Build)
	}
	if !n.GlobalLastAddition.Equal(time.Date(2023, 12, 12, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("GlobalLastAddition=%v", n.GlobalLastAddition)
	}

	categories := n.Categories()
	if len(categories) != len(Kinds) {
		t.Fatalf("len(Categories)=%d", len(categories))
	}
	for i, kind := range Kinds {
		if categories[i].Kind != kind {
			t.Errorf("Categories()[%d].Kind=%s, expected %s", i, categories[i].Kind, kind)
		}
		for _, item := range categories[i].Items {
			if item.Kind() != kind {
				t.Errorf("%s category holds a %s", kind, item.Kind())
			}
		}
	}

	br := n.Category(BrKind)
	if br.Hash == nil || *br.Hash != "h-br" || br.LastAddition == nil || br.LastAddition.Day() != 1 || len(br.Items) != 1 {
		t.Errorf("br=%+v", br)
	}

	instruments := n.Category(InstrumentKind)
	if instruments.Hash != nil || instruments.LastAddition != nil || len(instruments.Items) != 0 {
		t.Errorf("instruments=%+v, expected empty", instruments)
	}

	lego := n.Category(LegoKind)
	if lego.Items == nil || len(lego.Items) != 0 {
		t.Errorf("null lego items should be empty, got %v", lego.Items)
	}

	if len(n.Br()) != 1 || len(n.Tracks()) != 1 || len(n.Cars()) != 1 || len(n.LegoKits()) != 1 || len(n.Lego()) != 0 {
		t.Error("typed accessors disagree with categories")
	}
}

func TestNewCosmeticsCategoryPartsShareKey(t *testing.T) {
	items := `{"br":[],"tracks":[],"instruments":[],"cars":[],"lego":[],"legoKits":[]}`
	hashes := `{"all":"x","br":"h-br","tracks":null,"instruments":null,"cars":"h-cars","lego":null,"legoKits":null}`
	swappedHashes := `{"all":"x","br":"h-cars","tracks":null,"instruments":null,"cars":"h-br","lego":null,"legoKits":null}`
	additions := `{"all":"2023-12-12T00:00:00Z","br":"2023-12-01T00:00:00Z","tracks":null,"instruments":null,"cars":"2023-12-04T00:00:00Z","lego":null,"legoKits":null}`
	swappedAdditions := `{"all":"2023-12-12T00:00:00Z","br":"2023-12-04T00:00:00Z","tracks":null,"instruments":null,"cars":"2023-12-01T00:00:00Z","lego":null,"legoKits":null}`

	original, err := ParseNewCosmetics([]byte(newCosmeticsPayload(hashes, additions, items)), nil)
	if err != nil {
		t.Fatal(err)
	}
	swapped, err := ParseNewCosmetics([]byte(newCosmeticsPayload(swappedHashes, swappedAdditions, items)), nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, pair := range [][2]Kind{{BrKind, CarKind}, {CarKind, BrKind}} {
		before, after := original.Category(pair[0]), swapped.Category(pair[1])
		if *before.Hash != *after.Hash || !before.LastAddition.Equal(*after.LastAddition) {
			t.Errorf("%s before swap should match %s after swap: %v/%v vs %v/%v",
				pair[0], pair[1], *before.Hash, before.LastAddition, *after.Hash, after.LastAddition)
		}
	}

	br := original.Category(BrKind)
	if *br.Hash != "h-br" || br.LastAddition.Day() != 1 {
		t.Errorf("br hash and last addition drifted: %v %v", *br.Hash, br.LastAddition)
	}
}

func TestNewCosmeticsMissingCategoryKey(t *testing.T) {
	full := `{"all":"x","br":null,"tracks":null,"instruments":null,"cars":null,"lego":null,"legoKits":null}`
	noKits := `{"all":"x","br":null,"tracks":null,"instruments":null,"cars":null,"lego":null}`
	additions := `{"all":"2023-12-12T00:00:00Z","br":null,"tracks":null,"instruments":null,"cars":null,"lego":null,"legoKits":null}`
	items := `{"br":[],"tracks":[],"instruments":[],"cars":[],"lego":[],"legoKits":[]}`

	for name, raw := range map[string]string{
		"hashes":        newCosmeticsPayload(noKits, additions, items),
		"lastAdditions": newCosmeticsPayload(full, strings.Replace(additions, `,"legoKits":null`, "", 1), items),
		"items":         newCosmeticsPayload(full, additions, strings.Replace(items, `,"legoKits":[]`, "", 1)),
	} {
		_, err := ParseNewCosmetics([]byte(raw), nil)
		if !eris.Is(err, payload.ErrMalformedPayload) {
			t.Errorf("%s without legoKits: err=%v, expected ErrMalformedPayload", name, err)
		}
	}

	if _, err := ParseNewCosmetics([]byte(newCosmeticsPayload(full, additions, items)), nil); err != nil {
		t.Errorf("complete payload: %v", err)
	}
}

func TestNewBrCosmetics(t *testing.T) {
	raw := `{
		"build": "++Fortnite+Release-28.10-CL-30000000",
		"previousBuild": "++Fortnite+Release-28.01-CL-29000000",
		"hash": "abc",
		"date": "2023-12-12T08:00:00Z",
		"lastAddition": "2023-12-12T07:00:00Z",
		"items": [` + brMinimal + `,` + brFull + `]
	}`

	n, err := ParseNewBrCosmetics([]byte(raw), nil)
	if err != nil {
		t.Fatal(err)
	}
	if n.Hash != "abc" || len(n.Items) != 2 || n.Items[1].Name != "Renegade Raider" {
		t.Errorf("NewBrCosmetics=%+v", n)
	}
}

func TestNewCosmeticsUnknownCategory(t *testing.T) {
	n, err := ParseNewCosmetics([]byte(newCosmeticsPayload(
		`{"all":"x","br":null,"tracks":null,"instruments":null,"cars":null,"lego":null,"legoKits":null}`,
		`{"all":"2023-12-12T00:00:00Z","br":null,"tracks":null,"instruments":null,"cars":null,"lego":null,"legoKits":null}`,
		newItems,
	)), nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, kind := range []Kind{Kind(len(Kinds)), Kind(-1)} {
		category := n.Category(kind)
		if category.Kind != kind || category.Hash != nil || category.LastAddition != nil {
			t.Errorf("Category(%d)=%+v", kind, category)
		}
		if category.Items == nil || len(category.Items) != 0 {
			t.Errorf("Category(%d).Items=%v, expected empty", kind, category.Items)
		}
		if kind.Valid() || kind.String() != "unknown" {
			t.Errorf("Kind(%d) should be invalid", kind)
		}
	}
}
