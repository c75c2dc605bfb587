package cosmetics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/escrow-tf/fortnite/api/payload"
	"github.com/rotisserie/eris"
)

func TestBrOmittedFieldsAreEmpty(t *testing.T) {
	br, err := ParseBr(mustObject(t, brMinimal), nil)
	if err != nil {
		t.Fatal(err)
	}

	if br.Type != nil || br.Rarity != nil || br.Series != nil || br.Set != nil || br.Introduction != nil {
		t.Error("info objects should be nil when omitted")
	}
	if br.Images != nil {
		t.Errorf("Images=%v, expected nil", br.Images)
	}
	if br.ExclusiveDescription != nil || br.ShowcaseVideo != nil || br.Path != nil || br.DynamicPakID != nil {
		t.Error("optional strings should be nil when omitted")
	}
	if br.ShowcaseVideoURL() != nil {
		t.Error("ShowcaseVideoURL should be nil without a video id")
	}

	for name, length := range map[string]int{
		"Variants":        len(br.Variants),
		"BuiltInEmoteIDs": len(br.BuiltInEmoteIDs),
		"SearchTags":      len(br.SearchTags),
		"GameplayTags":    len(br.GameplayTags),
		"MetaTags":        len(br.MetaTags),
		"ShopHistory":     len(br.ShopHistory),
	} {
		if length != 0 {
			t.Errorf("len(%s)=%d, expected 0", name, length)
		}
	}
	if br.Variants == nil || br.SearchTags == nil || br.ShopHistory == nil {
		t.Error("collections should be empty, not nil")
	}
}

func TestBrFullPayload(t *testing.T) {
	br, err := ParseBr(mustObject(t, brFull), nil)
	if err != nil {
		t.Fatal(err)
	}

	if br.ID != "CID_028_Athena_Commando_F" || br.Name != "Renegade Raider" {
		t.Errorf("ID=%q Name=%q", br.ID, br.Name)
	}
	if br.Type == nil || br.Type.BackendValue != "AthenaCharacter" {
		t.Errorf("Type=%+v", br.Type)
	}
	if br.Rarity == nil || br.Rarity.Value != "rare" {
		t.Errorf("Rarity=%+v", br.Rarity)
	}
	if br.Series == nil || br.Series.Image == nil || len(br.Series.Colors) != 2 {
		t.Errorf("Series=%+v", br.Series)
	}
	if br.Introduction == nil || br.Introduction.Chapter != 1 || br.Introduction.Season != "1" {
		t.Errorf("Introduction=%+v", br.Introduction)
	}
	if br.ExclusiveDescription == nil || *br.ExclusiveDescription != "" {
		t.Errorf("ExclusiveDescription=%v, expected empty string kept", br.ExclusiveDescription)
	}

	if len(br.Variants) != 1 || len(br.Variants[0].Options) != 2 {
		t.Fatalf("Variants=%+v", br.Variants)
	}
	option := br.Variants[0].Options[1]
	if option.Tag != "Mat2" || option.UnlockRequirements == nil || *option.UnlockRequirements != "Reach level 20" {
		t.Errorf("option=%+v", option)
	}
	if br.Variants[0].Options[0].UnlockRequirements != nil {
		t.Error("first option has no unlock requirements")
	}

	video := br.ShowcaseVideoURL()
	if video == nil || *video != "https://youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Errorf("ShowcaseVideoURL=%v", video)
	}
}

func TestShopHistoryKeepsPayloadOrder(t *testing.T) {
	br, err := ParseBr(mustObject(t, brFull), nil)
	if err != nil {
		t.Fatal(err)
	}

	expected := []time.Time{
		time.Date(2018, 1, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2017, 11, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2019, 4, 20, 0, 0, 0, 0, time.UTC),
	}
	if len(br.ShopHistory) != len(expected) {
		t.Fatalf("len(ShopHistory)=%d", len(br.ShopHistory))
	}
	for i := range expected {
		if !br.ShopHistory[i].Equal(expected[i]) {
			t.Errorf("ShopHistory[%d]=%v, expected %v", i, br.ShopHistory[i], expected[i])
		}
	}
}

func TestImageViews(t *testing.T) {
	br, err := ParseBr(mustObject(t, brFull), nil)
	if err != nil {
		t.Fatal(err)
	}
	images := br.Images
	if images == nil {
		t.Fatal("Images=nil")
	}

	if images.Featured != nil {
		t.Errorf("Featured=%v, expected nil for null", images.Featured)
	}
	if images.SmallIcon == nil || !strings.HasSuffix(images.SmallIcon.URL, "smallicon.png") {
		t.Errorf("SmallIcon=%v", images.SmallIcon)
	}
	if background := images.Background(); background == nil || !strings.HasSuffix(background.URL, "background.png") {
		t.Errorf("Background()=%v", background)
	}
	if images.CoverArt() != nil || images.Decal() != nil {
		t.Error("CoverArt and Decal are absent from other")
	}
	if images.Lego == nil || images.Lego.Large == nil || images.Lego.Wide != nil {
		t.Errorf("Lego=%+v", images.Lego)
	}

	// views build a new asset per call
	if images.Background() == images.Background() {
		t.Error("Background() should not return a shared pointer")
	}
}

func TestRawDataIsOriginalPayload(t *testing.T) {
	for kind, raw := range map[Kind]string{
		BrKind:         brFull,
		CarKind:        carFull,
		InstrumentKind: instrumentMinimal,
		TrackKind:      trackMinimal,
		LegoKind:       legoMinimal,
		LegoKitKind:    legoKitMinimal,
	} {
		cosmetic, err := Parse(kind, []byte(raw), nil)
		if err != nil {
			t.Errorf("Parse(%s): %v", kind, err)
			continue
		}
		if cosmetic.Kind() != kind {
			t.Errorf("Kind()=%s, expected %s", cosmetic.Kind(), kind)
		}
		if !bytes.Equal(cosmetic.Common().RawData, []byte(raw)) {
			t.Errorf("%s RawData differs from payload", kind)
		}
	}
}

func TestEqualityIsByID(t *testing.T) {
	a, err := ParseBr(mustObject(t, `{"id":"CID_X","name":"One","description":"a","added":"2020-01-01T00:00:00Z"}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseBr(mustObject(t, `{"id":"CID_X","name":"Two","description":"b","added":"2021-01-01T00:00:00Z","searchTags":["x"]}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	c, err := ParseBr(mustObject(t, `{"id":"CID_Y","name":"One","description":"a","added":"2020-01-01T00:00:00Z"}`), nil)
	if err != nil {
		t.Fatal(err)
	}

	if !Equal(a, b) {
		t.Error("same id should be equal")
	}
	if Equal(a, c) {
		t.Error("different ids should not be equal")
	}
	if !a.Base.Equal(b.Base) {
		t.Error("Base.Equal should match Equal")
	}
	if Equal(a, nil) || !Equal(nil, nil) {
		t.Error("nil handling")
	}
}

func TestMissingRequiredFieldNamesCosmetic(t *testing.T) {
	_, err := ParseBr(mustObject(t, `{"id":"CID_Broken","description":"d","added":"2020-01-01T00:00:00Z"}`), nil)
	if !eris.Is(err, payload.ErrMalformedPayload) {
		t.Fatalf("err=%v, expected ErrMalformedPayload", err)
	}
	if !strings.Contains(err.Error(), "CID_Broken") {
		t.Errorf("err=%q should name the cosmetic", err.Error())
	}

	_, err = ParseCar(mustObject(t, `{"id":"Body_X","name":"X","description":"d","added":"2020-01-01T00:00:00Z"}`), nil)
	if !eris.Is(err, payload.ErrMalformedPayload) {
		t.Errorf("car without vehicleId err=%v", err)
	}

	_, err = ParseBr(mustObject(t, `{"id":"CID_BadDate","name":"n","description":"d","added":"last tuesday"}`), nil)
	if !eris.Is(err, payload.ErrMalformedDate) {
		t.Errorf("bad added err=%v, expected ErrMalformedDate", err)
	}
}

func TestPresentInfoObjectRequiresItsFields(t *testing.T) {
	_, err := ParseBr(mustObject(t, `{"id":"CID_Z","name":"n","description":"d","added":"2020-01-01T00:00:00Z","set":{"value":"Renegade"}}`), nil)
	if !eris.Is(err, payload.ErrMalformedPayload) {
		t.Errorf("err=%v, expected ErrMalformedPayload for incomplete set", err)
	}

	br, err := ParseBr(mustObject(t, `{"id":"CID_Z","name":"n","description":"d","added":"2020-01-01T00:00:00Z","set":{}}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if br.Set != nil {
		t.Errorf("Set=%+v, expected nil for an empty object", br.Set)
	}
}

func TestCarAndTrack(t *testing.T) {
	car, err := ParseCar(mustObject(t, carFull), nil)
	if err != nil {
		t.Fatal(err)
	}
	if car.VehicleID != "Fennec" {
		t.Errorf("VehicleID=%q", car.VehicleID)
	}
	if video := car.ShowcaseVideoURL(); video == nil || *video != ShowcaseVideoPrefix+"abc123" {
		t.Errorf("ShowcaseVideoURL=%v", video)
	}
	if car.Images == nil || car.Images.SmallIcon == nil || car.Images.Icon == nil {
		t.Errorf("small/large should fill SmallIcon/Icon: %+v", car.Images)
	}

	minimal, err := ParseCar(mustObject(t, carMinimal), nil)
	if err != nil {
		t.Fatal(err)
	}
	if minimal.ShowcaseVideoURL() != nil || minimal.Images != nil || len(minimal.GameplayTags) != 0 {
		t.Errorf("minimal car=%+v", minimal)
	}

	track, err := ParseTrack(mustObject(t, trackMinimal), nil)
	if err != nil {
		t.Fatal(err)
	}
	if track.BPM != 120 || track.Difficulty.PlasticDrums != 6 || track.Album != nil {
		t.Errorf("track=%+v", track)
	}
	if track.AlbumArt.URL != "https://cdn.example.test/ruby.jpg" {
		t.Errorf("AlbumArt=%v", track.AlbumArt)
	}
}

func TestParseUnknownKind(t *testing.T) {
	cosmetic, err := Parse(Kind(42), []byte(brMinimal), nil)
	if err == nil || cosmetic != nil {
		t.Errorf("Parse(42)=%v,%v expected error", cosmetic, err)
	}
}

func TestThemedImagesAcceptUrlOrObject(t *testing.T) {
	br, err := ParseBr(mustObject(t, `{"id":"CID_1","name":"n","description":"d","added":"2020-01-01T00:00:00Z",
		"images":{"icon":"https://x/icon.png","lego":"https://x/lego.png","bean":""}}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	images := br.Images
	if images == nil || images.Lego == nil || images.Lego.Large == nil || images.Lego.Large.URL != "https://x/lego.png" {
		t.Fatalf("Lego=%+v", images)
	}
	if images.Lego.Small != nil || images.Lego.Wide != nil {
		t.Errorf("a bare url only fills Large: %+v", images.Lego)
	}
	if images.Bean != nil {
		t.Errorf("Bean=%+v, expected nil for an empty url", images.Bean)
	}

	br, err = ParseBr(mustObject(t, `{"id":"CID_2","name":"n","description":"d","added":"2020-01-01T00:00:00Z",
		"images":{"bean":{"small":"https://x/bean_small.png"}}}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if br.Images.Bean == nil || br.Images.Bean.Small == nil || br.Images.Bean.Large != nil {
		t.Errorf("Bean=%+v", br.Images.Bean)
	}

	_, err = ParseBr(mustObject(t, `{"id":"CID_3","name":"n","description":"d","added":"2020-01-01T00:00:00Z",
		"images":{"lego":42}}`), nil)
	if !eris.Is(err, payload.ErrMalformedPayload) {
		t.Errorf("numeric lego err=%v, expected ErrMalformedPayload", err)
	}
}
