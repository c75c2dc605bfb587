package cosmetics

import (
	"encoding/json"
	"testing"

	"github.com/escrow-tf/fortnite/api/payload"
)

const brMinimal = `{"id":"CID_001_Athena_Commando_F_Default","name":"Recruit","description":"Standard issue.","added":"2019-09-20T18:00:00+00:00"}`

const brFull = `{
	"id": "CID_028_Athena_Commando_F",
	"name": "Renegade Raider",
	"description": "Rare renegade raider outfit.",
	"exclusiveDescription": "",
	"type": {"value": "outfit", "displayValue": "Outfit", "backendValue": "AthenaCharacter"},
	"rarity": {"value": "rare", "displayValue": "Rare", "backendValue": "EFortRarity::Rare"},
	"series": {"value": "Icon Series", "image": "https://fortnite-api.com/images/series/icon.png", "colors": ["5cf2f3ff", "2b7bbaff"], "backendValue": "CreatorCollabSeries"},
	"set": {"value": "Renegade", "text": "Part of the Renegade set.", "backendValue": "Renegade"},
	"introduction": {"chapter": "1", "season": "1", "text": "Introduced in Chapter 1, Season 1.", "backendValue": 1},
	"images": {
		"smallIcon": "https://fortnite-api.com/images/cosmetics/br/cid_028/smallicon.png",
		"icon": "https://fortnite-api.com/images/cosmetics/br/cid_028/icon.png",
		"featured": null,
		"lego": {"small": "https://fortnite-api.com/images/cosmetics/lego/cid_028/small.png", "large": "https://fortnite-api.com/images/cosmetics/lego/cid_028/large.png"},
		"other": {"background": "https://fortnite-api.com/images/cosmetics/br/cid_028/background.png"}
	},
	"variants": [
		{"channel": "Material", "type": "Style", "options": [
			{"tag": "Mat1", "name": "Default", "image": "https://fortnite-api.com/images/cosmetics/br/cid_028/variants/material/mat1.png"},
			{"tag": "Mat2", "name": "Checkered", "image": "https://fortnite-api.com/images/cosmetics/br/cid_028/variants/material/mat2.png", "unlockRequirements": "Reach level 20"}
		]}
	],
	"searchTags": ["raider"],
	"showcaseVideo": "dQw4w9WgXcQ",
	"path": "Athena/Items/Cosmetics/Characters/CID_028_Athena_Commando_F",
	"added": "2017-10-24T00:00:00Z",
	"shopHistory": ["2018-01-08T00:00:00Z", "2017-11-02T00:00:00Z", "2019-04-20T00:00:00Z"]
}`

const carMinimal = `{"id":"Body_Octane","vehicleId":"Octane","name":"Octane","description":"The classic.","added":"2023-12-08T00:00:00Z"}`

const carFull = `{"id":"Body_Fennec","vehicleId":"Fennec","name":"Fennec","description":"Boxy.","showcaseVideo":"abc123","gameplayTags":["Vehicle.Body"],"images":{"small":"https://fortnite-api.com/images/cosmetics/cars/fennec/small.png","large":"https://fortnite-api.com/images/cosmetics/cars/fennec/large.png"},"added":"2023-12-08T00:00:00Z"}`

const instrumentMinimal = `{"id":"Sparks_Guitar_Default","name":"Default Guitar","description":"Strum.","added":"2023-12-09T00:00:00Z"}`

const trackMinimal = `{
	"id": "sid_placeholder_1",
	"devName": "Song_01",
	"title": "Ruby",
	"artist": "Some Band",
	"releaseYear": 2007,
	"bpm": 120,
	"duration": 212,
	"difficulty": {"vocals": 1, "guitar": 2, "bass": 3, "plasticBass": 4, "drums": 5, "plasticDrums": 6},
	"albumArt": "https://cdn.example.test/ruby.jpg",
	"added": "2023-12-09T00:00:00Z"
}`

const legoMinimal = `{"id":"CID_001_Lego","cosmeticId":"CID_001_Athena_Commando_F_Default","added":"2023-12-07T00:00:00Z"}`

const legoKitMinimal = `{"id":"LegoKit_House","name":"Cozy House","added":"2023-12-07T00:00:00Z"}`

func mustObject(t *testing.T, raw string) payload.Object {
	t.Helper()
	object, err := payload.ParseObject(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("ParseObject: %v", err)
	}
	return object
}
