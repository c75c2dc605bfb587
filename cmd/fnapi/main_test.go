package main

import (
	"net/http"
	"testing"

	"github.com/escrow-tf/fortnite/internal/apitest"
)

func TestRunExitCodes(t *testing.T) {
	server := apitest.New(t)
	server.Data("/v2/aes", `{"mainKey": "0xABC", "build": "++Fortnite+Release-28.10-CL-30000000-Windows", "updated": "2023-12-12T00:00:00Z", "dynamicKeys": []}`)
	server.Status("/v2/shop", http.StatusBadRequest, "Invalid language")

	t.Setenv("FORTNITE_API_BASE_URL", server.URL)
	t.Setenv("FORTNITE_API_CACHE", "memory")
	t.Setenv("FNAPI_LOG_LEVEL", "error")

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no command", nil, 2},
		{"unknown command", []string{"frobnicate"}, 2},
		{"missing argument", []string{"cosmetic"}, 2},
		{"success", []string{"aes"}, 0},
		{"no content", []string{"map"}, 0},
		{"upstream error", []string{"shop"}, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if code := run(test.args); code != test.code {
				t.Errorf("run(%v)=%d, expected %d", test.args, code, test.code)
			}
		})
	}
}

func TestRunRejectsUnknownCache(t *testing.T) {
	t.Setenv("FORTNITE_API_CACHE", "memcached")
	t.Setenv("FNAPI_LOG_LEVEL", "error")

	if code := run([]string{"aes"}); code != 1 {
		t.Errorf("run=%d, expected 1", code)
	}
}
