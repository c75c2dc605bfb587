package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/rotisserie/eris"
)

var (
	ErrUnexpectedStatus = eris.New("fortnite-api responded with a non-success status")
	ErrEnvelope         = eris.New("fortnite-api response envelope is unreadable")
	ErrMissingApiKey    = eris.New("this endpoint requires an api key")
)

// envelope is the wrapper every API response arrives in.
type envelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func ensureSuccessResponse(statusCode int) error {
	if statusCode < 200 || statusCode >= 300 {
		return eris.Wrapf(ErrUnexpectedStatus, "status %d", statusCode)
	}

	return nil
}

// unwrapEnvelope maps an HTTP status and body to the data member. 404, 204 and
// a null data member are "no content" and yield (nil, nil).
func unwrapEnvelope(statusCode int, body []byte) (json.RawMessage, error) {
	if statusCode == http.StatusNotFound || statusCode == http.StatusNoContent {
		return nil, nil
	}

	var response envelope
	decodeErr := json.Unmarshal(body, &response)

	if err := ensureSuccessResponse(statusCode); err != nil {
		if decodeErr == nil && response.Error != "" {
			return nil, eris.Wrapf(err, "%s", response.Error)
		}
		return nil, err
	}

	if decodeErr != nil {
		return nil, eris.Wrapf(ErrEnvelope, "%v", decodeErr)
	}

	if response.Status == http.StatusNotFound {
		return nil, nil
	}

	if response.Status != 0 && (response.Status < 200 || response.Status >= 300) {
		return nil, eris.Wrapf(ErrUnexpectedStatus, "envelope status %d: %s", response.Status, response.Error)
	}

	if len(response.Data) == 0 || bytes.Equal(bytes.TrimSpace(response.Data), []byte("null")) {
		return nil, nil
	}

	return response.Data, nil
}
