package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/flockhq/flock/internal/members/store"
	"github.com/flockhq/flock/pkg/flocksdk"
)

// decodeBody parses a JSON request body into v. On failure it writes the
// invalid_request error and returns false; handlers just return.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		flocksdk.ErrInvalidRequest.WriteError(w)
		return false
	}
	return true
}

// writeStoreError maps store sentinels onto the API error taxonomy.
// Anything unrecognised is a 500 and the detail stays in the log.
func writeStoreError(w http.ResponseWriter, log *slog.Logger, action string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		flocksdk.ErrNotFound.WriteError(w)
	case errors.Is(err, store.ErrAlreadyExists):
		flocksdk.ErrNameTaken.WriteError(w)
	default:
		log.Error(action, "err", err)
		flocksdk.ErrServerError.WriteError(w)
	}
}
