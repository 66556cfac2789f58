package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "phonebook/pkg/domain-errors"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the JSON error envelope used by
// the auth surface. Internal errors omit the description so infrastructure
// details never leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := map[string]string{
		"error": string(code),
	}
	if code != dErrors.CodeInternal {
		if msg := dErrors.MessageOf(err); msg != "" {
			body["error_description"] = msg
		}
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}

// DecodeJSON decodes the request body into dst. A malformed body yields a
// CodeBadRequest domain error so handlers can render it uniformly.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return dErrors.Wrap(dErrors.CodeBadRequest, "Invalid format. Post request should be valid json.", err)
	}
	return nil
}
