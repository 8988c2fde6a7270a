package adapter

import (
	"bytes"
	"encoding/json"
)

// redirectURLKey is the top-level response field carrying the 3-D Secure
// redirect.
const redirectURLKey = "redirect_url"

// decodeBody returns the JSON value of body with numbers kept as
// json.Number, or nil when body is not a single JSON value.
func decodeBody(body []byte) any {
	if !json.Valid(body) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}

// ExtractRedirectURL returns the 3-D Secure redirect URL of a decoded
// response body, or "" when there is none.
func ExtractRedirectURL(body any) string {
	obj, ok := body.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := obj[redirectURLKey].(string)
	return s
}
