// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Payload is a JSON object exactly as it is sent to the payment API.
//
// Numbers decoded through [ParsePayload] are kept as [json.Number] so that
// amounts survive a decode/encode cycle without float rounding.
type Payload map[string]any

// ParsePayload decodes text into a Payload. The text must hold a single
// JSON object.
func ParsePayload(text string) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()

	var p Payload
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPayloadNotObject
	}
	if dec.More() {
		return nil, ErrPayloadTrailingData
	}
	return p, nil
}

// Clone returns a deep copy of p. Nested objects and arrays are copied,
// scalar values are shared.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	return cloneValue(map[string]any(p)).(map[string]any)
}

// Object returns the nested object stored under key, or nil when the key is
// missing or holds a non-object value.
func (p Payload) Object(key string) Payload {
	switch v := p[key].(type) {
	case map[string]any:
		return v
	case Payload:
		return v
	default:
		return nil
	}
}

// String returns the value under key rendered as a string. Missing keys and
// null values yield "".
func (p Payload) String(key string) string {
	switch v := p[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Pretty renders p as indented JSON. HTML characters are not escaped.
func (p Payload) Pretty() string {
	return encode(p, "  ")
}

// Compact renders p as single-line JSON. HTML characters are not escaped.
func (p Payload) Compact() string {
	return encode(p, "")
}

func encode(v any, indent string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = cloneValue(item)
		}
		return out
	case Payload:
		return Payload(cloneValue(map[string]any(t)).(map[string]any))
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return t
	}
}
