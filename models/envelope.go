// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Success codes used by the OCR service envelope. Both are observed in the
// wild; 200 looks like an HTTP status leaking into the payload.
const (
	EnvelopeCodeOK     EnvelopeCode = "0"
	EnvelopeCodeOKHTTP EnvelopeCode = "200"
)

// EnvelopeCode is the `code` field of a [RemoteEnvelope]. The service sends
// numbers for most responses and strings (e.g. "A0202") for some
// authentication errors, so both forms are accepted.
type EnvelopeCode string

// UnmarshalJSON accepts a JSON number or a JSON string.
func (c *EnvelopeCode) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*c = EnvelopeCode(strconv.FormatFloat(value, 'f', -1, 64))
	case string:
		*c = EnvelopeCode(value)
	case nil:
		*c = ""
	default:
		return fmt.Errorf("unsupported envelope code %s", string(b))
	}
	return nil
}

// Succeeded reports whether the code denotes success.
func (c EnvelopeCode) Succeeded() bool {
	return c == EnvelopeCodeOK || c == EnvelopeCodeOKHTTP
}

// RemoteEnvelope is the uniform `{code, msg, data}` wrapper returned by every
// OCR service endpoint.
//
// An envelope built with [ParseRemoteEnvelope] remembers the exact bytes it
// was decoded from and marshals back to them, so relaying it to the browser
// keeps fields the relay does not model.
type RemoteEnvelope struct {
	Code    EnvelopeCode    `json:"code"`
	Msg     string          `json:"msg"`
	TraceID string          `json:"trace_id,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`

	raw []byte
}

// ParseRemoteEnvelope decodes body into a RemoteEnvelope.
func ParseRemoteEnvelope(body []byte) (RemoteEnvelope, error) {
	var env RemoteEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return RemoteEnvelope{}, err
	}
	env.raw = append([]byte(nil), body...)
	return env, nil
}

// Succeeded reports whether the envelope carries a success code.
func (e RemoteEnvelope) Succeeded() bool {
	return e.Code.Succeeded()
}

// MarshalJSON returns the original payload when the envelope was parsed from
// the wire and a plain encoding otherwise.
func (e RemoteEnvelope) MarshalJSON() ([]byte, error) {
	if len(e.raw) > 0 {
		return e.raw, nil
	}

	type plain RemoteEnvelope
	return json.Marshal(plain(e))
}
