// Package qr builds the JSON payload shown in the verification QR code.
package qr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"verichain/internal/crypto"
)

// SessionPrefix starts every generated session label.
const SessionPrefix = "session_"

const sessionLabelLen = 9

// Payload is the object encoded into the QR code.
type Payload struct {
	Type      string `json:"type"`
	Session   string `json:"session"`
	Timestamp int64  `json:"timestamp"`
	Endpoint  string `json:"endpoint"`
}

// New returns a payload with a fresh random session label, stamped at now
// in Unix milliseconds.
func New(kind, endpoint string, now time.Time) (Payload, error) {
	label, err := crypto.RandomBase36(sessionLabelLen)
	if err != nil {
		return Payload{}, fmt.Errorf("session label: %w", err)
	}
	return Payload{
		Type:      kind,
		Session:   SessionPrefix + label,
		Timestamp: now.UnixMilli(),
		Endpoint:  endpoint,
	}, nil
}

// Time returns the payload timestamp.
func (p Payload) Time() time.Time { return time.UnixMilli(p.Timestamp) }

// Encode returns the compact JSON text.
func (p Payload) Encode() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses and sanity-checks a payload.
func Decode(text string) (Payload, error) {
	var p Payload
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Payload{}, fmt.Errorf("decode qr payload: %w", err)
	}
	if p.Type == "" || !strings.HasPrefix(p.Session, SessionPrefix) || p.Endpoint == "" {
		return Payload{}, errors.New("decode qr payload: missing fields")
	}
	return p, nil
}
