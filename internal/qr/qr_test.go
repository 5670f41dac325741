package qr_test

import (
	"strings"
	"testing"
	"time"

	"verichain/internal/qr"
)

func TestNewPayloadShape(t *testing.T) {
	now := time.UnixMilli(1_726_000_000_123)
	p, err := qr.New("verichain_verification", "https://api.verichain.id/verify", now)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !strings.HasPrefix(p.Session, "session_") || len(p.Session) != len("session_")+9 {
		t.Fatalf("session label = %q", p.Session)
	}
	if p.Timestamp != 1_726_000_000_123 || !p.Time().Equal(now) {
		t.Fatalf("timestamp = %d", p.Timestamp)
	}

	text, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, key := range []string{`"type":"verichain_verification"`, `"endpoint":"https://api.verichain.id/verify"`, `"session":"session_`} {
		if !strings.Contains(text, key) {
			t.Fatalf("payload %s missing %s", text, key)
		}
	}

	back, err := qr.Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back != p {
		t.Fatalf("decoded %+v, want %+v", back, p)
	}
}

func TestNewPayloadLabelsDiffer(t *testing.T) {
	a, _ := qr.New("t", "https://x.test", time.Now())
	b, _ := qr.New("t", "https://x.test", time.Now())
	if a.Session == b.Session {
		t.Fatalf("labels collided: %s", a.Session)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "{}", `{"type":"x","session":"nope","timestamp":1,"endpoint":"e"}`, `{"extra":1}`} {
		if _, err := qr.Decode(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
