package entity

import (
	"testing"
	"time"
)

func TestNewSession_SetsExpiryFromTTL(t *testing.T) {
	s := NewSession("sid", 7, "agent", "127.0.0.1", time.Hour)

	if s.UserID != 7 {
		t.Errorf("got user %d, want 7", s.UserID)
	}
	if d := s.ExpiresAt.Sub(s.CreatedAt); d != time.Hour {
		t.Errorf("got ttl %v, want 1h", d)
	}
	if !s.IsValid() {
		t.Error("fresh session should be valid")
	}
}

func TestSession_IsExpired_PastExpiry(t *testing.T) {
	s := NewSession("sid", 7, "", "", time.Hour)
	s.ExpiresAt = time.Now().Add(-time.Second)

	if !s.IsExpired() {
		t.Error("session past its expiry should be expired")
	}
}
