package valueobject

import "testing"

func TestNewEmail_NormalizesCaseAndSpaces(t *testing.T) {
	e, err := NewEmail("  Broker@Example.COM ")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.String() != "broker@example.com" {
		t.Errorf("got %q", e.String())
	}
}

func TestNewEmail_Empty_ReturnsErrEmailEmpty(t *testing.T) {
	if _, err := NewEmail("   "); err != ErrEmailEmpty {
		t.Errorf("expected ErrEmailEmpty, got %v", err)
	}
}

func TestNewEmail_DisplayNameForm_ReturnsErrEmailInvalid(t *testing.T) {
	if _, err := NewEmail("Broker <broker@example.com>"); err != ErrEmailInvalid {
		t.Errorf("expected ErrEmailInvalid, got %v", err)
	}
}

func TestNewEmail_MissingAt_ReturnsErrEmailInvalid(t *testing.T) {
	if _, err := NewEmail("broker.example.com"); err != ErrEmailInvalid {
		t.Errorf("expected ErrEmailInvalid, got %v", err)
	}
}
