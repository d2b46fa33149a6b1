package validate

import (
	"testing"
	"time"
)

func TestDate_AcceptedLayouts(t *testing.T) {
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"15/01/2024", "15-01-2024", "15012024"} {
		got, err := Date(s)
		if err != nil {
			t.Fatalf("%q: expected no error, got %v", s, err)
		}
		if !got.Equal(want) {
			t.Errorf("%q: expected %v, got %v", s, want, got)
		}
	}
}

func TestDate_Rejected(t *testing.T) {
	for _, s := range []string{"2024-01-15", "15/13/2024", "32/01/2024", "yesterday", ""} {
		if _, err := Date(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
}

func TestNationalID(t *testing.T) {
	if err := NationalID("12345678901"); err != nil {
		t.Fatalf("expected valid national ID, got %v", err)
	}
	for _, s := range []string{"123", "123456789012", "1234567890a", ""} {
		if err := NationalID(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
}

func TestMoney(t *testing.T) {
	v, err := Money("250.50")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v != 250.50 {
		t.Errorf("expected 250.50, got %f", v)
	}
	if v, err := Money("0"); err != nil || v != 0 {
		t.Errorf("expected zero to be accepted, got %f, %v", v, err)
	}
	for _, s := range []string{"-5", "much", ""} {
		if _, err := Money(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
}

func TestPropertyKind(t *testing.T) {
	for _, k := range PropertyKinds {
		if err := PropertyKind(k); err != nil {
			t.Errorf("%q: expected known kind, got %v", k, err)
		}
	}
	if err := PropertyKind("castle"); err == nil {
		t.Error("expected unknown kind to be rejected")
	}
}

func TestRequired(t *testing.T) {
	if err := Required("name", "Carlos"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := Required("name", ""); err == nil {
		t.Fatal("expected error for empty value")
	}
}
