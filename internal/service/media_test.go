package service

import (
	"errors"
	"strings"
	"testing"
)

func TestIsAcceptedImageType(t *testing.T) {
	testCases := []struct {
		contentType string
		expected    bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"image/gif", true},
		{"image/svg+xml", true},
		{"image/webp", true},
		{"image/x-icon", true},
		{"IMAGE/PNG", true},
		{"image/svg+xml; charset=utf-8", true},
		{"image/tiff", false},
		{"application/pdf", false},
		{"text/html", false},
		{"", false},
	}
	for _, tc := range testCases {
		if got := IsAcceptedImageType(tc.contentType); got != tc.expected {
			t.Errorf("IsAcceptedImageType(%q) = %v, want %v", tc.contentType, got, tc.expected)
		}
	}
}

func TestValidateExternalLink(t *testing.T) {
	if err := ValidateExternalLink("https://cdn.test.com/pic.png", "a chart"); err != nil {
		t.Fatalf("valid link rejected: %v", err)
	}
	if err := ValidateExternalLink("", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty link: err = %v", err)
	}
	if err := ValidateExternalLink("https://t.co/"+strings.Repeat("x", 2048), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("oversized link: err = %v", err)
	}
	if err := ValidateExternalLink("https://t.co/a", strings.Repeat("x", 513)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("oversized caption: err = %v", err)
	}
}

func TestMediaURL(t *testing.T) {
	got := MediaURL(7, "11111111-2222-3333-4444-555555555555")
	want := "/api/v1/project/7/image/11111111-2222-3333-4444-555555555555"
	if got != want {
		t.Fatalf("MediaURL = %q, want %q", got, want)
	}
}

func TestNewMediaIDUnique(t *testing.T) {
	a, b := NewMediaID(), NewMediaID()
	if a == b {
		t.Fatal("consecutive media ids collided")
	}
	if len(a) != 36 {
		t.Fatalf("media id %q is not a canonical uuid", a)
	}
}
