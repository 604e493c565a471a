// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"errors"
	"testing"
)

func validCard() CardDetails {
	return CardDetails{
		Number:     "4111111111111111",
		Holder:     "AYSE YILMAZ",
		CVV:        "123",
		ExpiryDate: "12/26",
	}
}

func TestCardDetails_Validate(t *testing.T) {
	if err := validCard().Validate(); err != nil {
		t.Fatalf("valid card rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*CardDetails)
		want   error
	}{
		{"15 digit number", func(c *CardDetails) { c.Number = "411111111111111" }, ErrCardNumber},
		{"17 digit number", func(c *CardDetails) { c.Number = "41111111111111111" }, ErrCardNumber},
		{"letters in number", func(c *CardDetails) { c.Number = "4111x11111111111" }, ErrCardNumber},
		{"empty number", func(c *CardDetails) { c.Number = "" }, ErrCardNumber},
		{"2 digit cvv", func(c *CardDetails) { c.CVV = "12" }, ErrCardCVV},
		{"4 digit cvv", func(c *CardDetails) { c.CVV = "1234" }, ErrCardCVV},
		{"letters in cvv", func(c *CardDetails) { c.CVV = "1a3" }, ErrCardCVV},
		{"expiry without slash", func(c *CardDetails) { c.ExpiryDate = "1226" }, ErrCardExpiry},
		{"expiry single digit month", func(c *CardDetails) { c.ExpiryDate = "1/26" }, ErrCardExpiry},
		{"expiry four digit year", func(c *CardDetails) { c.ExpiryDate = "12/2026" }, ErrCardExpiry},
		{"empty expiry", func(c *CardDetails) { c.ExpiryDate = "" }, ErrCardExpiry},
	}
	for _, test := range tests {
		card := validCard()
		test.mutate(&card)
		if err := card.Validate(); !errors.Is(err, test.want) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.want)
		}
	}
}

func TestCardDetails_NoExpiryRangeCheck(t *testing.T) {
	// Syntactic guard only: an impossible month and a year in the
	// past both pass locally. The server decides real validity.
	card := validCard()
	card.ExpiryDate = "13/02"
	if err := card.Validate(); err != nil {
		t.Fatalf("syntactically valid expiry rejected: %v", err)
	}
}

func TestNormalizeCardNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"4111 1111 1111 1111", "4111111111111111"},
		{"4111-1111-1111-1111", "4111111111111111"},
		{"41111111111111112222", "4111111111111111"}, // capped at 16
		{"abc", ""},
		{"", ""},
	}
	for _, test := range tests {
		if got := NormalizeCardNumber(test.input); got != test.want {
			t.Errorf("NormalizeCardNumber(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestFormatCardNumber(t *testing.T) {
	if got := FormatCardNumber("4111111111111111"); got != "4111 1111 1111 1111" {
		t.Errorf("full number grouped as %q", got)
	}
	if got := FormatCardNumber("41111"); got != "4111 1" {
		t.Errorf("partial number grouped as %q", got)
	}
	if got := FormatCardNumber(""); got != "" {
		t.Errorf("empty input formatted as %q", got)
	}
}

func TestNormalizeExpiry(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1", "1"},
		{"12", "12"},
		{"122", "12/2"},
		{"1226", "12/26"},
		{"12/26", "12/26"},
		{"12266", "12/26"}, // extra digits truncated
		{"ab", ""},
	}
	for _, test := range tests {
		if got := NormalizeExpiry(test.input); got != test.want {
			t.Errorf("NormalizeExpiry(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}
