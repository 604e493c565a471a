// Copyright 2026 The Rayliner Authors
// SPDX-License-Identifier: Apache-2.0

package booking

import (
	"errors"
	"regexp"
	"strings"
)

// CardDetails is the raw payment input collected from the user. The
// client performs syntactic checks only — no Luhn digit, no
// expiry-in-the-past check. The payment processor behind the booking
// server is the authority on whether the card is actually valid.
type CardDetails struct {
	Number     string `json:"cardNumber"`
	Holder     string `json:"cardHolder"`
	CVV        string `json:"cvv"`
	ExpiryDate string `json:"expiryDate"` // "MM/YY"
}

// expiryPattern is the strict two-digit-month/two-digit-year form the
// server expects. Month range is not checked; "13/26" passes here and
// fails server-side.
var expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

// Card validation errors, shown inline before any network call.
var (
	ErrCardNumber = errors.New("booking: card number must be exactly 16 digits")
	ErrCardCVV    = errors.New("booking: CVV must be exactly 3 digits")
	ErrCardExpiry = errors.New("booking: expiry must be in MM/YY form")
)

// Validate checks the card fields. The first failing check is
// returned; a nil result means the request may be submitted.
func (c CardDetails) Validate() error {
	if len(c.Number) != 16 || !allDigits(c.Number) {
		return ErrCardNumber
	}
	if len(c.CVV) != 3 || !allDigits(c.CVV) {
		return ErrCardCVV
	}
	if !expiryPattern.MatchString(c.ExpiryDate) {
		return ErrCardExpiry
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NormalizeCardNumber strips spaces and every non-digit rune from a
// card number as typed, capping at 16 digits. The payment form calls
// this on each edit so the stored value is always bare digits.
func NormalizeCardNumber(input string) string {
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == 16 {
				break
			}
		}
	}
	return digits.String()
}

// FormatCardNumber groups a digit string into blocks of four for
// display ("1234 5678 9012 3456").
func FormatCardNumber(digits string) string {
	var grouped strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			grouped.WriteByte(' ')
		}
		grouped.WriteRune(r)
	}
	return grouped.String()
}

// NormalizeExpiry reshapes typed expiry input into "MM/YY": non-digits
// are dropped and the slash is inserted after the second digit. More
// than four digits are truncated.
func NormalizeExpiry(input string) string {
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == 4 {
				break
			}
		}
	}
	s := digits.String()
	if len(s) <= 2 {
		return s
	}
	return s[:2] + "/" + s[2:]
}
