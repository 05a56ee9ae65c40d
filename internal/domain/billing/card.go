package billing

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	ErrInvalidCardNumber = errors.New("invalid card number")
	ErrInvalidExpiry     = errors.New("invalid expiration date")
	ErrInvalidCVV        = errors.New("invalid CVV")
	ErrCardExpired       = errors.New("card expired")

	ErrCardDeclined      = errors.New("card declined by issuer")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrIncorrectCVV      = errors.New("incorrect CVV")
)

const minCardNumberLength = 13

// Issuer test numbers accepted by the payment simulation.
const (
	TestCardDeclined          = "4000000000000002"
	TestCardInsufficientFunds = "4000000000009995"
	TestCardExpired           = "4000000000000069"
	TestCardIncorrectCVV      = "4000000000000127"
	TestCardSuccess           = "4242424242424242"
)

type Card struct {
	number string
	expiry string
	cvv    string
}

func NewCard(number, expiry, cvv string) Card {
	return Card{
		number: strings.Map(dropSpace, number),
		expiry: strings.TrimSpace(expiry),
		cvv:    strings.TrimSpace(cvv),
	}
}

func dropSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}
	return r
}

// Validate checks the card data format. A card is usable through the last day
// of its expiry month.
func (c Card) Validate(now time.Time) error {
	if len(c.number) < minCardNumberLength || !digitsOnly(c.number) {
		return ErrInvalidCardNumber
	}

	month, year, err := parseExpiry(c.expiry)
	if err != nil {
		return err
	}

	if len(c.cvv) < 3 || len(c.cvv) > 4 || !digitsOnly(c.cvv) {
		return ErrInvalidCVV
	}

	firstInvalid := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, now.Location())
	if !now.Before(firstInvalid) {
		return ErrCardExpired
	}
	return nil
}

func parseExpiry(expiry string) (month, year int, err error) {
	mm, yy, ok := strings.Cut(expiry, "/")
	if !ok || len(expiry) < 5 {
		return 0, 0, ErrInvalidExpiry
	}
	month, err = strconv.Atoi(strings.TrimSpace(mm))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, ErrInvalidExpiry
	}
	year, err = strconv.Atoi(strings.TrimSpace(yy))
	if err != nil || year < 0 || year > 99 {
		return 0, 0, ErrInvalidExpiry
	}
	return month, 2000 + year, nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (c Card) Last4() string {
	if len(c.number) < 4 {
		return c.number
	}
	return c.number[len(c.number)-4:]
}

// SimulateIssuer answers like a sandbox issuer: the well-known test numbers
// fail with their documented reason, every other valid card is approved.
func SimulateIssuer(c Card) error {
	switch c.number {
	case TestCardDeclined:
		return ErrCardDeclined
	case TestCardInsufficientFunds:
		return ErrInsufficientFunds
	case TestCardExpired:
		return ErrCardExpired
	case TestCardIncorrectCVV:
		return ErrIncorrectCVV
	default:
		return nil
	}
}
