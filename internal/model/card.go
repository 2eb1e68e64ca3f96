package model

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/rmorar/banksim/internal/constants"
)

// Card belongs to an account. A one-time card rotates its number after every
// successful payment; a standard card's payment hook is a no-op.
type Card struct {
	Number       string
	Status       string
	CreatorEmail string
	OneTime      bool
}

func NewCard(number, email string) *Card {
	return &Card{Number: number, CreatorEmail: email, Status: constants.CardActive}
}

func NewOneTimeCard(number, email string) *Card {
	c := NewCard(number, email)
	c.OneTime = true
	return c
}

// Use runs the card's post-payment hook. For a one-time card it records a
// destroy event, rotates the number, records a create event and reactivates
// the card; it reports whether a rotation happened so the caller can place
// the payment record ahead of the two synthetic events.
func (c *Card) Use(accountIBAN string, user *User, holder string, timestamp int64) bool {
	if !c.OneTime {
		return false
	}

	user.Transactions.Add(&Record{
		Timestamp:   timestamp,
		Description: "The card has been destroyed",
		Account:     accountIBAN,
		Card:        c.Number,
		CardHolder:  holder,
	})

	c.Number = GenerateCardNumber()
	c.Status = constants.CardActive

	user.Transactions.Add(&Record{
		Timestamp:   timestamp,
		Description: "New card created",
		Account:     accountIBAN,
		Card:        c.Number,
		CardHolder:  holder,
	})

	return true
}

// GenerateCardNumber produces a fresh 16-digit card number.
func GenerateCardNumber() string {
	id := uuid.New()
	digits := make([]byte, 0, 16)
	for _, b := range id {
		digits = strconv.AppendInt(digits, int64(b%10), 10)
	}
	return string(digits[:16])
}
