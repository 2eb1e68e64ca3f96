package model

import (
	"github.com/rmorar/banksim/internal/constants"
	"github.com/rmorar/banksim/internal/plan"
)

// PendingSplit is a split payment waiting for this user's answer. The
// concrete type lives in the engine; the dispatcher routes accept/reject
// commands by split kind.
type PendingSplit interface {
	SplitKind() string
}

// User owns accounts and a service plan. Transactions is the user-level
// history; PendingSplits is the active-transaction queue the split-payment
// consensus suspends into.
type User struct {
	FirstName  string
	LastName   string
	Email      string
	BirthDate  string
	Occupation string

	Plan            plan.Plan
	BigTransactions int

	Accounts      []*Account
	Transactions  History
	PendingSplits []PendingSplit
}

// NewUser creates a user with the starting plan their occupation implies.
func NewUser(firstName, lastName, email, birthDate, occupation string) *User {
	return &User{
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		BirthDate:  birthDate,
		Occupation: occupation,
		Plan:       plan.ForOccupation(occupation),
	}
}

// Username is the "Last First" display form business reports use.
func (u *User) Username() string {
	return u.LastName + " " + u.FirstName
}

// AccountByCard scans the user's accounts for the card with the given number.
func (u *User) AccountByCard(number string) (*Account, *Card) {
	for _, acct := range u.Accounts {
		if c := acct.FindCard(number); c != nil {
			return acct, c
		}
	}
	return nil, nil
}

// AccountByIBAN returns the user's account with the given IBAN, or nil.
func (u *User) AccountByIBAN(iban string) *Account {
	for _, acct := range u.Accounts {
		if acct.IBAN == iban {
			return acct
		}
	}
	return nil
}

// ClassicAccountIn returns the user's first classic account held in the given
// currency, or nil.
func (u *User) ClassicAccountIn(currency string) *Account {
	for _, acct := range u.Accounts {
		if acct.Type == constants.TypeClassic && acct.Currency == currency {
			return acct
		}
	}
	return nil
}

// HasClassicAccount reports whether the user owns any classic account.
func (u *User) HasClassicAccount() bool {
	for _, acct := range u.Accounts {
		if acct.Type == constants.TypeClassic {
			return true
		}
	}
	return false
}

// AddPendingSplit enqueues a split payment awaiting this user's answer.
func (u *User) AddPendingSplit(s PendingSplit) {
	u.PendingSplits = append(u.PendingSplits, s)
}

// RemovePendingSplit drops s from the queue; unknown values are ignored.
func (u *User) RemovePendingSplit(s PendingSplit) {
	for i, p := range u.PendingSplits {
		if p == s {
			u.PendingSplits = append(u.PendingSplits[:i], u.PendingSplits[i+1:]...)
			return
		}
	}
}

// FirstPendingSplit returns the oldest pending split of the given kind, or
// nil when none is waiting.
func (u *User) FirstPendingSplit(kind string) PendingSplit {
	for _, p := range u.PendingSplits {
		if p.SplitKind() == kind {
			return p
		}
	}
	return nil
}
