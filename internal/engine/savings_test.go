package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmorar/banksim/internal/model"
)

func TestChangeInterestRejectsClassic(t *testing.T) {
	e, out := newTestEngine()
	user := newTestUser("john@mail.com")
	acct := addClassic(user, "RO01", "RON", 1000)

	e.ChangeInterest(user, acct, 0.07, 1)

	require.Len(t, out.Records(), 1)
	assert.Equal(t, "This is not a savings account", out.Records()[0].Error)
}

func TestChangeInterestUpdatesRate(t *testing.T) {
	e, _ := newTestEngine()
	user := newTestUser("john@mail.com")
	savings := model.NewSavingsAccount("RO01", "RON", 0.05)
	user.Accounts = append(user.Accounts, savings)

	e.ChangeInterest(user, savings, 0.07, 1)

	assert.Equal(t, 0.07, savings.Interest)
	assert.Equal(t, "Interest rate of the account changed to 0.07",
		user.Transactions.Last().Description)
}

func TestAddInterestCreditsBalance(t *testing.T) {
	e, _ := newTestEngine()
	user := newTestUser("john@mail.com")
	savings := model.NewSavingsAccount("RO01", "EUR", 0.05)
	savings.Balance = 1000
	user.Accounts = append(user.Accounts, savings)

	e.AddInterest(user, savings, 1)

	assert.InDelta(t, 1050, savings.Balance, 1e-9)

	rec := user.Transactions.Last()
	require.NotNil(t, rec)
	assert.Equal(t, "Interest rate income", rec.Description)
	assert.InDelta(t, 50, *rec.Amount, 1e-9)
	assert.Equal(t, "EUR", rec.Currency)
}

func TestAddInterestRejectsClassic(t *testing.T) {
	e, out := newTestEngine()
	user := newTestUser("john@mail.com")
	acct := addClassic(user, "RO01", "RON", 1000)

	e.AddInterest(user, acct, 1)

	require.Len(t, out.Records(), 1)
	assert.Equal(t, "This is not a savings account", out.Records()[0].Error)
	assert.Equal(t, 1000.0, acct.Balance)
}
