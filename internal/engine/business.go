package engine

import (
	"fmt"

	"github.com/rmorar/banksim/internal/constants"
	"github.com/rmorar/banksim/internal/model"
)

// AddAssociate attaches a user to a business account as manager or employee.
// A person holds at most one role per account; duplicates are rejected.
func (e *Engine) AddAssociate(acct *model.Account, user *model.User, role model.Role, timestamp int64) error {
	if acct == nil || acct.Business == nil {
		return fmt.Errorf("add associate: %w", ErrNotFound)
	}
	if err := acct.Business.AddAssociate(user, role); err != nil {
		return fmt.Errorf("add associate: %w: %s", ErrInvalidTransition, err)
	}
	user.Accounts = append(user.Accounts, acct)
	return nil
}

// ChangeSpendingLimit sets the business spending cap. Owner only.
func (e *Engine) ChangeSpendingLimit(acct *model.Account, user *model.User, limit float64, timestamp int64) {
	b := acct.Business
	if b == nil {
		return
	}
	if b.Owner.User != user {
		e.emitError("changeSpendingLimit", timestamp,
			"You must be owner in order to change spending limit.")
		return
	}
	b.SpendingLimit = limit
}

// ChangeDepositLimit sets the business deposit cap. Owner only.
func (e *Engine) ChangeDepositLimit(acct *model.Account, user *model.User, limit float64, timestamp int64) {
	b := acct.Business
	if b == nil {
		return
	}
	if b.Owner.User != user {
		e.emitError("changeDepositLimit", timestamp,
			"You must be owner in order to change deposit limit.")
		return
	}
	b.DepositLimit = limit
}

// BusinessLimit converts the default RON-denominated business cap into the
// given currency, for seeding new business accounts.
func (e *Engine) BusinessLimit(defaultRON float64, currency string) float64 {
	conv, ok := e.convert(defaultRON, constants.BaseCurrency, currency)
	if !ok {
		return defaultRON
	}
	return conv.Amount
}
