package engine

import (
	"strconv"

	"github.com/rmorar/banksim/internal/constants"
	"github.com/rmorar/banksim/internal/model"
)

// ChangeInterest updates the interest rate of a savings account. Classic and
// business accounts do not carry interest and reject the operation.
func (e *Engine) ChangeInterest(user *model.User, acct *model.Account, rate float64, timestamp int64) {
	if acct == nil {
		e.emitError("changeInterestRate", timestamp, "Account not found")
		return
	}
	if acct.Type != constants.TypeSavings {
		e.emitError("changeInterestRate", timestamp, "This is not a savings account")
		return
	}
	acct.Interest = rate
	rec := &model.Record{
		Timestamp:   timestamp,
		Description: "Interest rate of the account changed to " + strconv.FormatFloat(rate, 'f', -1, 64),
	}
	user.Transactions.Add(rec)
	acct.Transactions.Add(rec)
}

// AddInterest credits balance*rate onto a savings account and logs the
// credited amount in the account currency.
func (e *Engine) AddInterest(user *model.User, acct *model.Account, timestamp int64) {
	if acct == nil {
		e.emitError("addInterest", timestamp, "Account not found")
		return
	}
	if acct.Type != constants.TypeSavings {
		e.emitError("addInterest", timestamp, "This is not a savings account")
		return
	}
	gained := acct.Balance * acct.Interest
	acct.Balance += gained
	rec := &model.Record{
		Timestamp:   timestamp,
		Description: "Interest rate income",
		Amount:      model.Float(gained),
		Currency:    acct.Currency,
	}
	user.Transactions.Add(rec)
	acct.Transactions.Add(rec)
}
