package engine

import "github.com/rmorar/banksim/internal/model"

// Deposit adds funds to an account. On business accounts, plain employees may
// not deposit past the deposit limit (a silent rejection, symmetric with the
// spending cap), and associate deposit counters are updated.
func (e *Engine) Deposit(acct *model.Account, email string, amount float64, timestamp int64) {
	if acct == nil {
		e.emitError("addFunds", timestamp, "Account not found")
		return
	}

	if b := acct.Business; b != nil {
		if !b.DepositAllowed(email, amount) {
			return
		}
		b.RecordDeposit(email, amount)
	}

	acct.Balance += amount
}
