package engine

import (
	"strconv"

	"github.com/rmorar/banksim/internal/constants"
	"github.com/rmorar/banksim/internal/model"
)

// CashWithdraw debits a RON-denominated ATM withdrawal from the card's
// account: the amount converts into the account currency, the commission is
// priced on the raw RON amount, and the minimum-balance floor holds.
func (e *Engine) CashWithdraw(user *model.User, acct *model.Account, card *model.Card, amountRON float64, timestamp int64) {
	if user == nil || acct == nil || card == nil {
		e.emitError("cashWithdrawal", timestamp, "Card not found")
		return
	}

	if card.Status == constants.CardFrozen {
		user.Transactions.Add(&model.Record{Timestamp: timestamp, Description: "The card is frozen"})
		return
	}

	conv, ok := e.convert(amountRON, constants.BaseCurrency, acct.Currency)
	if !ok {
		return
	}
	amount := conv.Amount
	commission := commissionOn(user.Plan, amountRON)

	if acct.Balance-amount-commission.Fee(amount) <= acct.MinBalance {
		user.Transactions.Add(&model.Record{Timestamp: timestamp, Description: "Insufficient funds"})
		return
	}

	acct.Balance -= amount + commission.Fee(amount)
	user.Transactions.Add(&model.Record{
		Timestamp:   timestamp,
		Description: "Cash withdrawal of " + strconv.FormatFloat(amountRON, 'f', -1, 64),
		Amount:      model.Float(amountRON),
	})
}

const (
	savingsWithdrawalMinAge = 21
	currentYear             = 2025
)

// WithdrawSavings moves funds from a savings account into the user's classic
// account held in the command currency. The user must be at least 21 and own
// such a classic account; the savings side may not go negative.
func (e *Engine) WithdrawSavings(user *model.User, acct *model.Account, amount float64, currency string, timestamp int64) {
	if user == nil {
		return
	}

	record := func(description string, toAccount bool) {
		rec := &model.Record{Timestamp: timestamp, Description: description}
		user.Transactions.Add(rec)
		if toAccount && acct != nil {
			acct.Transactions.Add(rec)
		}
	}

	if acct == nil {
		record("Account not found", false)
		return
	}
	if acct.Type != constants.TypeSavings {
		record("Account is not of type savings.", false)
		return
	}
	if !user.HasClassicAccount() {
		record("You do not have a classic account.", true)
		return
	}
	if year, err := strconv.Atoi(birthYear(user.BirthDate)); err == nil &&
		currentYear-year < savingsWithdrawalMinAge {
		record("You don't have the minimum age required.", false)
		return
	}

	classic := user.ClassicAccountIn(currency)
	if classic == nil {
		record("You do not have a classic account.", true)
		return
	}

	conv, ok := e.convert(amount, currency, acct.Currency)
	if !ok {
		return
	}
	if acct.Balance-conv.Amount < 0 {
		return
	}

	acct.Balance -= conv.Amount
	classic.Balance += amount

	rec := &model.Record{
		Timestamp:   timestamp,
		Description: "Savings withdrawal",
		Amount:      model.Float(conv.Amount),
		ClassicIBAN: classic.IBAN,
		SavingsIBAN: acct.IBAN,
	}
	// Recorded twice on purpose: once against each side of the movement.
	user.Transactions.Add(rec)
	user.Transactions.Add(rec)
}

func birthYear(birthDate string) string {
	if len(birthDate) < 4 {
		return birthDate
	}
	return birthDate[:4]
}
