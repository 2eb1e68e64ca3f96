package engine

import (
	"github.com/rmorar/banksim/internal/constants"
	"github.com/rmorar/banksim/internal/model"
)

// PaymentRequest is a card payment command after target resolution.
type PaymentRequest struct {
	CardNumber string
	Amount     float64
	Currency   string
	Email      string
	Timestamp  int64
}

// PayOnline runs the card payment pipeline: card resolution, currency
// conversion, business spending limits, coupon, commission, the commit guard,
// cashback, aggregate counters, the one-time-card hook and the silver->gold
// auto upgrade. Side effects happen only after the commit guard passes.
func (e *Engine) PayOnline(user *model.User, merchant *model.Merchant, req PaymentRequest) {
	acct, card := user.AccountByCard(req.CardNumber)
	if acct == nil {
		e.emitError("payOnline", req.Timestamp, "Card not found")
		return
	}
	if merchant == nil {
		e.emitError("payOnline", req.Timestamp, "Merchant not found")
		return
	}

	// A zero-amount payment is silently ignored.
	if req.Amount == 0 {
		return
	}

	if card.Status == constants.CardFrozen {
		frozen := &model.Record{Timestamp: req.Timestamp, Description: "The card is frozen"}
		user.Transactions.Add(frozen)
		if acct.Type == constants.TypeClassic {
			acct.Transactions.Add(frozen)
		}
		return
	}

	conv, ok := e.convert(req.Amount, req.Currency, acct.Currency)
	if !ok {
		return
	}
	if req.Currency != acct.Currency {
		// Register the discovered pair. Only this direction: mid-run
		// edges are not reciprocated.
		e.rates.AddEdge(req.Currency, acct.Currency, conv.Rate)
	}
	amount := conv.Amount

	// Plain employees are bound by the business spending limit; the
	// rejection is silent.
	if limiter := acct.Limiter(); limiter != nil && !limiter.SpendAllowed(req.Email, amount) {
		return
	}

	var coupon float64
	if rate := acct.CouponFor(merchant.Category); rate > 0 {
		coupon = rate * amount
		acct.ConsumeCoupon(merchant.Category)
	}

	p := payerPlan(acct, user)
	amountRON, ok := e.toBase(amount, acct.Currency)
	if !ok {
		return
	}
	commission := commissionOn(p, amountRON)

	if acct.Balance-amount-commission.Fee(amount) <= acct.MinBalance {
		rec := &model.Record{Timestamp: req.Timestamp, Description: "Insufficient funds"}
		user.Transactions.Add(rec)
		if acct.Type == constants.TypeClassic {
			acct.Transactions.Add(rec)
		}
		return
	}

	cb := e.cashbackFor(merchant, acct, p, amountRON)
	credit := cb.Amount + coupon

	acct.Balance = acct.Balance - amount - commission.Fee(amount) + credit

	countBigTransaction(user, amount, commission.Rate, cb.BackRate)

	rec := &model.Record{
		Timestamp:   req.Timestamp,
		Description: "Card payment",
		Amount:      model.Float(amount),
		Merchant:    merchant.Name,
	}

	if acct.Type == constants.TypeClassic {
		acct.Transactions.Add(rec)
		merchant.RecordPayment(rec)
	}
	if limiter := acct.Limiter(); limiter != nil {
		limiter.RecordMerchantSpend(req.Email, merchant.Name, amount)
	}

	rotated := card.Use(acct.IBAN, user, user.Email, req.Timestamp)
	if rotated {
		// The payment record goes in front of the destroy/create pair
		// the rotation just appended.
		user.Transactions.InsertBeforeLast(2, rec)
	} else {
		user.Transactions.Add(rec)
	}

	e.maybeAutoUpgrade(user, acct, req.Timestamp, rotated)
}

// maybeAutoUpgrade moves a silver user with five big transactions to gold,
// fee-free, exactly once. The upgrade record slots before any one-time-card
// events the payment produced.
func (e *Engine) maybeAutoUpgrade(user *model.User, acct *model.Account, timestamp int64, rotated bool) {
	if user.BigTransactions != constants.BigTransactionsForGold ||
		user.Plan.Name() != constants.PlanSilver {
		return
	}
	// Bump past the threshold so the upgrade fires only once.
	user.BigTransactions = constants.BigTransactionsForGold + 1

	rec := e.applyAutoUpgrade(user, acct, timestamp)
	if rotated {
		user.Transactions.InsertBeforeLast(2, rec)
	} else {
		user.Transactions.Add(rec)
	}
}
