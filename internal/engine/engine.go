// Package engine is the transaction core of the simulator: the payment and
// transfer pipelines, the split-payment consensus, plan upgrades and the
// supporting withdrawal/deposit/business operations. It mutates the account
// graph handed to it and reports through an externally owned output sink;
// lookups (users, cards, merchants) are the dispatcher's job.
package engine

import (
	"github.com/rmorar/banksim/internal/cashback"
	"github.com/rmorar/banksim/internal/constants"
	"github.com/rmorar/banksim/internal/exchange"
	"github.com/rmorar/banksim/internal/model"
	"github.com/rmorar/banksim/internal/plan"
)

// Engine executes financial commands against an in-memory account graph.
// Execution is strictly sequential; nothing here is safe for concurrent use.
type Engine struct {
	rates *exchange.Graph
	out   Sink
}

func New(rates *exchange.Graph, out Sink) *Engine {
	return &Engine{rates: rates, out: out}
}

// Rates exposes the exchange graph, mainly for the dispatcher and tests.
func (e *Engine) Rates() *exchange.Graph {
	return e.rates
}

// convert turns an amount in from-currency into to-currency. The boolean is
// false when no exchange path exists; callers must not use the amount then.
func (e *Engine) convert(amount float64, from, to string) (Conversion, bool) {
	if from == to {
		return Conversion{Amount: amount, Rate: 1}, true
	}
	rate, ok := e.rates.Rate(from, to)
	if !ok {
		return Conversion{}, false
	}
	return Conversion{Amount: amount * rate, Rate: rate}, true
}

// toBase expresses an amount in the reference currency (RON). Commissions,
// upgrade fees and the big-transaction threshold are all evaluated there.
func (e *Engine) toBase(amount float64, currency string) (float64, bool) {
	c, ok := e.convert(amount, currency, constants.BaseCurrency)
	if !ok {
		return 0, false
	}
	return c.Amount, true
}

// payerPlan resolves whose service plan prices a payment: the business
// owner's for business accounts, the acting user's otherwise.
func payerPlan(acct *model.Account, user *model.User) plan.Plan {
	if acct.Business != nil {
		return acct.Business.Owner.User.Plan
	}
	return user.Plan
}

// commissionOn prices a RON-denominated amount with the given plan.
func commissionOn(p plan.Plan, amountRON float64) Commission {
	rate := p.CommissionRate(amountRON)
	return Commission{Rate: rate, AmountRON: amountRON}
}

// cashbackFor runs the merchant's policy on the RON-equivalent amount and
// converts the result back into the account currency. The returned Cashback
// also carries the RON->account rate, which the big-transaction check reuses.
func (e *Engine) cashbackFor(merchant *model.Merchant, acct *model.Account, p plan.Plan, amountRON float64) Cashback {
	raw := cashback.ForMerchant(merchant).Cashback(merchant, acct, p, amountRON)

	backRate := 1.0
	if acct.Currency != constants.BaseCurrency {
		if r, ok := e.rates.Rate(constants.BaseCurrency, acct.Currency); ok {
			backRate = r
		}
	}
	return Cashback{Amount: raw * backRate, BackRate: backRate}
}

// countBigTransaction advances the user's big-transaction counter when the
// payment's RON-equivalent (commission included) reaches the threshold.
func countBigTransaction(user *model.User, amount, commissionRate, backRate float64) {
	ronEquivalent := amount/backRate + amount*commissionRate/backRate
	if ronEquivalent >= constants.BigTransactionAmount &&
		user.BigTransactions < constants.BigTransactionsForGold {
		user.BigTransactions++
	}
}
