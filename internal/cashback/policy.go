package cashback

import (
	"github.com/rmorar/banksim/internal/constants"
	"github.com/rmorar/banksim/internal/model"
	"github.com/rmorar/banksim/internal/plan"
)

// Policy computes the cashback for a payment. The amount is expressed in the
// engine's reference currency (RON); the returned cashback is in the same
// currency and the caller converts it back into the account currency.
type Policy interface {
	Cashback(m *model.Merchant, acct *model.Account, p plan.Plan, amount float64) float64
}

// ForMerchant selects the policy a merchant is configured with.
func ForMerchant(m *model.Merchant) Policy {
	if m.Scheme == constants.SchemeTransactionCount {
		return TransactionCount{}
	}
	return SpendingThreshold{}
}

// SpendingThreshold pays a plan-scaled percentage once the cumulative spend
// at threshold-scheme merchants crosses 100/300/500 RON. Only merchants on
// this scheme advance the cumulative counter.
type SpendingThreshold struct{}

const (
	thresholdLow  = 100.0
	thresholdMid  = 300.0
	thresholdHigh = 500.0
)

var thresholdRates = map[string][3]float64{
	constants.PlanStandard: {0.001, 0.002, 0.0025},
	constants.PlanStudent:  {0.001, 0.002, 0.0025},
	constants.PlanSilver:   {0.003, 0.004, 0.005},
	constants.PlanGold:     {0.005, 0.0055, 0.007},
}

func (SpendingThreshold) Cashback(m *model.Merchant, acct *model.Account, p plan.Plan, amount float64) float64 {
	totalSpent := acct.MerchantSpending + amount
	rates := thresholdRates[p.Name()]

	var cashback float64
	switch {
	case totalSpent >= thresholdHigh:
		cashback = rates[2] * amount
	case totalSpent >= thresholdMid:
		cashback = rates[1] * amount
	case totalSpent >= thresholdLow:
		cashback = rates[0] * amount
	}

	if m.Scheme == constants.SchemeSpendingThreshold {
		acct.MerchantSpending = totalSpent
	}
	return cashback
}

// TransactionCount never pays direct cashback; instead the 2nd, 5th and 10th
// transaction at a merchant activate a Food/Clothes/Tech coupon on the
// account, unless that category's coupon is already exhausted.
type TransactionCount struct{}

func (TransactionCount) Cashback(m *model.Merchant, acct *model.Account, p plan.Plan, amount float64) float64 {
	if m.Scheme != constants.SchemeTransactionCount {
		return 0
	}

	m.TxCount[acct]++

	activate := func(category string, rate float64) {
		if acct.Coupons[category] != constants.CouponExhausted {
			acct.Coupons[category] = rate
		}
	}

	switch m.TxCount[acct] {
	case 2:
		activate(constants.CategoryFood, 0.02)
	case 5:
		activate(constants.CategoryClothes, 0.05)
	case 10:
		activate(constants.CategoryTech, 0.1)
	}
	return 0
}
