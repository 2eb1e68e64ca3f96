package cashback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmorar/banksim/internal/constants"
	"github.com/rmorar/banksim/internal/model"
	"github.com/rmorar/banksim/internal/plan"
)

func mustPlan(t *testing.T, name string) plan.Plan {
	t.Helper()
	p, err := plan.New(name)
	require.NoError(t, err)
	return p
}

func TestForMerchant(t *testing.T) {
	threshold := model.NewMerchant("MegaMall", "Clothes", constants.SchemeSpendingThreshold, 1, "RO01")
	count := model.NewMerchant("QuickBite", "Food", constants.SchemeTransactionCount, 2, "RO02")

	assert.IsType(t, SpendingThreshold{}, ForMerchant(threshold))
	assert.IsType(t, TransactionCount{}, ForMerchant(count))
}

func TestSpendingThresholdRates(t *testing.T) {
	tests := []struct {
		plan     string
		prior    float64
		amount   float64
		expected float64
	}{
		{"standard", 0, 50, 0},
		{"standard", 60, 50, 0.001 * 50},
		{"standard", 280, 50, 0.002 * 50},
		{"standard", 480, 50, 0.0025 * 50},
		{"student", 480, 50, 0.0025 * 50},
		{"silver", 60, 50, 0.003 * 50},
		{"silver", 280, 50, 0.004 * 50},
		{"silver", 480, 50, 0.005 * 50},
		{"gold", 60, 50, 0.005 * 50},
		{"gold", 280, 50, 0.0055 * 50},
		{"gold", 480, 50, 0.007 * 50},
	}

	for _, tt := range tests {
		m := model.NewMerchant("MegaMall", "Clothes", constants.SchemeSpendingThreshold, 1, "RO01")
		acct := model.NewClassicAccount("RO10", "RON")
		acct.MerchantSpending = tt.prior

		got := SpendingThreshold{}.Cashback(m, acct, mustPlan(t, tt.plan), tt.amount)
		assert.InDelta(t, tt.expected, got, 1e-9, "%s prior=%.0f", tt.plan, tt.prior)
	}
}

func TestSpendingThresholdAdvancesCounterOnlyForThresholdMerchants(t *testing.T) {
	acct := model.NewClassicAccount("RO10", "RON")
	p := mustPlan(t, "standard")

	countMerchant := model.NewMerchant("QuickBite", "Food", constants.SchemeTransactionCount, 2, "RO02")
	SpendingThreshold{}.Cashback(countMerchant, acct, p, 80)
	assert.Equal(t, 0.0, acct.MerchantSpending)

	thresholdMerchant := model.NewMerchant("MegaMall", "Clothes", constants.SchemeSpendingThreshold, 1, "RO01")
	SpendingThreshold{}.Cashback(thresholdMerchant, acct, p, 80)
	assert.Equal(t, 80.0, acct.MerchantSpending)
}

func TestTransactionCountActivatesCoupons(t *testing.T) {
	m := model.NewMerchant("QuickBite", "Food", constants.SchemeTransactionCount, 2, "RO02")
	acct := model.NewClassicAccount("RO10", "RON")
	p := mustPlan(t, "standard")

	for i := 0; i < 10; i++ {
		got := TransactionCount{}.Cashback(m, acct, p, 25)
		assert.Equal(t, 0.0, got, "transaction-count scheme never pays direct cashback")
	}

	assert.Equal(t, 0.02, acct.Coupons[constants.CategoryFood])
	assert.Equal(t, 0.05, acct.Coupons[constants.CategoryClothes])
	assert.Equal(t, 0.1, acct.Coupons[constants.CategoryTech])
}

func TestTransactionCountSkipsExhaustedCoupon(t *testing.T) {
	m := model.NewMerchant("QuickBite", "Food", constants.SchemeTransactionCount, 2, "RO02")
	acct := model.NewClassicAccount("RO10", "RON")
	acct.Coupons[constants.CategoryFood] = constants.CouponExhausted
	p := mustPlan(t, "standard")

	TransactionCount{}.Cashback(m, acct, p, 25)
	TransactionCount{}.Cashback(m, acct, p, 25)

	assert.Equal(t, constants.CouponExhausted, acct.Coupons[constants.CategoryFood])
}

func TestTransactionCountTracksPerAccount(t *testing.T) {
	m := model.NewMerchant("QuickBite", "Food", constants.SchemeTransactionCount, 2, "RO02")
	first := model.NewClassicAccount("RO10", "RON")
	second := model.NewClassicAccount("RO11", "RON")
	p := mustPlan(t, "standard")

	TransactionCount{}.Cashback(m, first, p, 25)
	TransactionCount{}.Cashback(m, first, p, 25)
	TransactionCount{}.Cashback(m, second, p, 25)

	assert.Equal(t, 0.02, first.Coupons[constants.CategoryFood])
	assert.Equal(t, constants.CouponUnused, second.Coupons[constants.CategoryFood])
}
