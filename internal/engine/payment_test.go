package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmorar/banksim/internal/constants"
	"github.com/rmorar/banksim/internal/model"
)

func TestPayOnlineCardNotFound(t *testing.T) {
	e, out := newTestEngine()
	user := newTestUser("john@mail.com")

	e.PayOnline(user, countMerchant("Apple", constants.CategoryTech), PaymentRequest{
		CardNumber: "0000000000000000",
		Amount:     50,
		Currency:   "RON",
		Email:      user.Email,
		Timestamp:  1,
	})

	require.Len(t, out.Records(), 1)
	assert.Equal(t, "payOnline", out.Records()[0].Command)
	assert.Equal(t, "Card not found", out.Records()[0].Error)
}

func TestPayOnlineMerchantNotFound(t *testing.T) {
	e, out := newTestEngine()
	user := newTestUser("john@mail.com")
	acct := addClassic(user, "RO01", "RON", 1000)
	card := addCard(acct, "1111222233334444", user.Email)

	e.PayOnline(user, nil, PaymentRequest{
		CardNumber: card.Number, Amount: 50, Currency: "RON", Email: user.Email, Timestamp: 1,
	})

	require.Len(t, out.Records(), 1)
	assert.Equal(t, "payOnline", out.Records()[0].Command)
	assert.Equal(t, "Merchant not found", out.Records()[0].Error)
	assert.Equal(t, 1000.0, acct.Balance)
}

func TestPayOnlineFrozenCard(t *testing.T) {
	e, _ := newTestEngine()
	user := newTestUser("john@mail.com")
	acct := addClassic(user, "RO01", "RON", 1000)
	card := addCard(acct, "1111222233334444", user.Email)
	card.Status = constants.CardFrozen

	e.PayOnline(user, countMerchant("Apple", constants.CategoryTech), PaymentRequest{
		CardNumber: card.Number, Amount: 50, Currency: "RON", Email: user.Email, Timestamp: 1,
	})

	assert.Equal(t, 1000.0, acct.Balance)
	require.Equal(t, 1, user.Transactions.Len())
	assert.Equal(t, "The card is frozen", user.Transactions.Last().Description)
	assert.Equal(t, 1, acct.Transactions.Len())
}

func TestPayOnlineInsufficientFunds(t *testing.T) {
	e, _ := newTestEngine()
	user := newTestUser("john@mail.com")
	acct := addClassic(user, "RO01", "RON", 10)
	card := addCard(acct, "1111222233334444", user.Email)

	e.PayOnline(user, countMerchant("Apple", constants.CategoryTech), PaymentRequest{
		CardNumber: card.Number, Amount: 50, Currency: "RON", Email: user.Email, Timestamp: 1,
	})

	assert.Equal(t, 10.0, acct.Balance)
	require.Equal(t, 1, user.Transactions.Len())
	assert.Equal(t, "Insufficient funds", user.Transactions.Last().Description)
}

func TestPayOnlineDebitsAmountAndCommission(t *testing.T) {
	e, out := newTestEngine()
	user := newTestUser("john@mail.com")
	acct := addClassic(user, "RO01", "RON", 1000)
	card := addCard(acct, "1111222233334444", user.Email)
	merchant := countMerchant("Apple", constants.CategoryTech)

	e.PayOnline(user, merchant, PaymentRequest{
		CardNumber: card.Number, Amount: 100, Currency: "RON", Email: user.Email, Timestamp: 1,
	})

	// standard plan: 0.2% of the 100 RON amount.
	assert.InDelta(t, 1000-100-0.2, acct.Balance, 1e-9)
	assert.Empty(t, out.Records())

	rec := user.Transactions.Last()
	require.NotNil(t, rec)
	assert.Equal(t, "Card payment", rec.Description)
	assert.Equal(t, 100.0, *rec.Amount)
	assert.Equal(t, "Apple", rec.Merchant)
	assert.Len(t, merchant.Payments, 1)
}

func TestPayOnlineConvertsIntoAccountCurrency(t *testing.T) {
	e, _ := newTestEngine()
	user := newTestUser("john@mail.com")
	acct := addClassic(user, "RO01", "EUR", 500)
	card := addCard(acct, "1111222233334444", user.Email)

	e.PayOnline(user, countMerchant("Apple", constants.CategoryTech), PaymentRequest{
		CardNumber: card.Number, Amount: 100, Currency: "RON", Email: user.Email, Timestamp: 1,
	})

	// 100 RON = 20 EUR; commission is 0.2% of the 20 EUR debit.
	assert.InDelta(t, 500-20-0.04, acct.Balance, 1e-9)
	assert.Equal(t, 20.0, *user.Transactions.Last().Amount)
}

func TestPayOnlineZeroAmountIgnored(t *testing.T) {
	e, out := newTestEngine()
	user := newTestUser("john@mail.com")
	acct := addClassic(user, "RO01", "RON", 1000)
	card := addCard(acct, "1111222233334444", user.Email)

	e.PayOnline(user, countMerchant("Apple", constants.CategoryTech), PaymentRequest{
		CardNumber: card.Number, Amount: 0, Currency: "RON", Email: user.Email, Timestamp: 1,
	})

	assert.Equal(t, 1000.0, acct.Balance)
	assert.Equal(t, 0, user.Transactions.Len())
	assert.Empty(t, out.Records())
}

func TestPayOnlineCouponSingleUse(t *testing.T) {
	e, _ := newTestEngine()
	user := newTestUser("john@mail.com")
	acct := addClassic(user, "RO01", "RON", 1000)
	card := addCard(acct, "1111222233334444", user.Email)
	acct.Coupons[constants.CategoryFood] = 0.05
	merchant := countMerchant("Pizza", constants.CategoryFood)

	e.PayOnline(user, merchant, PaymentRequest{
		CardNumber: card.Number, Amount: 100, Currency: "RON", Email: user.Email, Timestamp: 1,
	})

	// 5% coupon credited on top of the 100 + 0.2 debit, then exhausted.
	assert.InDelta(t, 1000-100-0.2+5, acct.Balance, 1e-9)
	assert.Equal(t, constants.CouponExhausted, acct.Coupons[constants.CategoryFood])

	before := acct.Balance
	e.PayOnline(user, merchant, PaymentRequest{
		CardNumber: card.Number, Amount: 100, Currency: "RON", Email: user.Email, Timestamp: 2,
	})
	assert.InDelta(t, before-100.2, acct.Balance, 1e-9)
}

func TestPayOnlineTransactionCountActivatesCoupon(t *testing.T) {
	e, _ := newTestEngine()
	user := newTestUser("john@mail.com")
	acct := addClassic(user, "RO01", "RON", 10000)
	card := addCard(acct, "1111222233334444", user.Email)
	merchant := countMerchant("Pizza", constants.CategoryFood)

	e.PayOnline(user, merchant, PaymentRequest{
		CardNumber: card.Number, Amount: 10, Currency: "RON", Email: user.Email, Timestamp: 1,
	})
	assert.Equal(t, constants.CouponUnused, acct.Coupons[constants.CategoryFood])

	e.PayOnline(user, merchant, PaymentRequest{
		CardNumber: card.Number, Amount: 10, Currency: "RON", Email: user.Email, Timestamp: 2,
	})
	assert.Equal(t, 0.02, acct.Coupons[constants.CategoryFood])
}

func TestPayOnlineOneTimeCardRotates(t *testing.T) {
	e, _ := newTestEngine()
	user := newTestUser("john@mail.com")
	acct := addClassic(user, "RO01", "RON", 1000)
	card := model.NewOneTimeCard("1111222233334444", user.Email)
	acct.Cards = append(acct.Cards, card)

	e.PayOnline(user, countMerchant("Apple", constants.CategoryTech), PaymentRequest{
		CardNumber: "1111222233334444", Amount: 100, Currency: "RON", Email: user.Email, Timestamp: 1,
	})

	assert.NotEqual(t, "1111222233334444", card.Number)
	assert.Equal(t, constants.CardActive, card.Status)

	// Payment record slots ahead of the destroy/create pair.
	all := user.Transactions.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Card payment", all[0].Description)
	assert.Equal(t, "The card has been destroyed", all[1].Description)
	assert.Equal(t, "New card created", all[2].Description)
	assert.Equal(t, card.Number, all[2].Card)
}

func TestPayOnlineBigTransactionsUpgradeSilverToGold(t *testing.T) {
	e, _ := newTestEngine()
	user := withPlan(newTestUser("john@mail.com"), constants.PlanSilver)
	acct := addClassic(user, "RO01", "RON", 100000)
	card := addCard(acct, "1111222233334444", user.Email)
	merchant := countMerchant("Apple", constants.CategoryTech)

	for i := int64(1); i <= 4; i++ {
		e.PayOnline(user, merchant, PaymentRequest{
			CardNumber: card.Number, Amount: 600, Currency: "RON", Email: user.Email, Timestamp: i,
		})
	}
	assert.Equal(t, 4, user.BigTransactions)
	assert.Equal(t, constants.PlanSilver, user.Plan.Name())

	e.PayOnline(user, merchant, PaymentRequest{
		CardNumber: card.Number, Amount: 600, Currency: "RON", Email: user.Email, Timestamp: 5,
	})

	assert.Equal(t, constants.PlanGold, user.Plan.Name())
	rec := user.Transactions.Last()
	require.NotNil(t, rec)
	assert.Equal(t, "Upgrade plan", rec.Description)
	assert.Equal(t, constants.PlanGold, rec.NewPlan)

	// Fires exactly once.
	e.PayOnline(user, merchant, PaymentRequest{
		CardNumber: card.Number, Amount: 600, Currency: "RON", Email: user.Email, Timestamp: 6,
	})
	assert.Equal(t, "Card payment", user.Transactions.Last().Description)
}

func TestPayOnlineSmallPaymentsDoNotCountAsBig(t *testing.T) {
	e, _ := newTestEngine()
	user := withPlan(newTestUser("john@mail.com"), constants.PlanSilver)
	acct := addClassic(user, "RO01", "RON", 100000)
	card := addCard(acct, "1111222233334444", user.Email)

	for i := int64(1); i <= 6; i++ {
		e.PayOnline(user, countMerchant("Apple", constants.CategoryTech), PaymentRequest{
			CardNumber: card.Number, Amount: 100, Currency: "RON", Email: user.Email, Timestamp: i,
		})
	}

	assert.Equal(t, 0, user.BigTransactions)
	assert.Equal(t, constants.PlanSilver, user.Plan.Name())
}
