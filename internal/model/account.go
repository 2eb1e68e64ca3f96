package model

import "github.com/rmorar/banksim/internal/constants"

// Account is a single ledger: balance, currency, minimum-balance floor,
// cards, per-category coupons and the cumulative spend counter feeding the
// threshold cashback scheme. Business accounts additionally carry a
// BusinessProfile; for classic and savings accounts it is nil.
type Account struct {
	IBAN       string
	Currency   string
	Type       string
	Balance    float64
	MinBalance float64

	// Savings accounts only.
	Interest float64

	Cards []*Card

	// Category -> coupon rate. CouponUnused means never activated,
	// CouponExhausted means consumed this cycle, > 0 is spendable.
	Coupons map[string]float64

	// Cumulative spend at threshold-scheme merchants, in RON.
	MerchantSpending float64

	Transactions History

	Business *BusinessProfile
}

func newAccount(iban, currency, accType string) *Account {
	return &Account{
		IBAN:     iban,
		Currency: currency,
		Type:     accType,
		Coupons: map[string]float64{
			constants.CategoryFood:    constants.CouponUnused,
			constants.CategoryClothes: constants.CouponUnused,
			constants.CategoryTech:    constants.CouponUnused,
		},
	}
}

// NewClassicAccount creates an empty classic account.
func NewClassicAccount(iban, currency string) *Account {
	return newAccount(iban, currency, constants.TypeClassic)
}

// NewSavingsAccount creates a savings account with the given interest rate.
func NewSavingsAccount(iban, currency string, interest float64) *Account {
	a := newAccount(iban, currency, constants.TypeSavings)
	a.Interest = interest
	return a
}

// NewBusinessAccount creates a business account owned by the given user.
// limit is the spending/deposit cap already converted into the account
// currency (the default is a fixed RON amount, converted at setup).
func NewBusinessAccount(iban, currency string, owner *User, limit float64) *Account {
	a := newAccount(iban, currency, constants.TypeBusiness)
	a.Business = newBusinessProfile(owner, limit)
	return a
}

// FindCard returns the card with the given number, or nil.
func (a *Account) FindCard(number string) *Card {
	for _, c := range a.Cards {
		if c.Number == number {
			return c
		}
	}
	return nil
}

// Limiter returns the account's spending-limit capability, or nil when the
// account type imposes none. Pipelines resolve this once per invocation
// instead of re-checking the account type at every step.
func (a *Account) Limiter() SpendLimiter {
	if a.Business != nil {
		return a.Business
	}
	return nil
}

// Roles returns the account's role capability, or nil for personal accounts.
func (a *Account) Roles() RoleHolder {
	if a.Business != nil {
		return a.Business
	}
	return nil
}

// CouponFor returns the active coupon rate for a category, or 0 when the
// coupon is unused or exhausted.
func (a *Account) CouponFor(category string) float64 {
	rate, ok := a.Coupons[category]
	if !ok || rate == constants.CouponUnused || rate == constants.CouponExhausted {
		return 0
	}
	return rate
}

// ConsumeCoupon marks a category's coupon exhausted.
func (a *Account) ConsumeCoupon(category string) {
	a.Coupons[category] = constants.CouponExhausted
}
