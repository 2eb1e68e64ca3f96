package engine

// Per-stage value types. Each pipeline stage produces one of these instead of
// mutating a shared command object, so no stage can observe another's
// half-written fields.

// Conversion is the outcome of moving an amount between currencies.
type Conversion struct {
	Amount float64
	Rate   float64
}

// Commission prices a transaction under a service plan. Rate is a fraction of
// the transaction amount; AmountRON is the reference amount it was derived
// from.
type Commission struct {
	Rate      float64
	AmountRON float64
}

// Fee is the absolute commission charged for the given transaction amount.
func (c Commission) Fee(amount float64) float64 {
	return c.Rate * amount
}

// Cashback is a credit in the account currency plus the RON->account rate
// used to convert it.
type Cashback struct {
	Amount   float64
	BackRate float64
}
