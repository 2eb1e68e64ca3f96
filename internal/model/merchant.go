package model

// Merchant is a payment recipient with a cashback scheme. TxCount backs the
// transaction-count scheme and is tracked per paying account; Payments is the
// merchant-side history used by spending reports.
type Merchant struct {
	Name     string
	Category string
	ID       int
	IBAN     string
	Scheme   string

	TxCount  map[*Account]int
	Payments []*Record
}

func NewMerchant(name, category, scheme string, id int, iban string) *Merchant {
	return &Merchant{
		Name:     name,
		Category: category,
		Scheme:   scheme,
		ID:       id,
		IBAN:     iban,
		TxCount:  make(map[*Account]int),
	}
}

// RecordPayment appends to the merchant-side payment history.
func (m *Merchant) RecordPayment(r *Record) {
	m.Payments = append(m.Payments, r)
}
