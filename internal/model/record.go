package model

import "sort"

// Record is one entry in a user's or account's transaction history. Fields
// beyond Timestamp and Description are populated per record kind; pointer and
// slice fields stay nil where a kind has no use for them.
type Record struct {
	Timestamp   int64
	Description string

	Amount     *float64
	AmountText string
	Currency   string
	Merchant   string

	SenderIBAN   string
	ReceiverIBAN string
	TransferType string

	Card       string
	CardHolder string
	Account    string
	NewPlan    string

	SplitType        string
	InvolvedAccounts []string
	AmountForUsers   []float64
	Error            string

	ClassicIBAN string
	SavingsIBAN string
}

// History is an ordered list of records. Appends keep insertion order;
// split-payment commits re-sort by timestamp because approvals can arrive
// after later-stamped events have already been recorded.
type History struct {
	records []*Record
}

func (h *History) Add(r *Record) {
	h.records = append(h.records, r)
}

// InsertBeforeLast places r before the last n records. Used by the payment
// pipeline to slot the payment record ahead of the synthetic one-time-card
// events it produced.
func (h *History) InsertBeforeLast(n int, r *Record) {
	idx := len(h.records) - n
	if idx < 0 {
		idx = 0
	}
	h.records = append(h.records, nil)
	copy(h.records[idx+1:], h.records[idx:])
	h.records[idx] = r
}

func (h *History) SortByTimestamp() {
	sort.SliceStable(h.records, func(i, j int) bool {
		return h.records[i].Timestamp < h.records[j].Timestamp
	})
}

func (h *History) All() []*Record {
	return h.records
}

func (h *History) Len() int {
	return len(h.records)
}

// Last returns the most recent record, or nil for an empty history.
func (h *History) Last() *Record {
	if len(h.records) == 0 {
		return nil
	}
	return h.records[len(h.records)-1]
}

func Float(v float64) *float64 {
	return &v
}
