package engine

import (
	"fmt"

	"github.com/rmorar/banksim/internal/constants"
	"github.com/rmorar/banksim/internal/model"
)

// SplitState is the consensus state of a split payment.
type SplitState int

const (
	SplitPending SplitState = iota
	SplitCommitted
	SplitRejected
)

// Participant pairs a user with the account that would carry their share.
type Participant struct {
	User    *model.User
	Account *model.Account
}

// SplitPayment coordinates N participants' approval of a shared charge.
// Creation suspends it into every participant's pending queue; approvals and
// rejections arrive later in the command stream and resume it synchronously.
// Nothing is debited until the last approval lands, and a single rejection
// aborts for everyone.
type SplitPayment struct {
	engine *Engine

	timestamp    int64
	currency     string
	total        float64
	kind         string
	customShares []float64
	participants []Participant

	approvals map[string]bool
	state     SplitState
}

// NewSplitPayment creates the consensus transaction and enqueues it with
// every participant. customShares is nil for equal splits.
func (e *Engine) NewSplitPayment(kind string, total float64, currency string, customShares []float64, participants []Participant, timestamp int64) *SplitPayment {
	s := &SplitPayment{
		engine:       e,
		timestamp:    timestamp,
		currency:     currency,
		total:        total,
		kind:         kind,
		customShares: customShares,
		participants: participants,
		approvals:    make(map[string]bool, len(participants)),
		state:        SplitPending,
	}
	for _, p := range participants {
		s.approvals[p.User.Email] = false
		p.User.AddPendingSplit(s)
	}
	return s
}

// SplitKind implements model.PendingSplit.
func (s *SplitPayment) SplitKind() string {
	return s.kind
}

func (s *SplitPayment) State() SplitState {
	return s.state
}

// Total is the full charge in the split currency.
func (s *SplitPayment) Total() float64 {
	return s.total
}

func (s *SplitPayment) Timestamp() int64 {
	return s.timestamp
}

// Approve marks a participant's consent and removes the transaction from
// their pending queue. The last approval triggers the commit attempt.
func (s *SplitPayment) Approve(email string) {
	if s.state != SplitPending {
		return
	}
	if _, ok := s.approvals[email]; !ok {
		return
	}
	s.approvals[email] = true
	for _, p := range s.participants {
		if p.User.Email == email {
			p.User.RemovePendingSplit(s)
			break
		}
	}

	for _, approved := range s.approvals {
		if !approved {
			return
		}
	}
	s.dequeueAll()
	s.commit()
}

// Reject aborts the whole transaction: every participant sees a rejection
// record and nobody is charged.
func (s *SplitPayment) Reject(email string) {
	if s.state != SplitPending {
		return
	}
	if _, ok := s.approvals[email]; !ok {
		return
	}
	s.state = SplitRejected
	s.dequeueAll()
	s.recordToAll("One user rejected the payment.")
}

func (s *SplitPayment) dequeueAll() {
	for _, p := range s.participants {
		p.User.RemovePendingSplit(s)
	}
}

// shares returns each participant's owed amount in the split currency.
func (s *SplitPayment) shares() []float64 {
	if s.kind == constants.SplitEqual {
		out := make([]float64, len(s.participants))
		for i := range out {
			out[i] = s.total / float64(len(s.participants))
		}
		return out
	}
	return s.customShares
}

// commit recomputes shares, verifies every account can afford its converted
// share, then debits all of them atomically. Any shortfall aborts with a
// descriptive error against all participants and no charges.
func (s *SplitPayment) commit() {
	shares := s.shares()

	for i, p := range s.participants {
		conv, ok := s.engine.convert(shares[i], s.currency, p.Account.Currency)
		if !ok || p.Account.Balance < conv.Amount {
			s.state = SplitRejected
			s.recordToAll(fmt.Sprintf(
				"Account %s has insufficient funds for a split payment.", p.Account.IBAN))
			return
		}
	}

	for i, p := range s.participants {
		conv, _ := s.engine.convert(shares[i], s.currency, p.Account.Currency)
		p.Account.Balance -= conv.Amount
	}
	s.state = SplitCommitted
	s.recordToAll("")
}

// recordToAll appends the terminal record to every participant's user and
// account history, re-sorted by timestamp: the approval that resolved the
// split may have been processed after later-stamped events.
func (s *SplitPayment) recordToAll(errDescription string) {
	rec := &model.Record{
		Timestamp:   s.timestamp,
		Description: fmt.Sprintf("Split payment of %.2f %s", s.total, s.currency),
		Currency:    s.currency,
		SplitType:   s.kind,
		Error:       errDescription,
	}
	for _, p := range s.participants {
		rec.InvolvedAccounts = append(rec.InvolvedAccounts, p.Account.IBAN)
	}
	if s.kind == constants.SplitEqual {
		rec.Amount = model.Float(s.total / float64(len(s.participants)))
	} else {
		rec.AmountForUsers = s.customShares
	}

	for _, p := range s.participants {
		p.User.Transactions.Add(rec)
		p.User.Transactions.SortByTimestamp()
		p.Account.Transactions.Add(rec)
		p.Account.Transactions.SortByTimestamp()
	}
}
