package model

import "fmt"

// Role is an associate's permission rank on a business account.
type Role int

const (
	RoleEmployee Role = iota
	RoleManager
	RoleOwner
)

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleManager:
		return "manager"
	default:
		return "employee"
	}
}

// RoleHolder resolves the role a user holds on an account.
type RoleHolder interface {
	RoleOf(email string) (Role, bool)
}

// SpendLimiter guards outgoing amounts and records associate spending.
type SpendLimiter interface {
	// SpendAllowed reports whether a user may move the given amount
	// (already in the account currency) off the account.
	SpendAllowed(email string, amount float64) bool
	// RecordSpend charges an associate's spent counter and the account
	// aggregate. Unknown emails and the owner are ignored.
	RecordSpend(email string, amount float64)
	// RecordMerchantSpend additionally tracks the per-merchant aggregate.
	RecordMerchantSpend(email, merchant string, amount float64)
}

// Associate is one person attached to a business account.
type Associate struct {
	User      *User
	Username  string
	Role      Role
	Deposited float64
	Spent     float64
}

// MerchantTotals aggregates business spending at a single merchant.
type MerchantTotals struct {
	Merchant      string
	Employees     []string
	Managers      []string
	TotalReceived float64
}

// BusinessProfile is the business specialization of an account: one owner,
// any number of managers and employees, and spending/deposit caps that bind
// employees only.
type BusinessProfile struct {
	Owner     *Associate
	Managers  map[string]*Associate
	Employees map[string]*Associate

	SpendingLimit float64
	DepositLimit  float64

	TotalDeposited float64
	TotalSpent     float64

	Merchants map[string]*MerchantTotals
}

func newBusinessProfile(owner *User, limit float64) *BusinessProfile {
	return &BusinessProfile{
		Owner:         &Associate{User: owner, Username: owner.Username(), Role: RoleOwner},
		Managers:      make(map[string]*Associate),
		Employees:     make(map[string]*Associate),
		SpendingLimit: limit,
		DepositLimit:  limit,
		Merchants:     make(map[string]*MerchantTotals),
	}
}

// RoleOf implements RoleHolder.
func (b *BusinessProfile) RoleOf(email string) (Role, bool) {
	if b.Owner.User.Email == email {
		return RoleOwner, true
	}
	if _, ok := b.Managers[email]; ok {
		return RoleManager, true
	}
	if _, ok := b.Employees[email]; ok {
		return RoleEmployee, true
	}
	return 0, false
}

// AddAssociate attaches a user as manager or employee. A person holds at most
// one role on a given account.
func (b *BusinessProfile) AddAssociate(u *User, role Role) error {
	if _, ok := b.RoleOf(u.Email); ok {
		return fmt.Errorf("the user %s is already an associate of the account", u.Email)
	}
	a := &Associate{User: u, Username: u.Username(), Role: role}
	switch role {
	case RoleManager:
		b.Managers[u.Email] = a
	case RoleEmployee:
		b.Employees[u.Email] = a
	default:
		return fmt.Errorf("a business account has a single owner")
	}
	return nil
}

func (b *BusinessProfile) associate(email string) *Associate {
	if a, ok := b.Employees[email]; ok {
		return a
	}
	if a, ok := b.Managers[email]; ok {
		return a
	}
	return nil
}

// SpendAllowed implements SpendLimiter. Only plain employees are bound by the
// spending limit; managers and the owner spend freely.
func (b *BusinessProfile) SpendAllowed(email string, amount float64) bool {
	if _, ok := b.Employees[email]; !ok {
		return true
	}
	return amount <= b.SpendingLimit
}

// DepositAllowed mirrors SpendAllowed for incoming funds.
func (b *BusinessProfile) DepositAllowed(email string, amount float64) bool {
	if _, ok := b.Employees[email]; !ok {
		return true
	}
	return amount <= b.DepositLimit
}

// RecordSpend implements SpendLimiter.
func (b *BusinessProfile) RecordSpend(email string, amount float64) {
	a := b.associate(email)
	if a == nil {
		return
	}
	a.Spent += amount
	b.TotalSpent += amount
}

// RecordDeposit charges an associate's deposited counter and the aggregate.
func (b *BusinessProfile) RecordDeposit(email string, amount float64) {
	a := b.associate(email)
	if a == nil {
		return
	}
	a.Deposited += amount
	b.TotalDeposited += amount
}

// RecordMerchantSpend implements SpendLimiter.
func (b *BusinessProfile) RecordMerchantSpend(email, merchant string, amount float64) {
	a := b.associate(email)
	if a == nil {
		return
	}
	a.Spent += amount
	b.TotalSpent += amount

	mt, ok := b.Merchants[merchant]
	if !ok {
		mt = &MerchantTotals{Merchant: merchant}
		b.Merchants[merchant] = mt
	}
	if a.Role == RoleManager {
		mt.Managers = append(mt.Managers, a.Username)
	} else {
		mt.Employees = append(mt.Employees, a.Username)
	}
	mt.TotalReceived += amount
}
