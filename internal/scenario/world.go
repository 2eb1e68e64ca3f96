package scenario

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/rmorar/banksim/internal/model"
)

// World is the registry of every participant in a run. It is built once per
// scenario and passed explicitly to whoever needs lookups; nothing here is a
// process-wide singleton.
type World struct {
	users           []*model.User
	usersByEmail    map[string]*model.User
	merchantsByName map[string]*model.Merchant
	merchantsByIBAN map[string]*model.Merchant
}

func NewWorld() *World {
	return &World{
		usersByEmail:    make(map[string]*model.User),
		merchantsByName: make(map[string]*model.Merchant),
		merchantsByIBAN: make(map[string]*model.Merchant),
	}
}

func (w *World) AddUser(u *model.User) {
	w.users = append(w.users, u)
	w.usersByEmail[u.Email] = u
}

func (w *World) AddMerchant(m *model.Merchant) {
	w.merchantsByName[m.Name] = m
	w.merchantsByIBAN[m.IBAN] = m
}

// Users returns the registry in insertion order, for reports.
func (w *World) Users() []*model.User {
	return w.users
}

func (w *World) UserByEmail(email string) *model.User {
	return w.usersByEmail[email]
}

func (w *World) MerchantByName(name string) *model.Merchant {
	return w.merchantsByName[name]
}

func (w *World) MerchantByIBAN(iban string) *model.Merchant {
	return w.merchantsByIBAN[iban]
}

// AccountByIBAN finds an account and its owning user anywhere in the world.
// Associates do not own the business accounts they are attached to, so the
// scan prefers the user whose account list contains it first (the owner is
// always registered before associates are added).
func (w *World) AccountByIBAN(iban string) (*model.Account, *model.User) {
	for _, u := range w.users {
		if acct := u.AccountByIBAN(iban); acct != nil {
			return acct, u
		}
	}
	return nil, nil
}

// GenerateIBAN produces a fresh account identifier.
func GenerateIBAN() string {
	return "RO" + uuidDigits(2) + "BANK" + uuidDigits(16)
}

func uuidDigits(n int) string {
	id := uuid.New()
	digits := make([]byte, 0, n)
	for i := 0; len(digits) < n; i++ {
		digits = strconv.AppendInt(digits, int64(id[i%len(id)]%10), 10)
	}
	return string(digits[:n])
}
