package engine

import (
	"github.com/rmorar/banksim/internal/constants"
	"github.com/rmorar/banksim/internal/exchange"
	"github.com/rmorar/banksim/internal/model"
	"github.com/rmorar/banksim/internal/plan"
)

// EUR->RON 5, USD->EUR 0.9 and their setup-time reciprocals; USD->RON 4.5.
func newTestEngine() (*Engine, *Collector) {
	out := &Collector{}
	g := exchange.NewGraph([]exchange.Edge{
		{From: "EUR", To: "RON", Rate: 5},
		{From: "USD", To: "EUR", Rate: 0.9},
	})
	return New(g, out), out
}

func newTestUser(email string) *model.User {
	return model.NewUser("John", "Doe", email, "1990-05-05", "entrepreneur")
}

func withPlan(u *model.User, name string) *model.User {
	p, err := plan.New(name)
	if err != nil {
		panic(err)
	}
	u.Plan = p
	return u
}

func addClassic(u *model.User, iban, currency string, balance float64) *model.Account {
	a := model.NewClassicAccount(iban, currency)
	a.Balance = balance
	u.Accounts = append(u.Accounts, a)
	return a
}

func addCard(a *model.Account, number, email string) *model.Card {
	c := model.NewCard(number, email)
	a.Cards = append(a.Cards, c)
	return c
}

func countMerchant(name, category string) *model.Merchant {
	return model.NewMerchant(name, category, constants.SchemeTransactionCount, 1, "RO00BANK"+name)
}
