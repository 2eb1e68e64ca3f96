// Package scenario loads simulation input files and drives the engine: it
// resolves command targets (users, accounts, cards, merchants), owns the thin
// account/card lifecycle around the engine's pipelines and collects the
// structured output of a run.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
)

// Scenario is one simulation input file.
type Scenario struct {
	Users         []UserInput     `json:"users"`
	ExchangeRates []RateInput     `json:"exchangeRates"`
	Merchants     []MerchantInput `json:"merchants"`
	Commands      []Command       `json:"commands"`
}

type UserInput struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	BirthDate  string `json:"birthDate"`
	Occupation string `json:"occupation"`
}

type RateInput struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

type MerchantInput struct {
	Name             string `json:"name"`
	ID               int    `json:"id"`
	Account          string `json:"account"`
	Type             string `json:"type"`
	CashbackStrategy string `json:"cashbackStrategy"`
}

// Command is one step of the scenario stream. Fields are a union over every
// command type; the dispatcher reads only the ones its command uses.
type Command struct {
	Command   string `json:"command"`
	Timestamp int64  `json:"timestamp"`

	Email       string  `json:"email,omitempty"`
	Account     string  `json:"account,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	AccountType string  `json:"accountType,omitempty"`

	CardNumber  string `json:"cardNumber,omitempty"`
	Merchant    string `json:"merchant,omitempty"`
	Receiver    string `json:"receiver,omitempty"`
	Description string `json:"description,omitempty"`

	InterestRate float64 `json:"interestRate,omitempty"`

	SplitPaymentType string    `json:"splitPaymentType,omitempty"`
	Accounts         []string  `json:"accounts,omitempty"`
	AmountForUsers   []float64 `json:"amountForUsers,omitempty"`

	NewPlanType string `json:"newPlanType,omitempty"`

	Role string `json:"role,omitempty"`
}

// Load reads and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", path, err)
	}
	return &s, nil
}
