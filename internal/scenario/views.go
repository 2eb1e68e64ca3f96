package scenario

import "github.com/rmorar/banksim/internal/model"

// Output views. History records carry a sparse union of fields, and two of
// them ("amount" as a number for payments, as a "12.5 RON" string for
// transfers) share a JSON key, so records render through a map instead of a
// tagged struct.

type cardView struct {
	Number string `json:"cardNumber"`
	Status string `json:"status"`
}

type accountView struct {
	IBAN     string     `json:"IBAN"`
	Balance  float64    `json:"balance"`
	Currency string     `json:"currency"`
	Type     string     `json:"type"`
	Cards    []cardView `json:"cards"`
}

type userView struct {
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	Accounts  []accountView `json:"accounts"`
}

func viewUser(u *model.User) userView {
	v := userView{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Accounts:  []accountView{},
	}
	for _, acct := range u.Accounts {
		av := accountView{
			IBAN:     acct.IBAN,
			Balance:  acct.Balance,
			Currency: acct.Currency,
			Type:     acct.Type,
			Cards:    []cardView{},
		}
		for _, c := range acct.Cards {
			av.Cards = append(av.Cards, cardView{Number: c.Number, Status: c.Status})
		}
		v.Accounts = append(v.Accounts, av)
	}
	return v
}

func viewUsers(users []*model.User) []userView {
	out := make([]userView, 0, len(users))
	for _, u := range users {
		out = append(out, viewUser(u))
	}
	return out
}

func viewRecord(r *model.Record) map[string]any {
	v := map[string]any{
		"timestamp":   r.Timestamp,
		"description": r.Description,
	}
	if r.Amount != nil {
		v["amount"] = *r.Amount
	}
	if r.AmountText != "" {
		v["amount"] = r.AmountText
	}
	if r.Currency != "" {
		v["currency"] = r.Currency
	}
	if r.Merchant != "" {
		v["merchant"] = r.Merchant
	}
	if r.SenderIBAN != "" {
		v["senderIBAN"] = r.SenderIBAN
	}
	if r.ReceiverIBAN != "" {
		v["receiverIBAN"] = r.ReceiverIBAN
	}
	if r.TransferType != "" {
		v["transferType"] = r.TransferType
	}
	if r.Card != "" {
		v["card"] = r.Card
	}
	if r.CardHolder != "" {
		v["cardHolder"] = r.CardHolder
	}
	if r.Account != "" {
		v["account"] = r.Account
	}
	if r.NewPlan != "" {
		v["newPlanType"] = r.NewPlan
	}
	if r.SplitType != "" {
		v["splitPaymentType"] = r.SplitType
	}
	if len(r.InvolvedAccounts) > 0 {
		v["involvedAccounts"] = r.InvolvedAccounts
	}
	if len(r.AmountForUsers) > 0 {
		v["amountForUsers"] = r.AmountForUsers
	}
	if r.Error != "" {
		v["error"] = r.Error
	}
	if r.ClassicIBAN != "" {
		v["classicAccountIBAN"] = r.ClassicIBAN
	}
	if r.SavingsIBAN != "" {
		v["savingsAccountIBAN"] = r.SavingsIBAN
	}
	return v
}

func viewHistory(h *model.History) []map[string]any {
	out := make([]map[string]any, 0, h.Len())
	for _, r := range h.All() {
		out = append(out, viewRecord(r))
	}
	return out
}
