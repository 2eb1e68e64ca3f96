package scenario

import (
	"github.com/rmorar/banksim/internal/constants"
	"github.com/rmorar/banksim/internal/engine"
	"github.com/rmorar/banksim/internal/exchange"
	"github.com/rmorar/banksim/internal/model"
)

// Runner executes a scenario's command stream against a fresh world. One
// runner serves one run; nothing survives into the next.
type Runner struct {
	world  *World
	engine *engine.Engine
	out    *engine.Collector

	businessLimit float64
}

// NewRunner builds the world (users, merchants, exchange graph) from the
// scenario's setup sections. businessLimit is the default spending/deposit
// cap for new business accounts, in the reference currency.
func NewRunner(s *Scenario, businessLimit float64) *Runner {
	world := NewWorld()
	for _, u := range s.Users {
		world.AddUser(model.NewUser(u.FirstName, u.LastName, u.Email, u.BirthDate, u.Occupation))
	}

	edges := make([]exchange.Edge, 0, len(s.ExchangeRates))
	for _, r := range s.ExchangeRates {
		edges = append(edges, exchange.Edge{From: r.From, To: r.To, Rate: r.Rate})
	}

	out := &engine.Collector{}
	e := engine.New(exchange.NewGraph(edges), out)

	for _, m := range s.Merchants {
		world.AddMerchant(model.NewMerchant(m.Name, m.Type, m.CashbackStrategy, m.ID, m.Account))
	}

	return &Runner{world: world, engine: e, out: out, businessLimit: businessLimit}
}

// World exposes the registries, mainly for tests and reports.
func (r *Runner) World() *World {
	return r.world
}

// Out exposes the output collector, for callers that mutate the world after
// the command stream (interactive split resolution).
func (r *Runner) Out() *engine.Collector {
	return r.out
}

// Run dispatches every command in order and returns the collected output.
func (r *Runner) Run(s *Scenario) []engine.OutputRecord {
	for _, cmd := range s.Commands {
		r.dispatch(cmd)
	}
	return r.out.Records()
}

func (r *Runner) dispatch(cmd Command) {
	switch cmd.Command {
	case "addAccount":
		r.addAccount(cmd)
	case "createCard":
		r.createCard(cmd, false)
	case "createOneTimeCard":
		r.createCard(cmd, true)
	case "addFunds":
		acct, _ := r.world.AccountByIBAN(cmd.Account)
		r.engine.Deposit(acct, cmd.Email, cmd.Amount, cmd.Timestamp)
	case "deleteAccount":
		r.deleteAccount(cmd)
	case "deleteCard":
		r.deleteCard(cmd)
	case "setMinimumBalance":
		r.setMinimumBalance(cmd)
	case "checkCardStatus":
		r.checkCardStatus(cmd)
	case "payOnline":
		r.payOnline(cmd)
	case "sendMoney":
		r.sendMoney(cmd)
	case "splitPayment":
		r.splitPayment(cmd)
	case "acceptSplitPayment":
		r.answerSplit(cmd, true)
	case "rejectSplitPayment":
		r.answerSplit(cmd, false)
	case "upgradePlan":
		acct, user := r.world.AccountByIBAN(cmd.Account)
		r.engine.UpgradePlan(user, acct, cmd.NewPlanType, cmd.Timestamp)
	case "cashWithdrawal":
		r.cashWithdrawal(cmd)
	case "withdrawSavings":
		acct, user := r.world.AccountByIBAN(cmd.Account)
		r.engine.WithdrawSavings(user, acct, cmd.Amount, cmd.Currency, cmd.Timestamp)
	case "changeInterestRate":
		acct, user := r.world.AccountByIBAN(cmd.Account)
		r.engine.ChangeInterest(user, acct, cmd.InterestRate, cmd.Timestamp)
	case "addInterest":
		acct, user := r.world.AccountByIBAN(cmd.Account)
		r.engine.AddInterest(user, acct, cmd.Timestamp)
	case "addNewBusinessAssociate":
		r.addAssociate(cmd)
	case "changeSpendingLimit":
		r.changeLimit(cmd, true)
	case "changeDepositLimit":
		r.changeLimit(cmd, false)
	case "printUsers":
		r.out.Append(engine.OutputRecord{
			Command: cmd.Command, Timestamp: cmd.Timestamp,
			Payload: viewUsers(r.world.Users()),
		})
	case "printTransactions":
		r.printTransactions(cmd)
	}
}

func (r *Runner) addAccount(cmd Command) {
	user := r.world.UserByEmail(cmd.Email)
	if user == nil {
		return
	}

	iban := GenerateIBAN()
	var acct *model.Account
	switch cmd.AccountType {
	case constants.TypeSavings:
		acct = model.NewSavingsAccount(iban, cmd.Currency, cmd.InterestRate)
	case constants.TypeBusiness:
		limit := r.engine.BusinessLimit(r.businessLimit, cmd.Currency)
		acct = model.NewBusinessAccount(iban, cmd.Currency, user, limit)
	default:
		acct = model.NewClassicAccount(iban, cmd.Currency)
	}
	user.Accounts = append(user.Accounts, acct)

	rec := &model.Record{Timestamp: cmd.Timestamp, Description: "New account created"}
	user.Transactions.Add(rec)
	acct.Transactions.Add(rec)
}

func (r *Runner) createCard(cmd Command, oneTime bool) {
	user := r.world.UserByEmail(cmd.Email)
	if user == nil {
		return
	}
	acct := user.AccountByIBAN(cmd.Account)
	if acct == nil {
		return
	}

	number := model.GenerateCardNumber()
	var card *model.Card
	if oneTime {
		card = model.NewOneTimeCard(number, cmd.Email)
	} else {
		card = model.NewCard(number, cmd.Email)
	}
	acct.Cards = append(acct.Cards, card)

	rec := &model.Record{
		Timestamp:   cmd.Timestamp,
		Description: "New card created",
		Card:        card.Number,
		CardHolder:  cmd.Email,
		Account:     acct.IBAN,
	}
	user.Transactions.Add(rec)
	acct.Transactions.Add(rec)
}

func (r *Runner) deleteAccount(cmd Command) {
	user := r.world.UserByEmail(cmd.Email)
	if user == nil {
		return
	}
	acct := user.AccountByIBAN(cmd.Account)
	if acct == nil {
		return
	}

	if acct.Balance != 0 {
		r.out.Append(engine.OutputRecord{
			Command: cmd.Command, Timestamp: cmd.Timestamp,
			Error: "Account couldn't be deleted - see account transactions for details",
		})
		user.Transactions.Add(&model.Record{
			Timestamp:   cmd.Timestamp,
			Description: "Account couldn't be deleted - there are funds remaining",
		})
		return
	}

	for i, a := range user.Accounts {
		if a == acct {
			user.Accounts = append(user.Accounts[:i], user.Accounts[i+1:]...)
			break
		}
	}
	r.out.Append(engine.OutputRecord{
		Command: cmd.Command, Timestamp: cmd.Timestamp,
		Payload: map[string]any{"success": "Account deleted", "timestamp": cmd.Timestamp},
	})
}

func (r *Runner) deleteCard(cmd Command) {
	user := r.world.UserByEmail(cmd.Email)
	if user == nil {
		return
	}
	acct, card := user.AccountByCard(cmd.CardNumber)
	if acct == nil {
		return
	}

	for i, c := range acct.Cards {
		if c == card {
			acct.Cards = append(acct.Cards[:i], acct.Cards[i+1:]...)
			break
		}
	}

	rec := &model.Record{
		Timestamp:   cmd.Timestamp,
		Description: "The card has been destroyed",
		Card:        card.Number,
		CardHolder:  cmd.Email,
		Account:     acct.IBAN,
	}
	user.Transactions.Add(rec)
	acct.Transactions.Add(rec)
}

func (r *Runner) setMinimumBalance(cmd Command) {
	acct, _ := r.world.AccountByIBAN(cmd.Account)
	if acct == nil {
		r.out.Append(engine.OutputRecord{
			Command: cmd.Command, Timestamp: cmd.Timestamp, Error: "Account not found",
		})
		return
	}
	acct.MinBalance = cmd.Amount
}

func (r *Runner) checkCardStatus(cmd Command) {
	for _, user := range r.world.Users() {
		acct, card := user.AccountByCard(cmd.CardNumber)
		if acct == nil {
			continue
		}
		if acct.Balance <= acct.MinBalance && card.Status != constants.CardFrozen {
			card.Status = constants.CardFrozen
			user.Transactions.Add(&model.Record{
				Timestamp:   cmd.Timestamp,
				Description: "You have reached the minimum amount of funds, the card will be frozen",
			})
		}
		return
	}
	r.out.Append(engine.OutputRecord{
		Command: cmd.Command, Timestamp: cmd.Timestamp, Error: "Card not found",
	})
}

func (r *Runner) payOnline(cmd Command) {
	user := r.world.UserByEmail(cmd.Email)
	if user == nil {
		r.out.Append(engine.OutputRecord{
			Command: cmd.Command, Timestamp: cmd.Timestamp, Error: "User not found",
		})
		return
	}
	r.engine.PayOnline(user, r.world.MerchantByName(cmd.Merchant), engine.PaymentRequest{
		CardNumber: cmd.CardNumber,
		Amount:     cmd.Amount,
		Currency:   cmd.Currency,
		Email:      cmd.Email,
		Timestamp:  cmd.Timestamp,
	})
}

func (r *Runner) sendMoney(cmd Command) {
	giver, giverUser := r.world.AccountByIBAN(cmd.Account)
	req := engine.TransferRequest{
		Amount:      cmd.Amount,
		Email:       cmd.Email,
		Description: cmd.Description,
		Timestamp:   cmd.Timestamp,
	}

	if merchant := r.world.MerchantByIBAN(cmd.Receiver); merchant != nil {
		r.engine.SendToMerchant(giver, giverUser, merchant, req)
		return
	}
	receiver, receiverUser := r.world.AccountByIBAN(cmd.Receiver)
	r.engine.SendMoney(giver, giverUser, receiver, receiverUser, req)
}

func (r *Runner) splitPayment(cmd Command) {
	participants := make([]engine.Participant, 0, len(cmd.Accounts))
	for _, iban := range cmd.Accounts {
		acct, user := r.world.AccountByIBAN(iban)
		if acct == nil {
			return
		}
		participants = append(participants, engine.Participant{User: user, Account: acct})
	}

	kind := cmd.SplitPaymentType
	if kind == "" {
		kind = constants.SplitEqual
	}
	var shares []float64
	if kind == constants.SplitCustom {
		shares = cmd.AmountForUsers
	}
	r.engine.NewSplitPayment(kind, cmd.Amount, cmd.Currency, shares, participants, cmd.Timestamp)
}

func (r *Runner) answerSplit(cmd Command, accept bool) {
	user := r.world.UserByEmail(cmd.Email)
	if user == nil {
		r.out.Append(engine.OutputRecord{
			Command: cmd.Command, Timestamp: cmd.Timestamp, Error: "User not found",
		})
		return
	}

	kind := cmd.SplitPaymentType
	if kind == "" {
		kind = constants.SplitEqual
	}
	pending := user.FirstPendingSplit(kind)
	if pending == nil {
		return
	}
	split := pending.(*engine.SplitPayment)
	if accept {
		split.Approve(cmd.Email)
	} else {
		split.Reject(cmd.Email)
	}
}

func (r *Runner) cashWithdrawal(cmd Command) {
	user := r.world.UserByEmail(cmd.Email)
	if user == nil {
		r.out.Append(engine.OutputRecord{
			Command: cmd.Command, Timestamp: cmd.Timestamp, Error: "User not found",
		})
		return
	}
	acct, card := user.AccountByCard(cmd.CardNumber)
	r.engine.CashWithdraw(user, acct, card, cmd.Amount, cmd.Timestamp)
}

func (r *Runner) addAssociate(cmd Command) {
	user := r.world.UserByEmail(cmd.Email)
	if user == nil {
		return
	}
	acct, _ := r.world.AccountByIBAN(cmd.Account)

	role := model.RoleEmployee
	if cmd.Role == "manager" {
		role = model.RoleManager
	}
	// Duplicate roles and unknown accounts are silent in the command
	// stream; the business report surfaces the final associate set.
	_ = r.engine.AddAssociate(acct, user, role, cmd.Timestamp)
}

func (r *Runner) changeLimit(cmd Command, spending bool) {
	acct, _ := r.world.AccountByIBAN(cmd.Account)
	user := r.world.UserByEmail(cmd.Email)
	if acct == nil || user == nil {
		r.out.Append(engine.OutputRecord{
			Command: cmd.Command, Timestamp: cmd.Timestamp, Error: "Account not found",
		})
		return
	}
	if spending {
		r.engine.ChangeSpendingLimit(acct, user, cmd.Amount, cmd.Timestamp)
	} else {
		r.engine.ChangeDepositLimit(acct, user, cmd.Amount, cmd.Timestamp)
	}
}

func (r *Runner) printTransactions(cmd Command) {
	user := r.world.UserByEmail(cmd.Email)
	if user == nil {
		r.out.Append(engine.OutputRecord{
			Command: cmd.Command, Timestamp: cmd.Timestamp, Error: "User not found",
		})
		return
	}
	user.Transactions.SortByTimestamp()
	r.out.Append(engine.OutputRecord{
		Command: cmd.Command, Timestamp: cmd.Timestamp,
		Payload: viewHistory(&user.Transactions),
	})
}
