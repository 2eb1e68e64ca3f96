package engine

import (
	"fmt"

	"github.com/rmorar/banksim/internal/constants"
	"github.com/rmorar/banksim/internal/model"
	"github.com/rmorar/banksim/internal/plan"
)

// UpgradePlan validates and applies a user-requested service tier change.
// Upgrades are strictly monotonic; the one-time fee comes from the tier
// transition table, converted from RON into the account currency.
func (e *Engine) UpgradePlan(user *model.User, acct *model.Account, newPlanName string, timestamp int64) {
	if user == nil || acct == nil {
		e.emitError("upgradePlan", timestamp, "Account not found")
		return
	}

	target, err := plan.New(newPlanName)
	if err != nil {
		e.emitError("upgradePlan", timestamp, err.Error())
		return
	}

	record := func(description string, withPlan bool) {
		rec := &model.Record{Timestamp: timestamp, Description: description}
		if withPlan {
			rec.Account = acct.IBAN
			rec.NewPlan = newPlanName
		}
		user.Transactions.Add(rec)
		acct.Transactions.Add(rec)
	}

	if user.Plan.Name() == newPlanName {
		record(fmt.Sprintf("The user already has the %s plan.", newPlanName), false)
		return
	}

	if user.Plan.Rank() > target.Rank() {
		record("You cannot downgrade your plan.", false)
		return
	}

	fee := plan.UpgradeFee(user.Plan, target)
	conv, ok := e.convert(fee, constants.BaseCurrency, acct.Currency)
	if !ok {
		e.emitError("upgradePlan", timestamp, "Exchange rates unavailable")
		return
	}

	if acct.Balance-conv.Amount < acct.MinBalance {
		record("Insufficient funds", false)
		return
	}

	acct.Balance -= conv.Amount
	user.Plan = target
	record("Upgrade plan", true)
}

// applyAutoUpgrade performs the fee-exempt silver->gold switch triggered by
// the big-transaction counter and returns the history record for the caller
// to place.
func (e *Engine) applyAutoUpgrade(user *model.User, acct *model.Account, timestamp int64) *model.Record {
	gold, _ := plan.New(constants.PlanGold)
	user.Plan = gold

	rec := &model.Record{
		Timestamp:   timestamp,
		Description: "Upgrade plan",
		Account:     acct.IBAN,
		NewPlan:     constants.PlanGold,
	}
	acct.Transactions.Add(rec)
	return rec
}
