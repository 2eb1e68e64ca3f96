package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmorar/banksim/internal/constants"
)

func TestSendMoneyReceiverMissing(t *testing.T) {
	e, out := newTestEngine()
	user := newTestUser("john@mail.com")
	giver := addClassic(user, "RO01", "RON", 1000)

	e.SendMoney(giver, user, nil, nil, TransferRequest{
		Amount: 100, Email: user.Email, Description: "rent", Timestamp: 1,
	})

	require.Len(t, out.Records(), 1)
	assert.Equal(t, "User not found", out.Records()[0].Error)
	assert.Equal(t, 1000.0, giver.Balance)
}

func TestSendMoneyInsufficientFunds(t *testing.T) {
	e, _ := newTestEngine()
	sender := newTestUser("john@mail.com")
	receiver := newTestUser("jane@mail.com")
	giver := addClassic(sender, "RO01", "RON", 50)
	target := addClassic(receiver, "RO02", "RON", 0)

	e.SendMoney(giver, sender, target, receiver, TransferRequest{
		Amount: 100, Email: sender.Email, Description: "rent", Timestamp: 1,
	})

	assert.Equal(t, 50.0, giver.Balance)
	assert.Equal(t, 0.0, target.Balance)
	assert.Equal(t, "Insufficient funds", sender.Transactions.Last().Description)
	assert.Equal(t, 0, receiver.Transactions.Len())
}

func TestSendMoneyCrossCurrency(t *testing.T) {
	e, _ := newTestEngine()
	sender := newTestUser("john@mail.com")
	receiver := newTestUser("jane@mail.com")
	giver := addClassic(sender, "RO01", "RON", 1000)
	target := addClassic(receiver, "RO02", "EUR", 0)

	e.SendMoney(giver, sender, target, receiver, TransferRequest{
		Amount: 100, Email: sender.Email, Description: "rent", Timestamp: 1,
	})

	// 100 RON debit plus 0.2% commission; the receiver gets 20 EUR.
	assert.InDelta(t, 1000-100-0.2, giver.Balance, 1e-9)
	assert.InDelta(t, 20, target.Balance, 1e-9)

	sent := sender.Transactions.Last()
	require.NotNil(t, sent)
	assert.Equal(t, constants.TransferSent, sent.TransferType)
	assert.Equal(t, "100 RON", sent.AmountText)
	assert.Equal(t, "RO01", sent.SenderIBAN)
	assert.Equal(t, "RO02", sent.ReceiverIBAN)

	received := receiver.Transactions.Last()
	require.NotNil(t, received)
	assert.Equal(t, constants.TransferReceived, received.TransferType)
	assert.Equal(t, "20 EUR", received.AmountText)
	assert.Equal(t, "rent", received.Description)
}

func TestSendMoneySelfTransferRecordOrder(t *testing.T) {
	e, _ := newTestEngine()
	user := newTestUser("john@mail.com")
	giver := addClassic(user, "RO01", "RON", 1000)
	target := addClassic(user, "RO02", "RON", 0)

	e.SendMoney(giver, user, target, user, TransferRequest{
		Amount: 100, Email: user.Email, Description: "move", Timestamp: 1,
	})

	all := user.Transactions.All()
	require.Len(t, all, 2)
	assert.Equal(t, constants.TransferSent, all[0].TransferType)
	assert.Equal(t, constants.TransferReceived, all[1].TransferType)
}

func TestSendToMerchantDebitsAndCounts(t *testing.T) {
	e, _ := newTestEngine()
	user := newTestUser("john@mail.com")
	giver := addClassic(user, "RO01", "RON", 1000)
	merchant := countMerchant("Apple", constants.CategoryTech)

	e.SendToMerchant(giver, user, merchant, TransferRequest{
		Amount: 350, Email: user.Email, Description: "laptop", Timestamp: 1,
	})

	assert.InDelta(t, 1000-350-0.7, giver.Balance, 1e-9)
	assert.Equal(t, 1, user.BigTransactions)

	rec := user.Transactions.Last()
	require.NotNil(t, rec)
	assert.Equal(t, "350 RON", rec.AmountText)
	assert.Equal(t, constants.TransferSent, rec.TransferType)
	assert.Equal(t, merchant.IBAN, rec.ReceiverIBAN)
}

func TestSendToMerchantInsufficientFunds(t *testing.T) {
	e, _ := newTestEngine()
	user := newTestUser("john@mail.com")
	giver := addClassic(user, "RO01", "RON", 100)
	merchant := countMerchant("Apple", constants.CategoryTech)

	e.SendToMerchant(giver, user, merchant, TransferRequest{
		Amount: 100, Email: user.Email, Description: "laptop", Timestamp: 1,
	})

	assert.Equal(t, 100.0, giver.Balance)
	assert.Equal(t, "Insufficient funds", user.Transactions.Last().Description)
	assert.Equal(t, 0, user.BigTransactions)
}

func TestSendMoneyGoldPaysNoCommission(t *testing.T) {
	e, _ := newTestEngine()
	sender := withPlan(newTestUser("john@mail.com"), constants.PlanGold)
	receiver := newTestUser("jane@mail.com")
	giver := addClassic(sender, "RO01", "RON", 1000)
	target := addClassic(receiver, "RO02", "RON", 0)

	e.SendMoney(giver, sender, target, receiver, TransferRequest{
		Amount: 600, Email: sender.Email, Description: "rent", Timestamp: 1,
	})

	assert.InDelta(t, 400, giver.Balance, 1e-9)
	assert.InDelta(t, 600, target.Balance, 1e-9)
}
