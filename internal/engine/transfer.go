package engine

import (
	"strconv"

	"github.com/rmorar/banksim/internal/constants"
	"github.com/rmorar/banksim/internal/model"
)

// TransferRequest is a peer-to-peer or account-to-merchant transfer command
// after target resolution.
type TransferRequest struct {
	Amount      float64
	Email       string
	Description string
	Timestamp   int64
}

func amountText(amount float64, currency string) string {
	return strconv.FormatFloat(amount, 'f', -1, 64) + " " + currency
}

// SendMoney moves funds between two accounts, converting into the receiver's
// currency. The giver pays a commission on the raw command amount's
// RON-equivalent; the receiver's history gets a mirrored "received" record in
// its own currency.
func (e *Engine) SendMoney(giver *model.Account, giverUser *model.User, receiver *model.Account, receiverUser *model.User, req TransferRequest) {
	if giver == nil || receiver == nil {
		e.emitError("sendMoney", req.Timestamp, "User not found")
		return
	}

	rec := &model.Record{
		Timestamp:   req.Timestamp,
		Description: req.Description,
	}

	if giver.Balance-req.Amount <= 0 {
		rec.Description = "Insufficient funds"
	} else {
		conv, ok := e.convert(req.Amount, giver.Currency, receiver.Currency)
		if !ok {
			return
		}

		limiter := giver.Limiter()
		if limiter != nil && !limiter.SpendAllowed(req.Email, conv.Amount) {
			return
		}

		amountRON, ok := e.toBase(req.Amount, giver.Currency)
		if !ok {
			return
		}
		commission := commissionOn(giverUser.Plan, amountRON)

		if giver.Balance-req.Amount-commission.Fee(req.Amount) < giver.MinBalance {
			rec.Description = "Insufficient funds"
		} else {
			if limiter != nil {
				limiter.RecordSpend(req.Email, conv.Amount)
			}
			rec.SenderIBAN = giver.IBAN
			rec.ReceiverIBAN = receiver.IBAN
			rec.AmountText = amountText(req.Amount, giver.Currency)
			rec.TransferType = constants.TransferSent

			giver.Balance -= req.Amount + commission.Fee(req.Amount)
			receiver.Balance += conv.Amount

			received := &model.Record{
				Timestamp:    req.Timestamp,
				Description:  req.Description,
				SenderIBAN:   giver.IBAN,
				ReceiverIBAN: receiver.IBAN,
				AmountText:   amountText(conv.Amount, receiver.Currency),
				TransferType: constants.TransferReceived,
			}
			receiverUser.Transactions.Add(received)
			receiver.Transactions.Add(received)
		}
	}

	e.recordGiverTransfer(giver, giverUser, receiverUser, rec)
}

// recordGiverTransfer places the sender-side record: business accounts log
// only the owner's transfers; a self-transfer slots before the mirrored
// "received" entry that was just appended.
func (e *Engine) recordGiverTransfer(giver *model.Account, giverUser, receiverUser *model.User, rec *model.Record) {
	switch {
	case giver.Business != nil:
		if giver.Business.Owner.User == giverUser {
			giverUser.Transactions.Add(rec)
		}
	case receiverUser != nil && giverUser.Email == receiverUser.Email:
		giverUser.Transactions.InsertBeforeLast(1, rec)
	default:
		giverUser.Transactions.Add(rec)
	}

	if giver.Type == constants.TypeClassic {
		giver.Transactions.Add(rec)
	}
}

// SendToMerchant is the merchant-directed transfer: it reuses the coupon and
// cashback path of the payment pipeline but the receiver side only updates
// merchant aggregates.
func (e *Engine) SendToMerchant(giver *model.Account, giverUser *model.User, merchant *model.Merchant, req TransferRequest) {
	if giver == nil || merchant == nil {
		e.emitError("sendMoney", req.Timestamp, "User not found")
		return
	}

	rec := &model.Record{
		Timestamp:   req.Timestamp,
		Description: req.Description,
	}

	committed := false
	if giver.Balance-req.Amount <= 0 {
		rec.Description = "Insufficient funds"
	} else {
		amount := req.Amount

		limiter := giver.Limiter()
		if limiter != nil && !limiter.SpendAllowed(req.Email, amount) {
			return
		}

		var coupon float64
		if rate := giver.CouponFor(merchant.Category); rate > 0 {
			coupon = rate * amount
			giver.ConsumeCoupon(merchant.Category)
		}

		amountRON, ok := e.toBase(amount, giver.Currency)
		if !ok {
			return
		}
		commission := commissionOn(giverUser.Plan, amountRON)

		if giver.Balance-amount-commission.Fee(amount) <= giver.MinBalance {
			rec.Description = "Insufficient funds"
			giverUser.Transactions.Add(rec)
			if giver.Type == constants.TypeClassic {
				giver.Transactions.Add(rec)
			}
			return
		}

		cb := e.cashbackFor(merchant, giver, giverUser.Plan, amountRON)
		credit := cb.Amount + coupon

		if limiter != nil {
			if !limiter.SpendAllowed(req.Email, amount+commission.Fee(amount)) {
				return
			}
			limiter.RecordMerchantSpend(req.Email, merchant.Name, amount)
		}

		giver.Balance = giver.Balance - amount - commission.Fee(amount) + credit

		countBigTransaction(giverUser, amount, commission.Rate, cb.BackRate)

		rec.SenderIBAN = giver.IBAN
		rec.ReceiverIBAN = merchant.IBAN
		rec.AmountText = amountText(amount, giver.Currency)
		rec.TransferType = constants.TransferSent
		committed = true
	}

	if giver.Business != nil {
		if giver.Business.Owner.User == giverUser {
			giverUser.Transactions.Add(rec)
			if committed {
				e.maybeAutoUpgrade(giverUser, giver, req.Timestamp, false)
			}
		}
	} else {
		giverUser.Transactions.Add(rec)
		if committed {
			e.maybeAutoUpgrade(giverUser, giver, req.Timestamp, false)
		}
	}

	if giver.Type == constants.TypeClassic {
		giver.Transactions.Add(rec)
	}
}
