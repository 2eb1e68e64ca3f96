package constants

const (
	// Account types
	TypeClassic  = "classic"
	TypeSavings  = "savings"
	TypeBusiness = "business"

	// Card statuses
	CardActive = "active"
	CardFrozen = "frozen"

	// Transfer directions on history records
	TransferSent     = "sent"
	TransferReceived = "received"

	// Split payment kinds
	SplitEqual  = "equal"
	SplitCustom = "custom"
)

const (
	// Reference currency for commissions, fees and thresholds
	BaseCurrency = "RON"

	// Business spending/deposit limits are seeded from this RON amount
	DefaultBusinessLimit = 500.0
)

const (
	// Cashback scheme names as they appear in merchant input
	SchemeSpendingThreshold = "spendingThreshold"
	SchemeTransactionCount  = "nrOfTransactions"

	// Merchant categories carrying coupons
	CategoryFood    = "Food"
	CategoryClothes = "Clothes"
	CategoryTech    = "Tech"

	// Coupon state markers; anything > 0 is an active rate
	CouponUnused    = 0.0
	CouponExhausted = -1.0
)
