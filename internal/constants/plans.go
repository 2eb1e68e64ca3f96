package constants

const (
	// Plan names
	PlanStandard = "standard"
	PlanStudent  = "student"
	PlanSilver   = "silver"
	PlanGold     = "gold"

	// Upgrade fees, RON
	FeeStandardToSilver = 100.0
	FeeStandardToGold   = 350.0
	FeeSilverToGold     = 250.0

	// Silver commission applies from this RON amount upward
	SilverCommissionFloor = 500.0

	StandardCommission = 0.2 / 100
	SilverCommission   = 0.1 / 100
)

const (
	// A payment of at least this RON-equivalent counts as a big transaction;
	// five of them on silver trigger the free gold upgrade.
	BigTransactionAmount   = 300.0
	BigTransactionsForGold = 5
)
