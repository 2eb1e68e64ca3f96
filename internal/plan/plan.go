package plan

import (
	"fmt"

	"github.com/rmorar/banksim/internal/constants"
)

// Plan is a ranked service tier. Commission is a rate (0.002 means 0.2%)
// computed from the transaction amount expressed in RON.
type Plan interface {
	Name() string
	Rank() int
	CommissionRate(amountRON float64) float64
}

type standard struct{}

func (standard) Name() string { return constants.PlanStandard }
func (standard) Rank() int    { return 1 }
func (standard) CommissionRate(float64) float64 {
	return constants.StandardCommission
}

type student struct{}

func (student) Name() string                   { return constants.PlanStudent }
func (student) Rank() int                      { return 2 }
func (student) CommissionRate(float64) float64 { return 0 }

type silver struct{}

func (silver) Name() string { return constants.PlanSilver }
func (silver) Rank() int    { return 3 }
func (silver) CommissionRate(amountRON float64) float64 {
	if amountRON >= constants.SilverCommissionFloor {
		return constants.SilverCommission
	}
	return 0
}

type gold struct{}

func (gold) Name() string                   { return constants.PlanGold }
func (gold) Rank() int                      { return 4 }
func (gold) CommissionRate(float64) float64 { return 0 }

// New returns the plan for the given name.
func New(name string) (Plan, error) {
	switch name {
	case constants.PlanStandard:
		return standard{}, nil
	case constants.PlanStudent:
		return student{}, nil
	case constants.PlanSilver:
		return silver{}, nil
	case constants.PlanGold:
		return gold{}, nil
	default:
		return nil, fmt.Errorf("unknown service plan %q", name)
	}
}

// ForOccupation picks the starting plan for a new user: students get the
// student plan, everyone else starts on standard.
func ForOccupation(occupation string) Plan {
	if occupation == constants.PlanStudent {
		return student{}
	}
	return standard{}
}

// UpgradeFee returns the one-time fee, in RON, for moving between two tiers.
// Transitions outside the fee table cost nothing.
func UpgradeFee(current, target Plan) float64 {
	switch current.Name() {
	case constants.PlanStandard, constants.PlanStudent:
		switch target.Name() {
		case constants.PlanSilver:
			return constants.FeeStandardToSilver
		case constants.PlanGold:
			return constants.FeeStandardToGold
		}
	case constants.PlanSilver:
		if target.Name() == constants.PlanGold {
			return constants.FeeSilverToGold
		}
	}
	return 0
}
