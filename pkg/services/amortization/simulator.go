package amortization

import (
	"fmt"

	"github.com/de-tools/finance-atlas/pkg/models/domain"
)

// finalResidueEpsilon absorbs float dust left after the last scheduled payment.
const finalResidueEpsilon = 0.005

// Simulate walks a repayment schedule period by period. Each payment first
// covers the charge produced by mode, the remainder reduces the balance.
// The schedule ends as soon as the balance reaches zero, which may be before
// the stated number of periods. The closing step is clamped so a fully repaid
// schedule ends at exactly zero.
func Simulate(
	principal float64,
	mode domain.InterestMode,
	payment float64,
	periods int,
) ([]domain.AmortizationStep, error) {
	if principal <= 0 {
		return nil, fmt.Errorf("%w: principal must be positive, got %.2f", domain.ErrInvalidPlan, principal)
	}
	if payment <= 0 {
		return nil, fmt.Errorf("%w: payment must be positive, got %.2f", domain.ErrInvalidPlan, payment)
	}
	if periods < 1 {
		return nil, fmt.Errorf("%w: schedule needs at least one period, got %d", domain.ErrInvalidPlan, periods)
	}

	steps := make([]domain.AmortizationStep, 0, periods)
	balance := principal

	for period := 1; period <= periods; period++ {
		charge := mode.Charge(balance)
		repaid := payment - charge
		if repaid <= 0 {
			return nil, fmt.Errorf("%w: payment %.2f does not cover the %.2f charge in period %d",
				domain.ErrInvalidPlan, payment, charge, period)
		}

		after := balance - repaid
		closing := after <= 0 || (period == periods && after <= finalResidueEpsilon)
		if closing {
			steps = append(steps, domain.AmortizationStep{
				Period:        period,
				BalanceBefore: balance,
				Principal:     balance,
				Charge:        charge,
				BalanceAfter:  0,
			})
			return steps, nil
		}

		steps = append(steps, domain.AmortizationStep{
			Period:        period,
			BalanceBefore: balance,
			Principal:     repaid,
			Charge:        charge,
			BalanceAfter:  after,
		})
		balance = after
	}

	return steps, nil
}
