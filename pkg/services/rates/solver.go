package rates

import (
	"fmt"
	"math"

	"github.com/de-tools/finance-atlas/pkg/models/domain"
)

const (
	rateTolerance   = 1e-9
	maxIterations   = 200
	maxPeriodicRate = 10.0 // 1000% per period, nothing sane lives beyond this
)

// ConvergenceError reports a solver run that could not pin the rate down.
// Best carries the closest estimate reached and Residual the present value
// gap remaining at it.
type ConvergenceError struct {
	Best       float64
	Residual   float64
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("rate solver did not converge after %d iterations: best estimate %.9f, residual %.6f",
		e.Iterations, e.Best, e.Residual)
}

// PresentValue is the worth today of a stream of equal payments discounted at
// a periodic rate. At rate zero the payments are simply summed.
func PresentValue(rate, payment float64, periods int) float64 {
	if rate == 0 {
		return payment * float64(periods)
	}
	return payment * (1 - math.Pow(1+rate, -float64(periods))) / rate
}

// SolveEquivalentRate finds the periodic rate at which a regular loan for
// purchase would cost exactly payment per period over the given term. The
// present value of the payment stream decreases monotonically in the rate,
// so a bisection over [0, maxPeriodicRate] always lands on the single root.
func SolveEquivalentRate(purchase, payment float64, periods int) (domain.SolvedRate, error) {
	if purchase <= 0 || payment <= 0 || periods < 1 {
		return domain.SolvedRate{}, fmt.Errorf("%w: purchase %.2f, payment %.2f, periods %d",
			domain.ErrInvalidPlan, purchase, payment, periods)
	}

	f := func(rate float64) float64 {
		return PresentValue(rate, payment, periods) - purchase
	}

	f0 := f(0)
	if f0 < -rateTolerance {
		return domain.SolvedRate{}, fmt.Errorf(
			"%w: %d payments of %.2f cannot repay %.2f even interest-free",
			domain.ErrInvalidPlan, periods, payment, purchase)
	}
	if math.Abs(f0) <= rateTolerance {
		return newSolvedRate(0, 0), nil
	}

	lo, hi := 0.0, maxPeriodicRate
	if residual := f(hi); residual > 0 {
		return domain.SolvedRate{}, &ConvergenceError{Best: hi, Residual: residual}
	}

	var mid float64
	for i := 1; i <= maxIterations; i++ {
		mid = (lo + hi) / 2
		residual := f(mid)
		if math.Abs(residual) <= rateTolerance || hi-lo <= rateTolerance {
			return newSolvedRate(mid, i), nil
		}
		if residual > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return domain.SolvedRate{}, &ConvergenceError{Best: mid, Residual: f(mid), Iterations: maxIterations}
}

func newSolvedRate(periodic float64, iterations int) domain.SolvedRate {
	return domain.SolvedRate{
		PeriodicRate:  periodic,
		AnnualPercent: periodic * 12 * 100,
		Iterations:    iterations,
	}
}
