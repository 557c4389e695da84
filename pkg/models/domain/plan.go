package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidPlan marks plans whose terms can never repay the purchase.
var ErrInvalidPlan = errors.New("invalid payment plan")

// PaymentPlan describes a fixed-fee installment offer: the purchase is repaid
// over NumPayments months, each payment carrying a constant MonthlyFee charge.
type PaymentPlan struct {
	PurchaseAmount float64 `json:"purchase_amount" mapstructure:"purchase_amount"`
	NumPayments    int     `json:"num_payments" mapstructure:"num_payments"`
	MonthlyPayment float64 `json:"monthly_payment" mapstructure:"monthly_payment"`
	MonthlyFee     float64 `json:"monthly_fee" mapstructure:"monthly_fee"`
}

func (p PaymentPlan) Validate() error {
	switch {
	case p.PurchaseAmount <= 0:
		return fmt.Errorf("%w: purchase amount must be positive, got %.2f", ErrInvalidPlan, p.PurchaseAmount)
	case p.NumPayments < 1:
		return fmt.Errorf("%w: number of payments must be at least 1, got %d", ErrInvalidPlan, p.NumPayments)
	case p.MonthlyPayment <= 0:
		return fmt.Errorf("%w: monthly payment must be positive, got %.2f", ErrInvalidPlan, p.MonthlyPayment)
	case p.MonthlyFee < 0:
		return fmt.Errorf("%w: monthly fee cannot be negative, got %.2f", ErrInvalidPlan, p.MonthlyFee)
	case p.MonthlyPayment <= p.MonthlyFee:
		return fmt.Errorf("%w: monthly payment %.2f never exceeds the monthly fee %.2f",
			ErrInvalidPlan, p.MonthlyPayment, p.MonthlyFee)
	}
	return nil
}

func (p PaymentPlan) String() string {
	return fmt.Sprintf("%.2f over %d x %.2f (fee %.2f)",
		p.PurchaseAmount, p.NumPayments, p.MonthlyPayment, p.MonthlyFee)
}

// InterestMode computes the financing charge a balance accrues in one period.
type InterestMode interface {
	Charge(balance float64) float64
}

// ProportionalInterest charges a fixed fraction of the outstanding balance,
// the way a regular amortized loan does.
type ProportionalInterest struct {
	MonthlyRate float64
}

func (m ProportionalInterest) Charge(balance float64) float64 {
	return balance * m.MonthlyRate
}

// FixedFee charges the same amount every period regardless of balance.
type FixedFee struct {
	Amount float64
}

func (m FixedFee) Charge(_ float64) float64 {
	return m.Amount
}

// AmortizationStep is one period of a repayment schedule. BalanceBefore is the
// debt entering the period; Charge is the financing cost; Principal is the part
// of the payment that reduced the debt.
type AmortizationStep struct {
	Period        int
	BalanceBefore float64
	Principal     float64
	Charge        float64
	BalanceAfter  float64
}

// SolvedRate is the interest rate under which a regular loan would produce the
// same payment stream as a fee-based plan. AnnualPercent is the nominal
// annualization of the periodic rate (periodic x 12 x 100).
type SolvedRate struct {
	PeriodicRate  float64 `json:"periodic_rate"`
	AnnualPercent float64 `json:"annual_percent"`
	Iterations    int     `json:"iterations"`
}
