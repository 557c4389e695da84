package commands

import (
	"github.com/de-tools/finance-atlas/pkg/models/domain"
	"github.com/de-tools/finance-atlas/pkg/services/rates"
	"github.com/spf13/cobra"
)

type SolveCmd struct {
	amount   float64
	payments int
	payment  float64
	fee      float64
}

func NewSolveCmd() *cobra.Command {
	sc := &SolveCmd{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the equivalent APR for a single plan",
		RunE:  sc.run,
	}

	cmd.Flags().Float64Var(&sc.amount, "amount", 0, "Purchase amount")
	cmd.Flags().IntVar(&sc.payments, "payments", 0, "Number of monthly payments")
	cmd.Flags().Float64Var(&sc.payment, "payment", 0, "Monthly payment, fee included")
	cmd.Flags().Float64Var(&sc.fee, "fee", 0, "Monthly fee portion of the payment")

	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("payments")
	_ = cmd.MarkFlagRequired("payment")

	return cmd
}

func (sc *SolveCmd) run(cmd *cobra.Command, _ []string) error {
	plan := domain.PaymentPlan{
		PurchaseAmount: sc.amount,
		NumPayments:    sc.payments,
		MonthlyPayment: sc.payment,
		MonthlyFee:     sc.fee,
	}
	if err := plan.Validate(); err != nil {
		return err
	}

	solved, err := rates.SolveEquivalentRate(plan.PurchaseAmount, plan.MonthlyPayment, plan.NumPayments)
	if err != nil {
		return err
	}

	cmd.Printf("Plan: %s\n", plan)
	cmd.Printf("Equivalent APR: %.2f%% (monthly rate %.6f, %d iterations)\n",
		solved.AnnualPercent, solved.PeriodicRate, solved.Iterations)

	if sc.fee > 0 {
		totalCost := plan.MonthlyPayment * float64(plan.NumPayments)
		cmd.Printf("Total cost: %.2f, of which %.2f above the purchase amount\n",
			totalCost, totalCost-plan.PurchaseAmount)
	}

	return nil
}
