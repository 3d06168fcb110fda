package main

import (
	"github.com/spf13/cobra"

	"flowfinance/domain"
	httpLayer "flowfinance/http"
	"flowfinance/repository"
)

// calc runs one calculation against freshly wired services and prints its result.
func calc[T any](cmd *cobra.Command, a *app, fn func(svc httpLayer.Services) (T, error)) error {
	format, err := resolveFormat(a.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	result, err := fn(buildServices(a.cfg, repository.NewMockCache(), nil))
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), format, result)
}

func newIndicatorsCmd(a *app) *cobra.Command {
	var (
		flows []string
		rate  float64
	)
	cmd := &cobra.Command{
		Use:     "indicators",
		Short:   "NPV, IRR, B/C ratio and payback of day-based cash flows",
		Example: "flowfinance indicators --rate 10 --flow 0:-1000 --flow 365:1200",
		RunE: func(cmd *cobra.Command, args []string) error {
			cashFlows, err := parseDayFlows(flows)
			if err != nil {
				return err
			}
			return calc(cmd, a, func(svc httpLayer.Services) (domain.IndicatorResult, error) {
				return svc.Indicators.ComputeIndicators(cmd.Context(), domain.IndicatorInput{CashFlows: cashFlows, DiscountRate: rate})
			})
		},
	}
	cmd.Flags().StringArrayVar(&flows, "flow", nil, "cash flow as day:amount, repeatable")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual discount rate in percent")
	return cmd
}

func newSimulateCmd(a *app) *cobra.Command {
	var (
		flows []string
		rate  float64
	)
	cmd := &cobra.Command{
		Use:     "simulate",
		Short:   "NPV, IRR, B/C ratio and discounted payback of period cash flows",
		Example: "flowfinance simulate --rate 10 --flow -1000 --flow 600 --flow 600",
		RunE: func(cmd *cobra.Command, args []string) error {
			cashFlows, err := parsePeriodFlows(flows)
			if err != nil {
				return err
			}
			return calc(cmd, a, func(svc httpLayer.Services) (domain.IndicatorResult, error) {
				return svc.Indicators.Simulate(cmd.Context(), domain.SimulationInput{CashFlows: cashFlows, DiscountRate: rate})
			})
		},
	}
	cmd.Flags().StringArrayVar(&flows, "flow", nil, "cash flow as amount or period:amount, repeatable")
	cmd.Flags().Float64Var(&rate, "rate", 0, "discount rate per period in percent")
	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	var input domain.ConversionInput
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Compound an amount for a number of days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return calc(cmd, a, func(svc httpLayer.Services) (domain.AmountResult, error) {
				return svc.Funds.Convert(input)
			})
		},
	}
	cmd.Flags().Float64Var(&input.Amount, "amount", 0, "amount to convert")
	cmd.Flags().Float64Var(&input.InterestRate, "rate", 0, "annual rate in percent")
	cmd.Flags().Float64Var(&input.Days, "days", 0, "days to compound")
	return cmd
}

func newCostsCmd(a *app) *cobra.Command {
	var input domain.CostsInput
	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Add direct and indirect costs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return calc(cmd, a, func(svc httpLayer.Services) (domain.AmountResult, error) {
				return svc.Funds.TotalCosts(input)
			})
		},
	}
	cmd.Flags().Float64Var(&input.DirectCosts, "direct", 0, "direct costs")
	cmd.Flags().Float64Var(&input.IndirectCosts, "indirect", 0, "indirect costs")
	return cmd
}

func newProjectCmd(a *app) *cobra.Command {
	var (
		input domain.ProjectionInput
		txs   []string
	)
	cmd := &cobra.Command{
		Use:     "project",
		Short:   "Project a fund through a sequence of transactions",
		Example: "flowfinance project --initial 1000 --rate 8 --tx 30:500 --tx 60:-200 --final-days 90",
		RunE: func(cmd *cobra.Command, args []string) error {
			transactions, err := parseTransactions(txs)
			if err != nil {
				return err
			}
			input.Transactions = transactions
			return calc(cmd, a, func(svc httpLayer.Services) (domain.AmountResult, error) {
				return svc.Funds.Project(input)
			})
		},
	}
	cmd.Flags().Float64Var(&input.InitialAmount, "initial", 0, "initial amount")
	cmd.Flags().Float64Var(&input.InterestRate, "rate", 0, "annual rate in percent")
	cmd.Flags().Float64Var(&input.FinalDays, "final-days", 0, "days compounded after the last transaction")
	cmd.Flags().StringArrayVar(&txs, "tx", nil, "transaction as days:amount, repeatable, applied in order")
	return cmd
}

func newAvailableCmd(a *app) *cobra.Command {
	var (
		input domain.AvailableAmountInput
		flows []string
	)
	cmd := &cobra.Command{
		Use:     "available",
		Short:   "Capital available on a closing day",
		Example: "flowfinance available --capital 5000 --rate 6 --closing-day 90 --flow 30:1000 --flow 120:300",
		RunE: func(cmd *cobra.Command, args []string) error {
			cashFlows, err := parseDayFlows(flows)
			if err != nil {
				return err
			}
			input.CashFlows = cashFlows
			return calc(cmd, a, func(svc httpLayer.Services) (domain.AmountResult, error) {
				return svc.Funds.AvailableAmount(input)
			})
		},
	}
	cmd.Flags().Float64Var(&input.InitialCapital, "capital", 0, "initial capital")
	cmd.Flags().Float64Var(&input.InterestRate, "rate", 0, "annual rate in percent")
	cmd.Flags().Float64Var(&input.ClosingDay, "closing-day", 0, "closing day")
	cmd.Flags().StringArrayVar(&flows, "flow", nil, "cash flow as day:amount, repeatable")
	return cmd
}

func newNoteCmd(a *app) *cobra.Command {
	var input domain.NoteInput
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Discount a promissory note and compute its TCEA",
		RunE: func(cmd *cobra.Command, args []string) error {
			return calc(cmd, a, func(svc httpLayer.Services) (domain.NoteResult, error) {
				return svc.Notes.EvaluateNote(input)
			})
		},
	}
	cmd.Flags().Float64Var(&input.NominalValue, "nominal", 0, "nominal value of the note")
	cmd.Flags().Float64Var(&input.NominalRate, "rate", 0, "nominal annual rate (TNA) in percent")
	cmd.Flags().Float64Var(&input.Days, "days", 0, "days to maturity")
	cmd.Flags().Float64Var(&input.DelayDays, "delay-days", 0, "days paid late")
	return cmd
}

func newLoanCmd(a *app) *cobra.Command {
	var input domain.LoanInput
	cmd := &cobra.Command{
		Use:     "loan",
		Short:   "Loan amount, monthly payment and prepayment",
		Example: "flowfinance loan --savings 2000 --expense 10000 --expense 2000 --rate 12 --years 2 --remaining 12",
		RunE: func(cmd *cobra.Command, args []string) error {
			return calc(cmd, a, func(svc httpLayer.Services) (domain.LoanResult, error) {
				return svc.Loans.CalculateLoan(input)
			})
		},
	}
	cmd.Flags().Float64Var(&input.Savings, "savings", 0, "savings already available")
	cmd.Flags().Float64SliceVar(&input.Expenses, "expense", nil, "expense to cover, repeatable")
	cmd.Flags().Float64Var(&input.NominalRate, "rate", 0, "nominal annual rate in percent")
	cmd.Flags().Float64Var(&input.LoanTermYears, "years", 0, "loan term in years")
	cmd.Flags().IntVar(&input.RemainingPayments, "remaining", 0, "payments left when prepaying")
	return cmd
}

func newInstallmentCmd(a *app) *cobra.Command {
	var input domain.InstallmentInput
	cmd := &cobra.Command{
		Use:   "installment",
		Short: "Level installment for a payment frequency",
		RunE: func(cmd *cobra.Command, args []string) error {
			return calc(cmd, a, func(svc httpLayer.Services) (domain.InstallmentResult, error) {
				return svc.Loans.CalculateInstallment(input)
			})
		},
	}
	cmd.Flags().Float64Var(&input.Principal, "principal", 0, "amount borrowed")
	cmd.Flags().Float64Var(&input.InterestRate, "rate", 0, "annual rate in percent")
	cmd.Flags().Float64Var(&input.Years, "years", 0, "term in years")
	cmd.Flags().IntVar(&input.Frequency, "frequency", 12, "payments per year")
	return cmd
}
