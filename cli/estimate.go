package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"estate-listings/services"
)

func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Run the mortgage, rent and home value calculators",
	}
	cmd.AddCommand(newMortgageCmd(), newRentCmd(), newHomeValueCmd())
	return cmd
}

func dollars(f float64) string {
	return "$" + humanize.CommafWithDigits(f, 2)
}

func newMortgageCmd() *cobra.Command {
	in := services.DefaultMortgage

	cmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Monthly payment of a fixed-rate mortgage",
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := services.EstimateMortgage(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Loan amount     : %s\n", dollars(est.Principal))
			fmt.Fprintf(out, "Monthly payment : %s\n", dollars(est.MonthlyPayment))
			fmt.Fprintf(out, "Total paid      : %s\n", dollars(est.TotalPaid))
			fmt.Fprintf(out, "Total interest  : %s\n", dollars(est.TotalInterest))
			return nil
		},
	}

	cmd.Flags().Float64Var(&in.Price, "price", in.Price, "Home price")
	cmd.Flags().Float64Var(&in.DownPayment, "down", in.DownPayment, "Down payment")
	cmd.Flags().Float64Var(&in.RatePercent, "rate", in.RatePercent, "Annual interest rate in percent")
	cmd.Flags().IntVar(&in.Years, "years", in.Years, "Loan term in years")
	return cmd
}

func newRentCmd() *cobra.Command {
	var income float64

	cmd := &cobra.Command{
		Use:   "rent",
		Short: "Affordable rent for a monthly income",
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := services.EstimateRentAffordability(income)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Max monthly rent : %s\n", dollars(est.MaxRent))
			fmt.Fprintf(out, "Move-in cost     : %s\n", dollars(est.MoveInCost))
			return nil
		},
	}

	cmd.Flags().Float64Var(&income, "income", 0, "Monthly income")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}

func newHomeValueCmd() *cobra.Command {
	var sqft, bedrooms, bathrooms int

	cmd := &cobra.Command{
		Use:   "home-value",
		Short: "Estimated market value of a home",
		RunE: func(cmd *cobra.Command, args []string) error {
			est, err := services.EstimateHomeValue(sqft, bedrooms, bathrooms)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Estimated value : %s\n", dollars(est.Value))
			fmt.Fprintf(out, "Range           : %s - %s\n", dollars(est.Low), dollars(est.High))
			return nil
		},
	}

	cmd.Flags().IntVar(&sqft, "sqft", 0, "Living area in square feet")
	cmd.Flags().IntVar(&bedrooms, "bedrooms", 0, "Number of bedrooms")
	cmd.Flags().IntVar(&bathrooms, "bathrooms", 0, "Number of bathrooms")
	_ = cmd.MarkFlagRequired("sqft")
	return cmd
}
