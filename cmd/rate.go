package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rmorar/banksim/internal/exchange"
	"github.com/rmorar/banksim/internal/scenario"
	"github.com/rmorar/banksim/internal/utils"
)

// Command-line flags
var (
	rateFrom   string
	rateTo     string
	rateAmount string
)

func NewRateCmd() *cobra.Command {
	rateCmd := &cobra.Command{
		Use:   "rate <scenario.json>",
		Short: "Query a multi-hop exchange rate from a scenario's rate table.",
		Long: `Rate loads the exchangeRates section of a scenario file and answers a
conversion query over it, chaining rates across intermediate currencies when
no direct rate exists.

Example: banksim rate scenario.json --from USD --to RON --amount 100`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runRate,
	}

	rateCmd.Flags().StringVar(&rateFrom, "from", "", "source currency code")
	rateCmd.Flags().StringVar(&rateTo, "to", "", "target currency code")
	rateCmd.Flags().StringVar(&rateAmount, "amount", "1", "amount to convert")
	rateCmd.MarkFlagRequired("from")
	rateCmd.MarkFlagRequired("to")

	return rateCmd
}

func runRate(cmd *cobra.Command, args []string) error {
	amount, err := utils.ParseAmount(rateAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", rateAmount, err)
	}

	s, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	edges := make([]exchange.Edge, 0, len(s.ExchangeRates))
	for _, r := range s.ExchangeRates {
		edges = append(edges, exchange.Edge{From: r.From, To: r.To, Rate: r.Rate})
	}

	rate, ok := exchange.NewGraph(edges).Rate(rateFrom, rateTo)
	if !ok {
		return fmt.Errorf("no exchange path from %s to %s", rateFrom, rateTo)
	}

	pterm.Success.Printf("%s = %s (rate %v)\n",
		utils.FormatWithCurrency(amount, rateFrom),
		utils.FormatWithCurrency(amount*rate, rateTo),
		rate)

	return nil
}
