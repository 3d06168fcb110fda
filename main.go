package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"flowfinance/config"
	httpLayer "flowfinance/http"
	"flowfinance/logging"
	"flowfinance/metrics"
	"flowfinance/repository"
	"flowfinance/service"
)

// app carries what the root command resolves before any subcommand runs.
type app struct {
	configPath string
	output     string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "flowfinance",
		Short:         "Financial calculator: cash-flow indicators, fund projections, notes and loans",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			if err := logging.Setup(cfg.Log, os.Stderr); err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", ".", "directory holding flowfinance.yaml")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: json, yaml or summary (default: summary on a terminal, json otherwise)")

	root.AddCommand(
		newServeCmd(a),
		newIndicatorsCmd(a),
		newSimulateCmd(a),
		newConvertCmd(a),
		newCostsCmd(a),
		newProjectCmd(a),
		newAvailableCmd(a),
		newNoteCmd(a),
		newLoanCmd(a),
		newInstallmentCmd(a),
	)
	return root
}

// buildServices wires the calculators over one history repository.
func buildServices(cfg *config.Config, cache repository.CacheRepository, m *metrics.Registry) httpLayer.Services {
	repo := repository.NewCalculationRepositoryMemory(cfg.History.Capacity)
	return httpLayer.Services{
		Loans:      service.NewLoanService(repo, m),
		Notes:      service.NewNoteService(repo, m, cfg.Note),
		Funds:      service.NewFundService(repo, m),
		Indicators: service.NewIndicatorService(repo, cache, m),
		History:    service.NewHistoryService(repo),
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("flowfinance failed")
		os.Exit(1)
	}
}
