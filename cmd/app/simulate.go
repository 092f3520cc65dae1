package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/osse101/FruitClicker_Go/internal/bootstrap"
	"github.com/osse101/FruitClicker_Go/internal/domain"
)

// simulateOptions holds flags for the simulate command
type simulateOptions struct {
	Players int
	Clicks  int
	Sell    bool
}

// simulationReport summarizes a simulated session
type simulationReport struct {
	Players        int `json:"players"`
	Clicks         int `json:"clicks"`
	ItemsMinted    int `json:"items_minted"`
	ItemsSold      int `json:"items_sold"`
	CoinsMinted    int `json:"coins_minted"`
	CoinsFromSales int `json:"coins_from_sales"`
	TotalBalance   int `json:"total_balance"`
	Failures       int `json:"failures"`
}

func newSimulateCommand(root *rootOptions) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Register players and click concurrently against the ledger",
		Long: `Registers fresh players, runs their clicks in parallel and optionally sells
everything they collected. Prints a JSON report whose total balance must equal
the coins minted by clicks plus the coins paid for sales.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.openApplication(cmd.Context())
			if err != nil {
				return err
			}
			defer bootstrap.GracefulShutdown(cmd.Context(), nil, app)

			report, err := runSimulation(cmd.Context(), app, opts)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	cmd.Flags().IntVar(&opts.Players, "players", 4, "number of players to register")
	cmd.Flags().IntVar(&opts.Clicks, "clicks", 100, "clicks per player")
	cmd.Flags().BoolVar(&opts.Sell, "sell", true, "sell every collected item afterwards")

	return cmd
}

func runSimulation(ctx context.Context, app *bootstrap.Application, opts *simulateOptions) (*simulationReport, error) {
	if opts.Players <= 0 || opts.Clicks < 0 {
		return nil, fmt.Errorf("players must be positive and clicks non-negative")
	}

	run := uuid.NewString()[:8]
	ids := make([]string, 0, opts.Players)
	for i := 0; i < opts.Players; i++ {
		p, err := app.Players.RegisterPlayer(ctx, fmt.Sprintf("sim_%s_%d", run, i))
		if err != nil {
			return nil, fmt.Errorf("failed to register player %d: %w", i, err)
		}
		ids = append(ids, p.ID)
	}

	report := &simulationReport{Players: opts.Players}
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, id := range ids {
		wg.Add(1)
		go func(playerID string) {
			defer wg.Done()
			minted, coins, failed := 0, 0, 0
			for c := 0; c < opts.Clicks; c++ {
				res, err := app.Economy.Collect(ctx, playerID)
				if err != nil {
					failed++
					continue
				}
				minted++
				coins += res.Coins
			}

			sold, earned := 0, 0
			if opts.Sell {
				var err error
				sold, earned, err = sellAll(ctx, app, playerID)
				if err != nil {
					failed++
				}
			}

			mu.Lock()
			report.Clicks += opts.Clicks
			report.ItemsMinted += minted
			report.CoinsMinted += coins
			report.ItemsSold += sold
			report.CoinsFromSales += earned
			report.Failures += failed
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	for _, id := range ids {
		app.Players.Invalidate(id)
		p, err := app.Players.GetPlayer(ctx, id)
		if err != nil {
			return nil, err
		}
		report.TotalBalance += p.Balance
	}
	return report, nil
}

func sellAll(ctx context.Context, app *bootstrap.Application, playerID string) (int, int, error) {
	holdings, err := app.Economy.ListInventory(ctx, playerID)
	if err != nil {
		return 0, 0, err
	}
	sold, earned := 0, 0
	for _, h := range holdings {
		qty := min(h.Quantity, domain.MaxTransactionQuantity)
		res, err := app.Economy.SellItem(ctx, playerID, h.ItemID, qty)
		if err != nil {
			return sold, earned, err
		}
		sold += res.Quantity
		earned += res.CoinsEarned
	}
	return sold, earned, nil
}
