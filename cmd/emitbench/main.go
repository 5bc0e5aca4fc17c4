package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	maxSlotsKey   = "max-slots"
	expiredKey    = "expired"
	iterationsKey = "iterations"
	verboseKey    = "verbose"
)

func main() {
	cmd := &cli.Command{
		Name:  "emitbench",
		Usage: "Measure Signal emission latency across slot counts",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  maxSlotsKey,
				Usage: "Largest number of connected slots",
				Value: 10_000,
			},
			&cli.FloatFlag{
				Name:  expiredKey,
				Usage: "Share of slots whose tracked lifetime has ended",
				Value: 0.5,
			},
			&cli.IntFlag{
				Name:  iterationsKey,
				Usage: "Emissions measured per slot count",
				Value: 1_000,
			},
			&cli.BoolFlag{
				Name:  verboseKey,
				Usage: "Log connections and skipped slots",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	level := slog.LevelInfo
	if cmd.Bool(verboseKey) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := benchConfig{
		maxSlots:     int(cmd.Int(maxSlotsKey)),
		expiredRatio: cmd.Float(expiredKey),
		iterations:   int(cmd.Int(iterationsKey)),
	}
	return bench(ctx, cfg, logger, os.Stdout)
}

func bench(ctx context.Context, cfg benchConfig, logger *slog.Logger, out io.Writer) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetTitle("Signal emission")
	tbl.SetOutputMirror(out)
	tbl.AppendHeader(table.Row{"slots", "expired", "avg", "min", "p75", "p99", "max", "rate"})

	for _, n := range slotCounts(cfg.maxSlots) {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Info("measuring", slog.Int("slots", n), slog.Int("iterations", cfg.iterations))
		f := newFixture(n, cfg.expiredRatio, logger)
		calc, err := f.measure(cfg.iterations)
		if err != nil {
			return err
		}
		tbl.AppendRow(table.Row{
			humanize.Comma(int64(n)),
			humanize.Comma(int64(f.expired)),
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
			fmt.Sprintf("%s/s", humanize.Comma(int64(calc.Rate.Second))),
		})
	}

	tbl.Render()
	return nil
}
