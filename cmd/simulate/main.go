// Command simulate plays many rounds against a catalog and prints win and
// tie rates, for checking how balanced a character set is.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/catalog"
	"github.com/xtding233/chip-duel/internal/config"
	"github.com/xtding233/chip-duel/internal/pool"
	"github.com/xtding233/chip-duel/internal/sim"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		config.Exitf("Error: %v", err)
	}
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	rounds := 10000
	if flag.NArg() > 0 {
		if _, err := fmt.Sscan(flag.Arg(0), &rounds); err != nil {
			config.Exitf("Error: rounds must be a number: %v", err)
		}
	}
	if err := run(cfg, rounds, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func run(cfg config.Config, rounds int, out io.Writer) error {
	logger := cfg.NewLogger(os.Stderr)
	provider := catalog.NewFileProvider(catalog.NewLoader(cfg.CatalogDir), cfg.CatalogSet, logger)
	records, err := provider.LoadCatalog()
	if err != nil {
		return err
	}
	rng := pool.DefaultRNG()
	if cfg.Seed != 0 {
		rng = pool.NewSeededRNG(cfg.Seed)
	}
	rep, err := sim.Run(records, rounds, rng)
	if err != nil {
		return err
	}
	writeReport(out, rep)
	return nil
}

func writeReport(out io.Writer, rep sim.Report) {
	fmt.Fprintf(out, "rounds: %d\n", rep.Rounds)
	fmt.Fprintf(out, "player 1 wins: %.2f%%\n", 100*rep.WinRate(board.Player1))
	fmt.Fprintf(out, "player 2 wins: %.2f%%\n", 100*rep.WinRate(board.Player2))
	fmt.Fprintf(out, "ties: %.2f%%\n", 100*rep.TieRate())
	fmt.Fprintf(out, "points p1: mean %.2f sd %.2f p90 %.0f\n", rep.P1Points.Mean, rep.P1Points.StdDev, rep.P1Points.P90)
	fmt.Fprintf(out, "points p2: mean %.2f sd %.2f p90 %.0f\n", rep.P2Points.Mean, rep.P2Points.StdDev, rep.P2Points.P90)
	fmt.Fprintf(out, "tied slots per round: mean %.2f\n", rep.TiedSlots.Mean)
	fmt.Fprintf(out, "pool resets: %d\n", rep.Exhaustions)

	names := make([]string, 0, len(rep.Appearances))
	for n := range rep.Appearances {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool {
		if rep.Appearances[names[i]] != rep.Appearances[names[j]] {
			return rep.Appearances[names[i]] > rep.Appearances[names[j]]
		}
		return names[i] < names[j]
	})
	for _, n := range names {
		fmt.Fprintf(out, "  %-24s %d\n", n, rep.Appearances[n])
	}
}
