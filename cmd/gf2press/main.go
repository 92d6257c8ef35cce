// SPDX-License-Identifier: MIT

// Command gf2press reads machine descriptions and prints the fewest button
// presses needed to configure all of them.
//
// Exit status is 0 on success, 1 when some machine cannot reach its target
// (the total of the others is still printed), 2 on unreadable or invalid
// input and 130 when interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/multierr"

	"github.com/katalvlaran/gf2press/gf2"
	"github.com/katalvlaran/gf2press/machine"
)

var log = logging.Logger("gf2press")

const (
	exitOK         = 0
	exitInfeasible = 1
	exitBadInput   = 2
	exitCanceled   = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout)
	stop()
	os.Exit(code)
}

// run executes the command with the given arguments and returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("gf2press", flag.ContinueOnError)
	var (
		input    = fs.String("input", "input.txt", "Path to the machine list (- for stdin)")
		workers  = fs.Int("workers", runtime.GOMAXPROCS(0), "Number of machines solved concurrently")
		maxFree  = fs.Int("max-free", gf2.DefaultMaxFreeVars, "Largest free-variable count to enumerate per machine")
		logLevel = fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	if err := fs.Parse(args); err != nil {
		return exitBadInput
	}

	// Set log level for all subsystems
	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		logging.SetAllLoggers(logging.LevelInfo)
		log.Errorf("invalid -log-level %q: %v", *logLevel, err)
		return exitBadInput
	}
	logging.SetAllLoggers(level)

	if *workers < 1 {
		log.Errorf("-workers must be >= 1, got %d", *workers)
		return exitBadInput
	}
	if *maxFree < 0 || *maxFree > gf2.MaxFreeVarsLimit {
		log.Errorf("-max-free must be in [0, %d], got %d", gf2.MaxFreeVarsLimit, *maxFree)
		return exitBadInput
	}

	machines, err := readMachines(*input, stdin)
	if err != nil {
		for _, e := range multierr.Errors(err) {
			log.Error(e)
		}
		return exitBadInput
	}
	log.Infof("loaded %d machines from %s", len(machines), *input)

	sum, err := machine.SolveAll(ctx, machines,
		machine.WithWorkers(*workers),
		machine.WithSearchOptions(gf2.WithMaxFreeVars(*maxFree)),
	)
	if err != nil {
		log.Errorf("solve: %v", err)
		if errors.Is(err, context.Canceled) {
			return exitCanceled
		}
		return exitBadInput
	}

	fmt.Fprintln(stdout, sum.Total)
	if len(sum.Infeasible) > 0 {
		log.Warnf("%d of %d machines cannot reach their target: %v",
			len(sum.Infeasible), len(machines), sum.Infeasible)
		return exitInfeasible
	}

	return exitOK
}

// readMachines parses path, or stdin when path is "-".
func readMachines(path string, stdin io.Reader) ([]machine.Machine, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	return machine.Parse(r)
}
