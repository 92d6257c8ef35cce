// SPDX-License-Identifier: MIT

package machine

import (
	"context"
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/sync/errgroup"
)

var log = logging.Logger("machine")

// Summary aggregates the answers of a batch.
type Summary struct {
	Results    []Result // Results[i] belongs to machines[i]
	Total      int      // sum of Presses over solved machines
	Infeasible []int    // indices of infeasible machines, ascending
}

// SolveAll solves every machine on a bounded worker pool and sums the
// minimum press counts.
//
// Results are stored by machine index, so the Summary does not depend on
// completion order. The first error (a structurally invalid machine, a
// search over the free-variable cap, or ctx cancellation) stops the
// remaining work and is returned wrapped with the machine index. Infeasible
// machines are not errors; they are listed in Summary.Infeasible and left
// out of Total.
func SolveAll(ctx context.Context, machines []Machine, opts ...Option) (Summary, error) {
	o := gatherOptions(opts...)
	results := make([]Result, len(machines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range machines {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("machine %d: %w", i, err)
			}
			res, err := Solve(machines[i], o.search...)
			if err != nil {
				return fmt.Errorf("machine %d: %w", i, err)
			}
			results[i] = res
			log.Debugf("machine %d: %s, %d presses (rank %d, %d free)",
				i, res.Status, res.Presses, res.Rank, res.FreeVars)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	sum := Summary{Results: results}
	for i, res := range results {
		if !res.Solved() {
			log.Warnf("machine %d: target unreachable: %s", i, machines[i])
			sum.Infeasible = append(sum.Infeasible, i)
			continue
		}
		sum.Total += res.Presses
	}

	return sum, nil
}
