// disk.go runs the FCFS/SCAN disk head scheduling simulator over flags, a
// YAML scenario, or the classic stdin wire format.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/oslab/internal/config"
	"github.com/example/oslab/internal/disksched"
	"github.com/example/oslab/internal/logging"
	"github.com/example/oslab/internal/scenario"
	"github.com/example/oslab/internal/ui"
)

func newDiskCommand(logLevel *string, colorMode *string) *cobra.Command {
	opts := config.NewDiskOptions()
	cmd := &cobra.Command{
		Use:   "disk",
		Short: "Simulate FCFS and SCAN disk head scheduling",
		Long: strings.TrimSpace(`
Services a queue of cylinder requests under first-come-first-served and
SCAN (elevator) policies, printing every head move and the cumulative
movement per policy.

Without --requests or --scenario the command reads the classic wire
format from stdin: the request count, that many cylinder numbers, and
the initial head position.`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDisk(cmd, opts, *logLevel, *colorMode)
		},
	}
	opts.AddFlags(cmd)
	return cmd
}

func runDisk(cmd *cobra.Command, opts *config.DiskOptions, logLevel, colorMode string) error {
	logger, err := logging.New(logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	if err := opts.Validate(); err != nil {
		return err
	}

	policy := opts.Policy
	var q *disksched.Queue
	switch {
	case opts.ScenarioPath != "":
		sc, err := scenario.Load(opts.ScenarioPath)
		if err != nil {
			return err
		}
		if sc.MaxRequests == 0 {
			sc.MaxRequests = opts.MaxRequests
		}
		if !cmd.Flags().Changed("policy") && !opts.Compare {
			policy = sc.Policy
		}
		q, err = sc.Queue()
		if err != nil {
			return err
		}
		logger.Debug("scenario loaded", zap.String("path", opts.ScenarioPath), zap.String("policy", policy))
	case opts.FromStdin:
		q, err = readWireQueue(cmd.InOrStdin(), opts.MaxRequests)
		if err != nil {
			return err
		}
	default:
		q, err = disksched.NewQueue(opts.Head, opts.Requests, opts.MaxRequests)
		if err != nil {
			return err
		}
	}
	logger.Debug("queue built", zap.Int("requests", q.Len()), zap.Int("head", q.Head()))

	console := ui.NewConsole(cmd.OutOrStdout(), colorMode)
	var fcfsRes, scanRes disksched.Result
	if policy == disksched.PolicyFCFS || policy == config.PolicyBoth {
		fcfsRes = disksched.FCFS(q)
		console.Result(fcfsRes)
	}
	if policy == disksched.PolicySCAN || policy == config.PolicyBoth {
		scanRes = disksched.SCAN(q)
		console.Result(scanRes)
	}
	if opts.Compare {
		if err := renderTraceDiff(console, fcfsRes, scanRes); err != nil {
			return err
		}
	}
	return nil
}

// readWireQueue parses the original simulator's stdin format: n, then n
// cylinder numbers, then the head position. The count is checked against the
// bound before any cylinder is read, as the original did.
func readWireQueue(r io.Reader, max int) (*disksched.Queue, error) {
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return nil, fmt.Errorf("read request count: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("negative request count %d", n)
	}
	if n > max {
		return nil, &disksched.CapacityError{Count: n, Max: max}
	}
	requests := make([]int, n)
	for i := range requests {
		if _, err := fmt.Fscan(r, &requests[i]); err != nil {
			return nil, fmt.Errorf("read cylinder %d of %d: %w", i+1, n, err)
		}
	}
	var head int
	if _, err := fmt.Fscan(r, &head); err != nil {
		return nil, fmt.Errorf("read head position: %w", err)
	}
	return disksched.NewQueue(head, requests, max)
}

func renderTraceDiff(console *ui.Console, fcfsRes, scanRes disksched.Result) error {
	diff := difflib.UnifiedDiff{
		A:        traceLines(fcfsRes),
		B:        traceLines(scanRes),
		FromFile: disksched.PolicyFCFS,
		ToFile:   disksched.PolicySCAN,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("diff traces: %w", err)
	}
	console.Rule()
	console.Printf("%s", text)
	return nil
}

func traceLines(res disksched.Result) []string {
	lines := make([]string, 0, len(res.Moves)+1)
	for _, m := range res.Moves {
		lines = append(lines, m.String()+"\n")
	}
	lines = append(lines, fmt.Sprintf("Total head movement: %d\n", res.Total))
	return lines
}
