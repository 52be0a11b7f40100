// File: internal/config/config.go
// Brief: Internal config package implementation for 'config'.

// Package config defines the flag plumbing and runtime options for the disk
// scheduling simulator, translating Cobra/pflag values into a strongly typed
// struct the disk command consumes.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/example/oslab/internal/disksched"
)

// DiskOptions holds all CLI configuration used by the disk simulator.
type DiskOptions struct {
	Policy       string
	Head         int
	Requests     []int
	MaxRequests  int
	ScenarioPath string
	Compare      bool

	// FromStdin is derived by Validate: no request flags and no scenario
	// file means the classic stdin wire format (n, cylinders, head).
	FromStdin bool
}

// PolicyBoth runs FCFS and SCAN over the same queue.
const PolicyBoth = "both"

// NewDiskOptions returns DiskOptions with defaults applied.
func NewDiskOptions() *DiskOptions {
	return &DiskOptions{
		Policy:      PolicyBoth,
		MaxRequests: disksched.DefaultMaxRequests,
	}
}

// AddFlags binds simulator flags to the provided Cobra command.
func (o *DiskOptions) AddFlags(cmd *cobra.Command) {
	o.BindFlags(cmd.Flags())
}

// BindFlags attaches simulator flags to an arbitrary FlagSet and returns the
// flag names for further customization.
func (o *DiskOptions) BindFlags(fs *pflag.FlagSet) []string {
	var names []string
	fs.StringVarP(&o.Policy, "policy", "p", o.Policy, "Scheduling policy to run (fcfs, scan, or both)")
	names = append(names, "policy")
	fs.IntVar(&o.Head, "head", 0, "Initial head position (used with --requests)")
	names = append(names, "head")
	fs.IntSliceVarP(&o.Requests, "requests", "r", nil, "Cylinder requests in arrival order (repeat or comma-separate); omit to read the classic stdin format")
	names = append(names, "requests")
	fs.IntVar(&o.MaxRequests, "max-requests", o.MaxRequests, "Upper bound on the request queue length")
	names = append(names, "max-requests")
	fs.StringVarP(&o.ScenarioPath, "scenario", "s", "", "YAML scenario file supplying head, requests, and policy")
	names = append(names, "scenario")
	fs.BoolVar(&o.Compare, "compare", false, "Render a unified diff of the FCFS and SCAN traces (implies --policy both)")
	names = append(names, "compare")
	return names
}

// Validate ensures the provided options are coherent.
func (o *DiskOptions) Validate() error {
	o.Policy = strings.ToLower(strings.TrimSpace(o.Policy))
	switch o.Policy {
	case disksched.PolicyFCFS, disksched.PolicySCAN, PolicyBoth:
	case "":
		o.Policy = PolicyBoth
	default:
		return fmt.Errorf("invalid --policy value %q (allowed: fcfs, scan, both)", o.Policy)
	}
	if o.Compare {
		o.Policy = PolicyBoth
	}
	if o.MaxRequests <= 0 {
		return fmt.Errorf("--max-requests must be positive, got %d", o.MaxRequests)
	}
	if o.ScenarioPath != "" && len(o.Requests) > 0 {
		return fmt.Errorf("cannot combine --scenario with explicit --requests")
	}
	for _, r := range o.Requests {
		if r < 0 {
			return fmt.Errorf("negative cylinder %d in --requests", r)
		}
	}
	if len(o.Requests) > 0 && o.Head < 0 {
		return fmt.Errorf("--head cannot be negative")
	}
	o.FromStdin = o.ScenarioPath == "" && len(o.Requests) == 0
	return nil
}
