// File: internal/scenario/scenario.go
// Brief: Internal scenario package implementation for 'disk scenario files'.

// Package scenario loads disk-scheduling workloads from YAML files so runs
// can be kept alongside course material instead of retyped on stdin.
package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/oslab/internal/disksched"
)

// Scenario is one disk-scheduling workload.
//
//	head: 53
//	requests: [98, 183, 37, 122, 14, 124, 65, 67]
//	policy: both
//	max-requests: 100
type Scenario struct {
	Head        int    `yaml:"head"`
	Requests    []int  `yaml:"requests"`
	Policy      string `yaml:"policy"`
	MaxRequests int    `yaml:"max-requests"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %q: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", path, err)
	}
	return sc, nil
}

// Parse decodes scenario YAML. Unknown keys are rejected so typos in course
// files fail loudly.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *Scenario) validate() error {
	if len(s.Requests) == 0 {
		return fmt.Errorf("scenario has no requests")
	}
	for _, r := range s.Requests {
		if r < 0 {
			return fmt.Errorf("negative cylinder %d", r)
		}
	}
	if s.Head < 0 {
		return fmt.Errorf("negative head position %d", s.Head)
	}
	switch strings.ToLower(strings.TrimSpace(s.Policy)) {
	case "":
		s.Policy = "both"
	case disksched.PolicyFCFS, disksched.PolicySCAN, "both":
		s.Policy = strings.ToLower(strings.TrimSpace(s.Policy))
	default:
		return fmt.Errorf("unknown policy %q (expected fcfs, scan, or both)", s.Policy)
	}
	if s.MaxRequests < 0 {
		return fmt.Errorf("negative max-requests %d", s.MaxRequests)
	}
	return nil
}

// Queue builds the immutable request queue for the scenario.
func (s *Scenario) Queue() (*disksched.Queue, error) {
	return disksched.NewQueue(s.Head, s.Requests, s.MaxRequests)
}
