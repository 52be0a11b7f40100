// disk_test.go exercises the disk command end to end: wire-format stdin,
// flag-supplied queues, scenario files, and the trace diff.
package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/oslab/internal/disksched"
)

func runDiskCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	logLevel := "error"
	colorMode := "never"
	cmd := newDiskCommand(&logLevel, &colorMode)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDiskWireFormatBothPolicies(t *testing.T) {
	out, err := runDiskCmd(t, "8 98 183 37 122 14 124 65 67 53")
	if err != nil {
		t.Fatalf("disk run failed: %v", err)
	}
	for _, want := range []string{
		"FCFS schedule:",
		"Move from 53 to 98",
		"Total head movement: 640",
		"SCAN schedule:",
		"Move from 53 to 65",
		"Move from 183 to 183",
		"Total head movement: 299",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDiskFlagsSinglePolicy(t *testing.T) {
	out, err := runDiskCmd(t, "", "--head", "53", "--requests", "98,183,37,122,14,124,65,67", "--policy", "fcfs")
	if err != nil {
		t.Fatalf("disk run failed: %v", err)
	}
	if !strings.Contains(out, "Total head movement: 640") {
		t.Fatalf("FCFS total missing:\n%s", out)
	}
	if strings.Contains(out, "SCAN schedule:") {
		t.Fatalf("fcfs-only run printed SCAN:\n%s", out)
	}
}

func TestDiskWireFormatRejectsOversizedCount(t *testing.T) {
	_, err := runDiskCmd(t, "101 1 2")
	if err == nil {
		t.Fatalf("expected capacity error for count above the bound")
	}
	var capErr *disksched.CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected *CapacityError, got %v", err)
	}
}

func TestDiskWireFormatTruncatedInput(t *testing.T) {
	if _, err := runDiskCmd(t, "3 10 20"); err == nil {
		t.Fatalf("expected error for truncated wire input")
	}
}

func TestDiskScenarioFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lab.yaml")
	raw := "head: 53\nrequests: [98, 183, 37, 122, 14, 124, 65, 67]\npolicy: scan\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	out, err := runDiskCmd(t, "", "--scenario", path)
	if err != nil {
		t.Fatalf("disk run failed: %v", err)
	}
	if strings.Contains(out, "FCFS schedule:") {
		t.Fatalf("scenario policy scan should skip FCFS:\n%s", out)
	}
	if !strings.Contains(out, "Total head movement: 299") {
		t.Fatalf("SCAN total missing:\n%s", out)
	}
}

func TestDiskCompareRendersUnifiedDiff(t *testing.T) {
	out, err := runDiskCmd(t, "", "--head", "53", "--requests", "98,183,37", "--compare")
	if err != nil {
		t.Fatalf("disk run failed: %v", err)
	}
	if !strings.Contains(out, "--- fcfs") || !strings.Contains(out, "+++ scan") {
		t.Fatalf("unified diff header missing:\n%s", out)
	}
	if !strings.Contains(out, "FCFS schedule:") || !strings.Contains(out, "SCAN schedule:") {
		t.Fatalf("compare should still print both traces:\n%s", out)
	}
}

func TestDiskRejectsScenarioPlusRequests(t *testing.T) {
	if _, err := runDiskCmd(t, "", "--scenario", "x.yaml", "--requests", "1,2"); err == nil {
		t.Fatalf("expected validation error")
	}
}
