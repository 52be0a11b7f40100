// File: internal/scenario/scenario_test.go
// Brief: Internal scenario package implementation for 'scenario tests'.

package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseScenario(t *testing.T) {
	sc, err := Parse([]byte("head: 53\nrequests: [98, 183, 37, 122, 14, 124, 65, 67]\npolicy: scan\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sc.Head != 53 {
		t.Fatalf("head mismatch: %d", sc.Head)
	}
	if len(sc.Requests) != 8 || sc.Requests[0] != 98 {
		t.Fatalf("requests mismatch: %v", sc.Requests)
	}
	if sc.Policy != "scan" {
		t.Fatalf("policy mismatch: %q", sc.Policy)
	}
}

func TestParseDefaultsPolicyToBoth(t *testing.T) {
	sc, err := Parse([]byte("head: 10\nrequests: [1, 2]\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sc.Policy != "both" {
		t.Fatalf("expected default policy both, got %q", sc.Policy)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("head: 10\nrequests: [1]\ncylinders: [2]\n")); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	cases := []string{
		"head: 10\nrequests: []\n",
		"head: -1\nrequests: [1]\n",
		"head: 1\nrequests: [-4]\n",
		"head: 1\nrequests: [4]\npolicy: sstf\n",
	}
	for _, raw := range cases {
		if _, err := Parse([]byte(raw)); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestLoadAndQueue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lab.yaml")
	raw := "head: 53\nrequests: [98, 183]\nmax-requests: 4\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	sc, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	q, err := sc.Queue()
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if q.Head() != 53 || q.Len() != 2 {
		t.Fatalf("queue mismatch: head %d len %d", q.Head(), q.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
