package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_BoundaryConsistency(t *testing.T) {
	d := Default()

	if d.Classification.FallbackConfidence <= 0 {
		t.Errorf("FallbackConfidence = %v, must be > 0", d.Classification.FallbackConfidence)
	}
	if d.Complexity.LowCeiling > d.Complexity.HighFloor {
		t.Errorf("LowCeiling %v > HighFloor %v: medium band would be negative",
			d.Complexity.LowCeiling, d.Complexity.HighFloor)
	}
	if d.Assignment.BalanceTopN < 2 {
		t.Errorf("BalanceTopN = %d, load balancing needs at least 2 candidates", d.Assignment.BalanceTopN)
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
complexity:
  raise_weight: 2.0
  high_floor: 3.5
assignment:
  balance_top_n: 3
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	tun, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}

	if tun.Complexity.RaiseWeight != 2.0 {
		t.Errorf("RaiseWeight = %v, want 2.0 (overridden)", tun.Complexity.RaiseWeight)
	}
	if tun.Complexity.HighFloor != 3.5 {
		t.Errorf("HighFloor = %v, want 3.5 (overridden)", tun.Complexity.HighFloor)
	}
	if tun.Assignment.BalanceTopN != 3 {
		t.Errorf("BalanceTopN = %v, want 3 (overridden)", tun.Assignment.BalanceTopN)
	}

	// Untouched keys keep defaults.
	if tun.Complexity.LowCeiling != Default().Complexity.LowCeiling {
		t.Errorf("LowCeiling = %v, want default %v", tun.Complexity.LowCeiling, Default().Complexity.LowCeiling)
	}
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFromPath() with missing file: expected error, got nil")
	}
}
