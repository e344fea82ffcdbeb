package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/roadjump/internal/config"
)

// execute runs the root command with fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagSeed, flagConfig, flagDifficulty, flagLength = 0, "", "", 0
	flagLogLevel, flagLogFile = "info", ""
	flagCheck, flagRuns, flagPolicy, flagVerbose = "", 0, "", false
	flagDefaults = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoadCommandIsReproducible(t *testing.T) {
	first, err := execute(t, "road", "--length", "30", "--seed", "42")
	if err != nil {
		t.Fatalf("road failed: %v", err)
	}
	second, err := execute(t, "road", "--length", "30", "--seed", "42")
	if err != nil {
		t.Fatalf("road failed: %v", err)
	}
	if first != second {
		t.Errorf("same seed printed different roads:\n%s\n%s", first, second)
	}

	line := strings.SplitN(first, "\n", 2)[0]
	if len(line) != 30 || line[0] != '#' {
		t.Errorf("unexpected road line %q", line)
	}
}

func TestRoadCheck(t *testing.T) {
	out, err := execute(t, "road", "--check", "#_##_#")
	if err != nil {
		t.Fatalf("road --check failed: %v", err)
	}
	if !strings.Contains(out, "ok: 6 tiles") {
		t.Errorf("output = %q", out)
	}

	if _, err := execute(t, "road", "--check", "#__#"); err == nil {
		t.Error("road --check should reject a double gap")
	}
}

func TestSimCommand(t *testing.T) {
	out, err := execute(t, "sim", "--runs", "5", "--policy", "cautious", "--seed", "3", "--log-level", "error")
	if err != nil {
		t.Fatalf("sim failed: %v", err)
	}
	if !strings.Contains(out, "Crossed: 5") {
		t.Errorf("cautious bot should cross every run:\n%s", out)
	}
}

func TestRejectsBadFlags(t *testing.T) {
	if _, err := execute(t, "road", "--difficulty", "impossible"); err == nil {
		t.Error("unknown difficulty should fail")
	}
	if _, err := execute(t, "sim", "--policy", "reckless", "--seed", "1"); err == nil {
		t.Error("unknown policy should fail")
	}
	if _, err := execute(t, "sim", "--log-level", "loud", "--seed", "1"); err == nil {
		t.Error("unknown log level should fail")
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	if err != nil {
		t.Fatalf("config --defaults failed: %v", err)
	}
	if out != string(config.DefaultYAML()) {
		t.Errorf("config --defaults printed %q", out)
	}

	out, err = execute(t, "config", "--difficulty", "hard", "--length", "12")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	for _, want := range []string{"length: 12", "jump_ticks: 4", "enable_delay: 100ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}
