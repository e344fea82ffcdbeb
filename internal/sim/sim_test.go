package sim

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/roadjump/internal/config"
	"github.com/vovakirdan/roadjump/internal/road"
	"github.com/vovakirdan/roadjump/internal/run"
)

func TestCautiousAlwaysCrosses(t *testing.T) {
	cfg := config.Default()
	cfg.Road.Length = 20

	report, err := Run(cfg, 42, 50, CautiousPolicy{}, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if report.Crossed != 50 || report.Fell != 0 {
		t.Errorf("Crossed=%d Fell=%d, expected 50/0", report.Crossed, report.Fell)
	}
	for i, res := range report.Results {
		if res.Steps != cfg.Road.Length {
			t.Errorf("run %d: steps = %d, expected %d", i, res.Steps, cfg.Road.Length)
		}
		if res.Landing < cfg.Road.Length {
			t.Errorf("run %d: landing %d should be past the road", i, res.Landing)
		}
	}
	if report.BestSteps != cfg.Road.Length {
		t.Errorf("BestSteps = %d, expected %d", report.BestSteps, cfg.Road.Length)
	}
}

func TestRunDeterminism(t *testing.T) {
	cfg := config.Default()

	a, err := Run(cfg, 7, 30, NewRandomPolicy(7), nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	b, err := Run(cfg, 7, 30, NewRandomPolicy(7), nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("Determinism failed: reports differ for the same seed")
	}
	if a.Fell+a.Crossed != 30 {
		t.Errorf("Fell+Crossed = %d, expected 30", a.Fell+a.Crossed)
	}
}

// crossRate plays one run per seed on a three-tile road and returns the
// fraction of runs that crossed.
func crossRate(t *testing.T, seeds int, policyFor func(seed int64) Policy) float64 {
	t.Helper()
	cfg := config.Default()
	cfg.Road.Length = 3

	crossed := 0
	for seed := int64(1); seed <= int64(seeds); seed++ {
		report, err := Run(cfg, seed, 1, policyFor(seed), nil)
		if err != nil {
			t.Fatalf("Run(seed %d) failed: %v", seed, err)
		}
		crossed += report.Crossed
	}
	return float64(crossed) / float64(seeds)
}

func TestRandomPolicyIndependentOfRoadSeed(t *testing.T) {
	const seeds = 2000

	// Roads "#_#", "##_" and "###" come up with probability 1/2, 1/4 and
	// 1/4; a uniform 1-or-2 bot crosses them with probability 1/2, 1/4 and
	// 1, so 9/16 overall.
	const expected = 9.0 / 16.0

	shared := crossRate(t, seeds, func(seed int64) Policy { return NewRandomPolicy(seed) })
	if shared < expected-0.08 || shared > expected+0.08 {
		t.Errorf("cross rate with road seed = %.3f, expected about %.3f", shared, expected)
	}

	other := crossRate(t, seeds, func(seed int64) Policy { return NewRandomPolicy(seed + 1_000_003) })
	if diff := shared - other; diff < -0.08 || diff > 0.08 {
		t.Errorf("cross rate %.3f differs from independent seed rate %.3f", shared, other)
	}
}

func TestRunRoadsAreValid(t *testing.T) {
	cfg := config.Default()
	cfg.Road.Length = 15

	report, err := Run(cfg, 3, 25, NewRandomPolicy(3), nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	for i, res := range report.Results {
		r, err := road.Parse(res.Road)
		if err != nil {
			t.Fatalf("run %d: Parse() failed: %v", i, err)
		}
		if err := r.Validate(); err != nil {
			t.Errorf("run %d: road %s invalid: %v", i, res.Road, err)
		}
		if res.Steps > cfg.Road.Length {
			t.Errorf("run %d: steps %d exceed road length", i, res.Steps)
		}
		if res.Outcome == run.OutcomeFell {
			if k, _ := r.At(res.Landing); k != road.Empty {
				t.Errorf("run %d: fell at %d but tile is %v", i, res.Landing, k)
			}
		}
	}
}

func TestSingleTileRoad(t *testing.T) {
	cfg := config.Default()
	cfg.Road.Length = 1

	report, err := Run(cfg, 1, 3, CautiousPolicy{}, nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	for _, res := range report.Results {
		if res.Outcome != run.OutcomeCrossed || res.Steps != 1 {
			t.Errorf("result = %+v, expected crossed with 1 step", res)
		}
	}
}

func TestPolicyByName(t *testing.T) {
	for _, name := range []string{"", "random", "cautious"} {
		if _, err := PolicyByName(name, 1); err != nil {
			t.Errorf("PolicyByName(%q) failed: %v", name, err)
		}
	}
	if _, err := PolicyByName("reckless", 1); err == nil {
		t.Error("PolicyByName should reject unknown names")
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	cfg := config.Default()
	if _, err := Run(cfg, 1, -1, CautiousPolicy{}, nil); err == nil {
		t.Error("Run should reject a negative run count")
	}

	cfg.Road.Length = 0
	if _, err := Run(cfg, 1, 1, CautiousPolicy{}, nil); err == nil {
		t.Error("Run should reject a zero-length road")
	}
}
