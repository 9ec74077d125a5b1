package life

import (
	"testing"

	"cellula/pkg/core"
)

func newEmpty() *Life {
	return New(DefaultConfig())
}

func TestLoneCellDies(t *testing.T) {
	l := newEmpty()
	l.SeedPattern([]string{"1"}, core.Pt(0, 0))

	if l.Population() != 1 {
		t.Fatalf("expected population 1 after seeding, got %d", l.Population())
	}

	l.Step()
	if l.Population() != 0 {
		t.Fatalf("lone cell should die of underpopulation, got %d live cells", l.Population())
	}
}

func TestBlockIsStill(t *testing.T) {
	l := newEmpty()
	l.SeedPattern([]string{"11", "11"}, core.Pt(3, -2))

	for i := 0; i < 4; i++ {
		l.Step()
		if l.Population() != 4 {
			t.Fatalf("block population changed at step %d: got %d", i+1, l.Population())
		}
	}

	for _, p := range []core.Point{{X: 3, Y: -2}, {X: 4, Y: -2}, {X: 3, Y: -1}, {X: 4, Y: -1}} {
		if !l.Contains(p) {
			t.Fatalf("block cell %v should still be alive", p)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := newEmpty()
	l.SeedPattern([]string{"111"}, core.Pt(-1, 0))

	l.Step()

	vertical := []core.Point{{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 0, Y: 1}}
	if l.Population() != 3 {
		t.Fatalf("blinker population should stay 3, got %d", l.Population())
	}
	for _, p := range vertical {
		if !l.Contains(p) {
			t.Fatalf("expected vertical blinker cell %v after first step", p)
		}
	}

	l.Step()

	horizontal := []core.Point{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}
	if l.Population() != 3 {
		t.Fatalf("blinker population should stay 3 after second step, got %d", l.Population())
	}
	for _, p := range horizontal {
		if !l.Contains(p) {
			t.Fatalf("expected horizontal blinker cell %v after second step", p)
		}
	}
}

func TestSeedPatternIgnoresNonLiveMarkers(t *testing.T) {
	l := newEmpty()
	l.SeedPattern([]string{"010", "0x1", "1"}, core.Pt(-5, -5))

	if l.Population() != 3 {
		t.Fatalf("expected 3 live cells, got %d", l.Population())
	}
	for _, p := range []core.Point{{X: -4, Y: -5}, {X: -3, Y: -4}, {X: -5, Y: -3}} {
		if !l.Contains(p) {
			t.Fatalf("expected live cell at %v", p)
		}
	}
	if l.Contains(core.Pt(-5, -5)) {
		t.Fatal("'0' marker should leave the cell dead")
	}
}

func TestGliderTranslates(t *testing.T) {
	l := newEmpty()
	l.SeedPattern([]string{"010", "001", "111"}, core.Pt(0, 0))

	// A glider repeats its shape every 4 generations, shifted by (1,1).
	for i := 0; i < 4; i++ {
		l.Step()
		if l.Population() != 5 {
			t.Fatalf("glider population should stay 5, got %d at step %d", l.Population(), i+1)
		}
	}

	shifted := []core.Point{{X: 2, Y: 1}, {X: 3, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}}
	for _, p := range shifted {
		if !l.Contains(p) {
			t.Fatalf("expected translated glider cell %v after 4 steps", p)
		}
	}
}

func TestResetDeterministicPerSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SoupWidth = 16
	cfg.SoupHeight = 16
	cfg.SoupFill = 0.5

	a := New(cfg)
	b := New(cfg)
	a.Reset(1234)
	b.Reset(1234)

	if a.Population() == 0 {
		t.Fatal("soup reset should produce live cells")
	}
	if a.Population() != b.Population() {
		t.Fatalf("identical seeds diverged: %d vs %d", a.Population(), b.Population())
	}
	for p := range a.live {
		if !b.Contains(p) {
			t.Fatalf("cell %v present in one soup but not the other", p)
		}
	}

	b.Reset(4321)
	same := b.Population() == a.Population()
	if same {
		for p := range a.live {
			if !b.Contains(p) {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("different seeds should produce different soups")
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{"soup_w": "8", "soup_h": "4", "soup_fill": "0.9"})
	if cfg.SoupWidth != 8 || cfg.SoupHeight != 4 {
		t.Fatalf("unexpected soup dimensions: %dx%d", cfg.SoupWidth, cfg.SoupHeight)
	}
	if cfg.SoupFill != 0.9 {
		t.Fatalf("unexpected soup fill: %f", cfg.SoupFill)
	}

	cfg = FromMap(map[string]string{"soup_w": "-3", "soup_fill": "2.5"})
	def := DefaultConfig()
	if cfg.SoupWidth != def.SoupWidth || cfg.SoupFill != def.SoupFill {
		t.Fatalf("invalid overrides should keep defaults, got %+v", cfg)
	}
}
