package config

import "testing"

func TestPresetsAreValid(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			if err := ApplyPreset(&cfg, name); err != nil {
				t.Fatalf("ApplyPreset(%q) error: %v", name, err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %q produces invalid config: %v", name, err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	if err := ApplyPreset(&cfg, "big"); err != nil {
		t.Fatalf("ApplyPreset() error: %v", err)
	}
	if cfg.Board.Size != 5 || cfg.Board.Target != 8192 {
		t.Errorf("board = %+v, want 5x5 target 8192", cfg.Board)
	}
	if cfg.Board.Variant() != "2048-5x5" {
		t.Errorf("Variant() = %q, want 2048-5x5", cfg.Board.Variant())
	}

	before := cfg
	if err := ApplyPreset(&cfg, ""); err != nil {
		t.Errorf("ApplyPreset(\"\") error: %v", err)
	}
	if cfg != before {
		t.Error("ApplyPreset(\"\") changed the config")
	}

	if err := ApplyPreset(&cfg, "impossible"); err == nil {
		t.Error("ApplyPreset(unknown) error = nil")
	}
}

func TestEngineConfig(t *testing.T) {
	b := Default().Board
	ec := b.EngineConfig(99)

	if ec.Size != b.Size || ec.StartTiles != b.StartTiles || ec.ProbFour != b.ProbFour || ec.Target != b.Target {
		t.Errorf("EngineConfig() = %+v, board %+v", ec, b)
	}
	if ec.Seed != 99 {
		t.Errorf("EngineConfig().Seed = %d, want 99", ec.Seed)
	}
	if Default().Board.Variant() != "2048" {
		t.Errorf("default Variant() = %q, want 2048", Default().Board.Variant())
	}
}
