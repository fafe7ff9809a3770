package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/types"
)

// TestDefault 测试默认配置取值
func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	if cfg.Layout.CellWidth != 140 || cfg.Layout.CellHeight != 190 {
		t.Errorf("cell size: got %vx%v, want 140x190", cfg.Layout.CellWidth, cfg.Layout.CellHeight)
	}
	if cfg.Orientation.StepDeg != 1 || cfg.Orientation.ThresholdDeg != 45 {
		t.Errorf("orientation: got step=%v threshold=%v", cfg.Orientation.StepDeg, cfg.Orientation.ThresholdDeg)
	}
	if cfg.Camera.MaxWidth != 3800 || cfg.Camera.MaxHeight != 2100 {
		t.Errorf("viewport: got %vx%v, want 3800x2100", cfg.Camera.MaxWidth, cfg.Camera.MaxHeight)
	}
	if cfg.Assets.FaceKeyTemplate != "cards/card{suit}{rank}.png" {
		t.Errorf("face key template: got %q", cfg.Assets.FaceKeyTemplate)
	}

	mode, _ := cfg.DriveMode()
	if mode != components.DriveRotation {
		t.Errorf("drive mode: got %v, want continuous", mode)
	}
}

// TestParseTableConfig_PartialKeepsDefaults 测试部分字段覆盖
func TestParseTableConfig_PartialKeepsDefaults(t *testing.T) {
	data := []byte(`
orientation:
  drive_mode: discrete
  flip_duration: 0.5
camera:
  watch: deck_center
`)
	cfg, err := ParseTableConfig(data, "inline")
	if err != nil {
		t.Fatalf("ParseTableConfig error: %v", err)
	}

	mode, _ := cfg.DriveMode()
	if mode != components.DriveEvent {
		t.Errorf("drive mode: got %v, want discrete", mode)
	}
	if cfg.Orientation.FlipDuration != 0.5 {
		t.Errorf("flip duration: got %v, want 0.5", cfg.Orientation.FlipDuration)
	}
	// 未覆盖的字段保持默认
	if cfg.Orientation.ThresholdDeg != DefaultThresholdDeg {
		t.Errorf("threshold should keep default, got %v", cfg.Orientation.ThresholdDeg)
	}
	if cfg.Layout.CellWidth != DefaultCellWidth {
		t.Errorf("cell width should keep default, got %v", cfg.Layout.CellWidth)
	}
	if cfg.Camera.Watch != WatchDeckCenter {
		t.Errorf("camera watch: got %q", cfg.Camera.Watch)
	}
}

// TestParseTableConfig_Invalid 测试非法配置被拒绝
func TestParseTableConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown drive mode", "orientation:\n  drive_mode: sideways\n"},
		{"threshold zero", "orientation:\n  threshold_deg: 0\n"},
		{"threshold too large", "orientation:\n  threshold_deg: 180\n"},
		{"negative flip duration", "orientation:\n  flip_duration: -1\n"},
		{"bad rotation target", "orientation:\n  rotation_targets: [Stars-2]\n"},
		{"unknown easing", "orientation:\n  flip_easing: bounce\n"},
		{"zero cell width", "layout:\n  cell_width: 0\n"},
		{"unknown scaling", "camera:\n  scaling_mode: stretch\n"},
		{"unknown watch", "camera:\n  watch: cursor\n"},
		{"template without rank", "assets:\n  face_key_template: cards/{suit}.png\n"},
		{"three suits", "deck:\n  suits: [Hearts, Clubs, Spades]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTableConfig([]byte(tt.yaml), "inline")
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

// TestRotationTargets 测试旋转目标解析
func TestRotationTargets(t *testing.T) {
	cfg := Default()
	targets, err := cfg.RotationTargets()
	if err != nil || targets != nil {
		t.Fatalf("empty targets should mean all cards, got %v, %v", targets, err)
	}

	cfg.Orientation.RotationTargets = []string{"Diamonds-2"}
	targets, err = cfg.RotationTargets()
	if err != nil {
		t.Fatalf("RotationTargets error: %v", err)
	}
	if len(targets) != 1 || targets[0] != (types.CardID{Suit: types.SuitDiamonds, Rank: types.RankTwo}) {
		t.Errorf("got %v, want [Diamonds-2]", targets)
	}
}

// TestLoadTableConfig 测试从文件加载
func TestLoadTableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardtable.yaml")
	if err := os.WriteFile(path, []byte("layout:\n  cell_width: 150\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTableConfig(path)
	if err != nil {
		t.Fatalf("LoadTableConfig error: %v", err)
	}
	if cfg.Layout.CellWidth != 150 {
		t.Errorf("cell width: got %v, want 150", cfg.Layout.CellWidth)
	}

	if _, err := LoadTableConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

// TestShippedConfig 测试随程序发布的 data/cardtable.yaml 可以通过校验
func TestShippedConfig(t *testing.T) {
	cfg, err := LoadTableConfig(filepath.Join("..", "..", "data", "cardtable.yaml"))
	if err != nil {
		t.Fatalf("shipped config invalid: %v", err)
	}
	if cfg.Layout.CellWidth != DefaultCellWidth {
		t.Errorf("shipped cell width: got %v", cfg.Layout.CellWidth)
	}
}
