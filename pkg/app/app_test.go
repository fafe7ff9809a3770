package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gonewx/cardtable/pkg/components"
	"github.com/gonewx/cardtable/pkg/config"
	"github.com/gonewx/cardtable/pkg/embedded"
)

const testConfigYAML = `
orientation:
  drive_mode: continuous
  rotation_targets: [Diamonds-2]
camera:
  watch: deck_center
`

func initEmbedded(t *testing.T) {
	t.Helper()
	embedded.Init(fstest.MapFS{
		"data/cardtable.yaml": &fstest.MapFile{Data: []byte(testConfigYAML)},
	})
}

// TestLoadConfig_Embedded 测试读取内置配置
func TestLoadConfig_Embedded(t *testing.T) {
	initEmbedded(t)

	cfg, err := LoadConfig(Config{})
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Camera.Watch != config.WatchDeckCenter {
		t.Errorf("watch: got %q", cfg.Camera.Watch)
	}
	targets, _ := cfg.RotationTargets()
	if len(targets) != 1 || targets[0].String() != "Diamonds-2" {
		t.Errorf("rotation targets: got %v", targets)
	}
}

// TestLoadConfig_ModeOverride 测试 -mode 覆盖驱动方式
func TestLoadConfig_ModeOverride(t *testing.T) {
	initEmbedded(t)

	cfg, err := LoadConfig(Config{Mode: "discrete"})
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	mode, _ := cfg.DriveMode()
	if mode != components.DriveEvent {
		t.Errorf("mode: got %s, want discrete", mode)
	}

	if _, err := LoadConfig(Config{Mode: "sideways"}); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for bad mode, got %v", err)
	}
}

// TestLoadConfig_FromDisk 测试 -config 指定磁盘文件
func TestLoadConfig_FromDisk(t *testing.T) {
	initEmbedded(t)

	path := filepath.Join(t.TempDir(), "table.yaml")
	if err := os.WriteFile(path, []byte("layout:\n  cell_width: 150\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(Config{ConfigPath: path})
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Layout.CellWidth != 150 {
		t.Errorf("cell width: got %v, want 150", cfg.Layout.CellWidth)
	}
	// 磁盘配置不与内置配置合并
	if cfg.Camera.Watch != config.WatchNone {
		t.Errorf("watch: got %q, want default", cfg.Camera.Watch)
	}

	if _, err := LoadConfig(Config{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("Expected error for missing file")
	}
}
