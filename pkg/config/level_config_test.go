package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/cannonade/pkg/vecmath"
	"gopkg.in/yaml.v3"
)

func TestDefaultLevelConfig(t *testing.T) {
	cfg, err := DefaultLevelConfig()
	if err != nil {
		t.Fatalf("DefaultLevelConfig() error: %v", err)
	}

	if cfg.Gravity != 9.81 {
		t.Errorf("Gravity = %v, want 9.81", cfg.Gravity)
	}
	if cfg.Cannon.ArcHeight != 5 || cfg.Cannon.TrajectoryTimeStep != 0.1 || cfg.Cannon.TrajectoryPoints != 30 {
		t.Errorf("cannon = %+v", cfg.Cannon)
	}
	if cfg.Cannon.ReloadTime != 3 {
		t.Errorf("ReloadTime = %v, want 3", cfg.Cannon.ReloadTime)
	}
	if cfg.Enemy.ArrivalThreshold != 0.2 || cfg.Enemy.PreAttackDelay != 2 ||
		cfg.Enemy.AttackToSignalDelay != 1 || cfg.Enemy.DeathRemovalDelay != 3 {
		t.Errorf("enemy = %+v", cfg.Enemy)
	}
	if cfg.Spawner.Interval != 3 || cfg.Spawner.InitialDelay != 0 || cfg.Spawner.WaitForStart {
		t.Errorf("spawner = %+v", cfg.Spawner)
	}
	if cfg.Projectile.GroundLinger != 1 {
		t.Errorf("GroundLinger = %v, want 1", cfg.Projectile.GroundLinger)
	}
	if len(cfg.Waypath) == 0 {
		t.Fatal("默认关卡应包含路线")
	}
	if cfg.Waypath[0] != vecmath.V3(10, 0, 10) {
		t.Errorf("Waypath[0] = %v", cfg.Waypath[0])
	}

	// 每次调用返回独立副本
	other, _ := DefaultLevelConfig()
	other.Waypath[0].X = 999
	if cfg.Waypath[0].X == 999 {
		t.Error("DefaultLevelConfig 应返回新副本")
	}
}

func TestLoadLevelConfigFromFile(t *testing.T) {
	base, err := DefaultLevelConfig()
	if err != nil {
		t.Fatal(err)
	}
	base.ID = "custom"
	base.Spawner.Interval = 1.5
	base.Waypath = nil

	data, err := yaml.Marshal(base)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "level.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLevelConfig(path)
	if err != nil {
		t.Fatalf("LoadLevelConfig() error: %v", err)
	}
	if cfg.ID != "custom" || cfg.Spawner.Interval != 1.5 {
		t.Errorf("got id=%q interval=%v", cfg.ID, cfg.Spawner.Interval)
	}
	// 空路线合法
	if len(cfg.Waypath) != 0 {
		t.Errorf("Waypath = %v, want empty", cfg.Waypath)
	}
}

func TestLoadLevelConfigEmptyPathUsesDefault(t *testing.T) {
	cfg, err := LoadLevelConfig("")
	if err != nil {
		t.Fatalf("LoadLevelConfig(\"\") error: %v", err)
	}
	if cfg.ID != "meadow" {
		t.Errorf("ID = %q, want meadow", cfg.ID)
	}
}

func TestLoadLevelConfigMissingFile(t *testing.T) {
	_, err := LoadLevelConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("缺失文件应返回错误")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("错误应包装 not-exist: %v", err)
	}
}

func TestParseLevelConfigInvalidYAML(t *testing.T) {
	if _, err := ParseLevelConfig([]byte("gravity: [not a number")); err == nil {
		t.Error("非法YAML应返回错误")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*LevelConfig)
		errContains string
	}{
		{"默认配置合法", func(*LevelConfig) {}, ""},
		{"重力为零", func(c *LevelConfig) { c.Gravity = 0 }, "gravity"},
		{"空区域", func(c *LevelConfig) { c.Area.MaxX = c.Area.MinX }, "area"},
		{"顶点高度为负", func(c *LevelConfig) { c.Cannon.ArcHeight = -1 }, "arcHeight"},
		{"时间步长为零", func(c *LevelConfig) { c.Cannon.TrajectoryTimeStep = 0 }, "trajectoryTimeStep"},
		{"采样点过少", func(c *LevelConfig) { c.Cannon.TrajectoryPoints = 1 }, "trajectoryPoints"},
		{"装填时间为负", func(c *LevelConfig) { c.Cannon.ReloadTime = -0.5 }, "reloadTime"},
		{"装填时间为零合法", func(c *LevelConfig) { c.Cannon.ReloadTime = 0 }, ""},
		{"炮弹半径为零", func(c *LevelConfig) { c.Projectile.Radius = 0 }, "projectile.radius"},
		{"移动速度为零", func(c *LevelConfig) { c.Enemy.MoveSpeed = 0 }, "moveSpeed"},
		{"到达阈值为零", func(c *LevelConfig) { c.Enemy.ArrivalThreshold = 0 }, "arrivalThreshold"},
		{"延迟为负", func(c *LevelConfig) { c.Enemy.PreAttackDelay = -1 }, "delays"},
		{"刷怪间隔为零", func(c *LevelConfig) { c.Spawner.Interval = 0 }, "interval"},
		{"初始延迟为负", func(c *LevelConfig) { c.Spawner.InitialDelay = -2 }, "initialDelay"},
		{"空路线合法", func(c *LevelConfig) { c.Waypath = nil }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := DefaultLevelConfig()
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.errContains == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.errContains)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q should contain %q", err, tt.errContains)
			}
		})
	}
}

func TestAreaContains(t *testing.T) {
	area := AreaConfig{MinX: -1, MaxX: 1, MinZ: -2, MaxZ: 2}
	if !area.Contains(0, 0) || !area.Contains(1, 2) {
		t.Error("边界内的点应被包含")
	}
	if area.Contains(1.01, 0) || area.Contains(0, -3) {
		t.Error("边界外的点不应被包含")
	}
}
