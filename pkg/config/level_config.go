package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/decker502/cannonade/pkg/vecmath"
	"gopkg.in/yaml.v3"
)

//go:embed data/default_level.yaml
var defaultLevelYAML []byte

// DefaultLevelPath 内置默认关卡的逻辑路径（仅用于日志）
const DefaultLevelPath = "embedded:data/default_level.yaml"

// LevelConfig 关卡配置
//
// 包含大炮、炮弹、敌人、刷怪点和路径的全部参数。
// 加载后只读，同一配置可以反复用于重开模拟。
type LevelConfig struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Gravity      float64 `yaml:"gravity"`      // 重力加速度大小（正值）
	GroundHeight float64 `yaml:"groundHeight"` // 平坦地面高度

	Area       AreaConfig       `yaml:"area"`
	Cannon     CannonConfig     `yaml:"cannon"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Spawner    SpawnerConfig    `yaml:"spawner"`

	// Waypath 敌人行进路线，顺序即行进顺序；允许为空（敌人原地不动）
	Waypath []vecmath.Vec3 `yaml:"waypath"`
}

// AreaConfig 可玩区域（水平面上的矩形）
type AreaConfig struct {
	MinX float64 `yaml:"minX"`
	MaxX float64 `yaml:"maxX"`
	MinZ float64 `yaml:"minZ"`
	MaxZ float64 `yaml:"maxZ"`
}

// Contains 点是否位于区域内（忽略高度）
func (a AreaConfig) Contains(x, z float64) bool {
	return x >= a.MinX && x <= a.MaxX && z >= a.MinZ && z <= a.MaxZ
}

// CannonConfig 大炮配置
type CannonConfig struct {
	Position           vecmath.Vec3 `yaml:"position"`
	MuzzleOffset       vecmath.Vec3 `yaml:"muzzleOffset"` // 炮口相对炮身的局部偏移（+Z 为炮口朝向）
	ArcHeight          float64      `yaml:"arcHeight"`
	TrajectoryTimeStep float64      `yaml:"trajectoryTimeStep"`
	TrajectoryPoints   int          `yaml:"trajectoryPoints"`
	TurnRate           float64      `yaml:"turnRate"`
	ReloadTime         float64      `yaml:"reloadTime"`
}

// ProjectileConfig 炮弹配置
type ProjectileConfig struct {
	Radius       float64 `yaml:"radius"`
	GroundLinger float64 `yaml:"groundLinger"` // 落地后保留时间
}

// EnemyConfig 敌人配置
type EnemyConfig struct {
	MoveSpeed           float64 `yaml:"moveSpeed"`
	TurnRate            float64 `yaml:"turnRate"`
	ArrivalThreshold    float64 `yaml:"arrivalThreshold"`
	PreAttackDelay      float64 `yaml:"preAttackDelay"`
	AttackToSignalDelay float64 `yaml:"attackToSignalDelay"`
	DeathRemovalDelay   float64 `yaml:"deathRemovalDelay"`
	Radius              float64 `yaml:"radius"`
	SpawnHeight         float64 `yaml:"spawnHeight"`
}

// SpawnerConfig 刷怪点配置
//
// 默认从会话创建起按 initialDelay + n*interval 生成敌人，与回合状态无关。
// WaitForStart 为 true 时只在回合开始后、结束前计时。
type SpawnerConfig struct {
	Position     vecmath.Vec3 `yaml:"position"`
	Interval     float64      `yaml:"interval"`
	InitialDelay float64      `yaml:"initialDelay"`
	WaitForStart bool         `yaml:"waitForStart"`
}

// LoadLevelConfig 从YAML文件加载关卡配置
//
// 参数：
//   - path: 关卡配置文件路径；为空时加载内置默认关卡
//
// 返回：
//   - *LevelConfig: 解析并验证后的配置
//   - error: 读取、解析或验证失败
func LoadLevelConfig(path string) (*LevelConfig, error) {
	if path == "" {
		return DefaultLevelConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", path, err)
	}

	cfg, err := ParseLevelConfig(data)
	if err != nil {
		return nil, fmt.Errorf("level config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultLevelConfig 返回内置默认关卡（每次返回新副本）
func DefaultLevelConfig() (*LevelConfig, error) {
	cfg, err := ParseLevelConfig(defaultLevelYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded default level: %w", err)
	}
	return cfg, nil
}

// ParseLevelConfig 解析并验证YAML数据
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置有效性
//
// 空路线是合法的：敌人生成后原地待命。
func (c *LevelConfig) Validate() error {
	if c.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %v", c.Gravity)
	}
	if c.Area.MinX >= c.Area.MaxX || c.Area.MinZ >= c.Area.MaxZ {
		return fmt.Errorf("area is empty: x[%v, %v] z[%v, %v]",
			c.Area.MinX, c.Area.MaxX, c.Area.MinZ, c.Area.MaxZ)
	}

	cannon := c.Cannon
	if cannon.ArcHeight <= 0 {
		return fmt.Errorf("cannon.arcHeight must be positive, got %v", cannon.ArcHeight)
	}
	if cannon.TrajectoryTimeStep <= 0 {
		return fmt.Errorf("cannon.trajectoryTimeStep must be positive, got %v", cannon.TrajectoryTimeStep)
	}
	if cannon.TrajectoryPoints < 2 {
		return fmt.Errorf("cannon.trajectoryPoints must be at least 2, got %d", cannon.TrajectoryPoints)
	}
	if cannon.TurnRate < 0 {
		return fmt.Errorf("cannon.turnRate cannot be negative, got %v", cannon.TurnRate)
	}
	if cannon.ReloadTime < 0 {
		return fmt.Errorf("cannon.reloadTime cannot be negative, got %v", cannon.ReloadTime)
	}

	if c.Projectile.Radius <= 0 {
		return fmt.Errorf("projectile.radius must be positive, got %v", c.Projectile.Radius)
	}
	if c.Projectile.GroundLinger < 0 {
		return fmt.Errorf("projectile.groundLinger cannot be negative, got %v", c.Projectile.GroundLinger)
	}

	enemy := c.Enemy
	if enemy.MoveSpeed <= 0 {
		return fmt.Errorf("enemy.moveSpeed must be positive, got %v", enemy.MoveSpeed)
	}
	if enemy.TurnRate < 0 {
		return fmt.Errorf("enemy.turnRate cannot be negative, got %v", enemy.TurnRate)
	}
	if enemy.ArrivalThreshold <= 0 {
		return fmt.Errorf("enemy.arrivalThreshold must be positive, got %v", enemy.ArrivalThreshold)
	}
	if enemy.PreAttackDelay < 0 || enemy.AttackToSignalDelay < 0 || enemy.DeathRemovalDelay < 0 {
		return fmt.Errorf("enemy delays cannot be negative: preAttack=%v attackToSignal=%v deathRemoval=%v",
			enemy.PreAttackDelay, enemy.AttackToSignalDelay, enemy.DeathRemovalDelay)
	}
	if enemy.Radius <= 0 {
		return fmt.Errorf("enemy.radius must be positive, got %v", enemy.Radius)
	}

	if c.Spawner.Interval <= 0 {
		return fmt.Errorf("spawner.interval must be positive, got %v", c.Spawner.Interval)
	}
	if c.Spawner.InitialDelay < 0 {
		return fmt.Errorf("spawner.initialDelay cannot be negative, got %v", c.Spawner.InitialDelay)
	}

	return nil
}
