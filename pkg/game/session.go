package game

import (
	"log"

	"github.com/decker502/cannonade/pkg/components"
	"github.com/decker502/cannonade/pkg/config"
	"github.com/decker502/cannonade/pkg/defender"
	"github.com/decker502/cannonade/pkg/ecs"
	"github.com/decker502/cannonade/pkg/hooks"
	"github.com/decker502/cannonade/pkg/round"
	"github.com/decker502/cannonade/pkg/systems"
	"github.com/google/uuid"
)

// Session 一次完整的模拟会话
//
// 拥有实体管理器、回合控制器、大炮、刷怪点和全部系统。
// 每帧的更新顺序固定：
//
//	大炮 → 回合控制器 → 刷怪点 → 敌人 → 炮弹 → 碰撞 → 寿命 → 清理实体
//
// 敌人在第 N 帧发出的攻击信号由回合控制器在第 N+1 帧结算。
type Session struct {
	id     string
	level  *config.LevelConfig
	collab hooks.Collaborators
	stats  *StatsManager

	em          *ecs.EntityManager
	path        *components.Waypath
	round       *round.Controller
	cannon      *defender.Cannon
	spawner     *systems.Spawner
	enemies     *systems.EnemySystem
	projectiles *systems.ProjectileSystem
	collisions  *systems.CollisionSystem
	lifetime    *systems.LifetimeSystem

	tick      uint64
	time      float64
	startedAt float64
	endedAt   float64
	recorded  bool
}

// NewSession 创建模拟会话
//
// 参数:
//   - level: 已验证的关卡配置，只读
//   - collab: 外部协作者，nil 字段使用空实现
//   - stats: 战绩管理器，为 nil 时不记录战绩
func NewSession(level *config.LevelConfig, collab hooks.Collaborators, stats *StatsManager) *Session {
	s := &Session{
		level:  level,
		collab: collab.WithDefaults(level.GroundHeight),
		stats:  stats,
		path:   components.NewWaypath(level.Waypath),
	}
	s.build()
	return s
}

// build 从配置重新构造所有状态
func (s *Session) build() {
	s.id = uuid.NewString()
	s.tick = 0
	s.time = 0
	s.startedAt = 0
	s.endedAt = 0
	s.recorded = false

	s.em = ecs.NewEntityManager()
	s.round = round.NewController(s.level.Cannon.ReloadTime, s.collab.HUD, s.collab.Effects)
	s.cannon = defender.NewCannon(s.em, s.level, s.round, s.collab)
	s.round.SetDefender(s.cannon)
	s.round.OnGameOver(s.handleGameOver)

	s.spawner = systems.NewSpawner(s.em, s.level.Spawner, s.level.Enemy, s.path, s.round)
	s.enemies = systems.NewEnemySystem(s.em, s.round)
	s.projectiles = systems.NewProjectileSystem(s.em, s.level.Gravity, s.collab.Terrain)
	s.collisions = systems.NewCollisionSystem(s.em, s.collab.Effects)
	s.lifetime = systems.NewLifetimeSystem(s.em)

	log.Printf("[Session] 会话 %s 已创建 (关卡 %s)", s.id, s.level.ID)
}

// Restart 完全重置：丢弃所有实体与计时器，按同一配置重建
func (s *Session) Restart() {
	log.Printf("[Session] 重开会话 %s", s.id)
	s.build()
}

// StartGame 开始回合
func (s *Session) StartGame() {
	if s.round.IsGameStarted() {
		return
	}
	s.startedAt = s.time
	s.round.StartGame()
}

// RequestFire 请求开火，经由回合控制器把关
func (s *Session) RequestFire() bool {
	return s.round.RequestFire()
}

// Update 推进一帧
func (s *Session) Update(deltaTime float64) {
	s.cannon.Update(deltaTime)
	s.round.Update(deltaTime)
	s.spawner.Update(deltaTime)
	s.enemies.Update(deltaTime)
	s.projectiles.Update(deltaTime)
	s.collisions.Update(deltaTime)
	s.lifetime.Update(deltaTime)
	s.em.RemoveMarkedEntities()

	s.tick++
	s.time += deltaTime
}

func (s *Session) handleGameOver() {
	s.endedAt = s.time
	s.RecordStats()
}

// RecordStats 把本回合结果写入战绩并保存，每个回合只记录一次
//
// 回合失败时自动调用；模拟因时长耗尽等原因提前结束时由调用方显式调用。
// 未开始的回合或没有战绩管理器时返回 false。
func (s *Session) RecordStats() bool {
	if s.stats == nil || s.recorded || !s.round.IsGameStarted() {
		return false
	}
	s.recorded = true

	result := s.Result()
	s.stats.Record(result)
	if err := s.stats.Save(); err != nil {
		log.Printf("[Session] Warning: failed to save stats: %v", err)
	}
	log.Printf("[Session] 回合结束: 存活 %.1f 秒, 击杀 %d, 开火 %d", result.Survived, result.Kills, result.Shots)
	return true
}

// Result 当前回合的结果（进行中的回合按当前时间计算存活时长）
func (s *Session) Result() RoundResult {
	return RoundResult{
		Kills:    s.collisions.Kills(),
		Shots:    s.round.Shots(),
		Survived: s.Survived(),
	}
}

// Survived 回合已存活时长
func (s *Session) Survived() float64 {
	switch {
	case !s.round.IsGameStarted():
		return 0
	case s.round.IsGameOver():
		return s.endedAt - s.startedAt
	}
	return s.time - s.startedAt
}

// ID 会话标识（每次重开都会变化）
func (s *Session) ID() string { return s.id }

// Level 关卡配置
func (s *Session) Level() *config.LevelConfig { return s.level }

// Round 回合控制器
func (s *Session) Round() *round.Controller { return s.round }

// Cannon 大炮
func (s *Session) Cannon() *defender.Cannon { return s.cannon }

// Spawner 刷怪点
func (s *Session) Spawner() *systems.Spawner { return s.spawner }

// EntityManager 实体管理器
func (s *Session) EntityManager() *ecs.EntityManager { return s.em }

// Waypath 共享路线
func (s *Session) Waypath() *components.Waypath { return s.path }

// Tick 已推进的帧数
func (s *Session) Tick() uint64 { return s.tick }

// Time 模拟时间（秒）
func (s *Session) Time() float64 { return s.time }

// Kills 本回合击杀数
func (s *Session) Kills() int { return s.collisions.Kills() }
