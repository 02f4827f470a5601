package systems

import (
	"log"

	"github.com/decker502/cannonade/pkg/components"
	"github.com/decker502/cannonade/pkg/config"
	"github.com/decker502/cannonade/pkg/ecs"
	"github.com/decker502/cannonade/pkg/entities"
	"github.com/decker502/cannonade/pkg/vecmath"
)

// RoundGate 刷怪点查询回合状态
type RoundGate interface {
	IsGameStarted() bool
	IsGameOver() bool
}

// Spawner 周期性生成敌人
//
// 第 n 个敌人（从 0 开始）在 initialDelay + n*interval 时生成。
// 使用绝对时间表而不是累加倒计时，生成 100 个敌人后也不会产生漂移。
// 默认从创建起计时，与回合状态无关；cfg.WaitForStart 为 true 时
// 只有回合开始且未结束时才计时。
type Spawner struct {
	em       *ecs.EntityManager
	cfg      config.SpawnerConfig
	enemyCfg config.EnemyConfig
	path     *components.Waypath
	gate     RoundGate

	elapsed float64
	spawned int
}

// NewSpawner 创建刷怪点
//
// 参数:
//   - em: 实体管理器
//   - cfg: 刷怪点配置（位置、间隔、初始延迟）
//   - enemyCfg: 生成敌人使用的模板配置
//   - path: 所有敌人共享的路线
//   - gate: 回合状态，仅在 cfg.WaitForStart 时使用；为 nil 时始终计时
func NewSpawner(em *ecs.EntityManager, cfg config.SpawnerConfig, enemyCfg config.EnemyConfig,
	path *components.Waypath, gate RoundGate) *Spawner {
	return &Spawner{
		em:       em,
		cfg:      cfg,
		enemyCfg: enemyCfg,
		path:     path,
		gate:     gate,
	}
}

// Update 推进刷怪计时，到期则生成敌人
// 先检查再推进：initialDelay=0 时第一个敌人在开始计时的那一帧生成
func (s *Spawner) Update(deltaTime float64) {
	if s.gated() {
		return
	}

	for s.elapsed >= s.nextSpawnTime() {
		s.spawn()
	}
	s.elapsed += deltaTime
}

func (s *Spawner) gated() bool {
	if !s.cfg.WaitForStart || s.gate == nil {
		return false
	}
	return !s.gate.IsGameStarted() || s.gate.IsGameOver()
}

func (s *Spawner) nextSpawnTime() float64 {
	return s.cfg.InitialDelay + float64(s.spawned)*s.cfg.Interval
}

func (s *Spawner) spawn() {
	position := s.cfg.Position.Add(vecmath.Vec3{Y: s.enemyCfg.SpawnHeight})
	id, err := entities.NewEnemy(s.em, s.enemyCfg, position, s.path)
	s.spawned++
	if err != nil {
		log.Printf("[Spawner] 生成敌人失败: %v", err)
		return
	}
	log.Printf("[Spawner] 第 %d 个敌人 %d 生成于 t=%.2f", s.spawned, id, s.elapsed)
}

// Spawned 已生成的敌人数量
func (s *Spawner) Spawned() int {
	return s.spawned
}

// Elapsed 刷怪点已计时的时长
func (s *Spawner) Elapsed() float64 {
	return s.elapsed
}
