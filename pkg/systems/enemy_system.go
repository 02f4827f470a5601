package systems

import (
	"log"
	"math"

	"github.com/decker502/cannonade/pkg/components"
	"github.com/decker502/cannonade/pkg/ecs"
	"github.com/decker502/cannonade/pkg/hooks"
	"github.com/decker502/cannonade/pkg/vecmath"
)

// AttackReporter 接收敌人发出的攻击信号
//
// 信号是电平触发的标志：同一帧内多个敌人上报只会导致一次失败结算。
type AttackReporter interface {
	ReportAttack()
}

// EnemySystem 驱动所有敌人的状态机
//
// 状态转换:
//
//	Moving    → Moving:    沿路线水平移动，到达路线点后切换到下一个
//	Moving    → Attacking: 到达最后一个路线点
//	Attacking:             前摇 → 攻击动作 → 发出一次攻击信号 → 待机
//	任意状态  → Dead:      被炮弹击中（见 KillEnemy）
type EnemySystem struct {
	em       *ecs.EntityManager
	reporter AttackReporter
}

// NewEnemySystem 创建敌人系统
//
// 参数:
//   - em: 实体管理器
//   - reporter: 攻击信号接收者（通常是回合控制器）
func NewEnemySystem(em *ecs.EntityManager, reporter AttackReporter) *EnemySystem {
	return &EnemySystem{
		em:       em,
		reporter: reporter,
	}
}

// Update 推进所有敌人一帧
func (s *EnemySystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.HeadingComponent,
	](s.em)

	for _, id := range ids {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		heading, _ := ecs.GetComponent[*components.HeadingComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		switch enemy.State {
		case components.EnemyMoving:
			s.move(id, enemy, pos, heading, vel, deltaTime)
		case components.EnemyAttacking:
			s.advanceAttack(id, deltaTime)
			s.updateAttack(id, enemy)
		case components.EnemyDead:
			// 等待 LifetimeSystem 移除
		}
	}
}

// move 水平移动到当前路线点，垂直坐标保持不变
func (s *EnemySystem) move(id ecs.EntityID, enemy *components.EnemyComponent,
	pos *components.PositionComponent, heading *components.HeadingComponent,
	vel *components.VelocityComponent, deltaTime float64) {

	setVelocity(vel, vecmath.Zero)

	// 空路线：永久待命
	if enemy.Path.Len() == 0 {
		enemy.Anim = components.AnimIdle
		return
	}

	target := enemy.Path.At(enemy.WaypointIndex)
	toTarget := target.Sub(pos.Vec3).Flat()
	dist := toTarget.Len()

	if dist > 0 {
		dir := toTarget.Scale(1 / dist)
		step := math.Min(enemy.Speed*deltaTime, dist)
		pos.Vec3 = pos.Vec3.Add(dir.Scale(step))
		setVelocity(vel, dir.Scale(enemy.Speed))

		if yaw, ok := vecmath.YawTowards(toTarget); ok {
			heading.Yaw = vecmath.LerpAngle(heading.Yaw, yaw, deltaTime*enemy.TurnRate)
		}
	}

	if vecmath.FlatDist(pos.Vec3, target) >= enemy.ArrivalThreshold {
		return
	}

	if enemy.WaypointIndex < enemy.Path.Last() {
		enemy.WaypointIndex++
		return
	}

	s.enterAttacking(id, enemy, vel)
}

// enterAttacking 到达终点：锁存 Attacking 并开始前摇计时
func (s *EnemySystem) enterAttacking(id ecs.EntityID, enemy *components.EnemyComponent, vel *components.VelocityComponent) {
	enemy.State = components.EnemyAttacking
	enemy.AttackPhase = components.AttackPhaseWindup
	enemy.Anim = components.AnimIdle
	setVelocity(vel, vecmath.Zero)

	timer := &components.TimerComponent{}
	timer.Reset(components.TimerPreAttack, enemy.PreAttackDelay)
	ecs.AddComponent(s.em, id, timer)

	log.Printf("[EnemySystem] 敌人 %d 到达终点，%.1f 秒后攻击", id, enemy.PreAttackDelay)
}

// advanceAttack 推进攻击流程计时器
func (s *EnemySystem) advanceAttack(id ecs.EntityID, deltaTime float64) {
	timer, ok := ecs.GetComponent[*components.TimerComponent](s.em, id)
	if !ok {
		return
	}
	timer.Advance(deltaTime)
}

// updateAttack 处理已完成的攻击阶段
func (s *EnemySystem) updateAttack(id ecs.EntityID, enemy *components.EnemyComponent) {
	timer, ok := ecs.GetComponent[*components.TimerComponent](s.em, id)
	if !ok || !timer.IsReady {
		return
	}

	switch enemy.AttackPhase {
	case components.AttackPhaseWindup:
		enemy.AttackPhase = components.AttackPhaseStrike
		enemy.Anim = components.AnimAttack
		timer.Reset(components.TimerAttackSignal, enemy.AttackToSignalDelay)
		log.Printf("[EnemySystem] 敌人 %d 开始攻击", id)

	case components.AttackPhaseStrike:
		enemy.AttackPhase = components.AttackPhaseDone
		enemy.Anim = components.AnimIdle
		ecs.RemoveComponent[*components.TimerComponent](s.em, id)

		if !enemy.Signaled {
			enemy.Signaled = true
			log.Printf("[EnemySystem] 敌人 %d 发出攻击信号", id)
			if s.reporter != nil {
				s.reporter.ReportAttack()
			}
		}
	}
}

// KillEnemy 将敌人切换到 Dead 状态
//
// 幂等：已死亡的敌人或非敌人实体返回 false，不产生任何副作用。
// 死亡会放弃尚未完成的攻击流程（移除计时器），关闭碰撞体，
// 清空路线引用，并在 DeathRemovalDelay 秒后移除实体。
func KillEnemy(em *ecs.EntityManager, id ecs.EntityID, effects hooks.Effects) bool {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
	if !ok || enemy.State == components.EnemyDead {
		return false
	}

	wasAttacking := enemy.State == components.EnemyAttacking
	enemy.State = components.EnemyDead
	enemy.Path = nil
	enemy.AttackPhase = components.AttackPhaseNone
	enemy.Anim = components.AnimDeath

	ecs.RemoveComponent[*components.TimerComponent](em, id)

	if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
		vel.Vec3 = vecmath.Zero
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
		col.Enabled = false
	}

	ecs.AddComponent(em, id, &components.LifetimeComponent{
		MaxLifetime: enemy.DeathRemovalDelay,
	})

	hooks.OrEffects(effects).Play(hooks.EffectHit)
	log.Printf("[EnemySystem] 敌人 %d 死亡 (攻击中=%v)，%.1f 秒后移除", id, wasAttacking, enemy.DeathRemovalDelay)
	return true
}

func setVelocity(vel *components.VelocityComponent, v vecmath.Vec3) {
	if vel != nil {
		vel.Vec3 = v
	}
}
