package game

import (
	"math"

	"github.com/decker502/cannonade/pkg/ballistics"
	"github.com/decker502/cannonade/pkg/components"
	"github.com/decker502/cannonade/pkg/ecs"
	"github.com/decker502/cannonade/pkg/vecmath"
)

// leadIterations 提前量迭代次数
const leadIterations = 3

// AutoPilot 无人值守时代替玩家的脚本输入
//
// 同时实现 hooks.PointerInput 和 hooks.GroundResolver：
// 选中目标时"按住瞄准"，地面投射直接返回预测落点，
// 因此大炮走与玩家输入完全相同的瞄准与预览流程。
//
// 每帧调用顺序: Step → Session.Update → TryFire
type AutoPilot struct {
	session   *Session
	target    vecmath.Vec3
	hasTarget bool
	targetID  ecs.EntityID
}

// NewAutoPilot 创建自动驾驶；需在会话创建后调用 Attach
func NewAutoPilot() *AutoPilot {
	return &AutoPilot{}
}

// Attach 绑定会话
func (a *AutoPilot) Attach(s *Session) {
	a.session = s
}

// AimHeld 实现 hooks.PointerInput
func (a *AutoPilot) AimHeld() bool { return a.hasTarget }

// PointerPosition 实现 hooks.PointerInput（不使用屏幕坐标）
func (a *AutoPilot) PointerPosition() (float64, float64) { return 0, 0 }

// IsPointerOverInteractiveUI 实现 hooks.PointerInput
func (a *AutoPilot) IsPointerOverInteractiveUI() bool { return false }

// ResolveGroundPoint 实现 hooks.GroundResolver：返回当前预测落点
func (a *AutoPilot) ResolveGroundPoint(float64, float64) (vecmath.Vec3, bool) {
	return a.target, a.hasTarget
}

// Step 开始回合并选取目标
func (a *AutoPilot) Step() {
	if a.session == nil {
		return
	}
	if !a.session.Round().IsGameStarted() {
		a.session.StartGame()
	}
	a.target, a.targetID, a.hasTarget = a.pickTarget()
}

// TryFire 大炮已瞄准时请求开火
func (a *AutoPilot) TryFire() bool {
	if a.session == nil || !a.hasTarget || !a.session.Cannon().IsAiming() {
		return false
	}
	return a.session.RequestFire()
}

// Target 当前预测落点与目标敌人
func (a *AutoPilot) Target() (vecmath.Vec3, ecs.EntityID, bool) {
	return a.target, a.targetID, a.hasTarget
}

// pickTarget 选择离大炮最近的移动中敌人，按飞行时间计算提前量
func (a *AutoPilot) pickTarget() (vecmath.Vec3, ecs.EntityID, bool) {
	em := a.session.EntityManager()
	cannon := a.session.Cannon()
	level := a.session.Level()

	var (
		best     ecs.EntityID
		bestPos  vecmath.Vec3
		bestVel  vecmath.Vec3
		bestDist = math.Inf(1)
	)
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if enemy.State != components.EnemyMoving || enemy.Path.Len() == 0 {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if d := vecmath.FlatDist(pos.Vec3, cannon.Position()); d < bestDist {
			best, bestPos, bestDist = id, pos.Vec3, d
			bestVel = vecmath.Zero
			if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
				bestVel = vel.Vec3
			}
		}
	}
	if best == 0 {
		return vecmath.Zero, 0, false
	}

	// 迭代求解：落点 = 当前位置 + 速度 × 飞行时间(落点)
	muzzle := cannon.Muzzle()
	aim := bestPos
	for range leadIterations {
		t := ballistics.FlightTime(muzzle, aim, level.Cannon.ArcHeight, level.Gravity)
		aim = bestPos.Add(bestVel.Flat().Scale(t))
	}
	if !level.Area.Contains(aim.X, aim.Z) {
		aim = bestPos
	}
	return aim, best, true
}
