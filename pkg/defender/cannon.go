// Package defender 实现固定炮台
//
// 大炮跟随指针在地面上选取目标点，平滑转向目标，每帧重新计算预览轨迹；
// 开火只能经由回合控制器的 RequestFire 触发。
package defender

import (
	"log"

	"github.com/decker502/cannonade/pkg/ballistics"
	"github.com/decker502/cannonade/pkg/config"
	"github.com/decker502/cannonade/pkg/ecs"
	"github.com/decker502/cannonade/pkg/entities"
	"github.com/decker502/cannonade/pkg/hooks"
	"github.com/decker502/cannonade/pkg/vecmath"
)

// Gate 大炮查询是否允许瞄准（回合进行中、未装填、未结束）
type Gate interface {
	CanAim() bool
}

// Cannon 固定炮台
type Cannon struct {
	em         *ecs.EntityManager
	cfg        config.CannonConfig
	projectile config.ProjectileConfig
	gravity    float64

	input    hooks.PointerInput
	ground   hooks.GroundResolver
	renderer hooks.TrajectoryRenderer
	effects  hooks.Effects
	gate     Gate

	yaw       float64
	target    vecmath.Vec3
	hasTarget bool
	aiming    bool
	disabled  bool // 回合失败后永久停用

	preview      []vecmath.Vec3
	previewShown bool
}

// NewCannon 创建大炮
//
// 参数:
//   - em: 实体管理器（炮弹在其中创建）
//   - level: 关卡配置（大炮、炮弹参数与重力）
//   - gate: 瞄准许可，通常是回合控制器；为 nil 时始终允许
//   - collab: 外部协作者，nil 字段使用空实现
func NewCannon(em *ecs.EntityManager, level *config.LevelConfig, gate Gate, collab hooks.Collaborators) *Cannon {
	collab = collab.WithDefaults(level.GroundHeight)
	return &Cannon{
		em:         em,
		cfg:        level.Cannon,
		projectile: level.Projectile,
		gravity:    level.Gravity,
		input:      collab.Input,
		ground:     collab.Ground,
		renderer:   collab.Renderer,
		effects:    collab.Effects,
		gate:       gate,
	}
}

// AimAt 设置目标点
func (c *Cannon) AimAt(groundPoint vecmath.Vec3) {
	c.target = groundPoint
	c.hasTarget = true
}

// Update 每帧处理瞄准输入
//
// 按住瞄准且指针不在界面控件上时，把指针投射到地面作为新目标；
// 没有地面交点时保留上一个目标。松开瞄准、装填中或回合结束时清除预览。
func (c *Cannon) Update(deltaTime float64) {
	if !c.canAim() {
		c.aiming = false
		c.clearPreview()
		return
	}

	if !c.input.AimHeld() || c.input.IsPointerOverInteractiveUI() {
		c.aiming = false
		c.clearPreview()
		return
	}
	c.aiming = true

	x, y := c.input.PointerPosition()
	if p, ok := c.ground.ResolveGroundPoint(x, y); ok {
		c.AimAt(p)
	}
	if !c.hasTarget {
		return
	}

	if yaw, ok := vecmath.YawTowards(c.target.Sub(c.cfg.Position)); ok {
		c.yaw = vecmath.LerpAngle(c.yaw, yaw, deltaTime*c.cfg.TurnRate)
	}

	c.preview = c.PreviewTrajectory()
	c.renderer.SetTrajectoryPreview(c.preview)
	c.previewShown = true
}

// PreviewTrajectory 当前目标的预测轨迹
// 未瞄准、无目标、装填中或回合结束时返回空切片
func (c *Cannon) PreviewTrajectory() []vecmath.Vec3 {
	if !c.aiming || !c.hasTarget || !c.canAim() {
		return []vecmath.Vec3{}
	}
	muzzle := c.Muzzle()
	velocity := ballistics.ComputeLaunchVelocity(muzzle, c.target, c.cfg.ArcHeight, c.gravity)
	return ballistics.SampleTrajectory(muzzle, velocity, ballistics.GravityVector(c.gravity),
		c.cfg.TrajectoryTimeStep, c.cfg.TrajectoryPoints)
}

// Fire 从炮口向目标发射一枚炮弹
// 只应由回合控制器调用；没有目标或已停用时返回 false
func (c *Cannon) Fire() bool {
	if c.disabled || !c.hasTarget {
		return false
	}

	muzzle := c.Muzzle()
	velocity := ballistics.ComputeLaunchVelocity(muzzle, c.target, c.cfg.ArcHeight, c.gravity)
	id, err := entities.NewProjectile(c.em, c.projectile, muzzle, velocity)
	if err != nil {
		log.Printf("[Cannon] 创建炮弹失败: %v", err)
		return false
	}

	c.effects.Play(hooks.EffectFire)
	c.effects.Play(hooks.EffectMuzzle)
	log.Printf("[Cannon] 发射炮弹 %d → (%.2f, %.2f, %.2f)", id, c.target.X, c.target.Y, c.target.Z)
	return true
}

// HandleLose 回合失败：停止瞄准并清除预览
func (c *Cannon) HandleLose() {
	c.disabled = true
	c.aiming = false
	c.clearPreview()
}

// Muzzle 炮口世界坐标
func (c *Cannon) Muzzle() vecmath.Vec3 {
	return c.cfg.Position.Add(vecmath.RotateY(c.cfg.MuzzleOffset, c.yaw))
}

// Position 炮台位置
func (c *Cannon) Position() vecmath.Vec3 { return c.cfg.Position }

// Yaw 当前朝向
func (c *Cannon) Yaw() float64 { return c.yaw }

// Target 当前目标点，ok 为 false 表示尚未瞄准过
func (c *Cannon) Target() (vecmath.Vec3, bool) { return c.target, c.hasTarget }

// IsAiming 本帧是否处于瞄准状态
func (c *Cannon) IsAiming() bool { return c.aiming }

// Preview 最近一次提交给渲染协作者的预览轨迹
func (c *Cannon) Preview() []vecmath.Vec3 { return c.preview }

func (c *Cannon) canAim() bool {
	if c.disabled {
		return false
	}
	return c.gate == nil || c.gate.CanAim()
}

// clearPreview 只在状态变化时通知渲染协作者
func (c *Cannon) clearPreview() {
	c.preview = nil
	if !c.previewShown {
		return
	}
	c.previewShown = false
	c.renderer.SetTrajectoryPreview(nil)
}
