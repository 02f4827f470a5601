package systems

import (
	"log"

	"github.com/decker502/cannonade/pkg/ballistics"
	"github.com/decker502/cannonade/pkg/components"
	"github.com/decker502/cannonade/pkg/ecs"
	"github.com/decker502/cannonade/pkg/hooks"
	"github.com/decker502/cannonade/pkg/vecmath"
)

// ProjectileSystem 炮弹物理
//
// 恒定重力、无空气阻力，按匀加速运动精确积分：
// 炮弹在任意时刻的位置都与 ballistics.PositionAt 一致，与瞄准预览轨迹重合。
// 首次接触地面后关闭碰撞体，GroundLinger 秒后移除。
type ProjectileSystem struct {
	em      *ecs.EntityManager
	gravity vecmath.Vec3
	terrain hooks.Terrain
}

// NewProjectileSystem 创建炮弹系统
//
// 参数:
//   - em: 实体管理器
//   - gravity: 重力加速度大小（正值）
//   - terrain: 地形高度查询，为 nil 时视为 y=0 的平地
func NewProjectileSystem(em *ecs.EntityManager, gravity float64, terrain hooks.Terrain) *ProjectileSystem {
	if terrain == nil {
		terrain = hooks.FlatTerrain(0)
	}
	return &ProjectileSystem{
		em:      em,
		gravity: ballistics.GravityVector(gravity),
		terrain: terrain,
	}
}

// Update 推进所有飞行中的炮弹
func (s *ProjectileSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[
		*components.ProjectileComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.em)

	for _, id := range ids {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		if proj.Grounded {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		pos.Vec3 = ballistics.PositionAt(pos.Vec3, vel.Vec3, s.gravity, deltaTime)
		vel.Vec3 = vel.Vec3.Add(s.gravity.Scale(deltaTime))

		// 只在下落时判定落地，避免从低于地面的炮口发射时立即落地
		ground := s.terrain.HeightAt(pos.X, pos.Z)
		if pos.Y <= ground && vel.Y <= 0 {
			s.land(id, proj, pos, vel, ground)
		}
	}
}

func (s *ProjectileSystem) land(id ecs.EntityID, proj *components.ProjectileComponent,
	pos *components.PositionComponent, vel *components.VelocityComponent, ground float64) {
	proj.Grounded = true
	pos.Y = ground
	vel.Vec3 = vecmath.Zero

	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
		col.Enabled = false
	}
	ecs.AddComponent(s.em, id, &components.LifetimeComponent{
		MaxLifetime: proj.GroundLinger,
	})

	log.Printf("[ProjectileSystem] 炮弹 %d 落地于 (%.2f, %.2f, %.2f)", id, pos.X, pos.Y, pos.Z)
}
