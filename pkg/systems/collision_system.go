package systems

import (
	"github.com/decker502/cannonade/pkg/components"
	"github.com/decker502/cannonade/pkg/ecs"
	"github.com/decker502/cannonade/pkg/hooks"
)

// CollisionSystem 检测炮弹与敌人的球形碰撞
// 命中的敌人进入 Dead 状态；炮弹不会因命中而消失，继续飞行直到落地
type CollisionSystem struct {
	em      *ecs.EntityManager
	effects hooks.Effects
	kills   int
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, effects hooks.Effects) *CollisionSystem {
	return &CollisionSystem{
		em:      em,
		effects: hooks.OrEffects(effects),
	}
}

// Update 检测所有启用的碰撞体
func (s *CollisionSystem) Update(deltaTime float64) {
	projectiles := ecs.GetEntitiesWith3[
		*components.ProjectileComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.em)
	if len(projectiles) == 0 {
		return
	}
	enemies := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.em)

	for _, pid := range projectiles {
		pPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, pid)
		pCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, pid)
		if !pCol.Enabled {
			continue
		}

		for _, eid := range enemies {
			ePos, _ := ecs.GetComponent[*components.PositionComponent](s.em, eid)
			eCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, eid)
			if !eCol.Enabled {
				continue
			}
			if !overlaps(pPos, pCol, ePos, eCol) {
				continue
			}
			if KillEnemy(s.em, eid, s.effects) {
				s.kills++
			}
		}
	}
}

// Kills 累计击杀数
func (s *CollisionSystem) Kills() int {
	return s.kills
}

// overlaps 两个球体是否相交（含相切）
func overlaps(p1 *components.PositionComponent, c1 *components.CollisionComponent,
	p2 *components.PositionComponent, c2 *components.CollisionComponent) bool {
	center1 := p1.Vec3
	center1.Y += c1.OffsetY
	center2 := p2.Vec3
	center2.Y += c2.OffsetY

	r := c1.Radius + c2.Radius
	return center1.Sub(center2).LenSq() <= r*r
}
