package entities

import (
	"fmt"
	"log"

	"github.com/decker502/cannonade/pkg/components"
	"github.com/decker502/cannonade/pkg/config"
	"github.com/decker502/cannonade/pkg/ecs"
	"github.com/decker502/cannonade/pkg/vecmath"
)

// NewProjectile 创建炮弹实体
// 炮弹从炮口以给定初速度发射，此后只受重力影响
//
// 参数:
//   - em: 实体管理器
//   - cfg: 炮弹配置（半径、落地保留时间）
//   - position: 发射点（炮口世界坐标）
//   - velocity: 发射速度
//
// 返回:
//   - ecs.EntityID: 创建的炮弹实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewProjectile(em *ecs.EntityManager, cfg config.ProjectileConfig, position, velocity vecmath.Vec3) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{Vec3: position})
	ecs.AddComponent(em, id, &components.VelocityComponent{Vec3: velocity})
	ecs.AddComponent(em, id, &components.ProjectileComponent{
		GroundLinger: cfg.GroundLinger,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Radius:  cfg.Radius,
		Enabled: true,
	})

	log.Printf("[ProjectileFactory] 创建炮弹 %d: pos=%v, v=%v", id, position, velocity)
	return id, nil
}
