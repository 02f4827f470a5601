package entities

import (
	"fmt"
	"log"

	"github.com/decker502/cannonade/pkg/components"
	"github.com/decker502/cannonade/pkg/config"
	"github.com/decker502/cannonade/pkg/ecs"
	"github.com/decker502/cannonade/pkg/vecmath"
)

// NewEnemy 创建敌人实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 敌人配置（速度、转向、攻击延迟等）
//   - position: 生成位置
//   - path: 共享路线引用；nil 或空路线时敌人原地待命
//
// 返回:
//   - ecs.EntityID: 敌人实体ID
//   - error: em 为 nil 时返回错误
func NewEnemy(em *ecs.EntityManager, cfg config.EnemyConfig, position vecmath.Vec3, path *components.Waypath) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{Vec3: position})
	ecs.AddComponent(em, id, &components.VelocityComponent{})

	// 初始朝向第一个路线点
	heading := &components.HeadingComponent{}
	if path.Len() > 0 {
		if yaw, ok := vecmath.YawTowards(path.At(0).Sub(position)); ok {
			heading.Yaw = yaw
		}
	}
	ecs.AddComponent(em, id, heading)

	anim := components.AnimIdle
	if path.Len() > 0 {
		anim = components.AnimWalk
	}
	ecs.AddComponent(em, id, &components.EnemyComponent{
		State:               components.EnemyMoving,
		Path:                path,
		Speed:               cfg.MoveSpeed,
		TurnRate:            cfg.TurnRate,
		ArrivalThreshold:    cfg.ArrivalThreshold,
		PreAttackDelay:      cfg.PreAttackDelay,
		AttackToSignalDelay: cfg.AttackToSignalDelay,
		DeathRemovalDelay:   cfg.DeathRemovalDelay,
		Anim:                anim,
	})

	ecs.AddComponent(em, id, &components.CollisionComponent{
		Radius:  cfg.Radius,
		OffsetY: cfg.Radius, // 位置在脚底，球心抬高一个半径
		Enabled: true,
	})

	log.Printf("[EnemyFactory] 创建敌人 %d: pos=%v, waypoints=%d", id, position, path.Len())
	return id, nil
}
