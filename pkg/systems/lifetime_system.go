package systems

import (
	"github.com/decker502/cannonade/pkg/components"
	"github.com/decker502/cannonade/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
// 用于死亡敌人和落地炮弹的延迟移除
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体
// 返回本帧新过期（被标记删除）的实体数量
func (s *LifetimeSystem) Update(deltaTime float64) int {
	expired := 0
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.IsExpired {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime < lifetime.MaxLifetime {
			continue
		}

		// 过期后标记删除，由 RemoveMarkedEntities 统一清理
		lifetime.IsExpired = true
		s.entityManager.DestroyEntity(id)
		expired++
	}
	return expired
}
