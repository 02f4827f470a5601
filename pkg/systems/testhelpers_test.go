package systems

import (
	"testing"

	"github.com/decker502/cannonade/pkg/components"
	"github.com/decker502/cannonade/pkg/config"
	"github.com/decker502/cannonade/pkg/ecs"
	"github.com/decker502/cannonade/pkg/entities"
	"github.com/decker502/cannonade/pkg/vecmath"
)

const testDT = 1.0 / 60.0

// countingReporter 记录收到的攻击信号次数
type countingReporter struct {
	count int
}

func (r *countingReporter) ReportAttack() { r.count++ }

// fakeGate 可控的回合状态
type fakeGate struct {
	started, over bool
}

func (g *fakeGate) IsGameStarted() bool { return g.started }
func (g *fakeGate) IsGameOver() bool { return g.over }

func testEnemyConfig() config.EnemyConfig {
	return config.EnemyConfig{
		MoveSpeed:           1,
		TurnRate:            5,
		ArrivalThreshold:    0.2,
		PreAttackDelay:      2,
		AttackToSignalDelay: 1,
		DeathRemovalDelay:   3,
		Radius:              0.5,
		SpawnHeight:         0.08,
	}
}

func mustEnemy(t *testing.T, em *ecs.EntityManager, pos vecmath.Vec3, path *components.Waypath) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(em, testEnemyConfig(), pos, path)
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}
	return id
}

func enemyOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.EnemyComponent {
	t.Helper()
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
	if !ok {
		t.Fatalf("实体 %d 没有 EnemyComponent", id)
	}
	return enemy
}

// threePointPath 总长 6 的三段路线
func threePointPath() *components.Waypath {
	return components.NewWaypath([]vecmath.Vec3{
		vecmath.V3(2, 0, 0),
		vecmath.V3(2, 0, 2),
		vecmath.V3(4, 0, 2),
	})
}
