package systems

import (
	"math"
	"testing"

	"github.com/decker502/cannonade/pkg/ballistics"
	"github.com/decker502/cannonade/pkg/components"
	"github.com/decker502/cannonade/pkg/config"
	"github.com/decker502/cannonade/pkg/ecs"
	"github.com/decker502/cannonade/pkg/entities"
	"github.com/decker502/cannonade/pkg/hooks"
	"github.com/decker502/cannonade/pkg/vecmath"
)

const gravity = 9.81

var testProjectileConfig = config.ProjectileConfig{Radius: 0.35, GroundLinger: 1}

// TestProjectileFollowsPredictedTrajectory 实际飞行轨迹与预览采样一致
func TestProjectileFollowsPredictedTrajectory(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewProjectileSystem(em, gravity, hooks.FlatTerrain(0))

	start := vecmath.V3(-12, 1.2, -8)
	target := vecmath.V3(3, 0, 4)
	v := ballistics.ComputeLaunchVelocity(start, target, 5, gravity)

	id, err := entities.NewProjectile(em, testProjectileConfig, start, v)
	if err != nil {
		t.Fatal(err)
	}

	const step = 0.1
	preview := ballistics.SampleTrajectory(start, v, ballistics.GravityVector(gravity), step, 30)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)

	for i := 1; i < len(preview); i++ {
		sys.Update(step)
		if proj.Grounded {
			break
		}
		if !vecmath.ApproxEqual(pos.Vec3, preview[i], 1e-9) {
			t.Fatalf("step %d: pos = %v, preview = %v", i, pos.Vec3, preview[i])
		}
	}
}

func TestProjectileLandsNearTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewProjectileSystem(em, gravity, nil)
	lifetime := NewLifetimeSystem(em)

	start := vecmath.V3(0, 1, 0)
	target := vecmath.V3(8, 0, -6)
	sol := ballistics.Solve(start, target, 4, gravity)
	id, _ := entities.NewProjectile(em, testProjectileConfig, start, sol.Velocity)

	proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

	elapsed := 0.0
	for !proj.Grounded && elapsed < 10 {
		sys.Update(testDT)
		elapsed += testDT
	}

	if !proj.Grounded {
		t.Fatal("炮弹应落地")
	}
	if math.Abs(elapsed-sol.FlightTime()) > 2*testDT {
		t.Errorf("落地时间 = %.3f, want %.3f", elapsed, sol.FlightTime())
	}
	if pos.Y != 0 {
		t.Errorf("落地高度 = %v, want 0", pos.Y)
	}
	if d := vecmath.FlatDist(pos.Vec3, target); d > 0.2 {
		t.Errorf("落点距目标 %.3f", d)
	}

	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	if col.Enabled {
		t.Error("落地后碰撞体应关闭")
	}

	// 落地后位置保持不变，1 秒后移除
	landed := pos.Vec3
	removedAfter := 0.0
	for em.Exists(id) && removedAfter < 3 {
		sys.Update(testDT)
		lifetime.Update(testDT)
		em.RemoveMarkedEntities()
		removedAfter += testDT
		if em.Exists(id) && pos.Vec3 != landed {
			t.Fatal("落地的炮弹不应移动")
		}
	}
	if em.Exists(id) {
		t.Fatal("落地的炮弹应被移除")
	}
	if math.Abs(removedAfter-1) > 2*testDT {
		t.Errorf("移除延迟 = %.3f, want 1", removedAfter)
	}
}

func TestProjectileLaunchedBelowGroundRises(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewProjectileSystem(em, gravity, hooks.FlatTerrain(2))

	id, _ := entities.NewProjectile(em, testProjectileConfig, vecmath.V3(0, 1, 0), vecmath.V3(1, 10, 0))
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)

	sys.Update(testDT)
	if proj.Grounded {
		t.Error("上升中的炮弹不应判定落地")
	}
}
