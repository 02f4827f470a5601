package ecs

import (
	"reflect"
	"slices"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y, Z float64
}

type testVelocityComponent struct {
	VX, VY, VZ float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始，0保留为无效ID
	if id1 != 1 || id2 != 2 {
		t.Errorf("IDs = %d, %d, want 1, 2", id1, id2)
	}
	if em.Count() != 2 {
		t.Errorf("Count = %d, want 2", em.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 1, Y: 2, Z: 3})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	if got := comp.(*testPositionComponent); *got != (testPositionComponent{1, 2, 3}) {
		t.Errorf("Component data mismatch, got %+v", *got)
	}

	// 泛型版本
	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok || pos.Z != 3 {
		t.Errorf("GetComponent[T] = %+v, %v", pos, ok)
	}
	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("未添加的组件不应被找到")
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	AddComponent(em, EntityID(42), &testPositionComponent{})
	if HasComponent[*testPositionComponent](em, 42) {
		t.Error("不存在的实体不应获得组件")
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})
	AddComponent(em, id, &testVelocityComponent{})

	RemoveComponent[*testVelocityComponent](em, id)

	if HasComponent[*testVelocityComponent](em, id) {
		t.Error("Velocity should be removed")
	}
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Position should remain")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)
	em.DestroyEntity(id) // 重复标记

	// 清理前实体仍存在
	if !em.Exists(id) || !em.IsMarkedForDestroy(id) {
		t.Error("Entity should still exist and be marked before cleanup")
	}

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if em.Exists(id) || em.IsMarkedForDestroy(id) {
		t.Error("Entity should be removed after cleanup")
	}

	// 已清理的实体再次标记不会出错
	em.DestroyEntity(id)
	if removed := em.RemoveMarkedEntities(); removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
}

func TestGetEntitiesWithSorted(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testVelocityComponent{})
		}
		ids = append(ids, id)
	}

	all := GetEntitiesWith1[*testPositionComponent](em)
	if !slices.Equal(all, ids) {
		t.Errorf("查询结果应按ID升序, got %v", all)
	}

	moving := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(moving) != 10 {
		t.Fatalf("len = %d, want 10", len(moving))
	}
	if !slices.IsSorted(moving) {
		t.Errorf("结果未排序: %v", moving)
	}
	for _, id := range moving {
		pos, _ := GetComponent[*testPositionComponent](em, id)
		if int(pos.X)%2 != 0 {
			t.Errorf("实体 %d 不应拥有 Velocity", id)
		}
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})
	em.AddComponent(id3, &testPositionComponent{})

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)
	em.RemoveMarkedEntities()

	got := GetEntitiesWith1[*testPositionComponent](em)
	if !slices.Equal(got, []EntityID{id2}) {
		t.Errorf("remaining = %v, want [%d]", got, id2)
	}
}

func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 500; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{})
		if i%3 == 0 {
			AddComponent(em, id, &testVelocityComponent{})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	}
}
