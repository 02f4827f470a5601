package game

import (
	"github.com/decker502/cannonade/pkg/components"
	"github.com/decker502/cannonade/pkg/ecs"
	"github.com/decker502/cannonade/pkg/vecmath"
)

// Snapshot 某一帧的只读视图，供渲染与观战推流使用
type Snapshot struct {
	SessionID      string           `msgpack:"session"`
	Tick           uint64           `msgpack:"tick"`
	Time           float64          `msgpack:"time"`
	State          string           `msgpack:"state"`
	ReloadProgress float64          `msgpack:"reload"`
	Kills          int              `msgpack:"kills"`
	Shots          int              `msgpack:"shots"`
	Spawned        int              `msgpack:"spawned"`
	Cannon         CannonView       `msgpack:"cannon"`
	Enemies        []EnemyView      `msgpack:"enemies"`
	Projectiles    []ProjectileView `msgpack:"projectiles"`
	Preview        []vecmath.Vec3   `msgpack:"preview"`
	Waypath        []vecmath.Vec3   `msgpack:"waypath"`
}

// CannonView 大炮状态
type CannonView struct {
	Position  vecmath.Vec3 `msgpack:"pos"`
	Muzzle    vecmath.Vec3 `msgpack:"muzzle"`
	Yaw       float64      `msgpack:"yaw"`
	Target    vecmath.Vec3 `msgpack:"target"`
	HasTarget bool         `msgpack:"hasTarget"`
	Aiming    bool         `msgpack:"aiming"`
}

// EnemyView 敌人状态
type EnemyView struct {
	ID       uint64       `msgpack:"id"`
	Position vecmath.Vec3 `msgpack:"pos"`
	Velocity vecmath.Vec3 `msgpack:"vel"`
	Yaw      float64      `msgpack:"yaw"`
	State    string       `msgpack:"state"`
	Anim     string       `msgpack:"anim"`
	Waypoint int          `msgpack:"waypoint"`
	Radius   float64      `msgpack:"radius"`
}

// ProjectileView 炮弹状态
type ProjectileView struct {
	ID       uint64       `msgpack:"id"`
	Position vecmath.Vec3 `msgpack:"pos"`
	Velocity vecmath.Vec3 `msgpack:"vel"`
	Grounded bool         `msgpack:"grounded"`
	Radius   float64      `msgpack:"radius"`
}

// Snapshot 生成当前帧快照（所有切片均为副本）
func (s *Session) Snapshot() Snapshot {
	target, hasTarget := s.cannon.Target()
	snap := Snapshot{
		SessionID:      s.id,
		Tick:           s.tick,
		Time:           s.time,
		State:          s.round.State().String(),
		ReloadProgress: s.round.ReloadProgress(),
		Kills:          s.collisions.Kills(),
		Shots:          s.round.Shots(),
		Spawned:        s.spawner.Spawned(),
		Cannon: CannonView{
			Position:  s.cannon.Position(),
			Muzzle:    s.cannon.Muzzle(),
			Yaw:       s.cannon.Yaw(),
			Target:    target,
			HasTarget: hasTarget,
			Aiming:    s.cannon.IsAiming(),
		},
		Preview: append([]vecmath.Vec3(nil), s.cannon.Preview()...),
		Waypath: s.path.Points(),
	}

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		view := EnemyView{
			ID:       uint64(id),
			Position: pos.Vec3,
			State:    enemy.State.String(),
			Anim:     string(enemy.Anim),
			Waypoint: enemy.WaypointIndex,
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id); ok {
			view.Velocity = vel.Vec3
		}
		if heading, ok := ecs.GetComponent[*components.HeadingComponent](s.em, id); ok {
			view.Yaw = heading.Yaw
		}
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
			view.Radius = col.Radius
		}
		snap.Enemies = append(snap.Enemies, view)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		view := ProjectileView{
			ID:       uint64(id),
			Position: pos.Vec3,
			Grounded: proj.Grounded,
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id); ok {
			view.Velocity = vel.Vec3
		}
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
			view.Radius = col.Radius
		}
		snap.Projectiles = append(snap.Projectiles, view)
	}

	return snap
}
