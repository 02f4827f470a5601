package components

import "github.com/decker502/cannonade/pkg/vecmath"

// PositionComponent 实体的世界坐标
type PositionComponent struct {
	vecmath.Vec3
}

// VelocityComponent 实体的速度（单位/秒）
// 敌人每帧写入实际移动速度，炮弹由物理系统积分
type VelocityComponent struct {
	vecmath.Vec3
}

// HeadingComponent 水平朝向（弧度，0 指向 +Z）
type HeadingComponent struct {
	Yaw float64
}
