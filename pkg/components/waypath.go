package components

import "github.com/decker502/cannonade/pkg/vecmath"

// Waypath 敌人行进路线
//
// 由关卡配置创建一次，之后只读；同一刷怪点生成的所有敌人共享同一个 *Waypath，
// 敌人只持有引用，不复制路线点。
type Waypath struct {
	points []vecmath.Vec3
}

// NewWaypath 用给定路线点创建路线（复制一次输入切片）
func NewWaypath(points []vecmath.Vec3) *Waypath {
	cp := make([]vecmath.Vec3, len(points))
	copy(cp, points)
	return &Waypath{points: cp}
}

// Len 路线点数量，nil 路线返回 0
func (w *Waypath) Len() int {
	if w == nil {
		return 0
	}
	return len(w.points)
}

// At 第 i 个路线点
func (w *Waypath) At(i int) vecmath.Vec3 {
	return w.points[i]
}

// Last 最后一个路线点的索引，空路线返回 -1
func (w *Waypath) Last() int {
	return w.Len() - 1
}

// Points 返回路线点副本（用于渲染/快照）
func (w *Waypath) Points() []vecmath.Vec3 {
	if w == nil {
		return nil
	}
	cp := make([]vecmath.Vec3, len(w.points))
	copy(cp, w.points)
	return cp
}
