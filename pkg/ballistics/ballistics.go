// Package ballistics 求解抛射体的发射速度与预测轨迹
//
// 采用解析闭式解（不做数值积分），相同输入总是得到相同输出。
// 重力为常量、无空气阻力，预测轨迹与实际飞行轨迹一致。
package ballistics

import (
	"math"

	"github.com/decker502/cannonade/pkg/vecmath"
)

// Epsilon 最小爬升高度，保证目标高于发射点时仍有正的上升段
const Epsilon = 0.1

// Solution 一次发射求解的完整结果
type Solution struct {
	Velocity   vecmath.Vec3 // 发射速度
	ApexHeight float64      // 实际使用的顶点高度（相对发射点）
	TimeUp     float64      // 上升到顶点的时间
	TimeDown   float64      // 从顶点落到目标高度的时间
}

// FlightTime 总飞行时间
func (s Solution) FlightTime() float64 {
	return s.TimeUp + s.TimeDown
}

// Solve 计算从 start 命中 end 的发射方案
//
// 参数:
//   - start: 发射点
//   - end: 目标点
//   - desiredApexHeight: 期望的顶点高度（相对发射点）
//   - gravity: 重力加速度大小（正值）
//
// 顶点高度取 max(desiredApexHeight, heightDiff+Epsilon)。
// 水平位移为零时水平速度为零向量；总时间恒大于零，不会除零。
func Solve(start, end vecmath.Vec3, desiredApexHeight, gravity float64) Solution {
	displacement := end.Sub(start)
	horizontal := displacement.Flat()
	heightDiff := displacement.Y

	h := math.Max(desiredApexHeight, heightDiff+Epsilon)

	tUp := math.Sqrt(2 * h / gravity)
	tDown := math.Sqrt(2 * math.Max(Epsilon, h-heightDiff) / gravity)
	total := tUp + tDown

	vertical := vecmath.Up.Scale(math.Sqrt(2 * gravity * h))
	horizontalVelocity := horizontal.Scale(1 / total)

	return Solution{
		Velocity:   horizontalVelocity.Add(vertical),
		ApexHeight: h,
		TimeUp:     tUp,
		TimeDown:   tDown,
	}
}

// ComputeLaunchVelocity 计算命中目标所需的发射速度
func ComputeLaunchVelocity(start, end vecmath.Vec3, desiredApexHeight, gravity float64) vecmath.Vec3 {
	return Solve(start, end, desiredApexHeight, gravity).Velocity
}

// FlightTime 计算命中目标所需的总飞行时间
func FlightTime(start, end vecmath.Vec3, desiredApexHeight, gravity float64) float64 {
	return Solve(start, end, desiredApexHeight, gravity).FlightTime()
}

// PositionAt 纯运动学位置：start + v*t + 0.5*g*t²
func PositionAt(start, velocity, gravity vecmath.Vec3, t float64) vecmath.Vec3 {
	return start.Add(velocity.Scale(t)).Add(gravity.Scale(0.5 * t * t))
}

// SampleTrajectory 按固定时间步长采样预测轨迹
//
// 第 i 个点为 PositionAt(start, velocity, gravity, i*timeStep)。
// pointCount <= 0 时返回空切片。
func SampleTrajectory(start, velocity, gravity vecmath.Vec3, timeStep float64, pointCount int) []vecmath.Vec3 {
	if pointCount <= 0 {
		return []vecmath.Vec3{}
	}
	points := make([]vecmath.Vec3, pointCount)
	for i := range points {
		t := float64(i) * timeStep
		points[i] = PositionAt(start, velocity, gravity, t)
	}
	return points
}

// GravityVector 由重力大小构造向下的重力向量
func GravityVector(magnitude float64) vecmath.Vec3 {
	return vecmath.Vec3{Y: -magnitude}
}
