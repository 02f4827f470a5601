package vecmath

import "math"

// MinTurnLenSq 水平方向长度平方低于该值时不更新朝向
const MinTurnLenSq = 0.001

// YawTowards 计算水平方向 dir 对应的朝向角
//
// 返回:
//   - float64: 朝向角（弧度）
//   - bool: dir 在水平面上过短时返回 false，调用方应保持原朝向
func YawTowards(dir Vec3) (float64, bool) {
	flat := dir.Flat()
	if flat.LenSq() <= MinTurnLenSq {
		return 0, false
	}
	return math.Atan2(flat.X, flat.Z), true
}

// WrapAngle 将角度规范到 (-π, π]
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// LerpAngle 沿最短弧从 from 插值到 to
// t 会被限制在 [0, 1]，t=1 时直接返回 to
func LerpAngle(from, to, t float64) float64 {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return WrapAngle(to)
	}
	delta := WrapAngle(to - from)
	return WrapAngle(from + delta*t)
}

// Forward 朝向角对应的水平单位方向
func Forward(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}

// RotateY 绕 Y 轴旋转向量 v，使局部 +Z 对齐朝向 yaw
func RotateY(v Vec3, yaw float64) Vec3 {
	s, c := math.Sin(yaw), math.Cos(yaw)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}
