// Package vecmath 提供模拟使用的三维向量运算
//
// 坐标系约定：Y 轴向上，XZ 平面为地面。
// 朝向（Yaw）以弧度表示，0 指向 +Z，正值向 +X 旋转。
package vecmath

import "math"

// Vec3 三维浮点向量（位置或方向）
type Vec3 struct {
	X float64 `yaml:"x" msgpack:"x"`
	Y float64 `yaml:"y" msgpack:"y"`
	Z float64 `yaml:"z" msgpack:"z"`
}

// Zero 零向量
var Zero = Vec3{}

// Up 世界向上方向
var Up = Vec3{Y: 1}

// V3 构造向量的简写
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// LenSq 长度的平方
func (v Vec3) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize 返回单位向量，零向量返回零向量
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	inv := 1.0 / l
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Flat 投影到水平面（Y 置零）
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// Dist 两点间距离
func Dist(a, b Vec3) float64 {
	return a.Sub(b).Len()
}

// FlatDist 两点在水平面上的距离
func FlatDist(a, b Vec3) float64 {
	return a.Sub(b).Flat().Len()
}

// ApproxEqual 按分量比较，容差为 eps
func ApproxEqual(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}
