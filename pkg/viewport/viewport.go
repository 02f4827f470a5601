// Package viewport 把地面矩形映射到屏幕（俯视、等比缩放、居中）
package viewport

import (
	"math"

	"github.com/decker502/cannonade/pkg/config"
)

// Viewport 俯视投影
//
// 世界 +X 向右，世界 +Z 向屏幕上方；高度 Y 不参与投影。
type Viewport struct {
	area    config.AreaConfig
	scale   float64 // 像素/世界单位
	originX float64 // 世界 (MinX, MaxZ) 对应的屏幕坐标
	originY float64
}

// New 创建视口
//
// 参数:
//   - area: 可玩区域
//   - screenW, screenH: 逻辑屏幕尺寸
//   - margin: 四周留白（像素）
func New(area config.AreaConfig, screenW, screenH, margin float64) *Viewport {
	worldW := area.MaxX - area.MinX
	worldH := area.MaxZ - area.MinZ
	availW := math.Max(screenW-2*margin, 1)
	availH := math.Max(screenH-2*margin, 1)

	scale := math.Min(availW/worldW, availH/worldH)
	return &Viewport{
		area:    area,
		scale:   scale,
		originX: (screenW - worldW*scale) / 2,
		originY: (screenH - worldH*scale) / 2,
	}
}

// Scale 像素/世界单位
func (v *Viewport) Scale() float64 { return v.scale }

// WorldToScreen 世界坐标 (x, z) → 屏幕坐标
func (v *Viewport) WorldToScreen(x, z float64) (float64, float64) {
	sx := v.originX + (x-v.area.MinX)*v.scale
	sy := v.originY + (v.area.MaxZ-z)*v.scale
	return sx, sy
}

// ScreenToWorld 屏幕坐标 → 世界坐标 (x, z)
// ok 为 false 表示该点不在可玩区域内
func (v *Viewport) ScreenToWorld(sx, sy float64) (x, z float64, ok bool) {
	x = v.area.MinX + (sx-v.originX)/v.scale
	z = v.area.MaxZ - (sy-v.originY)/v.scale
	return x, z, v.area.Contains(x, z)
}
