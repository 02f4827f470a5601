package app

import (
	"image/color"
	"math"

	"github.com/decker502/cannonade/pkg/components"
	"github.com/decker502/cannonade/pkg/game"
	"github.com/decker502/cannonade/pkg/vecmath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorBackground     = color.RGBA{R: 0x2a, G: 0x3b, B: 0x24, A: 0xff}
	colorArea           = color.RGBA{R: 0x5c, G: 0x7a, B: 0x4a, A: 0xff}
	colorPath           = color.RGBA{R: 0x9b, G: 0x83, B: 0x5a, A: 0xff}
	colorCannon         = color.RGBA{R: 0x40, G: 0x40, B: 0x48, A: 0xff}
	colorBarrel         = color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xff}
	colorEnemy          = color.RGBA{R: 0xc8, G: 0x50, B: 0x40, A: 0xff}
	colorEnemyAttacking = color.RGBA{R: 0xff, G: 0xa0, B: 0x20, A: 0xff}
	colorEnemyDead      = color.RGBA{R: 0x60, G: 0x50, B: 0x50, A: 0xff}
	colorProjectile     = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	colorPreview        = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xa0}
	colorTarget         = color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
	colorText           = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	colorHint           = color.RGBA{R: 0xb0, G: 0xb8, B: 0xa8, A: 0xff}
	colorLose           = color.RGBA{R: 0xff, G: 0x60, B: 0x60, A: 0xff}
	colorReloadReady    = color.RGBA{R: 0x60, G: 0xd0, B: 0x60, A: 0xff}
	colorReloading      = color.RGBA{R: 0xd0, G: 0xa0, B: 0x40, A: 0xff}
	colorButton         = color.RGBA{R: 0x38, G: 0x58, B: 0x90, A: 0xff}
	colorButtonDisabled = color.RGBA{R: 0x48, G: 0x48, B: 0x50, A: 0xff}
)

// heightScale 高度在俯视图上的半径放大系数
const heightScale = 0.08

func (a *App) screenOf(p vecmath.Vec3) (float32, float32) {
	x, y := a.vp.WorldToScreen(p.X, p.Z)
	return float32(x), float32(y)
}

func (a *App) worldRadius(r float64) float32 {
	return float32(math.Max(1, r*a.vp.Scale()))
}

// drawWorld 俯视绘制区域、路线、大炮、敌人与炮弹
func (a *App) drawWorld(screen *ebiten.Image, snap game.Snapshot) {
	area := a.level.Area
	x0, y0 := a.vp.WorldToScreen(area.MinX, area.MaxZ)
	x1, y1 := a.vp.WorldToScreen(area.MaxX, area.MinZ)
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), colorArea, false)

	for i := 1; i < len(snap.Waypath); i++ {
		ax, ay := a.screenOf(snap.Waypath[i-1])
		bx, by := a.screenOf(snap.Waypath[i])
		vector.StrokeLine(screen, ax, ay, bx, by, 6, colorPath, true)
	}
	if n := len(snap.Waypath); n > 0 {
		ex, ey := a.screenOf(snap.Waypath[n-1])
		vector.StrokeCircle(screen, ex, ey, 10, 2, colorLose, true)
	}

	a.drawPreview(screen)
	a.drawCannon(screen, snap.Cannon)

	for _, e := range snap.Enemies {
		x, y := a.screenOf(e.Position)
		r := a.worldRadius(e.Radius)
		clr := colorEnemy
		switch e.State {
		case components.EnemyAttacking.String():
			clr = colorEnemyAttacking
		case components.EnemyDead.String():
			clr = colorEnemyDead
		}
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
		if e.State != components.EnemyDead.String() {
			f := vecmath.Forward(e.Yaw).Scale(e.Radius * 1.5)
			fx, fy := a.screenOf(e.Position.Add(f))
			vector.StrokeLine(screen, x, y, fx, fy, 2, colorText, true)
		}
	}

	for _, p := range snap.Projectiles {
		x, y := a.screenOf(p.Position)
		// 离地越高画得越大
		r := a.worldRadius(p.Radius) * float32(1+math.Max(0, p.Position.Y-a.level.GroundHeight)*heightScale)
		vector.DrawFilledCircle(screen, x, y, r, colorProjectile, true)
	}
}

func (a *App) drawCannon(screen *ebiten.Image, c game.CannonView) {
	x, y := a.screenOf(c.Position)
	mx, my := a.screenOf(c.Muzzle)
	vector.DrawFilledCircle(screen, x, y, a.worldRadius(0.8), colorCannon, true)
	vector.StrokeLine(screen, x, y, mx, my, 5, colorBarrel, true)

	if c.HasTarget {
		tx, ty := a.screenOf(c.Target)
		vector.StrokeCircle(screen, tx, ty, 8, 2, colorTarget, true)
		vector.StrokeLine(screen, tx-5, ty, tx+5, ty, 1, colorTarget, true)
		vector.StrokeLine(screen, tx, ty-5, tx, ty+5, 1, colorTarget, true)
	}
}

// drawPreview 预测轨迹，点的大小随高度变化
func (a *App) drawPreview(screen *ebiten.Image) {
	for i, p := range a.preview {
		x, y := a.screenOf(p)
		r := float32(1.5 + math.Max(0, p.Y-a.level.GroundHeight)*heightScale*a.vp.Scale()*0.1)
		vector.DrawFilledCircle(screen, x, y, r, colorPreview, true)
		if i > 0 {
			px, py := a.screenOf(a.preview[i-1])
			vector.StrokeLine(screen, px, py, x, y, 1, colorPreview, true)
		}
	}
}
