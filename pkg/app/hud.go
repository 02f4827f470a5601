package app

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/cannonade/pkg/game"
	"github.com/decker502/cannonade/pkg/hooks"
	"github.com/decker502/cannonade/pkg/utils"
	"github.com/decker502/cannonade/pkg/vecmath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// flash 短暂的屏幕特效
type flash struct {
	effect hooks.EffectID
	ttl    float64
	total  float64
}

var flashDurations = map[hooks.EffectID]float64{
	hooks.EffectFire:   0.15,
	hooks.EffectMuzzle: 0.2,
	hooks.EffectHit:    0.3,
	hooks.EffectLose:   1.2,
}

// SetFireEnabled 实现 hooks.HUD
func (a *App) SetFireEnabled(enabled bool) {
	a.fireEnabled = enabled
}

// SetReloadProgress 实现 hooks.HUD
func (a *App) SetReloadProgress(progress float64) {
	a.reloadProgress = progress
}

// ShowStartPrompt 实现 hooks.HUD
func (a *App) ShowStartPrompt() {
	a.startPrompt = true
	a.losePrompt = false
}

// HideStartPrompt 实现 hooks.HUD
func (a *App) HideStartPrompt() {
	a.startPrompt = false
}

// ShowLosePrompt 实现 hooks.HUD
func (a *App) ShowLosePrompt() {
	a.losePrompt = true
}

// SetTrajectoryPreview 实现 hooks.TrajectoryRenderer
func (a *App) SetTrajectoryPreview(points []vecmath.Vec3) {
	a.preview = append(a.preview[:0], points...)
}

// Play 实现 hooks.Effects：以屏幕闪光代替音效
func (a *App) Play(effect hooks.EffectID) {
	d, ok := flashDurations[effect]
	if !ok {
		log.Printf("[App] 未知特效: %s", effect)
		return
	}
	log.Printf("[App] 特效: %s", effect)
	if a.sounds != nil {
		a.sounds.Play(effect)
	}
	a.flashes = append(a.flashes, flash{effect: effect, ttl: d, total: d})
}

func (a *App) updateFlashes(dt float64) {
	alive := a.flashes[:0]
	for _, f := range a.flashes {
		f.ttl -= dt
		if f.ttl > 0 {
			alive = append(alive, f)
		}
	}
	a.flashes = alive
}

func (a *App) drawFlashes(screen *ebiten.Image) {
	for _, f := range a.flashes {
		alpha := uint8(utils.EaseOutCubic(f.ttl/f.total) * 120)
		switch f.effect {
		case hooks.EffectLose:
			vector.DrawFilledRect(screen, 0, 0, ScreenWidth, ScreenHeight, color.RGBA{R: alpha, A: alpha}, false)
		case hooks.EffectHit:
			vector.StrokeRect(screen, 2, 2, ScreenWidth-4, ScreenHeight-4, 4, color.RGBA{R: alpha, G: alpha, B: alpha, A: alpha}, false)
		}
	}
}

func (a *App) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	a.drawText(screen, fmt.Sprintf("STATE %s   TIME %5.1fs   KILLS %d   SHOTS %d   SPAWNED %d",
		snap.State, snap.Time, snap.Kills, snap.Shots, snap.Spawned), 12, 12, colorText)
	a.drawText(screen, "hold LMB: aim   SPACE: fire   F11: fullscreen", 12, 30, colorHint)

	// 装填进度条
	const barX, barY, barW, barH = 12, ScreenHeight - 30, 200, 12
	vector.StrokeRect(screen, barX, barY, barW, barH, 1, colorText, false)
	fill := colorReloadReady
	if a.reloadProgress < 1 {
		fill = colorReloading
	}
	vector.DrawFilledRect(screen, barX+1, barY+1, float32((barW-2)*a.reloadProgress), barH-2, fill, false)
	a.drawText(screen, "RELOAD", barX+barW+8, barY, colorText)

	switch {
	case a.startPrompt:
		a.drawCentered(screen, "PRESS ENTER OR CLICK START", ScreenHeight/2-50, colorText)
		a.drawButton(screen, a.startButton, true)
	case a.losePrompt:
		a.drawCentered(screen, fmt.Sprintf("THE LINE HAS FALLEN   survived %.1fs   kills %d",
			a.session.Survived(), snap.Kills), ScreenHeight/2-10, colorLose)
		a.drawButton(screen, a.restartButton, true)
	default:
		a.drawButton(screen, a.fireButton, a.fireEnabled)
	}
}

func (a *App) drawButton(screen *ebiten.Image, b button, enabled bool) {
	bg := colorButton
	if !enabled {
		bg = colorButtonDisabled
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1, colorText, false)
	w, h := text.Measure(b.label, a.face, 0)
	a.drawText(screen, b.label, b.x+(b.w-w)/2, b.y+(b.h-h)/2, colorText)
}

func (a *App) drawCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	w, _ := text.Measure(s, a.face, 0)
	a.drawText(screen, s, (ScreenWidth-w)/2, y, clr)
}

func (a *App) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, a.face, op)
}
