package app

import (
	"github.com/decker502/cannonade/pkg/vecmath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// button 屏幕上的矩形按钮
type button struct {
	x, y, w, h float64
	label      string
}

func (b button) contains(px, py float64) bool {
	return px >= b.x && px <= b.x+b.w && py >= b.y && py <= b.y+b.h
}

// capturePointer 在按钮上按下的指针被界面占用，直到松开为止
//
// 必须在处理命令之前调用：START 点击后提示立即隐藏，
// 若不锁定，同一次按住会被大炮当作瞄准。
func (a *App) capturePointer(x, y float64, pressed, clicked bool) {
	if !pressed {
		a.pointerCaptured = false
		return
	}
	if clicked && a.overButton(x, y) {
		a.pointerCaptured = true
	}
}

// pointerOverUI 指针是否被界面占用
func (a *App) pointerOverUI(x, y float64) bool {
	return a.pointerCaptured || a.overButton(x, y)
}

func (a *App) overButton(x, y float64) bool {
	for _, b := range a.visibleButtons() {
		if b.contains(x, y) {
			return true
		}
	}
	return false
}

// handleCommands 处理开始、开火、重开命令
//
//	Enter / 点击 START:   开始回合
//	Space / 点击 FIRE:    开火
//	R / 点击 RESTART:     失败后重开
func (a *App) handleCommands() {
	mx, my := a.PointerPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	round := a.session.Round()

	switch {
	case !round.IsGameStarted():
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || (clicked && a.startButton.contains(mx, my)) {
			a.session.StartGame()
		}
	case round.IsGameOver():
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || (clicked && a.restartButton.contains(mx, my)) {
			a.session.Restart()
			a.reloadProgress = 1
			a.preview = a.preview[:0]
		}
	default:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || (clicked && a.fireEnabled && a.fireButton.contains(mx, my)) {
			a.session.RequestFire()
		}
	}
}

// AimHeld 实现 hooks.PointerInput：按住左键瞄准
func (a *App) AimHeld() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// PointerPosition 实现 hooks.PointerInput
func (a *App) PointerPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// IsPointerOverInteractiveUI 实现 hooks.PointerInput
func (a *App) IsPointerOverInteractiveUI() bool {
	x, y := a.PointerPosition()
	return a.pointerOverUI(x, y)
}

// ResolveGroundPoint 实现 hooks.GroundResolver：俯视投影到平坦地面
func (a *App) ResolveGroundPoint(screenX, screenY float64) (vecmath.Vec3, bool) {
	x, z, ok := a.vp.ScreenToWorld(screenX, screenY)
	if !ok {
		return vecmath.Vec3{}, false
	}
	return vecmath.V3(x, a.level.GroundHeight, z), true
}

func (a *App) visibleButtons() []button {
	round := a.session.Round()
	switch {
	case a.startPrompt:
		return []button{a.startButton}
	case a.losePrompt:
		return []button{a.restartButton}
	case round.IsGameStarted() && !round.IsGameOver():
		return []button{a.fireButton}
	}
	return nil
}
