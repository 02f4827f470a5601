package hooks

import "github.com/decker502/cannonade/pkg/vecmath"

// NopEffects 丢弃所有特效调用
type NopEffects struct{}

func (NopEffects) Play(EffectID) {}

// NopHUD 丢弃所有界面调用
type NopHUD struct{}

func (NopHUD) SetFireEnabled(bool) {}
func (NopHUD) SetReloadProgress(float64) {}
func (NopHUD) ShowStartPrompt() {}
func (NopHUD) HideStartPrompt() {}
func (NopHUD) ShowLosePrompt() {}

// NopTrajectoryRenderer 丢弃轨迹预览
type NopTrajectoryRenderer struct{}

func (NopTrajectoryRenderer) SetTrajectoryPreview([]vecmath.Vec3) {}

// IdleInput 从不瞄准的输入
type IdleInput struct{}

func (IdleInput) AimHeld() bool { return false }
func (IdleInput) PointerPosition() (float64, float64) { return 0, 0 }
func (IdleInput) IsPointerOverInteractiveUI() bool { return false }

// NoGround 任何屏幕坐标都没有地面交点
type NoGround struct{}

func (NoGround) ResolveGroundPoint(float64, float64) (vecmath.Vec3, bool) {
	return vecmath.Vec3{}, false
}

// OrEffects 非 nil 时返回 e，否则返回 NopEffects
func OrEffects(e Effects) Effects {
	if e == nil {
		return NopEffects{}
	}
	return e
}

// OrHUD 非 nil 时返回 h，否则返回 NopHUD
func OrHUD(h HUD) HUD {
	if h == nil {
		return NopHUD{}
	}
	return h
}

// OrRenderer 非 nil 时返回 r，否则返回 NopTrajectoryRenderer
func OrRenderer(r TrajectoryRenderer) TrajectoryRenderer {
	if r == nil {
		return NopTrajectoryRenderer{}
	}
	return r
}
