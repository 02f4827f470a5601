// Package hooks 定义模拟核心与外部协作者（渲染、输入、音效/特效、UI）之间的接口
//
// 核心只调用这些接口，不关心实现。桌面端由 pkg/app 实现，
// 无界面运行时由 pkg/game.AutoPilot 与 Nop 实现补齐。
package hooks

import "github.com/decker502/cannonade/pkg/vecmath"

//go:generate go tool mockgen -destination=./mocks/hooks_mock.go -package=mocks . Effects,HUD,TrajectoryRenderer,PointerInput,GroundResolver

// EffectID 音效/特效标识
type EffectID string

const (
	EffectFire   EffectID = "fire"   // 开炮音效
	EffectMuzzle EffectID = "muzzle" // 炮口火光
	EffectHit    EffectID = "hit"    // 敌人被击中
	EffectLose   EffectID = "lose"   // 失败特效
)

// Effects 音效/特效协作者，调用即返回，核心状态不依赖其完成
type Effects interface {
	Play(effect EffectID)
}

// HUD 界面协作者
type HUD interface {
	SetFireEnabled(enabled bool)
	// SetReloadProgress 装填进度 0..1
	SetReloadProgress(progress float64)
	ShowStartPrompt()
	HideStartPrompt()
	ShowLosePrompt()
}

// TrajectoryRenderer 轨迹预览渲染协作者
// points 为空表示清除预览
type TrajectoryRenderer interface {
	SetTrajectoryPreview(points []vecmath.Vec3)
}

// PointerInput 指针输入协作者
type PointerInput interface {
	// AimHeld 瞄准输入是否按住
	AimHeld() bool
	// PointerPosition 屏幕坐标
	PointerPosition() (x, y float64)
	// IsPointerOverInteractiveUI 指针位于可交互 UI 上时核心跳过瞄准
	IsPointerOverInteractiveUI() bool
}

// GroundResolver 屏幕坐标到可玩地面的求交
type GroundResolver interface {
	ResolveGroundPoint(screenX, screenY float64) (vecmath.Vec3, bool)
}

// Terrain 地形高度查询
type Terrain interface {
	HeightAt(x, z float64) float64
}

// FlatTerrain 固定高度的平坦地形
type FlatTerrain float64

// HeightAt 实现 Terrain
func (f FlatTerrain) HeightAt(x, z float64) float64 {
	return float64(f)
}
