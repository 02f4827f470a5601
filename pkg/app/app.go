// Package app 提供桌面端的 ebiten 前端
//
// App 实现 ebiten.Game，同时充当模拟核心的全部外部协作者：
// 界面（HUD）、特效、轨迹渲染、指针输入与地面投射。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/cannonade/pkg/config"
	"github.com/decker502/cannonade/pkg/game"
	"github.com/decker502/cannonade/pkg/hooks"
	"github.com/decker502/cannonade/pkg/vecmath"
	"github.com/decker502/cannonade/pkg/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	// ScreenWidth 逻辑屏幕宽度
	ScreenWidth = 960
	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 720

	tickDelta  = 1.0 / 60.0
	viewMargin = 56
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LevelPath 关卡配置文件路径，为空则使用内置关卡
	LevelPath string
	// NoStats 不读写本地战绩
	NoStats bool
	// Mute 关闭音效
	Mute bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	session *game.Session
	level   *config.LevelConfig
	vp      *viewport.Viewport
	face    text.Face

	// HUD 状态，由回合控制器驱动
	fireEnabled    bool
	reloadProgress float64
	startPrompt    bool
	losePrompt     bool

	preview []vecmath.Vec3
	flashes []flash
	sounds  *SoundBank

	startButton   button
	fireButton    button
	restartButton button

	// 在按钮上按下后锁定，松开前不参与瞄准
	pointerCaptured bool

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

var _ ebiten.Game = (*App)(nil)

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	level, err := config.LoadLevelConfig(cfg.LevelPath)
	if err != nil {
		return nil, fmt.Errorf("关卡配置加载失败: %w", err)
	}
	log.Printf("[App] 关卡 %s (%s)", level.ID, level.Name)

	var stats *game.StatsManager
	if !cfg.NoStats {
		stats = game.OpenStatsManager(game.StatsAppName)
	}

	a := &App{
		level:          level,
		vp:             viewport.New(level.Area, ScreenWidth, ScreenHeight, viewMargin),
		face:           text.NewGoXFace(basicfont.Face7x13),
		reloadProgress: 1,
		startButton:    button{x: ScreenWidth/2 - 80, y: ScreenHeight/2 - 20, w: 160, h: 40, label: "START"},
		fireButton:     button{x: ScreenWidth - 140, y: ScreenHeight - 52, w: 120, h: 40, label: "FIRE"},
		restartButton:  button{x: ScreenWidth/2 - 80, y: ScreenHeight/2 + 30, w: 160, h: 40, label: "RESTART"},
		verbose:        cfg.Verbose,
	}

	if !cfg.Mute {
		a.sounds = NewSoundBank(0.5)
	}

	a.session = game.NewSession(level, hooks.Collaborators{
		Effects:  a,
		HUD:      a,
		Renderer: a,
		Input:    a,
		Ground:   a,
		Terrain:  hooks.FlatTerrain(level.GroundHeight),
	}, stats)

	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	mx, my := a.PointerPosition()
	a.capturePointer(mx, my,
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))

	a.handleCommands()
	a.session.Update(tickDelta)
	a.updateFlashes(tickDelta)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := a.session.Snapshot()
	a.drawWorld(screen, snap)
	a.drawFlashes(screen)
	a.drawHUD(screen, snap)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Session 返回模拟会话
func (a *App) Session() *game.Session {
	return a.session
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
