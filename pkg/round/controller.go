// Package round 实现回合状态机
//
// 状态: NotStarted → Playing ⇄ Reloading → GameOver
//
// 每个模拟会话构造一个 Controller，通过依赖注入交给大炮、刷怪点和敌人系统，
// 不存在全局单例。所有转换都在 tick 内同步完成，依靠锁存标志避免重入。
package round

//go:generate go tool mockgen -destination=./mocks/defender_mock.go -package=mocks . Defender

import (
	"log"

	"github.com/decker502/cannonade/pkg/hooks"
)

// State 回合状态
type State int

const (
	NotStarted State = iota
	Playing
	Reloading
	GameOver
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Playing:
		return "playing"
	case Reloading:
		return "reloading"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Defender 回合控制器驱动的防御者
type Defender interface {
	// Fire 发射一枚炮弹，没有可用目标时返回 false
	Fire() bool
	// HandleLose 回合失败：停止瞄准并清除预览
	HandleLose()
}

// Controller 回合控制器
type Controller struct {
	hud      hooks.HUD
	effects  hooks.Effects
	defender Defender

	reloadTime float64

	// 锁存标志
	started   bool
	gameOver  bool
	reloading bool

	reloadElapsed float64
	attackPending bool // 电平触发的攻击信号，在 Update 中消费

	shots      int
	onGameOver []func()
}

// NewController 创建回合控制器
//
// 参数:
//   - reloadTime: 装填时长（秒），0 表示无需装填
//   - hud: 界面协作者，为 nil 时忽略
//   - effects: 特效协作者，为 nil 时忽略
//
// 创建后立即显示开始提示并禁用开火按钮。
func NewController(reloadTime float64, hud hooks.HUD, effects hooks.Effects) *Controller {
	c := &Controller{
		hud:        hooks.OrHUD(hud),
		effects:    hooks.OrEffects(effects),
		reloadTime: reloadTime,
	}
	c.hud.SetFireEnabled(false)
	c.hud.ShowStartPrompt()
	return c
}

// SetDefender 设置防御者（大炮与控制器互相引用，分两步装配）
func (c *Controller) SetDefender(d Defender) {
	c.defender = d
}

// OnGameOver 注册回合结束观察者，按注册顺序调用一次
func (c *Controller) OnGameOver(fn func()) {
	c.onGameOver = append(c.onGameOver, fn)
}

// StartGame NotStarted → Playing，只生效一次
func (c *Controller) StartGame() {
	if c.started {
		return
	}
	c.started = true
	c.hud.HideStartPrompt()
	c.hud.SetFireEnabled(true)
	log.Printf("[RoundController] 回合开始")
}

// RequestFire 请求开火
//
// 仅在 Playing 且未装填、未结束时有效；否则无任何副作用并返回 false。
// 开火成功后进入装填，ReloadProgress 在 reloadTime 内从 0 增长到 1。
func (c *Controller) RequestFire() bool {
	if !c.started || c.gameOver || c.reloading {
		return false
	}
	if c.defender == nil || !c.defender.Fire() {
		return false
	}

	c.shots++
	log.Printf("[RoundController] 开火 #%d", c.shots)

	if c.reloadTime <= 0 {
		return true
	}
	c.reloading = true
	c.reloadElapsed = 0
	c.hud.SetFireEnabled(false)
	c.hud.SetReloadProgress(0)
	return true
}

// ReportAttack 敌人上报攻击信号
// 只设置标志，下一次 Update 时统一结算，同一帧多次上报合并为一次
func (c *Controller) ReportAttack() {
	c.attackPending = true
}

// OnAttackSignal 立即结算攻击信号：Playing|Reloading → GameOver
//
// 第一次信号生效，之后的信号被忽略；回合开始前的信号同样被忽略。
func (c *Controller) OnAttackSignal() {
	if !c.started || c.gameOver {
		return
	}

	c.gameOver = true
	c.reloading = false
	c.reloadElapsed = 0

	c.hud.SetFireEnabled(false)
	c.hud.SetReloadProgress(0)
	c.hud.ShowLosePrompt()
	c.effects.Play(hooks.EffectLose)
	if c.defender != nil {
		c.defender.HandleLose()
	}

	log.Printf("[RoundController] 回合失败 (共开火 %d 次)", c.shots)
	for _, fn := range c.onGameOver {
		fn()
	}
}

// Update 每帧调用：先结算攻击信号，再推进装填倒计时
func (c *Controller) Update(deltaTime float64) {
	if c.attackPending {
		c.attackPending = false
		c.OnAttackSignal()
	}

	if !c.reloading {
		return
	}

	c.reloadElapsed += deltaTime
	if c.reloadElapsed < c.reloadTime {
		c.hud.SetReloadProgress(c.reloadElapsed / c.reloadTime)
		return
	}

	c.reloading = false
	c.reloadElapsed = 0
	c.hud.SetReloadProgress(1)
	c.hud.SetFireEnabled(true)
	log.Printf("[RoundController] 装填完成")
}

// IsGameStarted 回合是否已开始
func (c *Controller) IsGameStarted() bool { return c.started }

// IsGameOver 回合是否已结束
func (c *Controller) IsGameOver() bool { return c.gameOver }

// IsReloading 是否正在装填
func (c *Controller) IsReloading() bool { return c.reloading }

// CanAim 大炮当前是否可以瞄准
func (c *Controller) CanAim() bool {
	return c.started && !c.gameOver && !c.reloading
}

// ReloadProgress 装填进度 0..1，未装填时为 1，回合结束后为 0
func (c *Controller) ReloadProgress() float64 {
	if c.gameOver {
		return 0
	}
	if !c.reloading || c.reloadTime <= 0 {
		return 1
	}
	return min(c.reloadElapsed/c.reloadTime, 1)
}

// Shots 本回合成功开火次数
func (c *Controller) Shots() int {
	return c.shots
}

// State 当前状态
func (c *Controller) State() State {
	switch {
	case c.gameOver:
		return GameOver
	case c.reloading:
		return Reloading
	case c.started:
		return Playing
	}
	return NotStarted
}
