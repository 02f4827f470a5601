package components

// EnemyState 敌人状态机状态
type EnemyState int

const (
	// EnemyMoving 沿路线行进
	EnemyMoving EnemyState = iota
	// EnemyAttacking 已到达终点，进入攻击流程（不再移动）
	EnemyAttacking
	// EnemyDead 被炮弹击中，停止一切行为，延迟后移除
	EnemyDead
)

func (s EnemyState) String() string {
	switch s {
	case EnemyMoving:
		return "moving"
	case EnemyAttacking:
		return "attacking"
	case EnemyDead:
		return "dead"
	}
	return "unknown"
}

// EnemyAnim 敌人动画名（由渲染协作者读取）
type EnemyAnim string

const (
	AnimWalk   EnemyAnim = "walk"
	AnimIdle   EnemyAnim = "idle"
	AnimAttack EnemyAnim = "attack"
	AnimDeath  EnemyAnim = "death"
)

// AttackPhase 攻击流程阶段
//
//	Windup: 到达终点后的待机延迟（默认 2）
//	Strike: 播放攻击动作，等待发出攻击信号（默认 1）
//	Done:   信号已发出，回到待机动画，原地停留
type AttackPhase int

const (
	AttackPhaseNone AttackPhase = iota
	AttackPhaseWindup
	AttackPhaseStrike
	AttackPhaseDone
)

// 攻击流程计时器名称
const (
	TimerPreAttack    = "pre_attack"
	TimerAttackSignal = "attack_signal"
)

// EnemyComponent 敌人状态机数据
//
// State 本身即锁存：进入 EnemyDead 或 EnemyAttacking 后不会回到 EnemyMoving，
// 死亡与完成路线两种终局互斥，先发生者生效。
type EnemyComponent struct {
	State         EnemyState
	Path          *Waypath // 共享路线引用；死亡时置空
	WaypointIndex int

	Speed            float64
	TurnRate         float64
	ArrivalThreshold float64

	PreAttackDelay      float64
	AttackToSignalDelay float64
	DeathRemovalDelay   float64

	AttackPhase AttackPhase
	Anim        EnemyAnim
	Signaled    bool // 攻击信号已发出
}
