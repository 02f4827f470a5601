package components

// LifetimeComponent 管理实体的剩余寿命
// 用于延迟移除实体(如死亡敌人、落地炮弹)
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大生命周期(秒)
	CurrentLifetime float64 // 当前已存在时间(秒)
	IsExpired       bool    // 是否已过期
}
