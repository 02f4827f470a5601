package components

// ProjectileComponent 炮弹数据
type ProjectileComponent struct {
	// Grounded 是否已接触地面；接触后碰撞体关闭，GroundLinger 秒后移除
	Grounded     bool
	GroundLinger float64
}
