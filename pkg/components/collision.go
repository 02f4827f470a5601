package components

// CollisionComponent 球形碰撞体
// 用于物理系统检测炮弹与敌人的碰撞
type CollisionComponent struct {
	Radius  float64
	OffsetY float64 // 球心相对实体位置的高度偏移
	Enabled bool    // 关闭后不参与碰撞检测（如落地的炮弹、死亡的敌人）
}
