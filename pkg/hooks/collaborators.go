package hooks

// Collaborators 一次模拟会话使用的全部外部协作者
// 任何字段为 nil 时由 WithDefaults 替换为空实现
type Collaborators struct {
	Effects  Effects
	HUD      HUD
	Renderer TrajectoryRenderer
	Input    PointerInput
	Ground   GroundResolver
	Terrain  Terrain
}

// WithDefaults 返回填充了空实现的副本
//
// groundHeight 用于缺省的平坦地形
func (c Collaborators) WithDefaults(groundHeight float64) Collaborators {
	c.Effects = OrEffects(c.Effects)
	c.HUD = OrHUD(c.HUD)
	c.Renderer = OrRenderer(c.Renderer)
	if c.Input == nil {
		c.Input = IdleInput{}
	}
	if c.Ground == nil {
		c.Ground = NoGround{}
	}
	if c.Terrain == nil {
		c.Terrain = FlatTerrain(groundHeight)
	}
	return c
}
