package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如敌人攻击前摇、攻击信号延迟）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "pre_attack"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// Advance 推进计时器，返回本次调用是否刚好完成
func (t *TimerComponent) Advance(deltaTime float64) bool {
	if t.IsReady {
		return false
	}
	t.CurrentTime += deltaTime
	if t.CurrentTime >= t.TargetTime {
		t.IsReady = true
		return true
	}
	return false
}

// Reset 以新的名称和目标时间重新开始计时
func (t *TimerComponent) Reset(name string, target float64) {
	t.Name = name
	t.TargetTime = target
	t.CurrentTime = 0
	t.IsReady = false
}
