package components

import "testing"

func TestTimerAdvance(t *testing.T) {
	timer := &TimerComponent{}
	timer.Reset(TimerPreAttack, 1)

	if timer.Advance(0.5) {
		t.Fatal("0.5s 时不应完成")
	}
	if !timer.Advance(0.5) {
		t.Fatal("1.0s 时应完成")
	}
	if !timer.IsReady {
		t.Error("IsReady 应为 true")
	}
	// 完成后只报告一次
	if timer.Advance(1) {
		t.Error("完成后再次推进不应重复报告")
	}

	timer.Reset(TimerAttackSignal, 0.25)
	if timer.Name != TimerAttackSignal || timer.IsReady || timer.CurrentTime != 0 {
		t.Errorf("Reset 后状态错误: %+v", timer)
	}
	if !timer.Advance(0.3) {
		t.Error("超过目标时间应完成")
	}
}

func TestTimerZeroTarget(t *testing.T) {
	timer := &TimerComponent{}
	timer.Reset(TimerPreAttack, 0)
	if !timer.Advance(0) {
		t.Error("目标时间为 0 时首次推进即完成")
	}
}

func TestEnemyStateString(t *testing.T) {
	tests := []struct {
		state EnemyState
		want  string
	}{
		{EnemyMoving, "moving"},
		{EnemyAttacking, "attacking"},
		{EnemyDead, "dead"},
		{EnemyState(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
