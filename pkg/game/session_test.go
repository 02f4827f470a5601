package game

import (
	"math"
	"testing"

	"github.com/decker502/cannonade/pkg/config"
	"github.com/decker502/cannonade/pkg/hooks"
	"github.com/decker502/cannonade/pkg/round"
)

const tickDT = 1.0 / 60.0

func testLevel(t *testing.T) *config.LevelConfig {
	t.Helper()
	cfg, err := config.DefaultLevelConfig()
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func runFor(s *Session, seconds float64) {
	steps := int(seconds / tickDT)
	for i := 0; i < steps; i++ {
		s.Update(tickDT)
	}
}

// TestSessionSpawnScheduleFromCreation 敌人按会话时间 0, 3, 6 生成，不等待回合开始
func TestSessionSpawnScheduleFromCreation(t *testing.T) {
	s := NewSession(testLevel(t), hooks.Collaborators{}, nil)

	var spawnTimes []float64
	for s.Time() < 7 {
		before := s.Spawner().Spawned()
		at := s.Time()
		s.Update(tickDT)
		for i := before; i < s.Spawner().Spawned(); i++ {
			spawnTimes = append(spawnTimes, at)
		}
	}

	want := []float64{0, 3, 6}
	if len(spawnTimes) != len(want) {
		t.Fatalf("spawn times = %v, want %v", spawnTimes, want)
	}
	for i, w := range want {
		if math.Abs(spawnTimes[i]-w) > 1.5*tickDT {
			t.Errorf("第 %d 个敌人生成于 %.4f, want %.1f", i, spawnTimes[i], w)
		}
	}
	if s.Round().State() != round.NotStarted {
		t.Errorf("State = %v", s.Round().State())
	}
}

func TestSessionSpawnerWaitForStart(t *testing.T) {
	level := testLevel(t)
	level.Spawner.WaitForStart = true
	s := NewSession(level, hooks.Collaborators{}, nil)
	runFor(s, 10)

	if s.Spawner().Spawned() != 0 {
		t.Errorf("开始前不应生成敌人, spawned=%d", s.Spawner().Spawned())
	}
	if s.Tick() != 600 {
		t.Errorf("Tick = %d, want 600", s.Tick())
	}

	s.StartGame()
	s.Update(tickDT)
	if s.Spawner().Spawned() != 1 {
		t.Errorf("开始后第一帧应生成, spawned=%d", s.Spawner().Spawned())
	}
}

// TestSessionLosesWhenEnemyArrives 无人防守时第一个敌人走完路线后回合失败
func TestSessionLosesWhenEnemyArrives(t *testing.T) {
	level := testLevel(t)
	stats := NewStatsManager(nil)
	s := NewSession(level, hooks.Collaborators{}, stats)

	runFor(s, 1)
	s.StartGame()

	for i := 0; i < 60*120 && !s.Round().IsGameOver(); i++ {
		s.Update(tickDT)
	}
	if !s.Round().IsGameOver() {
		t.Fatal("120 秒内应失败")
	}

	// 默认路线总长约 37，速度 1，再加 2+1 秒攻击延迟
	survived := s.Survived()
	if survived < 35 || survived > 45 {
		t.Errorf("Survived = %.2f, want ≈40", survived)
	}

	runFor(s, 10)
	if s.Survived() != survived {
		t.Error("回合结束后存活时间不应增长")
	}

	got := stats.Stats()
	if got.RoundsPlayed != 1 || got.TotalKills != 0 {
		t.Errorf("stats = %+v", got)
	}
	if got.LongestSurvive != survived {
		t.Errorf("LongestSurvive = %v, want %v", got.LongestSurvive, survived)
	}
	if s.RecordStats() {
		t.Error("同一回合不应重复记录")
	}
}

// TestSessionRecordStatsWithoutGameOver 时长耗尽时显式记录，只记录一次
func TestSessionRecordStatsWithoutGameOver(t *testing.T) {
	stats := NewStatsManager(nil)
	s := NewSession(testLevel(t), hooks.Collaborators{}, stats)

	if s.RecordStats() {
		t.Error("未开始的回合不应记录")
	}

	s.StartGame()
	runFor(s, 5)
	if !s.RecordStats() {
		t.Fatal("进行中的回合应能记录")
	}
	if s.RecordStats() {
		t.Error("重复调用不应再次记录")
	}

	got := stats.Stats()
	if got.RoundsPlayed != 1 {
		t.Errorf("RoundsPlayed = %d, want 1", got.RoundsPlayed)
	}
	if math.Abs(got.LongestSurvive-5) > 2*tickDT {
		t.Errorf("LongestSurvive = %v, want ≈5", got.LongestSurvive)
	}

	// 重开后是新回合
	s.Restart()
	s.StartGame()
	runFor(s, 1)
	if !s.RecordStats() || stats.Stats().RoundsPlayed != 2 {
		t.Errorf("重开后应记录新回合, stats=%+v", stats.Stats())
	}
}

func TestSessionRestart(t *testing.T) {
	s := NewSession(testLevel(t), hooks.Collaborators{}, nil)
	s.StartGame()
	runFor(s, 8)

	oldID := s.ID()
	if s.EntityManager().Count() == 0 {
		t.Fatal("应已生成敌人")
	}

	s.Restart()

	if s.ID() == oldID {
		t.Error("重开后会话 ID 应变化")
	}
	if s.Tick() != 0 || s.Time() != 0 {
		t.Errorf("tick=%d time=%v, want 0", s.Tick(), s.Time())
	}
	if s.EntityManager().Count() != 0 {
		t.Errorf("重开后不应有实体, got %d", s.EntityManager().Count())
	}
	if s.Round().State() != round.NotStarted {
		t.Errorf("State = %v, want not_started", s.Round().State())
	}
	if s.Spawner().Spawned() != 0 {
		t.Error("刷怪计时应被重置")
	}
}

func TestSessionSnapshot(t *testing.T) {
	level := testLevel(t)
	s := NewSession(level, hooks.Collaborators{}, nil)
	s.StartGame()
	runFor(s, 4)

	snap := s.Snapshot()
	if snap.SessionID != s.ID() || snap.Tick != s.Tick() {
		t.Errorf("snapshot header = %q/%d", snap.SessionID, snap.Tick)
	}
	if snap.State != "playing" {
		t.Errorf("State = %q, want playing", snap.State)
	}
	if len(snap.Enemies) != 2 {
		t.Fatalf("len(Enemies) = %d, want 2 (t=0, t=3)", len(snap.Enemies))
	}
	for _, e := range snap.Enemies {
		if e.State != "moving" || e.Anim != "walk" {
			t.Errorf("enemy %d: state=%q anim=%q", e.ID, e.State, e.Anim)
		}
		if e.Radius != level.Enemy.Radius {
			t.Errorf("enemy radius = %v", e.Radius)
		}
	}
	if len(snap.Waypath) != len(level.Waypath) {
		t.Errorf("len(Waypath) = %d", len(snap.Waypath))
	}
	if snap.Cannon.Position != level.Cannon.Position {
		t.Errorf("cannon pos = %v", snap.Cannon.Position)
	}
	if snap.ReloadProgress != 1 {
		t.Errorf("ReloadProgress = %v, want 1", snap.ReloadProgress)
	}

	// 快照与会话状态互不影响
	snap.Waypath[0].X = 999
	if s.Waypath().At(0).X == 999 {
		t.Error("快照应复制路线")
	}
}

func TestSessionFireRequiresTarget(t *testing.T) {
	s := NewSession(testLevel(t), hooks.Collaborators{}, nil)
	s.StartGame()
	s.Update(tickDT)

	if s.RequestFire() {
		t.Error("没有瞄准目标时开火应失败")
	}

	s.Cannon().AimAt(s.Level().Waypath[0])
	if !s.RequestFire() {
		t.Fatal("设置目标后应能开火")
	}
	if s.Round().State() != round.Reloading {
		t.Errorf("State = %v, want reloading", s.Round().State())
	}
	if len(s.Snapshot().Projectiles) != 1 {
		t.Error("应有一枚炮弹")
	}
}
