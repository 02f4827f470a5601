package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// StatsAppName gdata 存储使用的应用名
const StatsAppName = "cannonade"

// Stats 累计战绩
// BestKills 为单回合最多击杀，LongestSurvive 为单回合最长存活时间（秒）
type Stats struct {
	RoundsPlayed   int     `yaml:"roundsPlayed"`
	TotalKills     int     `yaml:"totalKills"`
	BestKills      int     `yaml:"bestKills"`
	ShotsFired     int     `yaml:"shotsFired"`
	LongestSurvive float64 `yaml:"longestSurvive"`
}

// RoundResult 一个回合的结果
type RoundResult struct {
	Kills    int
	Shots    int
	Survived float64
}

// StatsManager 战绩管理器
// 负责战绩的加载、保存和内存管理
type StatsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	stats        Stats
}

// 存储路径常量
const (
	statsObject   = "stats"
	statsProperty = "global"
)

// OpenStatsManager 打开默认存储位置的战绩管理器
// gdata 打开失败时退化为仅内存模式，不返回错误
func OpenStatsManager(appName string) *StatsManager {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[StatsManager] Warning: gdata unavailable: %v (stats kept in memory)", err)
		manager = nil
	}
	return NewStatsManager(manager)
}

// NewStatsManager 创建新的战绩管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存战绩）
//
// 加载失败不是致命错误，从空战绩开始。
func NewStatsManager(gdataManager *gdata.Manager) *StatsManager {
	sm := &StatsManager{gdataManager: gdataManager}
	if err := sm.Load(); err != nil {
		log.Printf("[StatsManager] Warning: Failed to load stats: %v (starting fresh)", err)
	}
	return sm
}

// Load 从 gdata 加载战绩
//
// 如果 gdataManager 为 nil 或文件不存在，使用空战绩
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误
func (sm *StatsManager) Load() error {
	sm.stats = Stats{}
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(statsObject, statsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}

	var loaded Stats
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	sm.stats = loaded
	log.Printf("[StatsManager] Stats loaded: %d rounds", loaded.RoundsPlayed)
	return nil
}

// Save 保存战绩到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *StatsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	log.Printf("[StatsManager] Stats saved")
	return nil
}

// Record 合并一个回合的结果
// 注意：仅修改内存中的战绩，需调用 Save() 方法持久化
func (sm *StatsManager) Record(r RoundResult) {
	sm.stats.RoundsPlayed++
	sm.stats.TotalKills += r.Kills
	sm.stats.ShotsFired += r.Shots
	sm.stats.BestKills = max(sm.stats.BestKills, r.Kills)
	sm.stats.LongestSurvive = max(sm.stats.LongestSurvive, r.Survived)
}

// Stats 返回当前战绩副本
func (sm *StatsManager) Stats() Stats {
	return sm.stats
}

// IsPersistent 是否能够持久化
func (sm *StatsManager) IsPersistent() bool {
	return sm.gdataManager != nil
}
