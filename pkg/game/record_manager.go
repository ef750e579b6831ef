package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// BattleRecords 跨局保存的最佳战绩
type BattleRecords struct {
	BattlesPlayed   int     `yaml:"battlesPlayed"`   // 已结束的战斗局数
	MostKills       int     `yaml:"mostKills"`       // 单局最多击杀数
	LongestSurvival float64 `yaml:"longestSurvival"` // 单局最长坚持时间（秒）
	MostWealth      int     `yaml:"mostWealth"`      // 单局结束时最多财富
}

// RecordManager 战绩管理器
// 负责最佳战绩的加载、更新和持久化
type RecordManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	records      *BattleRecords
}

// 存储路径常量
const (
	recordsObject   = "records"
	recordsProperty = "best"
)

// NewRecordManager 创建战绩管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存战绩）
//
// 加载失败不是致命错误，会记录日志并从空战绩开始。
func NewRecordManager(gdataManager *gdata.Manager) *RecordManager {
	rm := &RecordManager{
		gdataManager: gdataManager,
		records:      &BattleRecords{},
	}

	if err := rm.Load(); err != nil {
		log.Printf("[RecordManager] Warning: Failed to load records: %v (starting fresh)", err)
	}

	return rm
}

// Load 从 gdata 加载战绩
func (rm *RecordManager) Load() error {
	if rm.gdataManager == nil {
		return nil
	}
	if !rm.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	var loaded BattleRecords
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}

	rm.records = &loaded
	log.Printf("[RecordManager] Records loaded: battles=%d, mostKills=%d", loaded.BattlesPlayed, loaded.MostKills)
	return nil
}

// Save 保存战绩到 gdata
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (rm *RecordManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(rm.records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := rm.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	log.Printf("[RecordManager] Records saved")
	return nil
}

// GetRecords 返回当前战绩
func (rm *RecordManager) GetRecords() BattleRecords {
	return *rm.records
}

// SubmitBattle 提交一局结束的战斗结果，更新最佳战绩
//
// 返回：
//   - bool: 是否刷新了任意一项纪录
func (rm *RecordManager) SubmitBattle(gs *GameState) bool {
	r := rm.records
	r.BattlesPlayed++

	improved := false
	if gs.EnemiesKilled > r.MostKills {
		r.MostKills = gs.EnemiesKilled
		improved = true
	}
	if gs.ElapsedTime > r.LongestSurvival {
		r.LongestSurvival = gs.ElapsedTime
		improved = true
	}
	if gs.Player != nil && gs.Player.Wealth() > r.MostWealth {
		r.MostWealth = gs.Player.Wealth()
		improved = true
	}

	if improved {
		log.Printf("[RecordManager] New record: kills=%d, survival=%.1fs, wealth=%d",
			r.MostKills, r.LongestSurvival, r.MostWealth)
	}
	return improved
}
