package game

import (
	"time"
)

// BattleSaveVersion 战斗存档版本号
// 用于版本兼容性检查，当数据结构发生不兼容变更时递增
const BattleSaveVersion = 1

// BattleSaveData 战斗存档数据结构
//
// 包含恢复一局战斗所需的全部模拟状态，使用 msgpack 二进制格式序列化。
// 表现层状态（动画帧、特效）不在存档中，读档后由动画协作者从快照重新建立。
type BattleSaveData struct {
	// 版本和元数据
	Version   int       `msgpack:"version"`
	SessionID string    `msgpack:"session_id"` // 战斗会话ID（UUID 字符串）
	SaveTime  time.Time `msgpack:"save_time"`

	// 战斗进度
	Tick           uint64  `msgpack:"tick"`
	ElapsedTime    float64 `msgpack:"elapsed_time"`
	EnemiesSpawned int     `msgpack:"enemies_spawned"`
	EnemiesKilled  int     `msgpack:"enemies_killed"`
	GameOver       bool    `msgpack:"game_over"`

	// 单例资源
	Wall   *WallData   `msgpack:"wall"`
	Player *PlayerData `msgpack:"player"`

	// 生成计时器已累计时间（秒）
	SpawnTimerElapsed float64 `msgpack:"spawn_timer_elapsed"`

	// 实体数据
	Enemies     []EnemyData      `msgpack:"enemies"`
	Projectiles []ProjectileData `msgpack:"projectiles"`
}

// WallData 城墙序列化数据
type WallData struct {
	Health    float64 `msgpack:"health"`
	MaxHealth float64 `msgpack:"max_health"`
}

// PlayerData 玩家序列化数据
type PlayerData struct {
	Wealth int     `msgpack:"wealth"`
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
}

// EnemyData 敌人序列化数据
//
// 字段与 EnemyComponent、HealthComponent、PositionComponent 对应。
type EnemyData struct {
	X         float64 `msgpack:"x"`
	Y         float64 `msgpack:"y"`
	Health    float64 `msgpack:"health"`
	MaxHealth float64 `msgpack:"max_health"`
	State     string  `msgpack:"state"` // "walking", "attacking", "dead"
	Speed     float64 `msgpack:"speed"`
}

// ProjectileData 子弹序列化数据
type ProjectileData struct {
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Speed  float64 `msgpack:"speed"`
	Damage float64 `msgpack:"damage"`
}

// NewBattleSaveData 创建带当前版本号的存档数据
func NewBattleSaveData() *BattleSaveData {
	return &BattleSaveData{
		Version:     BattleSaveVersion,
		Enemies:     make([]EnemyData, 0),
		Projectiles: make([]ProjectileData, 0),
	}
}
