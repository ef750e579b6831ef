package config

// 布局配置常量
// 本文件定义了战斗画面的逻辑尺寸和 HUD 元素位置

// 逻辑屏幕尺寸
// 世界坐标原点位于屏幕中心，+Y 向上；屏幕坐标原点位于左上角，+Y 向下
const (
	// GameWindowWidth 逻辑屏幕宽度（覆盖世界 X 范围 [-800, 800]）
	GameWindowWidth = 1600

	// GameWindowHeight 逻辑屏幕高度（覆盖世界 Y 范围 [-400, 400]）
	GameWindowHeight = 800
)

// HUD 布局（屏幕坐标）
const (
	// HUDMarginX HUD 文字距屏幕左边缘的距离
	HUDMarginX = 16.0

	// HUDHealthY 城墙生命值文字的 Y 坐标
	HUDHealthY = 28.0

	// HUDWealthY 财富文字的 Y 坐标
	HUDWealthY = 48.0

	// HUDStatsY 击杀数、坚持时间文字的 Y 坐标
	HUDStatsY = 68.0

	// HUDHelpY 按键提示文字距屏幕底边的距离
	HUDHelpY = 16.0
)

// 绘制尺寸
const (
	// PlayerDrawWidth 玩家方块宽度
	PlayerDrawWidth = 40.0

	// ProjectileDrawWidth 子弹绘制宽度（碰撞盒 100×50 的可见部分）
	ProjectileDrawWidth = 24.0

	// ProjectileDrawHeight 子弹绘制高度
	ProjectileDrawHeight = 12.0

	// HealthBarHeight 敌人头顶血条高度
	HealthBarHeight = 4.0
)
