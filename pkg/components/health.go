package components

// HealthComponent 存储实体的生命值信息
// 用于敌人等可被攻击的实体
//
// 生命值只会减少（游戏中不存在治疗敌人的效果），
// CurrentHealth <= 0 即视为死亡阈值，数值本身不做下限截断。
type HealthComponent struct {
	CurrentHealth float64 // 当前生命值
	MaxHealth     float64 // 最大生命值（生成时的初始值）
}

// IsDepleted 生命值是否已耗尽
func (h *HealthComponent) IsDepleted() bool {
	return h.CurrentHealth <= 0
}

// Percent 返回当前生命值百分比（0.0 ~ 1.0），供血条渲染使用
func (h *HealthComponent) Percent() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	p := h.CurrentHealth / h.MaxHealth
	if p < 0 {
		return 0
	}
	return p
}
