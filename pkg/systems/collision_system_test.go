package systems

import (
	"testing"

	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/ecs"
	"github.com/gonewx/wizard-defense/pkg/entities"
)

// TestCollisionSingleHit 敌人(0,0) 生命100，子弹(0,0)：子弹减少1，敌人生命80
func TestCollisionSingleHit(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewCollisionSystem(em)

	enemy := spawnTestEnemy(t, em, 0, 0, 100, components.EnemyWalking)
	proj := spawnTestProjectile(t, em, 0, 0)

	before := len(entities.Projectiles(em))
	hits := s.Resolve()
	em.RemoveMarkedEntities()

	if hits != 1 {
		t.Errorf("expected 1 hit, got %d", hits)
	}
	if after := len(entities.Projectiles(em)); after != before-1 {
		t.Errorf("projectile count: expected %d, got %d", before-1, after)
	}
	if em.Exists(proj) {
		t.Error("consumed projectile should be removed")
	}
	_, _, health := enemyOf(em, enemy)
	if health.CurrentHealth != 80 {
		t.Errorf("enemy health: expected 80, got %v", health.CurrentHealth)
	}
}

func TestCollisionCases(t *testing.T) {
	tests := []struct {
		name        string
		enemies     [][2]float64 // 敌人位置
		projectiles [][2]float64 // 子弹位置
		wantHits    int
		wantDamage  float64 // 所有敌人受到的伤害总和
	}{
		{
			name:        "未重叠",
			enemies:     [][2]float64{{0, 0}},
			projectiles: [][2]float64{{200, 0}},
			wantHits:    0,
			wantDamage:  0,
		},
		{
			name:        "边缘相切不算命中",
			enemies:     [][2]float64{{0, 0}},
			projectiles: [][2]float64{{78.75, 0}}, // (57.5+100)/2
			wantHits:    0,
			wantDamage:  0,
		},
		{
			name:        "两颗子弹命中同一敌人",
			enemies:     [][2]float64{{0, 0}},
			projectiles: [][2]float64{{10, 0}, {-10, 5}},
			wantHits:    2,
			wantDamage:  40,
		},
		{
			name:        "一颗子弹重叠两个敌人只命中一个",
			enemies:     [][2]float64{{0, 0}, {20, 10}},
			projectiles: [][2]float64{{10, 5}},
			wantHits:    1,
			wantDamage:  20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			s := NewCollisionSystem(em)

			var enemyIDs []ecs.EntityID
			for _, p := range tt.enemies {
				enemyIDs = append(enemyIDs, spawnTestEnemy(t, em, p[0], p[1], 100, components.EnemyWalking))
			}
			for _, p := range tt.projectiles {
				spawnTestProjectile(t, em, p[0], p[1])
			}

			hits := s.Resolve()
			if hits != tt.wantHits {
				t.Errorf("hits: expected %d, got %d", tt.wantHits, hits)
			}
			if em.PendingDestroyCount() != tt.wantHits {
				t.Errorf("consumed projectiles: expected %d, got %d", tt.wantHits, em.PendingDestroyCount())
			}

			damage := 0.0
			for _, id := range enemyIDs {
				_, _, h := enemyOf(em, id)
				damage += 100 - h.CurrentHealth
			}
			if damage != tt.wantDamage {
				t.Errorf("total damage: expected %v, got %v", tt.wantDamage, damage)
			}
		})
	}
}

func TestCollisionIgnoresDeadEnemies(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewCollisionSystem(em)

	dead := spawnTestEnemy(t, em, 0, 0, -20, components.EnemyDead)
	proj := spawnTestProjectile(t, em, 0, 0)

	if hits := s.Resolve(); hits != 0 {
		t.Errorf("dead enemy should not be hit, got %d hits", hits)
	}
	if !em.IsAlive(proj) {
		t.Error("projectile should pass through dead enemy")
	}
	_, _, h := enemyOf(em, dead)
	if h.CurrentHealth != -20 {
		t.Errorf("dead enemy health should not change, got %v", h.CurrentHealth)
	}
}

// TestCollisionConsumedProjectileNotReused 已消耗的子弹在后续结算中不会再次命中
func TestCollisionConsumedProjectileNotReused(t *testing.T) {
	em := ecs.NewEntityManager()
	s := NewCollisionSystem(em)

	enemy := spawnTestEnemy(t, em, 0, 0, 100, components.EnemyWalking)
	spawnTestProjectile(t, em, 0, 0)

	s.Resolve()
	s.Resolve() // 同一帧内再次结算（尚未清理）
	em.RemoveMarkedEntities()
	s.Resolve()

	_, _, h := enemyOf(em, enemy)
	if h.CurrentHealth != 80 {
		t.Errorf("expected single damage application (80), got %v", h.CurrentHealth)
	}
}
