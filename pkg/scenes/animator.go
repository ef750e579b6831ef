package scenes

import (
	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/gonewx/wizard-defense/pkg/ecs"
	"github.com/gonewx/wizard-defense/pkg/simulation"
)

// EnemyAnimator 敌人动画协作者
//
// 根据每帧快照推进各个敌人的动画计时：
//   - 攻击动画每播放完一个周期，发出一次 NotifyAttackCycleComplete
//   - 死亡动画播放完毕后，发出一次 NotifyDeathAnimationComplete
//
// 发出的指令由场景提交给模拟，在下一帧生效。
type EnemyAnimator struct {
	frameDuration float64
	attackFrames  int
	deathFrames   int

	tracks map[ecs.EntityID]*animTrack
}

// animEpsilon 累加帧时间的浮点误差容限
const animEpsilon = 1e-9

// animTrack 单个敌人的动画进度
type animTrack struct {
	state         components.EnemyState
	elapsed       float64 // 当前动画已播放时间（秒）
	deathNotified bool
}

// NewEnemyAnimator 创建动画协作者
func NewEnemyAnimator(cfg config.AnimationConfig) *EnemyAnimator {
	return &EnemyAnimator{
		frameDuration: cfg.FrameDuration,
		attackFrames:  cfg.AttackCycleFrames,
		deathFrames:   cfg.DeathFrames,
		tracks:        make(map[ecs.EntityID]*animTrack),
	}
}

// Reset 清空所有动画进度（读档后实体ID全部改变）
func (a *EnemyAnimator) Reset() {
	clear(a.tracks)
}

// Update 根据最新快照推进动画，返回需要提交给模拟的通知
func (a *EnemyAnimator) Update(snap simulation.Snapshot, deltaTime float64) []simulation.Command {
	var cmds []simulation.Command
	seen := make(map[ecs.EntityID]struct{}, len(snap.Enemies))

	attackCycle := a.frameDuration * float64(a.attackFrames)
	deathDuration := a.frameDuration * float64(a.deathFrames)

	for _, e := range snap.Enemies {
		seen[e.ID] = struct{}{}

		track, ok := a.tracks[e.ID]
		if !ok || track.state != e.State {
			// 新敌人或状态切换：从头播放新动画
			track = &animTrack{state: e.State}
			a.tracks[e.ID] = track
			continue
		}

		track.elapsed += deltaTime

		switch e.State {
		case components.EnemyWalking:
			// 行走动画循环播放，不产生通知
		case components.EnemyAttacking:
			for attackCycle > 0 && track.elapsed+animEpsilon >= attackCycle {
				track.elapsed -= attackCycle
				cmds = append(cmds, simulation.NotifyAttackCycleComplete{Enemy: e.ID})
			}
		case components.EnemyDead:
			if !track.deathNotified && track.elapsed+animEpsilon >= deathDuration {
				track.deathNotified = true
				cmds = append(cmds, simulation.NotifyDeathAnimationComplete{Enemy: e.ID})
			}
		}
	}

	// 已被移除的敌人
	for id := range a.tracks {
		if _, ok := seen[id]; !ok {
			delete(a.tracks, id)
		}
	}

	return cmds
}

// Frame 返回敌人当前动画帧号，用于绘制
// 死亡动画停在最后一帧
func (a *EnemyAnimator) Frame(id ecs.EntityID) int {
	track, ok := a.tracks[id]
	if !ok || a.frameDuration <= 0 {
		return 0
	}
	frame := int((track.elapsed + animEpsilon) / a.frameDuration)
	switch track.state {
	case components.EnemyAttacking:
		if a.attackFrames <= 0 {
			return 0
		}
		return frame % a.attackFrames
	case components.EnemyDead:
		if frame >= a.deathFrames {
			return a.deathFrames - 1
		}
		return frame
	default:
		return frame
	}
}

// DeathProgress 死亡动画进度（0.0 ~ 1.0），非死亡状态返回 0
func (a *EnemyAnimator) DeathProgress(id ecs.EntityID) float64 {
	track, ok := a.tracks[id]
	if !ok || track.state != components.EnemyDead {
		return 0
	}
	total := a.frameDuration * float64(a.deathFrames)
	if total <= 0 || track.elapsed+animEpsilon >= total {
		return 1
	}
	return track.elapsed / total
}
