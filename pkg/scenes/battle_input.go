package scenes

import (
	"github.com/gonewx/wizard-defense/pkg/simulation"
	"github.com/gonewx/wizard-defense/pkg/utils"
)

// commandsFromInput 将一帧的键盘状态转换为模拟指令
//
// 同时按住上下键时互相抵消，不产生移动指令。
// 购买指令排在发射之前，保证同一帧内的提交顺序稳定。
func commandsFromInput(in utils.InputState) []simulation.Command {
	var cmds []simulation.Command

	switch {
	case in.Up && !in.Down:
		cmds = append(cmds, simulation.MovePlayer{Direction: simulation.MoveUp, Magnitude: 1})
	case in.Down && !in.Up:
		cmds = append(cmds, simulation.MovePlayer{Direction: simulation.MoveDown, Magnitude: 1})
	}

	if in.Repair {
		cmds = append(cmds, simulation.PurchaseRepair{})
	}
	if in.Upgrade {
		cmds = append(cmds, simulation.PurchaseUpgrade{})
	}
	if in.Fire {
		cmds = append(cmds, simulation.FireProjectile{})
	}

	return cmds
}
