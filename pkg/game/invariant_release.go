//go:build !wddebug

package game

import (
	"fmt"
	"log"
)

// invariantsFatal 发布版本中不变量违反只记录日志，由调用方钳制数值
const invariantsFatal = false

// reportInvariant 报告不变量违反
// 发布版本：记录日志后继续运行，调用方负责把数值钳制回合法范围
func reportInvariant(format string, args ...interface{}) {
	log.Printf("[Invariant] %s", fmt.Sprintf(format, args...))
}
