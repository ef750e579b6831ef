//go:build wddebug

package game

import "fmt"

// invariantsFatal 调试版本（-tags wddebug）中不变量违反直接 panic
const invariantsFatal = true

// reportInvariant 报告不变量违反
func reportInvariant(format string, args ...interface{}) {
	panic(fmt.Sprintf("invariant violated: "+format, args...))
}
