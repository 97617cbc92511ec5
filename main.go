// main.go 是 fnloc 的程序入口。
// 该文件仅负责注入版本号并执行 Cobra 根命令，
// 让业务逻辑保持在 cmd/internal 目录中，便于测试和扩展。
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/glog"

	"fnloc/cmd"
)

// version 默认值为 dev。
// 发布时可以通过 -ldflags "-X main.version=vX.Y.Z" 覆盖该值。
var version = "dev"

func main() {
	err := cmd.Execute(version)
	glog.Flush()
	if err == nil {
		return
	}

	// 用法错误已经输出过说明，不再重复打印。
	if !errors.Is(err, cmd.ErrUsage) {
		fmt.Fprintf(os.Stderr, "fnloc error: %v\n", err)
	}
	os.Exit(1)
}
