// Package cmd 提供 fnloc 的命令行入口与子命令编排。
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"fnloc/internal/analyzer"
	"fnloc/internal/model"
	"fnloc/internal/report"
)

// ErrUsage 表示命令行用法错误：缺少参数、请求帮助或参数非法。
// 用法说明在返回该错误之前已经输出。
var ErrUsage = errors.New("usage error")

// cliState 记录一次执行过程中需要在 cobra 之外判断的状态。
type cliState struct {
	helpShown bool
}

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	return run(os.Args[1:], os.Stdout, os.Stderr, version)
}

func run(args []string, stdout io.Writer, stderr io.Writer, version string) error {
	state := &cliState{}
	rootCmd := newRootCmd(version, analyzer.NewRegistry(), state)
	bindLogFlags(rootCmd)

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		return err
	}
	// cobra 在打印帮助后返回 nil，这里统一按用法错误退出。
	if state.helpShown {
		return ErrUsage
	}
	return nil
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string, registry *analyzer.Registry, state *cliState) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fnloc FILE",
		Short: "统计 C/C++ 源文件的逻辑行数，并按函数拆分",
		Long: "fnloc 使用有限状态机逐字符区分代码、注释、空行和预处理指令，\n" +
			"统计逻辑行数（LLOC），并把逻辑行归属到所在的函数。\n\n" +
			"FILE 为 C 或 C++ 源文件或头文件。函数的左右花括号必须位于行首，\n" +
			"位于行首的结构体定义会被当作函数统计。",
		Args:          singleFileArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, fileReport, err := analyzeSourceFile(cmd, args)
			if err != nil {
				return err
			}
			return report.PrintFunctions(cmd.OutOrStdout(), report.Banner{Title: "FnLoC", Version: version}, source, fileReport)
		},
	}

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		state.helpShown = true
		showUsage(cmd)
	})
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		showUsage(cmd)
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))
	rootCmd.AddCommand(newLogicalCmd(version))
	rootCmd.AddCommand(newScanCmd(registry))
	rootCmd.AddCommand(newSchemaCmd())

	return rootCmd
}

// analyzeSourceFile 打开唯一的位置参数并完成分析。
// 缺少参数或文件无法打开时先输出用法说明。
func analyzeSourceFile(cmd *cobra.Command, args []string) (string, model.FileReport, error) {
	if len(args) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No source code file passed.")
		showUsage(cmd)
		return "", model.FileReport{}, ErrUsage
	}

	source := args[0]
	file, err := os.Open(source)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Cannot open %s\n", source)
		showUsage(cmd)
		return source, model.FileReport{}, fmt.Errorf("open source file: %w", err)
	}
	defer file.Close()

	fileReport, err := analyzer.Analyze(file)
	if err != nil {
		return source, model.FileReport{}, fmt.Errorf("read %s: %w", source, err)
	}
	fileReport.Path = source
	glog.V(1).Infof("analyzed %s: %d logical lines, %d functions", source, fileReport.LogicalLines, fileReport.FunctionCount)
	return source, fileReport, nil
}

// singleFileArg 最多接受一个位置参数，缺少参数的情况留给 RunE 处理。
func singleFileArg(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Expected one source file, got %d arguments.\n", len(args))
		showUsage(cmd)
		return ErrUsage
	}
	return nil
}

// showUsage 把命令说明和用法写到标准错误。
func showUsage(cmd *cobra.Command) {
	out := cmd.ErrOrStderr()
	if cmd.Long != "" {
		fmt.Fprintf(out, "%s\n\n", cmd.Long)
	}
	fmt.Fprint(out, cmd.UsageString())
}

// bindLogFlags 把 glog 注册在标准库 flag 上的参数（-v、-vmodule 等）
// 合并到 cobra 的持久参数中，默认输出到标准错误。
func bindLogFlags(cmd *cobra.Command) {
	_ = flag.Set("logtostderr", "true")
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	// glog 要求 flag 已经解析，实际取值由 pflag 直接写入。
	_ = flag.CommandLine.Parse(nil)
}
