package cmd

import (
	"github.com/spf13/cobra"

	"fnloc/internal/report"
)

// newLogicalCmd 创建 lloc 子命令。
// 只输出逻辑行总数，不做函数拆分。
// 命令示例：fnloc lloc main.c
func newLogicalCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "lloc FILE",
		Short: "只统计逻辑行总数",
		Args:  singleFileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, fileReport, err := analyzeSourceFile(cmd, args)
			if err != nil {
				return err
			}
			return report.PrintLogical(cmd.OutOrStdout(), report.Banner{Title: "LLoC", Version: version}, source, fileReport)
		},
	}
}
