package cmd

import (
	"github.com/spf13/cobra"

	"fnloc/internal/report"
)

// newSchemaCmd 创建 schema 子命令，输出 JSON 报告的 schema。
func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "输出 scan JSON 报告的 JSON Schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write(report.Schema())
			return err
		},
	}
}
