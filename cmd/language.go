package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fnloc/internal/analyzer"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示 scan 能识别的源码方言以及对应文件后缀。
func newLanguageCmd(registry *analyzer.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示可识别的方言及后缀",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "DIALECT\tEXTENSIONS"); err != nil {
				return err
			}

			for _, item := range registry.Dialects() {
				if _, err := fmt.Fprintf(writer, "%s\t%s\n", item.Name, strings.Join(item.Extensions, ", ")); err != nil {
					return err
				}
			}

			return writer.Flush()
		},
	}
}
