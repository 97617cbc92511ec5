package cmd

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"fnloc/internal/analyzer"
	"fnloc/internal/report"
	"fnloc/internal/scanner"
)

// scanOptions 存放 scan 命令的可配置参数。
type scanOptions struct {
	format      string
	output      string
	workers     int
	include     []string
	exclude     []string
	failOnError bool
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	fnloc scan .
//	fnloc scan ./project --include 'src/**' --exclude '**/third_party/**'
//	fnloc scan ./project --format json --output result.json
func newScanCmd(registry *analyzer.Registry) *cobra.Command {
	options := scanOptions{
		format:  "table",
		output:  "fnloc.json",
		workers: runtime.NumCPU(),
	}

	scanCmd := &cobra.Command{
		Use:   "scan PATH",
		Short: "扫描目录或文件并输出逻辑行与函数统计",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(strings.TrimSpace(options.format))
			if format != "table" && format != "json" && format != "yaml" {
				return errors.New("unsupported format, allowed values: table, json, yaml")
			}

			if options.workers <= 0 {
				return errors.New("workers must be greater than 0")
			}

			filter := scanner.Filter{Include: options.include, Exclude: options.exclude}
			service := scanner.NewService(registry, options.workers, filter)
			result, err := service.ScanPath(args[0])
			if err != nil {
				return err
			}

			switch format {
			case "table":
				err = report.PrintTable(cmd.OutOrStdout(), result)
			case "yaml":
				err = report.PrintYAML(cmd.OutOrStdout(), result)
			case "json":
				err = report.PrintJSON(cmd.OutOrStdout(), result)
				if err != nil {
					break
				}

				outputPath := strings.TrimSpace(options.output)
				if outputPath == "" {
					outputPath = "fnloc.json"
				}
				if err = report.WriteJSONFile(outputPath, result); err != nil {
					break
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nJSON exported to %s\n", outputPath)
			}
			if err != nil {
				return err
			}

			if options.failOnError {
				if scanErr := result.Err(); scanErr != nil {
					return fmt.Errorf("%d files could not be analyzed: %w", len(result.Errors), scanErr)
				}
			}
			return nil
		},
	}

	scanCmd.Flags().StringVar(&options.format, "format", options.format, "输出格式: table、json 或 yaml")
	scanCmd.Flags().StringVar(&options.output, "output", options.output, "json 导出文件路径，默认 fnloc.json")
	scanCmd.Flags().IntVar(&options.workers, "workers", options.workers, "并发 worker 数量")
	scanCmd.Flags().StringArrayVar(&options.include, "include", nil, "只扫描匹配的相对路径（doublestar 模式，可重复）")
	scanCmd.Flags().StringArrayVar(&options.exclude, "exclude", nil, "跳过匹配的相对路径（doublestar 模式，可重复）")
	scanCmd.Flags().BoolVar(&options.failOnError, "fail-on-error", false, "存在无法分析的文件时以非零状态退出")

	return scanCmd
}
