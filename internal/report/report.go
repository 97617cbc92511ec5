package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"fnloc/internal/model"
)

// PrintTable 使用表格展示扫描结果。
func PrintTable(writer io.Writer, result model.ScanResult) error {
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "SCANNED PATH\t%s\n", result.ScannedPath); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "RUN ID\t%s\n\n", result.RunID); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(tw, "FILE\tLANGUAGE\tLOC\tFUNCTIONS\tFUNCTION LOC\tNON-FUNCTION LOC"); err != nil {
		return err
	}
	for _, item := range result.Files {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%s\t%d\t%d\t%d\t%d\n",
			item.Path,
			item.Language,
			item.LogicalLines,
			item.FunctionCount,
			item.FunctionLines,
			item.NonFunctionLines,
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(
		tw,
		"\nTOTAL\t%s files\t%s\t%s\t%s\t%s\n",
		humanize.Comma(result.Total.Files),
		humanize.Comma(result.Total.LogicalLines),
		humanize.Comma(result.Total.FunctionCount),
		humanize.Comma(result.Total.FunctionLines),
		humanize.Comma(result.Total.NonFunctionLines),
	); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "SCANNED\t%s\n", humanize.IBytes(uint64(result.Total.Bytes))); err != nil {
		return err
	}

	if len(result.Errors) > 0 {
		if _, err := fmt.Fprintln(tw, "\nERROR FILE\tMESSAGE"); err != nil {
			return err
		}
		for _, item := range result.Errors {
			if _, err := fmt.Fprintf(tw, "%s\t%s\n", item.Path, item.Error); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}

// PrintJSON 把扫描结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.ScanResult) error {
	content, err := marshalJSON(result)
	if err != nil {
		return err
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径。
// 写入前会先用内置 schema 校验；如果目录不存在会自动创建。
func WriteJSONFile(path string, result model.ScanResult) error {
	content, err := marshalJSON(result)
	if err != nil {
		return err
	}
	if err := ValidateJSON(content); err != nil {
		return err
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}

// PrintYAML 把扫描结果输出为 YAML。
func PrintYAML(writer io.Writer, result model.ScanResult) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return encoder.Close()
}

func marshalJSON(result model.ScanResult) ([]byte, error) {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return append(content, '\n'), nil
}
