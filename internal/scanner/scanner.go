// Package scanner 提供多文件并发扫描调度能力。
// 该层负责目录遍历、任务分发、并发执行和结果聚合，不负责逐行分类细节。
// 每个文件由独立的 analyzer.Analyzer 处理，文件之间不共享任何状态。
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/golang/glog"

	"fnloc/internal/analyzer"
	"fnloc/internal/model"
)

// Service 是扫描服务对象。
type Service struct {
	registry *analyzer.Registry
	workers  int
	filter   Filter
}

// scanTask 表示一个待分析文件任务。
type scanTask struct {
	absolutePath string
	displayPath  string
	language     string
}

// workerResult 表示 worker 的执行产物。
type workerResult struct {
	fileReport *model.FileReport
	scanError  *model.ScanError
}

// NewService 创建扫描服务。
func NewService(registry *analyzer.Registry, workers int, filter Filter) *Service {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Service{
		registry: registry,
		workers:  workers,
		filter:   filter,
	}
}

// ScanPath 扫描目录或单文件。
func (s *Service) ScanPath(targetPath string) (model.ScanResult, error) {
	var result model.ScanResult

	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return result, errors.New("scan path is empty")
	}

	if err := s.filter.Validate(); err != nil {
		return result, err
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return result, fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteTarget)
	if err != nil {
		return result, fmt.Errorf("stat path: %w", err)
	}

	runID, err := NewRunID()
	if err != nil {
		return result, fmt.Errorf("generate run id: %w", err)
	}

	result.RunID = runID
	result.ScannedPath = absoluteTarget
	glog.V(1).Infof("scan %s started (run %s, %d workers)", absoluteTarget, runID, s.workers)

	tasks := make(chan scanTask, s.workers*4)
	results := make(chan workerResult, s.workers*4)
	walkErrChan := make(chan error, 1)

	var workerGroup sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			s.runWorker(tasks, results)
		}()
	}

	go func() {
		defer close(tasks)
		if info.IsDir() {
			walkErrChan <- s.enqueueDirectoryTasks(absoluteTarget, tasks)
			return
		}
		walkErrChan <- s.enqueueSingleFileTask(absoluteTarget, tasks)
	}()

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	result.Files = make([]model.FileReport, 0)
	result.Errors = make([]model.ScanError, 0)

	for item := range results {
		if item.fileReport != nil {
			result.Files = append(result.Files, *item.fileReport)
		}
		if item.scanError != nil {
			result.Errors = append(result.Errors, *item.scanError)
		}
	}

	if walkErr := <-walkErrChan; walkErr != nil {
		return result, walkErr
	}

	buildSummary(&result)
	glog.V(1).Infof("scan %s finished: %d files, %d errors", absoluteTarget, len(result.Files), len(result.Errors))
	return result, nil
}

// enqueueDirectoryTasks 遍历目录并把可识别的源码文件推入任务队列。
func (s *Service) enqueueDirectoryTasks(root string, tasks chan<- scanTask) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			return nil
		}

		language, ok := s.registry.DialectForFile(path)
		if !ok {
			return nil
		}

		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}
		displayPath := filepath.ToSlash(relativePath)

		if !s.filter.Allows(displayPath) {
			glog.V(2).Infof("skip %s: filtered", displayPath)
			return nil
		}

		tasks <- scanTask{
			absolutePath: path,
			displayPath:  displayPath,
			language:     language,
		}
		return nil
	})
}

// enqueueSingleFileTask 在用户给定单文件路径时创建任务。
// 单文件模式不应用 Filter，用户显式指定的文件总会被扫描。
func (s *Service) enqueueSingleFileTask(filePath string, tasks chan<- scanTask) error {
	language, ok := s.registry.DialectForFile(filePath)
	if !ok {
		return fmt.Errorf("%w: %s", analyzer.ErrUnsupportedExtension, filepath.Ext(filePath))
	}

	tasks <- scanTask{
		absolutePath: filePath,
		displayPath:  filepath.Base(filePath),
		language:     language,
	}
	return nil
}

// runWorker 执行真实的文件读取和状态机分析。
func (s *Service) runWorker(tasks <-chan scanTask, results chan<- workerResult) {
	for task := range tasks {
		report, err := analyzeFile(task.absolutePath)
		if err != nil {
			glog.Warningf("analyze %s: %v", task.displayPath, err)
			results <- workerResult{
				scanError: &model.ScanError{
					Path:  task.displayPath,
					Error: err.Error(),
				},
			}
			continue
		}

		report.Path = task.displayPath
		report.Language = task.language
		glog.V(1).Infof("analyzed %s: %d logical lines, %d functions", task.displayPath, report.LogicalLines, report.FunctionCount)
		results <- workerResult{fileReport: &report}
	}
}

// analyzeFile 打开并分析单个文件。
func analyzeFile(path string) (model.FileReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.FileReport{}, err
	}

	report, analyzeErr := analyzer.Analyze(file)
	closeErr := file.Close()

	if analyzeErr != nil {
		return model.FileReport{}, analyzeErr
	}
	if closeErr != nil {
		return model.FileReport{}, closeErr
	}
	return report, nil
}

// buildSummary 对结果排序并计算总计信息。
func buildSummary(result *model.ScanResult) {
	sort.Slice(result.Files, func(i int, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	sort.Slice(result.Errors, func(i int, j int) bool {
		return result.Errors[i].Path < result.Errors[j].Path
	})

	result.Total = model.TotalMetrics{}
	for _, item := range result.Files {
		result.Total.AddFile(item)
	}
}
