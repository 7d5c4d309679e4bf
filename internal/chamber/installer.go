package chamber

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/containment-chamber/containment-chamber/internal/logging"
	"github.com/containment-chamber/containment-chamber/internal/utils"
)

// Installer 将模板安装到目录中，已存在的目标文件一律跳过
//
// 存在性检查与复制之间没有加锁：同一目录上并发执行时，两个进程可能都认为
// 目标不存在，后完成重命名的一方生效。交互式单人使用下可以接受。
type Installer struct {
	Out       io.Writer      // 进度输出
	Dir       string         // 目标目录
	Source    Source         // 模板来源
	Templates []TemplateSpec // 为空时使用 DefaultTemplates()
	Logger    *slog.Logger   // 为空时丢弃日志
}

// Result 单个模板的安装结果
type Result struct {
	Target  string
	Created bool
}

// Run 按顺序安装全部模板，遇到 I/O 错误立即中止
func (in *Installer) Run() ([]Result, error) {
	logger := in.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	specs := in.Templates
	if len(specs) == 0 {
		specs = DefaultTemplates()
	}

	fmt.Fprint(in.Out, "Initializing containment chamber...\n")

	results := make([]Result, 0, len(specs))
	for _, spec := range specs {
		created, err := in.install(spec, logger)
		if err != nil {
			return results, err
		}
		results = append(results, Result{Target: spec.Target, Created: created})
	}

	fmt.Fprint(in.Out, "Containment chamber initialized!\n")
	return results, nil
}

func (in *Installer) install(spec TemplateSpec, logger *slog.Logger) (bool, error) {
	target := filepath.Join(in.Dir, spec.Target)

	// 目标位置有任何条目（包括悬空的符号链接）都视为已存在
	if utils.PathExists(target) {
		logger.Debug("target exists", "target", target, "action", "skip")
		fmt.Fprintf(in.Out, "Warning: %s already exists, skipping.\n", spec.Target)
		return false, nil
	}

	if err := in.Source.CopyTo(spec.Source, target); err != nil {
		return false, fmt.Errorf("create %s: %w", spec.Target, err)
	}

	logger.Debug("template copied", "target", target, "source", in.Source.String(), "action", "create")
	fmt.Fprintf(in.Out, "Created %s\n", spec.Target)
	return true, nil
}
