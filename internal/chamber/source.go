package chamber

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"

	"github.com/containment-chamber/containment-chamber/internal/utils"
)

// Source 模板来源
type Source interface {
	// CopyTo 将模板 name 复制到 dst，dst 必须尚不存在
	CopyTo(name, dst string) error
	String() string
}

// DirSource 磁盘上的模板目录
type DirSource struct {
	Root string
}

// CopyTo 复制文件内容、权限和修改时间
func (s DirSource) CopyTo(name, dst string) error {
	src := filepath.Join(s.Root, name)
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("获取模板 %s 信息失败: %w", name, err)
	}
	if info.IsDir() {
		return fmt.Errorf("模板 %s 是目录", name)
	}

	// 先复制到同目录的临时文件，再重命名到目标
	tmp := utils.TempPath(dst)
	if err := copy.Copy(src, tmp, copy.Options{PreserveTimes: true}); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("复制模板 %s 失败: %w", name, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("重命名临时文件失败: %w", err)
	}
	return nil
}

func (s DirSource) String() string { return s.Root }

// EmbedSource 编译进程序的模板
type EmbedSource struct {
	FS fs.FS
}

// CopyTo 复制文件内容，权限与修改时间按 utils.CopyFSFile 的规则处理
func (s EmbedSource) CopyTo(name, dst string) error {
	return utils.CopyFSFile(s.FS, name, dst)
}

func (s EmbedSource) String() string { return "builtin" }

// ResolveSource 优先使用程序旁边的 templates 目录，缺少任一模板时回退到内置模板
func ResolveSource(logger *slog.Logger) Source {
	execPath, err := os.Executable()
	if err != nil {
		logger.Debug("executable path unavailable, using builtin templates", "err", err)
		return EmbedSource{FS: BuiltinFS()}
	}
	return resolveSourceIn(filepath.Dir(execPath), DefaultTemplates(), logger)
}

func resolveSourceIn(dir string, specs []TemplateSpec, logger *slog.Logger) Source {
	root := filepath.Join(dir, TemplateDir)
	for _, spec := range specs {
		path := filepath.Join(root, spec.Source)
		if !utils.FileExists(path) {
			logger.Debug("template missing on disk, using builtin templates", "path", path)
			return EmbedSource{FS: BuiltinFS()}
		}
	}
	logger.Debug("using templates from disk", "root", root)
	return DirSource{Root: root}
}
