package utils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileExists 检查文件是否存在
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// PathExists 检查路径本身是否存在，符号链接不跟随（悬空链接也算存在）
func PathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// TempPath 返回与目标同目录的隐藏临时文件路径
func TempPath(path string) string {
	dir, name := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".tmp-%s-%s", name, uuid.NewString()))
}

// AtomicWriteFile 先写临时文件再重命名，避免目标文件出现半写状态
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	if perm == 0 {
		perm = 0644
	}

	tmp := TempPath(path)
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("写入临时文件失败: %w", err)
	}

	// WriteFile 受 umask 影响，这里显式设置权限
	if err := os.Chmod(tmp, perm); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("设置临时文件权限失败: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("重命名临时文件失败: %w", err)
	}

	return nil
}

// CopyFSFile 从 fs.FS 复制单个文件到 dst，尽量保留权限和修改时间
//
// embed.FS 中的文件权限为只读且没有修改时间：权限会补上属主写位，
// 修改时间为零值时不设置。
func CopyFSFile(fsys fs.FS, name, dst string) error {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return fmt.Errorf("获取模板 %s 信息失败: %w", name, err)
	}
	if info.IsDir() {
		return fmt.Errorf("模板 %s 是目录", name)
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("读取模板 %s 失败: %w", name, err)
	}

	perm := info.Mode().Perm() | 0200
	if err := AtomicWriteFile(dst, data, perm); err != nil {
		return err
	}

	if mtime := info.ModTime(); !mtime.IsZero() {
		if err := os.Chtimes(dst, mtime, mtime); err != nil {
			return fmt.Errorf("设置 %s 修改时间失败: %w", dst, err)
		}
	}

	return nil
}
