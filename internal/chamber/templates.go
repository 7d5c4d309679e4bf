// Package chamber installs the bundled project templates into a directory.
package chamber

import (
	"embed"
	"io/fs"
)

// TemplateDir 模板目录名，随程序一起发布
const TemplateDir = "templates"

//go:embed templates/.pre-commit-config.yaml templates/pyproject.toml
var builtinTemplatesFS embed.FS

// TemplateSpec 模板文件与目标文件名的对应关系
type TemplateSpec struct {
	Source string // 模板目录内的相对路径
	Target string // 写入工作目录时使用的文件名
}

// DefaultTemplates 返回 init 安装的模板列表，顺序即安装顺序
func DefaultTemplates() []TemplateSpec {
	return []TemplateSpec{
		{Source: ".pre-commit-config.yaml", Target: ".pre-commit-config.yaml"},
		{Source: "pyproject.toml", Target: "pyproject.toml"},
	}
}

// BuiltinFS 返回内置模板文件系统，根目录即模板目录
func BuiltinFS() fs.FS {
	sub, err := fs.Sub(builtinTemplatesFS, TemplateDir)
	if err != nil {
		// TemplateDir 是合法的常量路径，fs.Sub 不会失败
		panic(err)
	}
	return sub
}
