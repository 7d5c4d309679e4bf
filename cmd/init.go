package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/containment-chamber/containment-chamber/internal/chamber"
)

func runInit(out io.Writer) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("获取当前工作目录失败: %w", err)
	}

	installer := &chamber.Installer{
		Out:    out,
		Dir:    cwd,
		Source: sourceResolver(logger),
		Logger: logger,
	}
	_, err = installer.Run()
	return err
}
