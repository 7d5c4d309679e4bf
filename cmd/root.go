package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/containment-chamber/containment-chamber/internal/chamber"
	"github.com/containment-chamber/containment-chamber/internal/logging"
	"github.com/containment-chamber/containment-chamber/internal/version"
)

const (
	alphaMessage = "Containment Chamber is in alpha!\n"

	usageText = `containment-chamber [help|init]
  help  Show this help message
  init  Initialize a new containment chamber
`
)

var (
	logger = logging.New(os.Stderr, slog.LevelWarn)

	// sourceResolver 可在测试中替换
	sourceResolver = chamber.ResolveSource
)

// 关闭 flag 解析：-h、--help 与 help 一样交给 ParseAction 处理，
// cobra 自带的帮助和 "unknown command" 错误都不会出现
var rootCmd = &cobra.Command{
	Use:                "containment-chamber [help|init]",
	Short:              "Scaffold pre-commit and pyproject files into the current directory",
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd.OutOrStdout(), args)
	},
}

func dispatch(out io.Writer, args []string) error {
	action := ParseAction(args)
	logger.Debug("dispatch", "action", action.String(), "args", len(args))

	switch action {
	case ActionHelp:
		_, err := fmt.Fprint(out, usageText)
		return err
	case ActionInit:
		return runInit(out)
	default:
		_, err := fmt.Fprint(out, alphaMessage)
		return err
	}
}

// Execute 运行根命令，出错时在 stderr 打印错误并返回
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	logger.Debug("starting", "version", version.String())

	if err := run(args); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

// run 交给 cobra 执行；cobra 会在 RunE 之前拦截补全请求的保留参数，
// 这两个参数直接走 dispatch，与其他未识别参数一样输出 alpha 信息
func run(args []string) error {
	if len(args) > 0 && isCompletionRequest(args[0]) {
		return dispatch(rootCmd.OutOrStdout(), args)
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func isCompletionRequest(arg string) bool {
	return arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd
}

// printError 仅在终端上输出红色
func printError(w io.Writer, err error) {
	c := color.New(color.FgRed)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	c.Fprintf(w, "Error: %v\n", err)
}
