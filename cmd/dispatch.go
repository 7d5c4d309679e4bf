package cmd

// Action 根据第一个参数决定的动作
type Action int

const (
	// ActionAlpha 无参数或无法识别的参数
	ActionAlpha Action = iota
	// ActionHelp help、--help、-h
	ActionHelp
	// ActionInit init
	ActionInit
)

func (a Action) String() string {
	switch a {
	case ActionHelp:
		return "help"
	case ActionInit:
		return "init"
	default:
		return "alpha"
	}
}

// ParseAction 只检查第一个参数，区分大小写，其余参数忽略
func ParseAction(args []string) Action {
	if len(args) == 0 {
		return ActionAlpha
	}

	switch args[0] {
	case "help", "--help", "-h":
		return ActionHelp
	case "init":
		return ActionInit
	default:
		return ActionAlpha
	}
}
