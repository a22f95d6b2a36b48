package domain

import "strings"

// CommandKind is what the acting combatant chose to do with its turn.
type CommandKind uint8

const (
	CommandUnknown CommandKind = iota
	CommandAct
	CommandMove
	CommandWait
)

var commandStringToKind = map[string]CommandKind{
	"ACT":  CommandAct,
	"MOVE": CommandMove,
	"WAIT": CommandWait,
}

var commandKindToString = map[CommandKind]string{
	CommandAct:  "ACT",
	CommandMove: "MOVE",
	CommandWait: "WAIT",
}

// ParseCommand is case-insensitive; unknown names map to CommandUnknown.
func ParseCommand(s string) CommandKind {
	if val, ok := commandStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return CommandUnknown
}

func (k CommandKind) String() string {
	if val, ok := commandKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// Command is one turn decision. Only the fields of its Kind are meaningful:
// Act uses ActionID, Target and Align; Move uses Dest.
type Command struct {
	Kind     CommandKind     `json:"kind"`
	ActionID string          `json:"actionId,omitempty"`
	Target   UnifiedPosition `json:"target"`
	Align    Alignment       `json:"align"`
	Dest     UnifiedPosition `json:"dest"`
}

func ActCommand(actionID string, target UnifiedPosition, align Alignment) Command {
	return Command{Kind: CommandAct, ActionID: actionID, Target: target, Align: align}
}

func MoveCommand(dest UnifiedPosition) Command {
	return Command{Kind: CommandMove, Dest: dest}
}

func WaitCommand() Command {
	return Command{Kind: CommandWait}
}
