package tokenizer

// Action is the coarse classification of one input character, used as the
// secondary dispatch key alongside the current state.
type Action uint

const (
	// ActionChar covers every character with no structural meaning. Every
	// state keeps a handler in this column, which makes the fallback chain
	// total.
	ActionChar Action = iota
	ActionLT
	ActionGT
	ActionSpace
	ActionEqual
	ActionQuote
	ActionSlash
	// ActionError is a reserved slot. ClassifyRune never produces it; it
	// only resolves when a caller registers a handler there, in which case
	// it catches every action the state has no exact entry for.
	ActionError

	numActions
)

func (a Action) String() string {
	switch a {
	case ActionChar:
		return "char"
	case ActionLT:
		return "lt"
	case ActionGT:
		return "gt"
	case ActionSpace:
		return "space"
	case ActionEqual:
		return "equal"
	case ActionQuote:
		return "quote"
	case ActionSlash:
		return "slash"
	case ActionError:
		return "error"
	}
	return "unknown"
}

// ClassifyRune maps one input character to its action category. It is total:
// any character outside the seven structural ones is ActionChar.
func ClassifyRune(r rune) Action {
	switch r {
	case '<':
		return ActionLT
	case '>':
		return ActionGT
	case ' ', '\t', '\r', '\n':
		return ActionSpace
	case '"', '\'':
		return ActionQuote
	case '=':
		return ActionEqual
	case '/':
		return ActionSlash
	default:
		return ActionChar
	}
}
