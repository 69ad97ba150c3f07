package tokenizer

// State identifies where in the markup grammar the tokenizer currently is.
// Exactly one state is active at a time; together with the action of the
// next character it fully determines the handler that runs.
type State uint

const (
	DataState State = iota
	CDataState
	TagBeginState
	TagNameState
	TagEndState
	AttributeNameStartState
	AttributeNameState
	AttributeNameEndState
	AttributeValueBeginState
	AttributeValueState

	numStates
)

func (s State) String() string {
	switch s {
	case DataState:
		return "data"
	case CDataState:
		return "cdata"
	case TagBeginState:
		return "tagBegin"
	case TagNameState:
		return "tagName"
	case TagEndState:
		return "tagEnd"
	case AttributeNameStartState:
		return "attributeNameStart"
	case AttributeNameState:
		return "attributeName"
	case AttributeNameEndState:
		return "attributeNameEnd"
	case AttributeValueBeginState:
		return "attributeValueBegin"
	case AttributeValueState:
		return "attributeValue"
	}
	return "unknown"
}
