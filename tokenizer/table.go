package tokenizer

// Handler consumes the character that triggered a transition. A handler may
// read and write the tokenizer's accumulators, change its state, and emit
// tokens. Handlers must not block and must complete in bounded time; they
// also must not feed more input into the tokenizer they run inside.
type Handler func(t *Tokenizer, r rune)

type transitionKey struct {
	state  State
	action Action
}

// TransitionTable associates (state, action) pairs with handlers. The
// default grammar lives in a dense array filled once at construction, so
// the unmodified hot path is a pair of array indexes. Register writes into
// a sparse override layer that is consulted first; it is allocated lazily
// and stays nil until a caller actually customizes the grammar.
type TransitionTable struct {
	dense     [numStates][numActions]Handler
	overrides map[transitionKey]Handler
}

// Register installs h for the (s, a) pair, shadowing the default grammar.
// This is the supported way to patch tokenization of documents the default
// grammar mishandles, without touching engine code. Registering a handler
// on ActionError gives the state a catch-all that runs before the generic
// character fallback. A nil h removes a previous override, restoring the
// default.
func (tt *TransitionTable) Register(s State, a Action, h Handler) {
	if h == nil {
		delete(tt.overrides, transitionKey{s, a})
		return
	}
	if tt.overrides == nil {
		tt.overrides = make(map[transitionKey]Handler)
	}
	tt.overrides[transitionKey{s, a}] = h
}

func (tt *TransitionTable) lookup(s State, a Action) Handler {
	if tt.overrides != nil {
		if h, ok := tt.overrides[transitionKey{s, a}]; ok {
			return h
		}
	}
	return tt.dense[s][a]
}

// resolve applies the fallback chain: the exact action, then the reserved
// error slot, then the generic character handler. Every state has a char
// handler, so resolve never comes back empty and the engine never halts on
// unexpected input.
func (tt *TransitionTable) resolve(s State, a Action) Handler {
	if h := tt.lookup(s, a); h != nil {
		return h
	}
	if h := tt.lookup(s, ActionError); h != nil {
		return h
	}
	return tt.lookup(s, ActionChar)
}
