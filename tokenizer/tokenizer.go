package tokenizer

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const cdataMarker = "![CDATA["

var log = logrus.StandardLogger()

// SetLogger redirects the package's transition tracing, which is written at
// debug level. The default is the logrus standard logger.
func SetLogger(l *logrus.Logger) {
	log = l
}

// Tokenizer converts a stream of markup characters into a stream of tokens,
// one character at a time. It never builds a tree and never fails on
// malformed input; unexpected characters degrade to ordinary content via
// the transition table's fallback chain.
//
// A Tokenizer is bound to one logical document. State persists across feed
// calls, so a document may be split at any character boundary over any
// number of calls. It is not safe for concurrent use.
type Tokenizer struct {
	state   State
	builder *TokenBuilder
	table   *TransitionTable
	emit    Emitter
}

// NewTokenizer creates a tokenizer that reports tokens to emit. A nil
// emitter is the one unrecoverable construction error.
func NewTokenizer(emit Emitter) (*Tokenizer, error) {
	if emit == nil {
		return nil, errors.New("tokenizer: nil emitter")
	}
	return &Tokenizer{
		state:   DataState,
		builder: &TokenBuilder{},
		table:   defaultTransitions(),
		emit:    emit,
	}, nil
}

// WriteString feeds a chunk of the document. The emitter may be invoked any
// number of times before it returns. Malformed markup never causes an
// error; there is nothing to report.
func (t *Tokenizer) WriteString(chunk string) {
	for _, r := range chunk {
		t.step(r)
	}
}

// Write feeds a chunk of UTF-8 bytes, making the tokenizer usable as an
// io.Writer. Chunks must split at character boundaries. The returned error
// is always nil.
func (t *Tokenizer) Write(p []byte) (int, error) {
	t.WriteString(string(p))
	return len(p), nil
}

func (t *Tokenizer) step(r rune) {
	a := ClassifyRune(r)
	t.table.resolve(t.state, a)(t, r)
	if log.IsLevelEnabled(logrus.DebugLevel) {
		log.WithFields(logrus.Fields{
			"action": a,
			"state":  t.state,
		}).Debugf("consumed %q", r)
	}
}

// State reports the current state. Exposed for debugging, tests, and
// user-registered handlers.
func (t *Tokenizer) State() State {
	return t.state
}

// SetState moves the tokenizer to s. Intended for user-registered handlers.
func (t *Tokenizer) SetState(s State) {
	t.state = s
}

// Builder exposes the accumulators for introspection and for
// user-registered handlers.
func (t *Tokenizer) Builder() *TokenBuilder {
	return t.builder
}

// Table exposes the transition table so callers can Register overrides
// after construction.
func (t *Tokenizer) Table() *TransitionTable {
	return t.table
}

func (t *Tokenizer) TagName() string {
	return t.builder.TagName()
}

func (t *Tokenizer) AttributeName() string {
	return t.builder.AttributeName()
}

func (t *Tokenizer) AttributeValue() string {
	return t.builder.AttributeValue()
}

// Emit hands a token to the sink unless the current tag context suppresses
// it: while the tag name buffer starts with '?' or '!' the tokenizer is
// inside a processing instruction or declaration, which is tokenized to
// keep the state machine consistent but never surfaces. An empty tag name
// never suppresses.
func (t *Tokenizer) Emit(tt TokenType, data string) {
	if name := t.builder.TagName(); name != "" && (name[0] == '?' || name[0] == '!') {
		return
	}
	t.emit(tt, data)
}

// The default grammar. One function per populated (state, action) cell;
// everything not listed here resolves through the fallback chain.

func defaultTransitions() *TransitionTable {
	tt := &TransitionTable{}
	set := func(s State, a Action, h Handler) {
		tt.dense[s][a] = h
	}

	set(DataState, ActionLT, dataLessThan)
	set(DataState, ActionChar, dataChar)

	set(CDataState, ActionChar, cdataChar)

	set(TagBeginState, ActionSpace, ignore)
	set(TagBeginState, ActionSlash, tagBeginSlash)
	set(TagBeginState, ActionChar, tagBeginChar)

	set(TagNameState, ActionSpace, tagNameSpace)
	set(TagNameState, ActionGT, tagNameGreaterThan)
	set(TagNameState, ActionSlash, tagNameSlash)
	set(TagNameState, ActionChar, tagNameChar)

	set(TagEndState, ActionGT, tagEndGreaterThan)
	set(TagEndState, ActionChar, ignore)

	set(AttributeNameStartState, ActionSpace, ignore)
	set(AttributeNameStartState, ActionGT, attributeNameStartGreaterThan)
	set(AttributeNameStartState, ActionSlash, attributeNameStartSlash)
	set(AttributeNameStartState, ActionChar, attributeNameStartChar)

	set(AttributeNameState, ActionSpace, attributeNameSpace)
	set(AttributeNameState, ActionEqual, attributeNameEqual)
	set(AttributeNameState, ActionGT, attributeNameGreaterThan)
	set(AttributeNameState, ActionSlash, attributeNameSlash)
	set(AttributeNameState, ActionChar, attributeNameChar)

	set(AttributeNameEndState, ActionSpace, ignore)
	set(AttributeNameEndState, ActionEqual, attributeNameEqual)
	set(AttributeNameEndState, ActionGT, attributeNameGreaterThan)
	set(AttributeNameEndState, ActionChar, attributeNameEndChar)

	set(AttributeValueBeginState, ActionSpace, ignore)
	set(AttributeValueBeginState, ActionQuote, attributeValueBeginQuote)
	set(AttributeValueBeginState, ActionGT, attributeValueBeginGreaterThan)
	set(AttributeValueBeginState, ActionChar, attributeValueBeginChar)

	set(AttributeValueState, ActionSpace, attributeValueSpace)
	set(AttributeValueState, ActionQuote, attributeValueQuote)
	set(AttributeValueState, ActionGT, attributeValueGreaterThan)
	set(AttributeValueState, ActionSlash, attributeValueSlash)
	set(AttributeValueState, ActionChar, attributeValueChar)

	return tt
}

func ignore(t *Tokenizer, r rune) {}

func dataChar(t *Tokenizer, r rune) {
	t.builder.WriteText(r)
}

func dataLessThan(t *Tokenizer, r rune) {
	if text := t.builder.Text(); strings.TrimSpace(text) != "" {
		t.Emit(TextToken, text)
	}
	t.builder.ResetText()
	t.builder.ResetTagName()
	t.builder.SetClosing(false)
	t.state = TagBeginState
}

// cdataChar accumulates raw content. Every action funnels here through the
// fallback chain, so structural characters lose their meaning inside a
// CDATA section. The emitted payload is the content strictly between the
// <![CDATA[ and ]]> markers.
func cdataChar(t *Tokenizer, r rune) {
	t.builder.WriteText(r)
	if text := t.builder.Text(); strings.HasSuffix(text, "]]>") {
		t.Emit(TextToken, text[:len(text)-3])
		t.builder.ResetText()
		t.state = DataState
	}
}

func tagBeginChar(t *Tokenizer, r rune) {
	t.builder.ResetTagName()
	t.builder.WriteTagName(r)
	t.state = TagNameState
}

// tagBeginSlash marks a closing tag. The state does not change; the next
// ordinary character starts the tag name.
func tagBeginSlash(t *Tokenizer, r rune) {
	t.builder.ResetTagName()
	t.builder.SetClosing(true)
}

func tagNameSpace(t *Tokenizer, r rune) {
	if t.builder.Closing() {
		t.state = TagEndState
		return
	}
	t.Emit(StartTagToken, t.builder.TagName())
	t.state = AttributeNameStartState
}

func tagNameGreaterThan(t *Tokenizer, r rune) {
	if t.builder.Closing() {
		t.Emit(EndTagToken, t.builder.TagName())
	} else {
		t.Emit(StartTagToken, t.builder.TagName())
	}
	t.builder.ResetText()
	t.state = DataState
}

// tagNameSlash starts a self-closing tag: the start tag is emitted here and
// the matching end tag follows when tagEnd sees the '>'.
func tagNameSlash(t *Tokenizer, r rune) {
	t.Emit(StartTagToken, t.builder.TagName())
	t.state = TagEndState
}

func tagNameChar(t *Tokenizer, r rune) {
	t.builder.WriteTagName(r)
	if t.builder.TagName() == cdataMarker {
		t.builder.ResetTagName()
		t.builder.ResetText()
		t.state = CDataState
	}
}

func tagEndGreaterThan(t *Tokenizer, r rune) {
	t.Emit(EndTagToken, t.builder.TagName())
	t.builder.ResetText()
	t.state = DataState
}

func attributeNameStartChar(t *Tokenizer, r rune) {
	t.builder.ResetAttributeName()
	t.builder.WriteAttributeName(r)
	t.state = AttributeNameState
}

func attributeNameStartGreaterThan(t *Tokenizer, r rune) {
	t.builder.ResetText()
	t.state = DataState
}

func attributeNameStartSlash(t *Tokenizer, r rune) {
	t.builder.SetClosing(true)
	t.state = TagEndState
}

func attributeNameSpace(t *Tokenizer, r rune) {
	t.state = AttributeNameEndState
}

func attributeNameEqual(t *Tokenizer, r rune) {
	t.Emit(AttributeNameToken, t.builder.AttributeName())
	t.state = AttributeValueBeginState
}

// attributeNameGreaterThan closes the tag on a valueless attribute; the
// attribute still gets an empty value token so name/value tokens stay
// paired.
func attributeNameGreaterThan(t *Tokenizer, r rune) {
	t.Emit(AttributeNameToken, t.builder.AttributeName())
	t.Emit(AttributeValueToken, "")
	t.builder.ResetText()
	t.state = DataState
}

func attributeNameSlash(t *Tokenizer, r rune) {
	t.builder.SetClosing(true)
	t.Emit(AttributeNameToken, t.builder.AttributeName())
	t.Emit(AttributeValueToken, "")
	t.state = TagEndState
}

func attributeNameChar(t *Tokenizer, r rune) {
	t.builder.WriteAttributeName(r)
}

// attributeNameEndChar flushes the just-finished valueless attribute and
// starts the next one with this character.
func attributeNameEndChar(t *Tokenizer, r rune) {
	t.Emit(AttributeNameToken, t.builder.AttributeName())
	t.Emit(AttributeValueToken, "")
	t.builder.ResetAttributeName()
	t.builder.WriteAttributeName(r)
	t.state = AttributeNameState
}

func attributeValueBeginQuote(t *Tokenizer, r rune) {
	t.builder.SetOpeningQuote(r)
	t.builder.ResetAttributeValue()
	t.state = AttributeValueState
}

func attributeValueBeginGreaterThan(t *Tokenizer, r rune) {
	t.Emit(AttributeValueToken, "")
	t.builder.ResetText()
	t.state = DataState
}

func attributeValueBeginChar(t *Tokenizer, r rune) {
	t.builder.SetOpeningQuote(0)
	t.builder.ResetAttributeValue()
	t.builder.WriteAttributeValue(r)
	t.state = AttributeValueState
}

func attributeValueSpace(t *Tokenizer, r rune) {
	if t.builder.OpeningQuote() != 0 {
		t.builder.WriteAttributeValue(r)
		return
	}
	t.Emit(AttributeValueToken, t.builder.AttributeValue())
	t.state = AttributeNameStartState
}

func attributeValueQuote(t *Tokenizer, r rune) {
	if r != t.builder.OpeningQuote() {
		t.builder.WriteAttributeValue(r)
		return
	}
	t.Emit(AttributeValueToken, t.builder.AttributeValue())
	t.state = AttributeNameStartState
}

func attributeValueGreaterThan(t *Tokenizer, r rune) {
	if t.builder.OpeningQuote() != 0 {
		t.builder.WriteAttributeValue(r)
		return
	}
	t.Emit(AttributeValueToken, t.builder.AttributeValue())
	t.builder.ResetText()
	t.state = DataState
}

func attributeValueChar(t *Tokenizer, r rune) {
	t.builder.WriteAttributeValue(r)
}

func attributeValueSlash(t *Tokenizer, r rune) {
	if t.builder.OpeningQuote() != 0 {
		t.builder.WriteAttributeValue(r)
		return
	}
	t.Emit(AttributeValueToken, t.builder.AttributeValue())
	t.builder.SetClosing(true)
	t.state = TagEndState
}
