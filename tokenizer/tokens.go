package tokenizer

import "strings"

type TokenType uint

const (
	TextToken TokenType = iota
	StartTagToken
	EndTagToken
	AttributeNameToken
	AttributeValueToken
)

func (t TokenType) String() string {
	switch t {
	case TextToken:
		return "text"
	case StartTagToken:
		return "startTag"
	case EndTagToken:
		return "endTag"
	case AttributeNameToken:
		return "attributeName"
	case AttributeValueToken:
		return "attributeValue"
	}
	return "unknown"
}

// Token is one unit of lexical output: text content, a tag boundary, or an
// attribute fragment. The tokenizer itself never stores tokens; it hands
// each one to the caller's Emitter as soon as it is complete.
type Token struct {
	Type TokenType
	Data string
}

// Emitter receives completed tokens. It is invoked synchronously from
// inside a feed call and must not write more input into the same tokenizer.
type Emitter func(TokenType, string)

// TokenBuilder owns the mutable accumulators a token is assembled from.
// Handlers are the only writers; the getters exist for introspection and
// for user-registered handlers that need to inspect partial results.
type TokenBuilder struct {
	text         strings.Builder
	tagName      strings.Builder
	attrName     strings.Builder
	attrValue    strings.Builder
	closing      bool
	openingQuote rune
}

// WriteText appends a character to the pending text content.
func (b *TokenBuilder) WriteText(r rune) {
	b.text.WriteRune(r)
}

// ResetText clears the pending text content.
func (b *TokenBuilder) ResetText() {
	b.text.Reset()
}

func (b *TokenBuilder) Text() string {
	return b.text.String()
}

// WriteTagName appends a character to the current tag name.
func (b *TokenBuilder) WriteTagName(r rune) {
	b.tagName.WriteRune(r)
}

// ResetTagName clears the current tag name.
func (b *TokenBuilder) ResetTagName() {
	b.tagName.Reset()
}

func (b *TokenBuilder) TagName() string {
	return b.tagName.String()
}

// WriteAttributeName appends a character to the current attribute's name.
func (b *TokenBuilder) WriteAttributeName(r rune) {
	b.attrName.WriteRune(r)
}

// ResetAttributeName clears the current attribute's name.
func (b *TokenBuilder) ResetAttributeName() {
	b.attrName.Reset()
}

func (b *TokenBuilder) AttributeName() string {
	return b.attrName.String()
}

// WriteAttributeValue appends a character to the current attribute's value.
func (b *TokenBuilder) WriteAttributeValue(r rune) {
	b.attrValue.WriteRune(r)
}

// ResetAttributeValue clears the current attribute's value.
func (b *TokenBuilder) ResetAttributeValue() {
	b.attrValue.Reset()
}

func (b *TokenBuilder) AttributeValue() string {
	return b.attrValue.String()
}

// SetClosing marks the tag under construction as a closing or self-closing
// tag. It is reset when the next tag begins.
func (b *TokenBuilder) SetClosing(closing bool) {
	b.closing = closing
}

func (b *TokenBuilder) Closing() bool {
	return b.closing
}

// SetOpeningQuote records the quote character that opened the current
// attribute value. Zero means the value is unquoted.
func (b *TokenBuilder) SetOpeningQuote(r rune) {
	b.openingQuote = r
}

func (b *TokenBuilder) OpeningQuote() rune {
	return b.openingQuote
}
