/*
Package tokenizer is a streaming, character-at-a-time lexer for XML-shaped
markup. It converts input into a flat stream of tokens (start tag, end tag,
attribute name, attribute value, text) without building a document tree,
validating well-formedness, resolving entities, or handling encodings.

Create a tokenizer with a callback and feed it chunks; the callback runs
synchronously for every completed token:

	tok, err := tokenizer.NewTokenizer(func(t tokenizer.TokenType, data string) {
		fmt.Printf("%s %q\n", t, data)
	})
	if err != nil {
		// only possible error: nil callback
	}
	tok.WriteString(`<hello color="blue">`)
	tok.WriteString(`Hello, world!</hello>`)

Chunk boundaries do not matter: tokenizing a document in pieces produces
exactly the token stream of tokenizing it in one call.

Malformed markup never produces an error. Dispatch resolves through a
fallback chain (exact action, reserved error slot, generic character), so
every character lands in a defined handler and the worst case is that an
unexpected operator gets treated as ordinary content. When that default is
wrong for a particular document, patch the grammar through the transition
table instead of forking the engine:

	tok.Table().Register(tokenizer.TagBeginState, tokenizer.ActionLT,
		func(t *tokenizer.Tokenizer, r rune) {})

Processing instructions and declarations (<?...?>, <!...>) are consumed to
keep the state machine consistent but never surface as tokens. CDATA
sections surface as a single text token holding the content between the
markers.
*/
package tokenizer
