// Package input prepares raw document bytes for tokenization. The
// tokenizer itself deliberately knows nothing about encodings or line
// endings; this package is the collaborator that sits in front of it.
package input

import (
	"io"

	"golang.org/x/text/transform"
)

const replacementCharacter = "�"

// Normalizer is a transform.Transformer that converts CRLF and bare CR
// line endings to LF and replaces NUL bytes with U+FFFD, so downstream
// character handling never sees either.
type Normalizer struct {
	prev byte
}

func (n *Normalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		switch c {
		case '\r':
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\n'
			nDst++
		case '\n':
			// the LF of a CRLF pair was already written for the CR
			if n.prev == '\r' {
				n.prev = c
				nSrc++
				continue
			}
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\n'
			nDst++
		case 0:
			if nDst+len(replacementCharacter) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], replacementCharacter)
		default:
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
		}
		n.prev = c
		nSrc++
	}
	return nDst, nSrc, nil
}

func (n *Normalizer) Reset() {
	n.prev = 0
}

// NewReader wraps r so reads come back normalized. CR state carries across
// read boundaries; a CRLF pair split between two reads still collapses to
// one LF.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, new(Normalizer))
}

// NormalizeString is a convenience for already-buffered input.
func NormalizeString(s string) string {
	out, _, _ := transform.String(new(Normalizer), s)
	return out
}
