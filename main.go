package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"xmltok/input"
	"xmltok/tokenizer"
)

var tokenColors = map[tokenizer.TokenType]*color.Color{
	tokenizer.TextToken:           color.New(color.FgWhite),
	tokenizer.StartTagToken:       color.New(color.FgGreen),
	tokenizer.EndTagToken:         color.New(color.FgRed),
	tokenizer.AttributeNameToken:  color.New(color.FgCyan),
	tokenizer.AttributeValueToken: color.New(color.FgYellow),
}

func main() {
	verbose := flag.Bool("v", false, "trace every state transition")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	if err := run(flag.Arg(0)); err != nil {
		logrus.Fatal(err)
	}
}

// run tokenizes the named file, or stdin when no file is given, and prints
// one token per line.
func run(path string) error {
	var src io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "open %s", path)
		}
		defer f.Close()
		src = f
	}

	tok, err := tokenizer.NewTokenizer(func(t tokenizer.TokenType, data string) {
		tokenColors[t].Printf("%-15s", t)
		fmt.Printf(" %q\n", data)
	})
	if err != nil {
		return err
	}

	doc, err := io.ReadAll(input.NewReader(src))
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	tok.WriteString(string(doc))
	return nil
}
