// Package crypt decrypts section contents before disassembly. Keys are read
// from a component descriptor file, a line-based text format:
//
//	# comment
//	component <name> key <hex bytes> iv <hex bytes>
//
// with one component per line. Payloads are transformed with AES in CTR
// mode, so the same call both encrypts and decrypts.
package crypt

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/db47h/lex"
)

// Descriptor holds the key material for one named component.
type Descriptor struct {
	Component string
	Key       []byte
	IV        []byte
}

// Token types of the descriptor format.
const (
	tokEOF lex.Token = iota
	tokEOL
	tokWord
)

// descInit returns the initial state function for the descriptor lexer.
func descInit() lex.StateFn {
	isWord := func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) ||
			r == '_' || r == '-' || r == '.' || r == '$'
	}

	return func(s *lex.State) lex.StateFn {
		r := s.Next()
		pos := s.Pos()
		switch {
		case r == lex.EOF:
			s.Emit(pos, tokEOF, nil)
			return nil

		case r == '\n':
			s.Emit(pos, tokEOL, nil)
			return nil

		case r == '#':
			for r = s.Next(); r != '\n' && r != lex.EOF; r = s.Next() {
			}
			s.Backup()
			return nil

		case unicode.IsSpace(r):
			return nil

		case isWord(r):
			word := []rune{r}
			for r = s.Next(); isWord(r); r = s.Next() {
				word = append(word, r)
			}
			s.Backup()
			s.Emit(pos, tokWord, string(word))
			return nil

		default:
			s.Errorf(pos, "invalid character %#U", r)
			return nil
		}
	}
}

// ParseDescriptors reads component descriptors from r. The name is used in
// diagnostics only.
func ParseDescriptors(name string, r io.Reader) ([]Descriptor, error) {
	l := lex.NewLexer(lex.NewFile(name, r), descInit())

	var descriptors []Descriptor
	line, err := parseLine(l)
	for ; err == nil && line != nil; line, err = parseLine(l) {
		descriptor, err := newDescriptor(line)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		descriptors = append(descriptors, descriptor)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return descriptors, nil
}

// LoadDescriptors reads component descriptors from a file.
func LoadDescriptors(filename string) ([]Descriptor, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening descriptor file %s: %w", filename, err)
	}
	defer func() { _ = file.Close() }()

	return ParseDescriptors(filename, file)
}

// parseLine collects the words of the next non-empty line. It returns nil at
// end of input.
func parseLine(l *lex.Lexer) ([]string, error) {
	var words []string
	for {
		tok, _, value := l.Lex()
		switch tok {
		case tokEOF:
			if len(words) > 0 {
				return words, nil
			}
			return nil, nil

		case tokEOL:
			if len(words) > 0 {
				return words, nil
			}

		case tokWord:
			words = append(words, value.(string))

		case lex.Error:
			// The token value is an error or its string form, depending on
			// the lexer revision.
			return nil, fmt.Errorf("%v", value)
		}
	}
}

// newDescriptor validates one descriptor line.
func newDescriptor(words []string) (Descriptor, error) {
	if len(words) != 6 || words[0] != "component" || words[2] != "key" || words[4] != "iv" {
		return Descriptor{}, fmt.Errorf("malformed descriptor line, want 'component <name> key <hex> iv <hex>'")
	}

	key, err := hex.DecodeString(words[3])
	if err != nil {
		return Descriptor{}, fmt.Errorf("component %s: decoding key: %w", words[1], err)
	}
	iv, err := hex.DecodeString(words[5])
	if err != nil {
		return Descriptor{}, fmt.Errorf("component %s: decoding iv: %w", words[1], err)
	}

	return Descriptor{
		Component: words[1],
		Key:       key,
		IV:        iv,
	}, nil
}
