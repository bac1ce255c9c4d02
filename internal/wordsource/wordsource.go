// Package wordsource tokenizes bulk-load sources: plain text, one record per
// line, fields separated by commas. Every non-empty field is one word.
package wordsource

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Separator splits the fields of a record.
const Separator = ","

const maxLineSize = 1 << 20

// Read returns every token of _source_ in order. Tokens are trimmed of
// surrounding whitespace and empty tokens are skipped. Nothing is returned
// unless the whole source could be read.
func Read(source io.Reader) ([]string, error) {
	var words []string
	err := Scan(source, func(word string) {
		words = append(words, word)
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// ReadFile opens _path_ and returns its tokens, see Read.
func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexiset: cannot open word source: %w", err)
	}
	defer file.Close()
	return Read(file)
}

// Scan streams the tokens of _source_ to _fn_ as they are read. Callers that
// need all-or-nothing semantics should use Read.
func Scan(source io.Reader, fn func(word string)) error {
	scanner := bufio.NewScanner(source)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		for _, field := range strings.Split(scanner.Text(), Separator) {
			word := strings.TrimSpace(field)
			if word == "" {
				continue
			}
			fn(word)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("lexiset: error reading word source after line %d: %w", line, err)
	}
	return nil
}
