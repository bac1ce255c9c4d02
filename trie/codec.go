package trie

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Separator follows every word in the text encoding.
const Separator = ' '

// WriteTo writes every word in lexicographic order, each followed by a space
func (t *PrefixTree) WriteTo(stream io.Writer) (int64, error) {
	writer := bufio.NewWriter(stream)
	var written int64
	for word := range t.Words() {
		n, err := writer.WriteString(word)
		written += int64(n)
		if err != nil {
			return written, err
		}
		if err := writer.WriteByte(Separator); err != nil {
			return written, err
		}
		written++
	}
	if err := writer.Flush(); err != nil {
		return written, err
	}
	return written, nil
}

// ReadFrom inserts every whitespace-delimited token of _stream_ into the
// tree. All tokens are validated before the first insert, so an invalid
// token leaves the tree unchanged.
func (t *PrefixTree) ReadFrom(stream io.Reader) (int64, error) {
	counter := &countingReader{reader: stream}
	words, err := readWords(counter)
	if err != nil {
		return counter.n, err
	}
	for _, word := range words {
		t.insert(word)
	}
	return counter.n, nil
}

// MarshalText encodes the tree as its WriteTo output
func (t *PrefixTree) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := t.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalText replaces the words of the tree with those in _text_.
// Invalid text leaves the tree unchanged.
func (t *PrefixTree) UnmarshalText(text []byte) error {
	words, err := readWords(bytes.NewReader(text))
	if err != nil {
		return err
	}
	t.Clear()
	for _, word := range words {
		t.insert(word)
	}
	return nil
}

func (t *PrefixTree) String() string {
	text, err := t.MarshalText()
	if err != nil {
		return ""
	}
	return string(text)
}

func readWords(stream io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	scanner.Split(bufio.ScanWords)
	var words []string
	for scanner.Scan() {
		word := scanner.Text()
		if err := Validate(word); err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lexiset: error reading words: %w", err)
	}
	return words, nil
}

type countingReader struct {
	reader io.Reader
	n      int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	c.n += int64(n)
	return n, err
}
