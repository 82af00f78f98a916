package routeros

import (
	"bufio"
	"fmt"
	"io"
)

// maxWordLength bounds the memory allocated for a single word,
// whatever length prefix the router sends.
const maxWordLength = 16 << 20

type reader struct {
	conn *bufio.Reader
}

func newReader(conn io.Reader) *reader {
	return &reader{
		conn: bufio.NewReader(conn),
	}
}

// readSentence reads words until the empty word terminating the sentence.
// A sentence made only of the terminating empty word is returned as an
// empty slice.
func (r *reader) readSentence() (words []string, err error) {
	words = []string{}
	for {
		b, err := r.readWord()
		if err != nil {
			return nil, err
		} else if len(b) == 0 {
			return words, nil
		}
		words = append(words, string(b))
	}
}

func (r *reader) readWord() ([]byte, error) {
	length, err := r.readLength()
	if err != nil {
		return nil, fmt.Errorf("reading word length: %w", err)
	}
	if length > maxWordLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrWordTooLong, length)
	}
	b := make([]byte, length)
	_, err = io.ReadFull(r.conn, b)
	if err != nil {
		return nil, fmt.Errorf("reading word of %d bytes: %w", length, err)
	}
	return b, nil
}

//nolint:gomnd
func (r *reader) readLength() (length int64, err error) {
	first, err := r.conn.ReadByte()
	if err != nil {
		return 0, err
	}

	var extraBytes int
	switch {
	case first&0x80 == 0x00:
		return int64(first), nil
	case first&0xC0 == 0x80:
		length, extraBytes = int64(first&^0xC0), 1
	case first&0xE0 == 0xC0:
		length, extraBytes = int64(first&^0xE0), 2
	case first&0xF0 == 0xE0:
		length, extraBytes = int64(first&^0xF0), 3
	case first == 0xF0:
		length, extraBytes = 0, 4
	default:
		return 0, fmt.Errorf("%w: 0x%02x", ErrControlByte, first)
	}

	rest := make([]byte, extraBytes)
	_, err = io.ReadFull(r.conn, rest)
	if err != nil {
		return 0, err
	}
	for _, b := range rest {
		length = length<<8 | int64(b)
	}
	return length, nil
}
