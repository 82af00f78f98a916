package routeros

import (
	"fmt"
	"io"
	"strings"
)

// engine frames sentences on the connection it reads from and writes to.
type engine struct {
	reader *reader
	writer io.Writer
	logger Logger
}

func newEngine(conn io.ReadWriter, logger Logger) *engine {
	return &engine{
		reader: newReader(conn),
		writer: conn,
		logger: logger,
	}
}

// WriteSentence encodes the words followed by the empty word ending
// the sentence, and sends them with a single write.
func (e *engine) WriteSentence(words ...string) error {
	e.logger.Debug(">>> " + sentenceToString(words))
	var sentence []byte
	for _, word := range words {
		sentence = appendWord(sentence, word)
	}
	sentence = appendWord(sentence, "")
	_, err := e.writer.Write(sentence)
	if err != nil {
		return fmt.Errorf("writing sentence: %w", err)
	}
	return nil
}

func appendWord(dst []byte, word string) []byte {
	dst = append(dst, encodeLength(len(word))...)
	return append(dst, word...)
}

// encodeLength returns the 1 to 5 bytes length prefix of a word.
//
//nolint:gomnd
func encodeLength(length int) []byte {
	switch {
	case length < 0x80:
		return []byte{byte(length)}
	case length < 0x4000:
		return []byte{byte(length>>8) | 0x80, byte(length)}
	case length < 0x200000:
		return []byte{byte(length>>16) | 0xC0, byte(length >> 8), byte(length)}
	case length < 0x10000000:
		return []byte{byte(length>>24) | 0xE0, byte(length >> 16), byte(length >> 8), byte(length)}
	default:
		return []byte{0xF0, byte(length >> 24), byte(length >> 16), byte(length >> 8), byte(length)}
	}
}

func (e *engine) ReadSentence() (words []string, err error) {
	words, err = e.reader.readSentence()
	if err != nil {
		return nil, err
	}
	e.logger.Debug("<<< " + sentenceToString(words))
	return words, nil
}

var secretAttributePrefixes = []string{"=password=", "=response="} //nolint:gochecknoglobals

func sentenceToString(words []string) string {
	shown := make([]string, len(words))
	for i, word := range words {
		shown[i] = word
		for _, prefix := range secretAttributePrefixes {
			if strings.HasPrefix(word, prefix) {
				shown[i] = prefix + "[redacted]"
				break
			}
		}
	}
	return strings.Join(shown, " ")
}
