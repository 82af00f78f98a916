package routeros

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_encodeLength(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		length  int
		encoded []byte
	}{
		"zero":            {length: 0, encoded: []byte{0x00}},
		"one_byte_max":    {length: 0x7F, encoded: []byte{0x7F}},
		"two_bytes_min":   {length: 0x80, encoded: []byte{0x80, 0x80}},
		"two_bytes_max":   {length: 0x3FFF, encoded: []byte{0xBF, 0xFF}},
		"three_bytes_max": {length: 0x1FFFFF, encoded: []byte{0xDF, 0xFF, 0xFF}},
		"four_bytes_max":  {length: 0xFFFFFFF, encoded: []byte{0xEF, 0xFF, 0xFF, 0xFF}},
		"five_bytes":      {length: 0x10000000, encoded: []byte{0xF0, 0x10, 0x00, 0x00, 0x00}},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			encoded := encodeLength(testCase.length)
			assert.Equal(t, testCase.encoded, encoded)

			reader := newReader(bytes.NewReader(encoded))
			length, err := reader.readLength()
			require.NoError(t, err)
			assert.Equal(t, int64(testCase.length), length)
		})
	}
}

func Test_reader_readLength_controlByte(t *testing.T) {
	t.Parallel()

	reader := newReader(bytes.NewReader([]byte{0xF8}))

	_, err := reader.readLength()

	assert.ErrorIs(t, err, ErrControlByte)
	assert.EqualError(t, err, "unsupported control byte: 0xf8")
}

func Test_engine_roundTrip(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)
	engine := newEngine(buffer, noopLogger{})

	long := strings.Repeat("x", 200)
	sentences := [][]string{
		{"/ip/dhcp-server/lease/print"},
		{"!re", "=address=10.0.0.5", "=comment=" + long},
		{"!done"},
	}
	for _, sentence := range sentences {
		err := engine.WriteSentence(sentence...)
		require.NoError(t, err)
	}

	for _, expected := range sentences {
		words, err := engine.ReadSentence()
		require.NoError(t, err)
		assert.Equal(t, expected, words)
	}

	_, err := engine.ReadSentence()
	assert.EqualError(t, err, "reading word length: EOF")
}

func Test_engine_ReadSentence_empty(t *testing.T) {
	t.Parallel()

	engine := newEngine(bytes.NewBuffer([]byte{0x00}), noopLogger{})

	words, err := engine.ReadSentence()

	require.NoError(t, err)
	assert.Equal(t, []string{}, words)
}

func Test_engine_ReadSentence_truncatedWord(t *testing.T) {
	t.Parallel()

	engine := newEngine(bytes.NewBuffer([]byte{0x05, 'a', 'b'}), noopLogger{})

	_, err := engine.ReadSentence()

	assert.EqualError(t, err, "reading word of 5 bytes: unexpected EOF")
}

func Test_engine_ReadSentence_wordTooLong(t *testing.T) {
	t.Parallel()

	// 0xF0 prefix with a 4 GiB - 1 length, without the word bytes.
	stream := []byte{0xF0, 0xFF, 0xFF, 0xFF, 0xFF}
	engine := newEngine(bytes.NewBuffer(stream), noopLogger{})

	_, err := engine.ReadSentence()

	assert.ErrorIs(t, err, ErrWordTooLong)
	assert.EqualError(t, err, "word is too long: 4294967295 bytes")
}

func Test_engine_ReadSentence_maxWordLength(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)
	engine := newEngine(buffer, noopLogger{})
	word := strings.Repeat("x", maxWordLength)
	err := engine.WriteSentence(word)
	require.NoError(t, err)

	words, err := engine.ReadSentence()

	require.NoError(t, err)
	assert.Equal(t, []string{word}, words)
}

type countingWriter struct {
	writes int
	err    error
	bytes.Buffer
}

func (w *countingWriter) Write(b []byte) (int, error) {
	w.writes++
	if w.err != nil {
		return 0, w.err
	}
	return w.Buffer.Write(b)
}

func Test_engine_WriteSentence(t *testing.T) {
	t.Parallel()

	t.Run("single_write", func(t *testing.T) {
		t.Parallel()

		writer := &countingWriter{}
		sentenceEngine := &engine{writer: writer, logger: noopLogger{}}

		err := sentenceEngine.WriteSentence("/login", "=name=admin")

		require.NoError(t, err)
		assert.Equal(t, 1, writer.writes)
		expected := append([]byte{6}, "/login"...)
		expected = append(expected, 11)
		expected = append(expected, "=name=admin"...)
		expected = append(expected, 0)
		assert.Equal(t, expected, writer.Bytes())
	})

	t.Run("write_error", func(t *testing.T) {
		t.Parallel()

		errTest := errors.New("test error")
		writer := &countingWriter{err: errTest}
		sentenceEngine := &engine{writer: writer, logger: noopLogger{}}

		err := sentenceEngine.WriteSentence("/interface/print")

		assert.ErrorIs(t, err, errTest)
		assert.EqualError(t, err, "writing sentence: test error")
	})
}

func Test_sentenceToString(t *testing.T) {
	t.Parallel()

	s := sentenceToString([]string{"/login", "=name=admin",
		"=password=secret", "=response=00abcdef"})

	assert.Equal(t, "/login =name=admin =password=[redacted] =response=[redacted]", s)
}
