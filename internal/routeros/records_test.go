package routeros

import (
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/routeros-dump/internal/routeros/mock_routeros"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(string) {}

type closerStub struct {
	closed int
	err    error
}

func (c *closerStub) Close() error {
	c.closed++
	return c.err
}

type reply struct {
	words []string
	err   error
}

func expectQuery(engine *mock_routeros.MockSentenceReadWriter,
	path string, replies []reply) {
	calls := []*gomock.Call{
		engine.EXPECT().WriteSentence(path).Return(nil),
	}
	for _, r := range replies {
		calls = append(calls, engine.EXPECT().ReadSentence().Return(r.words, r.err))
	}
	gomock.InOrder(calls...)
}

func Test_Records(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	s1 := []string{"!re", "=address=10.0.0.1"}
	s2 := []string{"!re", "=address=10.0.0.2"}

	testCases := map[string]struct {
		replies       []reply
		yielded       [][]string
		errWrapped    []error
		errMessage    string
		trapMessage   string
		trapped       bool
		sessionBroken bool
	}{
		"two_records_then_done": {
			replies: []reply{{words: s1}, {words: s2}, {words: []string{"!done"}}},
			yielded: [][]string{s1, s2},
		},
		"no_record": {
			replies: []reply{{words: []string{"!done"}}},
		},
		"empty_marker_skipped": {
			replies: []reply{{words: []string{"!empty"}}, {words: []string{"!done"}}},
		},
		"trap_not_yielded": {
			replies: []reply{
				{words: s1},
				{words: []string{"!trap", "=message=failed"}},
				{words: []string{"!done"}},
			},
			yielded:     [][]string{s1},
			errMessage:  "router trap: failed",
			trapMessage: "failed",
		},
		"trap_payload_words_not_yielded": {
			replies: []reply{
				{words: s1},
				{words: []string{"!trap"}},
				{words: []string{"=message=failed"}},
				{words: []string{"!done"}},
			},
			yielded:    [][]string{s1},
			errMessage: "router trap: unknown error",
			trapped:    true,
		},
		"records_after_trap_not_yielded": {
			replies: []reply{
				{words: []string{"!trap", "=message=failed"}},
				{words: s2},
				{err: io.EOF},
			},
			errWrapped: []error{ErrStreamUnreadable, io.EOF},
			errMessage: "router trap: failed\n" +
				"reply stream is unreadable: EOF",
			trapMessage:   "failed",
			sessionBroken: true,
		},
		"trap_then_stream_broken": {
			replies: []reply{
				{words: []string{"!trap", "=message=failed", "=category=1"}},
				{err: io.EOF},
			},
			errWrapped: []error{ErrStreamUnreadable, io.EOF},
			errMessage: "router trap: failed (argument value failure)\n" +
				"reply stream is unreadable: EOF",
			trapMessage:   "failed",
			sessionBroken: true,
		},
		"read_error": {
			replies:       []reply{{words: s1}, {err: errTest}},
			yielded:       [][]string{s1},
			errWrapped:    []error{ErrStreamUnreadable, errTest},
			errMessage:    "reply stream is unreadable: test error",
			sessionBroken: true,
		},
		"fatal": {
			replies:       []reply{{words: []string{"!fatal", "session terminated on request"}}},
			errWrapped:    []error{ErrFatal},
			errMessage:    "router closed the session: session terminated on request",
			sessionBroken: true,
		},
		"empty_sentence": {
			replies:       []reply{{words: s1}, {words: []string{}}},
			yielded:       [][]string{s1},
			errWrapped:    []error{ErrTruncatedReply},
			errMessage:    "reply stream ended without done sentence",
			sessionBroken: true,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			const path = "/ip/dhcp-server/lease/print"
			engine := mock_routeros.NewMockSentenceReadWriter(ctrl)
			expectQuery(engine, path, testCase.replies)
			session := newSession(&closerStub{}, engine, noopLogger{})

			records, err := session.Query(path)
			require.NoError(t, err)

			var yielded [][]string
			for records.Next() {
				yielded = append(yielded, records.Sentence())
			}
			err = records.Err()

			assert.Equal(t, testCase.yielded, yielded)
			for _, errWrapped := range testCase.errWrapped {
				assert.ErrorIs(t, err, errWrapped)
			}
			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
			}

			var trapErr *TrapError
			if testCase.trapped || testCase.trapMessage != "" {
				require.ErrorAs(t, err, &trapErr)
				assert.Equal(t, testCase.trapMessage, trapErr.Message())
			} else {
				assert.False(t, errors.As(err, &trapErr))
			}

			// done is terminal: no more reads happen.
			assert.False(t, records.Next())
			assert.Nil(t, records.Sentence())

			if testCase.sessionBroken {
				_, err = session.Query(path)
				assert.ErrorIs(t, err, ErrSessionUnusable)
			} else {
				// session is free again for the next query
				assert.Nil(t, session.active)
			}
		})
	}
}

func Test_Records_doneAttributes(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	engine := mock_routeros.NewMockSentenceReadWriter(ctrl)
	expectQuery(engine, "/system/identity/print", []reply{
		{words: []string{"!done", "=ret=abc"}},
	})
	session := newSession(&closerStub{}, engine, noopLogger{})

	records, err := session.Query("/system/identity/print")
	require.NoError(t, err)

	err = records.Close()
	require.NoError(t, err)
	assert.Equal(t, "abc", records.Done().Get("ret"))
}

func Test_Session_Query_singleInFlight(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	engine := mock_routeros.NewMockSentenceReadWriter(ctrl)
	gomock.InOrder(
		engine.EXPECT().WriteSentence("/ip/address/print").Return(nil),
		engine.EXPECT().ReadSentence().Return([]string{"!re", "=address=10.0.0.1/24"}, nil),
		engine.EXPECT().ReadSentence().Return([]string{"!done"}, nil),
		engine.EXPECT().WriteSentence("/interface/print").Return(nil),
		engine.EXPECT().ReadSentence().Return([]string{"!done"}, nil),
	)
	session := newSession(&closerStub{}, engine, noopLogger{})

	first, err := session.Query("/ip/address/print")
	require.NoError(t, err)
	require.True(t, first.Next())

	_, err = session.Query("/interface/print")
	assert.ErrorIs(t, err, ErrQueryInProgress)
	assert.EqualError(t, err, "another query is in progress: /ip/address/print")

	err = first.Close()
	require.NoError(t, err)

	second, err := session.Query("/interface/print")
	require.NoError(t, err)
	assert.False(t, second.Next())
	assert.NoError(t, second.Err())
}

func Test_Session_Query_writeError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	errTest := errors.New("test error")
	engine := mock_routeros.NewMockSentenceReadWriter(ctrl)
	engine.EXPECT().WriteSentence("/ip/address/print", "=.proplist=address").Return(errTest)
	session := newSession(&closerStub{}, engine, noopLogger{})

	records, err := session.Query("/ip/address/print", "=.proplist=address")
	assert.Nil(t, records)
	assert.ErrorIs(t, err, errTest)
	assert.EqualError(t, err, "writing /ip/address/print sentence: test error")

	_, err = session.Query("/ip/address/print")
	assert.ErrorIs(t, err, ErrSessionUnusable)
}

func Test_Session_Collect(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	engine := mock_routeros.NewMockSentenceReadWriter(ctrl)
	expectQuery(engine, "/ip/address/print", []reply{
		{words: []string{"!re", "=address=10.0.0.1/24"}},
		{words: []string{"!trap", "=message=interrupted", "=category=2"}},
		{words: []string{"!done"}},
	})
	session := newSession(&closerStub{}, engine, noopLogger{})

	sentences, err := session.Collect("/ip/address/print")

	assert.Equal(t, [][]string{{"!re", "=address=10.0.0.1/24"}}, sentences)
	assert.EqualError(t, err, "router trap: interrupted (execution of command interrupted)")
}

func Test_Session_Close(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	closer := &closerStub{}
	session := newSession(closer, mock_routeros.NewMockSentenceReadWriter(ctrl), noopLogger{})

	err := session.Close()
	require.NoError(t, err)
	err = session.Close()
	require.NoError(t, err)
	assert.Equal(t, 1, closer.closed)

	_, err = session.Query("/ip/address/print")
	assert.ErrorIs(t, err, ErrSessionClosed)
}
