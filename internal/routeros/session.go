package routeros

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"sync"
	"time"
)

type Settings struct {
	// Address is the host:port address of the router API service.
	Address  string
	Username string
	Password string
	// TLSConfig is used to connect to the api-ssl service.
	// It is nil for the plaintext api service.
	TLSConfig *tls.Config
	// Timeout is the timeout to establish the connection.
	Timeout time.Duration
}

// Session is a logged in connection to the router API.
// It runs a single query at a time.
type Session struct {
	conn   io.Closer
	engine SentenceReadWriter
	logger Logger

	mutex     sync.Mutex
	active    *Records
	broken    error
	closed    bool
	stopWatch func() bool
}

// Open connects and logs in to the router. The connection is closed
// if the context is canceled, which unblocks any pending read.
func Open(ctx context.Context, settings Settings, logger Logger) (
	session *Session, err error) {
	conn, err := dial(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	logger.Debug("connected to " + conn.RemoteAddr().String())

	session = newSession(conn, newEngine(conn, logger), logger)

	stopWatch := context.AfterFunc(ctx, func() {
		_ = session.Close()
	})
	session.mutex.Lock()
	session.stopWatch = stopWatch
	session.mutex.Unlock()

	err = session.login(settings.Username, settings.Password)
	if err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("logging in as %s: %w", settings.Username, err)
	}

	return session, nil
}

func dial(ctx context.Context, settings Settings) (conn net.Conn, err error) {
	dialer := &net.Dialer{Timeout: settings.Timeout}
	if settings.TLSConfig == nil {
		return dialer.DialContext(ctx, "tcp", settings.Address)
	}
	tlsDialer := &tls.Dialer{
		NetDialer: dialer,
		Config:    settings.TLSConfig,
	}
	return tlsDialer.DialContext(ctx, "tcp", settings.Address)
}

func newSession(conn io.Closer, engine SentenceReadWriter, logger Logger) *Session {
	return &Session{
		conn:   conn,
		engine: engine,
		logger: logger,
	}
}

// Query sends the command path with its optional extra words and
// returns the records of its reply. The records must be fully read
// or closed before the next query can be made.
func (s *Session) Query(path string, words ...string) (records *Records, err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	switch {
	case s.closed:
		return nil, ErrSessionClosed
	case s.broken != nil:
		return nil, fmt.Errorf("%w: %w", ErrSessionUnusable, s.broken)
	case s.active != nil:
		return nil, fmt.Errorf("%w: %s", ErrQueryInProgress, s.active.path)
	}

	sentence := make([]string, 0, 1+len(words))
	sentence = append(sentence, path)
	sentence = append(sentence, words...)
	err = s.engine.WriteSentence(sentence...)
	if err != nil {
		s.broken = fmt.Errorf("writing %s sentence: %w", path, err)
		return nil, s.broken
	}

	records = &Records{
		session: s,
		path:    path,
		state:   recordsOpened,
	}
	s.active = records
	return records, nil
}

// Collect runs the query for the command path and returns all the
// reply sentences. The sentences received before an error are
// returned together with the error.
func (s *Session) Collect(path string, words ...string) (sentences [][]string, err error) {
	records, err := s.Query(path, words...)
	if err != nil {
		return nil, err
	}

	for records.Next() {
		sentences = append(sentences, records.Sentence())
	}
	return sentences, records.Err()
}

func (s *Session) release(records *Records, broken bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.active == records {
		s.active = nil
	}
	if broken && s.broken == nil {
		s.broken = records.err
	}
}

// Close closes the connection to the router.
// It is safe to call it more than once.
func (s *Session) Close() (err error) {
	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		return nil
	}
	s.closed = true
	stopWatch := s.stopWatch
	s.mutex.Unlock()

	if stopWatch != nil {
		stopWatch()
	}
	err = s.conn.Close()
	if err != nil {
		return fmt.Errorf("closing connection: %w", err)
	}
	s.logger.Debug("connection closed")
	return nil
}
