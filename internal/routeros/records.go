package routeros

import (
	"errors"
	"fmt"
)

type recordsState uint8

const (
	recordsOpened recordsState = iota
	recordsStreaming
	recordsDone
)

// Records iterates over the reply sentences of a single query.
// It holds exclusive use of its session until the reply stream
// is fully read, so it must be read until Next returns false, or
// closed with Close.
//
//	records, err := session.Query("/ip/address/print")
//	...
//	for records.Next() {
//		words := records.Sentence()
//	}
//	err = records.Err()
type Records struct {
	session  *Session
	path     string
	state    recordsState
	sentence []string
	done     Attributes
	trap     *TrapError
	err      error
}

// Next reads the next reply sentence, blocking until it is received.
// It returns false once the reply stream is over or has failed,
// in which case Err should be checked.
func (r *Records) Next() bool {
	if r.state == recordsDone {
		return false
	}
	r.state = recordsStreaming
	r.sentence = nil

	for {
		words, err := r.session.engine.ReadSentence()
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrStreamUnreadable, err)
			if r.trap != nil {
				err = errors.Join(r.trap, err)
			}
			r.finish(err, true)
			return false
		}

		if len(words) == 0 {
			r.finish(ErrTruncatedReply, true)
			return false
		}

		switch words[0] {
		case "!done":
			r.done = ParseAttributes(words)
			if r.trap != nil {
				r.finish(r.trap, false)
			} else {
				r.finish(nil, false)
			}
			return false
		case "!trap":
			// RouterOS still sends !done after a trap.
			r.trap = &TrapError{Attributes: ParseAttributes(words)}
			continue
		case "!fatal":
			r.finish(fmt.Errorf("%w: %s", ErrFatal, fatalMessage(words)), true)
			return false
		case "!empty":
			continue
		}

		if r.trap != nil {
			// Only the !done ending the reply is expected after a trap.
			continue
		}

		r.sentence = words
		return true
	}
}

// fatalMessage returns the reason of a !fatal sentence, which is
// sent as a plain word and not as an attribute word.
func fatalMessage(words []string) string {
	if len(words) < 2 { //nolint:gomnd
		return "no reason given"
	}
	return words[1]
}

func (r *Records) finish(err error, sessionBroken bool) {
	r.state = recordsDone
	r.sentence = nil
	r.err = err
	r.session.release(r, sessionBroken)
}

// Sentence returns the words of the reply sentence read by the
// last call to Next which returned true.
func (r *Records) Sentence() []string {
	return r.sentence
}

// Err returns the error which ended the reply stream, if any.
// A trap reply results in a *TrapError.
func (r *Records) Err() error {
	return r.err
}

// Done returns the attributes of the !done sentence
// once the reply stream is over.
func (r *Records) Done() Attributes {
	return r.done
}

// Close reads and discards the rest of the reply stream,
// giving the session back for the next query.
func (r *Records) Close() error {
	for r.Next() { //nolint:revive
	}
	return r.err
}
