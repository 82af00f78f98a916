package routeros

import (
	"errors"
	"fmt"
)

var (
	ErrConnection       = errors.New("cannot connect to router")
	ErrAuthentication   = errors.New("authentication rejected")
	ErrStreamUnreadable = errors.New("reply stream is unreadable")
	ErrFatal            = errors.New("router closed the session")
	ErrTruncatedReply   = errors.New("reply stream ended without done sentence")
	ErrControlByte      = errors.New("unsupported control byte")
	ErrWordTooLong      = errors.New("word is too long")
	ErrQueryInProgress  = errors.New("another query is in progress")
	ErrSessionUnusable  = errors.New("session is unusable")
	ErrSessionClosed    = errors.New("session is closed")
	ErrLoginChallenge   = errors.New("login challenge is malformed")
)

// TrapError is the error reply (!trap) sent by the router for a query.
type TrapError struct {
	Attributes Attributes
}

func (err *TrapError) Message() string {
	return err.Attributes.Get("message")
}

// Category returns the description of the trap category, or the empty
// string if the router did not send a category.
func (err *TrapError) Category() string {
	category, ok := err.Attributes.Lookup("category")
	if !ok {
		return ""
	}
	description, ok := trapCategories[category]
	if !ok {
		return "category " + category
	}
	return description
}

//nolint:gochecknoglobals
var trapCategories = map[string]string{
	"0": "missing item or command",
	"1": "argument value failure",
	"2": "execution of command interrupted",
	"3": "scripting related failure",
	"4": "general failure",
	"5": "API related failure",
	"6": "TTY related failure",
	"7": "value generated with :return command",
}

func (err *TrapError) Error() string {
	message := err.Message()
	if message == "" {
		message = "unknown error"
	}
	category := err.Category()
	if category == "" {
		return "router trap: " + message
	}
	return fmt.Sprintf("router trap: %s (%s)", message, category)
}
