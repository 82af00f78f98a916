package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Router struct {
	Host     string
	Port     *uint16
	Username string
	// Password is nil when unset, and can be set to the empty string
	// for a user without password.
	Password    *string
	TLS         *bool
	TLSInsecure *bool
	Timeout     time.Duration
}

const (
	defaultAPIPort    uint16 = 8728
	defaultAPISSLPort uint16 = 8729
)

func (r *Router) setDefaults() {
	r.TLS = gosettings.DefaultPointer(r.TLS, false)
	r.TLSInsecure = gosettings.DefaultPointer(r.TLSInsecure, false)
	defaultPort := defaultAPIPort
	if *r.TLS {
		defaultPort = defaultAPISSLPort
	}
	r.Port = gosettings.DefaultPointer(r.Port, defaultPort)
	const defaultTimeout = 10 * time.Second
	r.Timeout = gosettings.DefaultComparable(r.Timeout, defaultTimeout)
}

var (
	ErrHostNotSet         = errors.New("host is not set")
	ErrPortNotValid       = errors.New("port is not valid")
	ErrUsernameNotSet     = errors.New("username is not set")
	ErrPasswordNotSet     = errors.New("password is not set")
	ErrTLSInsecureNoTLS   = errors.New("TLS insecure is set but TLS is disabled")
	ErrTimeoutNotPositive = errors.New("timeout is not positive")
)

func (r Router) Validate() (err error) {
	switch {
	case r.Host == "":
		return ErrHostNotSet
	case *r.Port == 0:
		return fmt.Errorf("%w: %d", ErrPortNotValid, *r.Port)
	case r.Username == "":
		return ErrUsernameNotSet
	case r.Password == nil:
		return ErrPasswordNotSet
	case *r.TLSInsecure && !*r.TLS:
		return ErrTLSInsecureNoTLS
	case r.Timeout <= 0:
		return fmt.Errorf("%w: %s", ErrTimeoutNotPositive, r.Timeout)
	}
	return nil
}

// Address returns the host and port to dial.
func (r Router) Address() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(int(*r.Port)))
}

func (r Router) String() string {
	return r.toLinesNode().String()
}

func (r Router) toLinesNode() *gotree.Node {
	node := gotree.New("Router")
	node.Appendf("Address: %s", r.Address())
	node.Appendf("Username: %s", r.Username)
	node.Appendf("Password: %s", obfuscatePassword(r.Password))
	if *r.TLS {
		tlsNode := node.Appendf("TLS: yes")
		tlsNode.Appendf("Verify certificate: %s", gosettings.BoolToYesNo(boolPtr(!*r.TLSInsecure)))
	} else {
		node.Appendf("TLS: no")
	}
	node.Appendf("Dial timeout: %s", r.Timeout)
	return node
}

func obfuscatePassword(password *string) string {
	switch {
	case password == nil:
		return "[not set]"
	case *password == "":
		return "[empty]"
	default:
		return "[set]"
	}
}

func boolPtr(b bool) *bool { return &b }

func (r *Router) read(source *reader.Reader) (err error) {
	r.Host = source.String("ROUTER_HOST")

	r.Port, err = source.Uint16Ptr("ROUTER_PORT")
	if err != nil {
		return err
	}

	r.Username = source.String("ROUTER_USERNAME", reader.ForceLowercase(false))
	r.Password = source.Get("ROUTER_PASSWORD", reader.ForceLowercase(false))

	r.TLS, err = source.BoolPtr("ROUTER_TLS")
	if err != nil {
		return err
	}

	r.TLSInsecure, err = source.BoolPtr("ROUTER_TLS_INSECURE")
	if err != nil {
		return err
	}

	r.Timeout, err = source.Duration("ROUTER_TIMEOUT")
	return err
}
