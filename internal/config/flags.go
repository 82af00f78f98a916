package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
)

var ErrUnexpectedArguments = errors.New("unexpected arguments")

// ReadFlags parses the command line arguments, without the program
// name, and overrides the settings fields for the flags given.
// It returns flag.ErrHelp if the help was requested.
func (c *Config) ReadFlags(args []string, output io.Writer) (err error) {
	flagSet := flag.NewFlagSet("routeros-dump", flag.ContinueOnError)
	flagSet.SetOutput(output)

	setString := func(field *string) func(s string) error {
		return func(s string) error {
			*field = s
			return nil
		}
	}
	setBool := func(field **bool) func(s string) error {
		return func(s string) error {
			value, err := strconv.ParseBool(s)
			if err != nil {
				return err
			}
			*field = &value
			return nil
		}
	}

	flagSet.Func("host", "router address", setString(&c.Router.Host))
	flagSet.Func("port", "API TCP port (default 8728, or 8729 with -tls)",
		func(s string) error {
			const base, bits = 10, 16
			port, err := strconv.ParseUint(s, base, bits)
			if err != nil {
				return err
			}
			port16 := uint16(port)
			c.Router.Port = &port16
			return nil
		})
	flagSet.Func("username", "login user", setString(&c.Router.Username))
	flagSet.Func("password", "login password", func(s string) error {
		c.Router.Password = &s
		return nil
	})
	flagSet.Func("command", "dhcp-table, external-ip, shell or an API command path "+
		"such as /interface/print (default dhcp-table)", setString(&c.Query.Command))
	flagSet.Func("interface-name", "interface of the external-ip command (default ether1)",
		setString(&c.Query.InterfaceName))
	flagSet.BoolFunc("tls", "use the api-ssl service", setBool(&c.Router.TLS))
	flagSet.BoolFunc("tls-insecure", "skip the router certificate verification",
		setBool(&c.Router.TLSInsecure))
	flagSet.Func("timeout", "dial timeout (default 10s)", func(s string) error {
		timeout, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		c.Router.Timeout = timeout
		return nil
	})
	flagSet.Func("log-level", "debug, info, warning or error (default info)",
		func(s string) error {
			level, err := parseLogLevel(s)
			if err != nil {
				return err
			}
			c.Logger.Level = &level
			return nil
		})
	flagSet.Func("metrics-textfile", "Prometheus textfile path to write metrics to",
		setString(&c.Metrics.Textfile))

	err = flagSet.Parse(args)
	if err != nil {
		return err
	}

	if flagSet.NArg() > 0 {
		return fmt.Errorf("%w: %v", ErrUnexpectedArguments, flagSet.Args())
	}

	return nil
}
