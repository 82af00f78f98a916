// Package config reads, defaults and validates the program settings
// from environment variables and command line flags.
package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Router   Router
	Query    Query
	Logger   Logger
	Metrics  Metrics
	Shoutrrr Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Router.setDefaults()
	c.Query.setDefaults()
	c.Logger.setDefaults()
	c.Metrics.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"router":   &c.Router,
		"query":    &c.Query,
		"logger":   &c.Logger,
		"metrics":  &c.Metrics,
		"shoutrrr": &c.Shoutrrr,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Router.toLinesNode())
	node.AppendNode(c.Query.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Metrics.toLinesNode())
	node.AppendNode(c.Shoutrrr.ToLinesNode())
	return node
}

// Read reads the settings from the environment variables.
func (c *Config) Read(reader *reader.Reader) (err error) {
	err = c.Router.read(reader)
	if err != nil {
		return fmt.Errorf("reading router settings: %w", err)
	}

	c.Query.read(reader)

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Metrics.read(reader)
	c.Shoutrrr.read(reader)

	return nil
}
