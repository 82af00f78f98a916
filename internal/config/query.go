package config

import (
	"errors"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Query struct {
	// Command is dhcp-table, external-ip, shell or an API command path.
	Command       string
	InterfaceName string
	// HistoryFile is the shell history file path, and is
	// empty to disable the shell history.
	HistoryFile string
}

func (q *Query) setDefaults() {
	q.Command = gosettings.DefaultComparable(q.Command, "dhcp-table")
	q.InterfaceName = gosettings.DefaultComparable(q.InterfaceName, "ether1")
}

var ErrInterfaceNameNotSet = errors.New("interface name is not set")

func (q Query) Validate() (err error) {
	if q.InterfaceName == "" {
		return ErrInterfaceNameNotSet
	}
	return nil
}

func (q Query) String() string {
	return q.toLinesNode().String()
}

func (q Query) toLinesNode() *gotree.Node {
	node := gotree.New("Query")
	node.Appendf("Command: %s", q.Command)
	node.Appendf("Interface name: %s", q.InterfaceName)
	if q.HistoryFile != "" {
		node.Appendf("Shell history file: %s", q.HistoryFile)
	}
	return node
}

func (q *Query) read(r *reader.Reader) {
	q.Command = r.String("COMMAND", reader.ForceLowercase(false))
	q.InterfaceName = r.String("INTERFACE_NAME", reader.ForceLowercase(false))
	q.HistoryFile = r.String("SHELL_HISTORY_FILE", reader.ForceLowercase(false))
}
