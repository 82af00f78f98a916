// Package command resolves a command name to the queries to run
// on the router and the way to print their results.
package command

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/qdm12/routeros-dump/internal/dhcp"
	"github.com/qdm12/routeros-dump/internal/render"
	"github.com/qdm12/routeros-dump/internal/routeros"
)

const (
	DHCPTable  = "dhcp-table"
	ExternalIP = "external-ip"
	Shell      = "shell"
)

const (
	// AddressesPath is the API command path listing the IP addresses.
	AddressesPath = "/ip/address/print"
	// NotFound is printed by the external-ip command when no
	// address is set on the interface.
	NotFound = "Not found"
)

type Dispatcher struct {
	querier     Querier
	recorder    Recorder
	stdout      io.Writer
	historyFile string
	logger      Logger
}

func New(querier Querier, recorder Recorder, stdout io.Writer,
	historyFile string, logger Logger) *Dispatcher {
	return &Dispatcher{
		querier:     querier,
		recorder:    recorder,
		stdout:      stdout,
		historyFile: historyFile,
		logger:      logger,
	}
}

// Run runs the command and writes its result. The interface name
// is only used by the external-ip command. Any command which is not
// a known command name is queried as a raw API command path.
func (d *Dispatcher) Run(command, interfaceName string) error {
	return d.run(command, nil, interfaceName)
}

func (d *Dispatcher) run(command string, args []string, interfaceName string) error {
	switch command {
	case DHCPTable:
		return d.dhcpTable()
	case ExternalIP:
		return d.externalIP(interfaceName)
	case Shell:
		return d.shell(interfaceName)
	default:
		return d.dump(command, args)
	}
}

func (d *Dispatcher) collect(path string, words ...string) (sentences [][]string, err error) {
	sentences, err = d.querier.Collect(path, words...)
	d.recorder.RecordQuery(path, len(sentences), err)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", path, err)
	}
	d.logger.Debug("received " + strconv.Itoa(len(sentences)) + " record(s) for " + path)
	return sentences, nil
}

func (d *Dispatcher) dhcpTable() error {
	sentences, err := d.collect(dhcp.LeasesPath)
	if err != nil {
		return err
	}

	leases := dhcp.ParseLeases(sentences)
	d.recorder.RecordLeases(leases)
	render.LeaseTable(d.stdout, leases)
	return nil
}

func (d *Dispatcher) externalIP(interfaceName string) error {
	sentences, err := d.collect(AddressesPath)
	if err != nil {
		return err
	}

	address, found := findInterfaceAddress(sentences, interfaceName)
	if !found {
		address = NotFound
	}
	_, err = fmt.Fprintln(d.stdout, address)
	return err
}

// findInterfaceAddress returns the address, without its prefix length,
// of the first address record of the interface.
func findInterfaceAddress(sentences [][]string, interfaceName string) (
	address string, found bool) {
	for _, sentence := range sentences {
		attributes := routeros.ParseAttributes(sentence)
		if attributes.Get("interface") != interfaceName {
			continue
		}
		address, ok := attributes.Lookup("address")
		if !ok {
			return "", false
		}
		address, _, _ = strings.Cut(address, "/")
		return address, true
	}
	return "", false
}

func (d *Dispatcher) dump(path string, words []string) error {
	sentences, err := d.collect(path, words...)
	if err != nil {
		return err
	}

	records := make([]routeros.Attributes, len(sentences))
	for i, sentence := range sentences {
		records[i] = routeros.ParseAttributes(sentence)
	}
	return render.Dump(d.stdout, path, records)
}
