// Package dhcp decodes DHCP server lease replies of the router.
package dhcp

import (
	"github.com/qdm12/routeros-dump/internal/routeros"
)

// LeasesPath is the API command path listing the DHCP server leases.
const LeasesPath = "/ip/dhcp-server/lease/print"

// Lease is a DHCP server lease as reported by the router.
// Attributes not sent by the router are left to their zero value.
type Lease struct {
	Address          string
	MACAddress       string
	ClientID         string
	AddressLists     string
	Server           string
	DHCPOption       string
	Status           string
	ExpiresAfter     string
	LastSeen         string
	ActiveAddress    string
	ActiveMACAddress string
	ActiveClientID   string
	ActiveServer     string
	HostName         string
	Comment          string
	Radius           bool
	Dynamic          bool
	Blocked          bool
	Disabled         bool
}

//nolint:gochecknoglobals
var leaseSetters = map[string]func(lease *Lease, value string){
	"address":            func(l *Lease, v string) { l.Address = v },
	"mac-address":        func(l *Lease, v string) { l.MACAddress = v },
	"client-id":          func(l *Lease, v string) { l.ClientID = v },
	"address-lists":      func(l *Lease, v string) { l.AddressLists = v },
	"server":             func(l *Lease, v string) { l.Server = v },
	"dhcp-option":        func(l *Lease, v string) { l.DHCPOption = v },
	"status":             func(l *Lease, v string) { l.Status = v },
	"expires-after":      func(l *Lease, v string) { l.ExpiresAfter = v },
	"last-seen":          func(l *Lease, v string) { l.LastSeen = v },
	"active-address":     func(l *Lease, v string) { l.ActiveAddress = v },
	"active-mac-address": func(l *Lease, v string) { l.ActiveMACAddress = v },
	"active-client-id":   func(l *Lease, v string) { l.ActiveClientID = v },
	"active-server":      func(l *Lease, v string) { l.ActiveServer = v },
	"host-name":          func(l *Lease, v string) { l.HostName = v },
	"comment":            func(l *Lease, v string) { l.Comment = v },
	"radius":             func(l *Lease, v string) { l.Radius = parseBool(v) },
	"dynamic":            func(l *Lease, v string) { l.Dynamic = parseBool(v) },
	"blocked":            func(l *Lease, v string) { l.Blocked = parseBool(v) },
	"disabled":           func(l *Lease, v string) { l.Disabled = parseBool(v) },
}

// ParseLease decodes a lease reply sentence. It never fails:
// malformed attribute words and unknown keys are ignored.
func ParseLease(words []string) (lease Lease) {
	attributes := routeros.ParseAttributes(words)
	for _, key := range attributes.Keys() {
		set, ok := leaseSetters[key]
		if !ok {
			continue
		}
		set(&lease, attributes.Get(key))
	}
	return lease
}

// ParseLeases decodes each reply sentence into a lease,
// keeping the reply order.
func ParseLeases(sentences [][]string) (leases []Lease) {
	leases = make([]Lease, len(sentences))
	for i, sentence := range sentences {
		leases[i] = ParseLease(sentence)
	}
	return leases
}

// parseBool only accepts the exact RouterOS text `true`.
func parseBool(value string) bool {
	return value == "true"
}
