// Package render writes query results in a human readable form.
package render

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/qdm12/routeros-dump/internal/dhcp"
)

//nolint:gochecknoglobals
var leaseHeaders = []string{"IP Address", "Hostname", "Comment",
	"MAC Address", "Last Seen", "Expires", "Status"}

// LeaseTable writes the leases as a table, one row per lease
// in the order given.
func LeaseTable(w io.Writer, leases []dhcp.Lease) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(leaseHeaders)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, lease := range leases {
		table.Append([]string{
			lease.Address,
			lease.HostName,
			lease.Comment,
			lease.MACAddress,
			lease.LastSeen,
			lease.ExpiresAfter,
			lease.Status,
		})
	}

	table.Render()
}
