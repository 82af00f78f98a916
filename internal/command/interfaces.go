package command

import "github.com/qdm12/routeros-dump/internal/dhcp"

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Querier,Recorder

// Querier runs a query and returns all its reply sentences.
type Querier interface {
	Collect(path string, words ...string) (sentences [][]string, err error)
}

// Recorder records query results, for example as metrics.
type Recorder interface {
	RecordQuery(path string, replies int, err error)
	RecordLeases(leases []dhcp.Lease)
}

type Logger interface {
	Debug(s string)
}
