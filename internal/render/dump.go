package render

import (
	"fmt"
	"io"

	"github.com/qdm12/gotree"
	"github.com/qdm12/routeros-dump/internal/routeros"
)

// Dump writes the records as a tree, with their attributes
// in the order the router sent them.
func Dump(w io.Writer, path string, records []routeros.Attributes) (err error) {
	_, err = fmt.Fprintln(w, dumpNode(path, records).String())
	return err
}

func dumpNode(path string, records []routeros.Attributes) *gotree.Node {
	node := gotree.New(fmt.Sprintf("%s: %d record(s)", path, len(records)))
	for i, record := range records {
		recordNode := node.Appendf("Record %d", i+1)
		for _, key := range record.Keys() {
			recordNode.Appendf("%s: %s", key, record.Get(key))
		}
	}
	return node
}
