package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Metrics struct {
	// Textfile is the Prometheus textfile path to write, and
	// is empty to disable metrics.
	Textfile string
}

func (m *Metrics) setDefaults() {}

var ErrTextfileDirectoryNotValid = errors.New("textfile directory is not valid")

func (m Metrics) Validate() (err error) {
	if m.Textfile == "" {
		return nil
	}

	directory := filepath.Dir(m.Textfile)
	info, err := os.Stat(directory)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTextfileDirectoryNotValid, err)
	} else if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory",
			ErrTextfileDirectoryNotValid, directory)
	}
	return nil
}

func (m Metrics) String() string {
	return m.toLinesNode().String()
}

func (m Metrics) toLinesNode() *gotree.Node {
	if m.Textfile == "" {
		return gotree.New("Metrics: disabled")
	}
	node := gotree.New("Metrics")
	node.Appendf("Textfile: %s", m.Textfile)
	return node
}

func (m *Metrics) read(r *reader.Reader) {
	m.Textfile = r.String("METRICS_TEXTFILE", reader.ForceLowercase(false))
}
