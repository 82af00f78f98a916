package command

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/qdm12/routeros-dump/internal/routeros"
)

const shellPrompt = "routeros> "

// shell reads commands from the terminal until exit or end of input.
// Trap errors are printed and the shell keeps going, any other error
// ends the shell since the session can no longer be used.
func (d *Dispatcher) shell(defaultInterface string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          shellPrompt,
		HistoryFile:     d.historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem(DHCPTable),
			readline.PcItem(ExternalIP),
			readline.PcItem("/interface/print"),
			readline.PcItem("/ip/address/print"),
			readline.PcItem("/system/resource/print"),
			readline.PcItem("help"),
			readline.PcItem("exit"),
		),
	})
	if err != nil {
		return fmt.Errorf("creating line reader: %w", err)
	}
	defer rl.Close()

	// Results are written through the line reader so they do not
	// overwrite the prompt.
	shellDispatcher := d.withStdout(rl.Stdout())

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("reading line: %w", err)
		}

		exit, err := shellDispatcher.runLine(line, defaultInterface)
		var trapErr *routeros.TrapError
		switch {
		case err == nil:
		case errors.As(err, &trapErr):
			fmt.Fprintln(rl.Stderr(), "error: "+err.Error())
		default:
			return err
		}
		if exit {
			return nil
		}
	}
}

// withStdout returns a copy of the dispatcher writing its results to w.
func (d *Dispatcher) withStdout(w io.Writer) *Dispatcher {
	dispatcher := *d
	dispatcher.stdout = w
	return &dispatcher
}

func (d *Dispatcher) runLine(line, defaultInterface string) (
	exit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	command, args := fields[0], fields[1:]
	switch command {
	case "exit", "quit":
		return true, nil
	case "help":
		printHelp(d.stdout)
		return false, nil
	case Shell:
		fmt.Fprintln(d.stdout, "already in the shell")
		return false, nil
	case ExternalIP:
		interfaceName := defaultInterface
		if len(args) > 0 {
			interfaceName = args[0]
		}
		return false, d.run(command, nil, interfaceName)
	default:
		return false, d.run(command, args, defaultInterface)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  "+DHCPTable+"                  show the DHCP server leases")
	fmt.Fprintln(w, "  "+ExternalIP+" [interface]     show the address of an interface")
	fmt.Fprintln(w, "  <path> [word...]            run an API command, for example")
	fmt.Fprintln(w, "                              /ip/route/print ?dst-address=0.0.0.0/0")
	fmt.Fprintln(w, "  exit")
}
