package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"github.com/qdm12/routeros-dump/internal/command"
	"github.com/qdm12/routeros-dump/internal/config"
	"github.com/qdm12/routeros-dump/internal/metrics"
	"github.com/qdm12/routeros-dump/internal/models"
	"github.com/qdm12/routeros-dump/internal/routeros"
	"github.com/qdm12/routeros-dump/internal/shoutrrr"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New(log.SetWriters(os.Stderr))

	reader := reader.New(reader.Settings{})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)

	err := _main(ctx, reader, os.Args, logger, buildInfo, os.Stdout, time.Now)
	stop()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func _main(ctx context.Context, reader *reader.Reader, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation, stdout io.Writer, timeNow func() time.Time) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Fprintln(stdout, buildInfo.VersionString())
			return nil
		}
	}

	config, err := readConfig(reader, args[1:], logger)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return nil
	case err != nil:
		return err
	}

	if config.Query.Command == command.Shell {
		printSplash(buildInfo)
	}

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	err = run(ctx, config, logger, stdout, timeNow)
	if err != nil {
		shoutrrrClient.Notify(config.Router.Host + ": " + err.Error())
		return err
	}
	return nil
}

func run(ctx context.Context, config config.Config, logger log.LoggerInterface,
	stdout io.Writer, timeNow func() time.Time) (err error) {
	sessionSettings := routeros.Settings{
		Address:   config.Router.Address(),
		Username:  config.Router.Username,
		Password:  *config.Router.Password,
		TLSConfig: makeTLSConfig(config.Router),
		Timeout:   config.Router.Timeout,
	}
	session, err := routeros.Open(ctx, sessionSettings,
		logger.New(log.SetComponent("routeros")))
	if err != nil {
		return fmt.Errorf("opening session to %s: %w", sessionSettings.Address, err)
	}
	defer func() {
		closeErr := session.Close()
		if closeErr != nil {
			logger.Warn(closeErr.Error())
		}
	}()

	recorder := metrics.New(timeNow)
	dispatcher := command.New(session, recorder, stdout, config.Query.HistoryFile,
		logger.New(log.SetComponent("command")))
	err = dispatcher.Run(config.Query.Command, config.Query.InterfaceName)

	if config.Metrics.Textfile != "" {
		writeErr := recorder.WriteTextfile(config.Metrics.Textfile)
		if writeErr != nil {
			logger.Error(writeErr.Error())
		} else {
			logger.Debug("metrics written to " + filepath.Clean(config.Metrics.Textfile))
		}
	}

	return err
}

func makeTLSConfig(settings config.Router) *tls.Config {
	if !*settings.TLS {
		return nil
	}
	return &tls.Config{
		ServerName:         settings.Host,
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: *settings.TLSInsecure, //nolint:gosec
	}
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "routeros-dump",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Fprintln(os.Stderr, line)
	}
}

func readConfig(reader *reader.Reader, args []string, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}

	err = config.ReadFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config, err
		}
		return config, fmt.Errorf("reading flags: %w", err)
	}

	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Debug(config.String())

	return config, nil
}
