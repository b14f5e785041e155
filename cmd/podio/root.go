package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adamwoolhether/podio"
	"github.com/adamwoolhether/podio/auth"
	"github.com/adamwoolhether/podio/config"
)

// app carries the state shared by the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *slog.Logger
	stderr  io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.New(), stderr: stderr}

	root := &cobra.Command{
		Use:           "podio",
		Short:         "Call the Podio API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.String("domain", "", "API root, e.g. https://api.podio.com")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.Bool("curl", false, "log every request as a curl command at debug level")
	flags.Bool("request-id", false, "send a fresh X-Request-Id header with every call")

	for key, flag := range map[string]string{"domain": "domain", "log_level": "log-level", "curl": "curl", "request_id": "request-id"} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(newCallCmd(a), newTokenCmd(a))

	return root
}

func (a *app) load() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	return nil
}

func (a *app) client(ctx context.Context) (*podio.Client, error) {
	opts, err := a.cfg.TransportOptions(a.logger)
	if err != nil {
		return nil, err
	}

	c, err := podio.GrantClient(ctx, a.cfg.Grant(), a.cfg.UserAgent, a.cfg.Domain, []auth.Option{auth.WithLogger(a.logger)}, opts...)
	if err != nil {
		return nil, fmt.Errorf("building client: %w", err)
	}
	return c, nil
}
