package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sghaida/odispatch/di"
	"github.com/sghaida/odispatch/examples"
	"github.com/sghaida/odispatch/internal/manifest"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "ODISPATCH"

// Config is the resolved command configuration (flags, then env, then defaults).
type Config struct {
	Manifest string `mapstructure:"manifest"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log-level"`
}

// app carries per-invocation state so commands never touch package globals.
type app struct {
	v   *viper.Viper
	cfg Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "odispatch",
		Short: "Inspect and exercise exact-type injector bindings",
		Long: `odispatch assembles a dispatch registry from a YAML bindings manifest
and the example component catalog, then dispatches components through it.

Every concrete type needs its own binding: a binding for an embedded base
handler is never used for the handlers that embed it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("manifest", "m", "bindings.yaml", "path to the bindings manifest")
	flags.String("env", "local", "environment name used to build example dependencies")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlags(flags)

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(newKeysCmd(a), newInjectCmd(a), newExplainCmd(a))
	return root
}

func (a *app) loadConfig() error {
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	if a.cfg.Manifest == "" {
		return fmt.Errorf("manifest path cannot be empty")
	}
	return nil
}

func (a *app) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", a.cfg.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// registry loads the manifest and assembles the registry it describes.
func (a *app) registry(cmd *cobra.Command) (*di.DispatchRegistry[examples.Component], map[string]examples.Entry, error) {
	logger, err := a.logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	m, err := manifest.LoadFile(a.cfg.Manifest)
	if err != nil {
		return nil, nil, err
	}

	catalog := examples.Catalog(examples.NewDeps(a.cfg.Env))
	reg, err := manifest.Assemble(m, catalog, di.WithLogger(logger))
	if err != nil {
		return nil, nil, fmt.Errorf("assembling %s: %w", a.cfg.Manifest, err)
	}
	logger.Debug("registry assembled",
		slog.String("manifest", a.cfg.Manifest),
		slog.Int("bindings", reg.Len()),
	)
	return reg, catalog, nil
}

func lookup(catalog map[string]examples.Entry, name string) (examples.Entry, error) {
	e, ok := catalog[name]
	if !ok {
		return examples.Entry{}, fmt.Errorf("unknown component %q (known: %s)",
			name, strings.Join(examples.Names(catalog), ", "))
	}
	return e, nil
}
