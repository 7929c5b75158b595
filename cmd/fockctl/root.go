// SPDX-License-Identifier: MIT
// Root command for fockctl.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/fockspace/fock"
)

// app carries per-invocation configuration to the subcommands.
type app struct {
	configFile string
	v          *viper.Viper
	log        *slog.Logger
}

// newRootCmd builds a fresh command tree. Nothing is shared between trees,
// so tests may build and run as many as they like.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "fockctl",
		Short: "fockctl manipulates photonic Fock states",
		Long: `fockctl parses, enumerates, composes, slices and separates Fock states
written in ket notation, e.g. "|1,0,2>" or "|{P:H},{P:V}>".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (yaml, toml or json)")
	pf.String(flagName(cfgKeyLogLevel), defaultLogLevel, "log level: debug, info, warn, error")
	pf.Bool(flagName(cfgKeyShowAnnotations), true, "render photon annotations")

	root.AddCommand(
		a.parseCmd(),
		a.nextCmd(),
		a.enumCmd(),
		a.tensorCmd(),
		a.sliceCmd(),
		a.setSliceCmd(),
		a.separateCmd(),
	)

	return root
}

// init loads configuration and the logger for cmd.
func (a *app) init(cmd *cobra.Command) error {
	v, err := loadConfig(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString(cfgKeyLogLevel))
	if err != nil {
		return err
	}
	a.v, a.log = v, logger

	return nil
}

// parse reads one ket argument.
func (a *app) parse(text string) (fock.State, error) {
	s, err := fock.Parse(text)
	if err != nil {
		return fock.State{}, err
	}
	a.log.Debug("parsed state", "text", text, "modes", s.Modes(), "photons", s.Photons(), "defined", s.Defined())

	return s, nil
}

// render formats s according to the show-annotations setting.
func (a *app) render(s fock.State) string {
	return s.Text(a.v.GetBool(cfgKeyShowAnnotations))
}

// writeln writes one line to the command's output.
func writeln(w io.Writer, args ...any) {
	_, _ = fmt.Fprintln(w, args...)
}
