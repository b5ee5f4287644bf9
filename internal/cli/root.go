// Package cli is the command-line front end of the console.
package cli

import (
	"errors"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hotel_console/internal/adapters/observability"
	"hotel_console/internal/shared"
)

var (
	errNotLoggedIn = errors.New("not logged in")
	errFailed      = errors.New("operation failed")
)

// Env is the process surroundings a command runs in.
type Env struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// Load resolves configuration for the --config flag value.
	Load func(cfgFile string) shared.Config
}

type runtime struct {
	env    *Env
	cfg    shared.Config
	output string
}

func NewRootCmd(env *Env) *cobra.Command {
	if env.Load == nil {
		env.Load = shared.Load
	}
	rt := &runtime{env: env}
	var cfgFile, output string

	root := &cobra.Command{
		Use:           "console",
		Short:         "Hotel platform admin console",
		Long:          "Manage hotels and hotel-admin accounts of the hotel platform from the terminal.",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			rt.cfg = env.Load(cfgFile)
			log.Logger = observability.NewLogger(rt.cfg.AppEnv, rt.cfg.LogLevel, env.Err)
			rt.output = rt.cfg.Output
			if output != "" {
				rt.output = output
			}
			return checkFormat(rt.output)
		},
	}
	root.SetIn(env.In)
	root.SetOut(env.Out)
	root.SetErr(env.Err)

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.hotel-console.yaml)")
	root.PersistentFlags().StringVarP(&output, "output", "o", "", "output format (table, json, yaml)")

	root.AddCommand(
		newLoginCmd(rt),
		newLogoutCmd(rt),
		newWhoamiCmd(rt),
		newDashboardCmd(rt),
		newHotelsCmd(rt),
		newUsersCmd(rt),
		newServeCmd(rt),
	)
	return root
}
