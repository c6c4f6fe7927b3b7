// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/reservoir/demo"
	"github.com/spf13/cobra"
)

// ParamsOptions holds flags for the params command.
type ParamsOptions struct {
	*RootOptions
	ConfigPath string
}

// NewParamsCommand creates the params command.
func NewParamsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParamsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Show the reservoir parameters and their ranges",
		Long: `Show the four reservoir parameters with value, range and step.

With --config the values from the file are shown instead of the defaults.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParams(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML run file")

	return cmd
}

func runParams(opts *ParamsOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	settings := DefaultSettings()
	if opts.ConfigPath != "" {
		var err error
		if settings, err = LoadConfigFile(opts.ConfigPath, settings); err != nil {
			return f.Fail(ExitCommandError, ErrCodeConfig, "invalid config file", err)
		}
	}

	return f.Success(paramTable(settings.Parameters.All()))
}

// paramTable prints as a fixed-width table in text mode.
type paramTable []demo.Parameter

func (t paramTable) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %8s %8s %8s %8s\n", "NAME", "VALUE", "MIN", "MAX", "STEP")
	for _, p := range t {
		fmt.Fprintf(&b, "%-16s %8.2f %8.2f %8.2f %8.2f\n", p.Name, p.Value, p.Min, p.Max, p.Step)
	}

	return b.String()
}
