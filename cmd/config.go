package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smazurov/vibelight/internal/node"
)

// CreateConfigCmd creates the config command with its sample and validate
// subcommands.
func CreateConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Work with node configuration files",
	}
	cmd.AddCommand(createConfigSampleCmd(), createConfigValidateCmd())
	return cmd
}

func createConfigSampleCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print or write the sample node configuration",
		Long:  `Prints the commented sample node configuration. With --output the file is written atomically with mode 0600, since it holds credentials.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				_, err := cmd.OutOrStdout().Write(node.Sample())
				return err
			}
			if err := node.WriteFile(output, node.Sample()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

func createConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a node configuration file",
		Long:  `Parses the file, applies environment overrides and reports every validation error.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := node.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := cfg.Validate(); err != nil {
				var fieldErr *node.FieldError
				for _, e := range unwrapJoined(err) {
					if errors.As(e, &fieldErr) {
						fmt.Fprintf(out, "  %-26s %s\n", fieldErr.Field, fieldErr.Message)
					}
				}
				return fmt.Errorf("%s is invalid", args[0])
			}

			fmt.Fprintf(out, "%s is valid\n", args[0])
			fmt.Fprintf(out, "  node:    %s\n", cfg.Node.ID)
			fmt.Fprintf(out, "  strip:   %s %s, %d LEDs, max brightness %d%%\n",
				cfg.LED.Type, cfg.LED.Capability, cfg.LED.Count, cfg.LED.MaxBrightness)
			fmt.Fprintf(out, "  fade:    %s transition", cfg.TransitionDuration())
			if cfg.Crossfade.Enabled {
				fmt.Fprintf(out, ", crossfade %d steps every %s", cfg.Crossfade.Steps, cfg.CrossfadeStepDelay())
			}
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  state:   %s\n", cfg.MQTT.StateTopic)
			fmt.Fprintf(out, "  command: %s\n", cfg.MQTT.CommandTopic)
			return nil
		},
	}
}

// unwrapJoined splits an errors.Join result into its parts.
func unwrapJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
