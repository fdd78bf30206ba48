package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change preferences",
	Long: `Print the effective preferences as JSON, after the file, .env and
environment overrides have been applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s\n", cfg.Path(), data)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Save one preference",
	Long: `Save one preference to the preferences file.

Keys: default_size, scramble_length, beginner_mode, addr, client_origin,
log_level.`,
	Example: `  twisty config set default_size 4
  twisty config set beginner_mode false`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	next := cfg

	var err error
	switch key {
	case "default_size":
		next.DefaultSize, err = strconv.Atoi(value)
	case "scramble_length":
		next.ScrambleLength, err = strconv.Atoi(value)
	case "beginner_mode":
		next.BeginnerMode, err = strconv.ParseBool(value)
	case "addr":
		next.Addr = value
	case "client_origin":
		next.ClientOrigin = value
	case "log_level":
		next.LogLevel = value
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if err := next.Validate(); err != nil {
		return err
	}

	if err := next.Save(); err != nil {
		return err
	}
	cfg = next
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s = %s to %s\n", key, value, cfg.Path())
	return nil
}
