package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := GetApp()
			if a == nil {
				return fmt.Errorf("app not initialized")
			}
			data, err := yaml.Marshal(a.Config.Get())
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			cmd.Print(string(data))
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the path of the loaded config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := GetApp()
			if a == nil {
				return fmt.Errorf("app not initialized")
			}
			path := a.Config.GetConfigFile()
			if path == "" {
				return fmt.Errorf("no config file loaded, using built-in defaults")
			}
			cmd.Println(path)
			return nil
		},
	}

	configCmd.AddCommand(showCmd, pathCmd)
	return configCmd
}
