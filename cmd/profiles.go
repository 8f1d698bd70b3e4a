package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/bibtidy/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage option profiles",
	Long:  `List and inspect the option profiles used by the fmt and doi commands.`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := profile.NewRegistry()
		if err != nil {
			return err
		}

		profiles := registry.List()
		if len(profiles) == 0 {
			fmt.Println("No profiles found")
			return nil
		}

		fmt.Println("Available profiles:")
		for _, name := range profiles {
			p, _ := registry.Get(name)
			desc := ""
			if p.Description != "" {
				desc = " - " + p.Description
			}
			fmt.Printf("  %s%s\n", name, desc)
		}

		return nil
	},
}

var profilesShowCmd = &cobra.Command{
	Use:   "show [profile]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := profile.NewRegistry()
		if err != nil {
			return err
		}

		p, ok := registry.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown profile: %s", args[0])
		}

		// Print as YAML
		out, err := yaml.Marshal(p)
		if err != nil {
			return err
		}

		fmt.Println(string(out))
		return nil
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
}
