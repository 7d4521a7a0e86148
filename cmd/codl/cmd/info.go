package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/codl-go/codl/internal/client"
	"github.com/codl-go/codl/internal/config"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

// infoCmd prints basic information about the configured cobalt instance
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show information about the configured cobalt instance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg := config.GetConfig()
		if cfg.InstanceURL == "" {
			return errors.New("INSTANCE_URL is not set")
		}

		c, err := client.NewClient(cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		info, err := c.Info(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("version:        %s\n", info.Cobalt.Version)
		fmt.Printf("url:            %s\n", info.Cobalt.URL)
		fmt.Printf("started:        %s\n", info.Cobalt.StartTime.Time().Format(time.RFC3339))
		fmt.Printf("duration limit: %ds\n", info.Cobalt.DurationLimit)
		fmt.Printf("services:       %s\n", strings.Join(info.Cobalt.Services, ", "))
		fmt.Printf("commit:         %s (%s)\n", info.Git.Commit, info.Git.Branch)
		return nil
	},
}
