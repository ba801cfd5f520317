package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func connectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connection",
		Short: "Partner connectivity checks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "test",
		Short: "Verify partner credentials and reachability",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().TestConnection(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			fmt.Println("Partner connection:", resp.Status)
			return nil
		},
	})

	return cmd
}
