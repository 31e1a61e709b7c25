package probe

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the credential mode and access key the client would use",
		Long: `Resolves the storage credentials. In delegated mode this contacts the
environment identity service, so it doubles as a check of that setup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, client, err := a.buildClient(cmd.Context())
			if err != nil {
				return err
			}

			cfg := client.Config()
			fmt.Fprintf(a.out, "mode\t%s\n", client.Mode())
			fmt.Fprintf(a.out, "endpoint\t%s\n", cfg.Connection.Endpoint)
			fmt.Fprintf(a.out, "region\t%s\n", cfg.Connection.Region)

			key, err := client.AccessKeyID()
			if err != nil {
				return err
			}
			if key == "" {
				key = "(anonymous)"
			}
			fmt.Fprintf(a.out, "access_key\t%s\n", key)
			return nil
		},
	}
}
