package command

import (
	"fmt"
	"pvc/internal"
	"pvc/internal/structures"
	"time"

	"github.com/spf13/cobra"
)

func NewJarCmd(flags *structures.CliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jar",
		Short: "Show the visit records the next check would send",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return withApp(flags, func(app *internal.App) error {
				report := app.Snapshot()
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), report)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s: %q\n", report.StorageName, report.Snapshot)
				for _, r := range report.Records {
					fmt.Fprintf(out, "  %s=%s expires %s\n", r.Name, r.Value, time.Unix(r.Expiry, 0).UTC().Format(time.RFC3339))
				}
				return nil
			})
		},
	}

	cmd.Flags().Bool("json", false, "output in JSON format")
	return cmd
}
