package command

import (
	"pvc/internal"
	"pvc/internal/services"
	"pvc/internal/structures"

	"github.com/spf13/cobra"
)

func NewCountCmd(flags *structures.CliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count views of several posts without touching the visit cookies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, _ := cmd.Flags().GetString("ids")
			ids, err := services.ParsePostIDs(list)
			if err != nil {
				return err
			}
			return withApp(flags, func(app *internal.App) error {
				env, err := app.Count(cmd.Context(), ids)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), env.Detail)
			})
		},
	}

	cmd.Flags().String("ids", "", "comma separated post ids")
	_ = cmd.MarkFlagRequired("ids")
	return cmd
}
