package command

import (
	"pvc/internal"
	"pvc/internal/events"
	"pvc/internal/structures"

	"github.com/spf13/cobra"
)

func NewCheckCmd(flags *structures.CliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Count a view of one post and store the returned visit cookies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(flags, func(app *internal.App) error {
				var detail map[string]any
				unsubscribe := app.Bridge.Subscribe(events.EventCheckPost, func(e events.Event) {
					detail = e.Detail
				})
				defer unsubscribe()

				if _, err := app.Check(cmd.Context()); err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), detail)
			})
		},
	}

	cmd.Flags().IntVarP(&flags.PostID, "post", "p", 0, "post id, overrides counter.postID")
	return cmd
}
