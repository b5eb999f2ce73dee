package command

import (
	"os"
	"pvc/internal"
	"pvc/internal/di"
	"pvc/internal/structures"

	"github.com/spf13/cobra"
)

const AppName = "pvc"

// Version is overwritten at build time using -ldflags.
var Version = "dev"

// appFactory builds the application from the parsed flags. Tests replace it.
var appFactory = di.InitApp

func NewRootCmd(version string) *cobra.Command {
	flags := &structures.CliFlags{}

	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "pvc - Post Views Counter client",
		Long:          "pvc performs the Post Views Counter view counting round trip against a WordPress site and keeps the visit cookies between runs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config.yaml", "path to the config file")
	cmd.PersistentFlags().BoolVar(&flags.DebugMode, "debug", false, "log to the console as well")
	cmd.PersistentFlags().StringVar(&flags.RequestURL, "url", "", "counting endpoint, overrides counter.requestURL")
	cmd.PersistentFlags().StringVar(&flags.Nonce, "nonce", "", "request nonce, overrides counter.nonce")
	cmd.PersistentFlags().StringVar(&flags.Mode, "mode", "", "transport mode: rest_api or admin_ajax")

	cmd.AddCommand(
		NewCheckCmd(flags),
		NewCountCmd(flags),
		NewJarCmd(flags),
	)

	return cmd
}

func Execute() error {
	return NewRootCmd(Version).Execute()
}

func withApp(flags *structures.CliFlags, run func(app *internal.App) error) error {
	app, err := appFactory(flags)
	if err != nil {
		return err
	}
	defer app.Close()
	return run(app)
}
