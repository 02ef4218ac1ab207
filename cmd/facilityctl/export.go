package main

import (
	"io"
	"os"

	"github.com/aiu-lab/facility-service/facility/app"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:       "export {equipment|rentals|bookings}",
	Short:     "Write computed state as CSV",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: app.ExportKinds,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		deps, err := app.Build(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer deps.Close()

		var w io.Writer = cmd.OutOrStdout()
		if exportOut != "" && exportOut != "-" {
			f, err := os.Create(exportOut)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		return app.Export(ctx, deps, args[0], w)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "-", "file to write, - for stdout")
}
