package main

import (
	"fmt"

	"github.com/aiu-lab/facility-service/facility/app"
	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Mark overdue rentals and complete finished bookings once",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		deps, err := app.Build(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer deps.Close()

		overdue, completed, err := deps.Service.Sweep(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "overdue rentals: %d\ncompleted bookings: %d\n", overdue, completed)
		return nil
	},
}
