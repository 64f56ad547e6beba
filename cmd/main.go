package main

import (
	"context"
	"fmt"
	"os"

	"patient-registry/cmd/bootstrap"
	"patient-registry/internal/converter"
	"patient-registry/internal/delivery/dto"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "registry",
		Short: "Patient registration desk",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp opens the store; a store that cannot be initialised is fatal.
func newApp() *bootstrap.App {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	return app
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the registry HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			newApp().Run()
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the tables and seed the default specialists",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp()
			defer app.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Store ready (%s), %d specialist(s) seeded.\n", app.Config.DB.Driver, app.Seeded)
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered patient list to an .xlsx file",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			query := &dto.PatientQuery{}
			query.Specialist, _ = cmd.Flags().GetString("specialist")
			query.Code, _ = cmd.Flags().GetString("code")
			query.From, _ = cmd.Flags().GetString("from")
			query.To, _ = cmd.Flags().GetString("to")

			app := newApp()
			defer app.Close()

			ctx := context.Background()
			list, err := app.Usecases.Patient.ListPatients(ctx, query)
			if err != nil {
				return err
			}

			rows := converter.PatientsToRows(list.Patients)
			if err := app.Usecases.Export.ExportCurrentView(ctx, out, dto.DefaultExportHeaders, rows); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d patient(s) to %s\n", len(rows), out)
			return nil
		},
	}
	cmd.Flags().String("out", "", "Destination .xlsx file")
	cmd.Flags().String("specialist", "", "Only patients of this specialist")
	cmd.Flags().String("code", "", "Patient code substring")
	cmd.Flags().String("from", "", "First submission date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Last submission date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
