package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newChartCommand(logger zerolog.Logger) *cobra.Command {
	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Manage the chart of accounts",
	}

	var bookDir string
	chartCmd.PersistentFlags().StringVar(&bookDir, "book", ".", "book directory")

	addCompany := &cobra.Command{
		Use:   "add-company <value>",
		Short: "Add a company segment value (format: '03 - NewCo')",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCompany(bookDir, args[0], logger)
		},
	}

	var company string
	addDepartment := &cobra.Command{
		Use:   "add-department <value>",
		Short: "Add a department under a company (format: '03 - R&D')",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddDepartment(bookDir, company, args[0], logger)
		},
	}
	addDepartment.Flags().StringVar(&company, "company", "", "owning company (required)")
	_ = addDepartment.MarkFlagRequired("company")

	addAccount := &cobra.Command{
		Use:   "add-account <value>",
		Short: "Add an account segment value (format: '6000 - New Account')",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddAccount(bookDir, args[0], logger)
		},
	}

	chartCmd.AddCommand(addCompany, addDepartment, addAccount)
	return chartCmd
}

func runAddCompany(dir, value string, logger zerolog.Logger) error {
	root, b, err := loadBook(dir)
	if err != nil {
		return err
	}
	if err := b.Chart.AddCompany(value); err != nil {
		return err
	}
	if err := b.Chart.Save(root); err != nil {
		return err
	}
	commitBook(root, b, "chart: add company "+value, logger)
	logger.Info().Str("company", value).Msg("company added")
	return nil
}

func runAddDepartment(dir, company, value string, logger zerolog.Logger) error {
	root, b, err := loadBook(dir)
	if err != nil {
		return err
	}
	if err := b.Chart.AddDepartment(company, value); err != nil {
		return err
	}
	if err := b.Chart.Save(root); err != nil {
		return err
	}
	commitBook(root, b, "chart: add department "+value, logger)
	logger.Info().Str("company", company).Str("department", value).Msg("department added")
	return nil
}

func runAddAccount(dir, value string, logger zerolog.Logger) error {
	root, b, err := loadBook(dir)
	if err != nil {
		return err
	}
	if err := b.Chart.AddAccount(value); err != nil {
		return err
	}
	if err := b.Chart.Save(root); err != nil {
		return err
	}
	commitBook(root, b, "chart: add account "+value, logger)
	logger.Info().Str("account", value).Msg("account added")
	return nil
}
