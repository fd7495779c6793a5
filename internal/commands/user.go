package commands

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newUserCommand(logger zerolog.Logger) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	var bookDir string
	userCmd.PersistentFlags().StringVar(&bookDir, "book", ".", "book directory")

	var password, companies, by, byPassword string
	addCmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Create a user (administrators only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUserAdd(bookDir, args[0], password, companies, by, byPassword, logger)
		},
	}
	addCmd.Flags().StringVar(&password, "password", "", "password for the new user (required)")
	_ = addCmd.MarkFlagRequired("password")
	addCmd.Flags().StringVar(&companies, "companies", "", "allowed companies, comma separated")
	addCmd.Flags().StringVar(&by, "by", "", "acting username (required)")
	_ = addCmd.MarkFlagRequired("by")
	addCmd.Flags().StringVar(&byPassword, "by-password", "", "acting user's password (required)")
	_ = addCmd.MarkFlagRequired("by-password")

	userCmd.AddCommand(addCmd)
	return userCmd
}

func runUserAdd(dir, username, password, companies, by, byPassword string, logger zerolog.Logger) error {
	root, b, err := loadBook(dir)
	if err != nil {
		return err
	}

	actor, err := b.Users.Authenticate(by, byPassword)
	if err != nil {
		return err
	}

	allowed := splitCompanies(companies)
	if err := b.Users.CreateUser(actor.Username, username, password, allowed); err != nil {
		return err
	}

	// A company may be pre-authorized before it exists in the chart; flag
	// it so a typo is at least visible.
	for _, c := range allowed {
		if !b.Chart.IsValidCompany(c) {
			logger.Warn().Str("company", c).Msg("allowed company not in chart yet")
		}
	}

	if err := b.Users.Save(root); err != nil {
		return err
	}
	commitBook(root, b, "user: add "+username, logger)
	logger.Info().Str("user", username).Strs("companies", allowed).Msg("user created")
	return nil
}

func splitCompanies(s string) []string {
	var out []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
