package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"voyago/internal/infra"
)

func SeedCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert default accounts and a sample catalogue",
		Long: "Creates one account per role (existing emails are kept) and, when the\n" +
			"catalogue is empty, sample tours, hotels and testimonials.",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrate, _ := cmd.Flags().GetBool("migrate")

			db, closeDB, err := open(cmd)
			if err != nil {
				return err
			}
			defer closeDB()

			if migrate {
				if err := infra.AutoMigrate(db); err != nil {
					return err
				}
			}

			res, err := infra.Seed(cmd.Context(), db, zap.NewNop())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d users, %d tours, %d hotels, %d testimonials.\n",
				res.Users, res.Tours, res.Hotels, res.Testimonials)
			return nil
		},
	}
	cmd.Flags().Bool("migrate", true, "migrate the schema before seeding")
	return cmd
}
