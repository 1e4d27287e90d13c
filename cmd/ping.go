package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jmehdipour/notify-gateway/internal/db"
	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Connect to MongoDB and report the database in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		mongo := db.NewMongo(mongoOpts(cfg))
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongo.Close(ctx)
		}()

		database, err := mongo.Database(cmd.Context())
		if err != nil {
			return fmt.Errorf("mongo connect: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), ">> connected to MongoDB database %q\n", database.Name())
		return nil
	},
}
