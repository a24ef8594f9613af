package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/gc-segments/log"
	"github.com/mpapenbr/gc-segments/pkg/cmd/common"
	"github.com/mpapenbr/gc-segments/pkg/config"
	"github.com/mpapenbr/gc-segments/pkg/service"
	"github.com/mpapenbr/gc-segments/pkg/source"
	"github.com/mpapenbr/gc-segments/pkg/source/file"
)

func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "stores a JSON export in the database",
		Long: `Stores season, activity, telemetry and intervals of a JSON export.
The season becomes the selected season. The printed activity id can be
passed to 'leaderboard --activity-id'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&config.Input,
		"input",
		"i",
		"",
		"path to a JSON export of the activity")
	cmd.Flags().StringVar(&config.IntervalType,
		"interval-type",
		source.DefaultIntervalType,
		"interval type of route segments")
	//nolint:errcheck // flag exists
	cmd.MarkFlagRequired("input")
	return cmd
}

func runImport(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	sqlLogger := common.SetupLogger()
	defer log.Sync()

	src, err := file.Open(config.Input)
	if err != nil {
		return err
	}
	pool, err := common.OpenDB(ctx, sqlLogger)
	if err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}
	defer pool.Close()

	res, err := service.NewImporter(
		service.WithImportIntervalType(config.IntervalType),
	).Import(ctx, pool, src)
	if err != nil {
		return fmt.Errorf("import %s: %w", config.Input, err)
	}
	log.Info("Imported activity",
		log.String("input", config.Input),
		log.Int("activityId", res.ActivityID))
	fmt.Fprintln(out, res.ActivityID)
	return nil
}
