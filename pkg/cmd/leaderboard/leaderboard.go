package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/gc-segments/log"
	"github.com/mpapenbr/gc-segments/pkg/cmd/common"
	"github.com/mpapenbr/gc-segments/pkg/config"
	"github.com/mpapenbr/gc-segments/pkg/render"
	"github.com/mpapenbr/gc-segments/pkg/service"
	"github.com/mpapenbr/gc-segments/pkg/source"
	dbsource "github.com/mpapenbr/gc-segments/pkg/source/db"
	"github.com/mpapenbr/gc-segments/pkg/source/file"
)

var (
	appConfig config.Config // holds processed config values

	ErrNoSource       = errors.New("either --input or --activity-id is required")
	ErrAmbiguousInput = errors.New("--input and --activity-id are mutually exclusive")
)

func NewLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "computes the route segment leaderboard of an activity",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return prepareConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&config.Input,
		"input",
		"i",
		"",
		"path to a JSON export of the activity")
	cmd.Flags().IntVar(&config.ActivityID,
		"activity-id",
		0,
		"id of a stored activity")
	cmd.Flags().StringVarP(&config.OutputFormat,
		"format",
		"f",
		string(render.FormatText),
		"output format (text, json, yaml)")
	cmd.Flags().StringVar(&config.IntervalType,
		"interval-type",
		source.DefaultIntervalType,
		"interval type of route segments")
	return cmd
}

func prepareConfig() error {
	appConfig = config.Config{
		IntervalType: config.IntervalType,
		OutputFormat: config.OutputFormat,
		FromDB:       config.ActivityID > 0,
	}
	if _, err := render.ParseFormat(appConfig.OutputFormat); err != nil {
		return err
	}
	switch {
	case config.Input != "" && appConfig.FromDB:
		return ErrAmbiguousInput
	case config.Input == "" && !appConfig.FromDB:
		return ErrNoSource
	}
	return nil
}

func run(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	sqlLogger := common.SetupLogger()
	defer log.Sync()
	//nolint:errcheck // validated in PreRunE
	format, _ := render.ParseFormat(appConfig.OutputFormat)

	var src source.Source
	if appConfig.FromDB {
		pool, err := common.OpenDB(ctx, sqlLogger)
		if err != nil {
			return fmt.Errorf("database not ready: %w", err)
		}
		defer pool.Close()
		src = dbsource.New(pool, config.ActivityID)
	} else {
		fileSrc, err := file.Open(config.Input)
		if err != nil {
			return render.Error(out, format, &service.Failure{
				Kind:    service.KindLoadFailure,
				Message: "Failed to load segments",
				Detail:  err.Error(),
				Err:     err,
			})
		}
		src = fileSrc
	}

	svc := service.NewLeaderboardService(src,
		service.WithIntervalType(appConfig.IntervalType))
	lb, err := svc.Compute(ctx)
	if err != nil {
		return render.Error(out, format, err)
	}
	return render.Leaderboard(out, format, lb)
}
