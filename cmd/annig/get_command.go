package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"annig/internal/albumtoml"
	"annig/internal/catalog"
	"annig/internal/config"
	"annig/internal/credits"
	"annig/internal/history"
	"annig/internal/logging"
	"annig/internal/musicbrainz"
	"annig/internal/release"
	"annig/internal/services"
)

type getOptions struct {
	releaseID string
	catalog   string
	dryRun    bool
}

func newGetCommand(ctx *commandContext) *cobra.Command {
	var opts getOptions

	cmd := &cobra.Command{
		Use:     "get [release-id]",
		Aliases: []string{"g"},
		Short:   "Generate the album TOML of the current album directory from MusicBrainz",
		Long: `Generate the album TOML of the current album directory from MusicBrainz.

The working directory must be named like "[YYYY-MM-DD][CATALOG] Title [N Discs]".
Without a release id the release is searched by catalog number.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.releaseID = strings.TrimSpace(args[0])
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolve working directory: %w", err)
			}
			return runGet(cmd.Context(), cmd.OutOrStdout(), ctx, cfg, logger, workDir, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.catalog, "catalog", "c", "", "Catalog number override (defaults to the directory catalog)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the TOML instead of writing it to the repository")
	return cmd
}

func runGet(ctx context.Context, out io.Writer, cmdCtx *commandContext, cfg *config.Config, logger *slog.Logger, workDir string, opts getOptions) error {
	dir, err := catalog.ParseDirectoryName(workDir)
	if err != nil {
		return err
	}
	albumCatalog := dir.Catalog
	if override := strings.TrimSpace(opts.catalog); override != "" {
		albumCatalog = override
	}
	logger = logger.With(logging.String(logging.FieldCatalog, albumCatalog))

	// Fail before any request when the record has nowhere to go.
	var albumDir string
	if !opts.dryRun {
		if albumDir, err = cfg.AlbumDir(); err != nil {
			return err
		}
	}

	client, err := musicbrainz.New(cfg.MusicBrainz.BaseURL, cfg.MusicBrainz.UserAgent, musicbrainz.WithTimeout(cfg.RequestTimeout()))
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "get", "musicbrainz client", "", err)
	}
	api := release.NewPaced(client, cfg.RequestDelay(), logger)
	cache := cmdCtx.artistCache(cfg, logger)
	resolver := credits.NewResolver(release.NewDirectory(api), cache, logger)
	builder := release.NewBuilder(api, resolver, logger)

	releaseID := opts.releaseID
	if releaseID == "" {
		if releaseID, err = builder.ResolveReleaseID(ctx, albumCatalog); err != nil {
			return err
		}
	}

	album, err := builder.Build(ctx, releaseID, albumCatalog)
	if err != nil {
		return err
	}
	if err := cache.Save(); err != nil {
		logging.WarnWithContext(logger, "failed to save artist cache", "artistcache_save_failed",
			logging.Error(err),
			logging.String("path", cache.Path()),
			logging.String(logging.FieldErrorHint, "check permissions of the cache directory"),
			logging.String(logging.FieldImpact, "resolved artists will be looked up again next run"))
	}

	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		return err
	}
	defer store.Close()

	previous, err := store.Lookup(ctx, albumCatalog)
	if err != nil {
		return err
	}
	if previous != nil {
		album.ID = previous.AlbumID
		logger.Info("reusing album id", logging.String("album_id", album.ID))
	} else {
		album.ID = uuid.NewString()
	}

	if opts.dryRun {
		return albumtoml.Encode(out, album)
	}

	outputPath := filepath.Join(albumDir, albumCatalog+".toml")
	if err := albumtoml.WriteFile(outputPath, album); err != nil {
		return err
	}
	if err := store.Record(ctx, &history.Record{
		Catalog:    albumCatalog,
		AlbumID:    album.ID,
		ReleaseID:  releaseID,
		Title:      album.Title,
		Artist:     album.Artist,
		OutputPath: outputPath,
	}); err != nil {
		return err
	}
	logger.Info("album record written",
		logging.String(logging.FieldReleaseID, releaseID),
		logging.String("path", outputPath))
	fmt.Fprintf(out, "TOML file generated at %s\n", outputPath)
	return nil
}
