package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"annig/internal/artistcache"
	"annig/internal/textutil"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the artist cache",
	}

	cacheCmd.AddCommand(newCacheShowCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCacheShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List cached character voice actors and group members",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cache file: %s (persistence enabled: %s)\n", cfg.ArtistCache.Path, yesNo(cfg.ArtistCache.Enabled))

			store := artistcache.Open(cfg.ArtistCache.Path, logger)
			characters := store.Characters()
			groups := store.Groups()
			if len(characters) == 0 && len(groups) == 0 {
				fmt.Fprintln(out, "Cache is empty")
				return nil
			}

			if len(characters) > 0 {
				rows := make([][]string, 0, len(characters))
				for _, entry := range characters {
					rows = append(rows, []string{entry.Character, entry.Person})
				}
				fmt.Fprintln(out, renderTable([]column{{header: "Character"}, {header: "Voice actor"}}, rows))
			}
			if len(groups) > 0 {
				rows := make([][]string, 0, len(groups))
				for _, entry := range groups {
					rows = append(rows, []string{entry.Group, fmt.Sprint(len(entry.Members)), memberNames(entry.Members)})
				}
				fmt.Fprintln(out, renderTable([]column{
					{header: "Group"},
					{header: "Members", align: alignRight},
					{header: "Names", maxWidth: 60},
				}, rows))
			}
			return nil
		},
	}
}

func memberNames(members []artistcache.Member) string {
	names := make([]string, 0, len(members))
	for _, member := range members {
		names = append(names, member.Name)
	}
	return strings.Join(names, textutil.ArtistSeparator)
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached artists",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			store := artistcache.Open(cfg.ArtistCache.Path, logger)
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared artist cache at %s\n", cfg.ArtistCache.Path)
			return nil
		},
	}
}
