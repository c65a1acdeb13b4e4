package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the answer cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop every cached answer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := current.openCache(false)
		if err != nil {
			return err
		}
		if cache == nil {
			return fmt.Errorf("answer cache is disabled in %s", configName())
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("answer cache: %w", err)
		}
		if !current.quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", cache.Dir())
		}
		return nil
	},
}

var cacheDirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the answer cache directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := current.openCache(false)
		if err != nil {
			return err
		}
		if cache == nil {
			return fmt.Errorf("answer cache is disabled in %s", configName())
		}
		fmt.Fprintln(cmd.OutOrStdout(), cache.Dir())
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
	cacheCmd.AddCommand(cacheDirCmd)
}

func configName() string {
	if current.cfg.Path != "" {
		return current.cfg.Path
	}
	return "aoc.toml"
}
