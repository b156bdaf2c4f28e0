package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framery/framery/pkg/cache"
)

// newCacheCmd creates the cache command group.
func newCacheCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the remote asset cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show cache location and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := openCache(*configPath)
			if err != nil {
				return err
			}
			defer fc.Close()

			count, bytes, err := fc.Size()
			if err != nil {
				return err
			}
			printKeyValue("Location", fc.Dir())
			printKeyValue("Entries", fmt.Sprintf("%d", count))
			printKeyValue("Size", formatBytes(bytes))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all cached assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := openCache(*configPath)
			if err != nil {
				return err
			}
			defer fc.Close()

			count, _, err := fc.Size()
			if err != nil {
				return err
			}
			if err := fc.Clear(); err != nil {
				return err
			}
			printSuccess("Cleared %d cached entries", count)
			return nil
		},
	})

	return cmd
}

func openCache(configPath string) (*cache.FileCache, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(cfg.Assets.CacheDir)
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
