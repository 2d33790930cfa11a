package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mica-lang/mica/internal/cache"
	"github.com/mica-lang/mica/internal/config"
	"github.com/mica-lang/mica/internal/db"
	"github.com/mica-lang/mica/internal/diagnostics"
	"github.com/mica-lang/mica/internal/hir"
	"github.com/mica-lang/mica/internal/pipeline"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Type-check a package and report diagnostics",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "ignore the on-disk build cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	manifest, err := config.LoadManifest(root)
	if err != nil {
		return err
	}

	sources, err := collectSources(manifest.SourceDir(root))
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no %s files under %s", config.SourceFileExt, manifest.SourceDir(root))
	}

	store := openCache(root)
	if store != nil {
		defer store.Close()
	}

	renderer := diagnostics.NewRenderer(os.Stderr)
	if flagNoColor {
		renderer.SetColor(false)
	}

	database := db.New()
	checkPipe := pipeline.CheckPipeline()

	hadErrors := false
	for i, path := range sources {
		text, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		hash := cache.HashText(string(text))

		if store != nil {
			if diags, hit, err := store.Lookup(path, hash); err == nil && hit {
				renderer.RenderAll(diags)
				hadErrors = hadErrors || diagnostics.HasErrors(diags)
				continue
			}
		}

		ctx := checkPipe.Run(&pipeline.Context{
			DB:         database,
			FileID:     hir.FileID(i),
			FilePath:   path,
			SourceCode: string(text),
		})

		renderer.RenderAll(ctx.Diagnostics)
		hadErrors = hadErrors || diagnostics.HasErrors(ctx.Diagnostics)

		if store != nil {
			// Best effort: a cache write failure never fails the check.
			_ = store.Record(path, hash, ctx.Diagnostics)
		}
	}

	if hadErrors {
		return fmt.Errorf("check failed")
	}
	return nil
}

func collectSources(dir string) ([]string, error) {
	var sources []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == config.CacheDirName {
				return filepath.SkipDir
			}
			return nil
		}
		if config.IsSourceFile(path) {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(sources)
	return sources, nil
}

// openCache returns nil when caching is disabled or unavailable; a check
// always succeeds without the cache.
func openCache(root string) *cache.Store {
	if flagNoCache {
		return nil
	}
	dir := filepath.Join(root, config.CacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	store, err := cache.Open(filepath.Join(dir, config.CacheFileName))
	if err != nil {
		return nil
	}
	return store
}
