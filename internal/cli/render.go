package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/eloquentlyAzaria/videosystem-concept/pkg/catalog"
	"github.com/eloquentlyAzaria/videosystem-concept/pkg/errors"
	"github.com/eloquentlyAzaria/videosystem-concept/pkg/thumb"
)

// Variant name suffixes for hover frame files, in thumb.Variants order.
var variantSuffixes = [3]string{"", "_bright", "_dark"}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config   string
	seed     int64
	count    int
	width    int
	height   int
	out      string
	variants bool
	jobs     int
}

// renderCommand creates the thumbnail rendering command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render cover thumbnails for the catalog as PNG files",
		Long:  "Generate the catalog, composite a cover thumbnail per record (plus the brighter and darker hover frames with --variants), and write them as PNGs.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			flagOrConfig(cmd, "seed", &opts.seed, cfg.Catalog.Seed)
			flagOrConfig(cmd, "count", &opts.count, cfg.Catalog.Count)
			flagOrConfig(cmd, "width", &opts.width, cfg.Thumb.Width)
			flagOrConfig(cmd, "height", &opts.height, cfg.Thumb.Height)
			flagOrConfig(cmd, "out", &opts.out, cfg.Render.Out)
			flagOrConfig(cmd, "variants", &opts.variants, cfg.Render.Variants)
			flagOrConfig(cmd, "jobs", &opts.jobs, cfg.Render.Jobs)
			return c.runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default scenehop.toml if present)")
	cmd.Flags().Int64Var(&opts.seed, "seed", catalog.DefaultSeed, "catalog generation seed")
	cmd.Flags().IntVar(&opts.count, "count", catalog.DefaultCount, "number of records to generate")
	cmd.Flags().IntVar(&opts.width, "width", 480, "thumbnail width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 270, "thumbnail height in pixels")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "thumbs", "output directory")
	cmd.Flags().BoolVar(&opts.variants, "variants", true, "also render the hover variant frames")
	cmd.Flags().IntVar(&opts.jobs, "jobs", 4, "concurrent render workers")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	if err := errors.ValidateSize(opts.width, opts.height); err != nil {
		return err
	}
	if opts.jobs < 1 {
		opts.jobs = 1
	}

	records, err := catalog.Generate(opts.seed, opts.count)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create output directory %s", opts.out)
	}

	cache := thumb.NewDefaultCache()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d thumbnails...", len(records)))
	spinner.Start()

	// Distinct cache keys are independent, so records render fully in
	// parallel; the cache collapses the duplicate titles the seeded catalog
	// tends to contain.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs)

	var files atomic.Int64
	for _, v := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := writeRecord(cache, v, opts)
			if err != nil {
				return err
			}
			files.Add(int64(n))
			return nil
		})
	}
	err = g.Wait()

	if spinner.Cancelled() || ctx.Err() != nil {
		spinner.Stop()
		printWarning("Render cancelled")
		return ctx.Err()
	}
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Render failed: %v", errors.UserMessage(err)))
		return err
	}

	spinner.StopWithSuccess(fmt.Sprintf("Rendered %d videos to %s", len(records), opts.out))
	printRenderStats(int(files.Load()), cache.Len(), false)
	prog.done(fmt.Sprintf("Wrote %d files", files.Load()))
	return nil
}

// writeRecord renders and saves the base frame for one record, plus the two
// hover variants when enabled. It returns the number of files written.
func writeRecord(cache *thumb.Cache, v catalog.VideoRecord, opts *renderOpts) (int, error) {
	if !opts.variants {
		img, err := cache.Get(v.Title, v.Color, opts.width, opts.height)
		if err != nil {
			return 0, err
		}
		path := filepath.Join(opts.out, v.ID+".png")
		if err := imaging.Save(img, path); err != nil {
			return 0, errors.Wrap(errors.ErrCodeInternal, err, "save %s", path)
		}
		return 1, nil
	}

	frames, err := cache.HoverFrames(v.Title, v.Color, opts.width, opts.height)
	if err != nil {
		return 0, err
	}
	for i, img := range frames {
		path := filepath.Join(opts.out, v.ID+variantSuffixes[i]+".png")
		if err := imaging.Save(img, path); err != nil {
			return i, errors.Wrap(errors.ErrCodeInternal, err, "save %s", path)
		}
	}
	return len(frames), nil
}

// flagOrConfig assigns the config value unless the flag was set explicitly.
func flagOrConfig[T any](cmd *cobra.Command, name string, dst *T, fromConfig T) {
	if !cmd.Flags().Changed(name) {
		*dst = fromConfig
	}
}
