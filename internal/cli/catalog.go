package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/eloquentlyAzaria/videosystem-concept/pkg/catalog"
	"github.com/eloquentlyAzaria/videosystem-concept/pkg/errors"
)

// Catalog views selectable with --view, one per sidebar section of a
// typical video app.
const (
	viewHome          = "home"
	viewSubscriptions = "subscriptions"
	viewLibrary       = "library"
	viewHistory       = "history"
	viewLiked         = "liked"
)

// catalogOpts holds the command-line flags for the catalog command.
type catalogOpts struct {
	config string
	seed   int64
	count  int
	view   string
	query  string
}

// catalogCommand creates the catalog listing command.
func (c *CLI) catalogCommand() *cobra.Command {
	var opts catalogOpts

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the generated video catalog",
		Long:  "Generate the deterministic mock catalog and print it as a table. Use --view for the browsing sections and --query for title/channel search.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = cfg.Catalog.Seed
			}
			if !cmd.Flags().Changed("count") {
				opts.count = cfg.Catalog.Count
			}
			return c.runCatalog(&opts)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default scenehop.toml if present)")
	cmd.Flags().Int64Var(&opts.seed, "seed", catalog.DefaultSeed, "catalog generation seed")
	cmd.Flags().IntVar(&opts.count, "count", catalog.DefaultCount, "number of records to generate")
	cmd.Flags().StringVar(&opts.view, "view", viewHome, "catalog view: home, subscriptions, library, history, liked")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "filter by title or channel")

	return cmd
}

func (c *CLI) runCatalog(opts *catalogOpts) error {
	records, err := catalog.Generate(opts.seed, opts.count)
	if err != nil {
		return err
	}

	view, err := applyView(records, opts.view)
	if err != nil {
		return err
	}
	if opts.query != "" {
		view = catalog.Search(view, opts.query)
	}

	if len(view) == 0 {
		printInfo("No videos match")
		return nil
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		}).
		Headers("ID", "TITLE", "CHANNEL", "VIEWS", "AGE", "DURATION")

	for _, v := range view {
		tbl.Row(v.ID, v.Title, v.Channel, catalog.FormatViews(v.Views), catalog.FormatAge(v.AgeDays), v.Duration)
	}

	fmt.Println(tbl.Render())
	printDetail("%d of %d videos (seed %d)", len(view), len(records), opts.seed)
	return nil
}

// applyView maps a view name to its catalog transformation.
func applyView(records []catalog.VideoRecord, view string) ([]catalog.VideoRecord, error) {
	switch strings.ToLower(view) {
	case viewHome, "":
		return records, nil
	case viewSubscriptions:
		return catalog.Recent(records, 12), nil
	case viewLibrary:
		return catalog.Reversed(records), nil
	case viewHistory:
		return catalog.Slice(records, 6, 18), nil
	case viewLiked:
		return catalog.MostViewed(records, 12), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown view %q", view)
	}
}
