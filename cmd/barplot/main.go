package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/barplot"
	"github.com/midbel/barplot/export"
	"github.com/midbel/barplot/persist"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "barplot",
		Short:        "barplot renders parameterized bar charts to SVG, PNG and PDF",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newDefaultsCmd())

	return root.ExecuteContext(context.Background())
}

type renderOpts struct {
	settings  string
	out       string
	formats   []string
	name      string
	scale     int
	trans     bool
	container float64
	dpr       float64
}

func newRenderCmd() *cobra.Command {
	var (
		opts       renderOpts
		formatsStr string
	)
	cmd := &cobra.Command{
		Use:   "render [data.csv]",
		Short: "Render a chart from a CSV data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = splitList(formatsStr)
			return runRender(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.settings, "settings", "s", "", "settings document (JSON)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", ".", "output directory")
	cmd.Flags().StringVarP(&formatsStr, "formats", "f", "svg", "comma separated output formats (svg, png, pdf)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "output file name (defaults to the settings export name)")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "raster quality scale (1-6)")
	cmd.Flags().BoolVar(&opts.trans, "transparent", false, "strip the background for export")
	cmd.Flags().Float64Var(&opts.container, "width", 0, "container width used when no custom dimension is set")
	cmd.Flags().Float64Var(&opts.dpr, "dpr", 1, "device pixel ratio for raster exports")
	return cmd
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Write the default settings document to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return persist.Encode(os.Stdout, barplot.DefaultSettings())
		},
	}
}

func runRender(ctx context.Context, file string, opts renderOpts) error {
	var (
		logger = loggerFromContext(ctx)
		start  = time.Now()
		list   = persist.Load(opts.settings)
	)
	if opts.settings == "" {
		list = []barplot.Settings{barplot.DefaultSettings()}
	}
	logger.Debug("settings loaded", "charts", len(list), "file", opts.settings)

	grp, _ := errgroup.WithContext(ctx)
	for i, settings := range list {
		points, err := readPoints(file, barplot.GetPalette(settings.Palette))
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		var (
			index = i
			local = settings
			data  = points
		)
		// Charts export in parallel; the formats of one chart run in
		// sequence on its own engine so raster jobs never overlap.
		grp.Go(func() error {
			engine := &export.Engine{
				DevicePixelRatio: opts.dpr,
				ContainerWidth:   opts.container,
			}
			for _, format := range opts.formats {
				eo := export.FromSettings(local)
				eo.Format = format
				if opts.name != "" {
					eo.Name = opts.name
				}
				if len(list) > 1 {
					eo.Name = fmt.Sprintf("%s-%d", strings.TrimSpace(eo.Name), index+1)
				}
				if opts.scale > 0 {
					eo.Scale = opts.scale
				}
				eo.Transparent = opts.trans
				_, name, err := engine.Export(local, data, eo, opts.out)
				if err != nil {
					return err
				}
				logger.Info("exported", "file", name)
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("done (%s)", time.Since(start).Round(time.Millisecond)))
	return nil
}

// readPoints loads bars from a CSV file with label, value and optional
// error and group columns. A leading header row is skipped when its
// value column does not parse.
func readPoints(file string, pal barplot.Palette) ([]barplot.BarPoint, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var (
		rs     = csv.NewReader(r)
		points []barplot.BarPoint
	)
	rs.FieldsPerRecord = -1
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("need at least label and value columns")
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			if len(points) == 0 {
				continue
			}
			return nil, err
		}
		pt := barplot.NewBarPoint(pal, len(points))
		pt.Label = strings.TrimSpace(row[0])
		pt.Value = value
		if len(row) > 2 {
			if e, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64); err == nil && e >= 0 {
				pt.Error = e
			}
		}
		if len(row) > 3 {
			pt.Group = strings.TrimSpace(row[3])
		}
		points = append(points, pt)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no data rows found")
	}
	return points, nil
}

func splitList(str string) []string {
	var out []string
	for _, s := range strings.Split(str, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, strings.ToLower(s))
		}
	}
	if len(out) == 0 {
		out = append(out, export.FormatSVG)
	}
	return out
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}
