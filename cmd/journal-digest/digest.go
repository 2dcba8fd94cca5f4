// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/journal-digest/internal/crossref"
	"github.com/pdiddy/journal-digest/internal/records"
	"github.com/pdiddy/journal-digest/internal/render"
	"github.com/pdiddy/journal-digest/internal/secrets"
	"github.com/pdiddy/journal-digest/pkg/types"
)

// defaultISSN is Magnetic Resonance in Medicine (online).
const defaultISSN = "1522-2594"

// minWidth leaves room for the frame and a few columns of text.
const minWidth = 20

// Color modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// fetcher is the part of the Crossref client the digest needs.
type fetcher interface {
	Recent(ctx context.Context, q crossref.Query) ([]types.PaperRecord, error)
}

// digestOptions is everything one run needs, resolved from flags, env and config.
type digestOptions struct {
	Config types.Config
	Term   string
	Format records.Format
	Input  string
}

func init() {
	f := rootCmd.Flags()
	f.StringP("query", "q", "", "search term (same as the positional argument)")
	f.IntP("rows", "n", crossref.DefaultRows, fmt.Sprintf("number of articles to fetch (max %d)", crossref.MaxRows))
	f.String("issn", defaultISSN, "ISSN of the journal to query")
	f.String("mailto", "", "contact address for Crossref's polite pool (default: .secrets/crossref-mailto)")
	f.Duration("timeout", 30*time.Second, "HTTP request timeout")
	f.String("user-agent", "journal-digest/"+version, "User-Agent header for API requests")
	f.BoolP("title-only", "t", false, "omit abstracts")
	f.Int("width", types.DefaultDisplayWidth, "frame width in columns")
	f.String("indent", "", "prefix for every wrapped content line")
	f.String("color", colorAuto, "color output: auto, always or never")
	f.String("format", string(records.FormatFrame), "output format: frame, json or yaml")
	f.String("input", "", "render records from a saved JSON or YAML file instead of querying Crossref")

	for key, flag := range map[string]string{
		"crossref.rows":       "rows",
		"crossref.issn":       "issn",
		"crossref.mailto":     "mailto",
		"crossref.timeout":    "timeout",
		"crossref.user_agent": "user-agent",
		"display.title_only":  "title-only",
		"display.width":       "width",
		"display.indent":      "indent",
		"display.color":       "color",
		"format":              "format",
	} {
		if err := viper.BindPFlag(key, f.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func runDigest(cmd *cobra.Command, args []string) error {
	opts, err := digestOptionsFromFlags(cmd, args, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var src fetcher
	if opts.Input == "" {
		src = crossref.NewClient(opts.Config.Crossref, logger)
	}
	return digest(cmd.Context(), opts, src, cmd.OutOrStdout())
}

// digestOptionsFromFlags resolves flags, environment and config file into
// one digestOptions. Flags win over the environment, which wins over the file.
func digestOptionsFromFlags(cmd *cobra.Command, args []string, out io.Writer) (digestOptions, error) {
	term, _ := cmd.Flags().GetString("query")
	if len(args) > 0 {
		if term != "" && term != args[0] {
			return digestOptions{}, fmt.Errorf("search term given twice: %q and %q", args[0], term)
		}
		term = args[0]
	}

	format, err := records.ParseFormat(viper.GetString("format"))
	if err != nil {
		return digestOptions{}, err
	}

	width := viper.GetInt("display.width")
	if width < minWidth {
		return digestOptions{}, fmt.Errorf("width must be at least %d, got %d", minWidth, width)
	}

	color, err := resolveColor(viper.GetString("display.color"), out)
	if err != nil {
		return digestOptions{}, err
	}

	input, _ := cmd.Flags().GetString("input")

	return digestOptions{
		Config: types.Config{
			Crossref: types.CrossrefConfig{
				HTTPConfig: types.HTTPConfig{
					Timeout:   viper.GetDuration("crossref.timeout"),
					UserAgent: viper.GetString("crossref.user_agent"),
				},
				ISSN:   viper.GetString("crossref.issn"),
				Rows:   viper.GetInt("crossref.rows"),
				Mailto: loadedSecrets.Get(secrets.CrossrefMailto, viper.GetString("crossref.mailto")),
			},
			Display: types.DisplayOptions{
				TitleOnly: viper.GetBool("display.title_only"),
				Width:     width,
				Indent:    viper.GetString("display.indent"),
				Color:     color,
			},
		},
		Term:   strings.TrimSpace(term),
		Format: format,
		Input:  input,
	}, nil
}

// digest loads the papers, from opts.Input when set and from src otherwise,
// and writes them to w in the requested format.
func digest(ctx context.Context, opts digestOptions, src fetcher, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var papers []types.PaperRecord
	var err error
	if opts.Input != "" {
		if opts.Term != "" {
			logger.Warn("search term is ignored when rendering from a file", "term", opts.Term)
		}
		papers, err = records.ReadFile(opts.Input)
	} else {
		if src == nil {
			return fmt.Errorf("no paper source configured")
		}
		papers, err = src.Recent(ctx, crossref.Query{
			ISSN: opts.Config.Crossref.ISSN,
			Term: opts.Term,
			Rows: opts.Config.Crossref.Rows,
		})
	}
	if err != nil {
		return err
	}

	if opts.Format != records.FormatFrame {
		return records.Encode(w, papers, opts.Format)
	}

	if len(papers) == 0 {
		_, err := fmt.Fprintln(w, "No articles found.")
		return err
	}
	logger.Debug("rendering papers", "count", len(papers), "width", opts.Config.Display.Width)
	return render.Print(w, render.RenderAll(papers, opts.Config.Display))
}

// resolveColor turns a --color mode into a yes/no. A config file may also
// hold a plain boolean for display.color, which viper hands over as "true"
// or "false". In auto mode colors are used only for a terminal and never
// when NO_COLOR is set.
func resolveColor(mode string, out io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case colorAlways, "true":
		return true, nil
	case colorNever, "false":
		return false, nil
	case colorAuto, "":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := out.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("unknown color mode %q: use auto, always or never", mode)
	}
}
