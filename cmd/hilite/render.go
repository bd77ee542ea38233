package hilite

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/hilite/pkg/config"
	"github.com/arthur-debert/hilite/pkg/highlight"
	"github.com/arthur-debert/hilite/pkg/logging"
	"github.com/arthur-debert/hilite/pkg/ui"
	"github.com/arthur-debert/hilite/pkg/ui/display"
	"github.com/arthur-debert/hilite/pkg/ui/styles"
)

// renderFlags are the flags that override render and output settings
type renderFlags struct {
	mode       string
	palette    string
	format     string
	class      string
	inline     bool
	noMarkdown bool
	output     string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", MsgFlagMode)
	cmd.Flags().StringVarP(&f.palette, "palette", "p", "", MsgFlagPalette)
	cmd.Flags().StringVarP(&f.format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().StringVar(&f.class, "class", "", MsgFlagClass)
	cmd.Flags().BoolVar(&f.inline, "inline", false, MsgFlagInline)
	cmd.Flags().BoolVar(&f.noMarkdown, "no-markdown", false, MsgFlagNoMarkdown)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", MsgFlagOutput)

	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"highlights", "underline", "both", "none"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "html", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// overrides returns config keys for the flags set on the command line
func (f *renderFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	o := map[string]interface{}{}
	set := func(flag, key string, value interface{}) {
		if cmd.Flags().Changed(flag) {
			o[key] = value
		}
	}
	set("mode", "render.mode", f.mode)
	set("palette", "render.palette", f.palette)
	set("no-markdown", "render.markdown", !f.noMarkdown)
	set("format", "output.format", f.format)
	set("class", "output.class", f.class)
	set("inline", "output.inline", f.inline)
	return o
}

// newRequest builds a display request from the effective configuration
func newRequest(cfg *config.Config, source string) display.Request {
	return display.Request{
		Source:       source,
		Mode:         cfg.Render.Mode,
		Palette:      cfg.Render.Palette,
		Registry:     cfg.Registry(),
		ClassName:    cfg.Output.Class,
		Inline:       cfg.Output.Inline,
		SkipMarkdown: !cfg.Render.Markdown,
	}
}

func newRenderCmd(a *app) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:     "render [file]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.render")
			done := logging.LogOperationStart(logger, "render")
			defer done()

			cfg, err := a.loadConfig(flags.overrides(cmd))
			if err != nil {
				return err
			}

			source, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			w, closeOutput, err := a.openOutput(cmd, flags.output)
			if err != nil {
				return err
			}
			defer func() { _ = closeOutput() }()

			renderer, err := ui.NewRenderer(cfg.Output.Format, w)
			if err != nil {
				return err
			}

			logger.Debug().
				Int("bytes", len(source)).
				Str("mode", cfg.Render.Mode.String()).
				Str("palette", cfg.Render.Palette).
				Str("format", cfg.Output.Format.String()).
				Msg("Rendering document")

			if err := renderer.RenderHighlights(newRequest(cfg, source)); err != nil {
				return err
			}
			return closeOutput()
		},
	}

	flags.register(cmd)
	return cmd
}

func newSanitizeCmd(a *app) *cobra.Command {
	var (
		showDiff bool
		output   string
	)

	cmd := &cobra.Command{
		Use:     "sanitize [file]",
		Short:   MsgSanitizeShort,
		Long:    MsgSanitizeLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			w, closeOutput, err := a.openOutput(cmd, output)
			if err != nil {
				return err
			}
			defer func() { _ = closeOutput() }()

			clean := highlight.Sanitize(source)
			if !showDiff {
				_, err = fmt.Fprint(w, clean)
				return err
			}

			if clean == source {
				_, err = fmt.Fprintln(w, styles.RenderFor(lipgloss.NewRenderer(w), "Muted", MsgNoChanges))
				return err
			}

			name := inputName(args)
			edits := myers.ComputeEdits(span.URIFromPath(name), source, clean)
			log.Debug().Int("edits", len(edits)).Msg("Sanitize diff computed")
			_, err = fmt.Fprint(w, gotextdiff.ToUnified(name, name+" (sanitized)", source, edits))
			return err
		},
	}

	cmd.Flags().BoolVarP(&showDiff, "diff", "d", false, MsgFlagDiff)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}

func newStripCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "strip [file]",
		Short:   MsgStripShort,
		Long:    MsgStripLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			w, closeOutput, err := a.openOutput(cmd, output)
			if err != nil {
				return err
			}
			defer func() { _ = closeOutput() }()

			_, err = fmt.Fprint(w, highlight.StripCodes(source))
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}

func newCodesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "codes [file]",
		Short:   MsgCodesShort,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			r := lipgloss.NewRenderer(w)
			codes := highlight.ExtractCodes(highlight.Sanitize(source))
			if len(codes) == 0 {
				_, err = fmt.Fprintln(w, styles.RenderFor(r, "Muted", MsgNoCodes))
				return err
			}

			lines := make([]string, len(codes))
			for i, code := range codes {
				// Pad outside the style so escape codes don't count toward the width.
				lines[i] = styles.RenderFor(r, "Code", string(code)) +
					strings.Repeat(" ", 4-len(code)) +
					styles.RenderFor(r, "Meaning", code.Meaning())
			}
			_, err = fmt.Fprintln(w, strings.Join(lines, "\n"))
			return err
		},
	}
}

func inputName(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return "stdin"
	}
	return args[0]
}
