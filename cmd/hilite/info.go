package hilite

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/hilite/pkg/config"
	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/legend"
	"github.com/arthur-debert/hilite/pkg/palette"
	"github.com/arthur-debert/hilite/pkg/types"
	"github.com/arthur-debert/hilite/pkg/ui"
	"github.com/arthur-debert/hilite/pkg/ui/json"
	"github.com/arthur-debert/hilite/pkg/ui/styles"
)

func newPalettesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "palettes [name]",
		Short:   MsgPalettesShort,
		GroupID: "info",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(nil)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			registry := cfg.Registry()

			if len(args) == 0 {
				return writeTable(w, paletteListTable(registry, cfg.Render.Palette))
			}

			p, ok := registry.Lookup(args[0])
			if !ok {
				return errors.Newf(errors.ErrPaletteNotFound, "unknown palette %q", args[0]).
					WithDetail("available", registry.Names())
			}
			r := lipgloss.NewRenderer(w)
			if _, err := fmt.Fprintln(w, styles.RenderFor(r, "Header", p.Name)); err != nil {
				return err
			}
			return writeTable(w, paletteColorTable(p, r))
		},
	}
}

// paletteListTable lists every palette, marking the configured one
func paletteListTable(registry *palette.Registry, current string) pterm.TableData {
	data := pterm.TableData{{"Palette", "Background", "Underline", ""}}
	for _, name := range registry.Names() {
		p := registry.Get(name)
		marker := ""
		if name == current {
			marker = "*"
		}
		data = append(data, []string{
			name,
			fmt.Sprintf("%d", len(p.Background)),
			fmt.Sprintf("%d", len(p.Underline)),
			marker,
		})
	}
	return data
}

// paletteColorTable shows each code's colors with a swatch
func paletteColorTable(p palette.Palette, r *lipgloss.Renderer) pterm.TableData {
	data := pterm.TableData{{"Code", "Meaning", "Background", "", "Underline", ""}}
	for _, code := range types.AllCodes {
		colors := p.Lookup(code)
		data = append(data, []string{
			string(code),
			code.Meaning(),
			colors.Background,
			swatch(r, colors.Background),
			colors.Underline,
			swatch(r, colors.Underline),
		})
	}
	return data
}

func swatch(r *lipgloss.Renderer, hex string) string {
	return r.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}

func writeTable(w io.Writer, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func newLegendCmd(a *app) *cobra.Command {
	var (
		raw         bool
		paletteName string
		mode        string
		format      string
	)

	cmd := &cobra.Command{
		Use:     "legend",
		Short:   MsgLegendShort,
		GroupID: "info",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("palette") {
				overrides["render.palette"] = paletteName
			}
			if cmd.Flags().Changed("mode") {
				overrides["render.mode"] = mode
			}
			if cmd.Flags().Changed("format") {
				overrides["output.format"] = format
			}
			cfg, err := a.loadConfig(overrides)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			p := cfg.Registry().Get(cfg.Render.Palette)

			switch cfg.Output.Format {
			case ui.FormatJSON:
				renderer, err := json.New(w)
				if err != nil {
					return err
				}
				return renderer.RenderResult(legend.Entries(p))
			case ui.FormatHTML:
				_, err = fmt.Fprintln(w, legend.Samples(p, cfg.Render.Mode))
				return err
			}

			var renderer legend.Renderer = legend.NewGlamourRenderer()
			if raw || cfg.Output.Format == ui.FormatText {
				renderer = &legend.PlainRenderer{}
			}
			_, err = fmt.Fprint(w, renderer.Render(legend.Markdown(p)))
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)
	cmd.Flags().StringVarP(&paletteName, "palette", "p", "", MsgFlagPalette)
	cmd.Flags().StringVarP(&mode, "mode", "m", "", MsgFlagMode)
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "info",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if defaults {
				_, err := fmt.Fprint(w, config.DefaultContent())
				return err
			}

			cfg, err := a.loadConfig(nil)
			if err != nil {
				return err
			}
			if sources := cfg.Sources(); len(sources) > 0 {
				if _, err := fmt.Fprintf(w, MsgConfigSources, strings.Join(sources, ", ")); err != nil {
					return err
				}
			}
			return cfg.Dump(w)
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}
