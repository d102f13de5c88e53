package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/domkit-dev/domkit/internal/config"
	dkerrors "github.com/domkit-dev/domkit/internal/errors"
	"github.com/domkit-dev/domkit/pkg/dom"
	"github.com/domkit-dev/domkit/pkg/frag"
	"github.com/domkit-dev/domkit/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		pretty bool
		out    string
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Parse a markup file and re-serialize it",
		Long: `Render parses the given HTML file into a node tree and writes it
back out through the domkit renderer, normalizing attribute order
and escaping. With --pretty the output is indented.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Find(".")
			if err != nil {
				return err
			}

			source, err := os.ReadFile(args[0])
			if err != nil {
				return dkerrors.Newf(dkerrors.CategoryCLI, "cannot read %s", args[0]).Wrap(err)
			}

			nodes, err := frag.Nodes(string(source))
			if err != nil {
				return err
			}

			renderer := render.New(render.Config{
				Pretty: pretty || cfg.Render.Pretty,
				Indent: cfg.Render.Indent,
			})

			dest := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return dkerrors.Newf(dkerrors.CategoryCLI, "cannot create %s", out).Wrap(err)
				}
				defer f.Close()
				dest = f
			}

			if err := renderer.RenderToWriter(dest, dom.NewFragment(nodes...)); err != nil {
				return dkerrors.FromError(err, dkerrors.CodeRenderFailed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the output")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to file instead of stdout")

	return cmd
}
