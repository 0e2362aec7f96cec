// cmd/trigproof/info.go
package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go-trig-proof/internal/app"
	"go-trig-proof/internal/scene"
)

func newInfoCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "List every play and wait with its timing, without rendering",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.settings()
			if err != nil {
				return err
			}
			total, sections, err := scene.Duration(app.Construct, s.FPS)
			if err != nil {
				return err
			}
			return printSections(cmd.OutOrStdout(), sections, total, s.FPS)
		},
	}
}

func printSections(out io.Writer, sections []scene.Section, total float64, fps int) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSTART\tLENGTH\tFRAMES\tWHAT")
	frames := 0
	for _, sec := range sections {
		what := "wait"
		if !sec.Wait {
			what = strings.Join(sec.Names, ", ")
		}
		fmt.Fprintf(w, "%d\t%6.2fs\t%5.2fs\t%d\t%s\n", sec.Index, sec.Start, sec.Duration, sec.Frames, what)
		frames += sec.Frames
	}
	fmt.Fprintf(w, "\ttotal\t%.2fs\t%d\t@ %d fps\n", total, frames, fps)
	return w.Flush()
}
