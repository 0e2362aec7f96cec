// cmd/trigproof/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go-trig-proof/internal/config"
)

// cli - общее для всех подкоманд: viper и пути к файлам настроек.
type cli struct {
	v          *viper.Viper
	configFile string
	envFile    string
}

func (c *cli) settings() (config.Settings, error) {
	return config.Load(c.v, c.envFile, c.configFile)
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.NewViper()}
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Render the unit-circle proof of sin²θ + cos²θ = 1",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := root.PersistentFlags()
	f.StringVar(&c.configFile, "config", "", "config file (default ./trigproof.yaml if present)")
	f.StringVar(&c.envFile, "env", ".env", "dotenv file with TRIGPROOF_* variables")
	f.String("quality", config.DefaultQuality, "quality preset: low, medium or high")
	f.Int("width", 0, "frame width in pixels (default from quality)")
	f.Int("height", 0, "frame height in pixels (default from quality)")
	f.Int("fps", 0, "frames per second (default from quality)")
	f.Int("supersample", config.DefaultSupersample, "render at N times the size and scale down")
	f.String("format", config.DefaultFormat, "output format: png, gif, mp4 or none")
	f.String("output", config.DefaultOutputDir, "output directory")
	f.String("prefix", config.DefaultPrefix, "output file name prefix")
	f.String("backend", "ebiten", "preview window: ebiten or raylib")
	for _, name := range []string{"quality", "width", "height", "fps", "supersample", "format", "output", "prefix", "backend"} {
		if err := c.v.BindPFlag(name, f.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(newRenderCmd(c), newPreviewCmd(c), newInfoCmd(c))
	return root
}

func main() {
	log.SetFlags(log.Ltime)
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
