// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Quality is a named resolution and frame rate.
type Quality struct {
	Width, Height, FPS int
}

// Qualities are the presets selectable with --quality.
var Qualities = map[string]Quality{
	"low":    {854, 480, 15},
	"medium": {DefaultWidth, DefaultHeight, DefaultFPS},
	"high":   {1920, 1080, 60},
}

// DefaultQuality is used when neither flag nor file picks one.
const DefaultQuality = "medium"

// Settings is everything a render needs at runtime.
type Settings struct {
	Quality     string `mapstructure:"quality"`
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	FPS         int    `mapstructure:"fps"`
	Supersample int    `mapstructure:"supersample"`
	Format      string `mapstructure:"format"`
	OutputDir   string `mapstructure:"output"`
	Prefix      string `mapstructure:"prefix"`
	Backend     string `mapstructure:"backend"`
	FFmpeg      string `mapstructure:"ffmpeg"`
}

// Defaults returns the settings of the default quality preset.
func Defaults() Settings {
	q := Qualities[DefaultQuality]
	return Settings{
		Quality:     DefaultQuality,
		Width:       q.Width,
		Height:      q.Height,
		FPS:         q.FPS,
		Supersample: DefaultSupersample,
		Format:      DefaultFormat,
		OutputDir:   DefaultOutputDir,
		Prefix:      DefaultPrefix,
		Backend:     "ebiten",
		FFmpeg:      "ffmpeg",
	}
}

// NewViper returns a viper instance with defaults and environment lookup
// set up. Width, height and fps have no default so that an unset value
// falls back to the quality preset.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("quality", d.Quality)
	v.SetDefault("supersample", d.Supersample)
	v.SetDefault("format", d.Format)
	v.SetDefault("output", d.OutputDir)
	v.SetDefault("prefix", d.Prefix)
	v.SetDefault("backend", d.Backend)
	v.SetDefault("ffmpeg", d.FFmpeg)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only answers Get for keys viper already knows about
	for _, k := range []string{"width", "height", "fps"} {
		_ = v.BindEnv(k)
	}
	return v
}

// Load reads an optional .env file, an optional config file and the
// environment into Settings. configFile may be empty, in which case
// ./trigproof.yaml is used if present.
func Load(v *viper.Viper, envFile, configFile string) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(AppName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.ApplyQuality(); err != nil {
		return Settings{}, err
	}
	return s, s.Validate()
}

// ApplyQuality fills zero width, height and fps from the quality preset.
func (s *Settings) ApplyQuality() error {
	q, ok := Qualities[strings.ToLower(s.Quality)]
	if !ok {
		return fmt.Errorf("%w: unknown quality %q", ErrInvalidSettings, s.Quality)
	}
	if s.Width == 0 {
		s.Width = q.Width
	}
	if s.Height == 0 {
		s.Height = q.Height
	}
	if s.FPS == 0 {
		s.FPS = q.FPS
	}
	return nil
}

// Validate checks ranges and the output format.
func (s Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidSettings, s.Width, s.Height)
	case s.FPS <= 0 || s.FPS > MaxFPS:
		return fmt.Errorf("%w: fps %d out of range 1..%d", ErrInvalidSettings, s.FPS, MaxFPS)
	case s.Supersample < 1 || s.Supersample > MaxSupersample:
		return fmt.Errorf("%w: supersample %d out of range 1..%d", ErrInvalidSettings, s.Supersample, MaxSupersample)
	}
	switch s.Format {
	case FormatPNG, FormatGIF, FormatMP4, FormatNone:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidSettings, s.Format)
	}
	switch s.Backend {
	case "ebiten", "raylib":
	default:
		return fmt.Errorf("%w: backend %q", ErrInvalidSettings, s.Backend)
	}
	return nil
}

// String is used in log lines.
func (s Settings) String() string {
	return fmt.Sprintf("%dx%d@%d %s x%d -> %s", s.Width, s.Height, s.FPS, s.Format, s.Supersample, s.OutputDir)
}
