// internal/config/config.go
package config

import "image/color"

const (
	AppName   = "trigproof"
	EnvPrefix = "TRIGPROOF"

	FrameHeight        = 8.0 // высота кадра в единицах сцены
	DefaultFPS         = 30
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultSupersample = 2
	MaxSupersample     = 4
	MaxFPS             = 240

	DefaultOutputDir = "media"
	DefaultPrefix    = "frame"
	DefaultFormat    = FormatPNG

	PreviewBuffer   = 8    // кадров в канале между сценой и окном
	MaxDeltaTime    = 0.06 // ограничение шага при лагах
	ProgressBarH    = 6.0  // высота полосы прогресса в пикселях
	TimecodeOffsetY = 14
)

// Форматы вывода кадров.
const (
	FormatPNG  = "png"
	FormatGIF  = "gif"
	FormatMP4  = "mp4"
	FormatNone = "none"
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	OverlayColor    = color.NRGBA{240, 240, 240, 200}
	ProgressColor   = color.NRGBA{0xC1, 0xC6, 0xFC, 220} // тон окружности
	TrackColor      = color.NRGBA{70, 70, 90, 160}
)
