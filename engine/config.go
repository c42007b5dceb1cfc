package engine

import (
	"flag"
	"io"
	"time"

	"github.com/lixenwraith/glyph-rain/constants"
)

// Config holds the run options resolved from the command line.
type Config struct {
	Speed   float64 // Global multiplier applied to every stream's speed
	Density float64 // Fraction of columns raining, clamped to [0, 1]
	Bold    bool    // Render the head glyph in bold
	NoFade  bool    // Hard-clear between frames instead of the soft fade
	FPS     int     // Target frame rate, clamped to [MinFPS, MaxFPS]
}

// ParseConfig resolves flags from args (without the program name), writing
// usage to out. It returns flag.ErrHelp when usage was requested; any other
// error means invalid input and usage has already been printed.
func ParseConfig(args []string, out io.Writer) (Config, error) {
	cfg := Config{
		Speed:   constants.DefaultSpeed,
		Density: constants.DefaultDensity,
		FPS:     constants.DefaultFPS,
	}

	fs := flag.NewFlagSet("glyph-rain", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Float64Var(&cfg.Speed, "speed", cfg.Speed, "global speed multiplier for every stream")
	fs.Float64Var(&cfg.Density, "density", cfg.Density, "fraction of columns raining (0..1)")
	fs.BoolVar(&cfg.Bold, "bold", cfg.Bold, "render the head glyph in bold")
	fs.BoolVar(&cfg.NoFade, "no-fade", cfg.NoFade, "hard-clear between frames instead of soft fade")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "target frame rate (10..240)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Density = clampFloat(cfg.Density, 0, 1)
	cfg.FPS = clampInt(cfg.FPS, constants.MinFPS, constants.MaxFPS)
	return cfg, nil
}

// FrameInterval is the target duration of one frame.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
