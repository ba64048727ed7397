package util

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"vincit.fi/scene-widgets/common/logger"
)

const (
	ModeRender   = "render"
	ModeTerminal = "terminal"
	ModeGiu      = "giu"
)

var ErrInvalidParam = errors.New("invalid parameter")

// Params holds the command line configuration. Every flag can also be
// given as a SCENE_<FLAG> environment variable, which may come from a .env
// file in the working directory. Flags win over the environment.
type Params struct {
	mode      string
	image     string
	scaling   string
	align     string
	width     int
	height    int
	ninePatch [4]int
	hasPatch  bool
	out       string
	resampler string
	logLevel  string
}

func NewEmptyParams() *Params {
	return &Params{
		mode:      ModeRender,
		scaling:   "fit",
		align:     "center",
		width:     640,
		height:    480,
		out:       "out.png",
		resampler: "linear",
		logLevel:  "INFO",
	}
}

// LoadEnv reads .env from the working directory. A missing file is not an
// error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn.Print("Could not load .env: ", err)
	}
}

func ParseParams() (*Params, error) {
	LoadEnv()
	return ParseParamsFrom(os.Args[1:], os.Getenv)
}

func ParseParamsFrom(args []string, getenv func(string) string) (*Params, error) {
	defaults := NewEmptyParams()
	env := func(name string, def string) string {
		if value := getenv("SCENE_" + strings.ToUpper(name)); value != "" {
			return value
		}
		return def
	}
	envInt := func(name string, def int) (int, error) {
		value := env(name, "")
		if value == "" {
			return def, nil
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("%w: SCENE_%s='%s'", ErrInvalidParam, strings.ToUpper(name), value)
		}
		return parsed, nil
	}

	defaultWidth, err := envInt("width", defaults.width)
	if err != nil {
		return nil, err
	}
	defaultHeight, err := envInt("height", defaults.height)
	if err != nil {
		return nil, err
	}

	flags := flag.NewFlagSet("scene-widgets", flag.ContinueOnError)
	mode := flags.String("mode", env("mode", defaults.mode), "Mode: render, terminal or giu")
	image := flags.String("image", env("image", ""), "Image file to show")
	scaling := flags.String("scaling", env("scaling", defaults.scaling), "Scaling: fit, fill, fillx, filly, stretch, stretchx, stretchy or none")
	align := flags.String("align", env("align", defaults.align), "Align, e.g. center, top-left or bottom|right")
	width := flags.Int("width", defaultWidth, "Stage width when rendering to a file or the window width")
	height := flags.Int("height", defaultHeight, "Stage height when rendering to a file or the window height")
	ninePatch := flags.String("ninepatch", env("ninepatch", ""), "Draw the image as a nine patch with <left>,<right>,<top>,<bottom> split sizes")
	out := flags.String("out", env("out", defaults.out), "Output file in render mode")
	resampler := flags.String("resampler", env("resampler", defaults.resampler), "Resampler: linear, lanczos, nearest, bicubic or mitchell")
	logLevel := flags.String("logLevel", env("logLevel", defaults.logLevel), "Log level: ERROR, WARN, INFO, DEBUG, Trace")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	params := &Params{
		mode:      *mode,
		image:     *image,
		scaling:   *scaling,
		align:     *align,
		width:     *width,
		height:    *height,
		out:       *out,
		resampler: *resampler,
		logLevel:  *logLevel,
	}
	if params.image == "" {
		params.image = flags.Arg(0)
	}

	switch params.mode {
	case ModeRender, ModeTerminal, ModeGiu:
	default:
		return nil, fmt.Errorf("%w: mode '%s'", ErrInvalidParam, params.mode)
	}
	if params.width <= 0 || params.height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidParam, params.width, params.height)
	}
	if *ninePatch != "" {
		if params.ninePatch, err = parseSplits(*ninePatch); err != nil {
			return nil, err
		}
		params.hasPatch = true
	}
	return params, nil
}

func parseSplits(value string) ([4]int, error) {
	var splits [4]int
	parts := strings.Split(value, ",")
	if len(parts) != len(splits) {
		return splits, fmt.Errorf("%w: ninepatch '%s' needs four sizes", ErrInvalidParam, value)
	}
	for i, part := range parts {
		split, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || split < 0 {
			return splits, fmt.Errorf("%w: ninepatch size '%s'", ErrInvalidParam, part)
		}
		splits[i] = split
	}
	return splits, nil
}

func (s *Params) Mode() string {
	return s.mode
}

func (s *Params) Image() string {
	return s.image
}

func (s *Params) Scaling() string {
	return s.scaling
}

func (s *Params) Align() string {
	return s.align
}

func (s *Params) Width() int {
	return s.width
}

func (s *Params) Height() int {
	return s.height
}

// NinePatch returns the left, right, top and bottom split sizes and
// whether they were given.
func (s *Params) NinePatch() (int, int, int, int, bool) {
	return s.ninePatch[0], s.ninePatch[1], s.ninePatch[2], s.ninePatch[3], s.hasPatch
}

func (s *Params) Out() string {
	return s.out
}

func (s *Params) Resampler() string {
	return s.resampler
}

func (s *Params) LogLevel() string {
	return s.logLevel
}
