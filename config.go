package universe

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Greeting GreetingConfig `toml:"greeting"`
	Letter   LetterConfig   `toml:"letter"`
	Universe UniverseConfig `toml:"universe"`
	Log      LogConfig      `toml:"log"`
}

type GreetingConfig struct {
	Title    string `toml:"title"`
	Hint     string `toml:"hint"`
	Prompt   string `toml:"prompt"`
	Name     string `toml:"name"`
	ImageRef string `toml:"image_ref"`
}

type LetterConfig struct {
	Title          string   `toml:"title"`
	Paragraphs     []string `toml:"paragraphs"`
	Signature      string   `toml:"signature"`
	RevealDelayMs  int      `toml:"reveal_delay_ms"`
	FlapDurationMs int      `toml:"flap_duration_ms"`
}

func (c LetterConfig) RevealDelay() time.Duration {
	return time.Duration(c.RevealDelayMs) * time.Millisecond
}

func (c LetterConfig) FlapDuration() time.Duration {
	return time.Duration(c.FlapDurationMs) * time.Millisecond
}

type UniverseConfig struct {
	TitlePrefix string       `toml:"title_prefix"`
	Subtitle    string       `toml:"subtitle"`
	Background  string       `toml:"background"`
	FogColor    string       `toml:"fog_color"`
	FogNear     float32      `toml:"fog_near"`
	FogFar      float32      `toml:"fog_far"`
	Planet      PlanetConfig `toml:"planet"`
	Ring        RingConfig   `toml:"ring"`
	Belt        BeltConfig   `toml:"belt"`
	Stars       StarsConfig  `toml:"stars"`
	Camera      CameraConfig `toml:"camera"`
}

type PlanetConfig struct {
	Radius          float32   `toml:"radius"`
	ShellRadius     float32   `toml:"shell_radius"`
	HaloRadius      float32   `toml:"halo_radius"`
	HaloTube        float32   `toml:"halo_tube"`
	GradientStops   []float32 `toml:"gradient_stops"`
	GradientColors  []string  `toml:"gradient_colors"`
	FresnelColor    string    `toml:"fresnel_color"`
	FresnelPower    float32   `toml:"fresnel_power"`
	AngularVelocity float32   `toml:"angular_velocity"`
}

type RingConfig struct {
	Count           int     `toml:"count"`
	Radius          float32 `toml:"radius"`
	BobAmplitude    float32 `toml:"bob_amplitude"`
	BobCycles       int     `toml:"bob_cycles"`
	Width           float32 `toml:"width"`
	AngularVelocity float32 `toml:"angular_velocity"`
}

func (c RingConfig) Params() RingParams {
	return RingParams{Count: c.Count, Radius: c.Radius, BobAmplitude: c.BobAmplitude, BobCycles: c.BobCycles}
}

type BeltConfig struct {
	Count           int        `toml:"count"`
	Radius          float32    `toml:"radius"`
	VerticalSpread  float32    `toml:"vertical_spread"`
	Width           float32    `toml:"width"`
	AngularVelocity float32    `toml:"angular_velocity"`
	Offset          [3]float32 `toml:"offset"`
}

func (c BeltConfig) Params() BeltParams {
	return BeltParams{Count: c.Count, Radius: c.Radius, VerticalSpread: c.VerticalSpread}
}

type StarsConfig struct {
	Count  int     `toml:"count"`
	Radius float32 `toml:"radius"`
	Depth  float32 `toml:"depth"`
}

type CameraConfig struct {
	Position        [3]float32 `toml:"position"`
	Fov             float32    `toml:"fov"`
	MinDistance     float32    `toml:"min_distance"`
	MaxDistance     float32    `toml:"max_distance"`
	AutoRotate      bool       `toml:"auto_rotate"`
	AutoRotateSpeed float32    `toml:"auto_rotate_speed"`
}

type LogConfig struct {
	Prefix string `toml:"prefix"`
	Debug  bool   `toml:"debug"`
}

func DefaultConfig() *Config {
	return &Config{
		Greeting: GreetingConfig{
			Title:    "Chúc mừng 20/11",
			Hint:     "Nhấn vào bó hoa để mở lá thư dành riêng cho cô giáo.",
			Prompt:   "Nhấn vào đây nhé",
			Name:     "Cô giáo của tụi em",
			ImageRef: "https://images.pexels.com/photos/4260323/pexels-photo-4260323.jpeg",
		},
		Letter: LetterConfig{
			Title: "Gửi cô nhân ngày 20/11",
			Paragraphs: []string{
				"Nhân ngày Nhà giáo Việt Nam, tụi em cảm ơn cô vì những giờ học đầy tâm huyết, vì sự kiên nhẫn, dịu dàng và cả những lần cô nghiêm khắc để tụi em trưởng thành hơn.",
				"Mong cô luôn khỏe mạnh, bình an, lúc nào cũng giữ được nụ cười thật tươi và có nhiều niềm vui nhỏ xinh như chính những bài giảng của cô mỗi ngày.",
			},
			Signature:      "– Lời chúc nhỏ bé từ “học trò nhỏ” của cô –",
			RevealDelayMs:  150,
			FlapDurationMs: 600,
		},
		Universe: UniverseConfig{
			TitlePrefix: "Vũ trụ chỉ có",
			Subtitle:    "Kéo – xoay – phóng to thu nhỏ để khám phá vũ trụ nơi cô là tâm điểm.",
			Background:  "#050516",
			FogColor:    "#0b0e28",
			FogNear:     10,
			FogFar:      35,
			Planet: PlanetConfig{
				Radius:          1.8,
				ShellRadius:     1.82,
				HaloRadius:      2.4,
				HaloTube:        0.04,
				GradientStops:   []float32{0, 0.3, 1},
				GradientColors:  []string{"#ffe0f7", "#d4a8ff", "#8f6aff"},
				FresnelColor:    "#ffb6ff",
				FresnelPower:    2,
				AngularVelocity: PlanetAngularVelocity,
			},
			Ring: RingConfig{
				Count:           26,
				Radius:          33,
				BobAmplitude:    DefaultBobAmplitude,
				BobCycles:       DefaultBobCycles,
				Width:           0.75,
				AngularVelocity: RingAngularVelocity,
			},
			Belt: BeltConfig{
				Count:           80,
				Radius:          6,
				VerticalSpread:  1.5,
				Width:           0.45,
				AngularVelocity: BeltAngularVelocity,
				Offset:          [3]float32{0, 0.6, -1},
			},
			Stars: StarsConfig{
				Count:  6000,
				Radius: 200,
				Depth:  80,
			},
			Camera: CameraConfig{
				Position:        [3]float32{0, 2.5, 10},
				Fov:             60,
				MinDistance:     4,
				MaxDistance:     10,
				AutoRotate:      true,
				AutoRotateSpeed: 0.5,
			},
		},
		Log: LogConfig{
			Prefix: "universe",
		},
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Keys missing from the
// file keep their defaults; unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot be rendered at all. Empty or
// degenerate layouts are allowed; they simply draw nothing.
func (c *Config) Validate() error {
	var errs []error
	if c.Letter.RevealDelayMs < 0 {
		errs = append(errs, fmt.Errorf("letter.reveal_delay_ms must not be negative, got %d", c.Letter.RevealDelayMs))
	}
	if c.Letter.FlapDurationMs < 0 {
		errs = append(errs, fmt.Errorf("letter.flap_duration_ms must not be negative, got %d", c.Letter.FlapDurationMs))
	}

	u := c.Universe
	colors := map[string]string{
		"universe.background":           u.Background,
		"universe.fog_color":            u.FogColor,
		"universe.planet.fresnel_color": u.Planet.FresnelColor,
	}
	for i, hex := range u.Planet.GradientColors {
		colors[fmt.Sprintf("universe.planet.gradient_colors[%d]", i)] = hex
	}
	for key, hex := range colors {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not a hex colour", key, hex))
		}
	}
	if len(u.Planet.GradientStops) != len(u.Planet.GradientColors) {
		errs = append(errs, fmt.Errorf("universe.planet: %d gradient stops for %d colours",
			len(u.Planet.GradientStops), len(u.Planet.GradientColors)))
	}
	if u.FogNear > u.FogFar {
		errs = append(errs, fmt.Errorf("universe.fog_near %v is beyond fog_far %v", u.FogNear, u.FogFar))
	}
	return errors.Join(errs...)
}

func hexColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}
