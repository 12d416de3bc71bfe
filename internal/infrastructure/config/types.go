package config

// GameConfig is the root of game.yaml.
type GameConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Timing    TimingConfig    `yaml:"timing"`
	Player    PlayerConfig    `yaml:"player"`
	Items     ItemsConfig     `yaml:"items"`
	Asteroids AsteroidsConfig `yaml:"asteroids"`
	Level     LevelConfig     `yaml:"level"`
	Fade      FadeConfig      `yaml:"fade"`
	Shake     ShakeConfig     `yaml:"shake"`
	Trail     TrailConfig     `yaml:"trail"`
	Crawl     CrawlConfig     `yaml:"crawl"`
	Keys      KeysConfig      `yaml:"keys"`
	Assets    AssetsConfig    `yaml:"assets"`
	Debug     DebugConfig     `yaml:"debug"`
}

type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	TPS          int    `yaml:"tps"`
}

// TimingConfig configures the frame clock.
type TimingConfig struct {
	// Frames whose wall-clock delta exceeds StallThreshold (seconds) run with dt = 0.
	StallThreshold float64 `yaml:"stallThreshold"`
}

type PlayerConfig struct {
	Size               float64     `yaml:"size"`
	HorizontalSpeed    float64     `yaml:"horizontalSpeed"`
	VerticalSpeed      float64     `yaml:"verticalSpeed"`
	AccelerationFactor float64     `yaml:"accelerationFactor"`
	MaxFuel            float64     `yaml:"maxFuel"`
	MaxShield          float64     `yaml:"maxShield"`
	PixelSize          float64     `yaml:"pixelSize"`  // |vx| below this snaps to 0 when idle
	StallSpeed         float64     `yaml:"stallSpeed"` // vy below this with no fuel loses the run
	Margin             float64     `yaml:"margin"`     // horizontal playfield margin
	ScreenAnchor       float64     `yaml:"screenAnchor"`
	Hover              HoverConfig `yaml:"hover"`
	Turn               TurnConfig  `yaml:"turn"`
}

// HoverConfig is the purely visual bob of the player sprite.
type HoverConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	Speed     float64 `yaml:"speed"`
}

// TurnConfig drives the sprite turn animation.
type TurnConfig struct {
	Runtime    float64 `yaml:"runtime"`
	Steps      int     `yaml:"steps"`
	LeftFrame  int     `yaml:"leftFrame"`
	RightFrame int     `yaml:"rightFrame"`
}

type ItemsConfig struct {
	Fuel   ItemConfig `yaml:"fuel"`
	Shield ItemConfig `yaml:"shield"`
}

type ItemConfig struct {
	Amount float64 `yaml:"amount"`
	Size   float64 `yaml:"size"`
	// Idle animation over the sheet's frames
	Frames  int     `yaml:"frames"`
	Runtime float64 `yaml:"runtime"`
}

type AsteroidsConfig struct {
	// Sizes is indexed by asteroid size class; damage is index+1.
	Sizes             []float64 `yaml:"sizes"`
	Amplitude         float64   `yaml:"amplitude"`
	Speed             float64   `yaml:"speed"`
	OscillationChance float64   `yaml:"oscillationChance"`
}

type LevelConfig struct {
	End            float64 `yaml:"end"`
	StartClearance float64 `yaml:"startClearance"`
	Fuels          int     `yaml:"fuels"`
	Shields        int     `yaml:"shields"`
	Asteroids      int     `yaml:"asteroids"`
}

type FadeConfig struct {
	Duration float64 `yaml:"duration"`
	Color    int     `yaml:"color"`
}

type ShakeConfig struct {
	Amplitude    float64 `yaml:"amplitude"`
	Decay        float64 `yaml:"decay"`
	HitIntensity float64 `yaml:"hitIntensity"`
}

type TrailConfig struct {
	MaxLength           int     `yaml:"maxLength"`
	SpawnPeriod         float64 `yaml:"spawnPeriod"`
	FallSpeed           float64 `yaml:"fallSpeed"`
	MaxHorizontalOffset float64 `yaml:"maxHorizontalOffset"`
	ParticleSize        float64 `yaml:"particleSize"`
	Color               int     `yaml:"color"`
}

type CrawlConfig struct {
	Enabled     bool     `yaml:"enabled"`
	Speed       float64  `yaml:"speed"`
	LineSpacing float64  `yaml:"lineSpacing"`
	Lines       []string `yaml:"lines"`
}

// KeysConfig lists the key names bound to each logical button.
type KeysConfig struct {
	Up               []string `yaml:"up"`
	Left             []string `yaml:"left"`
	Down             []string `yaml:"down"`
	Right            []string `yaml:"right"`
	ConfirmPrimary   []string `yaml:"confirmPrimary"`
	ConfirmSecondary []string `yaml:"confirmSecondary"`
}

type AssetsConfig struct {
	Sprites map[string]SpriteSheetConfig `yaml:"sprites"`
	Sounds  map[string]string            `yaml:"sounds"`
	Music   map[string]string            `yaml:"music"`
	Font    FontConfig                   `yaml:"font"`
}

type SpriteSheetConfig struct {
	Path  string  `yaml:"path"`
	Rows  int     `yaml:"rows"`
	Cols  int     `yaml:"cols"`
	Scale float64 `yaml:"scale"`
	// Drawn in place of a sheet that failed to load. -1 draws nothing.
	FallbackColor int     `yaml:"fallbackColor"`
	FallbackSize  float64 `yaml:"fallbackSize"`
}

type FontConfig struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

type DebugConfig struct {
	ShowFPS   bool            `yaml:"showFPS"`
	Hitboxes  bool            `yaml:"hitboxes"`
	PixelGrid PixelGridConfig `yaml:"pixelGrid"`
}

type PixelGridConfig struct {
	Display bool `yaml:"display"`
	Size    int  `yaml:"size"`
	Color   int  `yaml:"color"`
}
