package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ytget/tubegrab/internal/platform"
)

// Engine names
const (
	EngineYTDLP  = "ytdlp"
	EngineNative = "native"
)

// Config file lookup
const (
	ConfigName = "tubegrab"
	ConfigType = "yaml"
	EnvPrefix  = "TUBEGRAB"
	EnvFile    = ".env"
)

// Default values
const (
	DefaultTempDir          = "tmp"
	DefaultOutputDir        = "."
	DefaultIcon             = "youtube-downloader.png"
	DefaultVideoFormat      = "best"
	DefaultAudioFormat      = "bestaudio/best"
	DefaultAudioCodec       = "mp3"
	DefaultAudioQuality     = "192"
	DefaultOutputTemplate   = "%(title)s.%(ext)s"
	DefaultProgressInterval = 500 * time.Millisecond
	DefaultNativeQuality    = "best"
	DefaultNativeExt        = "mp4"
	DefaultLanguage         = "system"
	DefaultTheme            = "compact"
	DefaultWindowWidth      = 400
	DefaultWindowHeight     = 200
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "console"
)

// Config holds all application configuration. It is read once at startup and
// never written back.
type Config struct {
	Paths    PathsConfig    `mapstructure:"paths"`
	Download DownloadConfig `mapstructure:"download"`
	UI       UIConfig       `mapstructure:"ui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// PathsConfig holds filesystem locations. Relative values other than
// OutputDir are resolved against AppDir.
type PathsConfig struct {
	AppDir     string `mapstructure:"app_dir"`    // defaults to the executable's directory
	Transcoder string `mapstructure:"transcoder"` // bundled ffmpeg
	TempDir    string `mapstructure:"temp_dir"`
	OutputDir  string `mapstructure:"output_dir"` // relative to the working directory
	Icon       string `mapstructure:"icon"`
}

// DownloadConfig holds the options handed to the download engine
type DownloadConfig struct {
	Engine           string        `mapstructure:"engine"` // "ytdlp" or "native"
	VideoFormat      string        `mapstructure:"video_format"`
	AudioFormat      string        `mapstructure:"audio_format"`
	AudioCodec       string        `mapstructure:"audio_codec"`
	AudioQuality     string        `mapstructure:"audio_quality"`
	OutputTemplate   string        `mapstructure:"output_template"`
	ProgressInterval time.Duration `mapstructure:"progress_interval"`
	AutoInstall      bool          `mapstructure:"auto_install"` // fetch yt-dlp when missing
	KeepTemp         bool          `mapstructure:"keep_temp"`
	NativeQuality    string        `mapstructure:"native_quality"`
	NativeExt        string        `mapstructure:"native_ext"`
}

// UIConfig holds window configuration
type UIConfig struct {
	Language string `mapstructure:"language"`
	Theme    string `mapstructure:"theme"` // "compact" or "default"
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
	File   string `mapstructure:"file"`
}

// DefaultTranscoderPath returns the bundled ffmpeg location for this OS
func DefaultTranscoderPath() string {
	return filepath.Join("ffmpeg", "bin", platform.ExecutableName("ffmpeg"))
}

// setDefaults registers every key so environment overrides reach Unmarshal
func setDefaults(v *viper.Viper) {
	v.SetDefault("paths.app_dir", "")
	v.SetDefault("paths.transcoder", DefaultTranscoderPath())
	v.SetDefault("paths.temp_dir", DefaultTempDir)
	v.SetDefault("paths.output_dir", DefaultOutputDir)
	v.SetDefault("paths.icon", DefaultIcon)

	v.SetDefault("download.engine", EngineYTDLP)
	v.SetDefault("download.video_format", DefaultVideoFormat)
	v.SetDefault("download.audio_format", DefaultAudioFormat)
	v.SetDefault("download.audio_codec", DefaultAudioCodec)
	v.SetDefault("download.audio_quality", DefaultAudioQuality)
	v.SetDefault("download.output_template", DefaultOutputTemplate)
	v.SetDefault("download.progress_interval", DefaultProgressInterval)
	v.SetDefault("download.auto_install", false)
	v.SetDefault("download.keep_temp", false)
	v.SetDefault("download.native_quality", DefaultNativeQuality)
	v.SetDefault("download.native_ext", DefaultNativeExt)

	v.SetDefault("ui.language", DefaultLanguage)
	v.SetDefault("ui.theme", DefaultTheme)
	v.SetDefault("ui.width", DefaultWindowWidth)
	v.SetDefault("ui.height", DefaultWindowHeight)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("logging.file", "")
}

// defaultConfigPath returns the per-user config directory
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ConfigName)
}

// Load reads configuration from an optional .env file, the environment and an
// optional yaml file. An explicit path must exist; the default locations may not.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", EnvFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType(ConfigType)
		if dir := defaultConfigPath(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that cannot be repaired by a default
func (c *Config) Validate() error {
	switch c.Download.Engine {
	case EngineYTDLP, EngineNative:
	default:
		return fmt.Errorf("unknown download engine %q (expected %s or %s)", c.Download.Engine, EngineYTDLP, EngineNative)
	}

	if strings.TrimSpace(c.Download.OutputTemplate) == "" {
		return fmt.Errorf("download.output_template cannot be empty")
	}
	if strings.ContainsAny(c.Download.OutputTemplate, `/\`) {
		return fmt.Errorf("download.output_template must be a file name, use paths.output_dir for directories")
	}
	if strings.TrimSpace(c.Download.AudioCodec) == "" {
		return fmt.Errorf("download.audio_codec cannot be empty")
	}
	if c.Download.ProgressInterval <= 0 {
		c.Download.ProgressInterval = DefaultProgressInterval
	}

	if c.UI.Width <= 0 {
		c.UI.Width = DefaultWindowWidth
	}
	if c.UI.Height <= 0 {
		c.UI.Height = DefaultWindowHeight
	}

	return nil
}
