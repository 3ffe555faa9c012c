package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAPIKey is returned when the selected provider has no credential.
var ErrMissingAPIKey = errors.New("missing API key")

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Provider  string          `yaml:"provider"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Minutes   MinutesConfig   `yaml:"minutes"`
	FFmpeg    FFmpegConfig    `yaml:"ffmpeg"`
	Paths     PathsConfig     `yaml:"paths"`
	Logging   LoggingConfig   `yaml:"logging"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

type OpenAIConfig struct {
	BaseURL         string `yaml:"base_url"`
	APIKey          string `yaml:"api_key"`
	TranscribeModel string `yaml:"transcribe_model"`
	ChatModel       string `yaml:"chat_model"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type MinutesConfig struct {
	Language    string  `yaml:"language"`
	ChunkChars  int     `yaml:"chunk_chars"`
	Temperature float32 `yaml:"temperature"`
	Output      string  `yaml:"output"`
}

// FFmpegConfig controls the optional conversion of recordings to 16kHz mono
// MP3 before they are uploaded for transcription.
type FFmpegConfig struct {
	Enabled    bool   `yaml:"enabled"`
	BinaryPath string `yaml:"binary_path"`
	TempDir    string `yaml:"temp_dir"`
}

type PathsConfig struct {
	Inbox    string `yaml:"inbox"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type DashboardConfig struct {
	Output  string         `yaml:"output"`
	Modules []ModuleConfig `yaml:"modules"`
}

// ModuleConfig registers an extra module card on the dashboard.
type ModuleConfig struct {
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	Command       string `yaml:"command"`
	Documentation string `yaml:"documentation"`
}

func (c *Config) Validate() error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.Provider != ProviderOpenAI && c.Provider != ProviderGemini {
		return fmt.Errorf("provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.Provider)
	}

	if c.Minutes.ChunkChars < 0 {
		return fmt.Errorf("minutes.chunk_chars must not be negative")
	}
	if c.Minutes.Temperature < 0 || c.Minutes.Temperature > 2 {
		return fmt.Errorf("minutes.temperature must be between 0 and 2")
	}

	c.Logging.Level = strings.ToLower(c.Logging.Level)
	switch c.Logging.Level {
	case "":
		c.Logging.Level = "info"
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be text or json")
	}

	for i, m := range c.Dashboard.Modules {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("dashboard.modules[%d].name is required", i)
		}
		if strings.TrimSpace(m.Command) == "" {
			return fmt.Errorf("dashboard.modules[%d].command is required", i)
		}
	}

	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = "https://api.openai.com"
	}
	c.OpenAI.BaseURL = strings.TrimRight(c.OpenAI.BaseURL, "/")
	if c.OpenAI.TranscribeModel == "" {
		c.OpenAI.TranscribeModel = "whisper-1"
	}
	if c.OpenAI.ChatModel == "" {
		c.OpenAI.ChatModel = "gpt-4o-mini"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Minutes.Language == "" {
		c.Minutes.Language = "de"
	}
	if c.Minutes.ChunkChars == 0 {
		c.Minutes.ChunkChars = 7000
	}
	if c.Minutes.Temperature == 0 {
		c.Minutes.Temperature = 0.2
	}
	if c.Minutes.Output == "" {
		c.Minutes.Output = "Protokoll.docx"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/protokolle"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Dashboard.Output == "" {
		c.Dashboard.Output = "dashboard.html"
	}

	return nil
}

// APIKey returns the credential of the selected provider.
func (c *Config) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.Gemini.APIKey
	}
	return c.OpenAI.APIKey
}

// RequireAPIKey fails when the selected provider has no credential configured.
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.APIKey()) != "" {
		return nil
	}
	env := "OPENAI_API_KEY"
	if c.Provider == ProviderGemini {
		env = "GEMINI_API_KEY"
	}
	return fmt.Errorf("%w: create a .env file or set %s", ErrMissingAPIKey, env)
}
