package config

import (
	"time"

	"github.com/alexisbeaulieu97/showcase/internal/catalog"
)

// Config holds the settings for a showcase session. Source is the URL or path
// of the product document; Timeout bounds its fetch, with zero meaning no
// bound. HumanLogs selects the console log format instead of JSON lines.
// MarkdownDescription makes the HTML page render the description as Markdown.
type Config struct {
	Source              string        `yaml:"source" validate:"required,source_location"`
	LogLevel            string        `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	LogFile             string        `yaml:"log_file,omitempty"`
	HumanLogs           bool          `yaml:"human_logs,omitempty"`
	Timeout             time.Duration `yaml:"timeout,omitempty" validate:"min=0"`
	MarkdownDescription bool          `yaml:"markdown_description,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source:    catalog.DefaultLocation,
		LogLevel:  "info",
		HumanLogs: true,
	}
}
