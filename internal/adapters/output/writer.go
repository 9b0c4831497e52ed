package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"duogito/internal/domain/entity"
	"duogito/internal/ports"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

// Options control how a Writer renders
type Options struct {
	Format   entity.OutputFormat
	Language entity.Language
	Color    bool
}

// OptionsFromConfig derives writer options from the display settings
func OptionsFromConfig(cfg *entity.Config) Options {
	opts := Options{
		Format:   entity.OutputFormatText,
		Language: entity.LanguageJapanese,
		Color:    true,
	}
	if cfg != nil && cfg.Display != nil {
		opts.Format = cfg.Display.Format
		opts.Language = cfg.Display.Language
		opts.Color = cfg.Display.ColorOutput
	}
	return opts
}

// Writer implements the Printer interface
type Writer struct {
	out  io.Writer
	opts Options
}

// NewWriter creates a new output writer
func NewWriter(out io.Writer, opts Options) *Writer {
	if !opts.Format.IsValid() {
		opts.Format = entity.OutputFormatText
	}
	if !opts.Language.IsValid() {
		opts.Language = entity.LanguageJapanese
	}
	return &Writer{out: out, opts: opts}
}

// Welcome prints the banner shown when no command is given
func (w *Writer) Welcome() error {
	m := w.messages()
	lines := []string{
		w.style(infoStyle, "🎯 "+m.welcome),
		m.tagline,
		"",
		w.style(warnStyle, m.usage),
		"  duogito check <username>  " + m.usageCheck,
		"  duogito config            " + m.usageConfig,
		"  duogito --help            " + m.usageHelp,
		"  duogito --version         " + m.usageVersion,
		"",
		w.style(successStyle, m.example),
		"  duogito check octocat",
	}
	return w.println(strings.Join(lines, "\n"))
}

// Check prints the result of the check command
func (w *Writer) Check(result ports.CheckResult) error {
	if w.opts.Format == entity.OutputFormatJSON {
		return w.writeJSON(result)
	}

	m := w.messages()
	lines := []string{
		w.style(infoStyle, fmt.Sprintf("🔍 %s: %s", m.checking, result.Username)),
		w.style(warnStyle, fmt.Sprintf("📊 %s: %s", m.outputFormat, result.Format)),
		w.style(mutedStyle, "🚧 "+m.notImplemented),
	}
	return w.println(strings.Join(lines, "\n"))
}

// Config prints a configuration. The token is masked.
func (w *Writer) Config(cfg *entity.Config, path string) error {
	masked := cfg.Clone()
	if masked == nil {
		masked = &entity.Config{}
	}
	if masked.GitHub != nil && masked.GitHub.Token != "" {
		masked.GitHub.Token = MaskToken(masked.GitHub.Token)
	}

	if w.opts.Format == entity.OutputFormatJSON {
		return w.writeJSON(masked)
	}

	m := w.messages()
	var b strings.Builder
	b.WriteString(w.style(titleStyle, "⚙️  "+m.configTitle))
	b.WriteString("\n")
	b.WriteString(w.style(mutedStyle, fmt.Sprintf("%s: %s", m.configFile, path)))
	b.WriteString("\n")

	for _, entry := range Entries(masked) {
		value := entry.Value
		if value == "" {
			value = w.style(mutedStyle, m.unset)
		}
		fmt.Fprintf(&b, "  %-20s %s\n", entry.Key, value)
	}

	return w.print(b.String())
}

// Value prints a single configuration value
func (w *Writer) Value(key string, value any) error {
	if w.opts.Format == entity.OutputFormatJSON {
		return w.writeJSON(map[string]any{key: value})
	}
	return w.println(fmt.Sprint(value))
}

// Updated confirms that key was saved
func (w *Writer) Updated(key string) error {
	return w.Success(fmt.Sprintf(w.messages().updated, key))
}

// ResetDone confirms that the configuration was reset
func (w *Writer) ResetDone() error {
	return w.Success(w.messages().reset)
}

// Success prints a confirmation message
func (w *Writer) Success(message string) error {
	if w.opts.Format == entity.OutputFormatJSON {
		return w.writeJSON(map[string]string{"status": "ok", "message": message})
	}
	return w.println(w.style(successStyle, "✅ "+message))
}

// Entry is one key/value line of a rendered configuration
type Entry struct {
	Key   string
	Value string
}

// Entries flattens cfg into dotted keys in a stable order
func Entries(cfg *entity.Config) []Entry {
	var entries []Entry
	var username, token string
	if cfg.GitHub != nil {
		username = cfg.GitHub.Username
		token = cfg.GitHub.Token
	}
	entries = append(entries,
		Entry{"github.username", username},
		Entry{"github.token", token},
	)
	if cfg.Display != nil {
		entries = append(entries,
			Entry{"display.language", string(cfg.Display.Language)},
			Entry{"display.colorOutput", fmt.Sprint(cfg.Display.ColorOutput)},
			Entry{"display.format", string(cfg.Display.Format)},
		)
	}
	if cfg.Cache != nil {
		entries = append(entries,
			Entry{"cache.enabled", fmt.Sprint(cfg.Cache.Enabled)},
			Entry{"cache.ttl", fmt.Sprint(cfg.Cache.TTL)},
		)
	}
	return entries
}

// MaskToken hides all but the last four characters of a token
func MaskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}

func (w *Writer) style(s lipgloss.Style, text string) string {
	if !w.opts.Color {
		return text
	}
	return s.Render(text)
}

func (w *Writer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	return w.println(string(data))
}

func (w *Writer) println(s string) error {
	return w.print(s + "\n")
}

func (w *Writer) print(s string) error {
	if _, err := io.WriteString(w.out, s); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
