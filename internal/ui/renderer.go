package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer handles all terminal output with consistent styling.
type Renderer struct {
	out     io.Writer
	err     io.Writer
	noColor bool
	quiet   bool
}

// NewRenderer creates a new Renderer with default settings.
func NewRenderer() *Renderer {
	return &Renderer{
		out: os.Stdout,
		err: os.Stderr,
	}
}

// Option is a functional option for configuring the Renderer.
type Option func(*Renderer)

// WithOutput sets the output writer.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		r.out = w
	}
}

// WithError sets the error writer.
func WithError(w io.Writer) Option {
	return func(r *Renderer) {
		r.err = w
	}
}

// WithNoColor disables color output.
func WithNoColor(noColor bool) Option {
	return func(r *Renderer) {
		r.noColor = noColor
	}
}

// WithQuiet enables quiet mode (suppresses status messages).
func WithQuiet(quiet bool) Option {
	return func(r *Renderer) {
		r.quiet = quiet
	}
}

// NewRendererWithOptions creates a new Renderer with the given options.
func NewRendererWithOptions(opts ...Option) *Renderer {
	r := NewRenderer()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// render applies styling if color is enabled.
func (r *Renderer) render(style lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return style.Render(text)
}

// --- Status and Messages ---

// Status prints a status message (suppressed in quiet mode).
func (r *Renderer) Status(format string, args ...any) {
	if r.quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(r.err, r.render(StatusStyle, msg))
}

// Info prints an informational message.
func (r *Renderer) Info(format string, args ...any) {
	fmt.Fprintln(r.out, fmt.Sprintf(format, args...))
}

// Success prints a success message.
func (r *Renderer) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(r.out, r.render(SuccessStyle, msg))
}

// Warning prints a warning message.
func (r *Renderer) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(r.err, r.render(WarningStyle, "Warning: "+msg))
}

// Error prints an error message.
func (r *Renderer) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(r.err, r.render(ErrorStyle, "Error: "+msg))
}

// KeyValue prints a key-value pair.
func (r *Renderer) KeyValue(key, value string) {
	label := r.render(LabelStyle, key+":")
	fmt.Fprintf(r.out, "%s %s\n", label, value)
}

// Newline prints a blank line.
func (r *Renderer) Newline() {
	fmt.Fprintln(r.out)
}

// --- Cache Step Rendering ---

// Op prints a numbered script operation.
func (r *Renderer) Op(step int, op string) {
	num := r.render(MutedStyle, fmt.Sprintf("%3d.", step))
	fmt.Fprintf(r.out, "%s %s\n", num, r.render(OpStyle, op))
}

// Hit prints a lookup hit with its value.
func (r *Renderer) Hit(value int) {
	fmt.Fprintf(r.out, "     %s\n", r.render(HitStyle, fmt.Sprintf("hit: %d", value)))
}

// Miss prints a lookup miss.
func (r *Renderer) Miss() {
	fmt.Fprintf(r.out, "     %s\n", r.render(MissStyle, "miss"))
}

// Stored prints the result of a put.
func (r *Renderer) Stored(key, value int) {
	fmt.Fprintf(r.out, "     %s\n", r.render(HitStyle, fmt.Sprintf("stored %d=%d", key, value)))
}

// Evicted prints which key an insertion pushed out.
func (r *Renderer) Evicted(key int) {
	fmt.Fprintf(r.out, "     %s\n", r.render(EvictStyle, fmt.Sprintf("evicted %d", key)))
}

// Order prints the cache's recency order, most recently used first.
func (r *Renderer) Order(keys []int) {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	line := fmt.Sprintf("order: [%s]  (MRU to LRU)", strings.Join(parts, " "))
	fmt.Fprintf(r.out, "     %s\n", r.render(OrderStyle, line))
}
