package goldmark_test

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/teachpy"
	"github.com/fwojciec/teachpy/goldmark"
)

func stripANSI(s string) string {
	re := regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	return re.ReplaceAllString(s, "")
}

func TestMain(m *testing.M) {
	// Force ANSI color output so styled elements (headings, code) produce
	// visible escape codes that we can assert against.
	lipgloss.SetColorProfile(termenv.ANSI)
	os.Exit(m.Run())
}

func TestRender(t *testing.T) {
	t.Parallel()

	theme := teachpy.DefaultTheme()

	t.Run("empty input returns empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", goldmark.Render("", 80, theme))
	})

	t.Run("plain paragraph", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render("hello world", 80, theme)
		assert.Contains(t, stripANSI(result), "hello world")
	})

	t.Run("heading renders content with distinct styling", func(t *testing.T) {
		t.Parallel()
		heading := goldmark.Render("# PYTHON ROADMAP", 80, theme)
		paragraph := goldmark.Render("PYTHON ROADMAP", 80, theme)
		assert.Contains(t, stripANSI(heading), "PYTHON ROADMAP")
		assert.NotEqual(t, heading, paragraph)
	})

	t.Run("bold and italic text survive stripping", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render("**Beginner** or *Intermediate*", 80, theme)
		plain := stripANSI(result)
		assert.Contains(t, plain, "Beginner")
		assert.Contains(t, plain, "Intermediate")
	})

	t.Run("fenced code block keeps lines verbatim", func(t *testing.T) {
		t.Parallel()
		src := "```python\nprint('hello')\n```"
		result := goldmark.Render(src, 80, theme)
		plain := stripANSI(result)
		assert.Contains(t, plain, "python")
		assert.Contains(t, plain, "print('hello')")
		assert.Contains(t, plain, "│")
	})

	t.Run("code block is not reflowed at narrow width", func(t *testing.T) {
		t.Parallel()
		long := "x = some_function(argument_one, argument_two)"
		result := goldmark.Render("```\n"+long+"\n```", 20, theme)
		assert.Contains(t, stripANSI(result), long)
	})

	t.Run("unordered list", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render("- variables\n- loops", 80, theme)
		plain := stripANSI(result)
		assert.Contains(t, plain, "- variables")
		assert.Contains(t, plain, "- loops")
	})

	t.Run("ordered list keeps numbering", func(t *testing.T) {
		t.Parallel()
		result := goldmark.Render("1. basics\n2. functions\n3. classes", 80, theme)
		plain := stripANSI(result)
		assert.Contains(t, plain, "1. basics")
		assert.Contains(t, plain, "2. functions")
		assert.Contains(t, plain, "3. classes")
	})

	t.Run("paragraph wraps to width", func(t *testing.T) {
		t.Parallel()
		words := strings.Repeat("word ", 30)
		result := goldmark.Render(words, 20, theme)
		for _, line := range strings.Split(stripANSI(result), "\n") {
			assert.LessOrEqual(t, len(line), 20)
		}
	})
}
