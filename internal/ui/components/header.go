package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header is a heading with an optional faint subtitle.
type Header struct {
	BaseComponent
	title    string
	subtitle string
	level    int
}

// NewHeader creates a level 1 header.
func NewHeader(title string) *Header {
	return &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
		level:         1,
	}
}

// View renders the header with the default theme.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with ctx. Level 1 uses the title
// typography, level 2 the subtitle typography and deeper levels emphasis.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	style := h.ComputeStyle(ctx.Theme).Inherit(TypographyStyle(ctx.Theme, h.variant()))
	if ctx.Constraints.MaxWidth > 0 {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}

	if h.subtitle == "" {
		return style.Render(h.title)
	}

	subtitle := TypographyStyle(ctx.Theme, TypographyVariantFaint).Render(h.subtitle)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, h.title, subtitle))
}

func (h *Header) variant() TypographyVariant {
	switch h.level {
	case 1:
		return TypographyVariantTitle
	case 2:
		return TypographyVariantSubtitle
	default:
		return TypographyVariantEmphasis
	}
}

// WithStyle sets the header style.
func (h *Header) WithStyle(style lipgloss.Style) *Header {
	h.SetStyle(style)
	return h
}

// WithAppliers applies theme-based style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

// WithSubtitle adds a subtitle below the title.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithLevel sets the header level, clamped into [1, 6].
func (h *Header) WithLevel(level int) *Header {
	h.level = min(max(level, 1), 6)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}

// Level returns the header level.
func (h *Header) Level() int {
	return h.level
}
