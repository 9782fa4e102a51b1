package components

import (
	"github.com/charmbracelet/lipgloss"
)

// SpacingSize enumerates spacing tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// TypographyVariant is a typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantEmphasis
	TypographyVariantFaint
)

// BorderVariant selects a border from the theme.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// ControlState is the interaction state of a control such as a page item,
// dropdown option, calendar day or navigation link.
type ControlState int

const (
	ControlDefault ControlState = iota
	ControlActive
	ControlHovered
	ControlDisabled
	ControlMuted
	ControlFocus
	ControlInvalid
)

// ColourSet is a semantic colour group: Base for backgrounds, OnBase for
// content on top of Base, Muted for subtle accents.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by widgets.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Danger  ColourSet
	Neutral ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TypographyScale contains typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Emphasis lipgloss.Style
	Faint    lipgloss.Style
}

// ControlStyles holds one style per ControlState.
type ControlStyles struct {
	Default  lipgloss.Style
	Active   lipgloss.Style
	Hovered  lipgloss.Style
	Disabled lipgloss.Style
	Muted    lipgloss.Style
	Focus    lipgloss.Style
	Invalid  lipgloss.Style
}

// Theme is an immutable styling theme. Create one and pass it through
// RenderContext.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Spacing    spacingTable
	Typography TypographyScale
	Controls   ControlStyles
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
		SpacingSizeExtraLarge: 4,
	}
}

func defaultPalette() Palette {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return Palette{
		Primary: ColourSet{
			Base:   ac("#3b82f6", "#60a5fa"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#2563eb", "#1d4ed8"),
		},
		Surface: ColourSet{
			Base:   ac("#f9fafb", "#111827"),
			OnBase: ac("#111827", "#f9fafb"),
			Muted:  ac("#e2e8f0", "#1f2937"),
		},
		Danger: ColourSet{
			Base:   ac("#ef4444", "#f87171"),
			OnBase: ac("#7f1d1d", "#450a0a"),
			Muted:  ac("#dc2626", "#b91c1c"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#475569", "#334155"),
		},
	}
}

func buildTheme(palette Palette) Theme {
	return Theme{
		Palette: palette,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Spacing:    defaultSpacingTable(),
		Typography: defaultTypography(palette),
		Controls:   defaultControls(palette),
	}
}

// DefaultTheme returns the default theme.
func DefaultTheme() Theme {
	return buildTheme(defaultPalette())
}

// DarkTheme returns a theme with a darker surface.
func DarkTheme() Theme {
	palette := defaultPalette()
	palette.Surface = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase: lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:  lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
	}
	return buildTheme(palette)
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Neutral.Base),
		Body:     base,
		Emphasis: base.Bold(true),
		Faint:    base.Faint(true),
	}
}

func defaultControls(p Palette) ControlStyles {
	item := lipgloss.NewStyle().Padding(0, 1)

	return ControlStyles{
		Default:  item.Foreground(p.Surface.OnBase),
		Active:   item.Bold(true).Background(p.Primary.Base).Foreground(p.Primary.OnBase),
		Hovered:  item.Background(p.Surface.Muted).Foreground(p.Surface.OnBase),
		Disabled: item.Faint(true).Foreground(p.Neutral.Muted),
		Muted:    item.Foreground(p.Neutral.Base),
		Focus:    item.Underline(true).Foreground(p.Primary.Base),
		Invalid:  item.Foreground(p.Danger.Base),
	}
}

// ControlStyle returns the style for a control in state.
func ControlStyle(theme Theme, state ControlState) lipgloss.Style {
	c := theme.Controls
	switch state {
	case ControlActive:
		return c.Active
	case ControlHovered:
		return c.Hovered
	case ControlDisabled:
		return c.Disabled
	case ControlMuted:
		return c.Muted
	case ControlFocus:
		return c.Focus
	case ControlInvalid:
		return c.Invalid
	default:
		return c.Default
	}
}

// BorderForVariant returns the border for variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	default:
		return lipgloss.Border{}
	}
}

// SpacingValue returns the cell count for size, falling back to medium.
func SpacingValue(theme Theme, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(theme.Spacing) {
		index = int(SpacingSizeMedium)
	}
	return theme.Spacing[index]
}

// TypographyStyle returns the typography preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantFaint:
		return typo.Faint
	default:
		return typo.Base
	}
}

// PaletteSlot selects a ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a slot's base colour with its matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a slot's base colour to the text.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant)).
			BorderForeground(theme.Palette.Neutral.Muted)
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(SpacingValue(theme, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := SpacingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Control inherits the style of a control state.
func Control(state ControlState) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(ControlStyle(theme, state))
	}
}
