// Package components provides the theme and primitive building blocks the
// tessera widgets render with.
//
// # Theme System
//
// Themes are immutable values passed explicitly through RenderContext; there
// is no global theme:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := pager.ViewWithContext(ctx)
//
// Widget state styles (active page, hovered option, selected day, active
// link) live in Theme.Controls and are looked up with ControlStyle.
//
// # Primitives
//
//   - Text: styled text content
//   - Stack: vertical/horizontal arrangement with gaps
//   - Divider: separator lines
//   - Header: title with optional subtitle and level
//   - Panel: bordered group of content under an optional header
//
// Primitives accept theme-aware StyleFuncs through WithAppliers:
//
//	title := NewText("Sections").WithAppliers(
//		Foreground(PalettePrimary),
//		Typography(TypographyVariantTitle),
//	)
package components
