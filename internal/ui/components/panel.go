package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tessera/internal/ui"
)

// Panel groups content under an optional header inside a border. A focused
// panel draws its border in the primary colour.
type Panel struct {
	BaseComponent
	children []ui.Renderable
	header   *Header
	border   BorderVariant
	padding  SpacingSize
	focused  bool
}

// NewPanel creates a rounded panel with small horizontal padding.
func NewPanel(children ...ui.Renderable) *Panel {
	return &Panel{
		BaseComponent: NewBaseComponent(),
		children:      children,
		border:        BorderVariantRounded,
		padding:       SpacingSizeSmall,
	}
}

// View renders the panel with the default theme.
func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header, a blank line and the children.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	body := VStack(p.children...).ViewWithContext(ctx)
	if p.header != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, p.header.ViewWithContext(ctx), "", body)
	}

	style := p.ComputeStyle(ctx.Theme).Padding(0, SpacingValue(ctx.Theme, p.padding))
	if p.border != BorderVariantNone {
		colour := ctx.Theme.Palette.Neutral.Muted
		if p.focused {
			colour = ctx.Theme.Palette.Primary.Base
		}
		style = style.Border(BorderForVariant(ctx.Theme, p.border)).BorderForeground(colour)
	}
	return style.Render(body)
}

// WithHeader places header above the content.
func (p *Panel) WithHeader(header *Header) *Panel {
	p.header = header
	return p
}

// WithTitle is WithHeader with a level 1 header.
func (p *Panel) WithTitle(title string) *Panel {
	return p.WithHeader(NewHeader(title))
}

// WithBorder selects the border; BorderVariantNone removes it.
func (p *Panel) WithBorder(variant BorderVariant) *Panel {
	p.border = variant
	return p
}

// WithPadding sets the left and right padding.
func (p *Panel) WithPadding(size SpacingSize) *Panel {
	p.padding = size
	return p
}

// WithFocused highlights the border.
func (p *Panel) WithFocused(focused bool) *Panel {
	p.focused = focused
	return p
}

// WithAppliers applies theme-based style modifiers.
func (p *Panel) WithAppliers(appliers ...StyleFunc) *Panel {
	p.SetAppliers(appliers...)
	return p
}

// Add appends children.
func (p *Panel) Add(children ...ui.Renderable) *Panel {
	p.children = append(p.children, children...)
	return p
}

// Header returns the panel header, or nil.
func (p *Panel) Header() *Header {
	return p.header
}
