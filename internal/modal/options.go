package modal

// Variant selects the modal's accent color.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDanger
	VariantWarning
	VariantInfo
)

const (
	// DefaultWidth is the modal width when WithWidth is not given.
	DefaultWidth = 50
	// MinModalWidth is the narrowest modal rendered on a wide enough screen.
	MinModalWidth = 30
	// ModalPadding is border (2) plus horizontal padding (4).
	ModalPadding = 6
)

// Option configures a Modal.
type Option func(*Modal)

// WithWidth sets the modal's outer width.
func WithWidth(w int) Option {
	return func(m *Modal) {
		if w > 0 {
			m.width = w
		}
	}
}

// WithVariant sets the modal's color variant.
func WithVariant(v Variant) Option {
	return func(m *Modal) { m.variant = v }
}

// WithHints toggles the keyboard hint line.
func WithHints(show bool) Option {
	return func(m *Modal) { m.showHints = show }
}

// WithHint replaces the default hint text.
func WithHint(text string) Option {
	return func(m *Modal) {
		if text != "" {
			m.hint = text
		}
	}
}

// WithPrimaryAction sets the action returned by Enter on a focusable that
// does not produce its own action, and by ctrl+s anywhere.
func WithPrimaryAction(id string) Option {
	return func(m *Modal) { m.primary = id }
}

// WithFooter sets a fixed footer rendered below the scrollable content.
func WithFooter(footer string) Option {
	return func(m *Modal) { m.footer = footer }
}
