package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/catatan/internal/styles"
)

const defaultHint = "Tab to switch · Enter to confirm · Esc to cancel"

// block is one rendered, non-empty section.
type block struct {
	content    string
	height     int
	focusables []FocusableInfo
}

// Render draws the modal box for a screenW x screenH screen. Callers
// composite it with ui.OverlayModal.
func (m *Modal) Render(screenW, screenH int) string {
	boxW := m.boxWidth(screenW)
	blocks := m.renderBody(max(1, boxW-ModalPadding))

	parts := make([]string, len(blocks))
	total := 0
	for i, b := range blocks {
		parts[i] = b.content
		total += b.height
	}

	m.rows = max(1, min(total, m.maxRows(screenH)))
	m.offset = clamp(m.offset, 0, max(0, total-m.rows))
	m.reveal(m.focus)

	var out strings.Builder
	if m.title != "" {
		title := styles.ModalTitle
		if m.variant != VariantDefault {
			title = title.Foreground(variantColor(m.variant))
		}
		out.WriteString(title.Render(m.title) + "\n")
	}
	out.WriteString(sliceLines(strings.Join(parts, "\n"), m.offset, m.rows))
	if m.showHints {
		out.WriteString("\n" + styles.Muted.Render(m.hint))
	}
	if m.footer != "" {
		out.WriteString("\n" + m.footer)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(variantColor(m.variant)).
		Background(styles.BgSecondary).
		Padding(1, 2).
		Width(boxW).
		Render(out.String())
}

// renderBody draws every section against the focused id. Sections focus
// or blur their inputs while drawing, so when the pass settles focus on a
// different element the sections are drawn again.
func (m *Modal) renderBody(width int) []block {
	blocks := m.renderPass(width)
	if m.settleFocus() {
		blocks = m.renderPass(width)
	}

	m.spans = make(map[string]span, len(m.ids))
	top := 0
	for _, b := range blocks {
		for _, f := range b.focusables {
			m.spans[f.ID] = span{top: top + f.OffsetY, height: max(1, f.Height)}
		}
		top += b.height
	}
	return blocks
}

func (m *Modal) renderPass(width int) []block {
	blocks := make([]block, 0, len(m.sections))
	m.ids = m.ids[:0]
	for _, s := range m.sections {
		res := s.Render(width, m.focus)
		content := strings.TrimSuffix(res.Content, "\n")
		h := measureHeight(content)
		if h == 0 {
			continue
		}
		blocks = append(blocks, block{content: content, height: h, focusables: res.Focusables})
		for _, f := range res.Focusables {
			m.ids = append(m.ids, f.ID)
		}
	}
	return blocks
}

func (m *Modal) boxWidth(screenW int) int {
	widest := max(1, screenW-4)
	return clamp(m.width, min(MinModalWidth, widest), widest)
}

// maxRows is the content height left once border, margin, title, hint and
// footer are taken from the screen.
func (m *Modal) maxRows(screenH int) int {
	rows := screenH - 6
	if m.title != "" {
		rows -= 2
	}
	if m.showHints {
		rows--
	}
	if m.footer != "" {
		rows -= measureHeight(m.footer)
	}
	return max(1, rows)
}

func variantColor(v Variant) lipgloss.Color {
	switch v {
	case VariantDanger:
		return styles.Error
	case VariantWarning:
		return styles.Warning
	case VariantInfo:
		return styles.Info
	}
	return styles.Primary
}

// sliceLines returns height lines of content starting at line offset.
func sliceLines(content string, offset, height int) string {
	lines := strings.Split(content, "\n")
	offset = clamp(offset, 0, max(0, len(lines)-1))
	lines = lines[offset:]
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
