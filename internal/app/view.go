package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/catatan/internal/modal"
	"github.com/marcus/catatan/internal/note"
	"github.com/marcus/catatan/internal/styles"
	"github.com/marcus/catatan/internal/ui"
)

const (
	headerHeight = 1
	footerHeight = 1

	// Border plus horizontal padding of a panel
	panelFrameW = 4
	panelFrameH = 2

	minPreviewWidth = 60
	toastMargin     = 2
)

// View renders the whole screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return ""
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderContent(),
		m.renderFooter(),
	)

	switch m.activeModal() {
	case ModalEditor:
		screen = ui.OverlayModal(screen, m.editor.modal.Render(m.width, m.height), m.width, m.height)
	case ModalConfirm:
		screen = ui.OverlayModal(screen, m.confirm.modal.Render(m.width, m.height), m.width, m.height)
	case ModalHelp:
		screen = ui.OverlayModal(screen, m.helpModal().Render(m.width, m.height), m.width, m.height)
	}

	if m.toast.Active(m.now()) {
		screen = ui.OverlayBottomRight(screen, m.toast.Render(), m.width, m.height, toastMargin)
	}
	return screen
}

func (m Model) renderHeader() string {
	title := styles.Logo.Render(m.text.AppTitle)
	if !m.loaded {
		return styles.Header.Width(m.width).Render(title)
	}
	count := styles.Muted.Render(fmt.Sprintf(m.text.NoteCount, len(m.list.Notes())))
	return styles.Header.Width(m.width).Render(title + "  " + count)
}

func (m Model) renderFooter() string {
	return styles.Footer.Width(m.width).Render(ui.Truncate(m.help.View(m.keys), m.width))
}

// layout resizes the list to the space left by the header, footer and
// preview pane.
func (m *Model) layout() {
	m.help.Width = m.width
	listW, _ := m.paneWidths()
	m.list.SetSize(max(1, listW-panelFrameW), max(1, m.contentHeight()-panelFrameH))
}

func (m Model) contentHeight() int {
	return max(panelFrameH+1, m.height-headerHeight-footerHeight)
}

// previewVisible reports whether the preview pane fits and is switched on.
func (m Model) previewVisible() bool {
	return m.showPreview && m.width >= minPreviewWidth
}

// paneWidths splits the screen between list and preview.
func (m Model) paneWidths() (list, preview int) {
	if !m.previewVisible() {
		return m.width, 0
	}
	list = m.width * 2 / 5
	return list, m.width - list
}

func (m Model) renderContent() string {
	h := m.contentHeight()
	listW, previewW := m.paneWidths()

	listPanel := styles.PanelActive.
		Width(listW - 2).
		Height(h - panelFrameH).
		Render(m.list.View())
	if previewW == 0 {
		return listPanel
	}

	innerW := max(1, previewW-panelFrameW)
	innerH := max(1, h-panelFrameH)
	previewPanel := styles.PanelInactive.
		Width(previewW - 2).
		Height(innerH).
		Render(m.renderPreview(innerW, innerH))
	return lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)
}

// renderPreview shows the selected note rendered as markdown.
func (m Model) renderPreview(width, height int) string {
	n, ok := m.list.Selected()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			styles.Muted.Render(m.text.PreviewEmpty))
	}

	title := styles.Title.Render(ui.Truncate(n.DisplayTitle(m.text.Untitled), width))
	body := m.preview.render(n, width, m.logger)

	lines := strings.Split(strings.Trim(body, "\n"), "\n")
	if len(lines) > height-2 {
		lines = lines[:max(0, height-2)]
	}
	return title + "\n\n" + strings.Join(lines, "\n")
}

// helpModal lists every key binding.
func (m Model) helpModal() *modal.Modal {
	h := m.help
	h.ShowAll = true
	content := h.FullHelpView(m.keys.FullHelp())
	return modal.New(m.text.HelpTitle,
		modal.WithWidth(ui.ModalWidthLarge),
		modal.WithVariant(modal.VariantInfo),
		modal.WithHints(false),
	).AddSection(modal.Custom(func(int, string) modal.RenderedSection {
		return modal.RenderedSection{Content: content}
	}, nil))
}

// previewCache holds the last glamour rendering, keyed by note version,
// width and theme.
type previewCache struct {
	id      int64
	updated time.Time
	width   int
	theme   string
	out     string
	valid   bool
}

func (c *previewCache) reset() { c.valid = false }

func (c *previewCache) render(n note.Note, width int, logger *slog.Logger) string {
	theme := styles.CurrentMarkdownTheme
	if c.valid && c.id == n.ID && c.updated.Equal(n.UpdatedAt) && c.width == width && c.theme == theme {
		return c.out
	}

	out := n.Content
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		out, err = r.Render(n.Content)
	}
	if err != nil {
		logger.Warn("app: markdown render failed", "id", n.ID, "error", err)
		out = lipgloss.NewStyle().Width(width).Render(n.Content)
	}

	*c = previewCache{id: n.ID, updated: n.UpdatedAt, width: width, theme: theme, out: out, valid: true}
	return out
}
