package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var thinkingMessages = []string{
	"Thinking...",
	"Working on it...",
	"One moment...",
}

var spinnerFrames = []string{"|", "/", "-", "\\"}

func (a *App) renderChat() string {
	boxWidth := min(70, a.width-4)
	leftPad := (a.width - boxWidth) / 2
	if leftPad < 2 {
		leftPad = 2
	}
	indent := strings.Repeat(" ", leftPad)

	headerHeight := 3
	footerHeight := 4 // input box + status bar
	if len(a.state.suggestions) > 0 {
		footerHeight++
	}
	if a.state.thinking {
		footerHeight = 2
	}

	availableHeight := a.height - headerHeight - footerHeight
	if availableHeight < 5 {
		availableHeight = 5
	}

	// === HEADER ===
	var header strings.Builder
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("aide [" + a.state.currentMode + "]")
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	header.WriteString("\n")

	cfg, _ := a.state.engine.Modes().Get(a.state.currentMode)
	desc := ""
	if cfg != nil {
		desc = cfg.Description
	}
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		styleSubtitle.Render(desc)))
	header.WriteString("\n\n")

	// === MESSAGE LINES ===
	var messageLines []string
	for _, msg := range a.state.history {
		content := wrapText(msg.content, boxWidth-4)
		lines := strings.Split(content, "\n")
		if msg.role == "user" {
			for j, line := range lines {
				prefix := "> "
				if j > 0 {
					prefix = "  "
				}
				styled := lipgloss.NewStyle().
					Foreground(colorSecondary).
					Render(prefix + line)
				messageLines = append(messageLines, indent+styled)
			}
		} else {
			for _, line := range lines {
				styled := lipgloss.NewStyle().
					Foreground(colorWhite).
					Render("  " + line)
				messageLines = append(messageLines, indent+styled)
			}
		}
		messageLines = append(messageLines, "")
	}

	if a.state.thinking {
		spinner := spinnerFrames[a.state.spinTick%len(spinnerFrames)]
		msg := thinkingMessages[(a.state.spinTick/4)%len(thinkingMessages)]
		loading := lipgloss.NewStyle().
			Foreground(colorPrimary).
			Render(fmt.Sprintf("%s %s", spinner, msg))
		messageLines = append(messageLines, indent+loading)
	}

	// === SCROLL ===
	totalLines := len(messageLines)
	maxScroll := totalLines - availableHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if a.state.chatScrollOffset > maxScroll {
		a.state.chatScrollOffset = maxScroll
	}
	if a.state.chatScrollOffset < 0 {
		a.state.chatScrollOffset = 0
	}

	endIdx := totalLines - a.state.chatScrollOffset
	startIdx := endIdx - availableHeight
	if startIdx < 0 {
		startIdx = 0
	}
	if endIdx > totalLines {
		endIdx = totalLines
	}

	var visibleLines []string
	if startIdx < endIdx {
		visibleLines = messageLines[startIdx:endIdx]
	}

	// === FOOTER ===
	var footer strings.Builder

	if !a.state.thinking {
		if len(a.state.suggestions) > 0 {
			var chips []string
			for i, s := range a.state.suggestions {
				chip := truncate(s, boxWidth/len(a.state.suggestions)-3)
				if i == a.state.suggestIdx {
					chips = append(chips, styleSuggestionActive.Render(chip))
				} else {
					chips = append(chips, styleSuggestion.Render(chip))
				}
			}
			row := strings.Join(chips, styleSubtitle.Render(" | "))
			footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, row))
			footer.WriteString("\n")
		}

		a.state.input.Placeholder = "Message " + a.state.currentMode + " mode..."
		inputBox := styleBox.Width(boxWidth).
			BorderForeground(colorMuted).
			Render(a.state.input.View())
		footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
		footer.WriteString("\n")
	}

	var statusParts []string
	if a.state.chatScrollOffset > 0 {
		statusParts = append(statusParts, fmt.Sprintf("[scroll: %d]", a.state.chatScrollOffset))
	}
	if a.state.lastExport != "" {
		statusParts = append(statusParts, a.state.lastExport)
	}
	if a.state.thinking {
		statusParts = append(statusParts, "[Esc] Quit")
	} else {
		statusParts = append(statusParts, "[Tab] Suggestions  [Up/Down] Scroll  [Esc] Quit")
	}
	status := styleStatusBar.Render(strings.Join(statusParts, "  "))
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	// === COMBINE ===
	var messageArea strings.Builder
	for i, line := range visibleLines {
		messageArea.WriteString(line)
		if i < len(visibleLines)-1 {
			messageArea.WriteString("\n")
		}
	}

	displayedLines := len(visibleLines)
	messagePadding := availableHeight - displayedLines
	if messagePadding > 0 {
		if displayedLines > 0 {
			messageArea.WriteString("\n")
		}
		messageArea.WriteString(strings.Repeat("\n", messagePadding-1))
	}

	return header.String() + messageArea.String() + "\n" + footer.String()
}

// wrapText wraps text to fit within maxWidth, preserving words and existing
// line breaks
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}

	var result strings.Builder
	for i, paragraph := range strings.Split(text, "\n") {
		if i > 0 {
			result.WriteString("\n")
		}
		if len(paragraph) <= maxWidth {
			result.WriteString(paragraph)
			continue
		}

		lineLen := 0
		for j, word := range strings.Fields(paragraph) {
			if j > 0 {
				if lineLen+1+len(word) > maxWidth {
					result.WriteString("\n")
					lineLen = 0
				} else {
					result.WriteString(" ")
					lineLen++
				}
			}
			result.WriteString(word)
			lineLen += len(word)
		}
	}

	return result.String()
}
