package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `
  █████╗ ██╗██████╗ ███████╗
 ██╔══██╗██║██╔══██╗██╔════╝
 ███████║██║██║  ██║█████╗
 ██╔══██║██║██║  ██║██╔══╝
 ██║  ██║██║██████╔╝███████╗
 ╚═╝  ╚═╝╚═╝╚═════╝ ╚══════╝
`

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)

	subtitle := styleSubtitle.Render("Your multi-mode assistant")

	// Mode list with the active one highlighted
	var modeLines []string
	for _, name := range a.state.engine.Modes().Names() {
		cfg, _ := a.state.engine.Modes().Get(name)
		line := "  " + name + " - " + cfg.Description
		if name == a.state.currentMode {
			line = "> " + name + " - " + cfg.Description
			modeLines = append(modeLines, lipgloss.NewStyle().Foreground(colorPrimary).Render(line))
		} else {
			modeLines = append(modeLines, styleSubtitle.Render(line))
		}
	}
	modeBox := styleBox.Width(min(56, a.width-4)).
		Render(strings.Join(modeLines, "\n"))

	instructions := styleSubtitle.Render("Type a message to begin, or /mode <name> to switch")

	inputBox := styleBox.Width(min(64, a.width-4)).
		Render(a.state.input.View())

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		"",
		modeBox,
		"",
		instructions,
		"",
		inputBox,
	)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusBar := styleStatusBar.Render("[Enter] Send  [Esc] Quit  /help for commands")
	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
