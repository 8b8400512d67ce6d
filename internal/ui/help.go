package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"selectlist/internal/ui/views"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// showHelpPager returns a command that pages the help text with ov
func (m *Model) showHelpPager() tea.Cmd {
	content := renderHelpContent(m.renderer.Styles())
	return func() tea.Msg {
		return helpPagerMsg{err: m.runHelpPager(content)}
	}
}

// runHelpPager hands the terminal to ov for the duration of the pager
func (m *Model) runHelpPager(content string) error {
	if m.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := m.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov a moment to fully exit before taking the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = m.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}

// renderHelpContent renders the help information with the renderer's styles
func renderHelpContent(st *views.Styles) string {
	var help strings.Builder

	help.WriteString(st.Title.Render("tasklist Help"))
	help.WriteString("\n")

	help.WriteString(st.HelpSection.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", st.HelpKey.Render("↑/↓, j/k"), st.HelpDesc.Render("Move focus up/down")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", st.HelpKey.Render("g/G"), st.HelpDesc.Render("Go to top/bottom")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", st.HelpKey.Render("Esc"), st.HelpDesc.Render("Clear focus")))
	help.WriteString("\n")

	help.WriteString(st.HelpSection.Render("Editing"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s   %s\n", st.HelpKey.Render("Enter/e"), st.HelpDesc.Render("Edit the focused task in place")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", st.HelpKey.Render("Enter"), st.HelpDesc.Render("Commit the edit")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", st.HelpKey.Render("Esc"), st.HelpDesc.Render("Cancel the edit")))
	help.WriteString("\n")

	help.WriteString(st.HelpSection.Render("Tasks"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s     %s\n", st.HelpKey.Render("Space"), st.HelpDesc.Render("Toggle done")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", st.HelpKey.Render("a"), st.HelpDesc.Render("Add a task")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", st.HelpKey.Render("d"), st.HelpDesc.Render("Delete the focused task")))
	help.WriteString("\n")

	help.WriteString(st.HelpSection.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", st.HelpKey.Render("?"), st.HelpDesc.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", st.HelpKey.Render("q"), st.HelpDesc.Render("Quit")))

	return help.String()
}
