package tui

import "github.com/charmbracelet/bubbles/spinner"

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return s
}

func renderLoading(s spinner.Model) string {
	return s.View() + " Syncing contacts..."
}
