package tui

import tea "github.com/charmbracelet/bubbletea"

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.active = (m.active + 1) % tabCount
			return m, nil
		case "shift+tab", "left", "h":
			m.active = (m.active + tabCount - 1) % tabCount
			return m, nil
		case "1", "2", "3", "4", "5":
			m.active = tab(msg.String()[0] - '1')
			return m, nil
		}
	}

	if m.active == tabExpenses {
		var cmd tea.Cmd
		m.expenseTable, cmd = m.expenseTable.Update(msg)
		return m, cmd
	}
	return m, nil
}
