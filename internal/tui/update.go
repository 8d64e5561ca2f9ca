package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/happyhour/internal/constants"
	"github.com/julianstephens/happyhour/internal/favorites"
	"github.com/julianstephens/happyhour/internal/filter"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(favoritesSavedMsg); ok {
		return m.favoritesSaved(msg)
	}
	if m.state == constants.StateFilterForm {
		return m.updateFilterForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Favorite):
			return m.toggleFavorite()
		case key.Matches(msg, m.keys.FavoritesOnly):
			m.criteria.FavoritesOnly = !m.criteria.FavoritesOnly
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.AllDay):
			m.criteria.AllDayOnly = !m.criteria.AllDayOnly
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Now):
			filter.PresetNow.Apply(&m.criteria, m.now())
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Tonight):
			filter.PresetTonight.Apply(&m.criteria, m.now())
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			at := filter.DefaultTime()
			m.criteria = filter.Criteria{At: &at}
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.filterForm = newFilterForm(m)
			m.form = NewFilterForm(m.filterForm, filter.Zones(m.ds))
			m.state = constants.StateFilterForm
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) toggleFavorite() (tea.Model, tea.Cmd) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.visible) {
		return m, nil
	}

	// Saves are fire-and-forget; the toggle applies even if the write fails.
	m.favs = favorites.Toggle(m.favs, m.visible[cursor].FavoriteKey())
	m.refresh()
	return m, m.queueSave()
}

func (m Model) favoritesSaved(msg favoritesSavedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("⚠ Favorites not saved: %v", msg.err), true)
	} else {
		m.setStatus(fmt.Sprintf("✓ Saved %d favorite(s)", msg.count), false)
	}
	if m.saveQueued {
		m.saveQueued = false
		return m, m.queueSave()
	}
	return m, nil
}

func (m Model) updateFilterForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateTable
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.applyFilterForm(m.filterForm); err != nil {
			m.setStatus(fmt.Sprintf("⚠ %v", err), true)
		} else {
			m.setStatus("", false)
		}
		m.refresh()
		m.state = constants.StateTable
		return m, nil
	case huh.StateAborted:
		m.state = constants.StateTable
		return m, nil
	}
	return m, cmd
}
