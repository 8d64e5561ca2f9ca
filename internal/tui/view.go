package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/happyhour/internal/constants"
	"github.com/julianstephens/happyhour/internal/filter"
	"github.com/julianstephens/happyhour/internal/prices"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateFilterForm:
		content = docStyle.Render(m.form.View())
	default:
		content = m.viewTable()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("🍹 Happy Hours"),
		m.viewFilters(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTable() string {
	if len(m.visible) == 0 {
		return emptyStyle.Render(constants.EmptyResultMessage)
	}
	return docStyle.Render(m.table.View())
}

// viewFilters renders the active criteria as a row of chips.
func (m Model) viewFilters() string {
	c := m.criteria

	zone := c.Zone
	if zone == "" {
		zone = constants.AnyOption
	}
	at := constants.AnyOption
	if c.At != nil {
		at = c.At.Format12h()
	}
	budget := constants.AnyOption
	if c.MaxDrinkPrice != nil {
		budget = "≤ " + prices.FormatPrice(*c.MaxDrinkPrice)
	}

	chips := []string{
		chip("Zone: "+zone, c.Zone != ""),
		chip("Day: "+filter.DayLabel(c.Day), c.Day != nil),
		chip("Time: "+at, c.At != nil),
		chip("Drinks: "+budget, c.MaxDrinkPrice != nil),
		chip("★ only", c.FavoritesOnly),
		chip("All day", c.AllDayOnly),
	}
	if v := strings.TrimSpace(c.Venue); v != "" {
		chips = append(chips, chip("Venue: "+v, true))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func chip(label string, active bool) string {
	if active {
		return activeFilterStyle.Render(label)
	}
	return inactiveFilterStyle.Render(label)
}

func (m Model) viewStatus() string {
	line := fmt.Sprintf(" %d result(s) · %d favorite(s)", len(m.visible), len(m.favs))
	if m.status == "" {
		return statusStyle.Render(line)
	}
	if m.statusErr {
		return statusStyle.Render(line) + "  " + dangerStyle.Render(m.status)
	}
	return statusStyle.Render(line + "  " + m.status)
}
