package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/happyhour/internal/constants"
	"github.com/julianstephens/happyhour/internal/models"
)

// Star marks a favorite.
const Star = "⭐"

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	favCellStyle = cellStyle.
			Foreground(lipgloss.Color("220"))

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// Table renders promotions as a bordered table.
func Table(promos []models.Promotion, opts Options) string {
	rows := Rows(promos, opts)
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, r.Cells())
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(Headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return favCellStyle
			default:
				return cellStyle
			}
		})
	if opts.Width > 0 {
		t = t.Width(opts.Width)
	}
	return t.String()
}

// Card renders one promotion as a bordered card.
func Card(r Row) string {
	var b strings.Builder

	title := Title(r)
	if r.Favorite {
		title = Star + " " + title
	}
	b.WriteString(title)

	var when []string
	if r.Day != "" {
		when = append(when, r.Day)
	}
	if r.Start != constants.MissingValue || r.End != constants.MissingValue {
		when = append(when, r.Start+"–"+r.End)
	}
	if len(when) > 0 {
		b.WriteString("\n" + mutedStyle.Render(strings.Join(when, " • ")))
	}

	if line := detailLine("🍹", r.CheapestDrink, r.Drinks); line != "" {
		b.WriteString("\n" + line)
	}
	if line := detailLine("🍽️", r.CheapestFood, r.Food); line != "" {
		b.WriteString("\n" + line)
	}

	return cardStyle.Render(b.String())
}

// Title joins zone, casino and restaurant, falling back to "Unknown location".
func Title(r Row) string {
	var parts []string
	if r.Zone != "" {
		parts = append(parts, titleStyle.Render(r.Zone))
	}
	if r.Casino != "" {
		parts = append(parts, r.Casino)
	}
	if r.Restaurant != "" {
		parts = append(parts, r.Restaurant)
	}
	if len(parts) == 0 {
		return "Unknown location"
	}
	return strings.Join(parts, " · ")
}

func detailLine(icon, cheapest, text string) string {
	if cheapest == "" && text == "" {
		return ""
	}
	var line string
	if cheapest != "" {
		line = icon + " " + titleStyle.Render(cheapest)
	}
	if text != "" {
		if line != "" {
			line += "\n"
		}
		line += text
	}
	return line
}

// Cards renders promotions as a stack of cards.
func Cards(promos []models.Promotion, opts Options) string {
	rows := Rows(promos, opts)
	cards := make([]string, 0, len(rows))
	for _, r := range rows {
		cards = append(cards, Card(r))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// Write prints the result count and the table or cards, or the empty-result
// message.
func Write(w io.Writer, promos []models.Promotion, opts Options, cards bool) error {
	if len(promos) == 0 {
		_, err := fmt.Fprintln(w, warnStyle.Render(constants.EmptyResultMessage))
		return err
	}

	body := Table(promos, opts)
	if cards {
		body = Cards(promos, opts)
	}
	_, err := fmt.Fprintf(w, "%d result(s)\n%s\n", len(promos), body)
	return err
}
