package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/happyhour/internal/constants"
	"github.com/julianstephens/happyhour/internal/dataset"
	"github.com/julianstephens/happyhour/internal/favorites"
	"github.com/julianstephens/happyhour/internal/filter"
	"github.com/julianstephens/happyhour/internal/models"
	"github.com/julianstephens/happyhour/internal/prices"
	"github.com/julianstephens/happyhour/internal/render"
)

// columnWidths follows render.Headers.
var columnWidths = []int{3, 14, 16, 20, 10, 9, 9, 28, 24, 16, 16}

// chrome is the number of lines around the table: title, filter bar,
// status line and short help.
const chrome = 6

type FilterFormModel struct {
	Zone     string
	Venue    string
	Day      string
	At       string
	MaxPrice string
}

// favoritesSavedMsg reports the outcome of a background save.
type favoritesSavedMsg struct {
	count int
	err   error
}

type Model struct {
	ds         *dataset.Dataset
	store      *favorites.Store
	favs       models.Favorites
	criteria   filter.Criteria
	now        func() time.Time
	state      constants.SessionState
	keys       KeyMap
	help       help.Model
	table      table.Model
	visible    []models.Promotion
	form       *huh.Form
	filterForm *FilterFormModel
	status     string
	statusErr  bool
	saving     bool
	saveQueued bool
	quitting   bool
	width      int
	height     int
}

// NewModel builds the listing UI. favs is the mapping loaded at startup and
// criteria the initial filters; now supplies the clock for presets.
func NewModel(ds *dataset.Dataset, store *favorites.Store, favs models.Favorites, criteria filter.Criteria, now func() time.Time) Model {
	if favs == nil {
		favs = models.Favorites{}
	}
	if now == nil {
		now = time.Now
	}

	columns := make([]table.Column, len(render.Headers))
	for i, title := range render.Headers {
		columns[i] = table.Column{Title: title, Width: columnWidths[i]}
	}

	km := table.DefaultKeyMap()
	km.PageDown = key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down"))
	km.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "½ page down"))

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithKeyMap(km),
		table.WithStyles(styles),
	)

	m := Model{
		ds:       ds,
		store:    store,
		favs:     favs,
		criteria: criteria,
		now:      now,
		state:    constants.StateTable,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		table:    t,
	}
	m.refresh()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Visible returns the promotions currently listed, in display order.
func (m Model) Visible() []models.Promotion {
	return m.visible
}

// Favorites returns the in-memory favorites mapping.
func (m Model) Favorites() models.Favorites {
	return m.favs
}

// refresh reapplies the criteria and rebuilds the table rows.
func (m *Model) refresh() {
	m.criteria.Favorites = m.favs
	m.visible = filter.Apply(m.ds, m.criteria)
	filter.Sort(m.visible)

	rows := make([]table.Row, 0, len(m.visible))
	for _, r := range render.Rows(m.visible, render.Options{Favorites: m.favs}) {
		rows = append(rows, table.Row(r.Cells()))
	}
	m.table.SetRows(rows)

	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.table.SetWidth(width - 2)
	m.table.SetHeight(max(height-chrome, 3))
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

// queueSave starts a background save of the current favorites. While one is
// in flight, further toggles only mark the mapping dirty and are written
// once it completes, so saves land in order.
func (m *Model) queueSave() tea.Cmd {
	if m.saving {
		m.saveQueued = true
		return nil
	}
	m.saving = true
	return saveFavorites(m.store, m.favs.Clone())
}

// saveFavorites writes favs in the background.
func saveFavorites(store *favorites.Store, favs models.Favorites) tea.Cmd {
	return func() tea.Msg {
		return favoritesSavedMsg{count: len(favs), err: store.Save(favs)}
	}
}

func newFilterForm(m Model) *FilterFormModel {
	fm := &FilterFormModel{
		Zone:  m.criteria.Zone,
		Venue: m.criteria.Venue,
		Day:   filter.DayLabel(m.criteria.Day),
		At:    constants.AnyOption,
	}
	if fm.Zone == "" {
		fm.Zone = constants.AnyOption
	}
	if m.criteria.At != nil {
		fm.At = m.criteria.At.Format12h()
	}
	if m.criteria.MaxDrinkPrice != nil {
		fm.MaxPrice = prices.FormatPrice(*m.criteria.MaxDrinkPrice)
	}
	return fm
}

// NewFilterForm builds the filter dialog bound to fm.
func NewFilterForm(fm *FilterFormModel, zones []string) *huh.Form {
	zoneOptions := []huh.Option[string]{huh.NewOption(constants.AnyOption, constants.AnyOption)}
	for _, z := range zones {
		zoneOptions = append(zoneOptions, huh.NewOption(z, z))
	}

	dayOptions := []huh.Option[string]{huh.NewOption(constants.AnyOption, constants.AnyOption)}
	for d := time.Sunday; d <= time.Saturday; d++ {
		dayOptions = append(dayOptions, huh.NewOption(d.String(), d.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Zone").
				Options(zoneOptions...).
				Value(&fm.Zone),
			huh.NewInput().
				Title("Venue").
				Description("Part of a casino or restaurant name").
				Value(&fm.Venue),
			huh.NewSelect[string]().
				Title("Day").
				Options(dayOptions...).
				Value(&fm.Day),
			huh.NewInput().
				Title("Time").
				Description("e.g. 19:00 or 7:30 PM, Any to show every time").
				Value(&fm.At).
				Validate(func(s string) error {
					_, err := filter.ParseAt(s)
					return err
				}),
			huh.NewInput().
				Title("Max drink price").
				Description("Leave empty for no budget").
				Value(&fm.MaxPrice).
				Validate(func(s string) error {
					_, err := prices.ParseBudget(s)
					return err
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// applyFilterForm copies validated form values into the criteria.
func (m *Model) applyFilterForm(fm *FilterFormModel) error {
	day, err := filter.ParseDay(fm.Day)
	if err != nil {
		return err
	}
	at, err := filter.ParseAt(fm.At)
	if err != nil {
		return err
	}
	budget, err := prices.ParseBudget(fm.MaxPrice)
	if err != nil {
		return err
	}

	m.criteria.Zone = fm.Zone
	if m.criteria.Zone == constants.AnyOption {
		m.criteria.Zone = ""
	}
	m.criteria.Venue = fm.Venue
	m.criteria.Day = day
	m.criteria.At = at
	m.criteria.MaxDrinkPrice = budget
	return nil
}
