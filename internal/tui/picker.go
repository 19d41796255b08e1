package tui

import (
	"fmt"

	"viavictl/internal/catalog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// maxDescriptionWidth bounds the description line of an entry in terminal cells.
const maxDescriptionWidth = 96

// testItem adapts a catalog entry to the list component.
type testItem struct {
	test catalog.Test
}

func (i testItem) Title() string { return i.test.ID }

func (i testItem) Description() string {
	desc := i.test.Description
	if desc == "" {
		desc = i.test.CampaignFilename
	}
	return runewidth.Truncate(desc, maxDescriptionWidth, "…")
}

func (i testItem) FilterValue() string { return i.test.ID + " " + i.test.Description }

// Picker is a Bubble Tea model that lets the user choose one test of the catalog.
type Picker struct {
	list     list.Model
	keys     KeyMap
	selected *catalog.Test
	aborted  bool
}

// NewPicker creates a picker over tests.
func NewPicker(tests []catalog.Test, branch string) *Picker {
	items := make([]list.Item, 0, len(tests))
	for _, t := range tests {
		items = append(items, testItem{test: t})
	}

	keys := DefaultKeyMap()
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Viavi tests · branch %s", branch)
	l.Styles.Title = titleStyle
	// Quitting is handled by the picker so an abort can be told apart from a choice.
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Choose, keys.Quit}
	}

	return &Picker{list: l, keys: keys}
}

func (m *Picker) Init() tea.Cmd {
	return nil
}

func (m *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		// While the filter input is focused every key belongs to it, except ctrl+c.
		if m.list.FilterState() == list.Filtering && msg.String() != "ctrl+c" {
			break
		}
		// esc clears an applied filter before it quits.
		if m.list.FilterState() == list.FilterApplied && key.Matches(msg, m.list.KeyMap.ClearFilter) {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Choose):
			item, ok := m.list.SelectedItem().(testItem)
			if !ok {
				return m, nil
			}
			m.selected = &item.test
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Picker) View() string {
	return appStyle.Render(m.list.View())
}

// Selected returns the chosen test, if any.
func (m *Picker) Selected() (catalog.Test, bool) {
	if m.selected == nil || m.aborted {
		return catalog.Test{}, false
	}
	return *m.selected, true
}

// Pick runs the picker full screen and returns the chosen test. ok is false
// when the user quit without choosing.
func Pick(tests []catalog.Test, branch string, opts ...tea.ProgramOption) (test catalog.Test, ok bool, err error) {
	picker := NewPicker(tests, branch)
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)

	final, err := tea.NewProgram(picker, opts...).Run()
	if err != nil {
		return catalog.Test{}, false, fmt.Errorf("test picker failed: %w", err)
	}
	test, ok = final.(*Picker).Selected()
	return test, ok, nil
}
