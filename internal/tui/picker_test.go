package tui

import (
	"testing"

	"viavictl/internal/catalog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pickerTests = []catalog.Test{
	{ID: "t1", CampaignFilename: "c1.xml", Description: "first"},
	{ID: "t2", CampaignFilename: "c2.xml"},
}

func sendKeys(t *testing.T, m *Picker, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var model tea.Model
		model, cmd = m.Update(msg)
		require.Same(t, m, model)
	}
	return cmd
}

func TestPicker_ChooseSecond(t *testing.T) {
	m := NewPicker(pickerTests, "main")

	cmd := sendKeys(t, m,
		tea.WindowSizeMsg{Width: 100, Height: 40},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	got, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "t2", got.ID)
	assert.Equal(t, "c2.xml", got.CampaignFilename)
}

func TestPicker_Quit(t *testing.T) {
	m := NewPicker(pickerTests, "main")

	cmd := sendKeys(t, m,
		tea.WindowSizeMsg{Width: 100, Height: 40},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}},
	)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestPicker_EscClearsAppliedFilter(t *testing.T) {
	m := NewPicker(pickerTests, "main")
	sendKeys(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m.list.SetFilterText("t2")
	require.Equal(t, list.FilterApplied, m.list.FilterState())

	sendKeys(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.aborted)
	assert.Equal(t, list.Unfiltered, m.list.FilterState())
	assert.False(t, m.list.KeyMap.Quit.Enabled())

	cmd := sendKeys(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.aborted)
}

func TestPicker_ChooseFromAppliedFilter(t *testing.T) {
	m := NewPicker(pickerTests, "main")
	sendKeys(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m.list.SetFilterText("t2")

	cmd := sendKeys(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	got, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "t2", got.ID)
}

func TestPicker_EnterOnEmptyCatalog(t *testing.T) {
	m := NewPicker(nil, "main")

	cmd := sendKeys(t, m,
		tea.WindowSizeMsg{Width: 100, Height: 40},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	assert.Nil(t, cmd)

	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestPicker_View(t *testing.T) {
	m := NewPicker(pickerTests, "feature/x")
	sendKeys(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.Contains(t, view, "branch feature/x")
	assert.Contains(t, view, "t1")
}

func TestTestItem_Description(t *testing.T) {
	assert.Equal(t, "first", testItem{test: pickerTests[0]}.Description())
	assert.Equal(t, "c2.xml", testItem{test: pickerTests[1]}.Description(), "falls back to the campaign file")

	long := make([]rune, 200)
	for i := range long {
		long[i] = 'x'
	}
	desc := testItem{test: catalog.Test{ID: "t", Description: string(long)}}.Description()
	assert.LessOrEqual(t, len([]rune(desc)), maxDescriptionWidth)
}
