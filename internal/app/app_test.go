package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/repograde/internal/grader"
	"github.com/abhisek/repograde/internal/report"
	"github.com/abhisek/repograde/internal/router"
	"github.com/abhisek/repograde/internal/screens/results"
)

func newTestApp() AppModel {
	return newAppModel(context.Background(), Options{
		Grader:       grader.NewMockGrader(),
		Endpoint:     "http://localhost:5000/api/grade",
		GlamourStyle: "notty",
	})
}

func TestViewEmptyBeforeWindowSize(t *testing.T) {
	m := newTestApp()
	v := m.View()
	assert.True(t, v.AltScreen)
}

func TestWindowSizeAndFormHints(t *testing.T) {
	var model tea.Model = newTestApp()
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m := model.(AppModel)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
	assert.Equal(t, "Grade a Repository", m.router.Active().Title())
	assert.Equal(t, "Enter", m.footerHints()[0].Key)
}

func TestEscOnRootIsNoop(t *testing.T) {
	m := newTestApp()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscPopsResults(t *testing.T) {
	m := newTestApp()
	m.router.Push(results.New(report.Build(&grader.Report{}), "https://github.com/o/r", "notty"))
	assert.Equal(t, "Esc", m.footerHints()[2].Key)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	require.True(t, ok)

	m.Update(router.PopScreenMsg{})
	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, "Grade a Repository", m.router.Active().Title())
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestApp()

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
