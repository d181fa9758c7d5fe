package help

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/psychtest/psyquiz/internal/router"
)

func testBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	}
}

func TestViewListsKeysChoicesAndBands(t *testing.T) {
	h := New(testBindings())
	view := h.View(80, 40)

	for _, want := range []string{"submit", "reset", "very true", "not true", "Low", "Medium", "High", "33%", "66%"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view missing %q", want)
		}
	}
}

func TestCloseKeysPop(t *testing.T) {
	for _, k := range []tea.KeyPressMsg{
		{Code: '?', Text: "?"},
		{Code: 'q', Text: "q"},
		{Code: tea.KeyEscape},
	} {
		h := New(testBindings())
		_, cmd := h.Update(k)
		if cmd == nil {
			t.Fatalf("key %q: expected a command", k.String())
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("key %q: expected PopScreenMsg", k.String())
		}
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	h := New(testBindings())
	if _, cmd := h.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("expected no command for unbound key")
	}
}
