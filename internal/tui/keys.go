package tui

import "github.com/charmbracelet/bubbles/key"

// calcKeyMap holds the calculator key bindings outside edit mode. Up
// and Down (and Left and Right) are matched separately but share one
// help entry, so only the first of each pair carries help text.
type calcKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Edit   key.Binding
	Done   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k calcKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Toggle, k.Edit, k.Done}
}

// FullHelp implements help.KeyMap.
func (k calcKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Left},
		{k.Toggle, k.Edit, k.Done},
	}
}

func newCalcKeyMap() calcKeyMap {
	return calcKeyMap{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "navigate")),
		Down:   key.NewBinding(key.WithKeys("down")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "adjust")),
		Right:  key.NewBinding(key.WithKeys("right")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle practice")),
		Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit distance")),
		Done:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "done")),
	}
}

// editKeyMap holds the bindings while the distance input is focused.
// Every other key goes to the text input.
type editKeyMap struct {
	Apply  key.Binding
	Cancel key.Binding
}

// ShortHelp implements help.KeyMap.
func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Apply, k.Cancel}}
}

func newEditKeyMap() editKeyMap {
	return editKeyMap{
		Apply:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// surveyKeyMap holds the survey key bindings. Toggle is enabled only
// on multi-select questions, which also hides it from the help footer
// on the yes/no ones.
type surveyKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Next   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k surveyKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Toggle, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k surveyKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Toggle},
		{k.Next, k.Quit},
	}
}

func newSurveyKeyMap() surveyKeyMap {
	return surveyKeyMap{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "navigate")),
		Down:   key.NewBinding(key.WithKeys("down")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Next:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
