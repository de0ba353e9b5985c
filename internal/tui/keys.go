package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type Action string

const (
	ActQuit      Action = "quit"
	ActInterrupt Action = "interrupt"
	ActHelp      Action = "help"

	ActGotoTab1 Action = "goto_tab_1"
	ActGotoTab2 Action = "goto_tab_2"
	ActGotoTab3 Action = "goto_tab_3"

	ActConfirm        Action = "confirm"
	ActCancel         Action = "cancel"
	ActTabForward     Action = "tab_forward"
	ActTabBackward    Action = "tab_backward"
	ActNavigateUp     Action = "navigate_up"
	ActNavigateDown   Action = "navigate_down"
	ActPageUp         Action = "page_up"
	ActPageDown       Action = "page_down"
	ActScrollTop      Action = "scroll_top"
	ActScrollBottom   Action = "scroll_bottom"
	ActCopyPrompt     Action = "copy_prompt"
	ActClearField     Action = "clear_field"
	ActToggleMarkdown Action = "toggle_markdown"
	ActResetDefaults  Action = "reset_defaults"
)

var tabActions = []Action{ActGotoTab1, ActGotoTab2, ActGotoTab3}

func gotoTabAction(index int) (Action, bool) {
	if index < 0 || index >= len(tabActions) {
		return "", false
	}
	return tabActions[index], true
}

func tabIndexFromAction(act Action) (int, bool) {
	for i, tabAction := range tabActions {
		if tabAction == act {
			return i, true
		}
	}
	return 0, false
}

type KeyCombo struct {
	Key   string
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (kc KeyCombo) String() string {
	parts := make([]string, 0, 4)
	if kc.Ctrl {
		parts = append(parts, "ctrl")
	}
	if kc.Alt {
		parts = append(parts, "alt")
	}
	if kc.Shift {
		parts = append(parts, "shift")
	}
	base := strings.ToLower(kc.Key)
	parts = append(parts, base)
	return strings.Join(parts, "+")
}

func (kc KeyCombo) Display() string {
	parts := make([]string, 0, 4)
	if kc.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if kc.Alt {
		parts = append(parts, "Alt")
	}
	if kc.Shift {
		parts = append(parts, "Shift")
	}
	base := strings.ToLower(kc.Key)
	switch base {
	case "pgup":
		base = "PgUp"
	case "pgdown":
		base = "PgDn"
	case "esc":
		base = "Esc"
	case "home":
		base = "Home"
	case "end":
		base = "End"
	case "tab":
		base = "Tab"
	case " ":
		base = "Space"
	case "enter":
		base = "Enter"
	case "up":
		base = "↑"
	case "down":
		base = "↓"
	case "left":
		base = "←"
	case "right":
		base = "→"
	case "backspace":
		base = "Backspace"
	case "space":
		base = "Space"
	default:
		if len(base) == 1 {
			base = strings.ToUpper(base)
		} else {
			base = strings.ToUpper(base[:1]) + base[1:]
		}
	}
	if len(parts) == 0 {
		return base
	}
	parts = append(parts, base)
	return strings.Join(parts, "+")
}

func (kc KeyCombo) Matches(msg tea.KeyMsg) bool {
	want := strings.ToLower(kc.String())
	have := strings.ToLower(msg.String())
	return want == have
}

type KeyMap struct {
	Global          map[Action][]KeyCombo
	PerTab          map[string]map[Action][]KeyCombo
	labels          map[Action]string
	typingSensitive map[Action]bool
}

type HelpEntry struct {
	Action Action
	Label  string
	Combos []KeyCombo
}

func (km KeyMap) GlobalActions(msg tea.KeyMsg) []Action {
	return km.matchingActions(km.Global, msg)
}

func (km KeyMap) TabActions(tabID string, msg tea.KeyMsg) []Action {
	return km.matchingActions(km.PerTab[tabID], msg)
}

func (km KeyMap) matchingActions(source map[Action][]KeyCombo, msg tea.KeyMsg) []Action {
	if len(source) == 0 {
		return nil
	}
	var matches []Action
	for act, combos := range source {
		for _, combo := range combos {
			if combo.Matches(msg) {
				matches = append(matches, act)
				break
			}
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return string(matches[i]) < string(matches[j])
	})
	return matches
}

func (km KeyMap) Label(act Action) string {
	if label, ok := km.labels[act]; ok {
		return label
	}
	return string(act)
}

func (km KeyMap) IsTypingSensitive(act Action) bool {
	return km.typingSensitive[act]
}

func (km KeyMap) GlobalHelpEntries() []HelpEntry {
	return km.helpEntries(km.Global)
}

func (km KeyMap) HelpEntriesForTab(tabID string) []HelpEntry {
	return km.helpEntries(km.PerTab[tabID])
}

func (km KeyMap) helpEntries(source map[Action][]KeyCombo) []HelpEntry {
	if len(source) == 0 {
		return nil
	}
	entries := make([]HelpEntry, 0, len(source))
	for act, combos := range source {
		if len(combos) == 0 {
			continue
		}
		entry := HelpEntry{
			Action: act,
			Label:  km.Label(act),
			Combos: append([]KeyCombo(nil), combos...),
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Label < entries[j].Label
	})
	return entries
}

func DefaultKeyMap() KeyMap {
	ctrl := func(key string) KeyCombo {
		return KeyCombo{Key: key, Ctrl: true}
	}
	alt := func(key string) KeyCombo {
		return KeyCombo{Key: key, Alt: true}
	}
	shift := func(key string) KeyCombo {
		return KeyCombo{Key: key, Shift: true}
	}
	key := func(k string) KeyCombo {
		return KeyCombo{Key: k}
	}

	global := map[Action][]KeyCombo{
		ActQuit:          {key("q")},
		ActInterrupt:     {ctrl("c")},
		ActHelp:          {key("?"), key("f1")},
		ActCopyPrompt:    {ctrl("y")},
		ActResetDefaults: {ctrl("r")},
		ActGotoTab1:      {alt("1")},
		ActGotoTab2:      {alt("2")},
		ActGotoTab3:      {alt("3")},
	}

	perTab := map[string]map[Action][]KeyCombo{
		tabIDForm: {
			ActConfirm:      {key("enter")},
			ActCancel:       {key("esc")},
			ActTabForward:   {key("tab")},
			ActTabBackward:  {shift("tab")},
			ActNavigateUp:   {key("up")},
			ActNavigateDown: {key("down")},
			ActClearField:   {ctrl("e")},
		},
		tabIDPreview: {
			ActNavigateUp:     {key("up")},
			ActNavigateDown:   {key("down")},
			ActPageUp:         {key("pgup")},
			ActPageDown:       {key("pgdown")},
			ActScrollTop:      {key("home")},
			ActScrollBottom:   {key("end")},
			ActToggleMarkdown: {key("m")},
			ActCopyPrompt:     {key("y")},
		},
		tabIDHelp: {},
	}

	labels := map[Action]string{
		ActQuit:           "Esci",
		ActInterrupt:      "Annulla / Esci",
		ActHelp:           "Mostra/nascondi aiuto",
		ActGotoTab1:       "Vai a Parametri",
		ActGotoTab2:       "Vai ad Anteprima",
		ActGotoTab3:       "Vai ad Aiuto",
		ActConfirm:        "Modifica campo",
		ActCancel:         "Termina modifica",
		ActTabForward:     "Campo successivo",
		ActTabBackward:    "Campo precedente",
		ActNavigateUp:     "Su",
		ActNavigateDown:   "Giù",
		ActPageUp:         "Pagina su",
		ActPageDown:       "Pagina giù",
		ActScrollTop:      "Inizio",
		ActScrollBottom:   "Fine",
		ActCopyPrompt:     "Copia prompt",
		ActClearField:     "Svuota campo",
		ActToggleMarkdown: "Anteprima markdown",
		ActResetDefaults:  "Ripristina valori predefiniti",
	}

	typingSensitive := map[Action]bool{
		ActQuit:          true,
		ActHelp:          true,
		ActGotoTab1:      true,
		ActGotoTab2:      true,
		ActGotoTab3:      true,
		ActResetDefaults: true,
	}

	return KeyMap{
		Global:          global,
		PerTab:          perTab,
		labels:          labels,
		typingSensitive: typingSensitive,
	}
}

// GlobalPassthrough reports whether msg triggers a global action that stays
// active while a text field is focused, such as copy or interrupt.
func (km KeyMap) GlobalPassthrough(msg tea.KeyMsg) bool {
	for _, act := range km.GlobalActions(msg) {
		if !km.IsTypingSensitive(act) {
			return true
		}
	}
	return false
}
