package tui

type tabSpec struct {
	ID    string
	Title string
}

const (
	tabIDForm    = "form"
	tabIDPreview = "preview"
	tabIDHelp    = "help"
)

var defaultTabSpecs = []tabSpec{
	{ID: tabIDForm, Title: "Parametri"},
	{ID: tabIDPreview, Title: "Anteprima"},
	{ID: tabIDHelp, Title: "Aiuto"},
}

var tabIDOrder = defaultTabIDs()

func defaultTabIDs() []string {
	ids := make([]string, len(defaultTabSpecs))
	for i, spec := range defaultTabSpecs {
		ids[i] = spec.ID
	}
	return ids
}

func tabTitle(id string) string {
	for _, spec := range defaultTabSpecs {
		if spec.ID == id {
			return spec.Title
		}
	}
	return id
}

func (m model) currentTabID() string {
	if m.tabIndex < 0 || m.tabIndex >= len(m.tabs) {
		return ""
	}
	return m.tabs[m.tabIndex]
}

func (m model) hasTabID(id string) bool {
	for _, tabID := range m.tabs {
		if tabID == id {
			return true
		}
	}
	return false
}

func (m *model) setActiveTabIndex(idx int) bool {
	if idx < 0 || idx >= len(m.tabs) {
		return false
	}
	m.tabIndex = idx
	return true
}
