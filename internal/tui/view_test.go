package tui

import (
	"strings"
	"testing"

	"github.com/SimoKiihamaki/marketprompt/internal/prompt"
	tea "github.com/charmbracelet/bubbletea"
)

func TestBuildHelpOverlayContentIncludesGlobalAndTabActions(t *testing.T) {
	t.Parallel()
	m := model{
		keys: DefaultKeyMap(),
		tabs: defaultTabIDs(),
	}

	content := buildHelpOverlayContent(m)
	if content == "" {
		t.Fatalf("expected help overlay content to render")
	}
	for _, want := range []string{"Globali", "Copia prompt", "Ctrl+Y", "Campo successivo", "Svuota campo"} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in help overlay, got:\n%s", want, content)
		}
	}
}

func TestRenderHelpViewListsEveryTab(t *testing.T) {
	t.Parallel()
	m := model{
		keys: DefaultKeyMap(),
		tabs: defaultTabIDs(),
	}

	var b strings.Builder
	renderHelpView(&b, m)
	out := b.String()

	for _, want := range []string{"Globali", "Parametri", "Anteprima", "Anteprima markdown"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in help view, got:\n%s", want, out)
		}
	}
}

func TestRenderHelpViewIndexesFields(t *testing.T) {
	m := newTestModel(t, nil)
	m.session.Set(prompt.Trends, "  ")
	m.focus = int(prompt.Geography)

	var b strings.Builder
	renderHelpView(&b, m)
	out := b.String()

	for _, f := range prompt.Fields() {
		if !strings.Contains(out, f.Label) || !strings.Contains(out, "("+f.Name+")") {
			t.Fatalf("help view should list %s with its name, got:\n%s", f.Name, out)
		}
	}
	if !strings.Contains(out, "▸  3. "+prompt.Label(prompt.Geography)) {
		t.Fatalf("focused field should be marked, got:\n%s", out)
	}

	var trendsLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "(trends)") {
			trendsLine = line
		}
	}
	if !strings.Contains(trendsLine, "vuoto") {
		t.Fatalf("blank field should be flagged, got %q", trendsLine)
	}
	if strings.Count(out, "vuoto") != 1 {
		t.Fatalf("only the blank field should be flagged, got:\n%s", out)
	}
}

func TestRenderFormViewShowsLabelsAndHelperText(t *testing.T) {
	m := newTestModel(t, nil)

	var b strings.Builder
	renderFormView(&b, m)
	out := b.String()

	for _, f := range prompt.Fields() {
		if !strings.Contains(out, f.Label) {
			t.Errorf("form view missing label %q", f.Label)
		}
	}
	text, _ := prompt.HelperText(prompt.Industry)
	if !strings.Contains(out, text) {
		t.Fatalf("form view missing helper text for the first field")
	}
	if !strings.Contains(out, "Campo 1/11") {
		t.Fatalf("form view missing position hint, got:\n%s", out)
	}
}

func TestRenderPreviewViewCopyLabel(t *testing.T) {
	m := newTestModel(t, nil)

	var b strings.Builder
	renderPreviewView(&b, m)
	if out := b.String(); !strings.Contains(out, copyButtonLabel) || strings.Contains(out, copiedLabel) {
		t.Fatalf("expected %q button before copying, got:\n%s", copyButtonLabel, out)
	}

	m.copied = true
	b.Reset()
	renderPreviewView(&b, m)
	if out := b.String(); !strings.Contains(out, copiedLabel) {
		t.Fatalf("expected %q button after copying, got:\n%s", copiedLabel, out)
	}
}

func TestViewUsesSplitPaneOnWideTerminals(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 60})
	if strings.Contains(m.View(), copyButtonLabel) {
		t.Fatalf("narrow form tab should not show the preview")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 150, Height: 60})
	out := m.View()
	if !strings.Contains(out, copyButtonLabel) || !strings.Contains(out, splitDivider) {
		t.Fatalf("wide form tab should show form and preview side by side, got:\n%s", out)
	}
}

func TestStatusBarShowsToast(t *testing.T) {
	m := newTestModel(t, nil)
	_ = m.flash(copiedLabel, 0)

	msg, style := statusBarMessage(m)
	if msg != copiedLabel {
		t.Fatalf("status bar = %q, want %q", msg, copiedLabel)
	}
	if style.GetForeground() != statusSuccessStyle.GetForeground() {
		t.Fatalf("copied toast should use the success style")
	}
}

func TestClassifyStatusStyle(t *testing.T) {
	t.Parallel()
	tcs := map[string]string{
		"Copiato!":                           "success",
		"Valori predefiniti ripristinati":    "success",
		"Anteprima markdown non disponibile": "error",
		"seleziona e copia manualmente":      "warn",
		"Anteprima markdown attiva":          "info",
	}
	styles := map[string]interface{}{
		"success": statusSuccessStyle.GetForeground(),
		"error":   statusErrorStyle.GetForeground(),
		"warn":    statusWarnStyle.GetForeground(),
		"info":    statusInfoStyle.GetForeground(),
	}
	for text, want := range tcs {
		if got := classifyStatusStyle(text).GetForeground(); got != styles[want] {
			t.Errorf("classifyStatusStyle(%q) = %v, want %s", text, got, want)
		}
	}
}
