package prompt

import "strings"

// SectionCount is the number of blocks that precede the instructions footer.
const SectionCount = 9

const sectionSeparator = "\n\n"

const roleSentence = "Sei un consulente senior specializzato in analisi di mercato B2B con rigorosa metodologia da boutique di strategic advisory." +
	" Devi produrre un'analisi completa e strutturata, pronta per guidare decisioni di go-to-market."

const (
	contextHeading = "Contesto di riferimento:"
	industryLine   = "- Settore: "
	audienceLine   = "- Target primario: "
	geographyLine  = "- Geografie da coprire: "
)

// bulletSections lists the bulletized blocks in output order.
var bulletSections = []struct {
	heading string
	key     Key
}{
	{"Obiettivi chiave:", BusinessGoals},
	{"Metriche e indicatori prioritari:", Metrics},
	{"Fonti dati da privilegiare:", DataSources},
	{"Competitor e benchmark da includere:", Competitors},
	{"Trend emergenti o dinamiche critiche:", Trends},
	{"Vincoli operativi o di ricerca:", Constraints},
	{"Output richiesti:", Deliverables},
}

const instructionsHeading = "Istruzioni di lavoro:"

var instructions = [...]string{
	"1. Struttura l'analisi in sezioni chiare (Executive Summary, Dati macro, Segmentazione, Competitor, Trend, Rischi, Opportunità, Raccomandazioni).",
	"2. Evidenzia lacune informative e suggerisci come colmarle.",
	"3. Quantifica dimensioni e dinamiche dove possibile, citando le fonti e l'anno.",
	"4. Includi insight azionabili, quick win e roadmap di 90 giorni.",
	"5. Arricchisci la sezione raccomandazioni con tabelle o bullet point strutturati.",
	"6. Concludi con domande di follow-up mirate per approfondimenti futuri.",
}

const (
	toneLinePrefix = "Tono richiesto: "
	languageLine   = "Lingua della risposta: italiano (con termini tecnici in inglese quando consolidati nel settore)."
)

// Sections returns the nine ordered blocks of the prompt body.
func Sections(v Values) []string {
	sections := make([]string, 0, SectionCount)
	sections = append(sections, roleSentence)
	sections = append(sections, contextHeading+"\n"+
		industryLine+v[Industry]+"\n"+
		audienceLine+v[TargetAudience]+"\n"+
		geographyLine+v[Geography])
	for _, s := range bulletSections {
		sections = append(sections, s.heading+"\n"+Bulletize(v[s.key]))
	}
	return sections
}

// Compose renders the full prompt for v. It is pure: equal inputs give
// byte-identical output.
func Compose(v Values) string {
	var b strings.Builder
	b.WriteString(strings.Join(Sections(v), sectionSeparator))
	b.WriteString(sectionSeparator)
	b.WriteString(instructionsHeading + "\n")
	for _, line := range instructions {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(ToneLine(v[Tone]) + "\n")
	b.WriteString(languageLine)
	return b.String()
}

// ToneLine renders the tone request line with the value kept verbatim.
func ToneLine(tone string) string {
	return toneLinePrefix + tone + "."
}
