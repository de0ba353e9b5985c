// Package prompt holds the questionnaire field registry, the field values
// record and the pure composer that turns those values into the
// market-analysis prompt text.
package prompt

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a wire name does not match any registry key.
var ErrUnknownField = errors.New("unknown field")

// Key identifies one questionnaire field. The set is closed.
type Key int

const (
	Industry Key = iota
	TargetAudience
	Geography
	BusinessGoals
	Metrics
	DataSources
	Competitors
	Trends
	Constraints
	Tone
	Deliverables
)

// KeyCount is the number of registry keys.
const KeyCount = 11

// Field is the registry record for a single key.
type Field struct {
	Key          Key
	Name         string
	Label        string
	HelperText   string
	DefaultValue string
}

// HasHelperText reports whether the field carries guidance copy.
func (f Field) HasHelperText() bool {
	return f.HelperText != ""
}

var registry = [KeyCount]Field{
	{
		Key:          Industry,
		Name:         "industry",
		Label:        "Settore / Prodotto",
		HelperText:   "Qual è il settore, la proposta di valore o il prodotto che vuoi analizzare?",
		DefaultValue: "Soluzioni SaaS per la gestione delle risorse umane nelle PMI europee",
	},
	{
		Key:          TargetAudience,
		Name:         "targetAudience",
		Label:        "Target di riferimento",
		HelperText:   "Chi sono i clienti ideali? Pensa a dimensione aziendale, ruolo decisionale, esigenze.",
		DefaultValue: "PMI tra 50 e 250 dipendenti con team HR ridotti e forte cultura digitale",
	},
	{
		Key:          Geography,
		Name:         "geography",
		Label:        "Mercato geografico",
		HelperText:   "Specifica aree geografiche, paesi o città su cui concentrare l'analisi.",
		DefaultValue: "Unione Europea, con focus su Italia, Francia e Germania",
	},
	{
		Key:          BusinessGoals,
		Name:         "businessGoals",
		Label:        "Obiettivi di business",
		HelperText:   "Qual è l'obiettivo dell'analisi? Espansione, lancio di prodotto, validazione di mercato?",
		DefaultValue: "Valutare opportunità di lancio in un nuovo paese e identificare nicchie con maggiore propensione all'acquisto entro 12 mesi",
	},
	{
		Key:          Metrics,
		Name:         "metrics",
		Label:        "Metriche da prioritizzare",
		HelperText:   "Indica KPI e metriche irrinunciabili per valutare il mercato.",
		DefaultValue: "Dimensione del mercato, CAGR, quote di mercato, ARPU, costi medi di acquisizione, lifetime value",
	},
	{
		Key:          DataSources,
		Name:         "dataSources",
		Label:        "Fonti dati preferite",
		HelperText:   "Hai fonti preferite o limitazioni (pubbliche vs private, lingue, ecc.)?",
		DefaultValue: "Report industriali, database finanziari (PitchBook, Crunchbase), Camere di Commercio, studi di settore, ricerche accademiche recenti",
	},
	{
		Key:          Competitors,
		Name:         "competitors",
		Label:        "Competitor e benchmark noti",
		HelperText:   "Elenca competitor diretti o indiretti da includere come benchmark.",
		DefaultValue: "Personio, Factorial, BambooHR, soluzioni locali rilevanti nei mercati target",
	},
	{
		Key:          Trends,
		Name:         "trends",
		Label:        "Trend e dinamiche emergenti da monitorare",
		HelperText:   "Temi emergenti, innovazioni tecnologiche o regolamentari da monitorare.",
		DefaultValue: "Impatto dell'intelligenza artificiale nei processi HR, adozione del lavoro ibrido, evoluzione normativa in materia di privacy e gestione dati",
	},
	{
		Key:          Constraints,
		Name:         "constraints",
		Label:        "Vincoli o requisiti specifici",
		HelperText:   "Budget, scadenze, disponibilità di dati o altri vincoli importanti.",
		DefaultValue: "Budget di ricerca moderato, necessità di insight azionabili entro 4 settimane, preferenza per fonti dati pubbliche o accessibili",
	},
	{
		Key:          Tone,
		Name:         "tone",
		Label:        "Tono e stile della risposta",
		HelperText:   "Definisci l'approccio comunicativo: specialistico, strategico, orientato ai dati.",
		DefaultValue: "Professionale, sintetico, orientato all'azione, con riepiloghi visivi dove utile",
	},
	{
		Key:          Deliverables,
		Name:         "deliverables",
		Label:        "Output desiderati",
		HelperText:   "Quali output finali sono necessari? Report, raccomandazioni, framework.",
		DefaultValue: "Executive summary, analisi SWOT, mappa competitiva, stima dimensionamento mercato (TAM/SAM/SOM), roadmap con delle quick win",
	},
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, KeyCount)
	for _, f := range registry {
		m[f.Name] = f.Key
	}
	return m
}()

// Valid reports whether k belongs to the registry.
func (k Key) Valid() bool {
	return k >= 0 && int(k) < KeyCount
}

// String returns the stable wire name of the key.
func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return registry[k].Name
}

// ParseKey maps a wire name back to its key.
func ParseKey(name string) (Key, error) {
	k, ok := keysByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return k, nil
}

// Keys returns every key in display order.
func Keys() []Key {
	keys := make([]Key, KeyCount)
	for i := range registry {
		keys[i] = registry[i].Key
	}
	return keys
}

// Fields returns a copy of the registry in display order.
func Fields() []Field {
	out := make([]Field, KeyCount)
	copy(out, registry[:])
	return out
}

// Lookup returns the registry record for k, or a zero Field when k is out of range.
func Lookup(k Key) Field {
	if !k.Valid() {
		return Field{}
	}
	return registry[k]
}

// Label returns the form label for k.
func Label(k Key) string {
	return Lookup(k).Label
}

// HelperText returns the guidance copy for k and whether the field has any.
func HelperText(k Key) (string, bool) {
	f := Lookup(k)
	return f.HelperText, f.HasHelperText()
}

// DefaultValue returns the starting value of k in a fresh form.
func DefaultValue(k Key) string {
	return Lookup(k).DefaultValue
}
