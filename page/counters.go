package page

import (
	"github.com/lodastack/panelctl/panel"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const CurrencySuffix = " ₽"

// Formatter renders numbers with the separators of a locale.
type Formatter struct {
	p *message.Printer
}

// NewFormatter falls back to English for an unknown locale.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{p: message.NewPrinter(tag)}
}

func (f *Formatter) Number(v float64) string {
	return f.p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

func (f *Formatter) Money(v float64) string {
	return f.p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2))) + CurrencySuffix
}

type Result struct {
	Selector string
	Outcome  Outcome
}

// UpdateCounters writes the stats snapshot into the counter anchors.
func UpdateCounters(p *Page, s panel.Stats, f *Formatter) []Result {
	results := make([]Result, 0, 3)

	set := func(sel string, text string, ok bool) {
		r := Result{Selector: sel, Outcome: NoData}
		if p.Lookup(sel).Missing {
			r.Outcome = Missing
		} else if ok {
			r.Outcome = p.SetText(sel, text)
		}
		results = append(results, r)
	}

	users, ok := panel.RawText(s.TotalUsers)
	set(TotalUsers, users, ok)

	subs, ok := panel.RawText(s.ActiveSubs)
	set(ActiveSubs, subs, ok)

	set(Income, f.Money(s.Income.Total()), s.Income != nil)

	return results
}
