package page

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lodastack/panelctl/panel"
)

func TestLookupMissing(t *testing.T) {
	p := New(TotalUsers)
	if l := p.Lookup(Income); !l.Missing || l.Node != nil {
		t.Fatalf("expect soft missing lookup, got %+v", l)
	}
	if out := p.SetText(Income, "1"); out != Missing {
		t.Fatalf("expect missing, got %s", out)
	}
	if out := p.SetText(TotalUsers, "1"); out != Applied {
		t.Fatalf("expect applied, got %s", out)
	}
}

func TestUpdateCountersIncome(t *testing.T) {
	p := New(Default...)
	s := panel.Stats{Income: &panel.Income{Yookassa: []byte(`"100.50"`)}}
	UpdateCounters(p, s, NewFormatter("en"))

	if got, _ := p.Text(Income); got != "100.5 ₽" {
		t.Fatalf("expect 100.5 ₽, got %q", got)
	}
}

func TestUpdateCountersNonFiniteIncome(t *testing.T) {
	p := New(Default...)
	s := panel.Stats{Income: &panel.Income{Yookassa: []byte(`"100.50"`), Crypto: []byte(`"NaN"`)}}
	UpdateCounters(p, s, NewFormatter("en"))

	if got, _ := p.Text(Income); got != "100.5 ₽" {
		t.Fatalf("expect 100.5 ₽, got %q", got)
	}
}

func TestUpdateCountersSeparators(t *testing.T) {
	p := New(Default...)
	s := panel.Stats{
		TotalUsers: []byte(`1200`),
		ActiveSubs: []byte(`"37"`),
		Income:     &panel.Income{Yookassa: []byte(`1234000.25`), Crypto: []byte(`500`)},
	}
	results := UpdateCounters(p, s, NewFormatter("en"))
	for _, r := range results {
		if r.Outcome != Applied {
			t.Fatalf("expect %s applied, got %s", r.Selector, r.Outcome)
		}
	}
	if got, _ := p.Text(Income); got != "1,234,500.25 ₽" {
		t.Fatalf("unexpected income: %q", got)
	}
	if got, _ := p.Text(TotalUsers); got != "1200" {
		t.Fatalf("unexpected users: %q", got)
	}
	if got, _ := p.Text(ActiveSubs); got != "37" {
		t.Fatalf("unexpected subs: %q", got)
	}
}

func TestUpdateCountersMissingAnchors(t *testing.T) {
	p := New(TotalUsers)
	p.SetText(TotalUsers, "old")
	s := panel.Stats{ActiveSubs: []byte(`3`), Income: &panel.Income{}}
	results := UpdateCounters(p, s, NewFormatter("en"))

	want := map[string]Outcome{TotalUsers: NoData, ActiveSubs: Missing, Income: Missing}
	for _, r := range results {
		if want[r.Selector] != r.Outcome {
			t.Fatalf("%s: expect %s, got %s", r.Selector, want[r.Selector], r.Outcome)
		}
	}
	if got, _ := p.Text(TotalUsers); got != "old" {
		t.Fatalf("absent field must leave counter untouched, got %q", got)
	}
}

func TestFormatterFallback(t *testing.T) {
	f := NewFormatter("not a locale!")
	if got := f.Number(1000); got != "1,000" {
		t.Fatalf("expect english fallback, got %q", got)
	}
}

func TestDraw(t *testing.T) {
	p := New(ActiveConnections, TotalUsers)
	p.SetText(ActiveConnections, "12")
	var buf bytes.Buffer
	p.Draw(&buf)
	if !strings.Contains(buf.String(), "#active-connections") || !strings.Contains(buf.String(), "12") {
		t.Fatalf("unexpected draw output: %s", buf.String())
	}
}
