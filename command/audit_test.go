package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lodastack/panelctl/panel"

	"gopkg.in/yaml.v3"
)

var testLogs = []panel.AuditEntry{
	{"2024-01-01 10:00:00", "admin", "restart", nil},
	{"2024-01-02 11:30:00", "root", "ban", "uid 5"},
}

func TestWriteAuditYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := writeAudit(&buf, testLogs, "yaml", "UTC"); err != nil {
		t.Fatalf("write yaml failed: %s", err)
	}
	var rows []auditRow
	if err := yaml.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("output is not yaml: %s", err)
	}
	if len(rows) != 2 || rows[1].Detail != "uid 5" || rows[0].Time != "2024-01-01 10:00:00" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if strings.Contains(strings.Split(buf.String(), "- time")[1], "detail") {
		t.Fatalf("expect empty detail omitted: %s", buf.String())
	}
}

func TestWriteAuditText(t *testing.T) {
	var buf bytes.Buffer
	if err := writeAudit(&buf, testLogs, "text", "UTC"); err != nil {
		t.Fatalf("write text failed: %s", err)
	}
	if !strings.Contains(buf.String(), "2024-01-01 10:00:00 | admin | restart | N/A") {
		t.Fatalf("unexpected text: %s", buf.String())
	}
}

func TestWriteAuditUnknownFormat(t *testing.T) {
	if err := writeAudit(&bytes.Buffer{}, testLogs, "xml", ""); err == nil {
		t.Fatalf("expect unknown format error")
	}
}
