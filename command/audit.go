package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lodastack/panelctl/dashboard"
	"github.com/lodastack/panelctl/panel"

	"github.com/oiooj/cli"
	"gopkg.in/yaml.v3"
)

var CmdAudit = cli.Command{
	Name:        "audit",
	Usage:       "查看审计日志",
	Description: "拉取面板审计日志",
	Action:      runAudit,
	Flags: []cli.Flag{
		configFlag,
		cli.StringFlag{
			Name:  "o",
			Value: "text",
			Usage: "输出格式: text|yaml",
		},
	},
}

type auditRow struct {
	Time   string `yaml:"time"`
	Actor  string `yaml:"actor"`
	Action string `yaml:"action"`
	Detail string `yaml:"detail,omitempty"`
}

func runAudit(c *cli.Context) {
	cfg := setup(c)
	defer flushLog()

	logs, err := newPanelClient(cfg).Audit(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch audit log failed: %s\n", err)
		os.Exit(1)
	}
	if err := writeAudit(os.Stdout, logs, c.String("o"), cfg.Main.Timezone); err != nil {
		fmt.Fprintf(os.Stderr, "write audit log failed: %s\n", err)
		os.Exit(1)
	}
}

func writeAudit(w io.Writer, logs []panel.AuditEntry, format string, tz string) error {
	loc := location(tz)
	switch format {
	case "yaml":
		rows := make([]auditRow, 0, len(logs))
		for _, e := range logs {
			ts := e.Field(0)
			if t, ok := e.Time(loc); ok {
				ts = t.Format(dashboard.AuditTimeLayout)
			}
			rows = append(rows, auditRow{Time: ts, Actor: e.Field(1), Action: e.Field(2), Detail: e.Field(3)})
		}
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(rows)
	case "text", "":
		_, err := fmt.Fprintln(w, dashboard.FormatAudit(logs, loc))
		return err
	}
	return fmt.Errorf("unknown output format: %s", format)
}
