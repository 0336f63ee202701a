package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lodastack/panelctl/action"
	"github.com/lodastack/panelctl/notify"

	"github.com/oiooj/cli"
)

var CmdRestart = cli.Command{
	Name:        "restart",
	Usage:       "重启服务: restart vpn|bot",
	Description: "确认后重启面板上的服务",
	Action:      runRestart,
	Flags: []cli.Flag{
		configFlag,
		cli.BoolFlag{
			Name:  "y",
			Usage: "不询问，直接确认",
		},
	},
}

var CmdExport = cli.Command{
	Name:        "export",
	Usage:       "导出数据: export csv|json",
	Description: "在浏览器中打开导出链接",
	Action:      runExport,
	Flags: []cli.Flag{
		configFlag,
	},
}

func newDispatcher(c *cli.Context) (*action.Dispatcher, *notify.Notifier) {
	cfg := setup(c)
	n := notify.New(time.Duration(cfg.Notify.Delay) * time.Second)
	n.SetOutput(os.Stdout)

	var confirm action.Confirmer = action.NewPromptConfirmer(os.Stdin, os.Stdout)
	if c.Bool("y") {
		confirm = action.AssumeYes{}
	}
	return action.NewDispatcher(newPanelClient(cfg), confirm, action.BrowserOpener{}, n), n
}

func runRestart(c *cli.Context) {
	service := c.Args().First()
	if service == "" {
		fmt.Fprintln(os.Stderr, "usage: panelctl restart [-y] vpn|bot")
		return
	}
	d, n := newDispatcher(c)
	defer flushLog()
	defer n.Close()
	if d.Restart(context.Background(), service) == action.Failed {
		os.Exit(1)
	}
}

func runExport(c *cli.Context) {
	format := c.Args().First()
	if format == "" {
		fmt.Fprintln(os.Stderr, "usage: panelctl export csv|json")
		return
	}
	d, n := newDispatcher(c)
	defer flushLog()
	defer n.Close()
	if d.ExportData(format) == action.Failed {
		os.Exit(1)
	}
}
