package command

import (
	"time"

	"github.com/lodastack/panelctl/config"
	"github.com/lodastack/panelctl/panel"
	"github.com/lodastack/panelctl/requests"

	"github.com/lodastack/log"
	"github.com/oiooj/cli"
)

var logBackend *log.FileBackend

var configFlag = cli.StringFlag{
	Name:  "c",
	Value: "/etc/panelctl.conf",
	Usage: "配置文件路径，默认位置：/etc/panelctl.conf",
}

// setup parses the config file and initializes logging.
func setup(c *cli.Context) *config.Config {
	err := config.ParseConfig(c.String("c"))
	if err != nil {
		log.Fatalf("Parse Config File Error: %s", err.Error())
	}
	initLog()
	return config.GetConfig()
}

func initLog() {
	if config.C.Log.Dir == "" {
		return
	}
	var err error
	logBackend, err = log.NewFileBackend(config.C.Log.Dir)
	if err != nil {
		log.Fatalf("failed to new log backend")
	}
	log.SetLogging(config.C.Log.Level, logBackend)
	logBackend.Rotate(config.C.Log.Logrotatenum, config.C.Log.Logrotatesize)
}

func flushLog() {
	if logBackend != nil {
		logBackend.Flush()
	}
}

func newPanelClient(cfg *config.Config) *panel.Client {
	req, err := requests.NewClient(cfg.Main.PanelAddr, cfg.Main.Session, time.Duration(cfg.Main.Timeout)*time.Second)
	if err != nil {
		log.Fatalf("new panel client failed: %s", err)
	}
	return panel.NewClient(cfg.Main.PanelAddr, req)
}

func location(tz string) *time.Location {
	if tz == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Errorf("load timezone %s failed: %s", tz, err)
		return time.Local
	}
	return loc
}
