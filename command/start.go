package command

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/lodastack/panelctl/config"
	"github.com/lodastack/panelctl/dashboard"
	"github.com/lodastack/panelctl/exporter"
	"github.com/lodastack/panelctl/notify"
	"github.com/lodastack/panelctl/page"
	"github.com/lodastack/panelctl/render"
	"github.com/lodastack/panelctl/report"
	"github.com/lodastack/panelctl/scheduler"

	"github.com/lodastack/log"
	"github.com/oiooj/cli"
	"github.com/prometheus/client_golang/prometheus"
)

var CmdStart = cli.Command{
	Name:        "start",
	Usage:       "启动",
	Description: "启动面板监控，定时刷新指标",
	Action:      runStart,
	Flags: []cli.Flag{
		configFlag,
	},
}

func runStart(c *cli.Context) {
	cfg := setup(c)
	//save pid to file
	if err := writePID(cfg.Main.PID); err != nil {
		log.Errorf("write pid file %s failed: %s, stop and refresh will not find this process", cfg.Main.PID, err)
	}

	reg := prometheus.NewRegistry()
	client := newPanelClient(cfg)

	notifier := notify.New(time.Duration(cfg.Notify.Delay) * time.Second)
	notifier.SetOutput(os.Stdout)

	board := render.NewBoard(render.NewTextDrawer(os.Stdout), render.NewPromDrawer(reg))
	board.InitDefault()

	reporter := report.NewReporter(cfg.Report.NS, cfg.Report.Enable, reg)
	d := dashboard.New(client, board, page.New(page.Default...), notifier, page.NewFormatter(cfg.Main.Locale))
	d.SetReporter(reporter)
	d.SetLocation(location(cfg.Main.Timezone))
	d.SetOutput(os.Stdout)

	poller := scheduler.NewPoller("metrics", time.Duration(cfg.Main.Interval)*time.Second, d.Cycle)
	poller.SetSingleFlight(cfg.Main.SingleFlight)
	poller.Start()
	go d.RefreshAuditLog(context.Background())

	health := report.NewHealthWorker(client.HealthURL(), time.Duration(cfg.Report.HealthInterval)*time.Second, reporter)
	go health.Run()

	var srv *exporter.Server
	if cfg.Exporter.Listen != "" {
		srv = exporter.NewServer(cfg.Exporter.Listen, exporter.NewRouter(reg, notifier))
		srv.Start()
	}

	wait(poller, d)

	poller.Stop()
	health.Stop()
	if srv != nil {
		srv.Close()
	}
	notifier.Close()
	os.Remove(cfg.Main.PID)
	flushLog()
}

// wait blocks until a stop signal. SIGUSR1 triggers a manual refresh.
func wait(p *scheduler.Poller, d *dashboard.Dashboard) {
	message := make(chan os.Signal, 1)
	signal.Notify(message, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGUSR1, os.Interrupt)
	defer signal.Stop(message)

	for s := range message {
		if s == syscall.SIGUSR1 {
			log.Info("receive refresh signal")
			p.Trigger()
			go d.RefreshAuditLog(context.Background())
			continue
		}
		log.Info("receive signal, exit...")
		return
	}
}

func writePID(path string) error {
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0744)
}

func readPID() (int, error) {
	b, err := os.ReadFile(config.GetConfig().Main.PID)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(string(b))
}
