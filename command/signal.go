package command

import (
	"fmt"
	"os"
	"syscall"

	"github.com/lodastack/log"
	"github.com/oiooj/cli"
)

var CmdStop = cli.Command{
	Name:        "stop",
	Usage:       "停止",
	Description: "停止正在运行的面板监控",
	Action:      runSignal(syscall.SIGTERM),
	Flags: []cli.Flag{
		configFlag,
	},
}

var CmdRefresh = cli.Command{
	Name:        "refresh",
	Usage:       "立即刷新",
	Description: "通知正在运行的面板监控立即刷新指标",
	Action:      runSignal(syscall.SIGUSR1),
	Flags: []cli.Flag{
		configFlag,
	},
}

func runSignal(sig syscall.Signal) func(c *cli.Context) {
	return func(c *cli.Context) {
		setup(c)
		defer flushLog()

		pid, err := readPID()
		if err != nil {
			log.Errorf("read pid file failed: %s", err)
			fmt.Fprintln(os.Stderr, "panelctl is not running")
			return
		}
		if err := syscall.Kill(pid, sig); err != nil {
			log.Errorf("signal %d failed: %s", pid, err)
			fmt.Fprintf(os.Stderr, "signal %d failed: %s\n", pid, err)
		}
	}
}
