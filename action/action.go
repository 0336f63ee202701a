// Package action dispatches the one-shot administrative commands of the
// panel and reports their outcome as notices.
package action

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/lodastack/panelctl/notify"
	"github.com/lodastack/panelctl/panel"

	"github.com/lodastack/log"
)

// Result of a dispatched action.
type Result int

const (
	Done Result = iota
	// Declined means the user did not confirm, nothing was sent.
	Declined
	Failed
)

func (r Result) String() string {
	switch r {
	case Done:
		return "done"
	case Declined:
		return "declined"
	}
	return "failed"
}

type Confirmer interface {
	Confirm(question string) bool
}

// Opener hands a URL to a new browsing context.
type Opener interface {
	Open(url string) error
}

type Restarter interface {
	Restart(ctx context.Context, service string) error
	ExportURL(format string) string
}

type Dispatcher struct {
	panel    Restarter
	confirm  Confirmer
	opener   Opener
	notifier *notify.Notifier
}

func NewDispatcher(p Restarter, c Confirmer, o Opener, n *notify.Notifier) *Dispatcher {
	return &Dispatcher{
		panel:    p,
		confirm:  c,
		opener:   o,
		notifier: n,
	}
}

// Restart asks for confirmation and then restarts service on the panel.
func (d *Dispatcher) Restart(ctx context.Context, service string) Result {
	name := strings.ToUpper(service)
	if !d.confirm.Confirm(fmt.Sprintf("Restart %s?", name)) {
		log.Infof("restart %s declined", service)
		return Declined
	}

	if err := d.panel.Restart(ctx, service); err != nil {
		if panel.IsStatus(err) {
			err = fmt.Errorf("restart failed: %s", err)
		}
		log.Errorf("restart %s failed: %s", service, err)
		d.notifier.Notify(fmt.Sprintf("Failed to restart %s", service), notify.Error)
		return Failed
	}
	d.notifier.Notify(fmt.Sprintf("%s service restarted", name), notify.Success)
	return Done
}

// ExportData opens the export URL and reports success without waiting for
// the download.
func (d *Dispatcher) ExportData(format string) Result {
	url := d.panel.ExportURL(format)
	if err := d.opener.Open(url); err != nil {
		log.Errorf("export %s failed: %s", format, err)
		d.notifier.Notify("Failed to export data", notify.Error)
		return Failed
	}
	d.notifier.Notify(fmt.Sprintf("Data exported as %s", strings.ToUpper(format)), notify.Success)
	return Done
}

// PromptConfirmer asks on out and reads a y/N answer from in.
type PromptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{in: bufio.NewReader(in), out: out}
}

func (p *PromptConfirmer) Confirm(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// AssumeYes confirms everything, for non-interactive use.
type AssumeYes struct{}

func (AssumeYes) Confirm(string) bool { return true }

// BrowserOpener starts the desktop URL handler.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
