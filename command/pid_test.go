package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lodastack/panelctl/config"
)

func TestPIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panelctl.pid")
	if err := writePID(path); err != nil {
		t.Fatalf("write pid failed: %s", err)
	}

	old := config.C
	defer func() { config.C = old }()
	config.C = &config.Config{Main: config.MainConfig{PID: path}}

	pid, err := readPID()
	if err != nil || pid != os.Getpid() {
		t.Fatalf("expect pid %d, got %d %v", os.Getpid(), pid, err)
	}
}

func TestWritePIDError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "panelctl.pid")
	if err := writePID(path); err == nil {
		t.Fatalf("expect error for unwritable pid path")
	}
}
