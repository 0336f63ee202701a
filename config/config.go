package config

import (
	"sync"

	"github.com/BurntSushi/toml"
)

const (
	//APP NAME
	AppName = "panelctl"
	//Usage
	Usage = "VPN admin panel console"
	//Vresion Num
	Version = "0.1.0"
	//Author Nmae
	Author = "Devlopers LodaStack"
	//Email Address
	Email = "devlopers@lodastack.com"
)

const (
	//PID FILE
	PID = "/var/run/panelctl.pid"
)

// defaults, unit noted per field
const (
	DefaultInterval       = 60 // second
	DefaultNotifyDelay    = 5  // second
	DefaultHealthInterval = 30 // second
	DefaultLocale         = "ru"
	DefaultNS             = "panel.vpn.loda"
)

var (
	mux = new(sync.RWMutex)
	C   = new(Config)
)

type Config struct {
	Main     MainConfig     `toml:"main"`
	Notify   NotifyConfig   `toml:"notify"`
	Report   ReportConfig   `toml:"report"`
	Exporter ExporterConfig `toml:"exporter"`
	Log      LogConfig      `toml:"log"`
}

type MainConfig struct {
	PanelAddr    string `toml:"panelAddr"`
	Session      string `toml:"session"`
	Interval     int    `toml:"interval"`
	Timeout      int    `toml:"timeout"`
	SingleFlight bool   `toml:"singleflight"`
	Timezone     string `toml:"timezone"`
	Locale       string `toml:"locale"`
	PID          string `toml:"pid"`
}

type NotifyConfig struct {
	Delay int `toml:"delay"`
}

type ReportConfig struct {
	Enable         bool   `toml:"enable"`
	NS             string `toml:"NS"`
	HealthInterval int    `toml:"healthInterval"`
}

type ExporterConfig struct {
	Listen string `toml:"listen"`
}

type LogConfig struct {
	Dir           string `toml:"logdir"`
	Level         string `toml:"loglevel"`
	Logrotatenum  int    `toml:"logrotatenum"`
	Logrotatesize uint64 `toml:"logrotatesize"`
}

func ParseConfig(path string) error {
	mux.Lock()
	defer mux.Unlock()

	c := new(Config)
	if _, err := toml.DecodeFile(path, c); err != nil {
		return err
	}
	c.fill()
	C = c
	return nil
}

// Decode parses config from a string, used by tests and embedded defaults.
func Decode(data string) (*Config, error) {
	c := new(Config)
	if _, err := toml.Decode(data, c); err != nil {
		return nil, err
	}
	c.fill()
	return c, nil
}

func GetConfig() *Config {
	mux.RLock()
	defer mux.RUnlock()
	return C
}

func (c *Config) fill() {
	if c.Main.Interval <= 0 {
		c.Main.Interval = DefaultInterval
	}
	if c.Main.Locale == "" {
		c.Main.Locale = DefaultLocale
	}
	if c.Main.PID == "" {
		c.Main.PID = PID
	}
	if c.Notify.Delay <= 0 {
		c.Notify.Delay = DefaultNotifyDelay
	}
	if c.Report.NS == "" {
		c.Report.NS = DefaultNS
	}
	if c.Report.HealthInterval <= 0 {
		c.Report.HealthInterval = DefaultHealthInterval
	}
}
