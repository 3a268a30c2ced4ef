package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host     string   `koanf:"host"`
	Port     int      `koanf:"port"`
	Database Database `koanf:"db"`
	Export   Export   `koanf:"export"`
	Defaults Defaults `koanf:"defaults"`
}

type Database struct {
	Path string `koanf:"path"`
}

type Export struct {
	// Directory is where generated CSV files are written by the file sink.
	Directory string `koanf:"directory"`
}

type Defaults struct {
	// HoursPerEntry pre-fills new day entries. Clamped to 1.0-12.0.
	HoursPerEntry float64 `koanf:"hoursperentry"`
	// DisplayWeekends controls whether calendar grids include Sat/Sun columns.
	DisplayWeekends bool `koanf:"displayweekends"`
}

const (
	minHoursPerEntry = 1.0
	maxHoursPerEntry = 12.0
)

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "localhost",
		Port: 8181,
		Database: Database{
			Path: "wfhlog.db",
		},
		Export: Export{
			Directory: "exports",
		},
		Defaults: Defaults{
			HoursPerEntry:   8.0,
			DisplayWeekends: false,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "WFH_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "WFH_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	if app.Defaults.HoursPerEntry < minHoursPerEntry {
		log.Warnf("defaults.hoursPerEntry %.1f below minimum, clamping to %.1f", app.Defaults.HoursPerEntry, minHoursPerEntry)
		app.Defaults.HoursPerEntry = minHoursPerEntry
	}
	if app.Defaults.HoursPerEntry > maxHoursPerEntry {
		log.Warnf("defaults.hoursPerEntry %.1f above maximum, clamping to %.1f", app.Defaults.HoursPerEntry, maxHoursPerEntry)
		app.Defaults.HoursPerEntry = maxHoursPerEntry
	}

	return app, nil
}
