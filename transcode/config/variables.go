/*
DESCRIPTION
  variables.go contains a list of structs that provide a variable Name, type in
  a string format, a function for updating the variable in the Config struct
  from a string, and finally, a validation function to check the validity of the
  corresponding field value in the Config.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ausocean/aud2wav/codec/adpcm"
	"github.com/ausocean/aud2wav/codec/wav"
	"github.com/ausocean/utils/logging"
)

// Config map Keys.
const (
	KeyAlgorithms = "Algorithms"
	KeyBlockSize  = "BlockSize"
	KeyCompare    = "Compare"
	KeyLenient    = "Lenient"
	KeyLogging    = "logging"
	KeyMode       = "mode"
	KeyOutputPath = "OutputPath"
)

// Config map parameter types.
const (
	typeString = "string"
	typeInt    = "int"
	typeBool   = "bool"
)

// Default variable values.
const (
	defaultMode      = ModeRemux
	defaultBlockSize = wav.DefaultBlockSize
	defaultVerbosity = logging.Error
)

var defaultAlgorithms = []adpcm.Algorithm{adpcm.AlgTable}

// Variables describes the variables that can be used for transcode control.
// These structs provide the name and type of variable, a function for updating
// this variable in a Config, and a function for validating the value of the variable.
var Variables = []struct {
	Name     string
	Type     string
	Update   func(*Config, string)
	Validate func(*Config)
}{
	{
		Name: KeyAlgorithms,
		Type: "enums:0,1,2,3,all",
		Update: func(c *Config, v string) {
			if strings.ToLower(strings.TrimSpace(v)) == "all" {
				c.Algorithms = append([]adpcm.Algorithm(nil), adpcm.Algorithms...)
				return
			}
			c.Algorithms = nil
			for _, s := range strings.Split(v, ",") {
				a, err := adpcm.ParseAlgorithm(s)
				if err != nil {
					c.Logger.Warning("invalid Algorithms param", "value", s)
					continue
				}
				c.Algorithms = append(c.Algorithms, a)
			}
		},
		Validate: func(c *Config) {
			seen := map[adpcm.Algorithm]bool{}
			var algs []adpcm.Algorithm
			for _, a := range c.Algorithms {
				if !a.Valid() || seen[a] {
					continue
				}
				seen[a] = true
				algs = append(algs, a)
			}
			if len(algs) == 0 {
				c.LogInvalidField(KeyAlgorithms, defaultAlgorithms)
				algs = append(algs, defaultAlgorithms...)
			}
			c.Algorithms = algs
		},
	},
	{
		Name:   KeyBlockSize,
		Type:   typeInt,
		Update: func(c *Config, v string) { c.BlockSize = parseInt(KeyBlockSize, v, c) },
		Validate: func(c *Config) {
			if _, err := wav.ParseBlockSize(c.BlockSize); err != nil {
				c.LogInvalidField(KeyBlockSize, defaultBlockSize)
				c.BlockSize = defaultBlockSize
			}
		},
	},
	{
		Name:   KeyCompare,
		Type:   typeBool,
		Update: func(c *Config, v string) { c.Compare = parseBool(KeyCompare, v, c) },
	},
	{
		Name:   KeyLenient,
		Type:   typeBool,
		Update: func(c *Config, v string) { c.Lenient = parseBool(KeyLenient, v, c) },
	},
	{
		Name: KeyLogging,
		Type: "enums:Debug,Info,Warning,Error,Fatal",
		Update: func(c *Config, v string) {
			switch v {
			case "Debug":
				c.LogLevel = logging.Debug
			case "Info":
				c.LogLevel = logging.Info
			case "Warning":
				c.LogLevel = logging.Warning
			case "Error":
				c.LogLevel = logging.Error
			case "Fatal":
				c.LogLevel = logging.Fatal
			default:
				c.Logger.Warning("invalid Logging param", "value", v)
			}
		},
		Validate: func(c *Config) {
			switch c.LogLevel {
			case logging.Debug, logging.Info, logging.Warning, logging.Error, logging.Fatal:
			default:
				c.LogInvalidField("LogLevel", defaultVerbosity)
				c.LogLevel = defaultVerbosity
			}
		},
	},
	{
		Name: KeyMode,
		Type: "enums:Remux,Decode",
		Update: func(c *Config, v string) {
			c.Mode = parseEnum(
				KeyMode,
				v,
				map[string]uint8{
					"remux":  ModeRemux,
					"decode": ModeDecode,
				},
				c,
			)
		},
		Validate: func(c *Config) {
			switch c.Mode {
			case ModeRemux, ModeDecode:
			default:
				c.LogInvalidField(KeyMode, defaultMode)
				c.Mode = defaultMode
			}
		},
	},
	{
		Name:   KeyOutputPath,
		Type:   typeString,
		Update: func(c *Config, v string) { c.OutputPath = v },
	},
}

func parseInt(n, v string, c *Config) int {
	_v, err := strconv.Atoi(v)
	if err != nil {
		c.Logger.Warning(fmt.Sprintf("expected integer for param %s", n), "value", v)
	}
	return _v
}

func parseBool(n, v string, c *Config) (b bool) {
	switch strings.ToLower(v) {
	case "true":
		b = true
	case "false":
		b = false
	default:
		c.Logger.Warning(fmt.Sprintf("expect bool for param %s", n), "value", v)
	}
	return
}

func parseEnum(n, v string, enums map[string]uint8, c *Config) uint8 {
	_v, ok := enums[strings.ToLower(v)]
	if !ok {
		c.Logger.Warning(fmt.Sprintf("invalid value for %s param", n), "value", v)
	}
	return _v
}
