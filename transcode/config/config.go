/*
NAME
  config.go

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config contains the configuration settings for a transcode.
package config

import (
	"github.com/ausocean/aud2wav/codec/adpcm"
	"github.com/ausocean/utils/logging"
)

// Transcode modes.
const (
	// Indicates no option has been set.
	NothingDefined = iota

	ModeRemux  // Re-segment the ADPCM stream into wav IMA ADPCM blocks.
	ModeDecode // Decode to 16-bit PCM wav.
)

// Config provides parameters relevant to transcoding a single AUD file.
type Config struct {
	// Algorithms are the decoder variants used by ModeDecode, one output per
	// algorithm. Remuxing always uses the reference algorithm.
	Algorithms []adpcm.Algorithm

	// BlockSize is the wav block size in bytes including the 4 byte block
	// header, or one of wav.BlockSizeSmallestACM and wav.BlockSizeSmallestAny.
	BlockSize int

	// Compare, when decoding more than one algorithm, logs how far each
	// variant strays from the reference decoding.
	Compare bool

	// Lenient continues with the blocks counted so far when the pre-scan hits
	// a truncated stream or corrupt block header, rather than giving up on
	// the file.
	Lenient bool

	// Logger holds an implementation of the Logger interface as defined in
	// github.com/ausocean/utils/logging. This must be set for transcode to
	// work correctly.
	Logger logging.Logger

	// LogLevel is the transcode logging verbosity level.
	// Valid values are defined by enums from the logging package: logging.Debug,
	// logging.Info, logging.Warning logging.Error, logging.Fatal.
	LogLevel int8

	Mode uint8 // Mode is either ModeRemux or ModeDecode.

	// OutputPath is the path of the first output file. Further outputs, one
	// per extra decoder algorithm, derive their names from the input path.
	OutputPath string
}

// Validate checks for any errors in the config fields and defaults settings
// if particular parameters have not been defined.
func (c *Config) Validate() error {
	for _, v := range Variables {
		if v.Validate != nil {
			v.Validate(c)
		}
	}
	return nil
}

// Update takes a map of configuration variable names and their corresponding
// values, parses the string values and converting into correct type, and then
// sets the config struct fields as appropriate.
func (c *Config) Update(vars map[string]string) {
	for _, value := range Variables {
		if v, ok := vars[value.Name]; ok && value.Update != nil {
			value.Update(c, v)
		}
	}
}

func (c *Config) LogInvalidField(name string, def interface{}) {
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}
