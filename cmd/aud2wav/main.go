/*
DESCRIPTION
  aud2wav converts Westwood AUD files holding mono 16-bit IMA ADPCM to wav,
  either as IMA ADPCM or decoded to PCM, and can encode PCM wav files to AUD.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package aud2wav is a command-line program for converting AUD files to wav.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ausocean/aud2wav/codec/wav"
	"github.com/ausocean/aud2wav/transcode"
	"github.com/ausocean/aud2wav/transcode/config"
	"github.com/ausocean/utils/logging"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Current software version.
const version = "v1.0.0"

// Logging configuration.
const (
	logMaxSize   = 50 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logSuppress  = false
)

const usage = `usage: aud2wav [flags] file.aud [file.aud ...]

Converts mono 16-bit IMA ADPCM AUD files to wav. By default the ADPCM stream
is remuxed into wav IMA ADPCM blocks without loss.

Block sizes:
  512        default, most compatible
  8..2760    multiple of 4, compatible with Windows ACM codecs
  4..32771   any size, may not play everywhere
  -1         smallest file among ACM compatible sizes
  -2         smallest file among all sizes

Flags:
`

func main() {
	var (
		outPath     = flag.String("o", "", "output file name for the first input (ignored with -4)")
		blockSize   = flag.Int("b", wav.DefaultBlockSize, "wav block size in bytes, see above")
		decode      = flag.Bool("d", false, "decode to 16-bit PCM instead of remuxing")
		all         = flag.Bool("4", false, "decode with all four algorithms, one output each (implies -d)")
		compare     = flag.Bool("compare", false, "with -4, log how far each algorithm strays from the reference")
		lenient     = flag.Bool("lenient", false, "convert the blocks read before a truncated or corrupt block")
		encode      = flag.Bool("encode", false, "encode PCM wav inputs to AUD instead")
		logLevel    = flag.String("LogLevel", "Info", "log level: Debug, Info, Warning, Error or Fatal")
		logPath     = flag.String("log", "", "also log to this file, rotated")
		showVersion = flag.Bool("version", false, "show version")
	)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var w io.Writer = os.Stderr
	if *logPath != "" {
		// Create lumberjack logger to handle logging to file.
		fileLog := &lumberjack.Logger{
			Filename:   *logPath,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		}
		defer fileLog.Close()
		w = io.MultiWriter(os.Stderr, fileLog)
	}
	log := logging.New(logging.Info, w, logSuppress)

	cfg := config.Config{Logger: log}
	cfg.Update(map[string]string{
		config.KeyLogging:   *logLevel,
		config.KeyBlockSize: strconv.Itoa(*blockSize),
		config.KeyCompare:   strconv.FormatBool(*compare),
		config.KeyLenient:   strconv.FormatBool(*lenient),
	})
	switch {
	case *all:
		cfg.Update(map[string]string{config.KeyMode: "decode", config.KeyAlgorithms: "all"})
	case *decode:
		cfg.Update(map[string]string{config.KeyMode: "decode"})
	}
	if !*all {
		cfg.OutputPath = *outPath
	}
	cfg.Validate()
	log.SetLevel(cfg.LogLevel)
	if *blockSize != cfg.BlockSize {
		log.Fatal("invalid block size", "blocksize", *blockSize)
	}

	log.Debug("starting aud2wav", "version", version, "inputs", flag.NArg())
	failed := 0
	for i, in := range flag.Args() {
		c := cfg
		if i > 0 {
			c.OutputPath = ""
		}

		var err error
		if *encode {
			err = encodeFile(in, c.OutputPath, log)
		} else {
			err = convert(in, c)
		}
		if err != nil {
			log.Error("could not convert file", "path", in, "error", err.Error())
			failed++
		}
	}
	if failed != 0 {
		log.Error("some files could not be converted", "failed", failed, "total", flag.NArg())
		os.Exit(1)
	}
}

// convert transcodes the AUD file at path in according to c.
func convert(in string, c config.Config) error {
	t, err := transcode.New(c)
	if err != nil {
		return err
	}
	_, err = t.Run(in)
	return err
}
