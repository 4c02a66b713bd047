// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/ordmap"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "interactive", HasArg: getoptions.NO_ARGUMENT, Short: 'i'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--interactive] [--config-file=FILE] [command arguments...]", program)
	}

	// read options and parse the optional configuration file
	theConfiguration, err := selectConfiguration(options["config-file"])
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, options["config-file"], err)
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// set up the fault panic log (now that logging is available)
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// ------------------
	// start of real main
	// ------------------

	m := ordmap.New[string, string]()
	for _, item := range theConfiguration.Preload {
		m.Insert(item.Key, item.Value)
	}
	log.Infof("preloaded: %d items  height: %d", m.Len(), m.Height())

	if err := m.Check(); nil != err {
		fault.Panicf("preload produced an invalid tree: %s", err)
	}

	p := newProcessor(logger.New("avlmap"), m, os.Stdout, theConfiguration.Check)

	switch {
	case len(options["interactive"]) > 0:
		err = runConsole(p)
	case len(arguments) > 0:
		_, err = p.run(arguments)
	default:
		err = p.runStream(os.Stdin)
	}
	if nil != err {
		log.Errorf("command error: %s", err)
		exitwithstatus.Message("%s: error: %s", program, err)
	}

	log.Infof("statistics: %+v", m.Statistics())
}
