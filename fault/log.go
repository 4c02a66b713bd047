// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Criticalf - log a formatted string with arguments like
// fmt.Sprintf() prefixed by the caller's location
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(withCaller(format), withCallerArguments(arguments)...)
}

// Panicf - log a formatted message and panic
func Panicf(format string, arguments ...interface{}) {
	internalCriticalf(withCaller(format), withCallerArguments(arguments)...)
	Panic("abort, see last messages in log file")
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf("%s", message)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(message)
}

// caller is two frames up: the exported function's caller
func withCaller(format string) string {
	if _, _, _, ok := runtime.Caller(2); ok {
		return "(%q:%d) " + format
	}
	return format
}

func withCallerArguments(arguments []interface{}) []interface{} {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return arguments
	}
	a := make([]interface{}, 2, 2+len(arguments))
	a[0] = file
	a[1] = line
	return append(a, arguments...)
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
