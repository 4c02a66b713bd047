// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

// interactive command entry on the controlling terminal
func runConsole(p *processor) error {
	ttyFd, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if err != nil {
		return err
	}
	defer ttyFd.Close()

	oldState, err := terminal.MakeRaw(int(ttyFd.Fd()))
	if err != nil {
		return err
	}
	defer terminal.Restore(int(ttyFd.Fd()), oldState)

	console := terminal.NewTerminal(ttyFd, "avlmap: ")

	// the terminal converts \n to \r\n while in raw mode
	p.out = console

	return interact(p, console)
}

type lineReader interface {
	ReadLine() (string, error)
}

// errors are shown and do not stop the session
func interact(p *processor, console lineReader) error {
	for {
		line, err := console.ReadLine()
		if io.EOF == err {
			return nil
		}
		if err != nil {
			return err
		}
		quit, err := p.run(strings.Fields(line))
		if nil != err {
			fmt.Fprintf(p.out, "error: %s\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}
