// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command lc3 loads one or more LC-3 image files and runs them to
// completion. It is the "external driver" spec.md §1 excludes from the
// core: argument parsing, terminal setup, and image loading all live
// here, wired to the pkg/vm interpreter through pkg/vm.HostIO.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/k0kubun/pp/v3"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"lc3/pkg/loader"
	"lc3/pkg/vm"
	"lc3/pkg/word"
)

var (
	versionFlag bool
	originFlag  string
)

const usage = "lc3 [-origin 0xNNNN] <image-file> [<image-file>...]"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&versionFlag, "version", false, "print the emulator version and exit")
	flag.StringVar(&originFlag, "origin", "", "load every image at this address instead of its own origin word")
	flag.Parse()
}

const version = "lc3 1.0.0"

func run() int {
	if versionFlag {
		fmt.Println(version)
		return 0
	}

	args := flag.Args()
	if len(args) == 0 {
		log.Println(usage)
		return 2
	}

	var originOverride uint16
	haveOverride := false
	if originFlag != "" {
		o, err := word.DecodeHex(originFlag)
		if err != nil {
			log.Println("invalid -origin:", err)
			return 2
		}

		originOverride, haveOverride = o, true
	}

	out := bufio.NewWriter(os.Stdout)
	m := vm.New(newStdIO(bufio.NewReader(os.Stdin), out))

	for _, path := range args {
		if err := loadFile(m, path, originOverride, haveOverride); err != nil {
			log.Println(err)
			return 1
		}
	}

	term := terminalFor(os.Stdin)
	if err := term.EnableRaw(); err != nil {
		log.Println(err)
		return 1
	}
	defer term.Restore()

	abort := make(chan os.Signal, 1)
	signal.Notify(abort, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(abort)

	done := make(chan error, 1)
	go func() { done <- m.Run() }()

	select {
	case <-abort:
		m.Abort()
		<-done
		out.Flush()
		fmt.Fprintln(colorable.NewColorableStdout())
		return -2

	case err := <-done:
		if err != nil {
			reportFatal(m, err)
			return 1
		}
		return 0
	}
}

// loadFile parses one image file and copies it into the machine's memory.
// When haveOverride is set, override replaces the file's own origin word,
// for images meant to be relocated at load time.
func loadFile(m *vm.Machine, path string, override uint16, haveOverride bool) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	origin, words, err := loader.Load(file)
	if err != nil {
		return err
	}

	if haveOverride {
		origin = override
	}

	m.LoadImage(origin, words)
	return nil
}

// terminalFor returns a no-op guard when stdin isn't a real terminal
// (redirected from a file or pipe), and the host-appropriate raw-mode
// adapter otherwise.
func terminalFor(in *os.File) TerminalGuard {
	if !isatty.IsTerminal(in.Fd()) {
		return noopTerminal{}
	}

	return newTerminal()
}

// reportFatal prints a register-file dump for an illegal instruction or
// host I/O failure before the process exits. This is diagnostic output
// on the error path, not an interactive debugger.
func reportFatal(m *vm.Machine, err error) {
	out := colorable.NewColorableStderr()
	fmt.Fprintln(out, "lc3: fatal:", err)

	printer := pp.New()
	printer.SetOutput(out)
	printer.Println(m.Reg)
}

func main() {
	os.Exit(run())
}
