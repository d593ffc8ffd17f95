//
//  Copyright 2021 The AVFS authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

// Command coreshell exposes the builtin package's shell-style utilities
// (cat, cp, mv, rm, rmdir, mkdir, ln, find, sed, sleep, touch, test, echo,
// date, true, false) as subcommands of a single binary.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	flags "github.com/jessevdk/go-flags"

	"github.com/coreshell/coreshell/builtin"
)

type cmdCat struct {
	Args struct {
		Paths []string `description:"files to concatenate (- for stdin)"`
	} `positional-args:"yes"`
}

func (c *cmdCat) Execute(args []string) error {
	return builtin.Cat(os.Stdout, c.Args.Paths)
}

type cmdCp struct {
	Overwrite bool `short:"f" long:"force" description:"overwrite an existing destination"`
	Args      struct {
		Src string `description:"source file" required:"yes"`
		Dst string `description:"destination file" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func (c *cmdCp) Execute(args []string) error {
	return builtin.Cp(c.Args.Dst, c.Args.Src, c.Overwrite)
}

type cmdMv struct {
	Overwrite bool `short:"f" long:"force" description:"overwrite an existing destination"`
	Args      struct {
		Src string `description:"source entry" required:"yes"`
		Dst string `description:"destination entry" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func (c *cmdMv) Execute(args []string) error {
	return builtin.Mv(c.Args.Dst, c.Args.Src, c.Overwrite)
}

type cmdRm struct {
	Args struct {
		Path string `description:"file to remove" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func (c *cmdRm) Execute(args []string) error {
	_, err := builtin.Rm(c.Args.Path)

	return err
}

type cmdRmdir struct {
	Recursive     bool `short:"r" long:"recursive" description:"remove directory contents too"`
	IgnoreMissing bool `short:"i" long:"ignore-missing" description:"do not fail if the directory does not exist"`
	Args          struct {
		Path string `description:"directory to remove" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func (c *cmdRmdir) Execute(args []string) error {
	_, err := builtin.Rmdir(c.Args.Path, c.Recursive, c.IgnoreMissing)

	return err
}

type cmdMkdir struct {
	Parents bool `short:"p" long:"parents" description:"create missing parent directories"`
	Args    struct {
		Path string `description:"directory to create" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func (c *cmdMkdir) Execute(args []string) error {
	_, err := builtin.Mkdir(c.Args.Path, c.Parents, 0o755)

	return err
}

type cmdLn struct {
	Symbolic bool `short:"s" long:"symbolic" description:"make a symbolic link instead of a hard link"`
	Args     struct {
		Old string `description:"existing entry" required:"yes"`
		New string `description:"link to create" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func (c *cmdLn) Execute(args []string) error {
	return builtin.Ln(c.Args.Old, c.Args.New, c.Symbolic)
}

type cmdFind struct {
	Args struct {
		Root    string `description:"directory to search" required:"yes"`
		Pattern string `description:"path pattern, may use * ** ***" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func (c *cmdFind) Execute(args []string) error {
	return builtin.Find(c.Args.Root, c.Args.Pattern, func(path string) error {
		_, err := fmt.Println(path)

		return err
	})
}

type cmdSed struct {
	Args struct {
		Pattern string `description:"regular expression" required:"yes"`
		Repl    string `description:"replacement (supports $1 group references)" required:"yes"`
		Path    string `description:"file to edit in place" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func (c *cmdSed) Execute(args []string) error {
	return builtin.Sed(c.Args.Path, c.Args.Pattern, c.Args.Repl)
}

type cmdSleep struct {
	Args struct {
		Duration string `description:"duration, e.g. 500ms, 2s" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func (c *cmdSleep) Execute(args []string) error {
	d, err := time.ParseDuration(c.Args.Duration)
	if err != nil {
		return err
	}

	builtin.Sleep(d)

	return nil
}

type cmdTouch struct {
	Args struct {
		Path string `description:"file to touch" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func (c *cmdTouch) Execute(args []string) error {
	return builtin.Touch(c.Args.Path)
}

type cmdTest struct {
	IsFile    bool `short:"f" description:"true if path exists and is a regular file"`
	IsDir     bool `short:"d" description:"true if path exists and is a directory"`
	IsSymlink bool `short:"L" description:"true if path is a symbolic link"`
	Args      struct {
		Path string `description:"path to test" required:"yes"`
	} `positional-args:"yes" required:"yes"`
}

func (c *cmdTest) Execute(args []string) error {
	op := builtin.TestExists

	switch {
	case c.IsFile:
		op = builtin.TestIsFile
	case c.IsDir:
		op = builtin.TestIsDir
	case c.IsSymlink:
		op = builtin.TestIsSymlink
	}

	ok, err := builtin.Test(c.Args.Path, op)
	if err != nil {
		return err
	}

	if !ok {
		os.Exit(1)
	}

	return nil
}

type cmdEcho struct {
	NoNewline bool `short:"n" description:"do not output a trailing newline"`
	Args      struct {
		Words []string `description:"words to print"`
	} `positional-args:"yes"`
}

func (c *cmdEcho) Execute(args []string) error {
	return builtin.Echo(os.Stdout, c.Args.Words, c.NoNewline)
}

type cmdDate struct {
	Args struct {
		Format string `description:"strftime-style format, prefixed with +"`
	} `positional-args:"yes"`
}

func (c *cmdDate) Execute(args []string) error {
	format := c.Args.Format
	if len(format) > 0 && format[0] == '+' {
		format = format[1:]
	}

	return builtin.Date(os.Stdout, format, nil)
}

type cmdUmask struct {
	Args struct {
		Mask string `description:"octal mask to set, e.g. 022"`
	} `positional-args:"yes"`
}

func (c *cmdUmask) Execute(args []string) error {
	if c.Args.Mask == "" {
		return builtin.Umask(os.Stdout, nil)
	}

	m, err := strconv.ParseUint(c.Args.Mask, 8, 32)
	if err != nil {
		return err
	}

	mask := os.FileMode(m)

	return builtin.Umask(os.Stdout, &mask)
}

type cmdTrue struct{}

func (c *cmdTrue) Execute(args []string) error { return builtin.True() }

type cmdFalse struct{}

func (c *cmdFalse) Execute(args []string) error { return builtin.False() }

// rootCommand groups every builtin as a go-flags subcommand.
type rootCommand struct {
	Cat   cmdCat   `command:"cat" description:"concatenate files"`
	Cp    cmdCp    `command:"cp" description:"copy a file"`
	Mv    cmdMv    `command:"mv" description:"move an entry"`
	Rm    cmdRm    `command:"rm" description:"remove a file"`
	Rmdir cmdRmdir `command:"rmdir" description:"remove a directory"`
	Mkdir cmdMkdir `command:"mkdir" description:"create a directory"`
	Ln    cmdLn    `command:"ln" description:"link a file"`
	Find  cmdFind  `command:"find" description:"search a directory tree by pattern"`
	Sed   cmdSed   `command:"sed" description:"replace a pattern in a file"`
	Sleep cmdSleep `command:"sleep" description:"pause for a duration"`
	Touch cmdTouch `command:"touch" description:"create or timestamp a file"`
	Test  cmdTest  `command:"test" description:"evaluate a file predicate"`
	Echo  cmdEcho  `command:"echo" description:"print arguments"`
	Date  cmdDate  `command:"date" description:"print the current time"`
	Umask cmdUmask `command:"umask" description:"get or set the file mode creation mask"`
	True  cmdTrue  `command:"true" description:"always succeed"`
	False cmdFalse `command:"false" description:"always fail"`
}

var root rootCommand

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	parser := flags.NewParser(&root, flags.Default)

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}
