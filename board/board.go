// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package board builds a populated memory map from a Starlark description.
//
// A board script places devices with two builtins:
//
//	card(base, size)  # RAM card of size bytes at base
//	rom(base, data)   # ROM at base; data is bytes, a string, or a list of ints
//
// The memory and ISA constants (ADDRESS_MAX, WORD_BITS, ...) and any
// predefines are available as integers.
package board

import (
	"fmt"
	"log"
	"maps"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/retroludos/internal"
	"github.com/ezrec/retroludos/isa"
	"github.com/ezrec/retroludos/mem"
)

// Board evaluates board scripts.
type Board struct {
	Verbose bool // If set, logs script output and device registration.

	predefine map[string]string // Predefines
}

// Predefine defines a new integer constant or redefines an existing one.
func (bd *Board) Predefine(name string, value string) {
	if bd.predefine == nil {
		bd.predefine = map[string]string{name: value}
	} else {
		bd.predefine[name] = value
	}
}

// predeclared returns the constants visible to a script.
func (bd *Board) predeclared() (dict starlark.StringDict, err error) {
	dict = starlark.StringDict{}

	defines := internal.IterSeq2Concat(mem.Defines(), isa.Defines(), maps.All(bd.predefine))
	for name, str := range defines {
		value, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			err = fmt.Errorf("%w: %v=%v", ErrDefine, name, str)
			return
		}
		dict[name] = starlark.MakeInt64(value)
	}

	return
}

// address converts a script integer to a 16-bit value.
func address(fn string, name string, value int) (addr uint16, err error) {
	if value < 0 || value > mem.ADDRESS_MAX {
		err = fmt.Errorf("%v: %v=%d: %w", fn, name, value, ErrArgument)
		return
	}

	addr = uint16(value)
	return
}

// romImage converts a script value into a ROM image.
func romImage(value starlark.Value) (image []byte, err error) {
	switch data := value.(type) {
	case starlark.Bytes:
		image = []byte(string(data))
	case starlark.String:
		image = []byte(string(data))
	case starlark.Indexable:
		image = make([]byte, 0, data.Len())
		for n := range data.Len() {
			var octet int
			octet, err = starlark.AsInt32(data.Index(n))
			if err != nil {
				return
			}
			if octet < 0 || octet > 0xff {
				err = fmt.Errorf("rom: data[%d]=%d: %w", n, octet, ErrArgument)
				return
			}
			image = append(image, byte(octet))
		}
	default:
		err = ErrRomData
	}

	return
}

// Load runs a board script, and returns the memory map it describes.
// src is a filename, string, []byte or io.Reader as for starlark.ExecFile.
func (bd *Board) Load(name string, src any) (mux *mem.Multiplexer, err error) {
	defer func() {
		if err != nil {
			mux = nil
			err = &ErrScript{Name: name, Err: err}
		}
	}()

	pred, err := bd.predeclared()
	if err != nil {
		return
	}

	mux = mem.NewMultiplexer()
	mux.Verbose = bd.Verbose

	pred["card"] = starlark.NewBuiltin("card", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var base, size int
		err := starlark.UnpackArgs(fn.Name(), args, kwargs, "base", &base, "size", &size)
		if err != nil {
			return nil, err
		}

		addr, err := address(fn.Name(), "base", base)
		if err != nil {
			return nil, err
		}
		length, err := address(fn.Name(), "size", size)
		if err != nil {
			return nil, err
		}

		err = mux.AddDevice(addr, mem.NewCard(length))
		if err != nil {
			return nil, err
		}

		return starlark.None, nil
	})

	pred["rom"] = starlark.NewBuiltin("rom", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var base int
		var data starlark.Value
		err := starlark.UnpackArgs(fn.Name(), args, kwargs, "base", &base, "data", &data)
		if err != nil {
			return nil, err
		}

		addr, err := address(fn.Name(), "base", base)
		if err != nil {
			return nil, err
		}

		image, err := romImage(data)
		if err != nil {
			return nil, err
		}

		rom, err := mem.NewRom(image)
		if err != nil {
			return nil, err
		}

		err = mux.AddDevice(addr, rom)
		if err != nil {
			return nil, err
		}

		return starlark.None, nil
	})

	thread := &starlark.Thread{
		Name: name,
		Print: func(thread *starlark.Thread, msg string) {
			if bd.Verbose {
				log.Printf("board: %v: %v", name, msg)
			}
		},
	}

	opts := &syntax.FileOptions{TopLevelControl: true}

	_, err = starlark.ExecFileOptions(opts, thread, name, src, pred)
	if err != nil {
		return
	}

	if bd.Verbose {
		log.Printf("board: %v: %v", name, mux)
	}

	return
}

// Load runs a board script with the default settings.
func Load(name string, src any) (mux *mem.Multiplexer, err error) {
	bd := &Board{}
	return bd.Load(name, src)
}
