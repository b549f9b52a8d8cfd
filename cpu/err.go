package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted            = errors.New(f("halted"))
	ErrAddressOutOfRange = errors.New(f("address out of range"))
	ErrRegisterInvalid   = errors.New(f("register invalid"))

	// Encoding errors
	ErrEncodingUnknown = errors.New(f("encoding unknown"))
)

// ErrAddress is an access outside of memory.
type ErrAddress struct {
	Address int
	Size    int
}

func (err ErrAddress) Error() string {
	return f("address %#x out of range (memory size %#x)", err.Address, err.Size)
}

func (err ErrAddress) Unwrap() error {
	return ErrAddressOutOfRange
}

// ErrRegister is a register operand that does not name a general purpose register.
type ErrRegister uint8

func (er ErrRegister) Error() string {
	return f("register r%d invalid", uint8(er))
}

func (er ErrRegister) Unwrap() error {
	return ErrRegisterInvalid
}

// ErrOpcode locates the instruction that failed.
type ErrOpcode struct {
	Address int
	Code    uint8
}

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x at 0x%02x", eo.Code, eo.Address)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseBinary string

func (err ErrParseBinary) Error() string {
	return f("'%v' is not an 8-bit binary literal", string(err))
}
