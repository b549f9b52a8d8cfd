package cpu

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
)

// Program is a machine code image, with the source line of every byte.
type Program struct {
	Codes  []uint8 // Bytes, loaded from address 0.
	LineNo []int   // Source line of each byte in Codes.
}

var _programStrip = regexp.MustCompile(`#.*|\s`)

// ParseProgram reads a program of newline delimited binary literals.
//
// Each line is stripped of any '#' comment and of all whitespace. Lines
// left empty are skipped, every other line must be a binary value that
// fits in a byte.
func ParseProgram(in io.Reader) (prog *Program, err error) {
	prog = &Program{}

	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		text := _programStrip.ReplaceAllString(line, "")
		if len(text) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(text, 2, 8)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrParseBinary(text)}
			return
		}

		prog.Codes = append(prog.Codes, uint8(value))
		prog.LineNo = append(prog.LineNo, lineno)
	}

	err = scanner.Err()
	return
}

// Line returns the source line of the byte at address, or 0 if there is none.
func (prog *Program) Line(address int) int {
	if address < 0 || address >= len(prog.LineNo) {
		return 0
	}

	return prog.LineNo[address]
}

// Load pokes the program into the cpu memory, starting at address 0.
// A program larger than memory fails with ErrAddressOutOfRange, leaving
// the part that fits loaded.
func (prog *Program) Load(cpu *Cpu) (err error) {
	for address, code := range prog.Codes {
		err = cpu.Poke(address, code)
		if err != nil {
			return
		}
	}

	return
}
