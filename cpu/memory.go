package cpu

const (
	MEMORY_SIZE = 256 // Default memory size, in bytes.
)

// Memory is a fixed size, zero initialized, byte addressable store.
// Every access outside of 0..Size()-1 fails with ErrAddressOutOfRange.
type Memory struct {
	Data []uint8
}

// NewMemory creates a memory of size bytes.
func NewMemory(size int) (mem *Memory) {
	mem = &Memory{
		Data: make([]uint8, size),
	}

	return
}

// Size returns the number of addressable bytes.
func (mem *Memory) Size() int {
	return len(mem.Data)
}

func (mem *Memory) check(address int) (err error) {
	if address < 0 || address >= len(mem.Data) {
		err = ErrAddress{Address: address, Size: len(mem.Data)}
	}
	return
}

// Read the byte at address.
func (mem *Memory) Read(address int) (value uint8, err error) {
	err = mem.check(address)
	if err != nil {
		return
	}

	value = mem.Data[address]
	return
}

// Write value to the byte at address.
func (mem *Memory) Write(address int, value uint8) (err error) {
	err = mem.check(address)
	if err != nil {
		return
	}

	mem.Data[address] = value
	return
}

// Reset zeroes all of memory.
func (mem *Memory) Reset() {
	clear(mem.Data)
}
