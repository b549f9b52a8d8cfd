package cpu

// AluOp is an ALU operation type.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // add
	ALU_OP_SUB = AluOp(1) // sub
	ALU_OP_MUL = AluOp(2) // mul
	ALU_OP_DIV = AluOp(3) // div
	ALU_OP_INC = AluOp(4) // inc
	ALU_OP_DEC = AluOp(5) // dec
	ALU_OP_CMP = AluOp(6) // cmp
)

// Alu performs op on a and b.
//
// All arithmetic wraps modulo 256. When store is false there is no output
// to write back: CMP only reports equal, and DIV by zero does nothing.
// INC and DEC ignore b.
func Alu(op AluOp, a, b uint8) (output uint8, equal bool, store bool) {
	store = true

	switch op {
	case ALU_OP_ADD:
		output = a + b
	case ALU_OP_SUB:
		output = a - b
	case ALU_OP_MUL:
		output = a * b
	case ALU_OP_DIV:
		if b == 0 {
			store = false
			return
		}
		output = a / b
	case ALU_OP_INC:
		output = a + 1
	case ALU_OP_DEC:
		output = a - 1
	case ALU_OP_CMP:
		equal = a == b
		store = false
	default:
		store = false
	}

	return
}
