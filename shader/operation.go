package shader

import "strings"

// Operation is the arithmetic a node applies between two operands.
type Operation uint8

const (
	// OpAdd adds the operands.
	OpAdd Operation = iota
	// OpSubtract subtracts the second operand from the first.
	OpSubtract
	// OpMultiply multiplies the operands.
	OpMultiply
	// OpDivide divides the first operand by the second.
	OpDivide
)

// String returns the lower-case operation name.
func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// ParseOperation maps an operation name to an Operation. Matching ignores
// case and surrounding space. Empty or unknown names yield OpAdd.
func ParseOperation(s string) Operation {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "subtract", "sub", "-":
		return OpSubtract
	case "multiply", "mul", "*":
		return OpMultiply
	case "divide", "div", "/":
		return OpDivide
	default:
		return OpAdd
	}
}

// Symbol returns the infix operator used in generated source. GLSL and WGSL
// share the same operators.
func (op Operation) Symbol() string {
	switch op {
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "+"
	}
}

// Apply combines two samples on the CPU. Division follows IEEE 754, so a zero
// divisor yields an infinity or NaN.
func (op Operation) Apply(a, b float32) float32 {
	switch op {
	case OpSubtract:
		return a - b
	case OpMultiply:
		return a * b
	case OpDivide:
		return a / b
	default:
		return a + b
	}
}
