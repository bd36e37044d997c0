package bytecode

type OpCode byte

const (
	OpConstant OpCode = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpLoadVar
	OpSetVar
	OpDefineVar
	OpPrint
	OpJumpIfFalse
	OpJump
	OpLoop // legacy relative backward jump; executed but never emitted
	OpPop
	OpHalt
)

var opNames = [...]string{
	OpConstant:     "CONST",
	OpAdd:          "ADD",
	OpSub:          "SUB",
	OpMul:          "MUL",
	OpDiv:          "DIV",
	OpEqual:        "EQ",
	OpNotEqual:     "NEQ",
	OpLess:         "LT",
	OpLessEqual:    "LE",
	OpGreater:      "GT",
	OpGreaterEqual: "GE",
	OpLoadVar:      "LOAD",
	OpSetVar:       "SET",
	OpDefineVar:    "DEFINE",
	OpPrint:        "PRINT",
	OpJumpIfFalse:  "JMPF",
	OpJump:         "JMP",
	OpLoop:         "LOOP",
	OpPop:          "POP",
	OpHalt:         "HALT",
}

func (op OpCode) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "UNKNOWN"
}
