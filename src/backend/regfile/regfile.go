// Package regfile provides the register file of the 32-bit x86 target and the roles the code generator
// assigns to its registers.
package regfile

import "fmt"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// Register is a 32-bit x86 general purpose register.
type Register int

// ---------------------
// ----- Constants -----
// ---------------------

// General purpose registers in encoding order.
const (
	EAX Register = iota
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
)

// Register roles.
const (
	Acc     = EAX // Accumulator: every triple leaves its result here. Also the return value.
	Scratch = EDX // Holds the right operand of arithmetic and comparisons. Clobbered by division.
	Divisor = ECX // Holds the divisor of division.
	SP      = ESP // Stack pointer. Locals and arguments are addressed relative to it.

	SysNum = EAX // System call number.
	SysArg = EBX // First system call argument.
	SysBuf = ECX // Second system call argument.
	SysLen = EDX // Third system call argument.
)

// -------------------
// ----- Globals -----
// -------------------

// regi contains the AT&T syntax names of the registers.
var regi = [...]string{
	"%eax",
	"%ecx",
	"%edx",
	"%ebx",
	"%esp",
	"%ebp",
	"%esi",
	"%edi",
}

// reg8 contains the names of the low byte of registers EAX to EBX.
var reg8 = [...]string{
	"%al",
	"%cl",
	"%dl",
	"%bl",
}

// ---------------------
// ----- Functions -----
// ---------------------

// String returns the assembler string for the register.
func (r Register) String() string {
	if r < 0 || int(r) >= len(regi) {
		return fmt.Sprintf("%%r%d", int(r))
	}
	return regi[r]
}

// Low8 returns the assembler string for the low byte of the register. Only EAX, ECX, EDX and EBX
// have a byte-sized low part; false is returned for the rest.
func (r Register) Low8() (string, bool) {
	if r < 0 || int(r) >= len(reg8) {
		return "", false
	}
	return reg8[r], true
}

// Mem returns the assembler string for the memory operand at offset bytes from the address held in r.
func (r Register) Mem(offset int) string {
	if offset == 0 {
		return fmt.Sprintf("(%s)", r)
	}
	return fmt.Sprintf("%d(%s)", offset, r)
}
