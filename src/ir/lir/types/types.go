// Package types defines the closed set of triple instruction types.
package types

import "fmt"

// ----------------------------
// ----- Type definitions -----
// ----------------------------

// InstructionType defines the kind of a triple. Code generators switch over every InstructionType.
type InstructionType uint

// ---------------------
// ----- Constants -----
// ---------------------

const (
	ReturnInstruction       InstructionType = iota // Return from function.
	DeclareInstruction                             // Declare a local variable.
	DataInstruction                                // Addition, subtraction or multiplication.
	DivideInstruction                              // Signed integer division.
	CompareInstruction                             // Relational operation producing 0 or 1.
	StoreInstruction                               // Assignment.
	BranchInstruction                              // Jump to the end of an if body if the condition is zero.
	LabelInstruction                               // End of an if body.
	PrintInstruction                               // Write one character to stdout.
	FunctionCallInstruction                        // Call a function.
	NumInstructionTypes                            // Number of instruction types.
)

// -------------------
// ----- Globals -----
// -------------------

// iTyp provides string literals for InstructionType constants.
var iTyp = [NumInstructionTypes]string{
	"ReturnInstruction",
	"DeclareInstruction",
	"DataInstruction",
	"DivideInstruction",
	"CompareInstruction",
	"StoreInstruction",
	"BranchInstruction",
	"LabelInstruction",
	"PrintInstruction",
	"FunctionCallInstruction",
}

// ---------------------
// ----- Functions -----
// ---------------------

// String provides a print friendly string representation of the InstructionType.
func (inst InstructionType) String() string {
	if inst >= NumInstructionTypes {
		return fmt.Sprintf("InstructionType(%d)", uint(inst))
	}
	return iTyp[inst]
}
