// Package order implements the manufacturing order aggregate and its
// department pipeline state machine.
//
// An order moves through a fixed sequence of departments (Inquiry, Design,
// Production, Machining, Inspection, Completed). Transitions always name
// their target status explicitly; the machine rejects transitions out of
// the terminal Completed state but does not force the pipeline order, so
// a department can send an order back for rework.
package order
