// Package kernel holds the primitives shared by every aggregate of the
// pressing domain:
//   - UUID: aggregate identifier, invalid as a zero value
//   - Actor and Role: who performs an operation
//   - Clock: the time source used to stamp transitions
package kernel
