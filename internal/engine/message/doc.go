// Package message defines the closed vocabulary of editing commands.
//
// A Message is a small value: a Kind plus the payload that kind needs
// (a motion Target, a character or a text). The input layer builds
// messages with the constructors in this package; the engine classifies
// them to decide which constraint gates apply.
package message
