package command

import "strings"

// ParseResult holds the outcome of parsing one input line.
type ParseResult struct {
	// Input is the line with surrounding whitespace removed.
	Input string
	// Command is the resolved command, or nil if Input matched nothing.
	Command *Command
}

// Known reports whether the line resolved to a command.
func (p ParseResult) Known() bool {
	return p.Command != nil
}

// Parse trims line and resolves the whole remainder against the registry.
// The line is not lowercased or split: "Look" and "look around" are unknown.
//
// Postcondition: Returns a ParseResult; Command is nil for empty or unknown input.
func (r *Registry) Parse(line string) ParseResult {
	input := strings.TrimSpace(line)
	result := ParseResult{Input: input}
	if input == "" {
		return result
	}
	if cmd, ok := r.Resolve(input); ok {
		result.Command = cmd
	}
	return result
}
