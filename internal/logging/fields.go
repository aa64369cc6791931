// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldState = "state"
	FieldLine  = "line"
	FieldCol   = "col"

	// Combinator fields.
	FieldCombinator = "combinator"
	FieldAnchorLine = "anchor_line"
	FieldAnchorCol  = "anchor_col"
	FieldShiftLine  = "shift_line"
	FieldShiftCol   = "shift_col"

	// LR driver fields.
	FieldLRState   = "lr_state"
	FieldAction    = "action"
	FieldRule      = "rule"
	FieldSymbol    = "symbol"
	FieldMunch     = "munch"
	FieldLastValid = "last_valid"

	// Grammar diagnostics fields.
	FieldNonterminal = "nonterminal"
	FieldConflicts   = "conflicts"
)
