package js_parser

// ErrorKind closes the taxonomy of section 7: every diagnostic the parser
// raises attaches one of these to logger.MsgData.UserDetail, so a caller
// can switch on the failure class without matching message text. Errors
// that internal/js_lexer logs itself carry no ErrorKind (UserDetail is nil).
type ErrorKind uint8

const (
	// Lex errors. The parser attaches ErrUnterminatedTemplate and
	// ErrBadEscape to the template failures it detects; no code attaches the
	// other kinds of this group.
	ErrInvalidCodepoint ErrorKind = iota
	ErrUnterminatedString
	ErrUnterminatedTemplate
	ErrUnterminatedComment
	ErrUnterminatedRegExp
	ErrBadEscape
	ErrBadNumberLiteral
	ErrUnexpectedByteSequence

	// Parse/Expected
	ErrExpectedToken

	// Parse/Restriction
	ErrRestrictedLookahead
	ErrNoLineTerminatorViolated
	ErrInRestricted

	// Parse/Semantic
	ErrInvalidAssignmentTarget
	ErrDuplicateParameter
	ErrWithInStrictMode
	ErrDeleteOfUnqualifiedIdentifier
	ErrCoverInitializedNameOutsidePattern
	ErrSuperOutsidePermittedPosition
	ErrReservedWordAsIdentifier
)
