package template_ast

import "fmt"

// DiagnosticCode identifies a class of problem detected while parsing
type DiagnosticCode int

const (
	CodeVOID_ELEMENT_IN_CLOSE_TAG DiagnosticCode = iota
	CodeNONVOID_ELEMENT_USING_VOID_END
	CodeINVALID_DECORATOR_IN_NGCONTAINER
	CodeINVALID_DECORATOR_IN_NGCONTENT
	CodeDUPLICATE_SELECT_DECORATOR
	CodeDUPLICATE_PROJECT_AS_DECORATOR
	CodeNGCONTENT_MUST_CLOSE_IMMEDIATELY
	CodeINVALID_LET_BINDING_IN_NONTEMPLATE
	CodeINVALID_DECORATOR_IN_TEMPLATE
	CodeDUPLICATE_STAR_DIRECTIVE
	CodePROPERTY_NAME_TOO_MANY_FIXES
	CodeELEMENT_DECORATOR_AFTER_PREFIX
	CodeUNTERMINATED_MUSTACHE
	CodeUNOPENED_MUSTACHE
	CodeDANGLING_CLOSE_ELEMENT
	CodeCANNOT_FIND_MATCHING_CLOSE
	CodeEXPECTED_STANDALONE
	CodeNESTING_TOO_DEEP
)

var diagnosticCodeNames = map[DiagnosticCode]string{
	CodeVOID_ELEMENT_IN_CLOSE_TAG:        "VOID_ELEMENT_IN_CLOSE_TAG",
	CodeNONVOID_ELEMENT_USING_VOID_END:   "NONVOID_ELEMENT_USING_VOID_END",
	CodeINVALID_DECORATOR_IN_NGCONTAINER: "INVALID_DECORATOR_IN_NGCONTAINER",
	CodeINVALID_DECORATOR_IN_NGCONTENT:   "INVALID_DECORATOR_IN_NGCONTENT",
	CodeDUPLICATE_SELECT_DECORATOR:       "DUPLICATE_SELECT_DECORATOR",
	CodeDUPLICATE_PROJECT_AS_DECORATOR:   "DUPLICATE_PROJECT_AS_DECORATOR",
	CodeNGCONTENT_MUST_CLOSE_IMMEDIATELY: "NGCONTENT_MUST_CLOSE_IMMEDIATELY",
	CodeINVALID_LET_BINDING_IN_NONTEMPLATE: "INVALID_LET_BINDING_IN_NONTEMPLATE",
	CodeINVALID_DECORATOR_IN_TEMPLATE:    "INVALID_DECORATOR_IN_TEMPLATE",
	CodeDUPLICATE_STAR_DIRECTIVE:         "DUPLICATE_STAR_DIRECTIVE",
	CodePROPERTY_NAME_TOO_MANY_FIXES:     "PROPERTY_NAME_TOO_MANY_FIXES",
	CodeELEMENT_DECORATOR_AFTER_PREFIX:   "ELEMENT_DECORATOR_AFTER_PREFIX",
	CodeUNTERMINATED_MUSTACHE:            "UNTERMINATED_MUSTACHE",
	CodeUNOPENED_MUSTACHE:                "UNOPENED_MUSTACHE",
	CodeDANGLING_CLOSE_ELEMENT:           "DANGLING_CLOSE_ELEMENT",
	CodeCANNOT_FIND_MATCHING_CLOSE:       "CANNOT_FIND_MATCHING_CLOSE",
	CodeEXPECTED_STANDALONE:              "EXPECTED_STANDALONE",
	CodeNESTING_TOO_DEEP:                 "NESTING_TOO_DEEP",
}

var diagnosticCodeMessages = map[DiagnosticCode]string{
	CodeVOID_ELEMENT_IN_CLOSE_TAG:        "void elements cannot be used in a close tag",
	CodeNONVOID_ELEMENT_USING_VOID_END:   "only void or SVG elements can use \"/>\"",
	CodeINVALID_DECORATOR_IN_NGCONTAINER: "only annotations and star directives are valid on <ng-container>",
	CodeINVALID_DECORATOR_IN_NGCONTENT:   "only \"select\" and \"ngProjectAs\" are valid on <ng-content>",
	CodeDUPLICATE_SELECT_DECORATOR:       "a \"select\" decorator is already present",
	CodeDUPLICATE_PROJECT_AS_DECORATOR:   "an \"ngProjectAs\" decorator is already present",
	CodeNGCONTENT_MUST_CLOSE_IMMEDIATELY: "<ng-content> must be closed immediately",
	CodeINVALID_LET_BINDING_IN_NONTEMPLATE: "\"let-\" bindings are only valid on <template>",
	CodeINVALID_DECORATOR_IN_TEMPLATE:    "star and banana decorators are not valid on <template>",
	CodeDUPLICATE_STAR_DIRECTIVE:         "a star directive is already present",
	CodePROPERTY_NAME_TOO_MANY_FIXES:     "property names support at most three dot-separated segments",
	CodeELEMENT_DECORATOR_AFTER_PREFIX:   "expected a decorator name after the prefix",
	CodeUNTERMINATED_MUSTACHE:            "unterminated \"{{\"",
	CodeUNOPENED_MUSTACHE:                "\"}}\" with no preceding \"{{\"",
	CodeDANGLING_CLOSE_ELEMENT:           "close tag has no matching open tag",
	CodeCANNOT_FIND_MATCHING_CLOSE:       "cannot find a matching close tag",
	CodeEXPECTED_STANDALONE:              "expected a comment, element, interpolation or text",
	CodeNESTING_TOO_DEEP:                 "element nesting exceeds the configured maximum depth",
}

// String returns the name of the diagnostic code
func (c DiagnosticCode) String() string {
	if name, ok := diagnosticCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// Message returns human-readable text for the diagnostic code
func (c DiagnosticCode) Message() string {
	return diagnosticCodeMessages[c]
}

// Diagnostic records a single problem and the source span it occurred at
type Diagnostic struct {
	Code   DiagnosticCode
	Offset int
	Length int
}

// String renders the diagnostic as "CODE@offset+length: message"
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s@%d+%d: %s", d.Code, d.Offset, d.Length, d.Code.Message())
}

// ExceptionHandler is the polymorphic error-handling strategy every parsing
// call reports through. Implementations differ only in whether parsing
// continues after a report, never in what is detected.
type ExceptionHandler interface {
	Handle(diagnostic Diagnostic)
}

// RecoveringExceptionHandler records every reported problem and lets parsing
// continue using synthesized recovery values
type RecoveringExceptionHandler struct {
	Diagnostics []Diagnostic
}

// NewRecoveringExceptionHandler creates a new RecoveringExceptionHandler
func NewRecoveringExceptionHandler() *RecoveringExceptionHandler {
	return &RecoveringExceptionHandler{}
}

// Handle appends the diagnostic to the caller-visible list
func (h *RecoveringExceptionHandler) Handle(diagnostic Diagnostic) {
	h.Diagnostics = append(h.Diagnostics, diagnostic)
}

// ThrowingExceptionHandler aborts parsing on the first reported problem
type ThrowingExceptionHandler struct{}

// Handle signals a fatal parse error, propagated to the caller of Parse
func (ThrowingExceptionHandler) Handle(diagnostic Diagnostic) {
	panic(&ParserError{Diagnostic: diagnostic})
}

// ParserError is the fatal error produced by the throwing handler
type ParserError struct {
	Diagnostic Diagnostic
}

// Error implements the error interface
func (e *ParserError) Error() string {
	return e.Diagnostic.String()
}
