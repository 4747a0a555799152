package errtone

// Reason keys used to select a remediation hint. Kinds with only one
// plausible cause (EncodeValue, Truncation, Config) pass "".
const (
	ReasonIndentRemainder = "indent/remainder"
	ReasonIndentJump      = "indent/jump"
	ReasonIndentTab       = "indent/tab"
	ReasonRowWidth        = "validation/row-width"
	ReasonCount           = "validation/count"
	ReasonDuplicateKey    = "validation/duplicate-key"
	ReasonBadEscape       = "syntax/escape"
	ReasonBadHeader       = "syntax/header"
	ReasonBadNumber       = "syntax/number"
	ReasonTrailing        = "syntax/trailing"
)

var hints = map[string]string{
	ReasonIndentRemainder: "indent must be a multiple of the configured step",
	ReasonIndentJump:      "a line may indent at most one step deeper than its parent",
	ReasonIndentTab:       "indentation must be spaces; tabs are never accepted",
	ReasonRowWidth:        "every tabular row must supply exactly as many fields as the header declares",
	ReasonCount:           "the declared [N] must equal the number of elements actually present",
	ReasonDuplicateKey:    "each key may appear at most once within the same object",
	ReasonBadEscape:       `supported escapes are \" \\ \n \r \t \uXXXX`,
	ReasonBadHeader:       "an array header is key?[N]{fields}?: with a non-negative integer N",
	ReasonBadNumber:       "numeric tokens must match -?(0|[1-9][0-9]*)(\\.[0-9]+)?([eE][+-]?[0-9]+)? or be quoted",
	ReasonTrailing:        "remove the extra characters after the complete value, or quote the string",
}

func hintFor(kind Kind, reasonKey string) string {
	if h, ok := hints[reasonKey]; ok {
		return h
	}
	switch kind {
	case EncodeValue:
		return "encode only null, bool, finite numbers, strings, arrays, and objects"
	case Truncation:
		return "the document ended while a structure opened earlier was still open"
	case Config:
		return "indent must be 1-8 and delimiter must be comma, tab, or pipe"
	default:
		return ""
	}
}
