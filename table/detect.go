package table

// Kind は列の型
type Kind int

const (
	// Unset はまだデータ行を見ていない列
	Unset Kind = iota
	// Numeric は数値列
	Numeric
	// Categorical はカテゴリ列
	Categorical
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unset"
	}
}

// DetectKind classifies a raw field as Numeric or Categorical.
//
// Surrounding whitespace is ignored, one leading sign is allowed, and the
// rest must be decimal digits with at most one '.'. At least one digit is
// required. This is a lexical test only; "1e5" is Categorical.
func DetectKind(field string) Kind {
	start, end := 0, len(field)
	for start < end && isSpace(field[start]) {
		start++
	}
	for end > start && isSpace(field[end-1]) {
		end--
	}
	if start < end && (field[start] == '+' || field[start] == '-') {
		start++
	}

	digits, dots := 0, 0
	for i := start; i < end; i++ {
		switch c := field[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
			if dots > 1 {
				return Categorical
			}
		default:
			return Categorical
		}
	}
	if digits == 0 {
		return Categorical
	}
	return Numeric
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\r' || c == '\n'
}
