package format

import (
	"strings"

	"github.com/pseudomuto/snowdiff/pkg/parser"
)

// DataType returns the canonical text of a declared type: the upper cased type name,
// its PRECISION/VARYING qualifier, the parameters separated by commas without spaces
// and finally the time zone clause. A nil type renders as the empty string.
//
//	number(38, 0)                     -> NUMBER(38,0)
//	varchar( 16 )                     -> VARCHAR(16)
//	double precision                  -> DOUBLE PRECISION
//	timestamp(3) with local time zone -> TIMESTAMP(3) WITH LOCAL TIME ZONE
func DataType(dt *parser.DataType) string {
	if dt == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToUpper(dt.Name))

	if dt.Qualifier != nil {
		b.WriteString(" " + strings.ToUpper(*dt.Qualifier))
	}

	if len(dt.Params) > 0 {
		params := make([]string, len(dt.Params))
		for i, param := range dt.Params {
			w := &tokenWriter{compact: true}
			for _, tok := range param.Tokens {
				w.element(tok)
			}
			params[i] = w.String()
		}

		b.WriteString("(" + strings.Join(params, ",") + ")")
	}

	if tz := dt.TimeZone; tz != nil {
		b.WriteString(" " + strings.ToUpper(tz.With))
		if tz.Local {
			b.WriteString(" LOCAL")
		}
		b.WriteString(" TIME ZONE")
	}

	return b.String()
}
