package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/form"
)

var formDecoder = newFormDecoder()

func newFormDecoder() *form.Decoder {
	d := form.NewDecoder()
	// Numeric inputs arrive as free text; anything unparsable is 0.
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		if len(vals) == 0 {
			return 0, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(vals[0]))
		if err != nil {
			return 0, nil
		}
		return n, nil
	}, int(0))
	return d
}

// decodeForm parses r's form body into v.
func decodeForm(r *http.Request, v interface{}) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return formDecoder.Decode(v, r.PostForm)
}
