package server

import (
	"fmt"
	"html/template"
	"net/url"

	"rental-viewer/models"
)

var templateFuncs = template.FuncMap{
	// has reports whether key in params holds v; with no values for key
	// the "all" option counts as selected.
	"has": func(params url.Values, key, v string) bool {
		vs := params[key]
		if len(vs) == 0 {
			return v == models.AllOption
		}
		for _, x := range vs {
			if x == v {
				return true
			}
		}
		return false
	},
	// param returns the first value of key, or fallback when absent.
	"param": func(params url.Values, key string, fallback any) string {
		if v := params.Get(key); v != "" {
			return v
		}
		return fmt.Sprint(fallback)
	},
	"all": func() string { return models.AllOption },
}
