package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"rental-viewer/models"
)

// queryParams is the filter selection as sent in the query string.
// Repeated keys select several values (?region=서울&region=경기).
type queryParams struct {
	Regions    []string `form:"region"`
	SubRegions []string `form:"sub_region"`
	Axis1      []string `form:"axis1"`
	Axis2      []string `form:"axis2"`
	AreaMin    *float64 `form:"area_min" binding:"omitempty,gte=0"`
	AreaMax    *float64 `form:"area_max" binding:"omitempty,gte=0"`
	DepositMin *int64   `form:"deposit_min" binding:"omitempty,gte=0"`
	DepositMax *int64   `form:"deposit_max" binding:"omitempty,gte=0"`
	Dedupe     bool     `form:"dedupe"`
}

// bindSelection binds the query string of c. Keys whose values are all
// blank are removed first so an empty form field means "no bound" rather
// than zero.
func bindSelection(c *gin.Context) (models.Selection, error) {
	values := c.Request.URL.Query()
	for k, vs := range values {
		if len(nonEmpty(vs)) == 0 {
			values.Del(k)
		}
	}
	c.Request.URL.RawQuery = values.Encode()

	var q queryParams
	if err := c.ShouldBindQuery(&q); err != nil {
		return models.Selection{}, &bindError{err: err}
	}
	return q.selection(), nil
}

func (q queryParams) selection() models.Selection {
	return models.Selection{
		Regions:     nonEmpty(q.Regions),
		SubRegions:  nonEmpty(q.SubRegions),
		Axis1:       nonEmpty(q.Axis1),
		Axis2:       nonEmpty(q.Axis2),
		AreaMin:     q.AreaMin,
		AreaMax:     q.AreaMax,
		DepositMin:  q.DepositMin,
		DepositMax:  q.DepositMax,
		Deduplicate: q.Dedupe,
	}
}

// nonEmpty drops blank values an HTML form sends for unselected fields.
func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// bindError is a query string that failed parsing or validation.
type bindError struct {
	err error
}

// Error turns the failure into a short user-facing message.
func (e *bindError) Error() string {
	var verrs validator.ValidationErrors
	if !errors.As(e.err, &verrs) {
		return "invalid query: " + e.err.Error()
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s must be %s %s", paramName(fe.Field()), fe.Tag(), fe.Param())
	}
	return "invalid query: " + strings.Join(msgs, "; ")
}

func (e *bindError) Unwrap() error { return e.err }

func paramName(field string) string {
	switch field {
	case "AreaMin":
		return "area_min"
	case "AreaMax":
		return "area_max"
	case "DepositMin":
		return "deposit_min"
	case "DepositMax":
		return "deposit_max"
	}
	return strings.ToLower(field)
}
