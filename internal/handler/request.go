package handler

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// GetPullsRequest represents the query of GET /pulls.
type GetPullsRequest struct {
	Owner     string `form:"owner" binding:"required,excludesall=/?#"`
	Repo      string `form:"repo" binding:"required,excludesall=/?#"`
	StartDate string `form:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"required,datetime=2006-01-02"`
	Token     string `form:"token"`
}

// bindingMessage turns a binding failure into a message naming the query parameter.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid query parameters"
	}

	fe := verrs[0]
	param := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s parameter is required", param)
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", param)
	case "excludesall":
		return fmt.Sprintf("%s must not contain '/', '?' or '#'", param)
	default:
		return fmt.Sprintf("%s parameter is invalid", param)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
