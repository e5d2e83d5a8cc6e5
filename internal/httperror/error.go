// Package httperror defines the JSON shape for error responses.
package httperror

type Error struct {
	Message string `json:"error" example:"invalid or missing active category code"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
