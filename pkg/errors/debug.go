package errors

import (
	"errors"
	"fmt"
)

// ErrorDump captures a flattened view of an error chain for log fields.
type ErrorDump struct {
	TopMessage string
	Code       Code
	Chain      []string
}

// Dump walks the error chain and returns the loggable summary.
func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	return d
}
