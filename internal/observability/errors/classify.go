// Package errors names error types for metric labels and log fields.
package errors

import (
	goerrors "errors"
	"reflect"
	"strings"
)

// Classify returns the innermost concrete error type as a label-safe name,
// e.g. "pgconn_pgerror" or "net_operror". Joined errors classify by their first member.
func Classify(err error) string {
	if err == nil {
		return ""
	}
	return typeName(innermost(err))
}

func innermost(err error) error {
	for {
		switch u := err.(type) {
		case interface{ Unwrap() []error }:
			errs := u.Unwrap()
			if len(errs) == 0 || errs[0] == nil {
				return err
			}
			err = errs[0]
		default:
			next := goerrors.Unwrap(err)
			if next == nil {
				return err
			}
			err = next
		}
	}
}

func typeName(err error) string {
	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.String() == "" {
		return "unknown"
	}
	return strings.ToLower(strings.ReplaceAll(t.String(), ".", "_"))
}
