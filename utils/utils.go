package utils

import "fmt"

func Ptr[T any](v T) *T {
	return &v
}

func Format[T any](ptr *T) string {
	if ptr == nil {
		return ""
	}
	return fmt.Sprintf("%v", *ptr)
}

func FormatBoolean(yesno bool, yes string, no string) string {
	if yesno {
		return yes
	}
	return no
}
