package ir

import (
	"regexp"
	"strings"
)

var (
	intType   = regexp.MustCompile(`^u?int[0-9]*$`)
	bytesType = regexp.MustCompile(`^bytes[0-9]*$`)
	arrayType = regexp.MustCompile(`^(.+)\[[0-9]*\]$`)
)

// GoType maps a wire type to the Go type used in generated code. Arrays map
// recursively to slices of the mapped element type. Interface descriptions in
// the wild include exotic types (tuples, custom structs); those map to 'any'
// rather than failing generation.
func GoType(wireType string) string {
	wireType = strings.TrimSpace(wireType)

	if m := arrayType.FindStringSubmatch(wireType); m != nil {
		return "[]" + GoType(m[1])
	}

	switch {
	case wireType == "address":
		return "string"
	case wireType == "string":
		return "string"
	case wireType == "bool":
		return "bool"
	case intType.MatchString(wireType):
		return "*big.Int"
	case bytesType.MatchString(wireType):
		return "[]byte"
	}
	return "any"
}
