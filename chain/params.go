package chain

import "math/big"

// Params is the loosely-typed parameter map handed to generated handlers by
// external configuration.
type Params map[string]any

// Str returns the string value for key, or "" when absent or mistyped.
func (p Params) Str(key string) string {
	v, _ := p[key].(string)
	return v
}

// Big returns the big-integer value for key. Plain ints and int64s are
// accepted for convenience, since configuration documents carry small numbers
// as native integers.
func (p Params) Big(key string) *big.Int {
	switch v := p[key].(type) {
	case *big.Int:
		return v
	case int:
		return big.NewInt(int64(v))
	case int64:
		return big.NewInt(v)
	case uint64:
		return new(big.Int).SetUint64(v)
	}
	return nil
}

// Bytes returns the byte-sequence value for key, or nil.
func (p Params) Bytes(key string) []byte {
	switch v := p[key].(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	}
	return nil
}

// Bool returns the boolean value for key, or false.
func (p Params) Bool(key string) bool {
	v, _ := p[key].(bool)
	return v
}

// As returns the value for key asserted to T, or T's zero value. Generated
// handlers use it for parameter types without a dedicated accessor.
func As[T any](p Params, key string) T {
	v, _ := p[key].(T)
	return v
}

// Any returns the raw value for key.
func (p Params) Any(key string) any {
	return p[key]
}

// Has reports whether key is present at all.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}
