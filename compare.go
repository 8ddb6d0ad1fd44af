package gosorter

import (
	"cmp"
	"fmt"
	"reflect"
	"time"

	"github.com/samber/lo"
)

// compareValues performs a three-way comparison of two sort key values using
// the natural ordering of their runtime type. Supported are signed and
// unsigned integers, floats, strings, bools (false < true) and time.Time.
// Values of differing or unsupported kinds are compared by their fmt-formatted
// form so that the ordering stays total.
func compareValues(a, b any) int {
	if at, aOk := a.(time.Time); aOk {
		if bt, bOk := b.(time.Time); bOk {
			return at.Compare(bt)
		}
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.IsValid() && bv.IsValid() {
		switch {
		case isIntKind(av.Kind()) && isIntKind(bv.Kind()):
			return cmp.Compare(av.Int(), bv.Int())
		case isUintKind(av.Kind()) && isUintKind(bv.Kind()):
			return cmp.Compare(av.Uint(), bv.Uint())
		case isFloatKind(av.Kind()) && isFloatKind(bv.Kind()):
			return cmp.Compare(av.Float(), bv.Float())
		case av.Kind() == reflect.String && bv.Kind() == reflect.String:
			return cmp.Compare(av.String(), bv.String())
		case av.Kind() == reflect.Bool && bv.Kind() == reflect.Bool:
			return cmp.Compare(boolRank(av.Bool()), boolRank(bv.Bool()))
		}
	}

	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func isUintKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func boolRank(b bool) int {
	return lo.Ternary(b, 1, 0)
}
