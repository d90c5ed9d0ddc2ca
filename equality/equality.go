package equality

import (
	"math"
	"reflect"
)

// Equatable lets a type carry its own equality relation.
// Deep consults it before falling back to structural comparison.
type Equatable interface {
	Equals(other any) bool
}

// Identical reports reference/value identity: == for comparable values,
// same reference for slices, maps, pointers, channels and functions.
// Two nils are identical, whatever their static types were, and two NaNs
// of the same float type are identical: the relation is "same value", not
// IEEE comparison, so it stays reflexive.
func Identical(a, b any) bool {
	return identicalValues(reflect.ValueOf(a), reflect.ValueOf(b))
}

func identicalValues(va, vb reflect.Value) bool {
	if !va.IsValid() || !vb.IsValid() {
		return !va.IsValid() && !vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		// Same length and same backing array; zero-length slices are
		// identical regardless of backing, there is nothing left to
		// distinguish them by. Contents are never inspected here.
		return va.Len() == vb.Len() && (va.Len() == 0 || va.Pointer() == vb.Pointer())
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Float32, reflect.Float64:
		fa, fb := va.Float(), vb.Float()
		if math.IsNaN(fa) && math.IsNaN(fb) {
			return true
		}
		return fa == fb
	}
	if va.Comparable() {
		return va.Equal(vb)
	}
	return false
}

// Shallow reports whether a and b are equal one level deep: identical, or
// both object-like with the same key set and Identical values per key.
// Nested sequences and mappings are compared by reference, never
// recursively. An object-like value never equals a primitive or nil.
// Pointers are followed, so *T compares like T.
func Shallow(a, b any) bool {
	if Identical(a, b) {
		return true
	}
	va, vb := indirect(reflect.ValueOf(a)), indirect(reflect.ValueOf(b))
	if identicalValues(va, vb) {
		return true
	}
	switch {
	case isSequence(va) && isSequence(vb):
		if va.Len() != vb.Len() {
			return false
		}
		for i := 0; i < va.Len(); i++ {
			if !Identical(va.Index(i).Interface(), vb.Index(i).Interface()) {
				return false
			}
		}
		return true

	case va.Kind() == reflect.Map && vb.Kind() == reflect.Map:
		if va.Type().Key() != vb.Type().Key() || va.Len() != vb.Len() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			w := vb.MapIndex(iter.Key())
			if !w.IsValid() || !Identical(iter.Value().Interface(), w.Interface()) {
				return false
			}
		}
		return true

	case va.Kind() == reflect.Struct && vb.Kind() == reflect.Struct:
		if va.Type() != vb.Type() {
			return false
		}
		t := va.Type()
		exported := 0
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			exported++
			if !Identical(va.Field(i).Interface(), vb.Field(i).Interface()) {
				return false
			}
		}
		// a struct hiding all of its state only ever matches by identity
		return exported > 0

	default:
		return false
	}
}

// Deep reports whether a and b are structurally equal: identical, equal per
// the left side's Equatable implementation, or object-like with recursively
// deep-equal contents. Sequence lengths and mapping key sets must match
// exactly. Pointers are followed, so *T compares like T. Cyclic input
// recurses without bound.
func Deep(a, b any) bool {
	if Identical(a, b) {
		return true
	}
	if eq, ok := a.(Equatable); ok {
		return eq.Equals(b)
	}
	va, vb := indirect(reflect.ValueOf(a)), indirect(reflect.ValueOf(b))
	if identicalValues(va, vb) {
		return true
	}
	switch {
	case isSequence(va) && isSequence(vb):
		if va.Len() != vb.Len() {
			return false
		}
		for i := 0; i < va.Len(); i++ {
			if !Deep(va.Index(i).Interface(), vb.Index(i).Interface()) {
				return false
			}
		}
		return true

	case va.Kind() == reflect.Map && vb.Kind() == reflect.Map:
		if va.Type().Key() != vb.Type().Key() || va.Len() != vb.Len() {
			return false
		}
		iter := va.MapRange()
		for iter.Next() {
			w := vb.MapIndex(iter.Key())
			if !w.IsValid() || !Deep(iter.Value().Interface(), w.Interface()) {
				return false
			}
		}
		return true

	case va.Kind() == reflect.Struct && vb.Kind() == reflect.Struct:
		if va.Type() != vb.Type() {
			return false
		}
		t := va.Type()
		exported := 0
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			exported++
			if !Deep(va.Field(i).Interface(), vb.Field(i).Interface()) {
				return false
			}
		}
		// a struct hiding all of its state only ever matches by identity
		return exported > 0

	default:
		return false
	}
}

func isSequence(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

// indirect follows non-nil pointers so that *T compares like T.
// A nil pointer stays opaque and only ever matches by identity.
func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	return v
}
