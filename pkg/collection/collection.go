// Package collection provides generic, functional-style helpers for slices.
// The in-memory repositories are built on these: listing queries are
// Filter + SortBy over insertion-ordered slices.
package collection

import "sort"

// Map transforms each element of s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns the elements of s for which fn returns true, preserving
// order.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// First returns the first element matching fn, or (zero, false).
func First[T any](s []T, fn func(T) bool) (T, bool) {
	for _, v := range s {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// IndexOf returns the index of the first element matching fn, or -1.
func IndexOf[T any](s []T, fn func(T) bool) int {
	for i := range s {
		if fn(s[i]) {
			return i
		}
	}
	return -1
}

// Contains reports whether any element of s satisfies fn.
func Contains[T any](s []T, fn func(T) bool) bool {
	_, ok := First(s, fn)
	return ok
}

// SortBy sorts s in place with a stable sort, so equal elements keep their
// insertion order.
func SortBy[T any](s []T, less func(a, b T) bool) []T {
	sort.SliceStable(s, func(i, j int) bool { return less(s[i], s[j]) })
	return s
}
