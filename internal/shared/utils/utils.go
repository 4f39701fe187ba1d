// Утилитарные функции общего назначения
package utils

import (
	"fmt"
	"strconv"
)

func Ptr[T any](v T) *T {
	return &v
}

func StrPtr(s string) *string {
	return &s
}

// Deref возвращает значение указателя или def, если указатель nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// ParseID разбирает положительный целочисленный идентификатор из строки.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}
