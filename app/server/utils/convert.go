package utils

// P 取字面量的指针，用于构造补丁
func P[T any](v T) *T {
	return &v
}
