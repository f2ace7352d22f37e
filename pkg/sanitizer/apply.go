package sanitizer

// Apply runs value through transforms from left to right.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose returns a reusable pipeline of transforms.
// ToXML and ToXHTML are built this way.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
