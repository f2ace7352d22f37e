package sanitizer

// InvalidPolicy controls what the sequence coercions do with elements that are
// neither numeric nor coerce to a positive integer.
type InvalidPolicy uint8

const (
	// DiscardInvalid drops invalid elements from the result.
	DiscardInvalid InvalidPolicy = iota
	// KeepInvalid keeps every element, coerced to its integer value.
	KeepInvalid
)

// isValidNumber is the element predicate used by DiscardInvalid.
func isValidNumber(v Value) bool {
	return isNumericValue(v) || ToInteger(v) > 0
}

// ToIntegers coerces every element with ToInteger. The result never has more
// elements than the input and keeps the input order.
func ToIntegers(values []Value, policy InvalidPolicy) []int64 {
	result := make([]int64, 0, len(values))
	for _, v := range values {
		if policy == DiscardInvalid && !isValidNumber(v) {
			continue
		}
		result = append(result, ToInteger(v))
	}
	return result
}

// ToIntegerMap is ToIntegers for keyed input; keys of retained entries are preserved.
func ToIntegerMap[K comparable](values map[K]Value, policy InvalidPolicy) map[K]int64 {
	result := make(map[K]int64, len(values))
	for k, v := range values {
		if policy == DiscardInvalid && !isValidNumber(v) {
			continue
		}
		result[k] = ToInteger(v)
	}
	return result
}

// ToNumerics coerces every element with ToNumeric.
func ToNumerics(values []Value, policy InvalidPolicy) []Value {
	result := make([]Value, 0, len(values))
	for _, v := range values {
		if policy == DiscardInvalid && !isValidNumber(v) {
			continue
		}
		result = append(result, ToNumeric(v))
	}
	return result
}

func ToNumericMap[K comparable](values map[K]Value, policy InvalidPolicy) map[K]Value {
	result := make(map[K]Value, len(values))
	for k, v := range values {
		if policy == DiscardInvalid && !isValidNumber(v) {
			continue
		}
		result[k] = ToNumeric(v)
	}
	return result
}

// ToEntitiesMany applies ToEntities to every element.
func ToEntitiesMany(ss []string) []string {
	return TransformSlice(ss, ToEntities)
}

// FromEntitiesMany applies FromEntities to every element.
func FromEntitiesMany(ss []string) []string {
	return TransformSlice(ss, FromEntities)
}

// TransformSlice maps every element into a new slice of the same length.
func TransformSlice[T any, R any](slice []T, transform func(T) R) []R {
	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = transform(item)
	}
	return result
}
