package output

// T renders user-facing messages for a locale.
type T interface {
	T(locale, key string, data map[string]any) string
}
