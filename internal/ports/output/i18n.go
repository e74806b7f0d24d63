package output

// T renders user-facing replies. Locales are Discord locale tags ("en-US",
// "fr"); data fills the message template and may be nil.
type T interface {
	T(locale, key string, data map[string]any) string
}
