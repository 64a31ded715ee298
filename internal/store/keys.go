package store

// keyPrefix namespaces reading preferences inside a shared database.
const keyPrefix = "reading:"

// Keys for persisted reading preferences. There is deliberately no key for
// the auto-read flag: it is session-only.
const (
	KeyLightColorIndex  = keyPrefix + "light_color_index"
	KeyDarkColorIndex   = keyPrefix + "dark_color_index"
	KeyLineSpacing      = keyPrefix + "line_spacing"
	KeyParagraphSpacing = keyPrefix + "paragraph_spacing"
	KeyFontSize         = keyPrefix + "font_size"
	KeyPageType         = keyPrefix + "page_type"
	KeyAutoReadMode     = keyPrefix + "auto_read_mode"
	KeyAutoReadSpeed    = keyPrefix + "auto_read_speed"
)

// PersistedKeys lists every key the preferences store reads at startup.
func PersistedKeys() []string {
	return []string{
		KeyLightColorIndex,
		KeyDarkColorIndex,
		KeyLineSpacing,
		KeyParagraphSpacing,
		KeyFontSize,
		KeyPageType,
		KeyAutoReadMode,
		KeyAutoReadSpeed,
	}
}
