package dom

// DataTableSettings returns the default settings object for a DataTables
// widget with overrides applied on top. Overrides replace top-level keys
// wholesale; nested objects are not merged.
func DataTableSettings(overrides map[string]any) map[string]any {
	settings := map[string]any{
		"scrollX":    true,
		"pageLength": 10,
		"language": map[string]any{
			"search":            "",
			"searchPlaceholder": "Search...",
		},
		"fixedHeader": map[string]any{
			"headerOffset": 72,
		},
	}
	for k, v := range overrides {
		settings[k] = v
	}
	return settings
}
