package email

// PreviewData holds sample values for rendering each template locally.
var PreviewData = map[Template]map[string]any{
	TemplateRecordChanged: {
		"Entity":     "Speaker",
		"Action":     "updated",
		"RecordID":   42,
		"RecordName": "Jane Doe",
		"OccurredAt": "Fri, 14 Mar 2025 09:30:00 UTC",
	},
}

// Preview renders name with its sample data.
func Preview(name Template) (string, error) {
	return Render(name, PreviewData[name])
}
