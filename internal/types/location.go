package types

// LocationPermission tracks the user's last location-sharing decision.
type LocationPermission string

// Permission states.
const (
	PermissionPrompt  LocationPermission = "prompt"
	PermissionGranted LocationPermission = "granted"
	PermissionDenied  LocationPermission = "denied"
)

// UserLocation represents the user's position, captured once per permission
// grant. Address fields are best-effort from reverse geocoding and may be
// absent when the geocoding call failed.
type UserLocation struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	City       string  `json:"city,omitempty"`
	State      string  `json:"state,omitempty"`
	Country    string  `json:"country,omitempty"`
	PostalCode string  `json:"postal_code,omitempty"`
	Address    string  `json:"address,omitempty"`
}

// ResumeTemplate enumerates the export document templates.
type ResumeTemplate string

// Export templates.
const (
	TemplateModern       ResumeTemplate = "modern"
	TemplateClassic      ResumeTemplate = "classic"
	TemplateMinimal      ResumeTemplate = "minimal"
	TemplateCreative     ResumeTemplate = "creative"
	TemplateProfessional ResumeTemplate = "professional"
)

// ResumeStyle configures the exported document's appearance.
type ResumeStyle struct {
	Template     ResumeTemplate `json:"template"`
	PrimaryColor string         `json:"primary_color"`
	FontFamily   string         `json:"font_family"`
	FontSize     string         `json:"font_size"` // small, medium, large
	Spacing      string         `json:"spacing"`   // compact, normal, spacious
}

// DefaultStyle returns the style used when the caller specifies nothing.
func DefaultStyle() ResumeStyle {
	return ResumeStyle{
		Template:     TemplateModern,
		PrimaryColor: "blue",
		FontFamily:   "modern",
		FontSize:     "medium",
		Spacing:      "normal",
	}
}
