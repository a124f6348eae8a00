package naming

import "testing"

func TestForLanguage(t *testing.T) {
	tests := []struct {
		lang string
		want Strategy
	}{
		{"", Default{}},
		{"default", Default{}},
		{"Java", Java{}},
		{"go", Go{}},
		{"golang", Go{}},
		{"python", Python{}},
		{" py ", Python{}},
	}
	for _, tt := range tests {
		got, err := ForLanguage(tt.lang)
		if err != nil {
			t.Fatalf("ForLanguage(%q): %v", tt.lang, err)
		}
		if got != tt.want {
			t.Fatalf("ForLanguage(%q) = %T, want %T", tt.lang, got, tt.want)
		}
	}
	if _, err := ForLanguage("cobol"); err == nil {
		t.Fatalf("expected error for unknown language")
	}
}

func TestLanguageStrategies(t *testing.T) {
	components := []string{"directions", "get"}
	tests := []struct {
		name        string
		strategy    Strategy
		apiType     string
		prefix      string
		request     string
		message     string
		responsePkg string
	}{
		{"default", Default{}, "Maps", "", "DirectionsGet", "DirectionsResponse", ""},
		{"java", Java{}, "Maps", "com.google.api.services.maps", "Directions.Get", "DirectionsResponse", "model"},
		{"go", Go{}, "Service", "google.golang.org/api/maps/v1", "DirectionsGetCall", "DirectionsResponse", ""},
		{"python", Python{}, "maps", "googleapiclient.discovery", "directions.get", "DirectionsResponse", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.strategy
			if got := s.APITypeName("maps"); got != tt.apiType {
				t.Fatalf("APITypeName = %q, want %q", got, tt.apiType)
			}
			if got := s.PackagePrefix("maps", "v1"); got != tt.prefix {
				t.Fatalf("PackagePrefix = %q, want %q", got, tt.prefix)
			}
			if got := s.RequestTypeName(components); got != tt.request {
				t.Fatalf("RequestTypeName = %q, want %q", got, tt.request)
			}
			if got := s.MessageTypeName("type.googleapis.com/DirectionsResponse"); got != tt.message {
				t.Fatalf("MessageTypeName = %q, want %q", got, tt.message)
			}
			if got := s.Subpackage(false); got != tt.responsePkg {
				t.Fatalf("Subpackage(false) = %q, want %q", got, tt.responsePkg)
			}
			if got := s.Subpackage(true); got != "" {
				t.Fatalf("Subpackage(true) = %q, want empty", got)
			}
		})
	}
}

func TestCasingHelpers(t *testing.T) {
	if got := upperCamel("url-shortener", "list"); got != "UrlShortenerList" {
		t.Fatalf("upperCamel = %q", got)
	}
	if got := upperCamel("youTube"); got != "YouTube" {
		t.Fatalf("upperCamel must keep inner capitals, got %q", got)
	}
	if got := (Python{}).APITypeName("urlShortener"); got != "url_shortener" {
		t.Fatalf("python api type name = %q", got)
	}
}
