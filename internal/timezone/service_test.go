package timezone

import (
	"testing"

	"weather-probe/internal/types"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "London, UK",
			latitude:  51.5073219,
			longitude: -0.1276474,
			want:      "Europe/London",
		},
		{
			name:      "New York City",
			latitude:  40.7128,
			longitude: -74.0060,
			want:      "America/New_York",
		},
		{
			name:      "Tokyo, Japan",
			latitude:  35.6762,
			longitude: 139.6503,
			want:      "Asia/Tokyo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(types.NewCoords(tt.latitude, tt.longitude))
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewService_Singleton(t *testing.T) {
	first, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	second, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	if first != second {
		t.Error("NewService() returned different instances")
	}
}
