package probe

import (
	"fmt"
	"io"

	"weather-probe/internal/config"
)

const (
	apiKeysURL = "https://home.openweathermap.org/api_keys"
	indent     = "   "
)

// reporter renders the console report. Write errors are ignored: a broken
// stdout must not turn into a failed check.
type reporter struct {
	w io.Writer
}

func (r reporter) line(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format+"\n", args...)
}

func (r reporter) blank() {
	_, _ = fmt.Fprintln(r.w)
}

func (r reporter) detail(label string, value any) {
	r.line("%s%s: %v", indent, label, value)
}

func (r reporter) missingAPIKey() {
	r.line("❌ %s not found in environment variables", config.APIKeyEnvVar)
	r.line("%sAdd %s=<your key> to your environment or .env file", indent, config.APIKeyEnvVar)
}

func (r reporter) header() {
	r.line("🌤️  Testing OpenWeatherMap API...")
	r.blank()
}

func (r reporter) section(step, name string) {
	r.line("%s  Testing %s API...", step, name)
}

func (r reporter) success(name string) {
	r.line("✅ %s API: SUCCESS", name)
}

func (r reporter) failure(name string, o Outcome) {
	r.line("❌ %s API: FAILED", name)
	if o.Err != nil {
		r.detail("Error", o.Err)
	}
}

func passFail(o Outcome) string {
	if o.Passed() {
		return "✅ PASS"
	}
	return "❌ FAIL"
}

func (r reporter) summary(s Summary) {
	r.line("📊 Test Summary:")
	r.line("%sCurrent Weather: %s", indent, passFail(s.CurrentWeather))
	r.line("%sGeocoding:       %s", indent, passFail(s.Geocoding))
	r.line("%sForecast:        %s", indent, passFail(s.Forecast))
	r.blank()

	if s.AllPassed() {
		r.line("🎉 All tests passed! Your API key is working correctly.")
		r.line("%sThe weather service is ready to use.", indent)
		return
	}

	r.line("⚠️  Some tests failed. Troubleshooting tips:")
	r.line("%s1. New API keys can take up to 2 hours to activate", indent)
	r.line("%s2. Check your API key at %s", indent, apiKeysURL)
	r.line("%s3. Try regenerating your API key if the problem persists", indent)
}
