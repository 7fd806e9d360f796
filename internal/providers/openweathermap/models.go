package openweathermap

// CurrentWeatherAPIResponse is the body of /data/2.5/weather
type CurrentWeatherAPIResponse struct {
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	Weather    []Condition `json:"weather"`
	Base       string      `json:"base"`
	Main       *Readings   `json:"main"` // nil when the body has no "main" object
	Visibility int         `json:"visibility"`
	Wind       Wind        `json:"wind"`
	Clouds     struct {
		All int `json:"all"`
	} `json:"clouds"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Cod      int    `json:"cod"`
}

// Condition is one entry of the "weather" array
type Condition struct {
	Id          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Readings is the "main" block shared by current weather and forecast entries
type Readings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type Wind struct {
	Speed float64  `json:"speed"`
	Deg   *float64 `json:"deg,omitempty"` // absent in calm conditions
	Gust  float64  `json:"gust,omitempty"`
}

// GeocodeAPIResponse is one element of the /geo/1.0/direct array
type GeocodeAPIResponse struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names,omitempty"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state,omitempty"`
}

// ForecastAPIResponse is the body of /data/2.5/forecast
type ForecastAPIResponse struct {
	Cod     string          `json:"cod"`
	Message float64         `json:"message"`
	Cnt     int             `json:"cnt"`
	List    []ForecastEntry `json:"list"`
	City    struct {
		Id    int    `json:"id"`
		Name  string `json:"name"`
		Coord struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
		Country    string `json:"country"`
		Population int    `json:"population"`
		Timezone   int    `json:"timezone"`
		Sunrise    int64  `json:"sunrise"`
		Sunset     int64  `json:"sunset"`
	} `json:"city"`
}

// ForecastEntry is one 3 hour step of the forecast
type ForecastEntry struct {
	Dt      int64       `json:"dt"`
	Main    *Readings   `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    Wind        `json:"wind"`
	Pop     float64     `json:"pop"`
	DtTxt   string      `json:"dt_txt"`
}

// errorBody is what the API sends alongside a non-2xx status.
// "cod" is a number on some endpoints and a string on others.
type errorBody struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
