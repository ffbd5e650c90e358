package forecast

import (
	"math"
	"testing"
)

func TestPredictTemperature(t *testing.T) {
	tests := []struct {
		name       string
		data       []float64
		hoursAhead int
		want       float64
	}{
		{"no data uses default", nil, 5, 22.0},
		{"single sample", []float64{18.3}, 10, 18.3},
		{"single hot sample is clamped", []float64{100}, 0, 35.0},
		{"single cold sample is clamped", []float64{-40}, 0, 10.0},
		{"flat series", []float64{20, 20, 20}, 12, 20.0},
		{"rising series now", []float64{10, 11, 12, 13, 14, 15}, 0, 13.07},
		{"rising series extrapolated", []float64{10, 11, 12, 13, 14, 15}, 5, 18.07},
		{"only last six samples count", []float64{-100, -100, 10, 11, 12, 13, 14, 15}, 5, 18.07},
		{"steep rise hits ceiling", []float64{20, 25, 30}, 23, 35.0},
		{"steep fall hits floor", []float64{30, 25, 20}, 23, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictTemperature(tt.data, tt.hoursAhead)
			if got != tt.want {
				t.Errorf("PredictTemperature(%v, %d) = %v, want %v", tt.data, tt.hoursAhead, got, tt.want)
			}
		})
	}
}

func TestPredictHumidity(t *testing.T) {
	tests := []struct {
		name       string
		data       []float64
		hoursAhead int
		want       float64
	}{
		{"no data uses default", nil, 0, 50.0},
		{"single sample", []float64{63}, 7, 63.0},
		{"single sample above ceiling", []float64{99}, 0, 80.0},
		{"half trend", []float64{40, 42}, 4, 45.46},
		{"flat", []float64{55, 55, 55, 55}, 20, 55.0},
		{"dry spell hits floor", []float64{30, 25, 20}, 23, 20.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictHumidity(tt.data, tt.hoursAhead)
			if got != tt.want {
				t.Errorf("PredictHumidity(%v, %d) = %v, want %v", tt.data, tt.hoursAhead, got, tt.want)
			}
		})
	}
}

func TestPredictAirQuality(t *testing.T) {
	byHour := map[int][]float64{10: {40}, 11: {80}}

	tests := []struct {
		name   string
		data   []float64
		target int
		byHour map[int][]float64
		want   float64
	}{
		{"no data uses default", nil, 0, nil, 60.0},
		{"single sample", []float64{50}, 4, map[int][]float64{10: {50}}, 50.0},
		{"single sample below floor", []float64{5}, 4, nil, 30.0},
		{"quiet hour scales down", []float64{40, 80}, 10, byHour, 46.16},
		{"busy hour scales up", []float64{40, 80}, 11, byHour, 92.32},
		{"unseen hour is neutral", []float64{40, 80}, 12, byHour, 69.24},
		{"ceiling", []float64{95, 100}, 11, byHour, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictAirQuality(tt.data, tt.target, tt.byHour)
			if got != tt.want {
				t.Errorf("PredictAirQuality(%v, %d) = %v, want %v", tt.data, tt.target, got, tt.want)
			}
		})
	}
}

func TestPredictPressure(t *testing.T) {
	tests := []struct {
		name       string
		data       []float64
		hoursAhead int
		want       float64
	}{
		{"no data uses default", nil, 3, 775.0},
		{"single sample", []float64{770}, 10, 770.0},
		{"short history stays flat", []float64{760, 770, 780, 790}, 20, 790.0},
		{"five samples stay flat", []float64{760, 765, 770, 775, 780}, 20, 780.0},
		{"six samples use half-window trend", []float64{770, 770, 770, 776, 776, 776}, 10, 782.0},
		{"trend uses the latest six", []float64{700, 700, 770, 770, 770, 776, 776, 776}, 10, 782.0},
		{"falling trend", []float64{780, 780, 780, 774, 774, 774}, 5, 771.0},
		{"single sample above ceiling", []float64{1013}, 0, 800.0},
		{"tie rounds to even", []float64{770.125}, 0, 770.12},
		{"tie rounds up to even", []float64{770.375}, 0, 770.38},
		{"trend hits floor", []float64{790, 790, 790, 760, 760, 760}, 23, 750.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictPressure(tt.data, tt.hoursAhead)
			if got != tt.want {
				t.Errorf("PredictPressure(%v, %d) = %v, want %v", tt.data, tt.hoursAhead, got, tt.want)
			}
		})
	}
}

func TestPredictionsStayWithinBounds(t *testing.T) {
	inputs := [][]float64{
		{-1e6},
		{1e6},
		{-1e6, 1e6},
		{1e6, -1e6, 1e6, -1e6, 1e6, -1e6, 1e6},
		{0, 0, 0, 0, 0, 0},
		{math.MaxFloat64 / 2, math.MaxFloat64 / 2},
		{-273, 5000, -273, 5000},
	}

	for _, data := range inputs {
		byHour := map[int][]float64{0: data}
		for h := 0; h < Hours; h++ {
			if v := PredictTemperature(data, h); v < minTemperature || v > maxTemperature {
				t.Errorf("PredictTemperature(%v, %d) = %v out of range", data, h, v)
			}
			if v := PredictHumidity(data, h); v < minHumidity || v > maxHumidity {
				t.Errorf("PredictHumidity(%v, %d) = %v out of range", data, h, v)
			}
			if v := PredictAirQuality(data, h, byHour); v < minAirQuality || v > maxAirQuality {
				t.Errorf("PredictAirQuality(%v, %d) = %v out of range", data, h, v)
			}
			if v := PredictPressure(data, h); v < minPressure || v > maxPressure {
				t.Errorf("PredictPressure(%v, %d) = %v out of range", data, h, v)
			}
		}
	}
}
