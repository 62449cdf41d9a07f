package tracing

import (
	"context"
	"testing"
)

func TestSetup(t *testing.T) {
	shutdown := Setup("tooldex-test", "test")
	if shutdown == nil {
		t.Fatal("Setup returned nil shutdown func")
	}

	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown returned error: %v", err)
	}
}

func TestSampleRatio(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want float64
	}{
		{name: "unset uses default", env: "", want: 0.1},
		{name: "valid ratio", env: "0.5", want: 0.5},
		{name: "full sampling", env: "1", want: 1},
		{name: "invalid falls back", env: "abc", want: 0.1},
		{name: "out of range falls back", env: "1.5", want: 0.1},
		{name: "negative falls back", env: "-0.2", want: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TRACE_SAMPLE_RATIO", tt.env)
			if got := sampleRatio(); got != tt.want {
				t.Errorf("sampleRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}
