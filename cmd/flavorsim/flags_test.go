package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/san-kum/flavorsim/internal/config"
	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/params"
)

func TestParseScanParam(t *testing.T) {
	tests := []struct {
		in      string
		want    config.ScanParameter
		wantErr bool
	}{
		{in: "life_time::B_d:5", want: config.ScanParameter{Name: "life_time::B_d", Steps: 5}},
		{in: "CKM::A:0.8:0.9:3", want: config.ScanParameter{Name: "CKM::A", Min: 0.8, Max: 0.9, Steps: 3}},
		{in: "Re{c9}:-1:1:21", want: config.ScanParameter{Name: "Re{c9}", Min: -1, Max: 1, Steps: 21}},
		{in: "hbar", wantErr: true},
		{in: "hbar:1", wantErr: true},
		{in: ":5", wantErr: true},
		{in: "CKM::A:x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseScanParam(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"mass::B_d=5.3", " CKM::A = 0.8 "})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"mass::B_d": 5.3, "CKM::A": 0.8}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"mass::B_d", "=1", "x=abc"} {
		if _, err := parseAssignments([]string{bad}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseOptionFlags(t *testing.T) {
	got, err := parseOptionFlags([]string{"q=s", "l=mu,model=SM", "q=u"})
	if err != nil {
		t.Fatal(err)
	}
	want := observable.Options{"q": "u", "l": "mu", "model": "SM"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := parseOptionFlags([]string{"novalue"}); err == nil {
		t.Error("expected error for option without value")
	}
}

func TestScanAxes(t *testing.T) {
	p := params.Defaults()
	axes, err := scanAxes(p, []config.ScanParameter{
		{Name: "CKM::A", Steps: 3},
		{Name: "CKM::lambda", Min: 0.2, Max: 0.3, Steps: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{0.814, 0.840}, []float64{axes[0].Values[0], axes[0].Values[2]}); diff != "" {
		t.Errorf("own-range axis mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.2, 0.3}, axes[1].Values); diff != "" {
		t.Errorf("explicit axis mismatch (-want +got):\n%s", diff)
	}

	if _, err := scanAxes(p, []config.ScanParameter{{Name: "no::such", Steps: 2}}); err == nil {
		t.Error("expected error for unknown parameter")
	}
}
