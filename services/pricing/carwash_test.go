package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarWashPrice(t *testing.T) {
	tests := []struct {
		name string
		sel  CarWashSelection
		want float64
	}{
		{
			name: "two wheeler flat rate",
			sel:  CarWashSelection{VehicleType: "2_wheeler"},
			want: 250,
		},
		{
			name: "two wheeler ignores wash size and extras",
			sel: CarWashSelection{
				VehicleType:   "2_wheeler",
				WashType:      "premium",
				CarSize:       "large",
				ExtraServices: []string{"Interior Vacuum", "Polish"},
			},
			want: 250,
		},
		{
			name: "four wheeler normal small",
			sel:  CarWashSelection{VehicleType: "4_wheeler", WashType: "normal", CarSize: "small"},
			want: 300,
		},
		{
			name: "four wheeler normal medium",
			sel:  CarWashSelection{VehicleType: "4_wheeler", WashType: "normal", CarSize: "medium"},
			want: 500,
		},
		{
			name: "four wheeler normal large",
			sel:  CarWashSelection{VehicleType: "4_wheeler", WashType: "normal", CarSize: "large"},
			want: 600,
		},
		{
			name: "four wheeler premium small",
			sel:  CarWashSelection{VehicleType: "4_wheeler", WashType: "premium", CarSize: "small"},
			want: 350,
		},
		{
			name: "four wheeler premium medium",
			sel:  CarWashSelection{VehicleType: "4_wheeler", WashType: "premium", CarSize: "medium"},
			want: 550,
		},
		{
			name: "four wheeler premium large with two extras",
			sel: CarWashSelection{
				VehicleType:   "4_wheeler",
				WashType:      "premium",
				CarSize:       "large",
				ExtraServices: []string{"Interior Vacuum", "Polish"},
			},
			want: 850,
		},
		{
			name: "four wheeler missing wash type keeps base at zero",
			sel: CarWashSelection{
				VehicleType:   "4_wheeler",
				CarSize:       "large",
				ExtraServices: []string{"Polish"},
			},
			want: 100,
		},
		{
			name: "four wheeler missing size keeps base at zero",
			sel:  CarWashSelection{VehicleType: "4_wheeler", WashType: "normal"},
			want: 0,
		},
		{
			name: "no vehicle type selected",
			sel:  CarWashSelection{WashType: "premium", CarSize: "large"},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CarWashPrice(tt.sel))
		})
	}
}
