package models

import (
	"fmt"
	"strings"
)

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func carWashDescription(d *CarWashDetails) string {
	if d.VehicleType == "2_wheeler" {
		return "Two Wheeler Wash"
	}
	desc := fmt.Sprintf("%s Wash - %s Car", titleWord(d.WashType), titleWord(d.CarSize))
	if len(d.ExtraServices) > 0 {
		desc += " + " + strings.Join(d.ExtraServices, ", ")
	}
	return desc
}

func moversDescription(d *MoversDetails) string {
	goods := strings.ReplaceAll(d.GoodsType, "_", " ")
	return fmt.Sprintf("%s - %g KM", goods, d.DistanceKm)
}
