package transit

import (
	"fmt"
	"strings"

	"github.com/Madhu-Juttiga/TourMate-2/internal/provider"
)

// BusesFromDirections flattens a multi-route directions payload into the
// canonical bus list: every alternative route's first leg contributes its
// TRANSIT steps, walking and driving segments are dropped. Zero routes
// yield an empty list.
func BusesFromDirections(resp provider.DirectionsResponse) []Bus {
	buses := make([]Bus, 0)
	for routeIdx, route := range resp.Routes {
		if len(route.Legs) == 0 {
			continue
		}
		// Ids number the surviving transit steps, not the raw step list,
		// so a leading walking segment does not shift them.
		transitIdx := 0
		for _, step := range route.Legs[0].Steps {
			if step.TravelMode != "TRANSIT" || step.TransitDetails == nil {
				continue
			}
			details := step.TransitDetails

			number := details.Line.ShortName
			if number == "" {
				number = details.Line.Name
			}
			name := details.Line.Name
			if name == "" {
				name = "Local Bus"
			}

			buses = append(buses, Bus{
				ID:            fmt.Sprintf("%d-%d", routeIdx, transitIdx),
				Number:        number,
				Name:          name,
				Type:          busType(details.Line),
				DepartureTime: details.DepartureTime.Text,
				ArrivalTime:   details.ArrivalTime.Text,
				FareKnown:     false,
				Route:         details.DepartureStop.Name + " - " + details.ArrivalStop.Name,
			})
			transitIdx++
		}
	}
	return buses
}

// busType derives the service class from the vehicle subtype. Express is
// inferred only when a bus line's name carries the keyword; everything else
// defaults to Non-AC.
func busType(line provider.TransitLine) BusType {
	if line.Vehicle.Type != "BUS" {
		return BusTypeNonAC
	}
	if strings.Contains(line.Vehicle.Name, "Express") || strings.Contains(line.Name, "Express") {
		return BusTypeExpress
	}
	return BusTypeNonAC
}
