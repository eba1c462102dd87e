package seed

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/twpayne/go-geom"

	"airline_reservation/internal/models"
)

// city pairs a name with its position as an SRID 4326 point (lon, lat).
type city struct {
	name  string
	point *geom.Point
}

func newCity(name string, lat, lon float64) city {
	return city{
		name:  name,
		point: geom.NewPointFlat(geom.XY, []float64{lon, lat}).SetSRID(4326),
	}
}

var destinations = []city{
	newCity("Karachi", 24.871940, 66.988060),
	newCity("Bangkok", 13.921430, 100.595337),
	newCity("Jakarta", -6.174760, 106.827072),
	newCity("Islamabad", 33.607587, 73.100316),
	newCity("New York City", 40.642422, -73.781749),
	newCity("Lahore", 31.521139, 74.406519),
	newCity("Gilgit Baltistan", 35.919108, 74.332838),
	newCity("Jeddah", 21.683647, 39.152862),
	newCity("Riyadh", 24.977080, 46.688942),
	newCity("New Delhi", 28.555764, 77.096520),
}

// Generator produces randomized but schema-valid flight rows for seeding
// the flights table at startup.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Generate returns n synthetic flights. n = 0 yields an empty slice.
// Flight numbers are unique within one batch.
func (g *Generator) Generate(n int) []models.Flight {
	flights := make([]models.Flight, 0, n)
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		f := g.flight()
		for {
			if _, dup := seen[f.FlightNumber]; !dup {
				break
			}
			f.FlightNumber = g.flightNumber()
		}
		seen[f.FlightNumber] = struct{}{}
		flights = append(flights, f)
	}
	return flights
}

func (g *Generator) flight() models.Flight {
	origin, destination := g.pair()

	seats := 75 + g.rng.Intn(426) // [75, 500]
	duration := time.Duration(1+g.rng.Intn(14)) * time.Hour

	departure := time.Now().Truncate(24 * time.Hour)
	arrival := departure.Add(duration)

	return models.Flight{
		FlightSchedule: fmt.Sprintf("%s -> %s", origin.name, destination.name),
		FlightNumber:   g.flightNumber(),
		AvailableSeats: seats,
		FromLocation:   locationString(origin),
		ToLocation:     locationString(destination),
		DepartureTime:  departure,
		ArrivalTime:    arrival,
		FlightTime:     duration.String(),
		Gate:           fmt.Sprintf("G%d", 1+g.rng.Intn(50)),
		Distance:       fmt.Sprintf("%d km", distanceKm(origin, destination)),
		Status:         "As Per Schedule",
	}
}

// pair picks two distinct cities.
func (g *Generator) pair() (city, city) {
	origin := destinations[g.rng.Intn(len(destinations))]
	destination := destinations[g.rng.Intn(len(destinations))]
	for destination.name == origin.name {
		destination = destinations[g.rng.Intn(len(destinations))]
	}
	return origin, destination
}

// flightNumber builds a short code: two uppercase letters, hyphen, three digits.
func (g *Generator) flightNumber() string {
	letters := [2]byte{}
	for i := range letters {
		letters[i] = byte('A' + g.rng.Intn(26))
	}
	return fmt.Sprintf("%c%c-%03d", letters[0], letters[1], g.rng.Intn(1000))
}

func locationString(c city) string {
	return fmt.Sprintf("%s, %f, %f", c.name, c.point.Y(), c.point.X())
}

const earthRadiusKm = 6371.0

// distanceKm is the great-circle distance between two city points,
// rounded to whole kilometres.
func distanceKm(a, b city) int {
	lat1 := a.point.Y() * math.Pi / 180
	lat2 := b.point.Y() * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.point.X() - a.point.X()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return int(math.Round(2 * earthRadiusKm * math.Asin(math.Sqrt(h))))
}
