package console

import (
	"strconv"

	"github.com/olekukonko/tablewriter"

	"airline_reservation/internal/models"
)

const timeLayout = "2006-01-02 15:04:05"
const dateLayout = "2006-01-02"

func (c *Console) newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(headers)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetRowLine(true)
	return table
}

// FlightTable renders flights in the grid layout used by every listing.
func (c *Console) FlightTable(flights []models.Flight) {
	if len(flights) == 0 {
		c.Println("No flights found.")
		return
	}
	table := c.newTable([]string{
		"Flight Schedule", "Flight No.", "Seats", "From", "To",
		"Departure Time", "Arrival Time", "Flight Time", "Gate", "Distance", "Status",
	})
	for _, f := range flights {
		table.Append([]string{
			f.FlightSchedule,
			f.FlightNumber,
			strconv.Itoa(f.AvailableSeats),
			f.FromLocation,
			f.ToLocation,
			f.DepartureTime.Format(timeLayout),
			f.ArrivalTime.Format(timeLayout),
			f.FlightTime,
			f.Gate,
			f.Distance,
			f.Status,
		})
	}
	table.Render()
}

// PassengerTable renders identity rows without the password column.
func (c *Console) PassengerTable(users []models.User) {
	if len(users) == 0 {
		c.Println("No passengers found")
		return
	}
	table := c.newTable([]string{"ID", "Name", "Age", "Email", "Phone Number"})
	for _, u := range users {
		table.Append([]string{
			strconv.FormatUint(uint64(u.ID), 10),
			u.Name,
			strconv.Itoa(u.Age),
			u.Email,
			u.PhoneNumber,
		})
	}
	table.Render()
}

// BookingTable renders a passenger's bookings joined with flight info.
func (c *Console) BookingTable(details []models.BookingDetail) {
	table := c.newTable([]string{
		"ID", "BookingDate", "FlightNumber", "BookedTickets", "FromLocation",
		"ToLocation", "DepartureTime", "ArrivalTime", "FlightTime", "Gate", "Status",
	})
	for _, d := range details {
		table.Append([]string{
			strconv.FormatUint(uint64(d.BookingID), 10),
			d.BookingDate.Format(dateLayout),
			d.FlightNumber,
			strconv.Itoa(d.Tickets),
			d.FromLocation,
			d.ToLocation,
			d.DepartureTime.Format(timeLayout),
			d.ArrivalTime.Format(timeLayout),
			d.FlightTime,
			d.Gate,
			d.Status,
		})
	}
	table.Render()
}

// PassengerBookingTable renders everyone booked on one flight. The
// password column is shown in cleartext, matching the rest of the system.
func (c *Console) PassengerBookingTable(rows []models.PassengerBooking) {
	table := c.newTable([]string{"ID", "Name", "Age", "Email", "Password", "Phone Number"})
	for _, r := range rows {
		table.Append([]string{
			strconv.FormatUint(uint64(r.UserID), 10),
			r.Name,
			strconv.Itoa(r.Age),
			r.Email,
			r.Password,
			r.PhoneNumber,
		})
	}
	table.Render()
}
