package main

import (
	"log"
	"os"

	"airline_reservation/internal/config"
	"airline_reservation/internal/console"
	"airline_reservation/internal/handlers"
	"airline_reservation/internal/logger"
	"airline_reservation/internal/manual"
	"airline_reservation/internal/menu"
	"airline_reservation/internal/repository"
	"airline_reservation/internal/seed"
)

const seedFlightCount = 5

func main() {
	// Structured logging to file
	logger.Setup()

	// Connect to the database and ensure the schema
	db := config.OpenDB()

	term := console.New(os.Stdin, os.Stdout)

	users := repository.NewUserRepository(db)
	flights := repository.NewFlightRepository(db)
	bookings := repository.NewBookingRepository(db)

	// Seed a fresh batch of demo flights for this run
	generated := seed.NewGenerator().Generate(seedFlightCount)
	if len(generated) > 0 {
		term.Printf("Generating %d flights...\n", len(generated))
		if err := flights.CreateBatch(generated); err != nil {
			log.Fatalf("failed to insert seed flights: %v", err)
		}
		term.FlightTable(generated)
	}
	term.Println("Database setup completed.")

	session := &menu.Session{}
	auth := handlers.NewAuth(users, term, session)
	admin := handlers.NewAdmin(users, flights, bookings, term, session)
	passenger := handlers.NewPassenger(users, flights, bookings, term, session)
	debug := handlers.NewDebug(db, term)

	mainMenu := &menu.Menu{Title: "Main Menu", Items: []menu.Item{
		{Label: "Exit", Run: func() error { return menu.ErrExit }},
		{Label: "Login as Admin", Run: func() error { return auth.Login(true) }},
		{Label: "Register as Admin", Run: func() error { return auth.Register(true) }},
		{Label: "Login as Passenger", Run: func() error { return auth.Login(false) }},
		{Label: "Register as Passenger", Run: func() error { return auth.Register(false) }},
		{Label: "Display User Manual", Run: func() error { term.Println(manual.Text); return nil }},
		{Label: "(debug) fetch_users_table", Run: debug.DumpUsers},
		{Label: "(debug) fetch_flights_table", Run: debug.DumpFlights},
		{Label: "(debug) fetch_bookings_table", Run: debug.DumpBookings},
		{Label: "(debug) clear_tables", Run: debug.ClearTables},
	}}

	adminMenu := &menu.Menu{Title: "Admin Menu", Items: []menu.Item{
		{Label: "Add new Passenger", Run: admin.AddNewPassenger},
		{Label: "Search for Passenger", Run: admin.SearchForPassenger},
		{Label: "Update Passenger data", Run: admin.UpdatePassengerData},
		{Label: "Delete Passenger", Run: admin.DeletePassenger},
		{Label: "Display all Passengers", Run: admin.DisplayAllPassengers},
		{Label: "Display all flights registered by a Passenger", Run: admin.DisplayFlightsByPassenger},
		{Label: "Display all registered passengers in a Flight", Run: admin.DisplayPassengersForFlight},
		{Label: "Delete Flight", Run: admin.DeleteFlight},
		{Label: "Back to Main Menu/Logout...", Run: admin.Logout},
	}}

	passengerMenu := &menu.Menu{Title: "Passenger Menu", Items: []menu.Item{
		{Label: "Book a flight", Run: passenger.BookFlight},
		{Label: "Update personal data", Run: passenger.UpdatePersonalData},
		{Label: "Delete Account", Run: passenger.DeleteAccount},
		{Label: "Display Flight Schedule", Run: passenger.DisplayFlightSchedule},
		{Label: "Cancel booking", Run: passenger.CancelBooking},
		{Label: "View my bookings", Run: passenger.ViewMyBookings},
		{Label: "Back to Main Menu/Logout...", Run: passenger.Logout},
	}}

	term.MainBanner()

	system := &menu.System{
		Main:      mainMenu,
		Admin:     adminMenu,
		Passenger: passengerMenu,
		Session:   session,
		Term:      term,
	}
	system.Run()
}
