// Package manual holds the free-text user guide shown from the main menu.
package manual

const Text = `
Main Menu:
1. Exit: Exit the program.
2. Login as Admin: Allows admins to log in.
3. Register as Admin: Allows new admins to register.
4. Login as Passenger: Enables passengers to log in.
5. Register as Passenger: Allows new passengers to register.
6. Display User Manual: Displays this user manual.
7. (debug) fetch users table: Fetches all users.
8. (debug) fetch flights table: Fetches all flights.
9. (debug) fetch bookings table: Fetches all bookings.
10. (debug) clear tables: Clears all tables.
p.s. each time you run the program, n new flights are generated and
inserted into flights; you can set n up in main.

Admin Menu:
1. Add new Passenger: Add a new passenger to the system.
2. Search for Passenger: Find passenger details by email.
3. Update Passenger data: Modify existing passenger information.
4. Delete Passenger: Remove a passenger from the system.
5. Display all Passengers: Show a list of all registered passengers.
6. Display all flights registered by a Passenger: View a passenger's flights.
7. Display all registered passengers in a Flight: View bookings on a flight.
8. Delete Flight: Remove a flight from the system.
9. Back to Main Menu/Logout: Exit the admin menu.

Passenger Menu:
1. Book a flight: Book seats on an available flight.
2. Update personal data: Update your personal information.
3. Delete Account: Remove your account from the system.
4. Display Flight Schedule: Show a list of all available flights.
5. Cancel booking: Cancel a previously booked flight.
6. View my bookings: Display your bookings.
7. Back to Main Menu/Logout: Exit the passenger menu.
`
