package sqlstore

import "fmt"

const rideColumns = `rideID, startLat, startLong, endLat, endLong, riderName, driverName, driverVehicle, CAST(created AS TEXT)`

// Dialect holds the SQL text for one database engine.
// All value-bearing predicates are placeholders; nothing user supplied is
// ever spliced into the query text.
type Dialect struct {
	Name string

	pragmas        []string
	schema         string
	insertRide     string
	selectRideByID string
	selectRides    string
}

// Schema returns the DDL used to create the Rides table.
func (d Dialect) Schema() string {
	return d.schema
}

// SQLite is the default embedded dialect.
var SQLite = Dialect{
	Name: "sqlite3",
	pragmas: []string{
		"PRAGMA busy_timeout = 5000",
	},
	schema: `CREATE TABLE IF NOT EXISTS Rides (
	rideID INTEGER PRIMARY KEY AUTOINCREMENT,
	startLat DECIMAL NOT NULL,
	startLong DECIMAL NOT NULL,
	endLat DECIMAL NOT NULL,
	endLong DECIMAL NOT NULL,
	riderName TEXT NOT NULL,
	driverName TEXT NOT NULL,
	driverVehicle TEXT NOT NULL,
	created DATETIME DEFAULT CURRENT_TIMESTAMP
)`,
	insertRide: `
		INSERT INTO Rides (startLat, startLong, endLat, endLong, riderName, driverName, driverVehicle)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING rideID
	`,
	selectRideByID: `SELECT ` + rideColumns + ` FROM Rides WHERE rideID = ?`,
	selectRides:    `SELECT ` + rideColumns + ` FROM Rides ORDER BY rideID ASC LIMIT ? OFFSET ?`,
}

// Postgres is used when the service runs against PostgreSQL.
var Postgres = Dialect{
	Name: "postgres",
	schema: `CREATE TABLE IF NOT EXISTS Rides (
	rideID BIGSERIAL PRIMARY KEY,
	startLat DECIMAL NOT NULL,
	startLong DECIMAL NOT NULL,
	endLat DECIMAL NOT NULL,
	endLong DECIMAL NOT NULL,
	riderName TEXT NOT NULL,
	driverName TEXT NOT NULL,
	driverVehicle TEXT NOT NULL,
	created TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`,
	insertRide: `
		INSERT INTO Rides (startLat, startLong, endLat, endLong, riderName, driverName, driverVehicle)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING rideID
	`,
	selectRideByID: `SELECT ` + rideColumns + ` FROM Rides WHERE rideID = $1`,
	selectRides:    `SELECT ` + rideColumns + ` FROM Rides ORDER BY rideID ASC LIMIT $1 OFFSET $2`,
}

// DialectFor returns the dialect for a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "sqlite3":
		return SQLite, nil
	case "postgres", "nrpostgres":
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
}
