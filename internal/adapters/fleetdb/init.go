package fleetdb

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// InitSchema creates the fleet backend's Postgres tables. The console
// itself keeps no durable state; this tool exists so a fresh backend
// environment can be stood up alongside it.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createAdminQuery := `
	CREATE TABLE IF NOT EXISTS admin (
		id_admin SERIAL PRIMARY KEY,
		email    VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL
	);
	`

	createTrucksQuery := `
	CREATE TABLE IF NOT EXISTS camion (
		id_camion SERIAL PRIMARY KEY,
		marque    VARCHAR(100) NOT NULL,
		capacite  DOUBLE PRECISION NOT NULL,
		status    VARCHAR(20) NOT NULL DEFAULT 'disponible'
	);
	`

	createParcelsQuery := `
	CREATE TABLE IF NOT EXISTS colis (
		id_colis       SERIAL PRIMARY KEY,
		nom_client     VARCHAR(100) NOT NULL,
		destination    VARCHAR(255) NOT NULL,
		poids          DOUBLE PRECISION NOT NULL,
		statut         VARCHAR(20) NOT NULL DEFAULT 'en_stock',
		date_livraison TIMESTAMP NOT NULL
	);
	`

	createAssignmentsQuery := `
	CREATE TABLE IF NOT EXISTS assignments (
		id_assignment SERIAL PRIMARY KEY,
		id_camion     INTEGER NOT NULL REFERENCES camion(id_camion) ON DELETE CASCADE,
		id_colis      INTEGER NOT NULL REFERENCES colis(id_colis) ON DELETE CASCADE,
		run_id        VARCHAR(64),
		time          TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`

	createAssignmentsIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_assignments_run_id
	ON assignments(run_id);
	`

	statements := []string{
		createAdminQuery,
		createTrucksQuery,
		createParcelsQuery,
		createAssignmentsQuery,
		createAssignmentsIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type TruckSeed struct {
	Brand      string  `json:"marque"`
	CapacityKg float64 `json:"capacite"`
	Status     string  `json:"status"`
}

type ParcelSeed struct {
	ClientName  string  `json:"nom_client"`
	Destination string  `json:"destination"`
	WeightKg    float64 `json:"poids"`
	Status      string  `json:"statut"`
	Deadline    string  `json:"date_livraison"`
}

type AdminSeed struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SeedFile struct {
	Admins  []AdminSeed  `json:"admins"`
	Trucks  []TruckSeed  `json:"camions"`
	Parcels []ParcelSeed `json:"colis"`
}

// SeedFromJSON populates the fleet tables from a JSON file. Existing
// rows are left alone; seeding twice duplicates nothing because admins
// upsert on email and fleet rows are only inserted into empty tables.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed fleet: read %q: %w", jsonPath, err)
	}

	var data SeedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed fleet: parse json: %w", err)
	}

	for i, a := range data.Admins {
		if strings.TrimSpace(a.Email) == "" || a.Password == "" {
			return fmt.Errorf("seed fleet: admin at index %d: email and password are required", i+1)
		}
	}
	for i, t := range data.Trucks {
		if strings.TrimSpace(t.Brand) == "" {
			return fmt.Errorf("seed fleet: truck at index %d: brand cannot be empty", i+1)
		}
		if t.CapacityKg <= 0 {
			return fmt.Errorf("seed fleet: truck at index %d: invalid capacity %v", i+1, t.CapacityKg)
		}
	}
	for i, p := range data.Parcels {
		if strings.TrimSpace(p.ClientName) == "" || strings.TrimSpace(p.Destination) == "" {
			return fmt.Errorf("seed fleet: parcel at index %d: client and destination are required", i+1)
		}
		if p.WeightKg <= 0 {
			return fmt.Errorf("seed fleet: parcel at index %d: invalid weight %v", i+1, p.WeightKg)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed fleet: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, a := range data.Admins {
		_, err := tx.Exec(
			`INSERT INTO admin (email, password) VALUES ($1, $2)
			 ON CONFLICT (email) DO UPDATE SET password = EXCLUDED.password`,
			a.Email, a.Password,
		)
		if err != nil {
			return fmt.Errorf("seed fleet: insert admin %q: %w", a.Email, err)
		}
	}

	if err := seedIfEmpty(tx, "camion", func() error {
		for _, t := range data.Trucks {
			status := t.Status
			if status == "" {
				status = "disponible"
			}
			_, err := tx.Exec(
				`INSERT INTO camion (marque, capacite, status) VALUES ($1, $2, $3)`,
				t.Brand, t.CapacityKg, status,
			)
			if err != nil {
				return fmt.Errorf("insert truck %q: %w", t.Brand, err)
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("seed fleet: %w", err)
	}

	if err := seedIfEmpty(tx, "colis", func() error {
		for _, p := range data.Parcels {
			status := p.Status
			if status == "" {
				status = "en_stock"
			}
			_, err := tx.Exec(
				`INSERT INTO colis (nom_client, destination, poids, statut, date_livraison)
				 VALUES ($1, $2, $3, $4, $5)`,
				p.ClientName, p.Destination, p.WeightKg, status, p.Deadline,
			)
			if err != nil {
				return fmt.Errorf("insert parcel for %q: %w", p.ClientName, err)
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("seed fleet: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed fleet: commit tx: %w", err)
	}

	return nil
}

func seedIfEmpty(tx *sql.Tx, table string, insert func() error) error {
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
		return fmt.Errorf("count %s: %w", table, err)
	}
	if count > 0 {
		return nil
	}
	return insert()
}
