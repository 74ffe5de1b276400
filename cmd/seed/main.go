package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/kyasarlamahesh/Dental-Center-Management/internal/clinic"
	"github.com/kyasarlamahesh/Dental-Center-Management/internal/config"
	"github.com/kyasarlamahesh/Dental-Center-Management/internal/kv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	patientCount := flag.Int("patients", 25, "number of demo patients to create")
	maxIncidents := flag.Int("max-incidents", 4, "max incidents per patient")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var medium kv.Store
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		pg, err := kv.NewPostgresStore(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pg.Close()
		medium = pg
	default:
		rdb, err := kv.NewRedisStore(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("connect redis: %v", err)
		}
		defer rdb.Close()
		medium = rdb
	}

	gofakeit.Seed(time.Now().UnixNano())

	store := clinic.NewStore(ctx, medium)
	seedPatients(ctx, store, *patientCount, *maxIncidents)

	log.Println("seed complete")
}

var treatments = []string{
	"Toothache",
	"Routine checkup",
	"Root canal",
	"Cavity filling",
	"Teeth cleaning",
	"Crown fitting",
	"Wisdom tooth extraction",
	"Orthodontic review",
}

func seedPatients(ctx context.Context, store *clinic.Store, count, maxIncidents int) {
	log.Printf("seeding %d patients", count)

	statuses := []clinic.IncidentStatus{
		clinic.StatusScheduled,
		clinic.StatusCompleted,
		clinic.StatusCanceled,
	}

	for i := 0; i < count; i++ {
		dob := gofakeit.DateRange(
			time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		)

		patient := store.AddPatient(ctx, clinic.NewPatient{
			Name:       gofakeit.Name(),
			Email:      gofakeit.Email(),
			DOB:        dob.Format("2006-01-02"),
			Contact:    gofakeit.Phone(),
			HealthInfo: gofakeit.SentenceSimple(),
			Password:   gofakeit.Password(true, true, true, false, false, 10),
		})

		for j := 0; j < gofakeit.Number(0, maxIncidents); j++ {
			status := statuses[gofakeit.Number(0, len(statuses)-1)]
			var cost *float64
			if status == clinic.StatusCompleted {
				c := float64(gofakeit.Number(40, 600))
				cost = &c
			}

			when := gofakeit.DateRange(
				time.Now().AddDate(0, -2, 0),
				time.Now().AddDate(0, 2, 0),
			)

			store.AddIncident(ctx, clinic.NewIncident{
				PatientID:       patient.ID,
				Title:           treatments[gofakeit.Number(0, len(treatments)-1)],
				Description:     gofakeit.SentenceSimple(),
				AppointmentDate: when.Format("2006-01-02T15:04"),
				Cost:            cost,
				Status:          status,
			})
		}
	}

	log.Println("patients seeded")
}
