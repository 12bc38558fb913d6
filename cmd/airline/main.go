package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"airline_reservation/internal/config"
	"airline_reservation/internal/console"
	"airline_reservation/internal/database"
	"airline_reservation/internal/services"
)

const banner = `
    _    _      _ _              ____                                 _   _
   / \  (_)_ __| (_)_ __   ___  |  _ \ ___  ___  ___ _ ____   ____ _| |_(_) ___  _ __  ___
  / _ \ | | '__| | | '_ \ / _ \ | |_) / _ \/ __|/ _ \ '__\ \ / / _` + "`" + ` | __| |/ _ \| '_ \/ __|
 / ___ \| | |  | | | | | |  __/ |  _ <  __/\__ \  __/ |   \ V / (_| | |_| | (_) | | | \__ \
/_/   \_\_|_|  |_|_|_| |_|\___| |_| \_\___||___/\___|_|    \_/ \__,_|\__|_|\___/|_| |_|___/
`

func main() {
	cfg := config.Load()

	// Service logs go to a file so they do not interleave with the
	// interactive screen.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err == nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Println("Starting Airline Reservation System...")

	directory, err := services.NewDirectoryService(
		database.NewFileStore(database.AdminStorePath(cfg.DataDir)),
		database.NewFileStore(database.PassengerStorePath(cfg.DataDir)),
	)
	if err != nil {
		log.Fatalf("Failed to load account stores: %v", err)
	}

	catalog, err := services.NewCatalogService(database.NewFileStore(database.FlightStorePath(cfg.DataDir)))
	if err != nil {
		log.Fatalf("Failed to load flight store: %v", err)
	}

	ledger, err := services.NewLedgerService(database.NewFileStore(database.BookingStorePath(cfg.DataDir)), catalog)
	if err != nil {
		log.Fatalf("Failed to load booking store: %v", err)
	}

	ctx := context.Background()
	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	session := console.NewSession(prompter, os.Stdout, catalog, ledger, directory)

	fmt.Printf("%s\n", banner)

	if directory.NeedsFirstRunAdmin() {
		if err := session.FirstRunAdminSetup(ctx); err != nil {
			log.Fatalf("First-run admin setup failed: %v", err)
		}
		// Restart checkpoint: the operator relaunches into a consistent
		// state with the admin account on disk.
		return
	}

	session.Run(ctx)

	// Redundant with the per-mutation saves, but harmless: full rewrites
	// are idempotent.
	if err := directory.Save(ctx); err != nil {
		log.Printf("Failed to save account stores at shutdown: %v", err)
	}
	if err := catalog.Save(ctx); err != nil {
		log.Printf("Failed to save flight store at shutdown: %v", err)
	}
	if err := ledger.Save(ctx); err != nil {
		log.Printf("Failed to save booking store at shutdown: %v", err)
	}

	log.Println("Airline Reservation System exited")
}
