package services

import (
	"context"
	"fmt"
	"log"

	"airline_reservation/internal/database"
	"airline_reservation/internal/models"
)

// DirectoryService owns the passenger and admin credential sets. The two
// roles are disjoint namespaces backed by separate files; a passenger and
// an admin may share a username without conflict.
type DirectoryService struct {
	adminStore     *database.FileStore
	passengerStore *database.FileStore
	admins         []*models.Account
	passengers     []*models.Account
}

// NewDirectoryService loads both credential stores into memory. Malformed
// lines are skipped, not surfaced.
func NewDirectoryService(adminStore, passengerStore *database.FileStore) (*DirectoryService, error) {
	ds := &DirectoryService{adminStore: adminStore, passengerStore: passengerStore}

	admins, err := loadAccounts(adminStore, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	ds.admins = admins

	passengers, err := loadAccounts(passengerStore, models.RolePassenger)
	if err != nil {
		return nil, err
	}
	ds.passengers = passengers

	log.Printf("Loaded %d admins and %d passengers", len(ds.admins), len(ds.passengers))
	return ds, nil
}

func loadAccounts(store *database.FileStore, role models.Role) ([]*models.Account, error) {
	lines, err := store.LoadLines()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s store: %w", role, err)
	}

	var accounts []*models.Account
	for _, line := range lines {
		account, err := models.ParseAccountRecord(line, role)
		if err != nil {
			log.Printf("Skipping malformed %s record: %v", role, err)
			continue
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func saveAccounts(store *database.FileStore, accounts []*models.Account) error {
	lines := make([]string, 0, len(accounts))
	for _, a := range accounts {
		lines = append(lines, a.Record())
	}
	return store.SaveLines(lines)
}

func (ds *DirectoryService) roleSet(role models.Role) []*models.Account {
	if role == models.RoleAdmin {
		return ds.admins
	}
	return ds.passengers
}

func (ds *DirectoryService) lookup(role models.Role, username string) *models.Account {
	for _, a := range ds.roleSet(role) {
		if a.Username == username {
			return a
		}
	}
	return nil
}

// NeedsFirstRunAdmin reports whether the admin store was empty or missing
// at load time. The caller must provision exactly one admin and restart
// the process before normal operation.
func (ds *DirectoryService) NeedsFirstRunAdmin() bool {
	return len(ds.admins) == 0
}

// ProvisionAdmin persists the initial admin credential pair collected
// during first-run setup.
func (ds *DirectoryService) ProvisionAdmin(ctx context.Context, username, password string) error {
	if !ds.NeedsFirstRunAdmin() {
		return fmt.Errorf("admin account already provisioned: %w", ErrDuplicateKey)
	}

	ds.admins = append(ds.admins, &models.Account{Role: models.RoleAdmin, Username: username, Password: password})
	if err := saveAccounts(ds.adminStore, ds.admins); err != nil {
		return fmt.Errorf("failed to save admin store: %w", err)
	}

	log.Printf("Admin account provisioned: %s", username)
	return nil
}

// Register creates a passenger account. Admins are never self-registered;
// they exist only through first-run provisioning.
func (ds *DirectoryService) Register(ctx context.Context, username, password string) error {
	if ds.lookup(models.RolePassenger, username) != nil {
		return fmt.Errorf("username %s: %w", username, ErrDuplicateKey)
	}

	ds.passengers = append(ds.passengers, &models.Account{Role: models.RolePassenger, Username: username, Password: password})
	if err := saveAccounts(ds.passengerStore, ds.passengers); err != nil {
		return fmt.Errorf("failed to save passenger store: %w", err)
	}

	log.Printf("Passenger registered: %s", username)
	return nil
}

// Authenticate matches the supplied credentials against one role
// namespace. The comparison is an exact plaintext match with no lockout or
// rate limiting.
func (ds *DirectoryService) Authenticate(ctx context.Context, role models.Role, username, password string) (*models.Account, error) {
	account := ds.lookup(role, username)
	if account == nil || !account.Login(username, password) {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// Find returns the account with the given username in the given role
// namespace.
func (ds *DirectoryService) Find(ctx context.Context, role models.Role, username string) (*models.Account, error) {
	account := ds.lookup(role, username)
	if account == nil {
		return nil, fmt.Errorf("%s %s: %w", role, username, ErrNotFound)
	}
	return account, nil
}

// Save rewrites both credential stores; called once more at orderly
// shutdown.
func (ds *DirectoryService) Save(ctx context.Context) error {
	if err := saveAccounts(ds.adminStore, ds.admins); err != nil {
		return fmt.Errorf("failed to save admin store: %w", err)
	}
	if err := saveAccounts(ds.passengerStore, ds.passengers); err != nil {
		return fmt.Errorf("failed to save passenger store: %w", err)
	}
	return nil
}
