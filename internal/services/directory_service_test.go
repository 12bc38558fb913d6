package services

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline_reservation/internal/database"
	"airline_reservation/internal/models"
)

func newTestDirectory(t *testing.T) (*DirectoryService, string) {
	t.Helper()
	dir := t.TempDir()
	directory, err := NewDirectoryService(
		database.NewFileStore(database.AdminStorePath(dir)),
		database.NewFileStore(database.PassengerStorePath(dir)),
	)
	require.NoError(t, err)
	return directory, dir
}

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	directory, _ := newTestDirectory(t)

	require.NoError(t, directory.Register(ctx, "alice", "pw1"))

	err := directory.Register(ctx, "alice", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateKey)

	account, err := directory.Authenticate(ctx, models.RolePassenger, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, models.RolePassenger, account.Role)

	_, err = directory.Authenticate(ctx, models.RolePassenger, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = directory.Authenticate(ctx, models.RolePassenger, "nobody", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRoleNamespacesAreDisjoint(t *testing.T) {
	ctx := context.Background()
	directory, _ := newTestDirectory(t)

	require.NoError(t, directory.ProvisionAdmin(ctx, "sam", "adminpw"))
	require.NoError(t, directory.Register(ctx, "sam", "passengerpw"))

	admin, err := directory.Authenticate(ctx, models.RoleAdmin, "sam", "adminpw")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// The admin password does not unlock the passenger account.
	_, err = directory.Authenticate(ctx, models.RolePassenger, "sam", "adminpw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	passenger, err := directory.Authenticate(ctx, models.RolePassenger, "sam", "passengerpw")
	require.NoError(t, err)
	assert.Equal(t, models.RolePassenger, passenger.Role)
}

func TestFirstRunAdminProvisioning(t *testing.T) {
	ctx := context.Background()
	directory, dir := newTestDirectory(t)

	assert.True(t, directory.NeedsFirstRunAdmin())

	require.NoError(t, directory.ProvisionAdmin(ctx, "root", "secret"))
	assert.False(t, directory.NeedsFirstRunAdmin())

	err := directory.ProvisionAdmin(ctx, "another", "secret")
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// A restart sees the provisioned admin and no longer asks for setup.
	reloaded, err := NewDirectoryService(
		database.NewFileStore(database.AdminStorePath(dir)),
		database.NewFileStore(database.PassengerStorePath(dir)),
	)
	require.NoError(t, err)
	assert.False(t, reloaded.NeedsFirstRunAdmin())

	account, err := reloaded.Authenticate(ctx, models.RoleAdmin, "root", "secret")
	require.NoError(t, err)
	assert.Equal(t, "root", account.Username)
}

func TestDirectoryFind(t *testing.T) {
	ctx := context.Background()
	directory, _ := newTestDirectory(t)

	require.NoError(t, directory.Register(ctx, "alice", "pw1"))

	account, err := directory.Find(ctx, models.RolePassenger, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)

	_, err = directory.Find(ctx, models.RoleAdmin, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirectoryLoadSkipsMalformedLines(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(database.PassengerStorePath(dir), []byte("alice,pw1\nbroken record with no delimiter\nbob,pw2\n"), 0o644))

	directory, err := NewDirectoryService(
		database.NewFileStore(database.AdminStorePath(dir)),
		database.NewFileStore(database.PassengerStorePath(dir)),
	)
	require.NoError(t, err)

	_, err = directory.Authenticate(ctx, models.RolePassenger, "bob", "pw2")
	assert.NoError(t, err)
}
