package database

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists one entity collection as newline-delimited records in
// a single flat file. There is no header line and no locking; the file is
// a process-wide resource shared on trust.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path. The file is
// not created until the first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (fs *FileStore) Path() string {
	return fs.path
}

// LoadLines reads every non-empty line from the backing file. A missing
// file yields an empty result, never an error.
func (fs *FileStore) LoadLines() ([]string, error) {
	f, err := os.Open(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", fs.path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fs.path, err)
	}

	return lines, nil
}

// SaveLines truncates the backing file and rewrites every record in order,
// one per line. A crash mid-write can leave a partial file; this is the
// accepted durability gap of the whole-file rewrite model.
func (fs *FileStore) SaveLines(lines []string) error {
	f, err := os.Create(fs.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", fs.path, err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("failed to write %s: %w", fs.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", fs.path, err)
	}

	return f.Close()
}

// Store file names within the data directory, one file per entity type.
const (
	adminsFile     = "admins.txt"
	passengersFile = "passengers.txt"
	flightsFile    = "flights.txt"
	bookingsFile   = "bookings.txt"
)

// AdminStorePath returns the admin credential store path.
func AdminStorePath(dataDir string) string {
	return filepath.Join(dataDir, adminsFile)
}

// PassengerStorePath returns the passenger credential store path.
func PassengerStorePath(dataDir string) string {
	return filepath.Join(dataDir, passengersFile)
}

// FlightStorePath returns the flight store path.
func FlightStorePath(dataDir string) string {
	return filepath.Join(dataDir, flightsFile)
}

// BookingStorePath returns the booking store path.
func BookingStorePath(dataDir string) string {
	return filepath.Join(dataDir, bookingsFile)
}
