package present

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"
	_ "time/tzdata" // zone names are validated even on hosts without tzdata
)

// defaultZoneinfoDir is where the system tz database is listed from.
// $ZONEINFO overrides it, as it does for time.LoadLocation.
const defaultZoneinfoDir = "/usr/share/zoneinfo"

var zoneRegions = []string{
	"Africa", "America", "Antarctica", "Arctic", "Asia", "Atlantic",
	"Australia", "Europe", "Indian", "Pacific",
}

// Timezones lists the IANA zone identifiers of the system tz database, sorted,
// with "UTC" last. Only canonical region zones are included.
//
// The list comes from the zoneinfo directory because the Go runtime cannot
// enumerate zones. When that directory is missing or unreadable the failure is
// logged and only "UTC" is returned.
func Timezones() []string {
	dir := defaultZoneinfoDir
	if env := os.Getenv("ZONEINFO"); env != "" {
		if info, err := os.Stat(env); err == nil && info.IsDir() {
			dir = env
		}
	}

	zones, err := zonesIn(os.DirFS(dir))
	if err != nil {
		slog.Warn("Failed to list timezones", "dir", dir, "error", err)
	}
	return append(zones, "UTC")
}

// zonesIn walks the region directories of fsys and returns the sorted zone names
// time.LoadLocation accepts. Missing regions are skipped; other walk errors are
// joined into the returned error alongside the zones that could be read.
func zonesIn(fsys fs.FS) ([]string, error) {
	var zones []string
	var errs []error
	found := false

	for _, region := range zoneRegions {
		err := fs.WalkDir(fsys, region, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			found = true
			if d.IsDir() || strings.Contains(path, ".") {
				return nil
			}
			if _, err := time.LoadLocation(path); err == nil {
				zones = append(zones, path)
			}
			return nil
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	if !found && len(errs) == 0 {
		errs = append(errs, errors.New("no timezone regions found"))
	}

	sort.Strings(zones)
	return zones, errors.Join(errs...)
}
