package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Builds a full width daily line where every day has the given value
func dailyLine(id string, year, month int, element string, value int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-11s%4d%02d%-4s", id, year, month, element)
	for i := 0; i < 31; i++ {
		fmt.Fprintf(&b, "%5d   ", value)
	}
	return b.String()
}

func writeFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func stationLine(id, lat, lon, elev, state, name, gsn, hcn, wmo string) string {
	return fmt.Sprintf("%-11s %8s %9s %6s %-2s %-30s %-3s %-3s %-5s", id, lat, lon, elev, state, name, gsn, hcn, wmo)
}
