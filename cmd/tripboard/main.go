package main

import (
	"os"
	"strings"

	"tripboard/internal/cli"

	"github.com/google/uuid"
)

func isEventID(s string) bool {
	_, err := uuid.Parse(strings.TrimSpace(s))
	return err == nil
}

// rewriteDirectEventLookupArgs turns `tripboard <event-id>` into
// `tripboard events show <event-id>`. Cobra treats the first non-flag token as
// a subcommand, so argv is rewritten before parsing. Persistent flags may come
// first, so the first positional token is searched for.
func rewriteDirectEventLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":    true,
		"--dir":       true,
		"--format":    true,
		"--log-level": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isEventID(argv[i+1]) {
				return insertShow(argv, i+1)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			// Unknown flags are skipped without consuming a value so an event
			// ID is never swallowed.
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}

		if isEventID(a) {
			return insertShow(argv, i)
		}
		return argv
	}
	return argv
}

func insertShow(argv []string, at int) []string {
	out := make([]string, 0, len(argv)+2)
	out = append(out, argv[:at]...)
	out = append(out, "events", "show")
	return append(out, argv[at:]...)
}

func main() {
	os.Args = rewriteDirectEventLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
