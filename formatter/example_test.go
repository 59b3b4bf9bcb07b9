package formatter_test

import (
	"fmt"
	"time"

	"github.com/emberlog/ember/core"
	"github.com/emberlog/ember/formatter"
)

// Render an entry as a plain, uncolored line.
func ExampleTerminal_Format() {
	f := formatter.NewTerminal(formatter.Config{
		UseColors:     false,
		ShowTimestamp: true,
	})

	entry := &core.Entry{
		Time:    time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "server listening",
		Fields:  []core.Field{core.Int("port", 8080)},
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	// Output: 2024-06-01 12:30:00.000 INFO server listening port=8080
}
