package ui

import (
	"fmt"
	"strings"

	"spec-kit/internal/setup"
)

// StatusReport renders one line per workflow variant, framed in a panel on
// terminals and as plain lines otherwise.
func StatusReport(statuses []setup.Status) string {
	lines := []string{Render(Title, "Setup Status:")}
	for _, st := range statuses {
		state := Render(Muted, "❌ Not configured")
		if st.Configured {
			state = Render(Success, "✅ Configured")
		}
		lines = append(lines, fmt.Sprintf("%s: %s", st.Strategy.Title, state))
	}

	body := strings.Join(lines, "\n")
	if !IsTTY {
		return body
	}
	return Panel.Render(body)
}
