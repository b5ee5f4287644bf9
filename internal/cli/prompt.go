package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"hotel_console/internal/app"
)

// confirmDelete asks the operator on the terminal. Anything but y/yes
// dismisses the prompt.
func confirmDelete(in io.Reader, out io.Writer, p *app.DeleteConfirmation, subject string) bool {
	fmt.Fprintf(out, "%s\n%s\n%s [y/N]: ", p.Title, subject, p.Description)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func readLine(in io.Reader, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	line, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(line)
}
