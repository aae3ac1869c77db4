package x_log

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// GetLogs reads and returns the last n lines from a file.
func GetLogs(filename string, n int) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return lines, err
	}
	return lines, nil
}

// PrintLogs writes each line to w behind a styled prefix.
func PrintLogs(w io.Writer, lines []string, prefix string, style lipgloss.Style) {
	for _, line := range lines {
		fmt.Fprintln(w, style.Render(prefix), line)
	}
}
