// Package ui holds the small output helpers shared by all commands.
package ui

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"utilibill/internal/app/client"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
)

func Success(format string, args ...interface{}) {
	okColor.Printf("✓ "+format+"\n", args...)
}

func Warn(format string, args ...interface{}) {
	warnColor.Printf("! "+format+"\n", args...)
}

func Fail(format string, args ...interface{}) {
	errColor.Printf("✗ "+format+"\n", args...)
}

// Confirm asks a yes/no question on stdin. Anything but "y"/"yes" declines.
func Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table writes rows with aligned columns; header and rows are tab-joined.
func Table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// WrapAuthError turns the typed unauthorized error into actionable guidance.
func WrapAuthError(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		return errors.New("not logged in or session expired: run `utilibill auth login`")
	}
	return err
}
