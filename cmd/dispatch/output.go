package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// printHeader prints a section header.
func printHeader(title string) {
	fmt.Println(headerStyle.Render(title))
}

// printField prints an aligned label/value pair.
func printField(label, value string) {
	fmt.Printf("%s %s\n", labelStyle.Render(label+":"), value)
}

// printStatus prints a colored status glyph and message.
func printStatus(glyph, message string, attr color.Attribute) {
	c := color.New(attr)
	fmt.Printf("%s %s\n", c.Sprint(glyph), message)
}

// renderTable prints a simple aligned table.
func renderTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	fmt.Println(labelStyle.Render(strings.TrimRight(b.String(), " ")))

	for _, row := range rows {
		b.Reset()
		for i, cell := range row {
			b.WriteString(fmt.Sprintf("%-*s  ", widths[i], cell))
		}
		fmt.Println(strings.TrimRight(b.String(), " "))
	}
}

// joinOr renders a list as comma-separated text, or a dim placeholder.
func joinOr(items []string, placeholder string) string {
	if len(items) == 0 {
		return dimStyle.Render(placeholder)
	}
	return strings.Join(items, ", ")
}
