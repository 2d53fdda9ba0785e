package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"inventory/internal/models"
)

var (
	accent  = lipgloss.Color("#D97706")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	successStyle = lipgloss.NewStyle().Foreground(success)
	errorStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
)

func renderMenu(w io.Writer, options []int, labels map[int]string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("===== INVENTORY SYSTEM ====="))
	for _, key := range options {
		fmt.Fprintf(w, "%d. %s\n", key, labels[key])
	}
	fmt.Fprintln(w, dimStyle.Render(strings.Repeat("=", 28)))
}

func renderProducts(w io.Writer, products []*models.Product) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("===== PRODUCT LIST ====="))
	for _, p := range products {
		fmt.Fprintln(w, p.String())
	}
	fmt.Fprintln(w, dimStyle.Render(strings.Repeat("=", 24)))
}

func renderSuccess(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

func renderError(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf(format, args...)))
}
