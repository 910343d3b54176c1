// package formatter provides functions to export search results to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/senflix/sfx/internal/models"
	"github.com/senflix/sfx/internal/shared"
)

// ResultSet pairs a query with the candidates it returned.
type ResultSet struct {
	Query  string                  `json:"query"`
	Movies []models.MovieCandidate `json:"movies"`
}

// sourceLabel renders the catalog badge the way the search dropdown does.
func sourceLabel(m models.MovieCandidate) string {
	if m.InCatalog() {
		return "In Catalog"
	}
	return "Addable"
}

// ExportToCSV converts a ResultSet to CSV format with columns: ID, Title, Year, Director, Actors, IMDbID, Source
func ExportToCSV(rs *ResultSet) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Year", "Director", "Actors", "IMDbID", "Source"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, movie := range rs.Movies {
		id := ""
		if movie.ID != 0 {
			id = strconv.Itoa(movie.ID)
		}
		record := []string{
			id,
			movie.Title,
			movie.Year,
			movie.Director,
			movie.Actors,
			movie.IMDbID,
			string(movie.Source),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a ResultSet to Markdown format
func ExportToMarkdown(rs *ResultSet) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Search: %s\n\n", rs.Query))
	buf.WriteString(fmt.Sprintf("**Results**: %d\n\n", len(rs.Movies)))

	buf.WriteString("## Movies\n\n")
	for i, movie := range rs.Movies {
		yearPart := ""
		if movie.Year != "" {
			yearPart = fmt.Sprintf(" (%s)", movie.Year)
		}
		directorPart := ""
		if movie.Director != "" && movie.Director != "N/A" {
			directorPart = fmt.Sprintf(" by %s", movie.Director)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s%s [%s]\n", i+1, movie.Title, yearPart, directorPart, sourceLabel(movie)))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a ResultSet to plain text format
func ExportToText(rs *ResultSet) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Search: %s\n", rs.Query))
	buf.WriteString(fmt.Sprintf("Results: %d\n\n", len(rs.Movies)))

	for i, movie := range rs.Movies {
		yearPart := ""
		if movie.Year != "" {
			yearPart = fmt.Sprintf(" (%s)", movie.Year)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s\n", i+1, movie.Title, yearPart))
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a ResultSet to indented JSON
func ExportToJSON(rs *ResultSet) ([]byte, error) {
	return shared.MarshalJSON(rs, true)
}

// WriteCSVExport exports a result set to a CSV file.
//
// Defaults to {query}_results.csv as the filename.
func WriteCSVExport(rs *ResultSet, filepath string) (string, error) {
	if filepath == "" {
		filepath = defaultBase(rs) + "_results.csv"
	}

	data, err := ExportToCSV(rs)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return filepath, nil
}

// WriteMarkdownExport exports a result set to a Markdown file.
//
// Defaults to {query}_results.md as the filename.
func WriteMarkdownExport(rs *ResultSet, filepath string) (string, error) {
	if filepath == "" {
		filepath = defaultBase(rs) + "_results.md"
	}

	data, err := ExportToMarkdown(rs)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return filepath, nil
}

// WriteTextExport exports a result set to a plain text file.
//
// Defaults to {query}_results.txt as the filename.
func WriteTextExport(rs *ResultSet, filepath string) (string, error) {
	if filepath == "" {
		filepath = defaultBase(rs) + "_results.txt"
	}

	data, err := ExportToText(rs)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}

// WriteJSONExport exports a result set to an indented JSON file.
//
// Defaults to {query}_results.json as the filename.
func WriteJSONExport(rs *ResultSet, filepath string) (string, error) {
	if filepath == "" {
		filepath = defaultBase(rs) + "_results.json"
	}

	data, err := ExportToJSON(rs)
	if err != nil {
		return "", fmt.Errorf("failed to generate JSON: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON file: %w", err)
	}

	return filepath, nil
}

// defaultBase derives a filesystem-safe base name from the query.
func defaultBase(rs *ResultSet) string {
	base := shared.NormalizeQuery(rs.Query)
	if base == "" {
		return "search"
	}
	out := make([]rune, 0, len(base))
	for _, r := range base {
		if r == ' ' {
			out = append(out, '_')
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
