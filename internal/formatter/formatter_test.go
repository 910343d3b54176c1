package formatter

import (
	"strings"
	"testing"

	"github.com/senflix/sfx/internal/models"
	th "github.com/senflix/sfx/internal/testing"
)

func sampleResults() *ResultSet {
	return &ResultSet{
		Query: "the matrix",
		Movies: []models.MovieCandidate{
			{
				ID:       4,
				Title:    "The Matrix",
				Year:     "1999",
				Director: "Lana Wachowski, Lilly Wachowski",
				Actors:   "Keanu Reeves, Laurence Fishburne",
				IMDbID:   "tt0133093",
				Source:   models.SourceSenflix,
			},
			{
				Title:  "The Matrix Reloaded",
				Year:   "2003",
				IMDbID: "tt0234215",
				Source: models.SourceOMDB,
			},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(sampleResults())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,Title,Year,Director,Actors,IMDbID,Source") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "The Matrix") {
			t.Errorf("CSV missing title")
		}
		if !strings.Contains(output, "tt0133093") {
			t.Errorf("CSV missing IMDb id")
		}
		if !strings.Contains(output, "omdb") {
			t.Errorf("CSV missing source")
		}
		// Catalog-less results leave the id column empty.
		if !strings.Contains(output, "\n,The Matrix Reloaded") {
			t.Errorf("CSV should leave id empty for non-catalog results, got: %s", output)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(sampleResults())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "# Search: the matrix") {
			t.Errorf("Markdown missing title")
		}
		if !strings.Contains(output, "**Results**: 2") {
			t.Errorf("Markdown missing result count")
		}
		if !strings.Contains(output, "1. The Matrix (1999) by Lana Wachowski, Lilly Wachowski [In Catalog]") {
			t.Errorf("Markdown missing catalog entry, got: %s", output)
		}
		if !strings.Contains(output, "2. The Matrix Reloaded (2003) [Addable]") {
			t.Errorf("Markdown missing addable entry (no director), got: %s", output)
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(sampleResults())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Search: the matrix") {
			t.Errorf("Text missing query")
		}
		if !strings.Contains(output, "Results: 2") {
			t.Errorf("Text missing result count")
		}
		if !strings.Contains(output, "1. The Matrix (1999)") {
			t.Errorf("Text missing first entry")
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(sampleResults())
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, `"query": "the matrix"`) {
			t.Errorf("JSON missing query field")
		}
		if !strings.Contains(output, `"tt0234215"`) {
			t.Errorf("JSON missing movie data")
		}
	})
}

func TestWriters(t *testing.T) {
	chtemp := func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		t.Cleanup(func() { th.MustChdir(t, originalDir) })
	}

	t.Run("WriteCSVExport", func(t *testing.T) {
		t.Run("WithDefaultPath", func(t *testing.T) {
			chtemp(t)

			path, err := WriteCSVExport(sampleResults(), "")
			if err != nil {
				t.Fatalf("WriteCSVExport failed: %v", err)
			}

			if path != "the_matrix_results.csv" {
				t.Errorf("Expected 'the_matrix_results.csv', got '%s'", path)
			}
			th.AssertFileExists(t, path)

			content := th.MustReadFile(t, path)
			if !strings.Contains(content, "The Matrix") {
				t.Errorf("CSV missing movie data")
			}
		})

		t.Run("WithCustomPath", func(t *testing.T) {
			chtemp(t)

			path, err := WriteCSVExport(sampleResults(), "custom.csv")
			if err != nil {
				t.Fatalf("WriteCSVExport failed: %v", err)
			}
			if path != "custom.csv" {
				t.Errorf("Expected 'custom.csv', got '%s'", path)
			}
			th.AssertFileExists(t, path)
		})
	})

	t.Run("WriteMarkdownExport", func(t *testing.T) {
		chtemp(t)

		path, err := WriteMarkdownExport(sampleResults(), "")
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}

		if path != "the_matrix_results.md" {
			t.Errorf("Expected 'the_matrix_results.md', got '%s'", path)
		}
		th.AssertFileExists(t, path)

		content := th.MustReadFile(t, path)
		if !strings.Contains(content, "# Search: the matrix") {
			t.Errorf("Markdown missing title")
		}
	})

	t.Run("WriteTextExport", func(t *testing.T) {
		chtemp(t)

		path, err := WriteTextExport(sampleResults(), "")
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}

		if path != "the_matrix_results.txt" {
			t.Errorf("Expected 'the_matrix_results.txt', got '%s'", path)
		}
		th.AssertFileExists(t, path)
	})

	t.Run("WriteJSONExport", func(t *testing.T) {
		chtemp(t)

		path, err := WriteJSONExport(sampleResults(), "")
		if err != nil {
			t.Fatalf("WriteJSONExport failed: %v", err)
		}

		if path != "the_matrix_results.json" {
			t.Errorf("Expected 'the_matrix_results.json', got '%s'", path)
		}
		th.AssertFileExists(t, path)

		content := th.MustReadFile(t, path)
		if !strings.Contains(content, `"the matrix"`) {
			t.Errorf("JSON missing query")
		}
	})

	t.Run("EmptyQueryFallsBackToSearch", func(t *testing.T) {
		chtemp(t)

		path, err := WriteTextExport(&ResultSet{}, "")
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if path != "search_results.txt" {
			t.Errorf("Expected 'search_results.txt', got '%s'", path)
		}
	})
}
