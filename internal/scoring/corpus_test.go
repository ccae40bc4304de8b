package scoring

import (
	"fmt"
	"testing"

	"EquityNewsScanner/internal/domain"
)

func TestComputeStatsDocumentFrequency(t *testing.T) {
	t.Parallel()

	corpus := make([]domain.Article, 0, 10)
	corpus = append(corpus,
		domain.Article{Title: "Nvidia reports record data center revenue"},
		domain.Article{Title: "Chipmakers rally", Summary: "Nvidia and rivals gained ground."},
	)
	for i := 0; i < 8; i++ {
		corpus = append(corpus, domain.Article{Title: fmt.Sprintf("Unrelated market story %d", i)})
	}

	stats := ComputeStats(corpus, []string{"nvidia", "tesla"})

	if stats.Size != 10 {
		t.Fatalf("expected corpus size 10, got %d", stats.Size)
	}
	if stats.DocFreq["nvidia"] != 2 {
		t.Fatalf("expected nvidia document frequency 2, got %d", stats.DocFreq["nvidia"])
	}
	// Absent terms floor at 1 so the IDF divisor is never zero.
	if stats.DocFreq["tesla"] != 1 {
		t.Fatalf("expected tesla document frequency 1, got %d", stats.DocFreq["tesla"])
	}
}

func TestComputeStatsEmptyCorpus(t *testing.T) {
	t.Parallel()

	stats := ComputeStats(nil, []string{"nvidia"})
	if stats.Size != 0 {
		t.Fatalf("expected size 0, got %d", stats.Size)
	}
	if stats.DocFreq["nvidia"] != 1 {
		t.Fatalf("expected floored frequency 1, got %d", stats.DocFreq["nvidia"])
	}
}
