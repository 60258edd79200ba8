package summary

import (
	"reflect"
	"testing"

	"fastrinth/internal/batch"
)

func TestSummarize(t *testing.T) {
	results := []batch.Result{
		{Name: "sodium", Status: batch.StatusDownloaded},
		{Name: "lithium", Status: batch.StatusSkipped},
		{Name: "ghost", Status: batch.StatusUnresolved},
		{Name: "forge-only", Status: batch.StatusUnselectable},
		{Name: "flaky", Status: batch.StatusFailed},
	}
	s := Summarize(results)
	if s.Total != 5 || s.Downloaded != 1 || s.Skipped != 1 || s.Failed != 3 {
		t.Fatalf("summary = %+v", s)
	}
	want := []string{"ghost", "forge-only", "flaky"}
	if !reflect.DeepEqual(s.FailedNames, want) {
		t.Fatalf("failed names = %v, want %v", s.FailedNames, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.Failed != 0 || len(s.FailedNames) != 0 {
		t.Fatalf("summary = %+v, want zero values", s)
	}
}
