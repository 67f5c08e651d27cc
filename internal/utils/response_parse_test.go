package utils

import "testing"

func TestParseCompanionOutput(t *testing.T) {
	got, err := ParseCompanionOutput(`{"reply":"hey you","sentiment":"Positive"}`)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Reply != "hey you" {
		t.Fatalf("unexpected reply: %s", got.Reply)
	}
	if got.Sentiment != "Positive" {
		t.Fatalf("unexpected sentiment: %s", got.Sentiment)
	}
}

func TestParseCompanionOutputWithWrapper(t *testing.T) {
	got, err := ParseCompanionOutput("prefix {\"reply\":\"hm\",\"sentiment\":\"neutral\"} suffix")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Sentiment != "Neutral" {
		t.Fatalf("expected normalized sentiment, got %s", got.Sentiment)
	}
}

func TestParseCompanionOutputGenuine(t *testing.T) {
	got, err := ParseCompanionOutput(`{"reply":"that means a lot","sentiment":"genuine"}`)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Sentiment != "Genuine" {
		t.Fatalf("expected Genuine label, got %s", got.Sentiment)
	}
}

func TestParseCompanionOutputInvalid(t *testing.T) {
	_, err := ParseCompanionOutput(`{"reply":"ok","sentiment":"excited"}`)
	if err == nil {
		t.Fatalf("expected error for invalid sentiment")
	}
}

func TestParseCompanionOutputMissingReply(t *testing.T) {
	_, err := ParseCompanionOutput(`{"reply":"  ","sentiment":"Neutral"}`)
	if err == nil {
		t.Fatalf("expected error for missing reply")
	}
}
