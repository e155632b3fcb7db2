package resume

import (
	"errors"
	"strings"
	"testing"
)

func TestSectionScore(t *testing.T) {
	kws := []string{"Python", "Java", "React", "AWS", "Docker", "Kubernetes"}

	cases := []struct {
		name string
		text string
		want int
	}{
		{"no matches floors at 50", "nothing relevant here", 50},
		{"one match", "I write Python daily", 60},
		{"three matches", "Python React AWS", 80},
		{"five matches hits ceiling", "Python Java React AWS Docker", 100},
		{"six matches stays at ceiling", "Python Java React AWS Docker Kubernetes", 100},
		{"case insensitive", "python JAVA react", 80},
		{"repeated keyword counts once", "Python Python Python", 60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SectionScore(tc.text, kws)
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestSectionScore_Monotonic(t *testing.T) {
	kws := []string{"Python", "Java", "React", "AWS", "Docker"}

	text := "base resume text"
	prev := SectionScore(text, kws)
	for _, kw := range kws {
		text += " " + kw
		got := SectionScore(text, kws)
		if got < prev {
			t.Fatalf("score decreased from %d to %d after adding %q", prev, got, kw)
		}
		prev = got
	}
	if prev != 100 {
		t.Fatalf("expected 100 with all keywords present, got %d", prev)
	}
}

func TestAnalyze_TextLength(t *testing.T) {
	if _, err := Analyze(""); !errors.Is(err, ErrTextTooShort) {
		t.Fatalf("expected ErrTextTooShort for empty text, got %v", err)
	}
	if _, err := Analyze(strings.Repeat("a", 49)); !errors.Is(err, ErrTextTooShort) {
		t.Fatalf("expected ErrTextTooShort for 49 chars, got %v", err)
	}
	if _, err := Analyze(strings.Repeat("a", 50)); err != nil {
		t.Fatalf("expected 50 chars to pass, got %v", err)
	}
	// Padding whitespace does not count toward the minimum.
	if _, err := Analyze("  " + strings.Repeat("a", 49) + "  "); !errors.Is(err, ErrTextTooShort) {
		t.Fatalf("expected ErrTextTooShort for padded 49 chars, got %v", err)
	}
}

func TestAnalyze_EndToEnd(t *testing.T) {
	text := "Developed a React and AWS pipeline with Docker for consumer analytics dashboards."

	a, err := Analyze(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.KeywordOptimization != 80 {
		t.Fatalf("expected tech score 80 (React, AWS, Docker), got %d", a.KeywordOptimization)
	}
	if a.ImpactScore != 60 {
		t.Fatalf("expected impact score 60 (Developed), got %d", a.ImpactScore)
	}
	if a.Formatting != 60 {
		t.Fatalf("expected format score 60 for single-line text, got %d", a.Formatting)
	}
	if a.OverallScore != (80+60+60)/3 {
		t.Fatalf("unexpected overall score %d", a.OverallScore)
	}
	if a.ATSCompatibility != 85 {
		t.Fatalf("expected fixed ATS score 85, got %d", a.ATSCompatibility)
	}

	if len(a.Strengths) != 1 || a.Strengths[0].Title != "Strong Technical Base" {
		t.Fatalf("expected only the technical-base strength, got %+v", a.Strengths)
	}
	// Present keywords are reported in keyword-list order, not text order.
	if a.Strengths[0].Description != "Found key skills: React, AWS, Docker" {
		t.Fatalf("unexpected strength description: %q", a.Strengths[0].Description)
	}

	if len(a.Improvements) != 2 {
		t.Fatalf("expected missing-skills and weak-verbs improvements, got %+v", a.Improvements)
	}
	if a.Improvements[0].Title != "Missing High-Value Skills" || a.Improvements[0].Severity != "high" {
		t.Fatalf("unexpected first improvement: %+v", a.Improvements[0])
	}
	if a.Improvements[0].Description != "Consider adding: Python, Java, Kubernetes" {
		t.Fatalf("unexpected missing-skills description: %q", a.Improvements[0].Description)
	}
	if a.Improvements[1].Title != "Weak Impact Verbs" || a.Improvements[1].Severity != "medium" {
		t.Fatalf("unexpected second improvement: %+v", a.Improvements[1])
	}

	if len(a.Sections) != 3 || a.Sections[0].Score != 100 || a.Sections[0].Status != "excellent" {
		t.Fatalf("unexpected sections: %+v", a.Sections)
	}
	if a.Sections[1].Score != 80 || a.Sections[1].Status != "good" {
		t.Fatalf("unexpected skills section: %+v", a.Sections[1])
	}
	if a.Sections[2].Score != 60 || a.Sections[2].Status != "average" {
		t.Fatalf("unexpected work-experience section: %+v", a.Sections[2])
	}

	wantPresent := []string{"React", "AWS", "Docker"}
	if len(a.Keywords.Present) != len(wantPresent) {
		t.Fatalf("unexpected present keywords: %v", a.Keywords.Present)
	}
	for i, kw := range wantPresent {
		if a.Keywords.Present[i] != kw {
			t.Fatalf("present keywords out of order: %v", a.Keywords.Present)
		}
	}
	if len(a.Keywords.Missing) != 7 {
		t.Fatalf("expected 7 missing keywords, got %v", a.Keywords.Missing)
	}
	if len(a.Keywords.Recommended) == 0 {
		t.Fatalf("expected fixed recommended list")
	}
}

func TestAnalyze_FormatScoreLineBreaks(t *testing.T) {
	base := strings.Repeat("resume content without any tech words here ", 3)

	flat, err := Analyze(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flat.Formatting != 60 {
		t.Fatalf("expected 60 without line breaks, got %d", flat.Formatting)
	}

	structured, err := Analyze(base + strings.Repeat("\nsection", 21))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if structured.Formatting != 90 {
		t.Fatalf("expected 90 with more than 20 line breaks, got %d", structured.Formatting)
	}
}

func TestAnalyze_ImpactStrengthThreshold(t *testing.T) {
	// Four action verbs: impact = 90 > 80 emits the strength and skips the
	// weak-verbs improvement.
	text := "Spearheaded rollouts. Orchestrated migrations. Engineered pipelines. Managed three teams across regions."

	a, err := Analyze(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ImpactScore != 90 {
		t.Fatalf("expected impact 90, got %d", a.ImpactScore)
	}

	found := false
	for _, s := range a.Strengths {
		if s.Title == "Action-Oriented Language" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected action-oriented strength, got %+v", a.Strengths)
	}
	for _, imp := range a.Improvements {
		if imp.Title == "Weak Impact Verbs" {
			t.Fatalf("weak-verbs improvement should not fire at impact 90")
		}
	}
}
