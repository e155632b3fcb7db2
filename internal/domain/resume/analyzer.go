package resume

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Keyword sets are fixed: section scores and keyword lists are only
// comparable across resumes if every analysis uses the same vocabulary.
var (
	HighValueKeywords = []string{
		"Python", "Java", "React", "AWS", "Docker", "Kubernetes",
		"Machine Learning", "CI/CD", "SQL", "FastAPI",
	}
	SoftSkills = []string{
		"Leadership", "Communication", "Problem Solving", "Agile", "Teamwork",
	}
	ActionVerbs = []string{
		"Spearheaded", "Developed", "Orchestrated", "Engineered", "Managed", "Led",
	}

	recommendedKeywords = []string{"System Design", "Scalability"}
)

const (
	minTextLength = 50

	// Placeholder until ATS parsing rules land.
	atsCompatibilityScore = 85
)

var ErrTextTooShort = errors.New("resume text too short or unreadable")

type Finding struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Severity    string `json:"severity,omitempty"`
}

type Section struct {
	Section  string `json:"section"`
	Score    int    `json:"score"`
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}

type Keywords struct {
	Present     []string `json:"present"`
	Missing     []string `json:"missing"`
	Recommended []string `json:"recommended"`
}

type Analysis struct {
	OverallScore        int       `json:"overallScore"`
	ATSCompatibility    int       `json:"atsCompatibility"`
	ContentQuality      int       `json:"contentQuality"`
	Formatting          int       `json:"formatting"`
	KeywordOptimization int       `json:"keywordOptimization"`
	ImpactScore         int       `json:"impactScore"`
	Sections            []Section `json:"sections"`
	Strengths           []Finding `json:"strengths"`
	Improvements        []Finding `json:"improvements"`
	Keywords            Keywords  `json:"keywords"`
}

// SectionScore counts how many distinct keywords occur case-insensitively
// as substrings of text. No hits is a neutral 50, not zero; each hit adds
// 10 up to the 100 ceiling reached at five keywords.
func SectionScore(text string, keywords []string) int {
	lower := strings.ToLower(text)

	found := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			found++
		}
	}
	if found == 0 {
		return 50
	}

	score := 50 + found*10
	if score > 100 {
		score = 100
	}
	return score
}

// findingRules is evaluated in declaration order so the emitted findings
// are deterministic for identical input.
type findingRule struct {
	strength bool
	applies  func(s scores) bool
	build    func(s scores) Finding
}

type scores struct {
	tech    int
	impact  int
	present []string
	missing []string
}

var findingRules = []findingRule{
	{
		strength: true,
		applies:  func(s scores) bool { return len(s.present) >= 3 },
		build: func(s scores) Finding {
			return Finding{
				Title:       "Strong Technical Base",
				Description: fmt.Sprintf("Found key skills: %s", strings.Join(s.present[:3], ", ")),
				Type:        "strength",
			}
		},
	},
	{
		strength: true,
		applies:  func(s scores) bool { return s.impact > 80 },
		build: func(s scores) Finding {
			return Finding{
				Title:       "Action-Oriented Language",
				Description: "Good use of strong action verbs (e.g., Led, Engineered).",
				Type:        "strength",
			}
		},
	},
	{
		applies: func(s scores) bool { return len(s.missing) > 0 },
		build: func(s scores) Finding {
			n := len(s.missing)
			if n > 3 {
				n = 3
			}
			return Finding{
				Title:       "Missing High-Value Skills",
				Description: fmt.Sprintf("Consider adding: %s", strings.Join(s.missing[:n], ", ")),
				Type:        "improvement",
				Severity:    "high",
			}
		},
	},
	{
		applies: func(s scores) bool { return s.impact < 70 },
		build: func(s scores) Finding {
			return Finding{
				Title:       "Weak Impact Verbs",
				Description: "Use words like 'Spearheaded' or 'Orchestrated' instead of 'Worked on'.",
				Type:        "improvement",
				Severity:    "medium",
			}
		},
	},
}

// Analyze runs the rule-based heuristics over extracted resume text.
// Fails with ErrTextTooShort when the trimmed text has fewer than 50
// characters.
func Analyze(text string) (Analysis, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minTextLength {
		return Analysis{}, ErrTextTooShort
	}

	lower := strings.ToLower(text)

	// Present/missing keep the fixed keyword-list order, not text order.
	present := make([]string, 0, len(HighValueKeywords))
	missing := make([]string, 0, len(HighValueKeywords))
	for _, kw := range HighValueKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			present = append(present, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	techScore := SectionScore(text, HighValueKeywords)
	impactScore := SectionScore(text, ActionVerbs)

	// Crude structure proxy: a resume with real sections wraps often.
	formatScore := 60
	if strings.Count(text, "\n") > 20 {
		formatScore = 90
	}

	overall := (techScore + formatScore + impactScore) / 3

	s := scores{tech: techScore, impact: impactScore, present: present, missing: missing}

	strengths := make([]Finding, 0, 2)
	improvements := make([]Finding, 0, 2)
	for _, rule := range findingRules {
		if !rule.applies(s) {
			continue
		}
		f := rule.build(s)
		if rule.strength {
			strengths = append(strengths, f)
		} else {
			improvements = append(improvements, f)
		}
	}

	return Analysis{
		OverallScore:        overall,
		ATSCompatibility:    atsCompatibilityScore,
		ContentQuality:      impactScore,
		Formatting:          formatScore,
		KeywordOptimization: techScore,
		ImpactScore:         impactScore,
		Sections: []Section{
			{Section: "Contact Information", Score: 100, Status: "excellent", Feedback: "detected"},
			{Section: "Skills", Score: techScore, Status: statusFor(techScore), Feedback: fmt.Sprintf("%d keywords found", len(present))},
			{Section: "Work Experience", Score: impactScore, Status: statusFor(impactScore), Feedback: "Action verbs analyzed"},
		},
		Strengths:    strengths,
		Improvements: improvements,
		Keywords: Keywords{
			Present:     present,
			Missing:     missing,
			Recommended: recommendedKeywords,
		},
	}, nil
}

func statusFor(score int) string {
	if score > 75 {
		return "good"
	}
	return "average"
}
