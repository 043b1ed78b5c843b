package analytics

import (
	"sort"

	"github.com/mydiary/journal-insights/internal/domain"
)

// Static lookup tables. Populated once at init and never written afterwards.

// stopwords are excluded from keyword extraction: articles, pronouns, and
// common auxiliary verbs.
var stopwords = map[string]struct{}{}

var stopwordList = []string{
	"the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
	"by", "is", "are", "was", "were", "be", "been", "have", "has", "had",
	"do", "does", "did", "will", "would", "could", "should", "may", "might",
	"must", "can", "this", "that", "these", "those", "i", "you", "he", "she",
	"it", "we", "they", "me", "him", "her", "us", "them", "my", "your",
	"his", "hers", "its", "our", "their", "mine", "yours", "ours", "theirs",
	"what", "which", "about", "from", "just", "also", "very", "really",
	"some", "when", "then", "than", "there", "here", "because",
}

func init() {
	for _, w := range stopwordList {
		stopwords[w] = struct{}{}
	}
	// Fixed iteration order keeps the inverted index deterministic should a
	// word ever appear in more than one category list.
	categories := make([]string, 0, len(keywordCategories))
	for category := range keywordCategories {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		for _, w := range keywordCategories[category] {
			if _, ok := categoryByWord[w]; !ok {
				categoryByWord[w] = category
			}
		}
	}
}

// CategoryGeneral is the fallback bucket for words not found in any
// category table.
const CategoryGeneral = "general"

// keywordCategories maps each semantic bucket to its member words.
var keywordCategories = map[string][]string{
	"emotions": {
		"happy", "happiness", "sad", "sadness", "angry", "anger", "joyful",
		"excited", "anxious", "anxiety", "calm", "peaceful", "stressed",
		"worried", "afraid", "scared", "love", "loved", "lonely", "proud",
		"grateful", "frustrated", "overwhelmed", "content", "hopeful",
	},
	"activities": {
		"running", "reading", "writing", "cooking", "walking", "hiking",
		"painting", "gaming", "travel", "traveling", "music", "singing",
		"dancing", "swimming", "cycling", "yoga", "gardening", "shopping",
		"movie", "movies", "concert", "party",
	},
	"time": {
		"morning", "afternoon", "evening", "night", "today", "tomorrow",
		"yesterday", "weekend", "week", "month", "year", "moment", "hour",
		"minute", "early", "late", "soon", "always", "never", "sometimes",
	},
	"relationships": {
		"friend", "friends", "family", "mother", "father", "sister",
		"brother", "partner", "wife", "husband", "daughter", "girlfriend",
		"boyfriend", "colleague", "neighbor", "marriage", "wedding",
		"parents", "children", "relationship",
	},
	"personal_growth": {
		"goal", "goals", "learning", "growth", "habit", "habits",
		"progress", "achievement", "challenge", "improve", "improvement",
		"change", "mindfulness", "meditation", "gratitude", "journaling",
		"discipline", "motivation", "purpose", "dream", "dreams",
	},
	"work_career": {
		"work", "working", "job", "career", "office", "meeting", "meetings",
		"project", "projects", "deadline", "boss", "interview", "promotion",
		"salary", "business", "client", "clients", "presentation", "team",
	},
	"health_wellness": {
		"health", "healthy", "exercise", "workout", "sleep", "sleeping",
		"doctor", "medicine", "diet", "nutrition", "fitness", "energy",
		"rest", "recovery", "therapy", "wellness", "breathing", "tired",
		"sick", "pain",
	},
	"reflection": {
		"thinking", "thought", "thoughts", "wondering", "remember",
		"memory", "memories", "realize", "realized", "understand",
		"understanding", "perspective", "meaning", "question", "questions",
		"believe", "feelings", "reflection", "looking",
	},
}

// categoryByWord is the inverted index over keywordCategories.
var categoryByWord = map[string]string{}

// categoryColors assigns each semantic bucket a fixed display color.
var categoryColors = map[string]string{
	"emotions":        "#ef4444",
	"activities":      "#f59e0b",
	"time":            "#10b981",
	"relationships":   "#ec4899",
	"personal_growth": "#8b5cf6",
	"work_career":     "#3b82f6",
	"health_wellness": "#14b8a6",
	"reflection":      "#6366f1",
	CategoryGeneral:   "#9ca3af",
}

// positiveWords and negativeWords drive the sentiment heuristic: occurrences
// are counted by substring match against lowercased entry content.
var positiveWords = []string{
	"happy", "joy", "excited", "grateful", "thankful", "love", "wonderful",
	"amazing", "great", "fantastic", "excellent", "beautiful", "peaceful",
	"proud", "hopeful", "relaxed", "fun", "accomplished",
}

var negativeWords = []string{
	"sad", "angry", "frustrated", "disappointed", "worried", "anxious",
	"stressed", "tired", "difficult", "hard", "challenging", "overwhelmed",
	"lonely", "afraid", "upset", "exhausted", "miserable",
}

// moodScores maps each mood label to a numeric score for trend math.
// Frozen heuristic constants; the 0.1 trend threshold in Config pairs with
// this scale.
var moodScores = map[domain.Mood]float64{
	domain.MoodHappy:   1,
	domain.MoodExcited: 1,
	domain.MoodCalm:    0.5,
	domain.MoodNeutral: 0,
	domain.MoodTired:   -0.5,
	domain.MoodAnxious: -0.5,
	domain.MoodSad:     -1,
	domain.MoodAngry:   -1,
}

// CategoryColor returns the display color for a semantic category.
func CategoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return categoryColors[CategoryGeneral]
}

// categorize assigns a keyword to exactly one semantic bucket.
func categorize(word string) string {
	if c, ok := categoryByWord[word]; ok {
		return c
	}
	return CategoryGeneral
}
