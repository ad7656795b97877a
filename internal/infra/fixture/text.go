package fixture

import (
	"strings"

	"civic/internal/domain/entity"
	"civic/internal/domain/service"
)

const (
	shortTextLimit     = 25
	paragraphTextLimit = 100

	sentenceMinWords   = 3
	sentenceMaxWords   = 9
	paragraphMinLength = 1
	paragraphMaxLength = 4

	sentenceRetries = 8

	headlineMinWords = 1
	headlineMaxWords = 4

	paragraphSeparator = "\n\n"
)

// ActionCopy builds "<verb><connector><issue>" as the title and a shuffled, title-cased headline
// containing the issue.
func (g *Generator) ActionCopy(category entity.ActionCategory, stance entity.Stance) service.ActionCopy {
	verb := g.pick(VerbsFor(category))
	issue := g.pick(IssuesByStance[stance])

	words := make([]string, 0, headlineMaxWords+1)
	for range g.IntRange(headlineMinWords, headlineMaxWords) {
		words = append(words, g.faker.LoremIpsumWord())
	}
	words = append(words, issue)
	g.rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})

	headline := g.titler.String(strings.Join(words, " "))
	if g.rng.IntN(10)%3 == 0 {
		headline += "!"
	}

	return service.ActionCopy{
		Title:    verb + stance.Connector() + issue,
		Headline: headline,
		Issue:    issue,
	}
}

// CallScript opens with a greeting naming point and follows with a blank line and filler prose.
func (g *Generator) CallScript(point string, length int) string {
	return callScriptIntro + strings.ToLower(point) + "." + paragraphSeparator + g.Prose(length)
}

// Prose returns non-empty filler text no longer than maxChars.
// Short limits yield a few words, medium limits sentences and long limits paragraphs.
func (g *Generator) Prose(maxChars int) string {
	switch {
	case maxChars < shortTextLimit:
		return g.words(maxChars)
	case maxChars < paragraphTextLimit:
		return g.sentences(maxChars)
	default:
		return g.paragraphs(maxChars)
	}
}

// words fills maxChars with lorem words ending in a period.
func (g *Generator) words(maxChars int) string {
	if maxChars < 2 {
		return truncate(g.faker.LoremIpsumWord(), max(maxChars, 1))
	}

	var b strings.Builder
	for {
		word := g.faker.LoremIpsumWord()
		if b.Len() == 0 {
			word = capitalize(word)
		} else {
			word = " " + word
		}
		if b.Len()+len(word)+1 > maxChars {
			break
		}
		b.WriteString(word)
	}

	if b.Len() == 0 {
		return capitalize(truncate(g.faker.LoremIpsumWord(), maxChars-1)) + "."
	}

	return b.String() + "."
}

// sentences joins whole sentences while they fit.
func (g *Generator) sentences(maxChars int) string {
	for range sentenceRetries {
		if text := g.fillSentences(maxChars); text != "" {
			return text
		}
	}

	return g.words(maxChars)
}

func (g *Generator) fillSentences(maxChars int) string {
	var b strings.Builder
	for {
		s := g.sentence()
		if b.Len() > 0 {
			s = " " + s
		}
		if b.Len()+len(s) > maxChars {
			return b.String()
		}
		b.WriteString(s)
	}
}

// paragraphs joins paragraphs of one to four sentences with blank lines while they fit.
func (g *Generator) paragraphs(maxChars int) string {
	var b strings.Builder
	for {
		p := g.paragraph()
		if b.Len() > 0 {
			p = paragraphSeparator + p
		}
		if b.Len()+len(p) > maxChars {
			break
		}
		b.WriteString(p)
	}

	if b.Len() == 0 {
		return g.sentences(maxChars)
	}

	return b.String()
}

func (g *Generator) paragraph() string {
	return g.faker.LoremIpsumParagraph(1, g.IntRange(paragraphMinLength, paragraphMaxLength),
		g.IntRange(sentenceMinWords, sentenceMaxWords), paragraphSeparator)
}

func (g *Generator) sentence() string {
	return g.faker.LoremIpsumSentence(g.IntRange(sentenceMinWords, sentenceMaxWords))
}

func capitalize(word string) string {
	if word == "" {
		return word
	}

	return strings.ToUpper(word[:1]) + word[1:]
}

func truncate(word string, n int) string {
	if len(word) <= n {
		return word
	}

	return word[:n]
}
