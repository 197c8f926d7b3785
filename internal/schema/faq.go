package schema

import "github.com/nfrund/ledgerline/internal/domain"

// FAQPageSchema is a schema.org FAQPage.
type FAQPageSchema struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// Question is a schema.org Question with its accepted answer.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is a schema.org Answer.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// FAQPage builds a FAQPage with one Question per entry, in input order.
// An empty input yields an empty, non-null mainEntity array.
func FAQPage(faqs []domain.FAQ) FAQPageSchema {
	entities := make([]Question, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, Question{
			Type: "Question",
			Name: f.Question,
			AcceptedAnswer: Answer{
				Type: "Answer",
				Text: f.Answer,
			},
		})
	}
	return FAQPageSchema{
		Context:    Context,
		Type:       "FAQPage",
		MainEntity: entities,
	}
}
