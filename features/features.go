// Package features computes lexical overlap between a page, a question about
// it and an answer. Everything in the package is a pure function of its
// inputs and safe for concurrent use.
package features

import "unicode/utf8"

// TopN is the number of keywords listed per text in a Bundle.
const TopN = 5

// Bundle holds the lexical features of one question and answer about a page.
type Bundle struct {
	ContentQuestionSimilarity float64  `json:"content_question_similarity"`
	ContentAnswerSimilarity   float64  `json:"content_answer_similarity"`
	QuestionAnswerSimilarity  float64  `json:"question_answer_similarity"`
	TopContentKeywords        []string `json:"top_content_keywords"`
	TopQuestionKeywords       []string `json:"top_question_keywords"`
	TopAnswerKeywords         []string `json:"top_answer_keywords"`
	ContentLength             int      `json:"content_length"`
	AnswerLength              int      `json:"answer_length"`
}

// Build computes the Bundle for content, question and answer using the Default extractor.
func Build(content, question, answer string) Bundle {
	return Default.Build(content, question, answer)
}

// Build computes the Bundle for content, question and answer.
func (e Extractor) Build(content, question, answer string) Bundle {
	ck := e.Keywords(content)
	qk := e.Keywords(question)
	ak := e.Keywords(answer)
	return Bundle{
		ContentQuestionSimilarity: Jaccard(ck, qk),
		ContentAnswerSimilarity:   Jaccard(ck, ak),
		QuestionAnswerSimilarity:  Jaccard(qk, ak),
		TopContentKeywords:        Top(ck, TopN),
		TopQuestionKeywords:       Top(qk, TopN),
		TopAnswerKeywords:         Top(ak, TopN),
		ContentLength:             utf8.RuneCountInString(content),
		AnswerLength:              utf8.RuneCountInString(answer),
	}
}
