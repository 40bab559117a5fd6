package rag

import "learnlog/internal/storage"

// Response modes for a query.
const (
	// ModeSimple returns raw ranked learnings without LLM synthesis.
	ModeSimple = "simple"
	// ModePowered synthesizes a natural-language answer with the LLM.
	ModePowered = "powered"
)

const (
	// MaxQueryLength is the maximum accepted query length in characters.
	MaxQueryLength = 500

	// topK bounds how many nearest neighbors the ranker considers.
	topK = 3

	// relevanceThreshold is the distance cutoff below which a candidate counts
	// as relevant. Chosen empirically on the embedding model's native metric;
	// it is not a probability.
	relevanceThreshold = 1.4
)

// Message is a single entry in the conversation history.
type Message struct {
	Content string `json:"content"`
	IsUser  bool   `json:"is_user"`
}

// QueryRequest represents a RAG query. History and answer are ephemeral to the
// request/response cycle; nothing about the exchange is persisted here.
type QueryRequest struct {
	Query               string    `json:"query"`
	Mode                string    `json:"mode,omitempty"`
	ConversationHistory []Message `json:"conversation_history,omitempty"`
}

// RankedLearning pairs a learning with its distance to the query vector.
// Lower distance means more similar.
type RankedLearning struct {
	Learning storage.LearningRecord
	Distance float32
}

// SimpleResult is one formatted entry of a simple-mode response.
type SimpleResult struct {
	Title       string   `json:"title"`
	Details     []string `json:"details"`
	CodeSnippet string   `json:"code_snippet"`
}

// QueryResponse is the outcome of a query. Results is populated in simple
// mode, Answer in powered mode.
type QueryResponse struct {
	Mode    string
	Results []SimpleResult
	Answer  string
}
