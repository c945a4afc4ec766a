// Package prompts implements the prompt registry domain for the contract
// scanner. It provides types, blob-backed persistence, and HTTP handlers for
// managing named system prompt definitions grouped by category, with at most
// one active definition per category.
package prompts

import "time"

// Prompt represents a named system prompt definition.
type Prompt struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Content      string    `json:"content"`
	Category     Category  `json:"category"`
	Active       bool      `json:"isActive"`
	LastModified time.Time `json:"lastModified"`
}

// CreateCommand carries the data needed to create a new prompt definition.
// The registry assigns the identifier and last-modified timestamp.
type CreateCommand struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Category    Category `json:"category"`
	Active      bool     `json:"isActive"`
}

// UpdateCommand carries a partial update for an existing prompt definition.
// Nil fields are left unchanged; any applied update refreshes the
// last-modified timestamp.
type UpdateCommand struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Category    *Category `json:"category"`
	Active      *bool     `json:"isActive"`
}
