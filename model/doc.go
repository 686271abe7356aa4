// Package model defines the text-generation seam between agent capabilities
// and language-model providers. Capabilities depend only on the Model
// interface; concrete adapters for OpenAI and Anthropic live in the
// subpackages, and MockModel serves tests and local development.
package model
