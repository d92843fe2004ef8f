// Package openai implements the ai interfaces against OpenAI-compatible
// embedding endpoints (OpenAI, Ollama, LocalAI, vLLM) via langchaingo.
package openai
