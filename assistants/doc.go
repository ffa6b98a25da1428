// Package assistants provides core logic for LLM agents, including assistant orchestration, tool integration, and callback handling. It enables the creation of modular, extensible agentic flows with support for custom tools, callbacks, and multi-step reasoning.
package assistants
