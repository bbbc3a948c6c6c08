// Package llms defines the provider-neutral chat surface the research
// assistants are built on: messages with text, image, binary and tool-call
// parts, call options, and the Model interface for generating content.
//
// Provider implementations live in subpackages; the openai subpackage
// covers every OpenAI-compatible endpoint the researcher is configured
// with, including Azure and self-hosted gateways.
//
// The `llms.go` file contains the types and interfaces for interacting with
// the models. The `options.go` file provides the per-call options.
package llms
