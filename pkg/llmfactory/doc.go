// Package llmfactory loads the provider configuration and hands out
// models by name, by API type, or as the configured default. One YAML
// file describes every endpoint the researcher can talk to, from Azure
// deployments to self-hosted OpenAI-compatible gateways.
package llmfactory
