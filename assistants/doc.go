// Package assistants runs the agent loop behind the network researcher:
// an assistant owns a system prompt, a model and a set of tools, and keeps
// calling the model and executing the tool calls it requests until the
// model produces a final answer. Callbacks observe every step, and typed
// output parsers turn the final completion into structured results.
package assistants
