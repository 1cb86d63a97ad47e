// Package openai provides a generation.Completer implementation that talks
// to an OpenAI-compatible text completion endpoint over HTTP.
package openai

// completionRequest is the wire payload sent to the completion endpoint.
type completionRequest struct {
	// Model is the model identifier.
	Model string `json:"model"`

	// Input is the full instruction text.
	Input string `json:"input"`

	// Temperature is the sampling temperature.
	Temperature float64 `json:"temperature"`
}

// completionResponse covers the two envelope shapes the endpoint may
// return: the chat-completions shape (choices) and the responses-API shape
// (output). Any response matching neither is treated as a service error.
type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`

	Output []struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

// text extracts the generated text from whichever envelope the response
// used. The second return value reports whether any text was found.
func (r *completionResponse) text() (string, bool) {
	if len(r.Choices) > 0 {
		return r.Choices[0].Message.Content, true
	}

	if len(r.Output) > 0 && len(r.Output[0].Content) > 0 {
		return r.Output[0].Content[0].Text, true
	}

	return "", false
}
